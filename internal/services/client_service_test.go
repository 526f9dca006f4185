package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/iinterntechnologies-oss/crm-tool/internal/models"
	"github.com/iinterntechnologies-oss/crm-tool/internal/repository"
)

func newClientFixture(t *testing.T) (*ClientService, *gorm.DB, context.Context) {
	t.Helper()
	db := newTestDB(t)
	svc := NewClientService(
		repository.NewClientRepository(db),
		repository.NewTaskRepository(db),
		newTestActivityService(db),
		newTestLogger(),
	)
	return svc, db, context.Background()
}

func TestClientService_CompleteSnapshotsCustomer(t *testing.T) {
	svc, db, ctx := newClientFixture(t)

	domain := "cafe.example"
	client, err := svc.Create(ctx, &models.ClientCreateRequest{
		BusinessName:     "Corner Cafe",
		PaymentCollected: 4200,
		DomainName:       &domain,
	})
	require.NoError(t, err)

	customer, err := svc.Complete(ctx, client.ID)
	require.NoError(t, err)

	assert.Equal(t, "Corner Cafe", customer.BusinessName)
	assert.Equal(t, 4200.0, customer.TotalPaid)
	require.NotNil(t, customer.DomainName)
	assert.Equal(t, domain, *customer.DomainName)
	assert.Equal(t, models.Today().String(), customer.CompletedDate.String())
	assert.NotEqual(t, client.ID, customer.ID)

	// The client stays, flagged completed; the copy is one-way
	completed, err := svc.Get(ctx, client.ID)
	require.NoError(t, err)
	assert.True(t, completed.IsCompleted)

	var customerCount int64
	require.NoError(t, db.Model(&models.Customer{}).Count(&customerCount).Error)
	assert.Equal(t, int64(1), customerCount)

	// Deleting the client leaves the customer untouched
	require.NoError(t, svc.Delete(ctx, client.ID))
	require.NoError(t, db.Model(&models.Customer{}).Count(&customerCount).Error)
	assert.Equal(t, int64(1), customerCount)
}

func TestClientService_CompleteRecordsActivity(t *testing.T) {
	svc, db, ctx := newClientFixture(t)

	client, err := svc.Create(ctx, &models.ClientCreateRequest{BusinessName: "Corner Cafe"})
	require.NoError(t, err)
	customer, err := svc.Complete(ctx, client.ID)
	require.NoError(t, err)

	var activities []models.Activity
	require.NoError(t, db.Where("activity_type = ?", models.ActivityCustomerCompleted).Find(&activities).Error)
	require.Len(t, activities, 1)
	assert.Equal(t, customer.ID, activities[0].EntityID)
}

func TestClientService_DeleteCascades(t *testing.T) {
	svc, db, ctx := newClientFixture(t)

	client, err := svc.Create(ctx, &models.ClientCreateRequest{BusinessName: "Doomed"})
	require.NoError(t, err)

	taskSvc := NewTaskService(repository.NewTaskRepository(db), newTestActivityService(db), newTestLogger())
	noteSvc := NewNoteService(repository.NewNoteRepository(db), newTestLogger())

	_, err = taskSvc.Create(ctx, &models.TaskCreateRequest{
		Title: "Kickoff", RelatedTo: "client", RelatedID: client.ID,
	})
	require.NoError(t, err)
	_, err = noteSvc.Create(ctx, &models.NoteCreateRequest{
		Content: "Prefers email", RelatedTo: "client", RelatedID: client.ID,
	})
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, client.ID))

	var taskCount, noteCount int64
	require.NoError(t, db.Model(&models.Task{}).Count(&taskCount).Error)
	require.NoError(t, db.Model(&models.Note{}).Count(&noteCount).Error)
	assert.Equal(t, int64(0), taskCount)
	assert.Equal(t, int64(0), noteCount)
}

func TestClientService_GenerateOnboardingTasks(t *testing.T) {
	svc, db, ctx := newClientFixture(t)

	onboarding := models.NewDate(2026, time.March, 1)
	client, err := svc.Create(ctx, &models.ClientCreateRequest{
		BusinessName: "Corner Cafe",
		Onboarding:   onboarding,
	})
	require.NoError(t, err)

	tasks, err := svc.GenerateOnboardingTasks(ctx, client.ID, &models.OnboardClientRequest{
		ServiceType: "branding",
	})
	require.NoError(t, err)
	require.Len(t, tasks, 8)

	// Uses the client's own onboarding date when none is supplied
	require.NotNil(t, tasks[0].DueDate)
	assert.Equal(t, "2026-03-02", tasks[0].DueDate.String())

	var count int64
	require.NoError(t, db.Model(&models.Task{}).Where("client_id = ?", client.ID).Count(&count).Error)
	assert.Equal(t, int64(8), count)
}

func TestClientService_UpdatePatchSemantics(t *testing.T) {
	svc, _, ctx := newClientFixture(t)

	client, err := svc.Create(ctx, &models.ClientCreateRequest{
		BusinessName: "Corner Cafe",
		Contact:      "owner@cafe.example",
	})
	require.NoError(t, err)

	stage := models.StageDesign
	updated, err := svc.Update(ctx, client.ID, &models.ClientUpdateRequest{ProjectStage: &stage})
	require.NoError(t, err)

	// Untouched fields survive a partial update
	assert.Equal(t, models.StageDesign, updated.ProjectStage)
	assert.Equal(t, "Corner Cafe", updated.BusinessName)
	assert.Equal(t, "owner@cafe.example", updated.Contact)
}
