package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iinterntechnologies-oss/crm-tool/internal/models"
	"github.com/iinterntechnologies-oss/crm-tool/internal/repository"
)

func newTaskFixture(t *testing.T) (*TaskService, *models.Client, *models.Lead, context.Context) {
	t.Helper()
	db := newTestDB(t)
	ctx := context.Background()

	client := &models.Client{BusinessName: "Acme Bakery"}
	require.NoError(t, db.Create(client).Error)
	lead := &models.Lead{BusinessName: "Maybe Pizza"}
	require.NoError(t, db.Create(lead).Error)

	svc := NewTaskService(repository.NewTaskRepository(db), newTestActivityService(db), newTestLogger())
	return svc, client, lead, ctx
}

func TestTaskService_CreateResolvesClientParent(t *testing.T) {
	svc, client, _, ctx := newTaskFixture(t)

	task, err := svc.Create(ctx, &models.TaskCreateRequest{
		Title:     "Send invoice",
		RelatedTo: "client",
		RelatedID: client.ID,
	})
	require.NoError(t, err)

	require.NotNil(t, task.ClientID)
	assert.Equal(t, client.ID, *task.ClientID)
	assert.Nil(t, task.LeadID)
	assert.Equal(t, "client", task.RelatedTo)
	require.NotNil(t, task.RelatedID)
	assert.Equal(t, client.ID, *task.RelatedID)
}

func TestTaskService_CreateGeneralTask(t *testing.T) {
	svc, _, _, ctx := newTaskFixture(t)

	task, err := svc.Create(ctx, &models.TaskCreateRequest{
		Title:     "Clean up inbox",
		RelatedTo: "general",
	})
	require.NoError(t, err)

	assert.Equal(t, "general", task.RelatedTo)
	assert.Nil(t, task.RelatedID)
	assert.Nil(t, task.ClientID)
	assert.Nil(t, task.LeadID)
}

func TestTaskService_CreateRejectsUnknownKind(t *testing.T) {
	svc, _, _, ctx := newTaskFixture(t)

	_, err := svc.Create(ctx, &models.TaskCreateRequest{
		Title:     "Broken",
		RelatedTo: "invoice",
		RelatedID: "whatever",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrInvalidParent))
}

func TestTaskService_CreateRejectsMissingID(t *testing.T) {
	svc, _, _, ctx := newTaskFixture(t)

	_, err := svc.Create(ctx, &models.TaskCreateRequest{
		Title:     "Broken",
		RelatedTo: "client",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrInvalidParent))
}

func TestTaskService_RepointClearsStaleKey(t *testing.T) {
	svc, client, lead, ctx := newTaskFixture(t)

	task, err := svc.Create(ctx, &models.TaskCreateRequest{
		Title:     "Follow up",
		RelatedTo: "client",
		RelatedID: client.ID,
	})
	require.NoError(t, err)

	relatedTo := "lead"
	updated, err := svc.Update(ctx, task.ID, &models.TaskUpdateRequest{
		RelatedTo: &relatedTo,
		RelatedID: &lead.ID,
	})
	require.NoError(t, err)

	assert.Nil(t, updated.ClientID)
	require.NotNil(t, updated.LeadID)
	assert.Equal(t, lead.ID, *updated.LeadID)

	// The cleared key must be persisted, not just cleared in memory
	stored, err := svc.Get(ctx, task.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.ClientID)
	require.NotNil(t, stored.LeadID)
	assert.Equal(t, lead.ID, *stored.LeadID)
	assert.Equal(t, "lead", stored.RelatedTo)
}

func TestTaskService_RepointKindOnlyReusesCurrentID(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	// Same id in both parent tables, so a kind-only repoint stays
	// resolvable against the stored related_id
	sharedID := "33333333-3333-3333-3333-333333333333"
	require.NoError(t, db.Create(&models.Client{ID: sharedID, BusinessName: "Acme"}).Error)
	require.NoError(t, db.Create(&models.Lead{ID: sharedID, BusinessName: "Acme"}).Error)

	svc := NewTaskService(repository.NewTaskRepository(db), newTestActivityService(db), newTestLogger())

	task, err := svc.Create(ctx, &models.TaskCreateRequest{
		Title:     "Check in",
		RelatedTo: "client",
		RelatedID: sharedID,
	})
	require.NoError(t, err)

	relatedTo := "lead"
	updated, err := svc.Update(ctx, task.ID, &models.TaskUpdateRequest{RelatedTo: &relatedTo})
	require.NoError(t, err)

	assert.Nil(t, updated.ClientID)
	require.NotNil(t, updated.LeadID)
	assert.Equal(t, sharedID, *updated.LeadID)
}

func TestTaskService_RepointToGeneral(t *testing.T) {
	svc, client, _, ctx := newTaskFixture(t)

	task, err := svc.Create(ctx, &models.TaskCreateRequest{
		Title:     "Detach me",
		RelatedTo: "client",
		RelatedID: client.ID,
	})
	require.NoError(t, err)

	relatedTo := "general"
	relatedID := ""
	updated, err := svc.Update(ctx, task.ID, &models.TaskUpdateRequest{
		RelatedTo: &relatedTo,
		RelatedID: &relatedID,
	})
	require.NoError(t, err)

	assert.Nil(t, updated.ClientID)
	assert.Nil(t, updated.LeadID)
	assert.Nil(t, updated.RelatedID)

	stored, err := svc.Get(ctx, task.ID)
	require.NoError(t, err)
	assert.Nil(t, stored.ClientID)
	assert.Nil(t, stored.LeadID)
}

func TestTaskService_UpdateRejectsInvalidRepoint(t *testing.T) {
	svc, client, _, ctx := newTaskFixture(t)

	task, err := svc.Create(ctx, &models.TaskCreateRequest{
		Title:     "Stay put",
		RelatedTo: "client",
		RelatedID: client.ID,
	})
	require.NoError(t, err)

	relatedTo := "banana"
	_, err = svc.Update(ctx, task.ID, &models.TaskUpdateRequest{RelatedTo: &relatedTo})
	require.Error(t, err)
	assert.True(t, errors.Is(err, models.ErrInvalidParent))

	// Failed update must leave the stored row untouched
	stored, err := svc.Get(ctx, task.ID)
	require.NoError(t, err)
	assert.Equal(t, "client", stored.RelatedTo)
	require.NotNil(t, stored.ClientID)
	assert.Equal(t, client.ID, *stored.ClientID)
}

func TestTaskService_CompleteStampsTimestamp(t *testing.T) {
	svc, _, _, ctx := newTaskFixture(t)

	task, err := svc.Create(ctx, &models.TaskCreateRequest{
		Title:     "Ship it",
		RelatedTo: "general",
	})
	require.NoError(t, err)
	assert.Nil(t, task.CompletedAt)

	status := models.TaskCompleted
	updated, err := svc.Update(ctx, task.ID, &models.TaskUpdateRequest{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, models.TaskCompleted, updated.Status)
	require.NotNil(t, updated.CompletedAt)

	// Completing an already completed task must not move the timestamp
	first := *updated.CompletedAt
	again, err := svc.Update(ctx, task.ID, &models.TaskUpdateRequest{Status: &status})
	require.NoError(t, err)
	require.NotNil(t, again.CompletedAt)
	assert.True(t, first.Equal(*again.CompletedAt))
}
