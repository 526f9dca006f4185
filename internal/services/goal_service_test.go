package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/iinterntechnologies-oss/crm-tool/internal/models"
	"github.com/iinterntechnologies-oss/crm-tool/internal/repository"
)

func newGoalFixture(t *testing.T) (*GoalService, *gorm.DB, context.Context) {
	t.Helper()
	db := newTestDB(t)
	svc := NewGoalService(repository.NewGoalRepository(db), newTestActivityService(db), newTestLogger())
	return svc, db, context.Background()
}

func TestGoalService_CreateDefaultsStartDate(t *testing.T) {
	svc, _, ctx := newGoalFixture(t)

	goal, err := svc.Create(ctx, &models.GoalCreateRequest{
		Title:        "Q3 revenue",
		TargetAmount: 25000,
	})
	require.NoError(t, err)
	assert.Equal(t, models.Today().String(), goal.DateStarted.String())
	assert.False(t, goal.IsAchieved)
}

func TestGoalService_AchieveStampsDateAndRecordsActivity(t *testing.T) {
	svc, db, ctx := newGoalFixture(t)

	goal, err := svc.Create(ctx, &models.GoalCreateRequest{
		Title:        "Q3 revenue",
		TargetAmount: 25000,
	})
	require.NoError(t, err)

	achieved := true
	updated, err := svc.Update(ctx, goal.ID, &models.GoalUpdateRequest{IsAchieved: &achieved})
	require.NoError(t, err)

	assert.True(t, updated.IsAchieved)
	require.NotNil(t, updated.DateAchieved)
	assert.Equal(t, models.Today().String(), updated.DateAchieved.String())

	var activities []models.Activity
	require.NoError(t, db.Where("activity_type = ?", models.ActivityGoalAchieved).Find(&activities).Error)
	require.Len(t, activities, 1)
	assert.Equal(t, goal.ID, activities[0].EntityID)

	// Achieving again is a no-op for the feed and the stamp
	first := updated.DateAchieved.String()
	again, err := svc.Update(ctx, goal.ID, &models.GoalUpdateRequest{IsAchieved: &achieved})
	require.NoError(t, err)
	require.NotNil(t, again.DateAchieved)
	assert.Equal(t, first, again.DateAchieved.String())

	require.NoError(t, db.Where("activity_type = ?", models.ActivityGoalAchieved).Find(&activities).Error)
	assert.Len(t, activities, 1)
}

func TestGoalService_UnachieveKeepsDate(t *testing.T) {
	svc, _, ctx := newGoalFixture(t)

	goal, err := svc.Create(ctx, &models.GoalCreateRequest{Title: "Q3", TargetAmount: 1000})
	require.NoError(t, err)

	achieved := true
	_, err = svc.Update(ctx, goal.ID, &models.GoalUpdateRequest{IsAchieved: &achieved})
	require.NoError(t, err)

	achieved = false
	updated, err := svc.Update(ctx, goal.ID, &models.GoalUpdateRequest{IsAchieved: &achieved})
	require.NoError(t, err)
	assert.False(t, updated.IsAchieved)
}
