// Package integrity implements the offline orphan sweep: an
// operator-invoked batch job that removes task, note and activity rows
// whose logical parent reference no longer resolves to a live row.
//
// The request path keeps tasks and notes consistent through foreign-key
// cascades, but activities carry no enforced foreign key at all, and rows
// created before foreign-key enforcement may hold dangling related_id
// values that were never migrated into the typed columns. The sweep is the
// only mechanism that restores integrity for those.
package integrity

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/iinterntechnologies-oss/crm-tool/internal/models"
)

// Report carries per-class deletion counts. On failure the counts cover
// the classes committed before the error; earlier deletions are not rolled
// back.
type Report struct {
	TasksDeleted      int64 `json:"tasks_deleted"`
	NotesDeleted      int64 `json:"notes_deleted"`
	ActivitiesDeleted int64 `json:"activities_deleted"`
}

// Total returns the number of rows removed across all classes
func (r *Report) Total() int64 {
	return r.TasksDeleted + r.NotesDeleted + r.ActivitiesDeleted
}

// Sweeper scans for and deletes orphan records. It expects exclusive
// access to the store; it is not meant to run beside live writers.
type Sweeper struct {
	db     *gorm.DB
	logger *logrus.Logger
}

// NewSweeper creates a sweeper over the given database
func NewSweeper(db *gorm.DB, logger *logrus.Logger) *Sweeper {
	return &Sweeper{db: db, logger: logger}
}

// Run sweeps tasks, then notes, then activities, one transaction per
// class. A failure aborts the failing class and skips the rest; classes
// already committed stay committed, and the returned report reflects them.
// Re-running after a failure is safe: rows already removed are simply
// absent on the next pass.
func (s *Sweeper) Run(ctx context.Context) (*Report, error) {
	report := &Report{}

	deleted, err := s.sweepTasks(ctx)
	if err != nil {
		return report, fmt.Errorf("sweeping tasks: %w", err)
	}
	report.TasksDeleted = deleted

	deleted, err = s.sweepNotes(ctx)
	if err != nil {
		return report, fmt.Errorf("sweeping notes: %w", err)
	}
	report.NotesDeleted = deleted

	deleted, err = s.sweepActivities(ctx)
	if err != nil {
		return report, fmt.Errorf("sweeping activities: %w", err)
	}
	report.ActivitiesDeleted = deleted

	s.logger.WithFields(logrus.Fields{
		"tasks_deleted":      report.TasksDeleted,
		"notes_deleted":      report.NotesDeleted,
		"activities_deleted": report.ActivitiesDeleted,
	}).Info("Integrity sweep completed")

	return report, nil
}

// sweepTasks removes tasks whose logical reference does not resolve:
// client/lead references to missing rows, and unknown kinds left behind by
// historical data. General tasks have no parent and always survive.
func (s *Sweeper) sweepTasks(ctx context.Context) (int64, error) {
	var deleted int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		n, err := s.deleteOrphans(tx, &models.Task{}, models.ParentClient, &models.Client{})
		if err != nil {
			return err
		}
		deleted += n

		n, err = s.deleteOrphans(tx, &models.Task{}, models.ParentLead, &models.Lead{})
		if err != nil {
			return err
		}
		deleted += n

		result := tx.Where("related_to NOT IN ?", []models.ParentKind{
			models.ParentClient, models.ParentLead, models.ParentGeneral,
		}).Delete(&models.Task{})
		if result.Error != nil {
			return result.Error
		}
		deleted += result.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}
	return deleted, nil
}

func (s *Sweeper) sweepNotes(ctx context.Context) (int64, error) {
	var deleted int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		n, err := s.deleteOrphans(tx, &models.Note{}, models.ParentClient, &models.Client{})
		if err != nil {
			return err
		}
		deleted += n

		n, err = s.deleteOrphans(tx, &models.Note{}, models.ParentLead, &models.Lead{})
		if err != nil {
			return err
		}
		deleted += n

		result := tx.Where("related_to NOT IN ?", []models.ParentKind{
			models.ParentClient, models.ParentLead,
		}).Delete(&models.Note{})
		if result.Error != nil {
			return result.Error
		}
		deleted += result.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}
	return deleted, nil
}

// sweepActivities removes activities whose (entity_type, entity_id) no
// longer names a live row in the referenced table, plus any with an
// unknown entity type.
func (s *Sweeper) sweepActivities(ctx context.Context) (int64, error) {
	parents := []struct {
		entityType models.EntityType
		model      interface{}
	}{
		{models.EntityLead, &models.Lead{}},
		{models.EntityClient, &models.Client{}},
		{models.EntityCustomer, &models.Customer{}},
		{models.EntityGoal, &models.Goal{}},
		{models.EntityTask, &models.Task{}},
	}

	var deleted int64
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, p := range parents {
			sub := tx.Session(&gorm.Session{NewDB: true}).Model(p.model).Select("id")
			result := tx.Where("entity_type = ? AND entity_id NOT IN (?)", p.entityType, sub).
				Delete(&models.Activity{})
			if result.Error != nil {
				return result.Error
			}
			deleted += result.RowsAffected
		}

		result := tx.Where("entity_type NOT IN ?", []models.EntityType{
			models.EntityLead, models.EntityClient, models.EntityCustomer,
			models.EntityGoal, models.EntityTask,
		}).Delete(&models.Activity{})
		if result.Error != nil {
			return result.Error
		}
		deleted += result.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}
	return deleted, nil
}

// deleteOrphans removes rows of model whose related_to equals kind and
// whose related_id is missing or no longer present in the parent table
func (s *Sweeper) deleteOrphans(tx *gorm.DB, model interface{}, kind models.ParentKind, parent interface{}) (int64, error) {
	sub := tx.Session(&gorm.Session{NewDB: true}).Model(parent).Select("id")
	result := tx.Where("related_to = ? AND (related_id IS NULL OR related_id NOT IN (?))", kind, sub).
		Delete(model)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
