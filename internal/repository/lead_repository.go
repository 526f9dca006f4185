package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/iinterntechnologies-oss/crm-tool/internal/models"
)

// LeadRepository handles database operations for leads
type LeadRepository struct {
	db *gorm.DB
}

// NewLeadRepository creates a new lead repository
func NewLeadRepository(db *gorm.DB) *LeadRepository {
	return &LeadRepository{db: db}
}

// List retrieves all leads
func (r *LeadRepository) List(ctx context.Context) ([]models.Lead, error) {
	var leads []models.Lead
	if err := r.db.WithContext(ctx).Find(&leads).Error; err != nil {
		return nil, err
	}
	return leads, nil
}

// GetByID retrieves a lead by id
func (r *LeadRepository) GetByID(ctx context.Context, id string) (*models.Lead, error) {
	var lead models.Lead
	if err := r.db.WithContext(ctx).First(&lead, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &lead, nil
}

// Create persists a new lead
func (r *LeadRepository) Create(ctx context.Context, lead *models.Lead) error {
	return r.db.WithContext(ctx).Create(lead).Error
}

// Save writes every column of an existing lead
func (r *LeadRepository) Save(ctx context.Context, lead *models.Lead) error {
	return r.db.WithContext(ctx).Save(lead).Error
}

// Convert writes a lead conversion as one unit: the new client, the
// lead's status update and the generated onboarding tasks commit
// together or not at all.
func (r *LeadRepository) Convert(ctx context.Context, lead *models.Lead, client *models.Client, tasks []models.Task) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(client).Error; err != nil {
			return err
		}
		if err := tx.Save(lead).Error; err != nil {
			return err
		}
		if len(tasks) == 0 {
			return nil
		}
		return tx.CreateInBatches(tasks, 100).Error
	})
}

// Delete removes a lead. Dependent task and note rows are removed by the
// cascade constraints on the typed foreign keys in the same statement.
func (r *LeadRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.Lead{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
