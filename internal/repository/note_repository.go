package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/iinterntechnologies-oss/crm-tool/internal/models"
)

// NoteRepository handles database operations for notes
type NoteRepository struct {
	db *gorm.DB
}

// NewNoteRepository creates a new note repository
func NewNoteRepository(db *gorm.DB) *NoteRepository {
	return &NoteRepository{db: db}
}

// List retrieves notes for a parent kind, optionally narrowed to one
// parent row. Pinned notes sort first, then newest first.
func (r *NoteRepository) List(ctx context.Context, relatedTo string, relatedID string) ([]models.Note, error) {
	query := r.db.WithContext(ctx).Where("related_to = ?", relatedTo)
	if relatedID != "" {
		query = query.Where("related_id = ?", relatedID)
	}

	var notes []models.Note
	if err := query.Order("is_pinned DESC, created_at DESC").Find(&notes).Error; err != nil {
		return nil, err
	}
	return notes, nil
}

// GetByID retrieves a note by id
func (r *NoteRepository) GetByID(ctx context.Context, id string) (*models.Note, error) {
	var note models.Note
	if err := r.db.WithContext(ctx).First(&note, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &note, nil
}

// Create persists a new note
func (r *NoteRepository) Create(ctx context.Context, note *models.Note) error {
	return r.db.WithContext(ctx).Create(note).Error
}

// Save writes every column of an existing note, persisting cleared foreign
// keys as NULL after a parent re-resolution
func (r *NoteRepository) Save(ctx context.Context, note *models.Note) error {
	return r.db.WithContext(ctx).Save(note).Error
}

// Delete removes a note
func (r *NoteRepository) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Delete(&models.Note{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// CountByClient counts notes resolved to a client
func (r *NoteRepository) CountByClient(ctx context.Context, clientID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Note{}).Where("client_id = ?", clientID).Count(&count).Error
	return count, err
}

// CountByLead counts notes resolved to a lead
func (r *NoteRepository) CountByLead(ctx context.Context, leadID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Note{}).Where("lead_id = ?", leadID).Count(&count).Error
	return count, err
}
