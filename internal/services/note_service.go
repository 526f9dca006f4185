package services

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/iinterntechnologies-oss/crm-tool/internal/models"
	"github.com/iinterntechnologies-oss/crm-tool/internal/repository"
)

// NoteService handles business logic for notes. Notes always hang off a
// concrete client or lead; general is rejected here.
type NoteService struct {
	notes  *repository.NoteRepository
	logger *logrus.Logger
}

// NewNoteService creates a new note service
func NewNoteService(notes *repository.NoteRepository, logger *logrus.Logger) *NoteService {
	return &NoteService{notes: notes, logger: logger}
}

// List returns notes under a parent kind, optionally narrowed to one row.
// The kind is validated the same way a note's own reference would be.
func (s *NoteService) List(ctx context.Context, relatedTo, relatedID string) ([]models.Note, error) {
	switch models.ParentKind(relatedTo) {
	case models.ParentClient, models.ParentLead:
	default:
		return nil, fmt.Errorf("%w: unknown related_to %q", models.ErrInvalidParent, relatedTo)
	}
	return s.notes.List(ctx, relatedTo, relatedID)
}

// Get returns a note by id
func (s *NoteService) Get(ctx context.Context, id string) (*models.Note, error) {
	return s.notes.GetByID(ctx, id)
}

// Create validates the parent reference and persists a new note
func (s *NoteService) Create(ctx context.Context, req *models.NoteCreateRequest) (*models.Note, error) {
	ref, err := models.ParseParentRef(req.RelatedTo, req.RelatedID, false)
	if err != nil {
		return nil, err
	}

	note := &models.Note{
		Content:  req.Content,
		IsPinned: req.IsPinned,
	}
	note.ApplyParent(ref)

	if err := s.notes.Create(ctx, note); err != nil {
		return nil, fmt.Errorf("creating note: %w", err)
	}
	return note, nil
}

// Update applies a partial update to a note, re-resolving the parent
// reference whenever either half of the pair is touched
func (s *NoteService) Update(ctx context.Context, id string, req *models.NoteUpdateRequest) (*models.Note, error) {
	note, err := s.notes.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Content != nil {
		note.Content = *req.Content
	}
	if req.IsPinned != nil {
		note.IsPinned = *req.IsPinned
	}

	if req.TouchesParent() {
		relatedTo := note.RelatedTo
		if req.RelatedTo != nil {
			relatedTo = *req.RelatedTo
		}
		relatedID := note.RelatedID
		if req.RelatedID != nil {
			relatedID = *req.RelatedID
		}

		ref, err := models.ParseParentRef(relatedTo, relatedID, false)
		if err != nil {
			return nil, err
		}
		note.ApplyParent(ref)
	}

	if err := s.notes.Save(ctx, note); err != nil {
		return nil, fmt.Errorf("updating note: %w", err)
	}
	return note, nil
}

// Delete removes a note
func (s *NoteService) Delete(ctx context.Context, id string) error {
	return s.notes.Delete(ctx, id)
}
