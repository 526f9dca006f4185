package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/iinterntechnologies-oss/crm-tool/internal/models"
	"github.com/iinterntechnologies-oss/crm-tool/internal/onboarding"
	"github.com/iinterntechnologies-oss/crm-tool/internal/repository"
)

// LeadService handles business logic for leads, including the
// lead-to-client conversion workflow
type LeadService struct {
	leads      *repository.LeadRepository
	activities *ActivityService
	logger     *logrus.Logger
}

// NewLeadService creates a new lead service
func NewLeadService(
	leads *repository.LeadRepository,
	activities *ActivityService,
	logger *logrus.Logger,
) *LeadService {
	return &LeadService{
		leads:      leads,
		activities: activities,
		logger:     logger,
	}
}

// List returns all leads
func (s *LeadService) List(ctx context.Context) ([]models.Lead, error) {
	return s.leads.List(ctx)
}

// Get returns a lead by id
func (s *LeadService) Get(ctx context.Context, id string) (*models.Lead, error) {
	return s.leads.GetByID(ctx, id)
}

// Create persists a new lead and records it in the activity feed
func (s *LeadService) Create(ctx context.Context, req *models.LeadCreateRequest) (*models.Lead, error) {
	lead := &models.Lead{
		BusinessName: req.BusinessName,
		Contact:      req.Contact,
		Comment:      req.Comment,
		Status:       req.Status,
	}
	if err := s.leads.Create(ctx, lead); err != nil {
		return nil, fmt.Errorf("creating lead: %w", err)
	}

	s.activities.Record(ctx, models.ActivityLeadCreated, models.EntityLead,
		lead.ID, lead.BusinessName, fmt.Sprintf("New lead: %s", lead.BusinessName), nil)

	return lead, nil
}

// Update applies a partial update to a lead
func (s *LeadService) Update(ctx context.Context, id string, req *models.LeadUpdateRequest) (*models.Lead, error) {
	lead, err := s.leads.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.BusinessName != nil {
		lead.BusinessName = *req.BusinessName
	}
	if req.Contact != nil {
		lead.Contact = *req.Contact
	}
	if req.Comment != nil {
		lead.Comment = *req.Comment
	}
	if req.Status != nil {
		lead.Status = *req.Status
	}

	if err := s.leads.Save(ctx, lead); err != nil {
		return nil, fmt.Errorf("updating lead: %w", err)
	}
	return lead, nil
}

// Delete removes a lead; its tasks and notes go with it via cascade
func (s *LeadService) Delete(ctx context.Context, id string) error {
	return s.leads.Delete(ctx, id)
}

// Convert turns a lead into a client and generates its onboarding tasks.
// The lead is kept, marked qualified; the new client record is
// independent of it.
func (s *LeadService) Convert(ctx context.Context, id string, req *models.ConvertLeadRequest) (*models.Client, []models.Task, error) {
	lead, err := s.leads.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	contact := lead.Contact
	if req.Contact != nil {
		contact = *req.Contact
	}
	onboardingDate := models.Today()
	if req.Onboarding != nil {
		onboardingDate = *req.Onboarding
	}

	client := &models.Client{
		ID:               uuid.NewString(),
		BusinessName:     lead.BusinessName,
		BusinessType:     req.BusinessType,
		Contact:          contact,
		Onboarding:       onboardingDate,
		Deadline:         req.Deadline,
		Delivery:         req.Delivery,
		PaymentCollected: req.PaymentCollected,
	}
	lead.Status = models.LeadStatusQualified
	tasks := onboarding.Generate(client.ID, req.ServiceType, onboardingDate)

	// One transaction: a failed conversion leaves no client row, no
	// status change and no tasks behind
	if err := s.leads.Convert(ctx, lead, client, tasks); err != nil {
		return nil, nil, fmt.Errorf("converting lead: %w", err)
	}

	s.activities.Record(ctx, models.ActivityClientAdded, models.EntityClient,
		client.ID, client.BusinessName,
		fmt.Sprintf("Converted lead to client: %s", client.BusinessName),
		map[string]interface{}{"lead_id": lead.ID, "service_type": req.ServiceType})

	s.logger.WithFields(logrus.Fields{
		"lead_id":      lead.ID,
		"client_id":    client.ID,
		"service_type": req.ServiceType,
		"tasks":        len(tasks),
	}).Info("Converted lead to client")

	return client, tasks, nil
}
