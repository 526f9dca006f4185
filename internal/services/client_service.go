package services

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/iinterntechnologies-oss/crm-tool/internal/models"
	"github.com/iinterntechnologies-oss/crm-tool/internal/onboarding"
	"github.com/iinterntechnologies-oss/crm-tool/internal/repository"
)

// ClientService handles business logic for clients, including project
// completion and onboarding task generation
type ClientService struct {
	clients    *repository.ClientRepository
	tasks      *repository.TaskRepository
	activities *ActivityService
	logger     *logrus.Logger
}

// NewClientService creates a new client service
func NewClientService(
	clients *repository.ClientRepository,
	tasks *repository.TaskRepository,
	activities *ActivityService,
	logger *logrus.Logger,
) *ClientService {
	return &ClientService{
		clients:    clients,
		tasks:      tasks,
		activities: activities,
		logger:     logger,
	}
}

// List returns all clients
func (s *ClientService) List(ctx context.Context) ([]models.Client, error) {
	return s.clients.List(ctx)
}

// Get returns a client by id
func (s *ClientService) Get(ctx context.Context, id string) (*models.Client, error) {
	return s.clients.GetByID(ctx, id)
}

// Create persists a new client and records it in the activity feed
func (s *ClientService) Create(ctx context.Context, req *models.ClientCreateRequest) (*models.Client, error) {
	client := &models.Client{
		BusinessName:     req.BusinessName,
		BusinessType:     req.BusinessType,
		Contact:          req.Contact,
		Onboarding:       req.Onboarding,
		Deadline:         req.Deadline,
		Delivery:         req.Delivery,
		PaymentCollected: req.PaymentCollected,
		DomainName:       req.DomainName,
		HostingProvider:  req.HostingProvider,
		CMSType:          req.CMSType,
		RenewalDate:      req.RenewalDate,
	}
	if req.ProjectStage != nil {
		client.ProjectStage = *req.ProjectStage
	}
	if req.MaintenancePlan != nil {
		client.MaintenancePlan = *req.MaintenancePlan
	}

	if err := s.clients.Create(ctx, client); err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	s.activities.Record(ctx, models.ActivityClientAdded, models.EntityClient,
		client.ID, client.BusinessName, fmt.Sprintf("New client: %s", client.BusinessName), nil)

	return client, nil
}

// Update applies a partial update to a client
func (s *ClientService) Update(ctx context.Context, id string, req *models.ClientUpdateRequest) (*models.Client, error) {
	client, err := s.clients.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.BusinessName != nil {
		client.BusinessName = *req.BusinessName
	}
	if req.BusinessType != nil {
		client.BusinessType = *req.BusinessType
	}
	if req.Contact != nil {
		client.Contact = *req.Contact
	}
	if req.Onboarding != nil {
		client.Onboarding = *req.Onboarding
	}
	if req.Deadline != nil {
		client.Deadline = *req.Deadline
	}
	if req.Delivery != nil {
		client.Delivery = *req.Delivery
	}
	if req.PaymentCollected != nil {
		client.PaymentCollected = *req.PaymentCollected
	}
	if req.IsCompleted != nil {
		client.IsCompleted = *req.IsCompleted
	}
	if req.DomainName != nil {
		client.DomainName = req.DomainName
	}
	if req.HostingProvider != nil {
		client.HostingProvider = req.HostingProvider
	}
	if req.CMSType != nil {
		client.CMSType = req.CMSType
	}
	if req.ProjectStage != nil {
		client.ProjectStage = *req.ProjectStage
	}
	if req.MaintenancePlan != nil {
		client.MaintenancePlan = *req.MaintenancePlan
	}
	if req.RenewalDate != nil {
		client.RenewalDate = req.RenewalDate
	}

	if err := s.clients.Save(ctx, client); err != nil {
		return nil, fmt.Errorf("updating client: %w", err)
	}
	return client, nil
}

// Delete removes a client; its tasks and notes go with it via cascade
func (s *ClientService) Delete(ctx context.Context, id string) error {
	return s.clients.Delete(ctx, id)
}

// Complete marks a client's project done and snapshots it into a customer
// record. The copy is one-way: the customer row carries no reference back
// to the client, and the client stays in place flagged completed.
func (s *ClientService) Complete(ctx context.Context, id string) (*models.Customer, error) {
	client, err := s.clients.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	customer := &models.Customer{
		BusinessName:    client.BusinessName,
		CompletedDate:   models.Today(),
		TotalPaid:       client.PaymentCollected,
		DomainName:      client.DomainName,
		HostingProvider: client.HostingProvider,
		CMSType:         client.CMSType,
		MaintenancePlan: client.MaintenancePlan,
		RenewalDate:     client.RenewalDate,
	}

	if err := s.clients.Complete(ctx, client, customer); err != nil {
		return nil, fmt.Errorf("completing client: %w", err)
	}

	s.activities.Record(ctx, models.ActivityCustomerCompleted, models.EntityCustomer,
		customer.ID, customer.BusinessName,
		fmt.Sprintf("Project completed: %s", customer.BusinessName),
		map[string]interface{}{"client_id": client.ID, "total_paid": customer.TotalPaid})

	s.logger.WithFields(logrus.Fields{
		"client_id":   client.ID,
		"customer_id": customer.ID,
	}).Info("Completed client project")

	return customer, nil
}

// GenerateOnboardingTasks expands the onboarding checklist for a client's
// service type and persists the resulting tasks
func (s *ClientService) GenerateOnboardingTasks(ctx context.Context, id string, req *models.OnboardClientRequest) ([]models.Task, error) {
	client, err := s.clients.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	onboardingDate := client.Onboarding
	if req.OnboardingDate != nil {
		onboardingDate = *req.OnboardingDate
	}

	tasks := onboarding.Generate(client.ID, req.ServiceType, onboardingDate)
	if err := s.tasks.CreateBatch(ctx, tasks); err != nil {
		return nil, fmt.Errorf("creating onboarding tasks: %w", err)
	}

	s.logger.WithFields(logrus.Fields{
		"client_id":    client.ID,
		"service_type": req.ServiceType,
		"tasks":        len(tasks),
	}).Info("Generated onboarding tasks")

	return tasks, nil
}
