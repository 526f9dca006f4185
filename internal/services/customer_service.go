package services

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/iinterntechnologies-oss/crm-tool/internal/models"
	"github.com/iinterntechnologies-oss/crm-tool/internal/repository"
)

// CustomerService handles business logic for completed customers
type CustomerService struct {
	customers *repository.CustomerRepository
	logger    *logrus.Logger
}

// NewCustomerService creates a new customer service
func NewCustomerService(customers *repository.CustomerRepository, logger *logrus.Logger) *CustomerService {
	return &CustomerService{customers: customers, logger: logger}
}

// List returns all customers
func (s *CustomerService) List(ctx context.Context) ([]models.Customer, error) {
	return s.customers.List(ctx)
}

// Get returns a customer by id
func (s *CustomerService) Get(ctx context.Context, id string) (*models.Customer, error) {
	return s.customers.GetByID(ctx, id)
}

// Create persists a customer entered directly, outside the client
// completion flow
func (s *CustomerService) Create(ctx context.Context, req *models.CustomerCreateRequest) (*models.Customer, error) {
	customer := &models.Customer{
		BusinessName:    req.BusinessName,
		CompletedDate:   req.CompletedDate,
		TotalPaid:       req.TotalPaid,
		DomainName:      req.DomainName,
		HostingProvider: req.HostingProvider,
		CMSType:         req.CMSType,
		RenewalDate:     req.RenewalDate,
	}
	if req.MaintenancePlan != nil {
		customer.MaintenancePlan = *req.MaintenancePlan
	}
	if customer.CompletedDate.IsZero() {
		customer.CompletedDate = models.Today()
	}

	if err := s.customers.Create(ctx, customer); err != nil {
		return nil, fmt.Errorf("creating customer: %w", err)
	}
	return customer, nil
}

// Update applies a partial update to a customer
func (s *CustomerService) Update(ctx context.Context, id string, req *models.CustomerUpdateRequest) (*models.Customer, error) {
	customer, err := s.customers.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.BusinessName != nil {
		customer.BusinessName = *req.BusinessName
	}
	if req.CompletedDate != nil {
		customer.CompletedDate = *req.CompletedDate
	}
	if req.TotalPaid != nil {
		customer.TotalPaid = *req.TotalPaid
	}
	if req.DomainName != nil {
		customer.DomainName = req.DomainName
	}
	if req.HostingProvider != nil {
		customer.HostingProvider = req.HostingProvider
	}
	if req.CMSType != nil {
		customer.CMSType = req.CMSType
	}
	if req.MaintenancePlan != nil {
		customer.MaintenancePlan = *req.MaintenancePlan
	}
	if req.RenewalDate != nil {
		customer.RenewalDate = req.RenewalDate
	}

	if err := s.customers.Save(ctx, customer); err != nil {
		return nil, fmt.Errorf("updating customer: %w", err)
	}
	return customer, nil
}

// Delete removes a customer
func (s *CustomerService) Delete(ctx context.Context, id string) error {
	return s.customers.Delete(ctx, id)
}
