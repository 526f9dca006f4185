package models

import "encoding/json"

// Auth

// RegisterRequest is the payload for creating an operator account
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest carries form credentials (OAuth2 password-flow field names)
type LoginRequest struct {
	Username string `form:"username" json:"username" binding:"required"`
	Password string `form:"password" json:"password" binding:"required"`
}

// TokenResponse is returned on successful login
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Leads

type LeadCreateRequest struct {
	BusinessName string     `json:"business_name" binding:"required"`
	Contact      string     `json:"contact"`
	Comment      string     `json:"comment"`
	Status       LeadStatus `json:"status" binding:"omitempty,oneof=new contacted qualified lost"`
}

type LeadUpdateRequest struct {
	BusinessName *string     `json:"business_name"`
	Contact      *string     `json:"contact"`
	Comment      *string     `json:"comment"`
	Status       *LeadStatus `json:"status" binding:"omitempty,oneof=new contacted qualified lost"`
}

// Clients

type ClientCreateRequest struct {
	BusinessName     string        `json:"business_name" binding:"required"`
	BusinessType     string        `json:"business_type"`
	Contact          string        `json:"contact"`
	Onboarding       Date          `json:"onboarding"`
	Deadline         Date          `json:"deadline"`
	Delivery         string        `json:"delivery"`
	PaymentCollected float64       `json:"payment_collected"`
	DomainName       *string       `json:"domain_name"`
	HostingProvider  *string       `json:"hosting_provider"`
	CMSType          *string       `json:"cms_type"`
	ProjectStage     *ProjectStage `json:"project_stage" binding:"omitempty,oneof=Discovery Design Development UAT Launched"`
	MaintenancePlan  *bool         `json:"maintenance_plan"`
	RenewalDate      *Date         `json:"renewal_date"`
}

type ClientUpdateRequest struct {
	BusinessName     *string       `json:"business_name"`
	BusinessType     *string       `json:"business_type"`
	Contact          *string       `json:"contact"`
	Onboarding       *Date         `json:"onboarding"`
	Deadline         *Date         `json:"deadline"`
	Delivery         *string       `json:"delivery"`
	PaymentCollected *float64      `json:"payment_collected"`
	IsCompleted      *bool         `json:"is_completed"`
	DomainName       *string       `json:"domain_name"`
	HostingProvider  *string       `json:"hosting_provider"`
	CMSType          *string       `json:"cms_type"`
	ProjectStage     *ProjectStage `json:"project_stage" binding:"omitempty,oneof=Discovery Design Development UAT Launched"`
	MaintenancePlan  *bool         `json:"maintenance_plan"`
	RenewalDate      *Date         `json:"renewal_date"`
}

// OnboardClientRequest triggers onboarding task generation for a client
type OnboardClientRequest struct {
	ServiceType    string `json:"service_type" binding:"required"`
	OnboardingDate *Date  `json:"onboarding_date"`
}

// ConvertLeadRequest turns a lead into a client and generates its
// onboarding tasks
type ConvertLeadRequest struct {
	BusinessType     string  `json:"business_type"`
	Contact          *string `json:"contact"`
	Onboarding       *Date   `json:"onboarding"`
	Deadline         Date    `json:"deadline"`
	Delivery         string  `json:"delivery"`
	PaymentCollected float64 `json:"payment_collected"`
	ServiceType      string  `json:"service_type" binding:"required"`
}

// Customers

type CustomerCreateRequest struct {
	BusinessName    string  `json:"business_name" binding:"required"`
	CompletedDate   Date    `json:"completed_date"`
	TotalPaid       float64 `json:"total_paid"`
	DomainName      *string `json:"domain_name"`
	HostingProvider *string `json:"hosting_provider"`
	CMSType         *string `json:"cms_type"`
	MaintenancePlan *bool   `json:"maintenance_plan"`
	RenewalDate     *Date   `json:"renewal_date"`
}

type CustomerUpdateRequest struct {
	BusinessName    *string  `json:"business_name"`
	CompletedDate   *Date    `json:"completed_date"`
	TotalPaid       *float64 `json:"total_paid"`
	DomainName      *string  `json:"domain_name"`
	HostingProvider *string  `json:"hosting_provider"`
	CMSType         *string  `json:"cms_type"`
	MaintenancePlan *bool    `json:"maintenance_plan"`
	RenewalDate     *Date    `json:"renewal_date"`
}

// Goals

type GoalCreateRequest struct {
	Title        string  `json:"title"`
	TargetAmount float64 `json:"target_amount" binding:"required"`
	Deadline     Date    `json:"deadline"`
	DateStarted  Date    `json:"date_started"`
}

type GoalUpdateRequest struct {
	Title        *string  `json:"title"`
	TargetAmount *float64 `json:"target_amount"`
	Deadline     *Date    `json:"deadline"`
	DateStarted  *Date    `json:"date_started"`
	DateAchieved *Date    `json:"date_achieved"`
	IsAchieved   *bool    `json:"is_achieved"`
}

// Tasks

type TaskCreateRequest struct {
	Title        string       `json:"title" binding:"required"`
	Description  string       `json:"description"`
	RelatedTo    string       `json:"related_to" binding:"required"`
	RelatedID    string       `json:"related_id"`
	Priority     TaskPriority `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	Status       TaskStatus   `json:"status" binding:"omitempty,oneof=pending in_progress completed cancelled"`
	DueDate      *Date        `json:"due_date"`
	TaskTemplate *string      `json:"task_template"`
	ServiceType  *string      `json:"service_type"`
	IsTemplate   bool         `json:"is_template"`
}

type TaskUpdateRequest struct {
	Title        *string       `json:"title"`
	Description  *string       `json:"description"`
	RelatedTo    *string       `json:"related_to"`
	RelatedID    *string       `json:"related_id"`
	Priority     *TaskPriority `json:"priority" binding:"omitempty,oneof=low medium high urgent"`
	Status       *TaskStatus   `json:"status" binding:"omitempty,oneof=pending in_progress completed cancelled"`
	DueDate      *Date         `json:"due_date"`
	TaskTemplate *string       `json:"task_template"`
	ServiceType  *string       `json:"service_type"`
	IsTemplate   *bool         `json:"is_template"`
}

// TouchesParent reports whether the update payload repoints the task,
// which forces a full re-resolution of the typed foreign keys
func (r *TaskUpdateRequest) TouchesParent() bool {
	return r.RelatedTo != nil || r.RelatedID != nil
}

// Notes

type NoteCreateRequest struct {
	Content   string `json:"content" binding:"required"`
	RelatedTo string `json:"related_to" binding:"required"`
	RelatedID string `json:"related_id" binding:"required"`
	IsPinned  bool   `json:"is_pinned"`
}

type NoteUpdateRequest struct {
	Content   *string `json:"content"`
	RelatedTo *string `json:"related_to"`
	RelatedID *string `json:"related_id"`
	IsPinned  *bool   `json:"is_pinned"`
}

// TouchesParent reports whether the update payload repoints the note
func (r *NoteUpdateRequest) TouchesParent() bool {
	return r.RelatedTo != nil || r.RelatedID != nil
}

// Activities

type ActivityCreateRequest struct {
	ActivityType ActivityType    `json:"activity_type" binding:"required"`
	EntityType   EntityType      `json:"entity_type" binding:"required,oneof=lead client customer goal task"`
	EntityID     string          `json:"entity_id" binding:"required"`
	EntityName   string          `json:"entity_name"`
	Description  string          `json:"description"`
	Metadata     json.RawMessage `json:"metadata"`
}

// Stats

// Stats is the dashboard aggregate: lead count, active projects, revenue
// across clients and customers, and client deadlines within the next week
type Stats struct {
	TotalLeads     int64   `json:"total_leads"`
	ActiveProjects int64   `json:"active_projects"`
	Revenue        float64 `json:"revenue"`
	Deadlines      int64   `json:"deadlines"`
}
