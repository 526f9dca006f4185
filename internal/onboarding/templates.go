// Package onboarding expands a service-type template into dated task
// drafts for a newly onboarded client.
package onboarding

import "github.com/iinterntechnologies-oss/crm-tool/internal/models"

// TemplateName tags generated tasks with their provenance
const TemplateName = "onboarding"

// DefaultServiceType is used when a service type has no template of its own
const DefaultServiceType = "default"

// TaskBlueprint is one entry of an onboarding template: a task with a due
// date expressed as an offset in days from the onboarding date.
type TaskBlueprint struct {
	Title        string
	Description  string
	Priority     models.TaskPriority
	DaysUntilDue int
}

// baseChecklist applies to every service type.
var baseChecklist = []TaskBlueprint{
	{
		Title:        "Send Contract",
		Description:  "Prepare and send service agreement to client for signature. Include project scope, timeline, payment terms, and deliverables.",
		Priority:     models.PriorityUrgent,
		DaysUntilDue: 1,
	},
	{
		Title:        "Collect Brand Assets",
		Description:  "Request and collect all brand assets from client: logo files, brand guidelines, style guides, existing marketing materials, content, and any design preferences.",
		Priority:     models.PriorityHigh,
		DaysUntilDue: 3,
	},
	{
		Title:        "Setup Dev Environment",
		Description:  "Configure development environment: repositories, hosting, databases, version control, testing servers, and domain setup.",
		Priority:     models.PriorityHigh,
		DaysUntilDue: 5,
	},
	{
		Title:        "Initial Design Sprint",
		Description:  "Conduct initial design/strategy meeting with client. Review requirements, create wireframes, establish design system, and get approval on visual direction.",
		Priority:     models.PriorityHigh,
		DaysUntilDue: 7,
	},
}

var fullDevelopmentTasks = []TaskBlueprint{
	{
		Title:        "Technical Architecture Review",
		Description:  "Review and finalize technical stack, system architecture, database design, API specifications, and security requirements.",
		Priority:     models.PriorityHigh,
		DaysUntilDue: 7,
	},
	{
		Title:        "Frontend Development Setup",
		Description:  "Initialize frontend project structure, establish coding standards, setup build tools, testing framework, and component library.",
		Priority:     models.PriorityHigh,
		DaysUntilDue: 5,
	},
	{
		Title:        "Backend Development Setup",
		Description:  "Initialize backend project structure, setup database schema, configure API endpoints, authentication, and deployment pipeline.",
		Priority:     models.PriorityHigh,
		DaysUntilDue: 5,
	},
	{
		Title:        "Create Testing Plan",
		Description:  "Develop comprehensive testing strategy: unit tests, integration tests, E2E tests, performance testing, and UAT criteria.",
		Priority:     models.PriorityMedium,
		DaysUntilDue: 10,
	},
}

var seoTasks = []TaskBlueprint{
	{
		Title:        "Keyword Research & Analysis",
		Description:  "Conduct comprehensive keyword research, analyze competition, identify opportunity keywords, and create target keyword list.",
		Priority:     models.PriorityHigh,
		DaysUntilDue: 7,
	},
	{
		Title:        "Site Audit & Analysis",
		Description:  "Perform SEO audit of current site (if existing): technical SEO, on-page optimization, backlink profile, and competitive analysis.",
		Priority:     models.PriorityHigh,
		DaysUntilDue: 5,
	},
	{
		Title:        "SEO Strategy Document",
		Description:  "Create detailed SEO strategy document: goals, timeline, metrics, content plan, technical improvements, and link building strategy.",
		Priority:     models.PriorityHigh,
		DaysUntilDue: 10,
	},
	{
		Title:        "Setup Analytics & Tracking",
		Description:  "Setup Google Analytics 4, Search Console, rank tracking tools, and conversion tracking. Create baseline metrics dashboard.",
		Priority:     models.PriorityMedium,
		DaysUntilDue: 3,
	},
}

var maintenanceTasks = []TaskBlueprint{
	{
		Title:        "Site Audit & Health Check",
		Description:  "Perform comprehensive site audit: performance metrics, security scan, broken links, outdated content, and technical issues.",
		Priority:     models.PriorityHigh,
		DaysUntilDue: 2,
	},
	{
		Title:        "Setup Monitoring & Alerts",
		Description:  "Configure uptime monitoring, performance monitoring, security alerts, and error tracking tools.",
		Priority:     models.PriorityHigh,
		DaysUntilDue: 3,
	},
	{
		Title:        "Document Site Specifications",
		Description:  "Create/update comprehensive documentation: site architecture, dependencies, admin processes, backup procedures, and disaster recovery plan.",
		Priority:     models.PriorityMedium,
		DaysUntilDue: 7,
	},
	{
		Title:        "Plan Maintenance Schedule",
		Description:  "Create monthly maintenance schedule: updates, backups, security patches, performance optimization, and content review.",
		Priority:     models.PriorityMedium,
		DaysUntilDue: 5,
	},
}

var brandingTasks = []TaskBlueprint{
	{
		Title:        "Brand Discovery Sessions",
		Description:  "Conduct brand discovery workshops to understand company values, target audience, positioning, and unique selling propositions.",
		Priority:     models.PriorityHigh,
		DaysUntilDue: 5,
	},
	{
		Title:        "Competitor & Market Analysis",
		Description:  "Analyze competitor branding, market trends, industry standards, and identify positioning opportunities.",
		Priority:     models.PriorityHigh,
		DaysUntilDue: 7,
	},
	{
		Title:        "Brand Strategy Document",
		Description:  "Create comprehensive brand strategy: positioning, messaging, visual direction, tone of voice, and brand guidelines outline.",
		Priority:     models.PriorityHigh,
		DaysUntilDue: 10,
	},
	{
		Title:        "Visual Identity Design",
		Description:  "Design brand identity elements: logo concepts, color palette, typography, imagery style, and brand applications.",
		Priority:     models.PriorityHigh,
		DaysUntilDue: 14,
	},
}

// templates maps each service type to its additional tasks beyond the base
// checklist. Service types without an entry fall back to base-only.
var templates = map[string][]TaskBlueprint{
	"full_development": fullDevelopmentTasks,
	"seo":              seoTasks,
	"maintenance":      maintenanceTasks,
	"branding":         brandingTasks,
	"web_design":       nil,
	DefaultServiceType: nil,
}

// Blueprints returns the ordered template for a service type: the base
// checklist followed by the service-specific tasks. Unknown service types
// get the default (base-only) template.
func Blueprints(serviceType string) []TaskBlueprint {
	additional, ok := templates[serviceType]
	if !ok {
		additional = templates[DefaultServiceType]
	}

	out := make([]TaskBlueprint, 0, len(baseChecklist)+len(additional))
	out = append(out, baseChecklist...)
	out = append(out, additional...)
	return out
}
