package onboarding

import "github.com/iinterntechnologies-oss/crm-tool/internal/models"

// Generate expands the template for serviceType into task drafts for a
// client. Due dates are the onboarding date plus each blueprint's offset;
// a zero onboardingDate defaults to today. The drafts are not persisted
// and the function has no side effects, so the same inputs always yield
// the same ordered list.
func Generate(clientID string, serviceType string, onboardingDate models.Date) []models.Task {
	if onboardingDate.IsZero() {
		onboardingDate = models.Today()
	}

	parent := models.ParentRef{Kind: models.ParentClient, ID: clientID}
	blueprints := Blueprints(serviceType)

	tasks := make([]models.Task, 0, len(blueprints))
	for _, bp := range blueprints {
		due := onboardingDate.AddDays(bp.DaysUntilDue)
		template := TemplateName
		service := serviceType

		task := models.Task{
			Title:        bp.Title,
			Description:  bp.Description,
			Priority:     bp.Priority,
			Status:       models.TaskPending,
			DueDate:      &due,
			TaskTemplate: &template,
			ServiceType:  &service,
			IsTemplate:   false,
		}
		task.ApplyParent(parent)
		tasks = append(tasks, task)
	}

	return tasks
}
