package onboarding

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iinterntechnologies-oss/crm-tool/internal/models"
)

func TestGenerate_SEO(t *testing.T) {
	onboarding := models.NewDate(2026, time.March, 1)
	tasks := Generate("client-1", "seo", onboarding)

	require.Len(t, tasks, 8)

	// Base checklist comes first with its fixed offsets
	first := tasks[0]
	assert.Equal(t, "Send Contract", first.Title)
	assert.Equal(t, models.PriorityUrgent, first.Priority)
	require.NotNil(t, first.DueDate)
	assert.Equal(t, "2026-03-02", first.DueDate.String())

	// Service-specific tasks follow
	keyword := tasks[4]
	assert.Equal(t, "Keyword Research & Analysis", keyword.Title)
	require.NotNil(t, keyword.DueDate)
	assert.Equal(t, "2026-03-08", keyword.DueDate.String())

	for _, task := range tasks {
		assert.Equal(t, models.TaskPending, task.Status)
		assert.Equal(t, "client", task.RelatedTo)
		require.NotNil(t, task.ClientID)
		assert.Equal(t, "client-1", *task.ClientID)
		assert.Nil(t, task.LeadID)
		require.NotNil(t, task.TaskTemplate)
		assert.Equal(t, TemplateName, *task.TaskTemplate)
		require.NotNil(t, task.ServiceType)
		assert.Equal(t, "seo", *task.ServiceType)
	}
}

func TestGenerate_UnknownServiceTypeFallsBack(t *testing.T) {
	onboarding := models.NewDate(2026, time.March, 1)

	unknown := Generate("client-1", "underwater_basket_weaving", onboarding)
	fallback := Generate("client-1", DefaultServiceType, onboarding)

	require.Len(t, unknown, 4)
	require.Len(t, fallback, 4)
	for i := range unknown {
		assert.Equal(t, fallback[i].Title, unknown[i].Title)
		assert.Equal(t, fallback[i].DueDate.String(), unknown[i].DueDate.String())
	}
}

func TestGenerate_WebDesignIsBaseOnly(t *testing.T) {
	tasks := Generate("client-1", "web_design", models.NewDate(2026, time.March, 1))
	require.Len(t, tasks, 4)
	assert.Equal(t, "Send Contract", tasks[0].Title)
	assert.Equal(t, "Initial Design Sprint", tasks[3].Title)
}

func TestGenerate_Deterministic(t *testing.T) {
	onboarding := models.NewDate(2026, time.March, 1)

	a := Generate("client-1", "branding", onboarding)
	b := Generate("client-1", "branding", onboarding)

	require.Equal(t, len(a), len(b))
	for i := range a {
		assert.Equal(t, a[i].Title, b[i].Title)
		assert.Equal(t, a[i].Priority, b[i].Priority)
		assert.Equal(t, a[i].DueDate.String(), b[i].DueDate.String())
	}
}

func TestGenerate_ZeroDateDefaultsToToday(t *testing.T) {
	tasks := Generate("client-1", "maintenance", models.Date{})
	require.NotEmpty(t, tasks)

	want := models.Today().AddDays(2)
	require.NotNil(t, tasks[4].DueDate)
	assert.Equal(t, want.String(), tasks[4].DueDate.String())
}

func TestBlueprints_FullDevelopment(t *testing.T) {
	blueprints := Blueprints("full_development")
	require.Len(t, blueprints, 8)
	assert.Equal(t, "Technical Architecture Review", blueprints[4].Title)
	assert.Equal(t, 10, blueprints[7].DaysUntilDue)
}
