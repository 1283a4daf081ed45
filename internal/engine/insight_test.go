package engine

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dreambook/internal/catalog"
	"dreambook/internal/models"
)

func TestGenerateInsight_CatalogTitleWinsVerbatim(t *testing.T) {
	tmpl := catalog.FindByTitle("Launch a Side Business")
	require.NotNil(t, tmpl)

	d := models.Dream{Title: "Launch a Side Business", Completed: true}
	assert.Equal(t, tmpl.Insight, GenerateInsight(&d, nil))
}

func TestGenerateInsight_Completed(t *testing.T) {
	d := models.Dream{Title: "My Own Goal", Completed: true}
	got := GenerateInsight(&d, nil)
	assert.Contains(t, got, "Congratulations")
	assert.Contains(t, got, "'My Own Goal'")
}

func TestGenerateInsight_ProgressBranches(t *testing.T) {
	profile := &models.UserProfile{Name: "Ada"}

	steps := func(done, total int) []models.Step {
		s := make([]models.Step, total)
		for i := range s {
			s[i] = models.Step{Title: fmt.Sprintf("s%d", i), Done: i < done}
		}
		return s
	}

	// 4/5 = 80%, above the 70 threshold
	d := models.Dream{Title: "My Own Goal", Steps: steps(4, 5)}
	got := GenerateInsight(&d, profile)
	assert.Contains(t, got, "80%")
	assert.Contains(t, got, "finish line")
	assert.Contains(t, got, "Ada")

	// 2/5 = 40%, middle branch
	d.Steps = steps(2, 5)
	got = GenerateInsight(&d, profile)
	assert.Contains(t, got, "40%")
	assert.Contains(t, got, "Solid progress")

	// 1/5 = 20%, starting branch
	d.Steps = steps(1, 5)
	got = GenerateInsight(&d, profile)
	assert.Contains(t, got, "single step")
}

func TestGenerateInsight_NameFallback(t *testing.T) {
	d := models.Dream{Title: "My Own Goal"}
	got := GenerateInsight(&d, nil)
	assert.Contains(t, got, "you")

	got = GenerateInsight(&d, &models.UserProfile{})
	assert.Contains(t, got, "you")
}

func TestGenerateInsight_Deterministic(t *testing.T) {
	d := models.Dream{Title: "My Own Goal", Steps: []models.Step{{Title: "s", Done: true}, {Title: "t"}}}
	profile := &models.UserProfile{Name: "Ada"}
	assert.Equal(t, GenerateInsight(&d, profile), GenerateInsight(&d, profile))
}
