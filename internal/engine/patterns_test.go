package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dreambook/internal/models"
)

func dream(category models.Category, mood models.Mood, opts ...func(*models.Dream)) models.Dream {
	d := models.Dream{
		Title:    "test",
		Category: category,
		Mood:     mood,
		Priority: 2,
	}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

func completed(d *models.Dream) { d.Completed = true }

func highPriority(d *models.Dream) { d.Priority = 3 }

func titles(insights []PatternInsight) []string {
	out := make([]string, len(insights))
	for i, p := range insights {
		out[i] = p.Title
	}
	return out
}

func TestAnalyze_EmptyList(t *testing.T) {
	got := Analyze(nil)
	require.Len(t, got, 1)
	assert.Equal(t, "Getting Started", got[0].Title)

	got = Analyze([]models.Dream{})
	require.Len(t, got, 1)
	assert.Equal(t, "Getting Started", got[0].Title)
}

func TestAnalyze_BaselineInsights(t *testing.T) {
	dreams := []models.Dream{
		dream(models.CategoryCareer, models.MoodExciting),
		dream(models.CategoryCareer, models.MoodExciting),
		dream(models.CategoryHealth, models.MoodPeaceful),
	}

	got := Analyze(dreams)
	// No completions, few active, no high priority: focus area and
	// emotional pattern only
	assert.Equal(t, []string{"Your Focus Area", "Emotional Pattern"}, titles(got))
	assert.Contains(t, got[0].Description, "Career")
	assert.Contains(t, got[0].Description, "2 out of 3")
	assert.Contains(t, got[1].Description, "exciting")
}

func TestAnalyze_CompletionRateOnlyWithCompletions(t *testing.T) {
	dreams := []models.Dream{
		dream(models.CategoryCareer, models.MoodExciting),
		dream(models.CategoryHealth, models.MoodPeaceful),
	}
	assert.NotContains(t, titles(Analyze(dreams)), "Completion Rate")

	dreams[0].Completed = true
	got := Analyze(dreams)
	require.Contains(t, titles(got), "Completion Rate")
	for _, p := range got {
		if p.Title == "Completion Rate" {
			assert.Contains(t, p.Description, "50%")
		}
	}
}

func TestAnalyze_CompletionTone(t *testing.T) {
	// 2 of 3 completed: 67%, above the 50% threshold
	dreams := []models.Dream{
		dream(models.CategoryCareer, models.MoodExciting, completed),
		dream(models.CategoryCareer, models.MoodExciting, completed),
		dream(models.CategoryHealth, models.MoodPeaceful),
	}
	for _, p := range Analyze(dreams) {
		if p.Title == "Completion Rate" {
			assert.Contains(t, p.Description, "Outstanding consistency!")
		}
	}

	// 1 of 3: below threshold
	dreams[1].Completed = false
	for _, p := range Analyze(dreams) {
		if p.Title == "Completion Rate" {
			assert.Contains(t, p.Description, "builds momentum")
		}
	}
}

func TestAnalyze_FocusCheckAboveFiveActive(t *testing.T) {
	var dreams []models.Dream
	for i := 0; i < 5; i++ {
		dreams = append(dreams, dream(models.CategoryCareer, models.MoodExciting))
	}
	assert.NotContains(t, titles(Analyze(dreams)), "Focus Check")

	dreams = append(dreams, dream(models.CategoryHealth, models.MoodPeaceful))
	got := Analyze(dreams)
	require.Contains(t, titles(got), "Focus Check")
	for _, p := range got {
		if p.Title == "Focus Check" {
			assert.Contains(t, p.Description, "6 active dreams")
		}
	}
}

func TestAnalyze_PriorityDreams(t *testing.T) {
	dreams := []models.Dream{
		dream(models.CategoryCareer, models.MoodExciting, highPriority),
		dream(models.CategoryHealth, models.MoodPeaceful),
		// Completed high-priority dreams are not counted
		dream(models.CategoryHealth, models.MoodPeaceful, highPriority, completed),
	}

	got := Analyze(dreams)
	require.Contains(t, titles(got), "Priority Dreams")
	for _, p := range got {
		if p.Title == "Priority Dreams" {
			assert.Contains(t, p.Description, "1 high-priority dream needs")
		}
	}
}

func TestAnalyze_TieBreakFirstSeen(t *testing.T) {
	dreams := []models.Dream{
		dream(models.CategoryTravel, models.MoodSurreal),
		dream(models.CategoryCareer, models.MoodExciting),
		dream(models.CategoryCareer, models.MoodExciting),
		dream(models.CategoryTravel, models.MoodSurreal),
	}

	got := Analyze(dreams)
	// Travel and Career both have 2, Travel appeared first
	assert.Contains(t, got[0].Description, "Travel")
	// Same rule for moods
	assert.Contains(t, got[1].Description, "surreal")
}

func TestCompletionRate(t *testing.T) {
	assert.Equal(t, 0, CompletionRate(nil))

	dreams := []models.Dream{
		dream(models.CategoryCareer, models.MoodExciting, completed),
		dream(models.CategoryCareer, models.MoodExciting),
		dream(models.CategoryCareer, models.MoodExciting),
	}
	// 1/3 rounds to 33
	assert.Equal(t, 33, CompletionRate(dreams))

	dreams[1].Completed = true
	// 2/3 rounds to 67
	assert.Equal(t, 67, CompletionRate(dreams))
}

func TestAverageActiveProgress(t *testing.T) {
	assert.Equal(t, 0.0, AverageActiveProgress(nil))

	dreams := []models.Dream{
		{Title: "a", Steps: []models.Step{{Title: "s1", Done: true}, {Title: "s2"}}},
		{Title: "b", Steps: []models.Step{{Title: "s1"}, {Title: "s2"}}},
		// Completed dreams are excluded from the average
		{Title: "c", Completed: true},
	}
	assert.InDelta(t, 0.25, AverageActiveProgress(dreams), 1e-9)
}
