package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dreambook/internal/catalog"
	"dreambook/internal/models"
)

func testTemplates() []catalog.Template {
	return []catalog.Template{
		{
			Title: "Skill Match", Category: models.CategoryCareer,
			Skills: []string{"programming"}, MinAge: 0, MaxAge: 100,
		},
		{
			Title: "Interest Match", Category: models.CategoryCreative,
			Interests: []string{"music"}, MinAge: 0, MaxAge: 100,
		},
		{
			Title: "Both Match", Category: models.CategoryTechnology,
			Skills: []string{"programming"}, Interests: []string{"music"},
			MinAge: 0, MaxAge: 100,
		},
		{
			Title: "No Match", Category: models.CategoryTravel,
			Skills: []string{"cooking"}, Interests: []string{"food"},
			MinAge: 0, MaxAge: 100,
		},
		{
			Title: "Adults Only", Category: models.CategoryFinancial,
			Skills: []string{"programming"}, MinAge: 21, MaxAge: 65,
		},
	}
}

func TestSuggestFrom_Ranking(t *testing.T) {
	profile := &models.UserProfile{
		Age:       30,
		Skills:    []string{"programming"},
		Interests: []string{"music"},
	}

	got := SuggestFrom(testTemplates(), profile, nil)
	require.Len(t, got, 5)

	// skill+interest (5) > skill (3, two entries tied) > interest (2) > none (0)
	assert.Equal(t, "Both Match", got[0].Title)
	assert.Equal(t, "Skill Match", got[1].Title)
	assert.Equal(t, "Adults Only", got[2].Title)
	assert.Equal(t, "Interest Match", got[3].Title)
	assert.Equal(t, "No Match", got[4].Title)
}

func TestSuggestFrom_AgeFilter(t *testing.T) {
	profile := &models.UserProfile{Age: 18, Skills: []string{"programming"}}

	got := SuggestFrom(testTemplates(), profile, nil)
	for _, tmpl := range got {
		assert.NotEqual(t, "Adults Only", tmpl.Title)
	}
	assert.Len(t, got, 4)
}

func TestSuggestFrom_ExcludesExistingTitles(t *testing.T) {
	profile := &models.UserProfile{Age: 30}

	got := SuggestFrom(testTemplates(), profile, []string{"Skill Match", "No Match"})
	assert.Len(t, got, 3)
	for _, tmpl := range got {
		assert.NotContains(t, []string{"Skill Match", "No Match"}, tmpl.Title)
	}
}

func TestSuggestFrom_TiesKeepInputOrder(t *testing.T) {
	// Nothing matches, every score is zero, order must be untouched
	profile := &models.UserProfile{Age: 30}

	got := SuggestFrom(testTemplates(), profile, nil)
	require.Len(t, got, 5)
	assert.Equal(t, "Skill Match", got[0].Title)
	assert.Equal(t, "Interest Match", got[1].Title)
	assert.Equal(t, "Both Match", got[2].Title)
	assert.Equal(t, "No Match", got[3].Title)
	assert.Equal(t, "Adults Only", got[4].Title)
}

func TestScore_Weights(t *testing.T) {
	tmpl := catalog.Template{
		Skills:    []string{"programming", "design"},
		Interests: []string{"music", "art"},
	}
	skills := map[string]struct{}{"programming": {}, "design": {}}
	interests := map[string]struct{}{"music": {}}

	// 2 skills * 3 + 1 interest * 2
	assert.Equal(t, 8, Score(&tmpl, skills, interests))
	assert.Equal(t, 0, Score(&tmpl, map[string]struct{}{}, map[string]struct{}{}))
}

func TestSuggest_EntrepreneurProfile(t *testing.T) {
	profile := &models.UserProfile{
		Age:       30,
		Skills:    []string{"marketing", "leadership", "communication"},
		Interests: []string{"business", "technology"},
	}

	got := Suggest(profile, nil)
	require.NotEmpty(t, got)
	assert.Equal(t, "Launch a Side Business", got[0].Title)
}

func TestGroupByCategory(t *testing.T) {
	profile := &models.UserProfile{Age: 30}
	groups := GroupByCategory(SuggestFrom(testTemplates(), profile, nil))

	assert.Len(t, groups[models.CategoryCareer], 1)
	assert.Len(t, groups[models.CategoryFinancial], 1)
	assert.Empty(t, groups[models.CategoryHealth])
}
