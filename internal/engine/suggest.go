// Package engine implements the recommendation scorer, pattern analyzer
// and insight text generator. Everything here is a pure function over
// plain data so the CLI, TUI and chat layers can share it directly.
package engine

import (
	"sort"

	"dreambook/internal/catalog"
	"dreambook/internal/models"
)

const (
	skillWeight    = 3
	interestWeight = 2
)

// Suggest returns catalog templates ranked for the given profile.
// Templates whose title is already taken by an existing dream are
// excluded, as are templates whose age range does not contain the
// profile's age. Surviving templates are sorted by descending score;
// ties keep catalog order so results stay deterministic.
func Suggest(profile *models.UserProfile, existingTitles []string) []catalog.Template {
	return SuggestFrom(catalog.Templates, profile, existingTitles)
}

// SuggestFrom is Suggest against an explicit template list, used by tests
func SuggestFrom(templates []catalog.Template, profile *models.UserProfile, existingTitles []string) []catalog.Template {
	skills := profile.SkillSet()
	interests := profile.InterestSet()

	taken := make(map[string]struct{}, len(existingTitles))
	for _, t := range existingTitles {
		taken[t] = struct{}{}
	}

	var eligible []catalog.Template
	for _, t := range templates {
		if _, ok := taken[t.Title]; ok {
			continue
		}
		if !t.InAgeRange(profile.Age) {
			continue
		}
		eligible = append(eligible, t)
	}

	sort.SliceStable(eligible, func(i, j int) bool {
		return Score(&eligible[i], skills, interests) > Score(&eligible[j], skills, interests)
	})
	return eligible
}

// Score computes the weighted tag overlap between a template and a
// profile's skill/interest sets: 3 points per matching skill, 2 per
// matching interest.
func Score(t *catalog.Template, skills, interests map[string]struct{}) int {
	score := 0
	for _, s := range t.Skills {
		if _, ok := skills[s]; ok {
			score += skillWeight
		}
	}
	for _, i := range t.Interests {
		if _, ok := interests[i]; ok {
			score += interestWeight
		}
	}
	return score
}

// GroupByCategory buckets suggestions by category, preserving the ranked
// order within each bucket. The Discover view shows each category
// section capped at a few entries.
func GroupByCategory(templates []catalog.Template) map[models.Category][]catalog.Template {
	groups := make(map[models.Category][]catalog.Template)
	for _, t := range templates {
		groups[t.Category] = append(groups[t.Category], t)
	}
	return groups
}
