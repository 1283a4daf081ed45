package models

import (
	"sort"
	"strings"
	"time"
)

// UserProfile holds the single per-installation user record. Exactly one
// row exists once onboarding completes; a reset deletes it along with
// every dream.
type UserProfile struct {
	Name                string    `json:"name"`
	Age                 int       `json:"age"`
	Skills              []string  `json:"skills"`
	Interests           []string  `json:"interests"`
	OnboardingCompleted bool      `json:"onboarding_completed"`
	CreatedAt           time.Time `json:"created_at"`
}

// NormalizeTags lowercases, trims, de-duplicates and sorts a tag list.
// Skills and interests are stored normalized so matching against the
// catalog is a plain set intersection.
func NormalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	var out []string
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// SkillSet returns the profile's skills as a lowercase set
func (p *UserProfile) SkillSet() map[string]struct{} {
	return tagSet(p.Skills)
}

// InterestSet returns the profile's interests as a lowercase set
func (p *UserProfile) InterestSet() map[string]struct{} {
	return tagSet(p.Interests)
}

func tagSet(tags []string) map[string]struct{} {
	set := make(map[string]struct{}, len(tags))
	for _, t := range tags {
		set[strings.ToLower(strings.TrimSpace(t))] = struct{}{}
	}
	delete(set, "")
	return set
}

// AvailableSkills are the options offered during onboarding
var AvailableSkills = []string{
	"Programming", "Design", "Writing", "Marketing", "Music", "Art",
	"Photography", "Cooking", "Teaching", "Leadership", "Communication",
	"Problem Solving", "Analytics", "Fitness", "Languages", "Public Speaking",
	"Engineering", "Medicine", "Law", "Finance",
}

// AvailableInterests are the options offered during onboarding
var AvailableInterests = []string{
	"Technology", "Science", "Sports", "Travel", "Food", "Music",
	"Art", "Fashion", "Gaming", "Reading", "Nature", "Photography",
	"Business", "Health", "Education", "Movies", "Volunteering",
	"Crafts", "Sustainability", "Psychology",
}
