package models

import "time"

// Category classifies what area of life a dream belongs to
type Category string

const (
	CategoryCareer         Category = "Career"
	CategoryHealth         Category = "Health"
	CategoryEducation      Category = "Education"
	CategoryCreative       Category = "Creative"
	CategoryTravel         Category = "Travel"
	CategoryFinancial      Category = "Financial"
	CategoryPersonalGrowth Category = "Personal Growth"
	CategoryTechnology     Category = "Technology"
	CategorySocial         Category = "Social"
	CategoryAdventure      Category = "Adventure"
)

// Categories lists all categories in display order
var Categories = []Category{
	CategoryCareer, CategoryHealth, CategoryEducation, CategoryCreative,
	CategoryTravel, CategoryFinancial, CategoryPersonalGrowth,
	CategoryTechnology, CategorySocial, CategoryAdventure,
}

// ParseCategory decodes a stored category value, falling back to
// Personal Growth for unrecognized values rather than failing.
func ParseCategory(s string) Category {
	for _, c := range Categories {
		if string(c) == s {
			return c
		}
	}
	return CategoryPersonalGrowth
}

// Icon returns a short glyph used in terminal views
func (c Category) Icon() string {
	switch c {
	case CategoryCareer:
		return "💼"
	case CategoryHealth:
		return "❤"
	case CategoryEducation:
		return "📖"
	case CategoryCreative:
		return "🎨"
	case CategoryTravel:
		return "✈"
	case CategoryFinancial:
		return "$"
	case CategoryPersonalGrowth:
		return "🌱"
	case CategoryTechnology:
		return "💻"
	case CategorySocial:
		return "👥"
	case CategoryAdventure:
		return "⛰"
	default:
		return "•"
	}
}

// Color returns the ANSI 256 color code associated with the category
func (c Category) Color() string {
	switch c {
	case CategoryCareer:
		return "33"
	case CategoryHealth:
		return "196"
	case CategoryEducation:
		return "214"
	case CategoryCreative:
		return "135"
	case CategoryTravel:
		return "44"
	case CategoryFinancial:
		return "40"
	case CategoryPersonalGrowth:
		return "121"
	case CategoryTechnology:
		return "63"
	case CategorySocial:
		return "205"
	case CategoryAdventure:
		return "130"
	default:
		return "250"
	}
}

// Mood captures the emotional tone of a dream
type Mood string

const (
	MoodPeaceful   Mood = "Peaceful"
	MoodJoyful     Mood = "Joyful"
	MoodAnxious    Mood = "Anxious"
	MoodMysterious Mood = "Mysterious"
	MoodFearful    Mood = "Fearful"
	MoodExciting   Mood = "Exciting"
	MoodSad        Mood = "Sad"
	MoodNeutral    Mood = "Neutral"
	MoodSurreal    Mood = "Surreal"
	MoodNostalgic  Mood = "Nostalgic"
)

// Moods lists all moods in display order
var Moods = []Mood{
	MoodPeaceful, MoodJoyful, MoodAnxious, MoodMysterious, MoodFearful,
	MoodExciting, MoodSad, MoodNeutral, MoodSurreal, MoodNostalgic,
}

// ParseMood decodes a stored mood value, falling back to Neutral
// for unrecognized values rather than failing.
func ParseMood(s string) Mood {
	for _, m := range Moods {
		if string(m) == s {
			return m
		}
	}
	return MoodNeutral
}

// Icon returns a short glyph used in terminal views
func (m Mood) Icon() string {
	switch m {
	case MoodPeaceful:
		return "🌙"
	case MoodJoyful:
		return "☀"
	case MoodAnxious:
		return "⚡"
	case MoodMysterious:
		return "👁"
	case MoodFearful:
		return "⚠"
	case MoodExciting:
		return "🔥"
	case MoodSad:
		return "🌧"
	case MoodNeutral:
		return "○"
	case MoodSurreal:
		return "✨"
	case MoodNostalgic:
		return "🕰"
	default:
		return "○"
	}
}

// Color returns the ANSI 256 color code associated with the mood
func (m Mood) Color() string {
	switch m {
	case MoodPeaceful:
		return "51"
	case MoodJoyful:
		return "226"
	case MoodAnxious:
		return "214"
	case MoodMysterious:
		return "135"
	case MoodFearful:
		return "196"
	case MoodExciting:
		return "205"
	case MoodSad:
		return "27"
	case MoodNeutral:
		return "245"
	case MoodSurreal:
		return "99"
	case MoodNostalgic:
		return "137"
	default:
		return "250"
	}
}

// Step is a single actionable item within a dream
type Step struct {
	Title string `json:"title"`
	Done  bool   `json:"done"`
}

// Dream represents an aspirational goal with steps toward it
type Dream struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    Category  `json:"category"`
	Mood        Mood      `json:"mood"`
	Priority    int       `json:"priority"`
	Steps       []Step    `json:"steps"`
	Tags        []string  `json:"tags"`
	Completed   bool      `json:"completed"`
	CreatedAt   time.Time `json:"created_at"`
	TargetDate  *string   `json:"target_date,omitempty"` // YYYY-MM-DD
	JournalNote string    `json:"journal_note,omitempty"`
	Suggested   bool      `json:"suggested"`
	Insight     string    `json:"insight,omitempty"`
	Lucidity    int       `json:"lucidity"`
}

// Progress returns the fraction of steps marked done. A dream with no
// steps derives progress from its completed flag (1.0 or 0.0).
func (d *Dream) Progress() float64 {
	if len(d.Steps) == 0 {
		if d.Completed {
			return 1.0
		}
		return 0.0
	}
	done := 0
	for _, s := range d.Steps {
		if s.Done {
			done++
		}
	}
	return float64(done) / float64(len(d.Steps))
}

// ToggleStep flips the done flag of the step at index i. When the toggle
// leaves every step done, the dream is marked completed. The cascade is
// one-way: toggling a step of an already-completed dream never clears
// the completed flag, and it fires only at toggle time.
func (d *Dream) ToggleStep(i int) bool {
	if i < 0 || i >= len(d.Steps) {
		return false
	}
	d.Steps[i].Done = !d.Steps[i].Done

	allDone := true
	for _, s := range d.Steps {
		if !s.Done {
			allDone = false
			break
		}
	}
	if allDone {
		d.Completed = true
	}
	return true
}

// ActiveDreams filters out completed dreams
func ActiveDreams(dreams []Dream) []Dream {
	var active []Dream
	for _, d := range dreams {
		if !d.Completed {
			active = append(active, d)
		}
	}
	return active
}

// CompletedDreams filters to completed dreams only
func CompletedDreams(dreams []Dream) []Dream {
	var completed []Dream
	for _, d := range dreams {
		if d.Completed {
			completed = append(completed, d)
		}
	}
	return completed
}
