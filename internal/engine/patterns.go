package engine

import (
	"fmt"
	"math"
	"strings"

	"dreambook/internal/models"
)

// PatternInsight is a single human-readable observation about the user's
// dream collection. Computed fresh on every call, never stored.
type PatternInsight struct {
	Title       string
	Description string
	Icon        string
	Color       string // ANSI 256 color code
}

// Analyze computes up to five observations over the full dream list, in
// a fixed order: focus area, completion rate, emotional pattern, focus
// check, priority dreams. An empty list yields exactly one "Getting
// Started" fallback.
//
// Tie-break for the top category and mood: highest count wins, and among
// equal counts the value seen earliest in the list wins. Any
// deterministic rule would do; first-seen keeps output stable across
// runs without a secondary sort.
func Analyze(dreams []models.Dream) []PatternInsight {
	if len(dreams) == 0 {
		return []PatternInsight{{
			Title:       "Getting Started",
			Description: "Add more dreams to unlock personalized pattern analysis. Your dream collection tells a story — let's write it together.",
			Icon:        "✨",
			Color:       "99",
		}}
	}

	var insights []PatternInsight

	topCat, catCount := topCategory(dreams)
	insights = append(insights, PatternInsight{
		Title:       "Your Focus Area",
		Description: fmt.Sprintf("You're drawn to %s dreams — %d out of %d. This reveals a core drive in your aspirations.", topCat, catCount, len(dreams)),
		Icon:        topCat.Icon(),
		Color:       topCat.Color(),
	})

	completed := models.CompletedDreams(dreams)
	if len(completed) > 0 {
		rate := CompletionRate(dreams)
		tone := "Every completed dream builds momentum for the next."
		if rate > 50 {
			tone = "Outstanding consistency!"
		}
		insights = append(insights, PatternInsight{
			Title:       "Completion Rate",
			Description: fmt.Sprintf("You've achieved %d%% of your dreams. %s", rate, tone),
			Icon:        "📈",
			Color:       "40",
		})
	}

	topMood, _ := topMood(dreams)
	insights = append(insights, PatternInsight{
		Title:       "Emotional Pattern",
		Description: fmt.Sprintf("Your dreams tend to feel %s. This emotional signature reveals what truly motivates you.", strings.ToLower(string(topMood))),
		Icon:        topMood.Icon(),
		Color:       topMood.Color(),
	})

	active := models.ActiveDreams(dreams)
	if len(active) > 5 {
		insights = append(insights, PatternInsight{
			Title:       "Focus Check",
			Description: fmt.Sprintf("You have %d active dreams. Consider focusing on 3-5 at a time for deeper progress on each.", len(active)),
			Icon:        "🎯",
			Color:       "214",
		})
	}

	highPriority := 0
	for _, d := range active {
		if d.Priority == 3 {
			highPriority++
		}
	}
	if highPriority > 0 {
		plural, verb := "s", "need"
		if highPriority == 1 {
			plural, verb = "", "needs"
		}
		insights = append(insights, PatternInsight{
			Title:       "Priority Dreams",
			Description: fmt.Sprintf("%d high-priority dream%s %s your attention. Start each day with one small step toward these.", highPriority, plural, verb),
			Icon:        "🔥",
			Color:       "196",
		})
	}

	return insights
}

// CompletionRate returns round(100 * completed / total), or 0 for an
// empty list.
func CompletionRate(dreams []models.Dream) int {
	if len(dreams) == 0 {
		return 0
	}
	completed := len(models.CompletedDreams(dreams))
	return int(math.Round(100 * float64(completed) / float64(len(dreams))))
}

// AverageActiveProgress returns the mean progress across non-completed
// dreams, 0 when there are none.
func AverageActiveProgress(dreams []models.Dream) float64 {
	active := models.ActiveDreams(dreams)
	if len(active) == 0 {
		return 0
	}
	sum := 0.0
	for i := range active {
		sum += active[i].Progress()
	}
	return sum / float64(len(active))
}

func topCategory(dreams []models.Dream) (models.Category, int) {
	counts := make(map[models.Category]int)
	firstSeen := make(map[models.Category]int)
	for i, d := range dreams {
		if _, ok := firstSeen[d.Category]; !ok {
			firstSeen[d.Category] = i
		}
		counts[d.Category]++
	}
	var best models.Category
	bestCount := -1
	for i, d := range dreams {
		c := counts[d.Category]
		if c > bestCount && firstSeen[d.Category] == i {
			best = d.Category
			bestCount = c
		}
	}
	return best, bestCount
}

func topMood(dreams []models.Dream) (models.Mood, int) {
	counts := make(map[models.Mood]int)
	firstSeen := make(map[models.Mood]int)
	for i, d := range dreams {
		if _, ok := firstSeen[d.Mood]; !ok {
			firstSeen[d.Mood] = i
		}
		counts[d.Mood]++
	}
	var best models.Mood
	bestCount := -1
	for i, d := range dreams {
		c := counts[d.Mood]
		if c > bestCount && firstSeen[d.Mood] == i {
			best = d.Mood
			bestCount = c
		}
	}
	return best, bestCount
}
