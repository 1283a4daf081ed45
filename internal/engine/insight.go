package engine

import (
	"fmt"
	"math"

	"dreambook/internal/catalog"
	"dreambook/internal/models"
)

// GenerateInsight produces the insight text shown on a dream's detail
// view. A dream whose title exactly matches a catalog template returns
// that template's static insight verbatim. Otherwise the text branches
// on completion and progress thresholds, interpolating the user's name
// (or "you" when no profile exists) and the rounded progress percent.
// Deterministic for any (dream, profile) pair.
func GenerateInsight(dream *models.Dream, profile *models.UserProfile) string {
	if t := catalog.FindByTitle(dream.Title); t != nil {
		return t.Insight
	}

	name := "you"
	if profile != nil && profile.Name != "" {
		name = profile.Name
	}
	progress := int(math.Round(dream.Progress() * 100))

	if dream.Completed {
		return fmt.Sprintf("Congratulations on achieving this dream! Completing '%s' demonstrates real commitment. Consider how this accomplishment can fuel your next aspiration.", dream.Title)
	}

	if progress > 70 {
		return fmt.Sprintf("You're %d%% through '%s' — the finish line is in sight, %s. The final stretch often feels hardest, but momentum is on your side.", progress, dream.Title, name)
	}

	if progress > 30 {
		return fmt.Sprintf("Solid progress at %d%%, %s. You've built real momentum with '%s'. Focus on one step at a time to maintain consistency.", progress, name, dream.Title)
	}

	return fmt.Sprintf("Every dream starts with a single step, %s. '%s' is waiting for you to begin. Break it into small, actionable pieces and start today.", name, dream.Title)
}
