package cli

import (
	"fmt"
	"strings"

	"dreambook/internal/backup"
	"dreambook/internal/logger"
	"dreambook/internal/models"
	"dreambook/internal/storage"
)

type Context struct {
	Store storage.Provider
}

// PerformAutomaticBackup creates an automatic backup and silently handles errors.
// Only meaningful for the SQLite backend; Postgres users manage their own backups.
func (c *Context) PerformAutomaticBackup() {
	path := c.Store.GetConfigPath()
	if strings.HasPrefix(path, "postgres://") || strings.HasPrefix(path, "postgresql://") {
		return
	}
	mgr := backup.NewManager(path)
	if _, err := mgr.CreateBackup(); err != nil {
		// Log warning but don't interrupt user workflow
		logger.Warn("Automatic backup failed", "error", err)
	}
}

// RequireProfile loads the profile or returns a friendly error directing
// the user to onboarding
func (c *Context) RequireProfile() (models.UserProfile, error) {
	profile, err := c.Store.GetProfile()
	if err != nil {
		return models.UserProfile{}, err
	}
	if !profile.OnboardingCompleted {
		return models.UserProfile{}, fmt.Errorf("onboarding not completed, run 'dreambook onboard'")
	}
	return profile, nil
}

// FormatProgress renders a compact progress bar like [####------] 40%
func FormatProgress(progress float64) string {
	const width = 10
	filled := int(progress*width + 0.5)
	if filled > width {
		filled = width
	}
	return fmt.Sprintf("[%s%s] %d%%",
		strings.Repeat("#", filled),
		strings.Repeat("-", width-filled),
		int(progress*100+0.5))
}

// ParseCategory maps loose user input onto a category, accepting any
// case and the "personal-growth" spelling
func ParseCategory(s string) (models.Category, error) {
	norm := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), "-", " "))
	for _, c := range models.Categories {
		if strings.ToLower(string(c)) == norm {
			return c, nil
		}
	}
	return "", fmt.Errorf("invalid category: %s (one of: %s)", s, JoinCategories())
}

// ParseMood maps loose user input onto a mood
func ParseMood(s string) (models.Mood, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	for _, m := range models.Moods {
		if strings.ToLower(string(m)) == norm {
			return m, nil
		}
	}
	return "", fmt.Errorf("invalid mood: %s (one of: %s)", s, JoinMoods())
}

// JoinCategories lists the valid category names for help text
func JoinCategories() string {
	names := make([]string, len(models.Categories))
	for i, c := range models.Categories {
		names[i] = strings.ToLower(strings.ReplaceAll(string(c), " ", "-"))
	}
	return strings.Join(names, "|")
}

// JoinMoods lists the valid mood names for help text
func JoinMoods() string {
	names := make([]string, len(models.Moods))
	for i, m := range models.Moods {
		names[i] = strings.ToLower(string(m))
	}
	return strings.Join(names, "|")
}
