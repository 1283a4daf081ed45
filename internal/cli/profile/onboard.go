package profile

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/huh"

	"dreambook/internal/cli"
	"dreambook/internal/models"
	"dreambook/internal/storage"
	"dreambook/internal/validation"
)

type OnboardCmd struct {
	Name      string   `help:"Your name (skips the interactive form when combined with --age)."`
	Age       int      `help:"Your age."`
	Skills    []string `help:"Skills, comma-separated."`
	Interests []string `help:"Interests, comma-separated."`
}

func (c *OnboardCmd) Run(ctx *cli.Context) error {
	if existing, err := ctx.Store.GetProfile(); err == nil && existing.OnboardingCompleted {
		return fmt.Errorf("onboarding already completed for %s, run 'dreambook profile reset' to start over", existing.Name)
	} else if err != nil && err != storage.ErrProfileNotFound {
		return err
	}

	profile := models.UserProfile{
		Name:      c.Name,
		Age:       c.Age,
		Skills:    c.Skills,
		Interests: c.Interests,
	}

	// Flags fully specify the profile in scripts; otherwise run the form
	if c.Name == "" || c.Age == 0 {
		if err := runOnboardingForm(&profile); err != nil {
			return err
		}
	}

	profile.Skills = models.NormalizeTags(profile.Skills)
	profile.Interests = models.NormalizeTags(profile.Interests)
	profile.OnboardingCompleted = true
	profile.CreatedAt = time.Now()

	if err := validation.ValidateProfile(&profile); err != nil {
		return err
	}
	if err := ctx.Store.SaveProfile(profile); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}

	fmt.Printf("Welcome, %s! Your profile is ready.\n", profile.Name)
	fmt.Println("Try 'dreambook discover' for suggestions or 'dreambook add' to record your first dream.")
	return nil
}

func runOnboardingForm(profile *models.UserProfile) error {
	ageStr := ""
	if profile.Age > 0 {
		ageStr = strconv.Itoa(profile.Age)
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("What's your name?").
				Value(&profile.Name).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("name is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("How old are you?").
				Value(&ageStr).
				Validate(func(s string) error {
					n, err := strconv.Atoi(s)
					if err != nil || n <= 0 {
						return fmt.Errorf("enter a positive number")
					}
					return nil
				}),
		),
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Pick your skills").
				Options(huh.NewOptions(models.AvailableSkills...)...).
				Value(&profile.Skills),
			huh.NewMultiSelect[string]().
				Title("Pick your interests").
				Options(huh.NewOptions(models.AvailableInterests...)...).
				Value(&profile.Interests),
		),
	)

	if err := form.Run(); err != nil {
		return fmt.Errorf("onboarding cancelled: %w", err)
	}

	age, err := strconv.Atoi(ageStr)
	if err != nil {
		return fmt.Errorf("invalid age: %w", err)
	}
	profile.Age = age
	return nil
}
