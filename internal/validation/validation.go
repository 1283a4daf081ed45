// Package validation rejects malformed user input at the boundary.
// Core operations never fail at runtime; everything that could go wrong
// is caught here before a record is created.
package validation

import (
	"fmt"
	"strings"
	"time"

	"dreambook/internal/constants"
	"dreambook/internal/models"
)

// ValidateProfile checks a profile before it is saved
func ValidateProfile(p *models.UserProfile) error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("name cannot be empty")
	}
	if p.Age <= 0 {
		return fmt.Errorf("age must be a positive integer")
	}
	return nil
}

// ValidateDream checks a dream before it is saved
func ValidateDream(d *models.Dream) error {
	if strings.TrimSpace(d.Title) == "" {
		return fmt.Errorf("title cannot be empty")
	}
	if d.Priority < constants.MinPriority || d.Priority > constants.MaxPriority {
		return fmt.Errorf("priority must be between %d and %d", constants.MinPriority, constants.MaxPriority)
	}
	if d.Lucidity < constants.MinLucidity || d.Lucidity > constants.MaxLucidity {
		return fmt.Errorf("lucidity must be between %d and %d", constants.MinLucidity, constants.MaxLucidity)
	}
	for i, s := range d.Steps {
		if strings.TrimSpace(s.Title) == "" {
			return fmt.Errorf("step %d has an empty title", i+1)
		}
	}
	if d.TargetDate != nil {
		if _, err := time.Parse(constants.DateFormat, *d.TargetDate); err != nil {
			return fmt.Errorf("invalid target date (expected YYYY-MM-DD): %w", err)
		}
	}
	return nil
}
