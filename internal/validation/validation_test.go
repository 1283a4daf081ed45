package validation

import (
	"testing"

	"dreambook/internal/models"
)

func validDream() models.Dream {
	return models.Dream{
		Title:    "Learn to sail",
		Priority: 2,
		Lucidity: 1,
	}
}

func TestValidateProfile(t *testing.T) {
	tests := []struct {
		name    string
		profile models.UserProfile
		wantErr bool
	}{
		{"valid", models.UserProfile{Name: "Ada", Age: 30}, false},
		{"empty name", models.UserProfile{Name: "  ", Age: 30}, true},
		{"zero age", models.UserProfile{Name: "Ada", Age: 0}, true},
		{"negative age", models.UserProfile{Name: "Ada", Age: -5}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateProfile(&tt.profile)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateProfile() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateDream(t *testing.T) {
	badDate := "June 1st"
	goodDate := "2026-06-01"

	tests := []struct {
		name    string
		mutate  func(*models.Dream)
		wantErr bool
	}{
		{"valid", func(d *models.Dream) {}, false},
		{"empty title", func(d *models.Dream) { d.Title = " " }, true},
		{"priority too low", func(d *models.Dream) { d.Priority = 0 }, true},
		{"priority too high", func(d *models.Dream) { d.Priority = 4 }, true},
		{"lucidity too low", func(d *models.Dream) { d.Lucidity = 0 }, true},
		{"lucidity too high", func(d *models.Dream) { d.Lucidity = 6 }, true},
		{"empty step title", func(d *models.Dream) { d.Steps = []models.Step{{Title: ""}} }, true},
		{"valid steps", func(d *models.Dream) { d.Steps = []models.Step{{Title: "cast off"}} }, false},
		{"bad target date", func(d *models.Dream) { d.TargetDate = &badDate }, true},
		{"good target date", func(d *models.Dream) { d.TargetDate = &goodDate }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := validDream()
			tt.mutate(&d)
			err := ValidateDream(&d)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDream() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
