package postgres

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"dreambook/internal/models"
	"dreambook/internal/storage"
)

func (s *Store) GetProfile() (models.UserProfile, error) {
	row := s.db.QueryRow(`
		SELECT name, age, skills, interests, onboarding_completed, created_at
		FROM profile WHERE id = 1`)

	var p models.UserProfile
	var skillsJSON, interestsJSON, createdAt string

	err := row.Scan(&p.Name, &p.Age, &skillsJSON, &interestsJSON, &p.OnboardingCompleted, &createdAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.UserProfile{}, storage.ErrProfileNotFound
		}
		return models.UserProfile{}, err
	}

	if err := json.Unmarshal([]byte(skillsJSON), &p.Skills); err != nil {
		return models.UserProfile{}, fmt.Errorf("failed to decode skills: %w", err)
	}
	if err := json.Unmarshal([]byte(interestsJSON), &p.Interests); err != nil {
		return models.UserProfile{}, fmt.Errorf("failed to decode interests: %w", err)
	}

	if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
		p.CreatedAt = t
	}

	return p, nil
}

func (s *Store) SaveProfile(p models.UserProfile) error {
	skillsJSON, err := json.Marshal(models.NormalizeTags(p.Skills))
	if err != nil {
		return fmt.Errorf("failed to marshal skills: %w", err)
	}
	interestsJSON, err := json.Marshal(models.NormalizeTags(p.Interests))
	if err != nil {
		return fmt.Errorf("failed to marshal interests: %w", err)
	}

	createdAt := p.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	_, err = s.db.Exec(`
		INSERT INTO profile (id, name, age, skills, interests, onboarding_completed, created_at)
		VALUES (1, $1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			age = EXCLUDED.age,
			skills = EXCLUDED.skills,
			interests = EXCLUDED.interests,
			onboarding_completed = EXCLUDED.onboarding_completed,
			created_at = EXCLUDED.created_at`,
		p.Name, p.Age, string(skillsJSON), string(interestsJSON), p.OnboardingCompleted,
		createdAt.Format(time.RFC3339),
	)
	if err != nil {
		return err
	}

	s.hub.Publish(storage.Event{Kind: storage.EventProfileChanged})
	return nil
}

// DeleteProfile removes the profile row and cascades to every dream,
// all in one transaction
func (s *Store) DeleteProfile() error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}

	if _, err := tx.Exec("DELETE FROM profile WHERE id = 1"); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to delete profile: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM dreams"); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("failed to delete dreams: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return err
	}

	s.hub.Publish(storage.Event{Kind: storage.EventProfileChanged})
	s.hub.Publish(storage.Event{Kind: storage.EventDreamsChanged})
	return nil
}
