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

const dreamColumns = `id, title, description, category, mood, priority, steps, tags,
	       completed, created_at, target_date, journal_note, suggested, insight, lucidity`

func (s *Store) AddDream(d models.Dream) error {
	return s.UpdateDream(d)
}

func (s *Store) GetDream(id string) (models.Dream, error) {
	row := s.db.QueryRow(`
		SELECT `+dreamColumns+`
		FROM dreams WHERE id = $1`, id)

	d, err := scanDream(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Dream{}, storage.ErrDreamNotFound
		}
		return models.Dream{}, err
	}
	return d, nil
}

func (s *Store) GetAllDreams() ([]models.Dream, error) {
	return s.ListDreams(storage.DreamFilter{})
}

func (s *Store) ListDreams(filter storage.DreamFilter) ([]models.Dream, error) {
	query := "SELECT " + dreamColumns + " FROM dreams"
	var args []any
	var where []string

	if filter.Category != nil {
		args = append(args, string(*filter.Category))
		where = append(where, fmt.Sprintf("category = $%d", len(args)))
	}
	if filter.Completed != nil {
		args = append(args, *filter.Completed)
		where = append(where, fmt.Sprintf("completed = $%d", len(args)))
	}
	for i, w := range where {
		if i == 0 {
			query += " WHERE " + w
		} else {
			query += " AND " + w
		}
	}

	switch filter.Sort {
	case storage.SortByPriority:
		query += " ORDER BY priority DESC, created_at DESC"
	case storage.SortByTitle:
		query += " ORDER BY lower(title)"
	default:
		query += " ORDER BY created_at DESC"
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dreams []models.Dream
	for rows.Next() {
		d, err := scanDream(rows)
		if err != nil {
			return nil, err
		}
		dreams = append(dreams, d)
	}
	return dreams, rows.Err()
}

func (s *Store) UpdateDream(d models.Dream) error {
	stepsJSON, err := json.Marshal(d.Steps)
	if err != nil {
		return fmt.Errorf("failed to marshal steps: %w", err)
	}
	tagsJSON, err := json.Marshal(d.Tags)
	if err != nil {
		return fmt.Errorf("failed to marshal tags: %w", err)
	}

	createdAt := d.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	var targetDate sql.NullString
	if d.TargetDate != nil {
		targetDate = sql.NullString{String: *d.TargetDate, Valid: true}
	}

	_, err = s.db.Exec(`
		INSERT INTO dreams (
			id, title, description, category, mood, priority, steps, tags,
			completed, created_at, target_date, journal_note, suggested, insight, lucidity
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		ON CONFLICT (id) DO UPDATE SET
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			category = EXCLUDED.category,
			mood = EXCLUDED.mood,
			priority = EXCLUDED.priority,
			steps = EXCLUDED.steps,
			tags = EXCLUDED.tags,
			completed = EXCLUDED.completed,
			created_at = EXCLUDED.created_at,
			target_date = EXCLUDED.target_date,
			journal_note = EXCLUDED.journal_note,
			suggested = EXCLUDED.suggested,
			insight = EXCLUDED.insight,
			lucidity = EXCLUDED.lucidity`,
		d.ID, d.Title, d.Description, string(d.Category), string(d.Mood), d.Priority,
		string(stepsJSON), string(tagsJSON), d.Completed, createdAt.Format(time.RFC3339),
		targetDate, d.JournalNote, d.Suggested, d.Insight, d.Lucidity,
	)
	if err != nil {
		return err
	}

	s.hub.Publish(storage.Event{Kind: storage.EventDreamsChanged, ID: d.ID})
	return nil
}

func (s *Store) DeleteDream(id string) error {
	res, err := s.db.Exec("DELETE FROM dreams WHERE id = $1", id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return storage.ErrDreamNotFound
	}

	s.hub.Publish(storage.Event{Kind: storage.EventDreamsChanged, ID: id})
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDream(row rowScanner) (models.Dream, error) {
	var d models.Dream
	var category, mood, stepsJSON, tagsJSON, createdAt string
	var targetDate sql.NullString

	err := row.Scan(
		&d.ID, &d.Title, &d.Description, &category, &mood, &d.Priority,
		&stepsJSON, &tagsJSON, &d.Completed, &createdAt, &targetDate,
		&d.JournalNote, &d.Suggested, &d.Insight, &d.Lucidity,
	)
	if err != nil {
		return models.Dream{}, err
	}

	// Unknown stored codes fall back to defaults instead of failing
	d.Category = models.ParseCategory(category)
	d.Mood = models.ParseMood(mood)

	if err := json.Unmarshal([]byte(stepsJSON), &d.Steps); err != nil {
		return models.Dream{}, fmt.Errorf("failed to decode steps: %w", err)
	}
	if err := json.Unmarshal([]byte(tagsJSON), &d.Tags); err != nil {
		return models.Dream{}, fmt.Errorf("failed to decode tags: %w", err)
	}

	if t, err := time.Parse(time.RFC3339, createdAt); err == nil {
		d.CreatedAt = t
	}
	if targetDate.Valid {
		d.TargetDate = &targetDate.String
	}

	return d, nil
}
