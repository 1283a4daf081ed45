package storage

import (
	"errors"

	"dreambook/internal/models"
)

var (
	// ErrProfileNotFound is returned before onboarding has created a profile
	ErrProfileNotFound = errors.New("profile not found, run 'dreambook onboard' first")
	// ErrDreamNotFound is returned for lookups of unknown dream IDs
	ErrDreamNotFound = errors.New("dream not found")
)

// SortOrder selects how ListDreams orders its results
type SortOrder string

const (
	SortByCreated  SortOrder = "created"  // newest first
	SortByPriority SortOrder = "priority" // highest first, then newest
	SortByTitle    SortOrder = "title"
)

// DreamFilter is the predicate/sort contract for ListDreams. Zero value
// means "everything, newest first".
type DreamFilter struct {
	Category  *models.Category
	Completed *bool
	Sort      SortOrder
}

// Provider is the persistence boundary. Both the SQLite and Postgres
// backends implement it; all mutations are applied atomically and
// publish a change event for subscribers.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Profile (at most one row)
	GetProfile() (models.UserProfile, error)
	SaveProfile(models.UserProfile) error
	// DeleteProfile removes the profile and cascades to all dreams
	DeleteProfile() error

	// Dreams
	AddDream(models.Dream) error
	GetDream(id string) (models.Dream, error)
	GetAllDreams() ([]models.Dream, error)
	ListDreams(DreamFilter) ([]models.Dream, error)
	UpdateDream(models.Dream) error
	DeleteDream(id string) error

	// Subscribe registers for change notifications. The returned cancel
	// function must be called when the subscriber goes away.
	Subscribe() (<-chan Event, func())

	// Utils
	GetConfigPath() string
}
