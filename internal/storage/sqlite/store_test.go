package sqlite

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"dreambook/internal/models"
	"dreambook/internal/storage"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store := NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func sampleDream(id, title string) models.Dream {
	return models.Dream{
		ID:        id,
		Title:     title,
		Category:  models.CategoryCareer,
		Mood:      models.MoodExciting,
		Priority:  2,
		Lucidity:  1,
		CreatedAt: time.Now().UTC(),
	}
}

func TestLoadBeforeInit(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing.db"))
	if err := store.Load(); err == nil {
		t.Error("Load() on a missing database should fail")
	}
}

func TestProfileRoundTrip(t *testing.T) {
	store := newTestStore(t)

	t.Run("missing profile", func(t *testing.T) {
		_, err := store.GetProfile()
		if !errors.Is(err, storage.ErrProfileNotFound) {
			t.Errorf("GetProfile() error = %v, want ErrProfileNotFound", err)
		}
	})

	t.Run("save and get", func(t *testing.T) {
		p := models.UserProfile{
			Name:                "Ada",
			Age:                 30,
			Skills:              []string{"Programming", "design"},
			Interests:           []string{"Technology"},
			OnboardingCompleted: true,
			CreatedAt:           time.Now().UTC(),
		}
		if err := store.SaveProfile(p); err != nil {
			t.Fatalf("SaveProfile() error = %v", err)
		}

		got, err := store.GetProfile()
		if err != nil {
			t.Fatalf("GetProfile() error = %v", err)
		}
		if got.Name != "Ada" || got.Age != 30 || !got.OnboardingCompleted {
			t.Errorf("GetProfile() = %+v", got)
		}
		// Tags are stored normalized
		if len(got.Skills) != 2 || got.Skills[0] != "design" || got.Skills[1] != "programming" {
			t.Errorf("Skills = %v, want normalized [design programming]", got.Skills)
		}
	})

	t.Run("save replaces the single row", func(t *testing.T) {
		if err := store.SaveProfile(models.UserProfile{Name: "Brin", Age: 40}); err != nil {
			t.Fatalf("SaveProfile() error = %v", err)
		}
		got, err := store.GetProfile()
		if err != nil {
			t.Fatalf("GetProfile() error = %v", err)
		}
		if got.Name != "Brin" {
			t.Errorf("Name = %s, want Brin", got.Name)
		}
	})
}

func TestDreamCRUD(t *testing.T) {
	store := newTestStore(t)

	t.Run("get missing dream", func(t *testing.T) {
		_, err := store.GetDream("nope")
		if !errors.Is(err, storage.ErrDreamNotFound) {
			t.Errorf("GetDream() error = %v, want ErrDreamNotFound", err)
		}
	})

	t.Run("add and get", func(t *testing.T) {
		d := sampleDream("d1", "Learn to sail")
		d.Steps = []models.Step{{Title: "Find a class"}, {Title: "First lesson", Done: true}}
		d.Tags = []string{"water", "outdoors"}
		target := "2026-06-01"
		d.TargetDate = &target
		d.JournalNote = "felt great"
		d.Lucidity = 4

		if err := store.AddDream(d); err != nil {
			t.Fatalf("AddDream() error = %v", err)
		}

		got, err := store.GetDream("d1")
		if err != nil {
			t.Fatalf("GetDream() error = %v", err)
		}
		if got.Title != "Learn to sail" || len(got.Steps) != 2 || !got.Steps[1].Done {
			t.Errorf("GetDream() = %+v", got)
		}
		if got.TargetDate == nil || *got.TargetDate != "2026-06-01" {
			t.Errorf("TargetDate = %v", got.TargetDate)
		}
		if got.JournalNote != "felt great" || got.Lucidity != 4 {
			t.Errorf("JournalNote = %q, Lucidity = %d", got.JournalNote, got.Lucidity)
		}
	})

	t.Run("update", func(t *testing.T) {
		d, err := store.GetDream("d1")
		if err != nil {
			t.Fatalf("GetDream() error = %v", err)
		}
		d.Completed = true
		if err := store.UpdateDream(d); err != nil {
			t.Fatalf("UpdateDream() error = %v", err)
		}
		got, _ := store.GetDream("d1")
		if !got.Completed {
			t.Error("update did not persist")
		}
	})

	t.Run("delete", func(t *testing.T) {
		if err := store.DeleteDream("d1"); err != nil {
			t.Fatalf("DeleteDream() error = %v", err)
		}
		if err := store.DeleteDream("d1"); !errors.Is(err, storage.ErrDreamNotFound) {
			t.Errorf("second DeleteDream() error = %v, want ErrDreamNotFound", err)
		}
	})
}

func TestListDreamsFilters(t *testing.T) {
	store := newTestStore(t)

	base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	dreams := []models.Dream{
		{ID: "a", Title: "beta", Category: models.CategoryCareer, Mood: models.MoodExciting, Priority: 1, Lucidity: 1, CreatedAt: base},
		{ID: "b", Title: "Alpha", Category: models.CategoryHealth, Mood: models.MoodPeaceful, Priority: 3, Lucidity: 1, CreatedAt: base.Add(time.Hour), Completed: true},
		{ID: "c", Title: "gamma", Category: models.CategoryCareer, Mood: models.MoodExciting, Priority: 2, Lucidity: 1, CreatedAt: base.Add(2 * time.Hour)},
	}
	for _, d := range dreams {
		if err := store.AddDream(d); err != nil {
			t.Fatalf("AddDream(%s) error = %v", d.ID, err)
		}
	}

	t.Run("default newest first", func(t *testing.T) {
		got, err := store.ListDreams(storage.DreamFilter{})
		if err != nil {
			t.Fatalf("ListDreams() error = %v", err)
		}
		if len(got) != 3 || got[0].ID != "c" || got[2].ID != "a" {
			t.Errorf("order = %v", ids(got))
		}
	})

	t.Run("filter by category", func(t *testing.T) {
		career := models.CategoryCareer
		got, err := store.ListDreams(storage.DreamFilter{Category: &career})
		if err != nil {
			t.Fatalf("ListDreams() error = %v", err)
		}
		if len(got) != 2 {
			t.Errorf("got %d dreams, want 2", len(got))
		}
	})

	t.Run("filter by completed", func(t *testing.T) {
		completed := true
		got, err := store.ListDreams(storage.DreamFilter{Completed: &completed})
		if err != nil {
			t.Fatalf("ListDreams() error = %v", err)
		}
		if len(got) != 1 || got[0].ID != "b" {
			t.Errorf("got %v", ids(got))
		}
	})

	t.Run("sort by priority", func(t *testing.T) {
		got, err := store.ListDreams(storage.DreamFilter{Sort: storage.SortByPriority})
		if err != nil {
			t.Fatalf("ListDreams() error = %v", err)
		}
		if got[0].ID != "b" || got[1].ID != "c" || got[2].ID != "a" {
			t.Errorf("order = %v", ids(got))
		}
	})

	t.Run("sort by title case-insensitive", func(t *testing.T) {
		got, err := store.ListDreams(storage.DreamFilter{Sort: storage.SortByTitle})
		if err != nil {
			t.Fatalf("ListDreams() error = %v", err)
		}
		if got[0].Title != "Alpha" || got[1].Title != "beta" || got[2].Title != "gamma" {
			t.Errorf("order = %v", ids(got))
		}
	})
}

func TestUnknownCodesFallBack(t *testing.T) {
	store := newTestStore(t)

	d := sampleDream("d1", "Weird codes")
	if err := store.AddDream(d); err != nil {
		t.Fatalf("AddDream() error = %v", err)
	}
	// Corrupt the stored category and mood directly
	if _, err := store.GetDB().Exec(
		"UPDATE dreams SET category = 'Bogus', mood = 'Whatever' WHERE id = 'd1'"); err != nil {
		t.Fatalf("corrupting row: %v", err)
	}

	got, err := store.GetDream("d1")
	if err != nil {
		t.Fatalf("GetDream() error = %v", err)
	}
	if got.Category != models.CategoryPersonalGrowth {
		t.Errorf("Category = %v, want Personal Growth fallback", got.Category)
	}
	if got.Mood != models.MoodNeutral {
		t.Errorf("Mood = %v, want Neutral fallback", got.Mood)
	}
}

func TestDeleteProfileCascades(t *testing.T) {
	store := newTestStore(t)

	if err := store.SaveProfile(models.UserProfile{Name: "Ada", Age: 30}); err != nil {
		t.Fatalf("SaveProfile() error = %v", err)
	}
	if err := store.AddDream(sampleDream("d1", "Learn to sail")); err != nil {
		t.Fatalf("AddDream() error = %v", err)
	}

	if err := store.DeleteProfile(); err != nil {
		t.Fatalf("DeleteProfile() error = %v", err)
	}

	if _, err := store.GetProfile(); !errors.Is(err, storage.ErrProfileNotFound) {
		t.Errorf("GetProfile() after reset error = %v", err)
	}
	dreams, err := store.GetAllDreams()
	if err != nil {
		t.Fatalf("GetAllDreams() error = %v", err)
	}
	if len(dreams) != 0 {
		t.Errorf("dreams survived profile reset: %v", ids(dreams))
	}
}

func TestSubscribeReceivesEvents(t *testing.T) {
	store := newTestStore(t)

	events, cancel := store.Subscribe()
	defer cancel()

	if err := store.AddDream(sampleDream("d1", "Learn to sail")); err != nil {
		t.Fatalf("AddDream() error = %v", err)
	}

	select {
	case ev := <-events:
		if ev.Kind != storage.EventDreamsChanged || ev.ID != "d1" {
			t.Errorf("event = %+v", ev)
		}
	case <-time.After(time.Second):
		t.Fatal("no event received")
	}
}

func ids(dreams []models.Dream) []string {
	out := make([]string, len(dreams))
	for i, d := range dreams {
		out[i] = d.ID
	}
	return out
}
