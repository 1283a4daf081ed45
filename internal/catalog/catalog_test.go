package catalog

import "testing"

func TestTemplatesAreWellFormed(t *testing.T) {
	if len(Templates) == 0 {
		t.Fatal("catalog is empty")
	}

	seen := make(map[string]bool)
	for _, tmpl := range Templates {
		if tmpl.Title == "" {
			t.Error("template with empty title")
		}
		if seen[tmpl.Title] {
			t.Errorf("duplicate template title: %s", tmpl.Title)
		}
		seen[tmpl.Title] = true

		if tmpl.Insight == "" {
			t.Errorf("%s: missing insight text", tmpl.Title)
		}
		if len(tmpl.SuggestedSteps) == 0 {
			t.Errorf("%s: no suggested steps", tmpl.Title)
		}
		if tmpl.MinAge > tmpl.MaxAge {
			t.Errorf("%s: inverted age range %d-%d", tmpl.Title, tmpl.MinAge, tmpl.MaxAge)
		}
		if tmpl.Category == "" || tmpl.Mood == "" {
			t.Errorf("%s: missing category or mood", tmpl.Title)
		}
	}
}

func TestInAgeRangeInclusive(t *testing.T) {
	tmpl := Template{MinAge: 18, MaxAge: 50}
	for age, want := range map[int]bool{17: false, 18: true, 50: true, 51: false} {
		if got := tmpl.InAgeRange(age); got != want {
			t.Errorf("InAgeRange(%d) = %v, want %v", age, got, want)
		}
	}
}

func TestFindByTitle(t *testing.T) {
	if got := FindByTitle("Launch a Side Business"); got == nil {
		t.Error("expected to find Launch a Side Business")
	}
	if got := FindByTitle("Not A Real Template"); got != nil {
		t.Errorf("expected nil, got %v", got.Title)
	}
}
