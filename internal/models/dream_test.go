package models

import (
	"math"
	"testing"
)

func TestProgress(t *testing.T) {
	t.Run("fraction of done steps", func(t *testing.T) {
		d := Dream{Steps: []Step{
			{Title: "a", Done: true},
			{Title: "b", Done: true},
			{Title: "c", Done: false},
		}}
		want := 2.0 / 3.0
		if got := d.Progress(); math.Abs(got-want) > 1e-9 {
			t.Errorf("Progress() = %v, want %v", got, want)
		}
	})

	t.Run("no steps derives from completed flag", func(t *testing.T) {
		d := Dream{}
		if got := d.Progress(); got != 0.0 {
			t.Errorf("Progress() = %v, want 0", got)
		}
		d.Completed = true
		if got := d.Progress(); got != 1.0 {
			t.Errorf("Progress() = %v, want 1", got)
		}
	})

	t.Run("completed flag ignored when steps exist", func(t *testing.T) {
		d := Dream{Completed: true, Steps: []Step{{Title: "a"}}}
		if got := d.Progress(); got != 0.0 {
			t.Errorf("Progress() = %v, want 0", got)
		}
	})
}

func TestToggleStep(t *testing.T) {
	t.Run("out of range", func(t *testing.T) {
		d := Dream{Steps: []Step{{Title: "a"}}}
		if d.ToggleStep(-1) || d.ToggleStep(1) {
			t.Error("ToggleStep out of range should return false")
		}
	})

	t.Run("completing last step cascades", func(t *testing.T) {
		d := Dream{Steps: []Step{{Title: "a", Done: true}, {Title: "b"}}}
		if !d.ToggleStep(1) {
			t.Fatal("ToggleStep returned false")
		}
		if !d.Steps[1].Done {
			t.Error("step not toggled")
		}
		if !d.Completed {
			t.Error("dream should be completed when all steps are done")
		}
	})

	t.Run("cascade is one-way", func(t *testing.T) {
		d := Dream{Steps: []Step{{Title: "a", Done: true}, {Title: "b"}}}
		d.ToggleStep(1) // completes the dream
		d.ToggleStep(0) // un-does a step afterwards
		if d.Steps[0].Done {
			t.Error("step should be un-done")
		}
		if !d.Completed {
			t.Error("completed flag must survive later step un-toggles")
		}
	})

	t.Run("no cascade while steps remain", func(t *testing.T) {
		d := Dream{Steps: []Step{{Title: "a"}, {Title: "b"}}}
		d.ToggleStep(0)
		if d.Completed {
			t.Error("dream should not complete with steps remaining")
		}
	})
}

func TestParseCategoryFallback(t *testing.T) {
	if got := ParseCategory("Career"); got != CategoryCareer {
		t.Errorf("ParseCategory(Career) = %v", got)
	}
	if got := ParseCategory("bogus"); got != CategoryPersonalGrowth {
		t.Errorf("ParseCategory(bogus) = %v, want Personal Growth", got)
	}
}

func TestParseMoodFallback(t *testing.T) {
	if got := ParseMood("Joyful"); got != MoodJoyful {
		t.Errorf("ParseMood(Joyful) = %v", got)
	}
	if got := ParseMood("bogus"); got != MoodNeutral {
		t.Errorf("ParseMood(bogus) = %v, want Neutral", got)
	}
}

func TestActiveAndCompletedDreams(t *testing.T) {
	dreams := []Dream{
		{Title: "a"},
		{Title: "b", Completed: true},
		{Title: "c"},
	}
	if got := len(ActiveDreams(dreams)); got != 2 {
		t.Errorf("ActiveDreams = %d, want 2", got)
	}
	if got := len(CompletedDreams(dreams)); got != 1 {
		t.Errorf("CompletedDreams = %d, want 1", got)
	}
}
