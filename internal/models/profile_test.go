package models

import (
	"reflect"
	"testing"
)

func TestNormalizeTags(t *testing.T) {
	got := NormalizeTags([]string{" Programming ", "design", "PROGRAMMING", "", "  "})
	want := []string{"design", "programming"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("NormalizeTags = %v, want %v", got, want)
	}
}

func TestSkillSet(t *testing.T) {
	p := UserProfile{Skills: []string{"Programming", " design "}}
	set := p.SkillSet()
	if _, ok := set["programming"]; !ok {
		t.Error("expected programming in skill set")
	}
	if _, ok := set["design"]; !ok {
		t.Error("expected design in skill set")
	}
	if len(set) != 2 {
		t.Errorf("len(set) = %d, want 2", len(set))
	}
}
