package catalog

import "testing"

func TestSeedIsValid(t *testing.T) {
	if err := validateLessons(seedLessons()); err != nil {
		t.Fatalf("seed data invalid: %v", err)
	}
}

func TestAllIsOrdered(t *testing.T) {
	all := All()
	if len(all) == 0 {
		t.Fatal("catalog is empty")
	}
	for i, l := range all {
		if l.Order != i {
			t.Errorf("lesson %q at position %d has Order %d", l.Slug, i, l.Order)
		}
	}
	if all[0].Slug != "intro-to-statistics" {
		t.Errorf("first lesson = %q, want intro-to-statistics", all[0].Slug)
	}
}

func TestGet(t *testing.T) {
	l, ok := Get("mean-median-mode")
	if !ok {
		t.Fatal("expected mean-median-mode to exist")
	}
	if l.Unit != UnitDescriptive {
		t.Errorf("Unit = %q, want %q", l.Unit, UnitDescriptive)
	}

	if _, ok := Get("no-such-lesson"); ok {
		t.Error("expected lookup miss for unknown slug")
	}
}

func TestPreviousNext(t *testing.T) {
	if _, ok := Previous("intro-to-statistics"); ok {
		t.Error("first lesson should have no previous")
	}

	prev, ok := Previous("mean-median-mode")
	if !ok || prev.Slug != "intro-to-statistics" {
		t.Errorf("Previous(mean-median-mode) = %q, %v", prev.Slug, ok)
	}

	next, ok := Next("intro-to-statistics")
	if !ok || next.Slug != "mean-median-mode" {
		t.Errorf("Next(intro-to-statistics) = %q, %v", next.Slug, ok)
	}

	last := All()[Count()-1]
	if _, ok := Next(last.Slug); ok {
		t.Error("last lesson should have no next")
	}
}

func TestByUnit(t *testing.T) {
	desc := ByUnit(UnitDescriptive)
	if len(desc) != 4 {
		t.Fatalf("descriptive unit has %d lessons, want 4", len(desc))
	}
	for i := 1; i < len(desc); i++ {
		if desc[i].Order <= desc[i-1].Order {
			t.Errorf("unit lessons out of order: %q before %q", desc[i-1].Slug, desc[i].Slug)
		}
	}
}

func TestMatchSlug(t *testing.T) {
	tests := []struct {
		id   string
		want string
	}{
		{"mean-median-mode", "mean-median-mode"},
		{"unit-1/mean-median-mode", "mean-median-mode"},
		{"lessons/descriptive/mean-median-mode", "mean-median-mode"},
		{"mean-median", "mean-median-mode"},
		{"totally-unknown", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := MatchSlug(tt.id); got != tt.want {
			t.Errorf("MatchSlug(%q) = %q, want %q", tt.id, got, tt.want)
		}
	}
}

func TestValidateRejectsBadData(t *testing.T) {
	tests := []struct {
		name    string
		lessons []Lesson
	}{
		{"empty", nil},
		{"duplicate slug", []Lesson{
			{Slug: "a", Unit: UnitDescriptive, Order: 0},
			{Slug: "a", Unit: UnitDescriptive, Order: 1},
		}},
		{"duplicate order", []Lesson{
			{Slug: "a", Unit: UnitDescriptive, Order: 0},
			{Slug: "b", Unit: UnitDescriptive, Order: 0},
		}},
		{"order gap", []Lesson{
			{Slug: "a", Unit: UnitDescriptive, Order: 0},
			{Slug: "b", Unit: UnitDescriptive, Order: 2},
		}},
		{"unknown unit", []Lesson{
			{Slug: "a", Unit: Unit("geometry"), Order: 0},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := validateLessons(tt.lessons); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}
