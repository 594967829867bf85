// Package catalog holds the ordered statistics lesson catalog.
//
// Lessons are declared in a fixed sequence grouped into units. The declared
// order is what the soft lock in internal/progress gates on: a lesson is
// locked for credit until the lesson immediately before it has a recorded
// quiz attempt.
package catalog

import (
	"sort"
	"strings"
)

// Unit represents a statistics content unit.
type Unit string

const (
	UnitDescriptive   Unit = "descriptive-statistics"
	UnitVisualization Unit = "data-visualization"
	UnitProbability   Unit = "probability"
	UnitDistributions Unit = "distributions"
	UnitInference     Unit = "inference"
)

// AllUnits returns all units in display order.
func AllUnits() []Unit {
	return []Unit{
		UnitDescriptive,
		UnitVisualization,
		UnitProbability,
		UnitDistributions,
		UnitInference,
	}
}

// DisplayName returns a human-readable name for a unit.
func (u Unit) DisplayName() string {
	switch u {
	case UnitDescriptive:
		return "Descriptive Statistics"
	case UnitVisualization:
		return "Data Visualization"
	case UnitProbability:
		return "Probability"
	case UnitDistributions:
		return "Distributions"
	case UnitInference:
		return "Inference"
	default:
		return string(u)
	}
}

// Lesson describes one catalog entry.
type Lesson struct {
	Slug          string
	Title         string
	Unit          Unit
	Order         int // position in the global sequence, starting at 0
	Summary       string
	EstimatedMins int
	Keywords      []string
}

// registry holds the catalog with precomputed indices.
type registry struct {
	lessons []Lesson
	bySlug  map[string]*Lesson
	byUnit  map[Unit][]Lesson
}

// reg is the package-level registry singleton, set by init() in seed.go.
var reg *registry

func buildRegistry(lessons []Lesson) *registry {
	r := &registry{
		lessons: lessons,
		bySlug:  make(map[string]*Lesson, len(lessons)),
		byUnit:  make(map[Unit][]Lesson),
	}

	sort.Slice(r.lessons, func(i, j int) bool {
		return r.lessons[i].Order < r.lessons[j].Order
	})

	for i := range r.lessons {
		r.bySlug[r.lessons[i].Slug] = &r.lessons[i]
		r.byUnit[r.lessons[i].Unit] = append(r.byUnit[r.lessons[i].Unit], r.lessons[i])
	}

	return r
}

// All returns every lesson in declared order.
func All() []Lesson {
	out := make([]Lesson, len(reg.lessons))
	copy(out, reg.lessons)
	return out
}

// Get returns the lesson with the given slug.
func Get(slug string) (Lesson, bool) {
	l, ok := reg.bySlug[slug]
	if !ok {
		return Lesson{}, false
	}
	return *l, true
}

// ByUnit returns the lessons in a unit, in declared order.
func ByUnit(u Unit) []Lesson {
	src := reg.byUnit[u]
	out := make([]Lesson, len(src))
	copy(out, src)
	return out
}

// IndexOf returns the position of slug in the global sequence, or -1.
func IndexOf(slug string) int {
	l, ok := reg.bySlug[slug]
	if !ok {
		return -1
	}
	return l.Order
}

// Previous returns the lesson immediately before slug in the sequence.
// ok is false for the first lesson and for unknown slugs.
func Previous(slug string) (Lesson, bool) {
	idx := IndexOf(slug)
	if idx <= 0 {
		return Lesson{}, false
	}
	return reg.lessons[idx-1], true
}

// Next returns the lesson immediately after slug in the sequence.
// ok is false for the last lesson and for unknown slugs.
func Next(slug string) (Lesson, bool) {
	idx := IndexOf(slug)
	if idx < 0 || idx >= len(reg.lessons)-1 {
		return Lesson{}, false
	}
	return reg.lessons[idx+1], true
}

// Count returns the number of lessons in the catalog.
func Count() int {
	return len(reg.lessons)
}

// MatchSlug resolves a slug-ish identifier to a catalog slug. It tries an
// exact match, then a path-suffix match ("unit-1/mean-median" matches
// "mean-median"), then a bare-slug prefix match. Returns "" when nothing
// matches.
func MatchSlug(id string) string {
	if _, ok := reg.bySlug[id]; ok {
		return id
	}
	if i := strings.LastIndex(id, "/"); i >= 0 {
		suffix := id[i+1:]
		if _, ok := reg.bySlug[suffix]; ok {
			return suffix
		}
	}
	for _, l := range reg.lessons {
		if strings.HasPrefix(id, l.Slug+"-") || strings.HasPrefix(l.Slug, id+"-") {
			return l.Slug
		}
	}
	return ""
}
