package catalog

import (
	"fmt"
	"strings"
)

// validateLessons performs structural checks on the seed data.
// Returns a combined error describing all problems found, or nil if valid.
func validateLessons(lessons []Lesson) error {
	var errs []string

	if len(lessons) == 0 {
		errs = append(errs, "catalog is empty")
	}

	slugSet := make(map[string]bool, len(lessons))
	orderSet := make(map[int]bool, len(lessons))
	unitSet := make(map[Unit]bool)
	for _, u := range AllUnits() {
		unitSet[u] = true
	}

	for _, l := range lessons {
		if l.Slug == "" {
			errs = append(errs, fmt.Sprintf("lesson %q has empty slug", l.Title))
		}
		if slugSet[l.Slug] {
			errs = append(errs, fmt.Sprintf("duplicate lesson slug: %q", l.Slug))
		}
		slugSet[l.Slug] = true

		if orderSet[l.Order] {
			errs = append(errs, fmt.Sprintf("duplicate order %d (lesson %q)", l.Order, l.Slug))
		}
		orderSet[l.Order] = true

		if !unitSet[l.Unit] {
			errs = append(errs, fmt.Sprintf("lesson %q references unknown unit %q", l.Slug, l.Unit))
		}
	}

	// Order values must be dense: 0..n-1 with no gaps, or Previous/Next
	// lookups would skip lessons.
	for i := 0; i < len(lessons); i++ {
		if !orderSet[i] {
			errs = append(errs, fmt.Sprintf("order sequence has a gap at %d", i))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "; "))
	}
	return nil
}
