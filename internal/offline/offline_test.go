package offline

import (
	"strings"
	"testing"

	"github.com/abhisek/statlab/internal/catalog"
	"github.com/abhisek/statlab/internal/quiz"
	"github.com/abhisek/statlab/internal/slides"
)

func TestLessonCoversEveryCatalogEntry(t *testing.T) {
	for _, l := range catalog.All() {
		rec := Lesson(l)
		if rec == nil || len(rec.Sections) == 0 {
			t.Fatalf("%s: no offline sections", l.Slug)
		}
		if rec.Title != l.Title {
			t.Errorf("%s: title = %q, want %q", l.Slug, rec.Title, l.Title)
		}

		deck := slides.Generate(l.Slug, rec, l.Title)
		if len(deck) < 2 {
			t.Fatalf("%s: deck too short: %d", l.Slug, len(deck))
		}
		if deck[0].Type != slides.SlideIntro {
			t.Errorf("%s: first slide type = %s, want intro", l.Slug, deck[0].Type)
		}
		if deck[len(deck)-1].Type != slides.SlideCompletion {
			t.Errorf("%s: last slide type = %s, want completion", l.Slug, deck[len(deck)-1].Type)
		}
	}
}

func TestQuestionsCoversEveryCatalogEntry(t *testing.T) {
	for _, l := range catalog.All() {
		qs := Questions(l)
		if len(qs) != 5 {
			t.Fatalf("%s: len(questions) = %d, want 5", l.Slug, len(qs))
		}
		for i, q := range qs {
			if !q.Answerable() {
				t.Errorf("%s q%d: not answerable: %+v", l.Slug, i, q)
			}
			if !strings.HasPrefix(q.ID, l.Slug+"-offline-") {
				t.Errorf("%s q%d: id = %q, want slug prefix", l.Slug, i, q.ID)
			}
			if q.Type == quiz.TypeMCQ && (q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Choices)) {
				t.Errorf("%s q%d: correct index %d out of range", l.Slug, i, q.CorrectIndex)
			}
		}
	}
}

func TestQuestionsReturnsIndependentCopies(t *testing.T) {
	l := catalog.All()[0]
	a := Questions(l)
	b := Questions(l)
	a[0].Stem = "mutated"
	if b[0].Stem == "mutated" {
		t.Fatal("Questions shares backing storage between calls")
	}
}
