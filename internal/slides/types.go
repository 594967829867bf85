// Package slides turns raw lesson content into an ordered slide deck.
//
// The pipeline never fails: any input, including nil or malformed content,
// produces at least an intro slide and a terminal completion slide. Unsafe
// markup is stripped before a slide is ever built, so downstream renderers
// can trust Slide.Content.
package slides

// SlideType classifies what a slide presents.
type SlideType string

const (
	SlideIntro      SlideType = "intro"
	SlideConcept    SlideType = "concept"
	SlideExample    SlideType = "example"
	SlidePractice   SlideType = "practice"
	SlideTip        SlideType = "tip"
	SlideFormula    SlideType = "formula"
	SlideCompletion SlideType = "completion"
)

// Label returns the display label for a slide type.
func (t SlideType) Label() string {
	switch t {
	case SlideIntro:
		return "Introduction"
	case SlideConcept:
		return "Concept"
	case SlideExample:
		return "Example"
	case SlidePractice:
		return "Practice"
	case SlideTip:
		return "Tip"
	case SlideFormula:
		return "Formula"
	case SlideCompletion:
		return "Complete"
	default:
		return string(t)
	}
}

// valid reports whether t is one of the defined slide types.
func (t SlideType) valid() bool {
	switch t {
	case SlideIntro, SlideConcept, SlideExample, SlidePractice, SlideTip, SlideFormula, SlideCompletion:
		return true
	}
	return false
}

// Slide is one screen of lesson content. Immutable once generated.
type Slide struct {
	ID        string
	Type      SlideType
	Title     string
	Content   string // sanitized markup
	Visual    string // optional ascii visual, hand-authored decks only
	Highlight string // short emphasized takeaway, when present
}
