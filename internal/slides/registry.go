package slides

import "strings"

// handAuthored maps lesson identifiers to curated decks that bypass the
// generation pipeline entirely. Curated content is trusted and returned
// verbatim, completion slide included.
var handAuthored = map[string][]Slide{
	"intro-to-statistics": {
		{
			ID:    "intro-to-statistics-0",
			Type:  SlideIntro,
			Title: "What Is Statistics?",
			Content: "Statistics is the craft of learning from data: collecting it, summarizing it, " +
				"and deciding how much to trust what it seems to say.",
			Highlight: "Learning from data",
		},
		{
			ID:    "intro-to-statistics-1",
			Type:  SlideConcept,
			Title: "Population vs. Sample",
			Content: "The <strong>population</strong> is every case you care about. The <strong>sample</strong> " +
				"is the part you actually measured. Almost everything in statistics is about reasoning " +
				"from the sample you have to the population you want.",
			Visual: "  population: ●●●●●●●●●●●●●●●●\n  sample:             ●●●●",
			Highlight: "Sample → population",
		},
		{
			ID:    "intro-to-statistics-2",
			Type:  SlideExample,
			Title: "Example: Taste Testing",
			Content: "A soup cook does not drink the whole pot to check the seasoning. One stirred " +
				"spoonful is a sample, and stirring is what makes it representative.",
		},
		{
			ID:    "intro-to-statistics-3",
			Type:  SlideTip,
			Title: "Remember",
			Content: "A bigger sample beats a bigger claim. Whenever a statistic surprises you, " +
				"ask first how the sample was chosen.",
			Highlight: "Ask how the sample was chosen",
		},
		{
			ID:      "intro-to-statistics-4",
			Type:    SlideCompletion,
			Title:   "Lesson Complete!",
			Content: "Nice work. Review the summary, then take the quiz to lock in what you learned.",
		},
	},
}

// lookupDeck resolves a lesson identifier to a hand-authored deck: exact key
// first, then a path-suffix match, then the identifier's bare final segment.
func lookupDeck(id string) ([]Slide, bool) {
	if deck, ok := handAuthored[id]; ok {
		return cloneDeck(deck), true
	}
	for key, deck := range handAuthored {
		if strings.HasSuffix(id, "/"+key) {
			return cloneDeck(deck), true
		}
	}
	if i := strings.LastIndex(id, "/"); i >= 0 {
		if deck, ok := handAuthored[id[i+1:]]; ok {
			return cloneDeck(deck), true
		}
	}
	return nil, false
}

// cloneDeck returns a copy so callers cannot mutate the registry.
func cloneDeck(deck []Slide) []Slide {
	out := make([]Slide, len(deck))
	copy(out, deck)
	return out
}
