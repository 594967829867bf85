package slides

import (
	"fmt"
	"html"
	"regexp"
	"strings"

	"github.com/abhisek/statlab/internal/api"
)

// maxSlideChars is the readable-length ceiling for one slide. Sections above
// it are split again on paragraph boundaries.
const maxSlideChars = 700

// section is the pipeline's working unit between splitting and rendering.
type section struct {
	declaredType string
	title        string
	content      string
}

// Generate converts lesson content into an ordered slide deck.
//
// Hand-authored decks registered for the lesson identifier win outright.
// Otherwise content is split on heading and paragraph boundaries, classified,
// sanitized, and capped with exactly one completion slide. The result is
// never empty: nil or malformed input degrades to a single intro slide built
// from fallbackTitle.
func Generate(lessonID string, rec *api.LessonRecord, fallbackTitle string) []Slide {
	if deck, ok := lookupDeck(lessonID); ok {
		return deck
	}

	title := fallbackTitle
	if rec != nil && rec.Title != "" {
		title = rec.Title
	}
	if title == "" {
		title = "Lesson"
	}

	var sections []section
	if rec != nil {
		sections = expandSections(rec.Sections)
	}

	if len(sections) == 0 {
		return []Slide{
			{
				ID:      lessonID + "-0",
				Type:    SlideIntro,
				Title:   title,
				Content: "This lesson is loading in reduced form. Read on and take the quiz when you are ready.",
			},
			completionSlide(lessonID, 1),
		}
	}

	slides := make([]Slide, 0, len(sections)+1)
	for i, sec := range sections {
		slides = append(slides, buildSlide(lessonID, i, sec))
	}
	slides = append(slides, completionSlide(lessonID, len(sections)))
	return slides
}

// expandSections flattens backend sections into slide-sized units: embedded
// markdown headings open new units, and oversized units are split again on
// paragraph boundaries.
func expandSections(src []api.Section) []section {
	var out []section
	for _, s := range src {
		for _, unit := range splitHeadings(s) {
			if len(unit.content) <= maxSlideChars {
				if strings.TrimSpace(unit.content) != "" || unit.title != "" {
					out = append(out, unit)
				}
				continue
			}
			for _, part := range splitParagraphs(unit.content) {
				out = append(out, section{
					declaredType: unit.declaredType,
					title:        unit.title,
					content:      part,
				})
			}
		}
	}
	return out
}

var headingRe = regexp.MustCompile(`(?m)^#{1,6}\s+(.+)$`)

// splitHeadings splits a backend section on markdown heading lines. Content
// before the first heading keeps the section's own title.
func splitHeadings(s api.Section) []section {
	locs := headingRe.FindAllStringSubmatchIndex(s.Content, -1)
	if len(locs) == 0 {
		return []section{{declaredType: s.Type, title: s.Title, content: strings.TrimSpace(s.Content)}}
	}

	var out []section
	if lead := strings.TrimSpace(s.Content[:locs[0][0]]); lead != "" {
		out = append(out, section{declaredType: s.Type, title: s.Title, content: lead})
	}
	for i, loc := range locs {
		title := strings.TrimSpace(s.Content[loc[2]:loc[3]])
		end := len(s.Content)
		if i+1 < len(locs) {
			end = locs[i+1][0]
		}
		body := strings.TrimSpace(s.Content[loc[1]:end])
		out = append(out, section{declaredType: s.Type, title: title, content: body})
	}
	return out
}

// splitParagraphs packs paragraphs into chunks no longer than maxSlideChars.
// A single paragraph longer than the limit becomes its own chunk rather than
// being cut mid-sentence.
func splitParagraphs(content string) []string {
	paras := strings.Split(content, "\n\n")
	var chunks []string
	var cur strings.Builder

	flush := func() {
		if cur.Len() > 0 {
			chunks = append(chunks, strings.TrimSpace(cur.String()))
			cur.Reset()
		}
	}

	for _, p := range paras {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		if cur.Len() > 0 && cur.Len()+len(p) > maxSlideChars {
			flush()
		}
		if cur.Len() > 0 {
			cur.WriteString("\n\n")
		}
		cur.WriteString(p)
	}
	flush()

	if len(chunks) == 0 {
		chunks = []string{strings.TrimSpace(content)}
	}
	return chunks
}

// buildSlide renders one section into a slide. Rendering never aborts deck
// generation: a panic inside the markup passes degrades the fragment to a
// plain-text concept slide.
func buildSlide(lessonID string, index int, sec section) (slide Slide) {
	defer func() {
		if r := recover(); r != nil {
			slide = Slide{
				ID:      fmt.Sprintf("%s-%d", lessonID, index),
				Type:    SlideConcept,
				Title:   sec.title,
				Content: html.EscapeString(sec.content),
			}
		}
	}()

	stripped, spans := extractMath(sec.content)
	content := Sanitize(stripped)
	content = ConvertMarkdown(content)
	content = restoreMath(content, spans)

	return Slide{
		ID:        fmt.Sprintf("%s-%d", lessonID, index),
		Type:      classify(index, sec, spans),
		Title:     Sanitize(sec.title),
		Content:   strings.TrimSpace(content),
		Highlight: Sanitize(firstBoldClause(sec.content)),
	}
}

// classify picks a slide type. The deck always opens with an intro; after
// that a valid declared type wins, then ordered heuristics run and the first
// match decides.
func classify(index int, sec section, spans []mathSpan) SlideType {
	if index == 0 {
		return SlideIntro
	}
	if t := SlideType(strings.ToLower(sec.declaredType)); t.valid() && t != SlideCompletion {
		return t
	}

	lower := strings.ToLower(sec.title + " " + sec.content)
	switch {
	case strings.Contains(lower, "example") || strings.Contains(lower, "e.g.") || strings.Contains(lower, "for instance"):
		return SlideExample
	case strings.Contains(lower, "takeaway") || strings.Contains(lower, "remember") || strings.Contains(lower, "tip"):
		return SlideTip
	case strings.Contains(lower, "try it") || strings.Contains(lower, "practice") || strings.Contains(lower, "your turn"):
		return SlidePractice
	case looksMathHeavy(sec.content, spans):
		return SlideFormula
	default:
		return SlideConcept
	}
}

func completionSlide(lessonID string, index int) Slide {
	return Slide{
		ID:      fmt.Sprintf("%s-%d", lessonID, index),
		Type:    SlideCompletion,
		Title:   "Lesson Complete!",
		Content: "Nice work. Review the summary, then take the quiz to lock in what you learned.",
	}
}
