package slides

import (
	"html"
	"regexp"
	"strconv"
	"strings"
)

// Math spans are lifted out before sanitization so their bodies survive
// intact (a formula like "a < b" would otherwise be mangled), then restored
// wrapped in marker tags. Bodies are entity-escaped and never evaluated.
//
// Markers: <math>…</math> for inline spans, <mathblock>…</mathblock> for
// display spans. Renderers decide what to do with them.

var (
	blockDollarRe  = regexp.MustCompile(`(?s)\$\$(.+?)\$\$`)
	blockBracketRe = regexp.MustCompile(`(?s)\\\[(.+?)\\\]`)
	inlineDollarRe = regexp.MustCompile(`\$([^$\n]+?)\$`)
	inlineParenRe  = regexp.MustCompile(`\\\((.+?)\\\)`)
)

type mathSpan struct {
	body  string
	block bool
}

// extractMath replaces every math span in s with an opaque placeholder and
// returns the collected spans. Block forms are matched before inline forms
// so "$$x$$" is not picked apart as two empty inline spans.
func extractMath(s string) (string, []mathSpan) {
	var spans []mathSpan

	lift := func(re *regexp.Regexp, block bool) {
		s = re.ReplaceAllStringFunc(s, func(m string) string {
			sub := re.FindStringSubmatch(m)
			spans = append(spans, mathSpan{body: strings.TrimSpace(sub[1]), block: block})
			return "\x02" + strconv.Itoa(len(spans)-1) + "\x02"
		})
	}

	lift(blockDollarRe, true)
	lift(blockBracketRe, true)
	lift(inlineDollarRe, false)
	lift(inlineParenRe, false)

	return s, spans
}

// restoreMath substitutes placeholders back with marker-wrapped, escaped
// math bodies. Call after sanitization.
func restoreMath(s string, spans []mathSpan) string {
	for i, span := range spans {
		body := html.EscapeString(span.body)
		var wrapped string
		if span.block {
			wrapped = "<mathblock>" + body + "</mathblock>"
		} else {
			wrapped = "<math>" + body + "</math>"
		}
		s = strings.Replace(s, "\x02"+strconv.Itoa(i)+"\x02", wrapped, 1)
	}
	return s
}

// mathSymbols are characters that mark prose as formula-heavy.
const mathSymbols = "σμΣπ√±≤≥≈×÷∑"

// looksMathHeavy reports whether raw content reads as formula material:
// any block math span, two or more inline spans, or statistical notation
// alongside an equals sign.
func looksMathHeavy(raw string, spans []mathSpan) bool {
	inline := 0
	for _, sp := range spans {
		if sp.block {
			return true
		}
		inline++
	}
	if inline >= 2 {
		return true
	}
	return strings.ContainsAny(raw, mathSymbols) && strings.Contains(raw, "=")
}
