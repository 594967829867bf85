package slides

import (
	"regexp"
	"strconv"
	"strings"
)

// Sanitization is allowlist-based: a closed set of inline tags survives,
// stripped of all attributes; script and style elements are removed together
// with their bodies; every other tag is dropped. The invariant downstream
// code relies on is that "<script" can never appear in sanitized output.

var allowedTags = map[string]bool{
	"b": true, "strong": true,
	"i": true, "em": true,
	"u":    true,
	"code": true,
	"sub":  true, "sup": true,
	"br": true,
	"p":  true,
}

var (
	scriptBlockRe = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script\s*>`)
	styleBlockRe  = regexp.MustCompile(`(?is)<style\b[^>]*>.*?</style\s*>`)
	tagRe         = regexp.MustCompile(`(?s)<!--.*?-->|</?[a-zA-Z][^>]*(?:>|$)|<![^>]*>`)
	tagNameRe     = regexp.MustCompile(`^</?([a-zA-Z][a-zA-Z0-9-]*)`)
)

// Sanitize strips unsafe markup from s. Allowed inline tags are kept with
// their attributes removed; everything else, including script/style bodies
// and inline event handlers, is deleted. Any "<" left over after tag
// processing is entity-escaped, which closes the splice bypass where
// removing an inner tag reassembles an outer one.
func Sanitize(s string) string {
	s = scriptBlockRe.ReplaceAllString(s, "")
	s = styleBlockRe.ReplaceAllString(s, "")

	var kept []string
	s = tagRe.ReplaceAllStringFunc(s, func(tag string) string {
		m := tagNameRe.FindStringSubmatch(tag)
		if m == nil {
			return ""
		}
		name := strings.ToLower(m[1])
		if !allowedTags[name] {
			return ""
		}
		// Re-emit without attributes. Event handlers go with them.
		if strings.HasPrefix(tag, "</") {
			kept = append(kept, "</"+name+">")
		} else {
			kept = append(kept, "<"+name+">")
		}
		return "\x00" + strconv.Itoa(len(kept)-1) + "\x00"
	})

	s = strings.ReplaceAll(s, "<", "&lt;")

	for i, tag := range kept {
		s = strings.Replace(s, "\x00"+strconv.Itoa(i)+"\x00", tag, 1)
	}
	return s
}

var (
	boldRe     = regexp.MustCompile(`\*\*([^*\n][^*]*?)\*\*`)
	italicRe   = regexp.MustCompile(`(^|[^*\w])\*([^*\n]+?)\*`)
	emphUndRe  = regexp.MustCompile(`(^|[\s(])_([^_\n]+?)_`)
	codeSpanRe = regexp.MustCompile("`([^`\n]+?)`")
)

// ConvertMarkdown converts the lightweight markdown subset (bold, italic,
// inline code) into the allowed inline tags. Call after Sanitize so the
// emitted tags are the only markup present.
func ConvertMarkdown(s string) string {
	s = codeSpanRe.ReplaceAllString(s, "<code>$1</code>")
	s = boldRe.ReplaceAllString(s, "<strong>$1</strong>")
	s = italicRe.ReplaceAllString(s, "$1<em>$2</em>")
	s = emphUndRe.ReplaceAllString(s, "$1<em>$2</em>")
	return s
}

// firstBoldClause extracts the first emphasized clause from raw content,
// used as the slide highlight. Checks the markdown form first, then an
// already-converted <strong> span.
func firstBoldClause(raw string) string {
	if m := boldRe.FindStringSubmatch(raw); m != nil {
		return strings.TrimSpace(m[1])
	}
	if m := strongSpanRe.FindStringSubmatch(raw); m != nil {
		return strings.TrimSpace(m[1])
	}
	return ""
}

var strongSpanRe = regexp.MustCompile(`(?is)<(?:strong|b)>\s*([^<]+?)\s*</(?:strong|b)>`)
