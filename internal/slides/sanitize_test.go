package slides

import (
	"strings"
	"testing"
)

func TestSanitize_RemovesScripts(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"plain script", `before <script>alert(1)</script> after`},
		{"script with attrs", `<script src="evil.js" defer>x</script>`},
		{"uppercase", `<SCRIPT>alert(1)</SCRIPT>`},
		{"unterminated", `text <script>alert(1)`},
		{"spliced", `<<script>script>alert(1)<</script>/script>`},
		{"nested in allowed", `<strong><script>x</script>bold</strong>`},
		{"style block", `<style>body{display:none}</style>hello`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Sanitize(tt.input)
			if strings.Contains(strings.ToLower(got), "<script") {
				t.Errorf("sanitized output still contains <script: %q", got)
			}
			if strings.Contains(strings.ToLower(got), "<style") {
				t.Errorf("sanitized output still contains <style: %q", got)
			}
		})
	}
}

func TestSanitize_DropsEventHandlers(t *testing.T) {
	got := Sanitize(`<b onclick="steal()">hi</b> <p onmouseover=x>there</p>`)
	if strings.Contains(got, "onclick") || strings.Contains(got, "onmouseover") {
		t.Errorf("attributes survived: %q", got)
	}
	if !strings.Contains(got, "<b>hi</b>") {
		t.Errorf("allowed tag lost: %q", got)
	}
}

func TestSanitize_KeepsAllowedInlineTags(t *testing.T) {
	in := `<strong>a</strong> <em>b</em> <code>c</code> <br> plain`
	got := Sanitize(in)
	for _, want := range []string{"<strong>a</strong>", "<em>b</em>", "<code>c</code>", "<br>"} {
		if !strings.Contains(got, want) {
			t.Errorf("Sanitize(%q) = %q, missing %q", in, got, want)
		}
	}
}

func TestSanitize_StripsUnknownTags(t *testing.T) {
	got := Sanitize(`<div class="x">inside</div> <iframe src="y"></iframe>`)
	if strings.Contains(got, "<div") || strings.Contains(got, "<iframe") {
		t.Errorf("unknown tags survived: %q", got)
	}
	if !strings.Contains(got, "inside") {
		t.Errorf("text content lost: %q", got)
	}
}

func TestSanitize_EscapesStrayAngleBrackets(t *testing.T) {
	got := Sanitize(`x <1 and y <2`)
	if strings.Contains(got, "<1") {
		t.Errorf("stray < not escaped: %q", got)
	}
	if !strings.Contains(got, "&lt;") {
		t.Errorf("expected entity escape in %q", got)
	}
}

func TestConvertMarkdown(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"**bold**", "<strong>bold</strong>"},
		{"a *slanted* word", "a <em>slanted</em> word"},
		{"an _alternative_ form", "an <em>alternative</em> form"},
		{"use `mean()` here", "use <code>mean()</code> here"},
		{"**outer** and *inner*", "<strong>outer</strong> and <em>inner</em>"},
		{"no markup at all", "no markup at all"},
	}
	for _, tt := range tests {
		if got := ConvertMarkdown(tt.input); got != tt.want {
			t.Errorf("ConvertMarkdown(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestFirstBoldClause(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"the **key idea** is here", "key idea"},
		{"already <strong>converted</strong> text", "converted"},
		{"nothing emphasized", ""},
		{"**first** then **second**", "first"},
	}
	for _, tt := range tests {
		if got := firstBoldClause(tt.input); got != tt.want {
			t.Errorf("firstBoldClause(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestExtractRestoreMath(t *testing.T) {
	in := `The mean is $\bar{x} = \frac{1}{n}\sum x_i$ and the block $$s^2 = 1$$ follows.`
	stripped, spans := extractMath(in)
	if len(spans) != 2 {
		t.Fatalf("got %d spans, want 2", len(spans))
	}
	if strings.Contains(stripped, "$") {
		t.Errorf("delimiters survive extraction: %q", stripped)
	}

	restored := restoreMath(stripped, spans)
	if !strings.Contains(restored, "<math>") || !strings.Contains(restored, "<mathblock>") {
		t.Errorf("markers missing: %q", restored)
	}
}

func TestMathBodyIsEscaped(t *testing.T) {
	stripped, spans := extractMath(`$<script>alert(1)</script>$`)
	got := restoreMath(Sanitize(stripped), spans)
	if strings.Contains(got, "<script") {
		t.Errorf("script hidden in math span survived: %q", got)
	}
}
