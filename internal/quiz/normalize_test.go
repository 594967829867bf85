package quiz

import (
	"encoding/json"
	"testing"
)

func rawList(t *testing.T, objects ...string) []json.RawMessage {
	t.Helper()
	out := make([]json.RawMessage, len(objects))
	for i, o := range objects {
		out[i] = json.RawMessage(o)
	}
	return out
}

func TestNormalize_FieldNameVariants(t *testing.T) {
	qs := Normalize(rawList(t,
		`{"id":"a","type":"mcq","stem":"S?","options":["x","y","z"],"correct_answer":2}`,
		`{"id":"b","type":"multiple_choice","question":"Q?","choices":["x","y"],"correctAnswer":"y"}`,
		`{"id":7,"type":"tf","text":"T?","answer":true}`,
	))
	if len(qs) != 3 {
		t.Fatalf("got %d questions, want 3", len(qs))
	}

	if qs[0].CorrectIndex != 2 {
		t.Errorf("q[0] CorrectIndex = %d, want 2", qs[0].CorrectIndex)
	}
	if qs[1].Type != TypeMCQ || qs[1].CorrectIndex != 1 {
		t.Errorf("q[1] = %q index %d, want mcq index 1 (resolved from text)", qs[1].Type, qs[1].CorrectIndex)
	}
	if qs[2].ID != "7" || qs[2].Type != TypeTF || !qs[2].CorrectBool {
		t.Errorf("q[2] = %+v, want numeric id as string, tf, true", qs[2])
	}
}

func TestNormalize_TypeLabelVariants(t *testing.T) {
	tests := []struct {
		label string
		want  QuestionType
	}{
		{"mcq", TypeMCQ},
		{"multiple-choice", TypeMCQ},
		{"Multiple Choice", TypeMCQ},
		{"true_false", TypeTF},
		{"boolean", TypeTF},
		{"fill_blank", TypeFill},
		{"fill-in-the-blank", TypeFill},
		{"matching", TypeMatch},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			raw := rawList(t, `{"stem":"s","type":"`+tt.label+`","options":["a","b"],"pairs":{"k":"v"}}`)
			qs := Normalize(raw)
			if len(qs) != 1 || qs[0].Type != tt.want {
				t.Errorf("label %q normalized to %q, want %q", tt.label, qs[0].Type, tt.want)
			}
		})
	}
}

func TestNormalize_TypeInference(t *testing.T) {
	qs := Normalize(rawList(t,
		`{"stem":"choices imply mcq","choices":["a","b"]}`,
		`{"stem":"bool answer implies tf","answer":false}`,
		`{"stem":"pairs imply match","pairs":{"l":"r"}}`,
		`{"stem":"bare text implies fill","answer":"42"}`,
	))
	want := []QuestionType{TypeMCQ, TypeTF, TypeMatch, TypeFill}
	if len(qs) != len(want) {
		t.Fatalf("got %d questions, want %d", len(qs), len(want))
	}
	for i, w := range want {
		if qs[i].Type != w {
			t.Errorf("q[%d] type = %q, want %q", i, qs[i].Type, w)
		}
	}
	if qs[3].CorrectText != "42" {
		t.Errorf("fill answer = %q, want 42", qs[3].CorrectText)
	}
}

func TestNormalize_PadsMCQChoices(t *testing.T) {
	qs := Normalize(rawList(t,
		`{"stem":"one choice","type":"mcq","options":["only"]}`,
		`{"stem":"no choices","type":"mcq"}`,
	))
	for i, q := range qs {
		if len(q.Choices) < 2 {
			t.Errorf("q[%d] has %d choices, want at least 2", i, len(q.Choices))
		}
		if !q.Answerable() {
			t.Errorf("q[%d] should be answerable after padding", i)
		}
	}
	if qs[0].Choices[0] != "only" {
		t.Errorf("real choice displaced: %v", qs[0].Choices)
	}
}

func TestNormalize_DropsUnusable(t *testing.T) {
	qs := Normalize(rawList(t,
		`{"type":"mcq","options":["a","b"]}`,
		`not even json`,
		`{"stem":"  "}`,
		`{"stem":"keeper","type":"tf","answer":"yes"}`,
	))
	if len(qs) != 1 {
		t.Fatalf("got %d questions, want 1", len(qs))
	}
	if qs[0].Stem != "keeper" || !qs[0].CorrectBool {
		t.Errorf("survivor = %+v", qs[0])
	}
}

func TestNormalize_GeneratedIDs(t *testing.T) {
	qs := Normalize(rawList(t,
		`{"stem":"a","type":"tf"}`,
		`{"stem":"b","type":"tf"}`,
	))
	if qs[0].ID != "q1" || qs[1].ID != "q2" {
		t.Errorf("generated ids = %q, %q", qs[0].ID, qs[1].ID)
	}
}

func TestNormalize_OutOfRangeCorrectIndexDefaultsToZero(t *testing.T) {
	qs := Normalize(rawList(t, `{"stem":"s","type":"mcq","options":["a","b"],"correct_answer":9}`))
	if qs[0].CorrectIndex != 0 {
		t.Errorf("CorrectIndex = %d, want fallback 0", qs[0].CorrectIndex)
	}
}
