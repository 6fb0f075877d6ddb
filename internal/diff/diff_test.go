package diff

import (
	"strings"
	"testing"
)

func TestComputeIdentical(t *testing.T) {
	r := Compute("you are a helpful assistant", "summarize: {text}", "you are a helpful assistant", "summarize: {text}")

	if r.SystemSimilarity != 1.0 || r.UserSimilarity != 1.0 || r.TotalSimilarity != 1.0 {
		t.Fatalf("expected all similarities 1.0, got %+v", r)
	}
	if len(r.SystemSegments) != 1 || r.SystemSegments[0].Type != SegmentUnchanged {
		t.Fatalf("expected single unchanged segment, got %+v", r.SystemSegments)
	}
	if r.Summary != "no changes" {
		t.Fatalf("unexpected summary: %q", r.Summary)
	}
}

func TestComputeEmptyBoth(t *testing.T) {
	r := Compute("", "", "", "")
	if r.TotalSimilarity != 1.0 {
		t.Fatalf("empty vs empty must be 1.0, got %v", r.TotalSimilarity)
	}
	if len(r.SystemSegments) != 0 || len(r.UserSegments) != 0 {
		t.Fatalf("expected no segments, got %+v / %+v", r.SystemSegments, r.UserSegments)
	}
}

func TestComputeInitialVersion(t *testing.T) {
	r := Compute("", "", "a b c", "")

	if len(r.SystemSegments) != 1 {
		t.Fatalf("expected exactly one segment, got %+v", r.SystemSegments)
	}
	seg := r.SystemSegments[0]
	if seg.Type != SegmentAdded || seg.Text != "a b c" {
		t.Fatalf("expected added segment %q, got %+v", "a b c", seg)
	}
	if r.SystemSimilarity != 0 {
		t.Fatalf("expected system similarity 0, got %v", r.SystemSimilarity)
	}
	// user 필드는 빈 텍스트끼리 비교이므로 1.0
	if r.UserSimilarity != 1.0 {
		t.Fatalf("expected user similarity 1.0, got %v", r.UserSimilarity)
	}
	if r.Summary != "initial content" {
		t.Fatalf("unexpected summary: %q", r.Summary)
	}
}

func TestComputeDisjoint(t *testing.T) {
	r := Compute("alpha beta gamma", "", "one two three", "")
	if r.SystemSimilarity != 0 {
		t.Fatalf("disjoint texts must have similarity 0, got %v", r.SystemSimilarity)
	}

	var sawRemoved, sawAdded bool
	for _, s := range r.SystemSegments {
		switch s.Type {
		case SegmentRemoved:
			sawRemoved = true
		case SegmentAdded:
			sawAdded = true
		case SegmentUnchanged:
			t.Fatalf("unexpected unchanged segment: %+v", s)
		}
	}
	if !sawRemoved || !sawAdded {
		t.Fatalf("expected both removed and added segments, got %+v", r.SystemSegments)
	}
}

// new 쪽 세그먼트(unchanged+added)를 그대로 이어붙이면 new 입력이 공백까지
// 바이트 단위로 복원되어야 한다. removed 세그먼트는 old 쪽 토큰을 빠짐없이
// 담아야 한다.
func TestSegmentsReconstructNewText(t *testing.T) {
	tests := []struct {
		name    string
		oldText string
		newText string
	}{
		{name: "word-swap", oldText: "you are a strict reviewer", newText: "you are a friendly reviewer"},
		{name: "append", oldText: "classify the text", newText: "classify the text and explain why"},
		{name: "prepend", oldText: "summarize {text}", newText: "briefly summarize {text}"},
		{name: "delete-middle", oldText: "one two three four five", newText: "one four five"},
		{name: "full-rewrite", oldText: "alpha beta", newText: "gamma delta epsilon"},
		{name: "empty-old", oldText: "", newText: "hello world"},
		{name: "empty-new", oldText: "hello world", newText: ""},
		{name: "double-space", oldText: "alpha beta", newText: "alpha  beta\ngamma"},
		{name: "multiline", oldText: "line one\nline two", newText: "line one\n\nline two\nline three"},
		{name: "tabs", oldText: "a\tb", newText: "a\t\tb\tc"},
		{name: "leading-trailing", oldText: "core", newText: "  core  "},
		{name: "whitespace-only-new", oldText: "gone", newText: "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, segs := diffField(tt.oldText, tt.newText)

			var rebuilt strings.Builder
			var oldSide []string
			for _, s := range segs {
				if s.Type != SegmentRemoved {
					rebuilt.WriteString(s.Text)
				}
				if s.Type != SegmentAdded {
					oldSide = append(oldSide, s.Text)
				}
			}

			if got := rebuilt.String(); got != tt.newText {
				t.Fatalf("new side reconstruction = %q, want %q", got, tt.newText)
			}

			// old 쪽은 토큰 수준에서 빠짐없이 분할 (unchanged는 new 철자의 공백)
			gotOldTokens := strings.Fields(strings.Join(oldSide, " "))
			wantOldTokens := strings.Fields(tt.oldText)
			if len(gotOldTokens) != len(wantOldTokens) {
				t.Fatalf("old side tokens = %v, want %v", gotOldTokens, wantOldTokens)
			}
			for i := range gotOldTokens {
				if gotOldTokens[i] != wantOldTokens[i] {
					t.Fatalf("old side tokens = %v, want %v", gotOldTokens, wantOldTokens)
				}
			}
		})
	}
}

func TestSegmentsCarryOriginalWhitespace(t *testing.T) {
	_, segs := diffField("alpha beta", "alpha  beta\ngamma")

	if len(segs) != 2 {
		t.Fatalf("expected 2 segments, got %+v", segs)
	}
	if segs[0].Type != SegmentUnchanged || segs[0].Text != "alpha  beta" {
		t.Fatalf("unchanged segment = %+v, want original double space", segs[0])
	}
	if segs[1].Type != SegmentAdded || segs[1].Text != "\ngamma" {
		t.Fatalf("added segment = %+v, want newline preserved", segs[1])
	}
}

func TestSimilarityRatio(t *testing.T) {
	// 4 tokens each, 3 in common: 2*3/8 = 0.75
	sim, _ := diffField("you are an assistant", "you are an expert")
	if sim != 0.75 {
		t.Fatalf("expected 0.75, got %v", sim)
	}
}

func TestTotalSimilarityIsMean(t *testing.T) {
	r := Compute("a b", "x y", "a b", "p q")
	if r.SystemSimilarity != 1.0 || r.UserSimilarity != 0.0 {
		t.Fatalf("unexpected per-field similarity: %+v", r)
	}
	if r.TotalSimilarity != 0.5 {
		t.Fatalf("total must be the mean, got %v", r.TotalSimilarity)
	}
}
