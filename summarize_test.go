package reviewreply

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		text     string
		expected string
		desc     string
	}{
		{"  Hello   WORLD \n\t Foo ", "hello world foo", "Mixed whitespace"},
		{"", "", "Empty text"},
		{"   ", "", "Only whitespace"},
		{"Already clean", "already clean", "Lowercase only"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			if got := Normalize(tt.text); got != tt.expected {
				t.Errorf("Normalize(%q) = %q, want %q", tt.text, got, tt.expected)
			}
		})
	}
}

func TestNormalizeValue(t *testing.T) {
	tests := []struct {
		value    any
		expected string
		desc     string
	}{
		{nil, "", "Nil"},
		{123, "", "Integer"},
		{[]string{"a"}, "", "Slice"},
		{[]byte("A  B"), "a b", "Bytes"},
		{" Text ", "text", "String"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			if got := NormalizeValue(tt.value); got != tt.expected {
				t.Errorf("NormalizeValue(%v) = %q, want %q", tt.value, got, tt.expected)
			}
		})
	}
}

func TestPunctuationSegmenter(t *testing.T) {
	tests := []struct {
		text     string
		expected []string
		desc     string
	}{
		{"Hi! How are you? Fine.", []string{"Hi!", "How are you?", "Fine."}, "Three marks"},
		{"wait... ok", []string{"wait...", "ok"}, "Ellipsis"},
		{"v1.2 is out", []string{"v1.2 is out"}, "No whitespace after mark"},
		{"First.\n\n  Second", []string{"First.", "Second"}, "Whitespace run"},
		{"No marks at all", []string{"No marks at all"}, "Single sentence"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			got := PunctuationSegmenter{}.Segment(tt.text)
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Segment(%q) = %q, want %q", tt.text, got, tt.expected)
			}
		})
	}
}

func TestSummarize(t *testing.T) {
	tests := []struct {
		text     string
		max      int
		expected string
		desc     string
	}{
		{"", 1, "", "Empty text"},
		{"   ", 1, "", "Whitespace only"},
		{"  Great app.  ", 1, "Great app.", "Single sentence is trimmed"},
		{"Great app. Love it.", 2, "Great app. Love it.", "At the limit"},
		{"Short one. This sentence is much longer than the first. Ok.", 1,
			"This sentence is much longer than the first.", "Longest sentence wins"},
		{"One two. Three four.", 1, "One two.", "Tie keeps the earlier sentence"},
		{"A b. C d e f. G h i.", 2, "C d e f. G h i.", "Original order restored"},
		{"G h i j. A b. C d e f g.", 2, "G h i j. C d e f g.", "Order is positional, not by score"},
		{"Same words here. x. Same words here.", 1,
			"Same words here. Same words here.", "Duplicate sentences are both kept"},
		{"First bit here.\n\nSecond longer bit right here!", 1,
			"Second longer bit right here!", "Newlines between sentences"},
		{"One two. Three four five.", 0, "Three four five.", "Zero means one"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			if got := Summarize(tt.text, tt.max); got != tt.expected {
				t.Errorf("Summarize(%q, %d) = %q, want %q", tt.text, tt.max, got, tt.expected)
			}
		})
	}
}

func TestSummarizeIdempotentOnSingleSentence(t *testing.T) {
	inputs := []string{
		"The feature is missing export option",
		"  Nice and fast, good job  ",
		"Works!",
		"It's okay, could be improved.",
	}
	for _, s := range inputs {
		once := Summarize(s, 1)
		if twice := Summarize(once, 1); twice != once {
			t.Errorf("Summarize not idempotent for %q: %q then %q", s, once, twice)
		}
	}
}

func TestSummarizeValue(t *testing.T) {
	for _, v := range []any{nil, 42, 3.5, []int{1}, map[string]string{}} {
		if got := SummarizeValue(v, 1); got != "" {
			t.Errorf("SummarizeValue(%v) = %q, want empty", v, got)
		}
	}
	if got := SummarizeValue("Fine.", 1); got != "Fine." {
		t.Errorf("SummarizeValue(string) = %q", got)
	}
}

func TestPunktSegmenter(t *testing.T) {
	seg, err := NewPunktSegmenter()
	if err != nil {
		t.Fatalf("NewPunktSegmenter: %v", err)
	}

	got := seg.Segment("Hello there. Goodbye now.")
	if len(got) != 2 {
		t.Fatalf("Expected 2 sentences, got %d: %q", len(got), got)
	}

	summary := Summarizer{Segmenter: seg, MaxSentences: 1}.Summarize("Short. This one has more words in it.")
	if summary == "" {
		t.Error("Expected a non-empty summary with punkt segmentation")
	}

	if got := seg.Segment("   "); len(got) != 1 {
		t.Errorf("Expected blank text to stay one segment, got %q", got)
	}
}
