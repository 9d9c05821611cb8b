package reviewreply

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"gopkg.in/neurosnap/sentences.v1"
	"gopkg.in/neurosnap/sentences.v1/english"
)

// A Segmenter splits text into sentences.
type Segmenter interface {
	Segment(text string) []string
}

// PunctuationSegmenter splits after '.', '!' or '?' when the mark is followed by
// whitespace. The whitespace run is dropped.
type PunctuationSegmenter struct{}

// Segment implements Segmenter.
func (PunctuationSegmenter) Segment(text string) []string {
	var out []string
	start := 0
	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		i += size
		if r != '.' && r != '!' && r != '?' {
			continue
		}
		end := i
		for i < len(text) {
			ws, wsize := utf8.DecodeRuneInString(text[i:])
			if !unicode.IsSpace(ws) {
				break
			}
			i += wsize
		}
		if i > end {
			out = append(out, text[start:end])
			start = i
		}
	}
	return append(out, text[start:])
}

// PunktSegmenter segments with the punkt English model, which knows about
// abbreviations and initials.
type PunktSegmenter struct {
	tokenizer *sentences.DefaultSentenceTokenizer
}

// NewPunktSegmenter loads the bundled English punkt model.
func NewPunktSegmenter() (*PunktSegmenter, error) {
	tok, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, err
	}
	return &PunktSegmenter{tokenizer: tok}, nil
}

// Segment implements Segmenter.
func (ps *PunktSegmenter) Segment(text string) []string {
	var out []string
	for _, s := range ps.tokenizer.Tokenize(text) {
		if t := strings.TrimSpace(s.Text); t != "" {
			out = append(out, t)
		}
	}
	if len(out) == 0 {
		return []string{text}
	}
	return out
}

// A Summarizer picks the most informative sentences of a text.
type Summarizer struct {
	Segmenter    Segmenter // Defaults to PunctuationSegmenter
	MaxSentences int       // Values below 1 mean 1
}

// Summarize returns an extractive summary of text with at most maxSentences
// sentences, using punctuation segmentation.
func Summarize(text string, maxSentences int) string {
	return Summarizer{MaxSentences: maxSentences}.Summarize(text)
}

// SummarizeValue summarizes v when it carries text; any other value yields "".
func SummarizeValue(v any, maxSentences int) string {
	return Summarize(TextValue(v), maxSentences)
}

type scoredSentence struct {
	score int
	index int
	text  string
}

// Summarize scores every sentence by its word count and keeps the top ones,
// reassembled in their original order.
func (s Summarizer) Summarize(text string) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return ""
	}

	limit := s.MaxSentences
	if limit < 1 {
		limit = 1
	}
	seg := s.Segmenter
	if seg == nil {
		seg = PunctuationSegmenter{}
	}

	sents := seg.Segment(trimmed)
	if len(sents) <= limit {
		return trimmed
	}

	scored := make([]scoredSentence, 0, len(sents))
	for i, sent := range sents {
		sent = strings.TrimSpace(sent)
		if sent == "" {
			continue
		}
		scored = append(scored, scoredSentence{score: countWords(sent), index: i, text: sent})
	}
	if len(scored) == 0 {
		return trimmed
	}

	// Equal scores keep their original order, so the earlier sentence wins.
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].score > scored[j].score
	})
	if len(scored) > limit {
		scored = scored[:limit]
	}

	selected := make(map[string]bool, len(scored))
	for _, c := range scored {
		selected[c.text] = true
	}

	var ordered []string
	for _, sent := range sents {
		sent = strings.TrimSpace(sent)
		if selected[sent] {
			ordered = append(ordered, sent)
		}
	}
	return strings.Join(ordered, " ")
}
