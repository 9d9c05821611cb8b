package reviewreply

// SentimentLabel represents the closed set of sentiment categories.
type SentimentLabel string

const (
	Positive SentimentLabel = "positive"
	Neutral  SentimentLabel = "neutral"
	Negative SentimentLabel = "negative"
)

// Labels returns the sentiment labels in sorted order.
func Labels() []SentimentLabel {
	return []SentimentLabel{Negative, Neutral, Positive}
}

// Valid reports whether l is one of the three known labels.
func (l SentimentLabel) Valid() bool {
	switch l {
	case Positive, Neutral, Negative:
		return true
	}
	return false
}

// String returns the label text
func (l SentimentLabel) String() string {
	return string(l)
}

// clampLabel coerces anything outside the closed set to Neutral.
func clampLabel(s string) SentimentLabel {
	l := SentimentLabel(s)
	if !l.Valid() {
		return Neutral
	}
	return l
}

// Which mechanism decided the sentiment of a reply.
const (
	SourceRating = "rating"
	SourceModel  = "model"
)

// TrainingExample is a piece of text with its true sentiment label.
type TrainingExample struct {
	Text  string         // The review text
	Label SentimentLabel // The true sentiment label
}

// ModelInfo describes how the in-memory sentiment model was obtained.
type ModelInfo struct {
	SentimentSource string  `json:"sentiment_source,omitempty"`
	ModelPath       *string `json:"model_path"`
	LoadedFrom      *string `json:"loaded_from"`
	Trained         bool    `json:"trained"`
	BootstrapSize   *int    `json:"bootstrap_size,omitempty"`
	SaveError       string  `json:"save_error,omitempty"`
}

// ReplyResult is the outcome of generating a reply for one review.
type ReplyResult struct {
	Reply           string         `json:"reply"`
	Summary         string         `json:"summary"`
	Sentiment       SentimentLabel `json:"sentiment"`
	Recommendations []string       `json:"recommendations"`
	ModelInfo       ModelInfo      `json:"model_info"`
}

// clone returns a copy that shares no pointers with mi.
func (mi ModelInfo) clone() ModelInfo {
	out := mi
	if mi.ModelPath != nil {
		p := *mi.ModelPath
		out.ModelPath = &p
	}
	if mi.LoadedFrom != nil {
		p := *mi.LoadedFrom
		out.LoadedFrom = &p
	}
	if mi.BootstrapSize != nil {
		n := *mi.BootstrapSize
		out.BootstrapSize = &n
	}
	return out
}
