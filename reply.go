package reviewreply

import "strings"

var replyTemplates = map[SentimentLabel]string{
	Positive: "Thanks for the positive feedback! We're delighted to hear that. Summary: {summary}",
	Neutral:  "Thanks for the feedback. Summary: {summary}. We'll consider improvements.",
	Negative: "Sorry for the trouble — we appreciate this feedback. Summary: {summary}. Next steps: {recs}",
}

var recommendations = map[SentimentLabel][]string{
	Positive: {"Share with product team", "Thank user"},
	Neutral:  {"Log for product review", "Monitor feedback trend"},
	Negative: {"Escalate to engineering", "Request logs/screenshots", "Offer support contact"},
}

var defaultRecommendations = []string{"Log for review"}

// Recommendations returns the follow-up actions for a sentiment. Unknown labels
// get a single generic action. The returned slice is a copy.
func Recommendations(label SentimentLabel) []string {
	recs, ok := recommendations[label]
	if !ok {
		recs = defaultRecommendations
	}
	return append([]string(nil), recs...)
}

// SynthesizeReply fills the reply template for label. Unknown labels use the
// neutral template.
func SynthesizeReply(label SentimentLabel, summary string, recs []string) string {
	tmpl, ok := replyTemplates[label]
	if !ok {
		tmpl = replyTemplates[Neutral]
	}
	// One pass, so a summary containing "{recs}" is left alone.
	r := strings.NewReplacer("{summary}", summary, "{recs}", strings.Join(recs, "; "))
	return r.Replace(tmpl)
}
