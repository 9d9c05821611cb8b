package reviewreply

// bootstrapExamples is the labeled set the classifier is trained on when no
// persisted model is available. Five examples per label.
var bootstrapExamples = []TrainingExample{
	{"Love the new UI, very smooth and fast", Positive},
	{"Excellent app — works perfectly", Positive},
	{"Very satisfied, 5 stars", Positive},
	{"Great experience, thank you!", Positive},
	{"Nice feature set and great support", Positive},

	{"It's okay, does the job", Neutral},
	{"Average performance and UI", Neutral},
	{"Not bad, but could be improved", Neutral},
	{"Three stars, acceptable", Neutral},
	{"Works as advertised", Neutral},

	{"App crashes on save and I lost my work", Negative},
	{"Very slow and unusable", Negative},
	{"Terrible experience, frequent errors", Negative},
	{"I am disappointed, not working", Negative},
	{"Two stars — lots of bugs and freezes", Negative},
}

// BootstrapExamples returns a copy of the built-in training set.
func BootstrapExamples() []TrainingExample {
	return append([]TrainingExample(nil), bootstrapExamples...)
}
