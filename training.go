package reviewreply

import (
	"errors"
	"fmt"
	"time"
)

// ErrEmptyTrainingData is returned when a model is trained without examples.
var ErrEmptyTrainingData = errors.New("training data is empty")

// TrainingConfig contains configuration for model training
type TrainingConfig struct {
	NGramMin      int     // smallest n-gram length
	NGramMax      int     // largest n-gram length
	MaxFeatures   int     // vocabulary cap, 0 for no cap
	StopWords     bool    // drop English stop words
	C             float64 // inverse regularization strength
	Balanced      bool    // weight classes inversely to their frequency
	MaxIterations int
	Tolerance     float64
}

// DefaultTrainingConfig returns a default training configuration
func DefaultTrainingConfig() TrainingConfig {
	return TrainingConfig{
		NGramMin:      1,
		NGramMax:      2,
		MaxFeatures:   2000,
		C:             1.0,
		Balanced:      true,
		MaxIterations: 500,
		Tolerance:     1e-4,
	}
}

// TrainingMetrics contains metrics from training
type TrainingMetrics struct {
	Examples         int
	Features         int
	TrainingAccuracy float64
	Iterations       map[string]int // Newton iterations per class
	Converged        bool
	TrainingTime     time.Duration
}

// ValidationResult contains evaluation metrics on labeled data
type ValidationResult struct {
	Total     int
	Correct   int
	Accuracy  float64
	Confusion map[SentimentLabel]map[SentimentLabel]int // truth -> predicted -> count
}

// Trainer provides training functionality for sentiment models
type Trainer struct {
	config TrainingConfig
}

// NewTrainer creates a new trainer with the given configuration
func NewTrainer(config TrainingConfig) *Trainer {
	return &Trainer{config: config}
}

// Train fits a vectorizer and classifier on the examples. Training is
// deterministic: the same examples and configuration give the same model.
func (t *Trainer) Train(data []TrainingExample) (*SentimentModel, TrainingMetrics, error) {
	startTime := time.Now()

	if len(data) == 0 {
		return nil, TrainingMetrics{}, ErrEmptyTrainingData
	}

	texts := make([]string, len(data))
	labels := make([]string, len(data))
	for i, example := range data {
		texts[i] = Normalize(example.Text)
		labels[i] = string(example.Label)
	}

	vectorizer := newVectorizer(t.config)
	vectorizer.fit(texts, t.config.MaxFeatures)

	rows := make([]sample, len(texts))
	for i, text := range texts {
		rows[i] = sample{x: vectorizer.Transform(text), label: labels[i]}
	}

	var classWeight map[string]float64
	if t.config.Balanced {
		classWeight = balancedClassWeights(labels)
	}

	classifier, err := fitLogistic(rows, classWeight, t.config)
	if err != nil {
		return nil, TrainingMetrics{}, fmt.Errorf("fit classifier: %w", err)
	}

	model := &SentimentModel{
		Version:    modelFormatVersion,
		Vectorizer: vectorizer,
		Classifier: classifier,
		Examples:   len(data),
	}

	metrics := TrainingMetrics{
		Examples:   len(data),
		Features:   vectorizer.Features(),
		Iterations: make(map[string]int, len(classifier.Classes)),
		Converged:  true,
	}
	for k, class := range classifier.Classes {
		metrics.Iterations[class] = classifier.Iterations[k]
		metrics.Converged = metrics.Converged && classifier.Converged[k]
	}
	metrics.TrainingAccuracy = Evaluate(model, data).Accuracy
	metrics.TrainingTime = time.Since(startTime)

	return model, metrics, nil
}

// Evaluate runs the model against labeled examples.
func Evaluate(model *SentimentModel, data []TrainingExample) ValidationResult {
	result := ValidationResult{
		Confusion: make(map[SentimentLabel]map[SentimentLabel]int),
	}
	for _, example := range data {
		predicted := model.Predict(example.Text)
		if result.Confusion[example.Label] == nil {
			result.Confusion[example.Label] = make(map[SentimentLabel]int)
		}
		result.Confusion[example.Label][predicted]++
		if predicted == example.Label {
			result.Correct++
		}
		result.Total++
	}
	if result.Total > 0 {
		result.Accuracy = float64(result.Correct) / float64(result.Total)
	}
	return result
}
