package reviewreply

import (
	"encoding/gob"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gonum.org/v1/gonum/mat"
)

const modelFormatVersion = 1

var (
	// ErrModelVersion is returned when a persisted model has an unknown format.
	ErrModelVersion = errors.New("unsupported model format version")
	// ErrUntrainedModel is returned when a persisted model is missing parts.
	ErrUntrainedModel = errors.New("model is not trained")
)

// A SentimentModel holds the fitted vectorizer and classifier.
type SentimentModel struct {
	Version    int
	Vectorizer *Vectorizer
	Classifier *LogisticRegression
	Examples   int // number of training examples
}

// Predict returns the sentiment of text. Classifier output outside the known
// labels is reported as Neutral.
func (m *SentimentModel) Predict(text string) SentimentLabel {
	return clampLabel(m.Classifier.Predict(m.vectorize(text)))
}

// Scores returns the decision score of every class for text.
func (m *SentimentModel) Scores(text string) map[SentimentLabel]float64 {
	scores := m.Classifier.DecisionFunction(m.vectorize(text))
	out := make(map[SentimentLabel]float64, len(scores))
	for k, class := range m.Classifier.Classes {
		out[SentimentLabel(class)] = scores[k]
	}
	return out
}

func (m *SentimentModel) vectorize(text string) *mat.VecDense {
	return m.Vectorizer.Transform(Normalize(text))
}

// validate checks the decoded model is usable and builds its dense caches.
func (m *SentimentModel) validate() error {
	if m.Version != modelFormatVersion {
		return fmt.Errorf("%w: %d", ErrModelVersion, m.Version)
	}
	if m.Vectorizer == nil || m.Classifier == nil {
		return ErrUntrainedModel
	}
	v, c := m.Vectorizer, m.Classifier
	if v.NGramMin < 1 || v.NGramMin > v.NGramMax || v.NGramMax > maxNGram {
		return fmt.Errorf("%w: n-gram range %d-%d", ErrUntrainedModel, v.NGramMin, v.NGramMax)
	}
	if len(v.Vocabulary) == 0 || len(v.Vocabulary) != len(v.IDF) {
		return fmt.Errorf("%w: vocabulary and idf disagree", ErrUntrainedModel)
	}
	if len(c.Classes) == 0 || len(c.Coef) != len(c.Classes) || len(c.Intercept) != len(c.Classes) {
		return fmt.Errorf("%w: classifier shape", ErrUntrainedModel)
	}
	for _, coef := range c.Coef {
		if len(coef) != len(v.IDF) {
			return fmt.Errorf("%w: %d weights for %d features", ErrUntrainedModel, len(coef), len(v.IDF))
		}
	}
	for _, col := range v.Vocabulary {
		if col < 0 || col >= len(v.IDF) {
			return fmt.Errorf("%w: vocabulary column %d out of range", ErrUntrainedModel, col)
		}
	}
	v.prepare()
	c.prepare()
	return nil
}

// ReadModel decodes a model from r.
func ReadModel(r io.Reader) (*SentimentModel, error) {
	var m SentimentModel
	if err := gob.NewDecoder(r).Decode(&m); err != nil {
		return nil, fmt.Errorf("decode model: %w", err)
	}
	if err := m.validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// LoadModel reads a model previously written with Save.
func LoadModel(path string) (*SentimentModel, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	m, err := ReadModel(file)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return m, nil
}

// Write encodes the model to w.
func (m *SentimentModel) Write(w io.Writer) error {
	return gob.NewEncoder(w).Encode(m)
}

// Save writes the model to path, creating parent directories as needed. The
// file is written under a temporary name and renamed into place, so readers
// never see a partial model.
func (m *SentimentModel) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err := m.Write(tmp); err != nil {
		tmp.Close()
		return fmt.Errorf("encode model: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
