package reviewreply

import (
	"log/slog"
	"path/filepath"
	"sync"
)

// DefaultModelPath is where the trained model is persisted unless configured
// otherwise.
var DefaultModelPath = filepath.Join("models", "sentiment_model.gob")

// A Service generates replies to reviews. It owns a single sentiment model that
// is loaded or trained on first use and shared by all callers. A Service is safe
// for concurrent use.
type Service struct {
	modelPath  string
	logger     *slog.Logger
	config     TrainingConfig
	training   []TrainingExample
	summarizer Summarizer

	once  sync.Once
	model *SentimentModel
	info  ModelInfo
}

// An Option configures a Service.
type Option func(s *Service)

// WithModelPath sets the location of the persisted model.
func WithModelPath(path string) Option {
	return func(s *Service) {
		s.modelPath = path
	}
}

// WithLogger sets the logger used for model lifecycle events.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithTrainingConfig overrides the configuration used when the model has to be
// trained.
func WithTrainingConfig(config TrainingConfig) Option {
	return func(s *Service) {
		s.config = config
	}
}

// WithTrainingData replaces the bootstrap examples used for training.
func WithTrainingData(data []TrainingExample) Option {
	return func(s *Service) {
		s.training = append([]TrainingExample(nil), data...)
	}
}

// WithSummarizer sets how review summaries are produced.
func WithSummarizer(summarizer Summarizer) Option {
	return func(s *Service) {
		s.summarizer = summarizer
	}
}

// NewService creates a Service. The model is not touched until the first reply
// or a call to Warm.
func NewService(opts ...Option) *Service {
	s := &Service{
		modelPath:  DefaultModelPath,
		logger:     slog.Default(),
		config:     DefaultTrainingConfig(),
		training:   BootstrapExamples(),
		summarizer: Summarizer{MaxSentences: 1},
	}
	for _, applyOpt := range opts {
		applyOpt(s)
	}
	return s
}

// Warm loads or trains the model now instead of on the first reply.
func (s *Service) Warm() {
	s.once.Do(s.ensureModel)
}

// Model returns the shared sentiment model.
func (s *Service) Model() *SentimentModel {
	s.Warm()
	return s.model
}

// ModelInfo reports how the model was obtained.
func (s *Service) ModelInfo() ModelInfo {
	s.Warm()
	return s.info.clone()
}

// ensureModel loads the persisted model, or trains a new one and tries to
// persist it. A failed save keeps the trained model in memory.
func (s *Service) ensureModel() {
	path := s.modelPath

	model, err := LoadModel(path)
	if err == nil {
		s.model = model
		s.info = ModelInfo{LoadedFrom: &path, Trained: false}
		s.logger.Info("sentiment model loaded", slog.String("path", path))
		return
	}
	s.logger.Debug("sentiment model not loaded, training", slog.String("path", path), slog.String("error", err.Error()))

	model, metrics, err := NewTrainer(s.config).Train(s.training)
	if err != nil {
		// Only a misconfigured training set gets here; the bootstrap set is
		// always trainable.
		s.logger.Warn("training on configured data failed, using bootstrap set", slog.String("error", err.Error()))
		model, metrics, _ = NewTrainer(DefaultTrainingConfig()).Train(BootstrapExamples())
	}
	s.model = model
	size := metrics.Examples
	s.logger.Info("sentiment model trained",
		slog.Int("examples", metrics.Examples),
		slog.Int("features", metrics.Features),
		slog.Float64("accuracy", metrics.TrainingAccuracy),
		slog.Bool("converged", metrics.Converged),
		slog.Duration("took", metrics.TrainingTime))

	if err := model.Save(path); err != nil {
		s.info = ModelInfo{Trained: true, BootstrapSize: &size, SaveError: err.Error()}
		s.logger.Warn("sentiment model not saved", slog.String("path", path), slog.String("error", err.Error()))
		return
	}
	s.info = ModelInfo{LoadedFrom: &path, Trained: true, BootstrapSize: &size}
	s.logger.Info("sentiment model saved", slog.String("path", path))
}

// GenerateReply classifies a review and builds the reply for it. An explicit
// rating decides the sentiment; without one the model does.
func (s *Service) GenerateReply(review string, rating *int) ReplyResult {
	summary := s.summarizer.Summarize(review)

	sentiment, ok := MapRating(rating)
	source := SourceRating
	if !ok {
		sentiment = s.Model().Predict(review)
		source = SourceModel
	}

	recs := Recommendations(sentiment)
	info := s.ModelInfo()
	info.SentimentSource = source
	path := s.modelPath
	info.ModelPath = &path

	return ReplyResult{
		Reply:           SynthesizeReply(sentiment, summary, recs),
		Summary:         summary,
		Sentiment:       sentiment,
		Recommendations: recs,
		ModelInfo:       info,
	}
}

// GenerateReplyValue is GenerateReply for loosely typed input, such as decoded
// JSON or form values. Non-text reviews become "" and unreadable ratings are
// treated as missing.
func (s *Service) GenerateReplyValue(review, rating any) ReplyResult {
	return s.GenerateReply(TextValue(review), ParseRating(rating))
}
