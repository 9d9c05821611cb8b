package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/tsawler/reviewreply"
	"github.com/tsawler/reviewreply/config"
	"github.com/tsawler/reviewreply/internal/logging"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		slog.Error("reviewreply failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	cfg := config.FromEnv()

	fs := flag.NewFlagSet("reviewreply", flag.ContinueOnError)
	review := fs.String("review", "", "review text (read from stdin when empty)")
	rating := fs.String("rating", "", "optional rating, e.g. 1-5")
	modelPath := fs.String("model", cfg.ModelPath, "path of the persisted sentiment model")
	train := fs.Bool("train", false, "retrain the model from the bootstrap set and save it")
	eval := fs.Bool("eval", false, "report model accuracy on the bootstrap set")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	logger := logging.InitLogger(cfg.LogLevel)

	trainingConfig := reviewreply.DefaultTrainingConfig()
	trainingConfig.StopWords = cfg.StopWords

	if *train {
		model, metrics, err := reviewreply.NewTrainer(trainingConfig).Train(reviewreply.BootstrapExamples())
		if err != nil {
			return fmt.Errorf("train: %w", err)
		}
		if err := model.Save(*modelPath); err != nil {
			return fmt.Errorf("save: %w", err)
		}
		logger.Info("model retrained",
			slog.String("path", *modelPath),
			slog.Int("features", metrics.Features),
			slog.Float64("accuracy", metrics.TrainingAccuracy))
		return nil
	}

	summarizer := reviewreply.Summarizer{MaxSentences: cfg.MaxSentences}
	if cfg.Segmenter == "punkt" {
		seg, err := reviewreply.NewPunktSegmenter()
		if err != nil {
			logger.Warn("punkt segmenter unavailable, using punctuation", slog.String("error", err.Error()))
		} else {
			summarizer.Segmenter = seg
		}
	}

	svc := reviewreply.NewService(
		reviewreply.WithModelPath(*modelPath),
		reviewreply.WithLogger(logger),
		reviewreply.WithTrainingConfig(trainingConfig),
		reviewreply.WithSummarizer(summarizer),
	)

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)

	if *eval {
		result := reviewreply.Evaluate(svc.Model(), reviewreply.BootstrapExamples())
		return enc.Encode(map[string]any{
			"total":      result.Total,
			"correct":    result.Correct,
			"accuracy":   result.Accuracy,
			"confusion":  result.Confusion,
			"model_info": svc.ModelInfo(),
		})
	}

	text := *review
	if text == "" {
		b, err := io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("read review: %w", err)
		}
		text = string(b)
	}

	var r any
	if strings.TrimSpace(*rating) != "" {
		r = *rating
	}
	return enc.Encode(svc.GenerateReplyValue(text, r))
}
