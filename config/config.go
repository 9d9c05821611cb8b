package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/subosito/gotenv"
)

// Default configuration values.
const (
	defaultModelPath    = "models/sentiment_model.gob"
	defaultLogLevel     = "info"
	defaultSegmenter    = "punctuation"
	defaultMaxSentences = 1
)

// Config holds the runtime settings of the reply generator.
type Config struct {
	ModelPath    string // REVIEWREPLY_MODEL_PATH
	LogLevel     string // REVIEWREPLY_LOG_LEVEL
	Segmenter    string // SUMMARY_SEGMENTER: punctuation or punkt
	MaxSentences int    // SUMMARY_MAX_SENTENCES
	StopWords    bool   // SENTIMENT_STOPWORDS
}

// LoadEnv loads config/envs/.env.<env> into the process environment. Variables
// already set are left alone.
func LoadEnv(env string) {
	envFile := "config/envs/.env." + env
	if err := gotenv.Load(envFile); err != nil {
		slog.Warn("No .env file found, using OS environment", slog.String("file", envFile))
	}
}

// FromEnv reads the configuration from the environment, falling back to
// defaults for unset or malformed values.
func FromEnv() Config {
	return Config{
		ModelPath:    getString("REVIEWREPLY_MODEL_PATH", defaultModelPath),
		LogLevel:     strings.ToLower(getString("REVIEWREPLY_LOG_LEVEL", defaultLogLevel)),
		Segmenter:    strings.ToLower(getString("SUMMARY_SEGMENTER", defaultSegmenter)),
		MaxSentences: getInt("SUMMARY_MAX_SENTENCES", defaultMaxSentences),
		StopWords:    getBool("SENTIMENT_STOPWORDS", false),
	}
}

func getString(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	n, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil || n < 1 {
		return fallback
	}
	return n
}

func getBool(key string, fallback bool) bool {
	b, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return fallback
	}
	return b
}
