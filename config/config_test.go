package config

import (
	"os"
	"path/filepath"
	"testing"
)

var envKeys = []string{
	"REVIEWREPLY_MODEL_PATH",
	"REVIEWREPLY_LOG_LEVEL",
	"SUMMARY_SEGMENTER",
	"SUMMARY_MAX_SENTENCES",
	"SENTIMENT_STOPWORDS",
}

// clearEnv unsets every config key for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range envKeys {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestFromEnvDefaults(t *testing.T) {
	clearEnv(t)
	cfg := FromEnv()
	expected := Config{
		ModelPath:    "models/sentiment_model.gob",
		LogLevel:     "info",
		Segmenter:    "punctuation",
		MaxSentences: 1,
		StopWords:    false,
	}
	if cfg != expected {
		t.Errorf("FromEnv() = %+v, want %+v", cfg, expected)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("REVIEWREPLY_MODEL_PATH", "/tmp/model.gob")
	t.Setenv("REVIEWREPLY_LOG_LEVEL", "DEBUG")
	t.Setenv("SUMMARY_SEGMENTER", "Punkt")
	t.Setenv("SUMMARY_MAX_SENTENCES", " 3 ")
	t.Setenv("SENTIMENT_STOPWORDS", "true")

	cfg := FromEnv()
	expected := Config{
		ModelPath:    "/tmp/model.gob",
		LogLevel:     "debug",
		Segmenter:    "punkt",
		MaxSentences: 3,
		StopWords:    true,
	}
	if cfg != expected {
		t.Errorf("FromEnv() = %+v, want %+v", cfg, expected)
	}
}

func TestFromEnvMalformed(t *testing.T) {
	tests := []struct {
		sentences string
		stopWords string
		desc      string
	}{
		{"many", "maybe", "Words"},
		{"0", "", "Zero sentences"},
		{"-2", "2", "Negative sentences"},
		{"1.5", "yes", "Decimal sentences"},
	}

	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			clearEnv(t)
			t.Setenv("SUMMARY_MAX_SENTENCES", tt.sentences)
			t.Setenv("SENTIMENT_STOPWORDS", tt.stopWords)
			cfg := FromEnv()
			if cfg.MaxSentences != defaultMaxSentences {
				t.Errorf("MaxSentences = %d, want %d", cfg.MaxSentences, defaultMaxSentences)
			}
			if cfg.StopWords {
				t.Error("StopWords should fall back to false")
			}
		})
	}
}

func TestLoadEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	if err := os.MkdirAll(filepath.Join(dir, "config", "envs"), 0o755); err != nil {
		t.Fatal(err)
	}
	content := "REVIEWREPLY_MODEL_PATH=from-file.gob\nSUMMARY_MAX_SENTENCES=2\n"
	if err := os.WriteFile(filepath.Join(dir, "config", "envs", ".env.test"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { os.Chdir(wd) })

	// A variable already in the environment wins over the file.
	t.Setenv("SUMMARY_MAX_SENTENCES", "4")

	LoadEnv("test")
	cfg := FromEnv()
	if cfg.ModelPath != "from-file.gob" {
		t.Errorf("ModelPath = %q, want from-file.gob", cfg.ModelPath)
	}
	if cfg.MaxSentences != 4 {
		t.Errorf("MaxSentences = %d, want 4", cfg.MaxSentences)
	}

	// A missing file is not an error.
	LoadEnv("nonexistent")
}
