package provider

import (
	"fmt"
	"os"
	"strconv"

	"github.com/anthropics/anthropic-sdk-go"
)

// DefaultModel is used when DRAFTER_MODEL is unset.
const DefaultModel = anthropic.ModelClaude3_7SonnetLatest

const (
	defaultTemperature = 0.7
	defaultMaxTokens   = 2000
)

// Config holds the per-session model parameters. Values are fixed at session
// start and never renegotiated mid-conversation.
type Config struct {
	Model       anthropic.Model
	Temperature float64
	MaxTokens   int64
}

// ConfigFromEnv reads DRAFTER_MODEL, DRAFTER_TEMPERATURE, and
// DRAFTER_MAX_TOKENS, applying defaults for unset variables and rejecting
// unparsable ones.
func ConfigFromEnv() (Config, error) {
	cfg := Config{
		Model:       DefaultModel,
		Temperature: defaultTemperature,
		MaxTokens:   defaultMaxTokens,
	}

	if v := os.Getenv("DRAFTER_MODEL"); v != "" {
		cfg.Model = anthropic.Model(v)
	}
	if v := os.Getenv("DRAFTER_TEMPERATURE"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return Config{}, fmt.Errorf("invalid DRAFTER_TEMPERATURE %q: %w", v, err)
		}
		cfg.Temperature = f
	}
	if v := os.Getenv("DRAFTER_MAX_TOKENS"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n <= 0 {
			return Config{}, fmt.Errorf("invalid DRAFTER_MAX_TOKENS %q", v)
		}
		cfg.MaxTokens = n
	}
	return cfg, nil
}
