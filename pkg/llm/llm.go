package llm

import (
	"context"
)

// LLM generates a text completion for a prompt. Callers tune individual
// calls with Option values; unset options fall back to the client's
// configured defaults.
type LLM interface {
	Generate(ctx context.Context, prompt string, opts ...Option) (string, error)
}

// Option adjusts a single generation call
type Option func(*Options)

// Options holds the per-call generation parameters
type Options struct {
	Temperature float64
	MaxTokens   int
}

// WithTemperature sets the sampling temperature for this call
func WithTemperature(temp float64) Option {
	return func(o *Options) {
		o.Temperature = temp
	}
}

// WithMaxTokens caps the completion length for this call
func WithMaxTokens(tokens int) Option {
	return func(o *Options) {
		o.MaxTokens = tokens
	}
}
