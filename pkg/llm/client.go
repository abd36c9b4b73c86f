// Package llm wraps the text-generation APIs used to write newsletter copy.
package llm

import (
	"context"
	"errors"
)

const (
	ProviderAnthropic = "anthropic"
	ProviderOpenAI    = "openai"
	ProviderGemini    = "gemini"
)

var ErrEmptyResponse = errors.New("empty response from model")

type Request struct {
	Prompt    string
	System    string
	Model     string
	MaxTokens int
	// Temperature of zero leaves the provider default.
	Temperature float64
}

type Response struct {
	Text  string
	Model string
}

type Generator interface {
	Generate(ctx context.Context, req Request) (*Response, error)
	Name() string
}
