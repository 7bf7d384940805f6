// Package ai adapts generative-AI providers behind a single text-generation
// interface. The provider set is closed and the active provider is chosen
// once, from configuration, at startup.
package ai

import (
	"context"
	"fmt"
	"strings"

	sc "github.com/ingria/ingria-backend/internal/server/config"
)

// Part is one segment of a single-shot prompt: either plain text or a binary
// payload with its mime type.
type Part struct {
	Text string
	MIME string
	Data []byte
}

// Message is one role-tagged entry of a conversational prompt.
type Message struct {
	Role    string
	Content string
}

// Request carries either ordered Parts (media analysis) or ordered Messages
// (conversation). Exactly one of the two should be set.
type Request struct {
	Parts    []Part
	Messages []Message
}

// Generator is the one capability every provider converges on: a stateless
// round trip from a prompt to plain text. Failures wrap common.ErrAIProvider
// with the upstream message and are never retried.
type Generator interface {
	Generate(ctx context.Context, req Request) (string, error)
}

// Provider tags for the closed provider set.
const (
	ProviderGemini = "gemini"
	ProviderGrok   = "grok"
)

// NewGenerator selects and constructs the configured provider.
func NewGenerator(ctx context.Context, cfg *sc.Config) (Generator, error) {
	switch strings.ToLower(cfg.AIProvider) {
	case ProviderGemini:
		return NewGeminiGenerator(ctx, cfg.GeminiKey, cfg.GeminiModel)
	case ProviderGrok:
		return NewGrokGenerator(cfg.GrokKey, cfg.GrokBaseURL, cfg.GrokModel, cfg.Temperature), nil
	default:
		return nil, fmt.Errorf("unknown ai provider: %s", cfg.AIProvider)
	}
}
