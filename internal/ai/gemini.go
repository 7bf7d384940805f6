package ai

import (
	"context"
	"fmt"
	"strings"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/ingria/ingria-backend/internal/common"
)

// GeminiGenerator calls Google Gemini through the official SDK. Binary parts
// are passed as inline blobs, so one request can mix a text instruction with
// an image or an audio clip.
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

func NewGeminiGenerator(ctx context.Context, apiKey, model string) (*GeminiGenerator, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("gemini init: %w", err)
	}
	return &GeminiGenerator{client: client, model: model}, nil
}

func (g *GeminiGenerator) Generate(ctx context.Context, req Request) (string, error) {
	model := g.client.GenerativeModel(g.model)

	var parts []genai.Part
	if len(req.Parts) > 0 {
		for _, p := range req.Parts {
			if p.Data != nil {
				parts = append(parts, genai.Blob{MIMEType: p.MIME, Data: p.Data})
			} else {
				parts = append(parts, genai.Text(p.Text))
			}
		}
	} else {
		// Conversation history is flattened into ordered text parts.
		for _, m := range req.Messages {
			parts = append(parts, genai.Text(m.Content))
		}
	}

	resp, err := model.GenerateContent(ctx, parts...)
	if err != nil {
		return "", fmt.Errorf("%w: gemini: %v", common.ErrAIProvider, err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("%w: gemini: empty response", common.ErrAIProvider)
	}

	var sb strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		if t, ok := p.(genai.Text); ok {
			sb.WriteString(string(t))
		}
	}

	return sb.String(), nil
}
