package ai

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	openai "github.com/sashabaranov/go-openai"

	"github.com/ingria/ingria-backend/internal/common"
)

// GrokGenerator talks to the xAI API, which is OpenAI-compatible: bearer
// auth, a JSON body with role-tagged messages, the reply read from
// choices[0].message.content.
type GrokGenerator struct {
	client      *openai.Client
	model       string
	temperature float32
}

func NewGrokGenerator(apiKey, baseURL, model string, temperature float32) *GrokGenerator {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &GrokGenerator{
		client:      openai.NewClientWithConfig(cfg),
		model:       model,
		temperature: temperature,
	}
}

func (g *GrokGenerator) Generate(ctx context.Context, req Request) (string, error) {

	msgs, err := g.buildMessages(req)
	if err != nil {
		return "", err
	}

	resp, err := g.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       g.model,
		Messages:    msgs,
		Temperature: g.temperature,
		Stream:      false,
	})
	if err != nil {
		return "", fmt.Errorf("%w: grok: %v", common.ErrAIProvider, err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("%w: grok: empty response", common.ErrAIProvider)
	}

	return resp.Choices[0].Message.Content, nil
}

func (g *GrokGenerator) buildMessages(req Request) ([]openai.ChatCompletionMessage, error) {

	if len(req.Parts) == 0 {
		msgs := make([]openai.ChatCompletionMessage, 0, len(req.Messages))
		for _, m := range req.Messages {
			msgs = append(msgs, openai.ChatCompletionMessage{Role: m.Role, Content: m.Content})
		}
		return msgs, nil
	}

	// Single-shot media prompt: one user message mixing text and images.
	var content []openai.ChatMessagePart
	for _, p := range req.Parts {
		switch {
		case p.Data == nil:
			content = append(content, openai.ChatMessagePart{
				Type: openai.ChatMessagePartTypeText,
				Text: p.Text,
			})
		case strings.HasPrefix(p.MIME, "image/"):
			content = append(content, openai.ChatMessagePart{
				Type: openai.ChatMessagePartTypeImageURL,
				ImageURL: &openai.ChatMessageImageURL{
					URL: fmt.Sprintf("data:%s;base64,%s", p.MIME, base64.StdEncoding.EncodeToString(p.Data)),
				},
			})
		default:
			return nil, fmt.Errorf("%w: grok: unsupported media type %s", common.ErrAIProvider, p.MIME)
		}
	}

	return []openai.ChatCompletionMessage{{
		Role:         openai.ChatMessageRoleUser,
		MultiContent: content,
	}}, nil
}
