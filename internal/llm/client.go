package llm

import (
	"context"
	"fmt"
	"time"

	"finchat/internal/config"

	"google.golang.org/genai"
)

// Client is the inference collaborator: task instructions plus user text in,
// text out. Every failure mode (network, timeout, empty output) surfaces as
// an ordinary error; callers decide what a failure collapses to.
type Client interface {
	Infer(ctx context.Context, instructions, userText string, wantStructured bool) (string, error)
}

// GeminiClient implements Client on top of the Gemini API.
type GeminiClient struct {
	client  *genai.Client
	model   string
	timeout time.Duration
}

// NewGeminiClient creates a Gemini-backed inference client. The API key is
// read from the environment by the genai SDK (GEMINI_API_KEY / GOOGLE_API_KEY).
func NewGeminiClient(ctx context.Context, cfg config.InferenceConfig) (*GeminiClient, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		HTTPOptions: genai.HTTPOptions{APIVersion: "v1"},
	})
	if err != nil {
		return nil, fmt.Errorf("creating genai client: %w", err)
	}

	return &GeminiClient{
		client:  client,
		model:   cfg.Model,
		timeout: cfg.Timeout,
	}, nil
}

// Infer implements Client
func (g *GeminiClient) Infer(ctx context.Context, instructions, userText string, wantStructured bool) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	temp := float32(0)
	genCfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(instructions, genai.RoleUser),
		Temperature:       &temp,
	}
	if wantStructured {
		genCfg.ResponseMIMEType = "application/json"
	}

	contents := []*genai.Content{
		genai.NewContentFromText(userText, genai.RoleUser),
	}

	res, err := g.client.Models.GenerateContent(ctx, g.model, contents, genCfg)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	text := res.Text()
	if text == "" {
		return "", fmt.Errorf("model returned empty text")
	}

	return text, nil
}
