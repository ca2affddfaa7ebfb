package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"google.golang.org/genai"
)

const (
	// Low temperature favors structural consistency over creative variance;
	// the output must survive a strict JSON parse.
	generationTemperature = 0.3
	generationMaxTokens   = 4096
)

var (
	// ErrAPIKeyMissing means no Gemini credential was configured. This is an
	// operator problem, not a caller problem.
	ErrAPIKeyMissing = errors.New("gemini API key not configured")

	// ErrGenerationUnavailable means the provider call failed or returned no
	// usable text. Safe for the caller to retry the whole request.
	ErrGenerationUnavailable = errors.New("generation provider unavailable")
)

// Generator sends a prompt to the generative-text provider and returns the
// raw response text. One call per invocation, no retries, no streaming.
type Generator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}

type geminiGenerator struct {
	apiKey string
	model  string

	mu     sync.Mutex
	client *genai.Client
}

// NewGeminiGenerator creates a Generator backed by the Gemini API. Client
// creation needs a context, so it is deferred to the first call. One
// generator instance is shared by all concurrent requests.
func NewGeminiGenerator(apiKey, model string) Generator {
	return &geminiGenerator{
		apiKey: apiKey,
		model:  model,
	}
}

// ensureClient returns the shared client, creating it on first use. The
// mutex keeps concurrent requests from racing on the handle; a failed
// creation is retried by the next caller.
func (g *geminiGenerator) ensureClient(ctx context.Context) (*genai.Client, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.client != nil {
		return g.client, nil
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  g.apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create client: %v", ErrGenerationUnavailable, err)
	}
	g.client = client
	return client, nil
}

func (g *geminiGenerator) GenerateContent(ctx context.Context, prompt string) (string, error) {
	if g.apiKey == "" {
		return "", ErrAPIKeyMissing
	}

	client, err := g.ensureClient(ctx)
	if err != nil {
		return "", err
	}

	temperature := float32(generationTemperature)
	config := &genai.GenerateContentConfig{
		Temperature:     &temperature,
		MaxOutputTokens: generationMaxTokens,
	}
	contents := []*genai.Content{
		{
			Role:  "user",
			Parts: []*genai.Part{{Text: prompt}},
		},
	}

	result, err := client.Models.GenerateContent(ctx, g.model, contents, config)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGenerationUnavailable, err)
	}
	if result == nil {
		return "", fmt.Errorf("%w: empty response", ErrGenerationUnavailable)
	}

	text := result.Text()
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: response contained no text", ErrGenerationUnavailable)
	}
	return text, nil
}
