package providers

import (
	"context"
	"fmt"
	"strings"

	"github.com/dotsetgreg/veil/pkg/config"
	"google.golang.org/genai"
)

const defaultGeminiModel = "gemini-2.5-flash"

func init() {
	RegisterFactory(ProviderGemini, newGeminiFromConfig, validateGeminiConfig)
}

func validateGeminiConfig(cfg *config.Config) error {
	if cfg == nil {
		return fmt.Errorf("config is required")
	}
	if strings.TrimSpace(cfg.Providers.Gemini.APIKey) == "" {
		return fmt.Errorf("Gemini API key is required (set providers.gemini.api_key or VEIL_PROVIDERS_GEMINI_API_KEY)")
	}
	return nil
}

func newGeminiFromConfig(cfg *config.Config) (Responder, error) {
	if err := validateGeminiConfig(cfg); err != nil {
		return nil, err
	}
	model := strings.TrimSpace(cfg.Providers.Gemini.Model)
	if model == "" {
		model = defaultGeminiModel
	}
	return NewGemini(context.Background(), cfg.Providers.Gemini.APIKey, model)
}

// Gemini answers prompts through the Google GenAI API.
type Gemini struct {
	client *genai.Client
	model  string
}

func NewGemini(ctx context.Context, apiKey, model string) (*Gemini, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey: apiKey,
	})
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	return &Gemini{client: client, model: model}, nil
}

func (g *Gemini) Name() string { return ProviderGemini }

func (g *Gemini) Generate(ctx context.Context, prompt string) (string, error) {
	contents := []*genai.Content{
		genai.NewContentFromText(prompt, genai.RoleUser),
	}
	resp, err := g.client.Models.GenerateContent(ctx, g.model, contents, nil)
	if err != nil {
		return "", fmt.Errorf("gemini generate: %w", err)
	}
	text := strings.TrimSpace(resp.Text())
	if text == "" {
		return "", fmt.Errorf("gemini returned no content")
	}
	return text, nil
}

var _ Responder = (*Gemini)(nil)
