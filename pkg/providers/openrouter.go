package providers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dotsetgreg/veil/pkg/config"
)

const (
	defaultOpenRouterAPIBase = "https://openrouter.ai/api/v1"
	defaultOpenRouterModel   = "openai/gpt-5.2"

	defaultHTTPTimeout = 120 * time.Second
)

func init() {
	RegisterFactory(ProviderOpenRouter, newOpenRouterFromConfig, validateOpenRouterConfig)
}

func validateOpenRouterConfig(cfg *config.Config) error {
	if cfg == nil {
		return fmt.Errorf("config is required")
	}
	if strings.TrimSpace(cfg.Providers.OpenRouter.APIKey) == "" {
		return fmt.Errorf("OpenRouter API key is required (set providers.openrouter.api_key or VEIL_PROVIDERS_OPENROUTER_API_KEY)")
	}
	return nil
}

func newOpenRouterFromConfig(cfg *config.Config) (Responder, error) {
	if err := validateOpenRouterConfig(cfg); err != nil {
		return nil, err
	}
	apiBase := strings.TrimSpace(cfg.Providers.OpenRouter.APIBase)
	if apiBase == "" {
		apiBase = defaultOpenRouterAPIBase
	}
	model := strings.TrimSpace(cfg.Providers.OpenRouter.Model)
	if model == "" {
		model = defaultOpenRouterModel
	}
	return NewOpenRouter(cfg.Providers.OpenRouter.APIKey, apiBase, model, cfg.Providers.OpenRouter.Proxy), nil
}

// OpenRouter answers prompts through an OpenAI-compatible chat-completions
// endpoint.
type OpenRouter struct {
	apiKey     string
	apiBase    string
	model      string
	httpClient *http.Client
}

func NewOpenRouter(apiKey, apiBase, model, proxy string) *OpenRouter {
	client := &http.Client{Timeout: defaultHTTPTimeout}
	if proxy = strings.TrimSpace(proxy); proxy != "" {
		if proxyURL, err := url.Parse(proxy); err == nil {
			client.Transport = &http.Transport{Proxy: http.ProxyURL(proxyURL)}
		}
	}
	return &OpenRouter{
		apiKey:     strings.TrimSpace(apiKey),
		apiBase:    strings.TrimRight(strings.TrimSpace(apiBase), "/"),
		model:      model,
		httpClient: client,
	}
}

func (p *OpenRouter) Name() string { return ProviderOpenRouter }

func (p *OpenRouter) Generate(ctx context.Context, prompt string) (string, error) {
	if p.apiBase == "" {
		return "", fmt.Errorf("OpenRouter API base not configured")
	}

	requestBody := map[string]interface{}{
		"model": p.model,
		"messages": []map[string]string{
			{"role": "user", "content": prompt},
		},
	}
	jsonData, err := json.Marshal(requestBody)
	if err != nil {
		return "", fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.apiBase+"/chat/completions", bytes.NewReader(jsonData))
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+p.apiKey)

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("OpenRouter API request failed:\n  Status: %d\n  Body:   %s", resp.StatusCode, string(body))
	}

	var apiResponse struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(body, &apiResponse); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}
	if len(apiResponse.Choices) == 0 || strings.TrimSpace(apiResponse.Choices[0].Message.Content) == "" {
		return "", fmt.Errorf("OpenRouter returned no content")
	}
	return apiResponse.Choices[0].Message.Content, nil
}

var _ Responder = (*OpenRouter)(nil)
