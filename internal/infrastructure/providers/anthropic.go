package providers

import (
	"context"
	"fmt"
	"time"

	"resty.dev/v3"

	"github.com/arenalabs/model-arena/internal/domain/model"
	"github.com/arenalabs/model-arena/internal/utils/httpclients"
)

const anthropicVersion = "2023-06-01"

// AnthropicProvider adapts the Anthropic messages API over a shared resty
// client.
type AnthropicProvider struct {
	client  *resty.Client
	baseURL string
	apiKey  string
	catalog []model.ModelConfig
}

func NewAnthropicProvider(apiKey, baseURL string, timeout time.Duration, catalog []model.ModelConfig) *AnthropicProvider {
	return &AnthropicProvider{
		client:  httpclients.NewClient("anthropic", timeout),
		baseURL: baseURL,
		apiKey:  apiKey,
		catalog: filterCatalog(catalog, model.ProviderAnthropic),
	}
}

func (p *AnthropicProvider) Kind() model.ProviderKind {
	return model.ProviderAnthropic
}

type anthropicContentBlock struct {
	Type   string            `json:"type"`
	Text   string            `json:"text,omitempty"`
	Source map[string]string `json:"source,omitempty"`
}

type anthropicMessage struct {
	Role    string                  `json:"role"`
	Content []anthropicContentBlock `json:"content"`
}

type anthropicRequest struct {
	Model       string             `json:"model"`
	MaxTokens   int                `json:"max_tokens"`
	Temperature float64            `json:"temperature,omitempty"`
	Messages    []anthropicMessage `json:"messages"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	Usage struct {
		InputTokens  int `json:"input_tokens"`
		OutputTokens int `json:"output_tokens"`
	} `json:"usage"`
	Error *struct {
		Type    string `json:"type"`
		Message string `json:"message"`
	} `json:"error"`
}

func (p *AnthropicProvider) Generate(ctx context.Context, query, modelName string, opts GenerateOptions) (*Generation, error) {
	return p.createMessage(ctx, modelName, opts, []anthropicContentBlock{
		{Type: "text", Text: query},
	})
}

func (p *AnthropicProvider) GenerateVision(ctx context.Context, question, imageBase64, modelName string, opts GenerateOptions) (*Generation, error) {
	return p.createMessage(ctx, modelName, opts, []anthropicContentBlock{
		{
			Type: "image",
			Source: map[string]string{
				"type":       "base64",
				"media_type": "image/jpeg",
				"data":       imageBase64,
			},
		},
		{Type: "text", Text: question},
	})
}

func (p *AnthropicProvider) createMessage(ctx context.Context, modelName string, opts GenerateOptions, content []anthropicContentBlock) (*Generation, error) {
	var respBody anthropicResponse
	resp, err := p.client.R().
		SetContext(ctx).
		SetHeader("x-api-key", p.apiKey).
		SetHeader("anthropic-version", anthropicVersion).
		SetHeader("Content-Type", "application/json").
		SetBody(anthropicRequest{
			Model:       modelName,
			MaxTokens:   opts.MaxTokens,
			Temperature: opts.Temperature,
			Messages:    []anthropicMessage{{Role: "user", Content: content}},
		}).
		SetResult(&respBody).
		SetError(&respBody).
		Post(p.baseURL + "/v1/messages")
	if err != nil {
		return nil, fmt.Errorf("anthropic messages: %w", err)
	}
	if resp.IsError() {
		if respBody.Error != nil {
			return nil, fmt.Errorf("anthropic messages: %s (status %d): %s", respBody.Error.Type, resp.StatusCode(), respBody.Error.Message)
		}
		return nil, fmt.Errorf("anthropic messages: status %d", resp.StatusCode())
	}
	if len(respBody.Content) == 0 {
		return nil, fmt.Errorf("anthropic messages: empty content for model %q", modelName)
	}

	usage := model.TokenUsage{
		Prompt:     respBody.Usage.InputTokens,
		Completion: respBody.Usage.OutputTokens,
		Total:      respBody.Usage.InputTokens + respBody.Usage.OutputTokens,
	}
	return &Generation{Content: respBody.Content[0].Text, Usage: usage}, nil
}

// ListModels reports the catalog entries for this vendor; Anthropic has no
// listing endpoint the tool relies on.
func (p *AnthropicProvider) ListModels(ctx context.Context) ([]model.ModelInfo, error) {
	infos := make([]model.ModelInfo, 0, len(p.catalog))
	for _, m := range p.catalog {
		infos = append(infos, model.ModelInfo{
			Name:          m.Name,
			Description:   m.Description,
			Type:          m.Type,
			ContextWindow: m.ContextWindow,
			Available:     m.Available,
			Provider:      model.ProviderAnthropic,
		})
	}
	return infos, nil
}

// ValidateKey issues a minimal message request and accepts any response that
// is not an authentication failure.
func (p *AnthropicProvider) ValidateKey(ctx context.Context) error {
	resp, err := p.client.R().
		SetContext(ctx).
		SetHeader("x-api-key", p.apiKey).
		SetHeader("anthropic-version", anthropicVersion).
		Get(p.baseURL + "/v1/models")
	if err != nil {
		return fmt.Errorf("anthropic key validation: %w", err)
	}
	if resp.StatusCode() == 401 || resp.StatusCode() == 403 {
		return fmt.Errorf("anthropic key validation: status %d", resp.StatusCode())
	}
	return nil
}
