package providers

import (
	"context"
	"fmt"

	openai "github.com/sashabaranov/go-openai"

	"github.com/arenalabs/model-arena/internal/domain/model"
)

// OpenAIProvider adapts the OpenAI chat completions API.
type OpenAIProvider struct {
	client  *openai.Client
	catalog []model.ModelConfig
}

// NewOpenAIProvider builds the adapter. The client is created once and
// reused across calls. baseURL may be empty for the public API.
func NewOpenAIProvider(apiKey, baseURL string, catalog []model.ModelConfig) *OpenAIProvider {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &OpenAIProvider{
		client:  openai.NewClientWithConfig(cfg),
		catalog: filterCatalog(catalog, model.ProviderOpenAI),
	}
}

func (p *OpenAIProvider) Kind() model.ProviderKind {
	return model.ProviderOpenAI
}

func (p *OpenAIProvider) Generate(ctx context.Context, query, modelName string, opts GenerateOptions) (*Generation, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: modelName,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: query},
		},
		MaxTokens:   opts.MaxTokens,
		Temperature: float32(opts.Temperature),
	})
	if err != nil {
		return nil, fmt.Errorf("openai chat completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("openai chat completion: no choices returned for model %q", modelName)
	}
	return &Generation{
		Content: resp.Choices[0].Message.Content,
		Usage: model.TokenUsage{
			Prompt:     resp.Usage.PromptTokens,
			Completion: resp.Usage.CompletionTokens,
			Total:      resp.Usage.TotalTokens,
		},
	}, nil
}

func (p *OpenAIProvider) GenerateVision(ctx context.Context, question, imageBase64, modelName string, opts GenerateOptions) (*Generation, error) {
	resp, err := p.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model: modelName,
		Messages: []openai.ChatCompletionMessage{
			{
				Role: openai.ChatMessageRoleUser,
				MultiContent: []openai.ChatMessagePart{
					{Type: openai.ChatMessagePartTypeText, Text: question},
					{
						Type: openai.ChatMessagePartTypeImageURL,
						ImageURL: &openai.ChatMessageImageURL{
							URL:    "data:image/jpeg;base64," + imageBase64,
							Detail: openai.ImageURLDetailHigh,
						},
					},
				},
			},
		},
		MaxTokens:   opts.MaxTokens,
		Temperature: float32(opts.Temperature),
	})
	if err != nil {
		return nil, fmt.Errorf("openai vision completion: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("openai vision completion: no choices returned for model %q", modelName)
	}
	return &Generation{
		Content: resp.Choices[0].Message.Content,
		Usage: model.TokenUsage{
			Prompt:     resp.Usage.PromptTokens,
			Completion: resp.Usage.CompletionTokens,
			Total:      resp.Usage.TotalTokens,
		},
	}, nil
}

// ListModels merges the static catalog with the live model listing so
// entries the account cannot reach are reported unavailable.
func (p *OpenAIProvider) ListModels(ctx context.Context) ([]model.ModelInfo, error) {
	live, err := p.client.ListModels(ctx)
	if err != nil {
		return nil, fmt.Errorf("openai list models: %w", err)
	}

	reachable := make(map[string]bool, len(live.Models))
	for _, m := range live.Models {
		reachable[m.ID] = true
	}

	infos := make([]model.ModelInfo, 0, len(p.catalog))
	for _, m := range p.catalog {
		infos = append(infos, model.ModelInfo{
			Name:          m.Name,
			Description:   m.Description,
			Type:          m.Type,
			ContextWindow: m.ContextWindow,
			Available:     m.Available && reachable[m.Name],
			Provider:      model.ProviderOpenAI,
		})
	}
	return infos, nil
}

func (p *OpenAIProvider) ValidateKey(ctx context.Context) error {
	if _, err := p.client.ListModels(ctx); err != nil {
		return fmt.Errorf("openai key validation: %w", err)
	}
	return nil
}

func filterCatalog(catalog []model.ModelConfig, kind model.ProviderKind) []model.ModelConfig {
	out := make([]model.ModelConfig, 0, len(catalog))
	for _, m := range catalog {
		if m.Provider == kind {
			out = append(out, m)
		}
	}
	return out
}
