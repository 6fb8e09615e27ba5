package providers

import (
	"context"
	"fmt"
	"time"

	"resty.dev/v3"

	"github.com/arenalabs/model-arena/internal/domain/model"
	"github.com/arenalabs/model-arena/internal/utils/httpclients"
)

// HuggingFaceProvider adapts the Hugging Face inference API. It is text-only;
// vision requests fail with ErrVisionUnsupported and the orchestrators treat
// that like any other adapter failure.
type HuggingFaceProvider struct {
	client  *resty.Client
	baseURL string
	apiKey  string
	catalog []model.ModelConfig
}

func NewHuggingFaceProvider(apiKey, baseURL string, timeout time.Duration, catalog []model.ModelConfig) *HuggingFaceProvider {
	return &HuggingFaceProvider{
		client:  httpclients.NewClient("huggingface", timeout),
		baseURL: baseURL,
		apiKey:  apiKey,
		catalog: filterCatalog(catalog, model.ProviderHuggingFace),
	}
}

func (p *HuggingFaceProvider) Kind() model.ProviderKind {
	return model.ProviderHuggingFace
}

type hfRequest struct {
	Inputs     string `json:"inputs"`
	Parameters struct {
		MaxNewTokens   int     `json:"max_new_tokens,omitempty"`
		Temperature    float64 `json:"temperature,omitempty"`
		ReturnFullText bool    `json:"return_full_text"`
	} `json:"parameters"`
}

type hfGeneration struct {
	GeneratedText string `json:"generated_text"`
}

func (p *HuggingFaceProvider) Generate(ctx context.Context, query, modelName string, opts GenerateOptions) (*Generation, error) {
	body := hfRequest{Inputs: query}
	body.Parameters.MaxNewTokens = opts.MaxTokens
	body.Parameters.Temperature = opts.Temperature
	body.Parameters.ReturnFullText = false

	var respBody []hfGeneration
	resp, err := p.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+p.apiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		SetResult(&respBody).
		Post(p.baseURL + "/models/" + modelName)
	if err != nil {
		return nil, fmt.Errorf("huggingface inference: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("huggingface inference: status %d: %s", resp.StatusCode(), resp.String())
	}
	if len(respBody) == 0 {
		return nil, fmt.Errorf("huggingface inference: empty response for model %q", modelName)
	}

	// The inference API reports no token usage; counts come from the
	// estimator at the call site.
	return &Generation{Content: respBody[0].GeneratedText}, nil
}

func (p *HuggingFaceProvider) GenerateVision(ctx context.Context, question, imageBase64, modelName string, opts GenerateOptions) (*Generation, error) {
	return nil, ErrVisionUnsupported
}

func (p *HuggingFaceProvider) ListModels(ctx context.Context) ([]model.ModelInfo, error) {
	infos := make([]model.ModelInfo, 0, len(p.catalog))
	for _, m := range p.catalog {
		infos = append(infos, model.ModelInfo{
			Name:          m.Name,
			Description:   m.Description,
			Type:          m.Type,
			ContextWindow: m.ContextWindow,
			Available:     m.Available,
			Provider:      model.ProviderHuggingFace,
		})
	}
	return infos, nil
}

// ValidateKey probes a small hosted model; anything but an auth failure
// counts as a working key (the endpoint may be cold-loading).
func (p *HuggingFaceProvider) ValidateKey(ctx context.Context) error {
	resp, err := p.client.R().
		SetContext(ctx).
		SetHeader("Authorization", "Bearer "+p.apiKey).
		Get(p.baseURL + "/models/gpt2")
	if err != nil {
		return fmt.Errorf("huggingface key validation: %w", err)
	}
	if resp.StatusCode() == 401 || resp.StatusCode() == 403 {
		return fmt.Errorf("huggingface key validation: status %d", resp.StatusCode())
	}
	return nil
}
