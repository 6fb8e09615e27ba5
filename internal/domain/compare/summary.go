package compare

import (
	"errors"
	"sort"

	"github.com/arenalabs/model-arena/internal/domain/model"
	"github.com/arenalabs/model-arena/internal/utils/functional"
)

// ErrNoResults is returned when a summary is requested over an empty batch.
// Callers decide whether "nothing to summarize" is worth reporting.
var ErrNoResults = errors.New("no results to summarize")

// ProviderStats aggregates the results of one provider within a batch.
type ProviderStats struct {
	Count               int     `json:"count"`
	AverageResponseTime float64 `json:"avg_response_time"`
	TotalTokens         int     `json:"total_tokens"`
}

// Summary is the derived aggregate over one comparison batch. It has no
// identity of its own; equal batches produce equal summaries.
type Summary struct {
	TotalResponses      int                      `json:"total_responses"`
	SuccessCount        int                      `json:"success_count"`
	ErrorCount          int                      `json:"error_count"`
	ProvidersUsed       []string                 `json:"providers_used"`
	ModelTypesUsed      []string                 `json:"model_types_used"`
	AverageResponseTime float64                  `json:"average_response_time"`
	TotalTokensUsed     int                      `json:"total_tokens_used"`
	Fastest             *model.Result            `json:"fastest_response"`
	Slowest             *model.Result            `json:"slowest_response"`
	MostTokens          *model.Result            `json:"most_tokens"`
	LeastTokens         *model.Result            `json:"least_tokens"`
	ProviderStats       map[string]ProviderStats `json:"provider_stats"`
}

// NewSummary aggregates a batch. The batch may mix successes and error-tagged
// results; both count toward totals since an error result still consumed a
// candidate slot. Empty input returns ErrNoResults.
func NewSummary(results []*model.Result) (*Summary, error) {
	if len(results) == 0 {
		return nil, ErrNoResults
	}

	summary := &Summary{
		TotalResponses: len(results),
		Fastest:        results[0],
		Slowest:        results[0],
		MostTokens:     results[0],
		LeastTokens:    results[0],
		ProviderStats:  make(map[string]ProviderStats),
	}

	providerSet := map[string]bool{}
	typeSet := map[string]bool{}
	var totalElapsed float64

	for _, r := range results {
		if r.Failed() {
			summary.ErrorCount++
		} else {
			summary.SuccessCount++
		}
		providerSet[string(r.Provider)] = true
		typeSet[string(r.ModelType)] = true
		totalElapsed += r.ElapsedSeconds()
		summary.TotalTokensUsed += r.TokenUsage.Total

		if r.Elapsed < summary.Fastest.Elapsed {
			summary.Fastest = r
		}
		if r.Elapsed > summary.Slowest.Elapsed {
			summary.Slowest = r
		}
		if r.TokenUsage.Total > summary.MostTokens.TokenUsage.Total {
			summary.MostTokens = r
		}
		if r.TokenUsage.Total < summary.LeastTokens.TokenUsage.Total {
			summary.LeastTokens = r
		}
	}

	summary.AverageResponseTime = totalElapsed / float64(len(results))
	summary.ProvidersUsed = sortedKeys(providerSet)
	summary.ModelTypesUsed = sortedKeys(typeSet)

	for _, provider := range summary.ProvidersUsed {
		ofProvider := functional.Filter(results, func(r *model.Result) bool {
			return string(r.Provider) == provider
		})
		elapsed := functional.Reduce(ofProvider, 0.0, func(acc float64, r *model.Result) float64 {
			return acc + r.ElapsedSeconds()
		})
		tokens := functional.Reduce(ofProvider, 0, func(acc int, r *model.Result) int {
			return acc + r.TokenUsage.Total
		})
		summary.ProviderStats[provider] = ProviderStats{
			Count:               len(ofProvider),
			AverageResponseTime: elapsed / float64(len(ofProvider)),
			TotalTokens:         tokens,
		}
	}

	return summary, nil
}

func sortedKeys(set map[string]bool) []string {
	keys := make([]string, 0, len(set))
	for key := range set {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
