package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/arenalabs/model-arena/internal/domain/compare"
	"github.com/arenalabs/model-arena/internal/domain/model"
	"github.com/arenalabs/model-arena/internal/interfaces/cli"
)

var (
	compareProvider    string
	compareModelType   string
	compareConcurrency int
	compareTimeout     time.Duration
)

var compareCmd = &cobra.Command{
	Use:   "compare <query>",
	Short: "Send a query to every matching model and compare the responses",
	Args:  cobra.ExactArgs(1),
	RunE:  runCompare,
}

func init() {
	compareCmd.Flags().StringVar(&compareProvider, "provider", "all", "Provider filter (openai, anthropic, huggingface, all)")
	compareCmd.Flags().StringVar(&compareModelType, "type", "all", "Model type filter (base, instruct, fine_tuned, all)")
	compareCmd.Flags().IntVar(&compareConcurrency, "concurrency", compare.DefaultMaxConcurrent, "Maximum concurrent provider calls")
	compareCmd.Flags().DurationVar(&compareTimeout, "timeout", compare.DefaultCallTimeout, "Per-call timeout")
}

func runCompare(cmd *cobra.Command, args []string) error {
	rt, err := buildRuntime()
	if err != nil {
		return err
	}

	candidates := rt.registry.SelectCandidates(
		model.ProviderKind(strings.ToLower(compareProvider)),
		model.ModelType(strings.ToLower(compareModelType)),
	)
	if len(candidates) == 0 {
		return fmt.Errorf("no available models match provider=%s type=%s", compareProvider, compareModelType)
	}

	orchestrator := compare.NewOrchestrator(rt.providers, rt.registry, rt.log, compareConcurrency, compareTimeout)
	results := orchestrator.Compare(context.Background(), args[0], candidates)

	fmt.Print(cli.RenderResults(args[0], results))

	summary, err := compare.NewSummary(results)
	if err != nil {
		if errors.Is(err, compare.ErrNoResults) {
			return nil
		}
		return err
	}
	fmt.Print(cli.RenderSummary(summary))
	return nil
}
