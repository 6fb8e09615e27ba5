package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arenalabs/model-arena/internal/domain/model"
	"github.com/arenalabs/model-arena/internal/domain/reasoning"
	"github.com/arenalabs/model-arena/internal/interfaces/cli"
)

var reasonModel string

var reasonCmd = &cobra.Command{
	Use:   "reason <query>",
	Short: "Answer a query with chain-of-thought reasoning and tool calls",
	Args:  cobra.ExactArgs(1),
	RunE:  runReason,
}

func init() {
	reasonCmd.Flags().StringVar(&reasonModel, "model", reasoning.DefaultModel, "Model to reason with")
}

func runReason(cmd *cobra.Command, args []string) error {
	rt, err := buildRuntime()
	if err != nil {
		return err
	}

	provider, ok := rt.providers.Get(model.ProviderOpenAI)
	if !ok {
		return fmt.Errorf("reasoning requires the openai provider, set OPENAI_API_KEY")
	}

	reasoner := reasoning.NewReasoner(provider, reasonModel, rt.log)
	result := reasoner.Reason(context.Background(), args[0])
	fmt.Print(cli.RenderReasoning(result))
	return nil
}
