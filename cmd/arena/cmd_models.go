package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arenalabs/model-arena/internal/interfaces/cli"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List the model catalog",
	RunE:  runModels,
}

func runModels(cmd *cobra.Command, args []string) error {
	rt, err := buildRuntime()
	if err != nil {
		return err
	}

	fmt.Print(cli.RenderModels(rt.registry.Models()))

	configured := rt.registry.ConfiguredProviders()
	names := make([]string, 0, len(configured))
	for _, kind := range configured {
		names = append(names, string(kind))
	}
	fmt.Printf("\nconfigured providers: %v\n", names)
	return nil
}
