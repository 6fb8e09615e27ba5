package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/arenalabs/model-arena/internal/interfaces/cli"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the configured provider API keys",
	RunE:  runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	rt, err := buildRuntime()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	failed := 0
	fmt.Println("Provider key validation:")
	for _, kind := range rt.providers.Kinds() {
		provider, ok := rt.providers.Get(kind)
		if !ok {
			continue
		}
		err := provider.ValidateKey(ctx)
		if err != nil {
			failed++
		}
		fmt.Print(cli.RenderKeyCheck(string(kind), err))
	}

	if failed > 0 {
		return fmt.Errorf("%d provider key(s) failed validation", failed)
	}
	return nil
}
