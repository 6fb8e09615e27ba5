package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "1.0.0"

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arena",
	Short: "Model Arena - compare LLM responses across providers",
	Long: `arena compares responses from multiple LLM providers side by side,
answers image questions with automatic fallback, and runs tool-enhanced
reasoning queries.

Examples:
  # Compare a prompt across every configured model
  arena compare "Explain the CAP theorem in one paragraph"

  # Restrict the comparison
  arena compare --provider openai --type instruct "Write a haiku about Go"

  # List the model catalog
  arena models

  # Tool-enhanced reasoning
  arena reason "What's the square root of the average of 18 and 50?"

  # Check configured API keys
  arena validate`,
	Version: version,
}

func init() {
	rootCmd.AddCommand(compareCmd)
	rootCmd.AddCommand(modelsCmd)
	rootCmd.AddCommand(reasonCmd)
	rootCmd.AddCommand(validateCmd)
}
