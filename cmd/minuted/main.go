// Package main implements the minuted CLI for extracting structured
// summaries from meeting transcripts.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	// configPath is the optional YAML config file.
	configPath string
	// version information (set via ldflags during build)
	version = "dev"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "minuted",
	Short: "Structured summaries from meeting transcripts",
	Long: `minuted turns raw meeting transcripts into structured summaries:
action items, decisions, risks, user stories, participants, and topics.

Extraction runs through a fallback chain of providers: a local Ollama
model, remote model APIs when their keys are present, and a rule-based
extractor that always works offline.

Remote API keys are read from the ANTHROPIC_API_KEY and OPENAI_API_KEY
environment variables. They are used for the one call and never stored.`,
	Version: version,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to YAML config file")
	rootCmd.AddCommand(analyzeCmd)
	rootCmd.AddCommand(providersCmd)
}
