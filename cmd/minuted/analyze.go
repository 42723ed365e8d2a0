package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/fyrsmithlabs/minuted/internal/config"
	"github.com/fyrsmithlabs/minuted/internal/jobs"
	"github.com/fyrsmithlabs/minuted/internal/logging"
	"github.com/fyrsmithlabs/minuted/internal/provider"
	"github.com/fyrsmithlabs/minuted/internal/telemetry"
)

var providerHint string

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Extract a structured summary from a transcript",
	Long: `Extract a structured summary from a transcript file or stdin.

Examples:
  # Analyze a transcript file
  minuted analyze standup.txt

  # Analyze from stdin
  cat standup.txt | minuted analyze -

  # Prefer a specific provider
  minuted analyze --provider anthropic standup.txt`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&providerHint, "provider", "",
		"preferred provider (rule_based, local, anthropic, openai)")
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	tel, err := telemetry.New(ctx, cfg.Observability)
	if err != nil {
		return fmt.Errorf("failed to initialize telemetry: %w", err)
	}
	defer tel.Shutdown(context.Background()) //nolint:errcheck

	logger, err := logging.New(cfg.Observability, tel.LoggerProvider())
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer logging.Sync(logger) //nolint:errcheck

	transcript, err := readTranscript(args)
	if err != nil {
		return err
	}

	orch := newOrchestrator(cfg, logger, tel)
	creds := credentialsFromEnv()

	id, err := orch.Submit(ctx, transcript, providerHint, creds)
	if err != nil {
		return fmt.Errorf("failed to submit transcript: %w", err)
	}

	// Forward Ctrl-C to the job so it lands in CANCELLED, not limbo.
	go func() {
		<-ctx.Done()
		_ = orch.Cancel(context.Background(), id)
	}()

	orch.Wait()

	job, err := orch.Status(context.Background(), id)
	if err != nil {
		return fmt.Errorf("failed to load job: %w", err)
	}

	switch job.Status {
	case jobs.StatusCompleted:
		out, err := json.MarshalIndent(job.Result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		fmt.Println(string(out))
		fmt.Fprintf(os.Stderr, "[minuted] provider=%s confidence=%.2f repaired=%t\n",
			job.Provider, job.Confidence, job.Repaired)
		return nil
	case jobs.StatusCancelled:
		return fmt.Errorf("extraction cancelled")
	default:
		return fmt.Errorf("extraction failed: %s", job.Message)
	}
}

// readTranscript reads the transcript from the named file, or stdin for
// "-" or no argument.
func readTranscript(args []string) (string, error) {
	if len(args) == 0 || args[0] == "-" {
		content, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read from stdin: %w", err)
		}
		return string(content), nil
	}
	content, err := os.ReadFile(args[0])
	if err != nil {
		return "", fmt.Errorf("failed to read file %s: %w", args[0], err)
	}
	return string(content), nil
}

// credentialsFromEnv collects remote API keys for this invocation. The
// values flow to the provider calls and are never persisted.
func credentialsFromEnv() provider.Credentials {
	return provider.Credentials{
		Anthropic: config.Secret(os.Getenv("ANTHROPIC_API_KEY")),
		OpenAI:    config.Secret(os.Getenv("OPENAI_API_KEY")),
	}
}

func newOrchestrator(cfg *config.Config, logger *zap.Logger, tel *telemetry.Telemetry) *jobs.Orchestrator {
	selector := provider.NewSelector(cfg.Providers)

	opts := []jobs.Option{jobs.WithLogger(jobs.NewLogger(logger))}
	if metrics, err := jobs.NewMetrics(tel.Meter(jobs.InstrumentationName)); err == nil {
		opts = append(opts, jobs.WithMetrics(metrics))
	}
	if metrics, err := provider.NewMetrics(tel.Meter(provider.InstrumentationName)); err == nil {
		opts = append(opts, jobs.WithProviderMetrics(metrics))
	}
	return jobs.New(cfg, selector, opts...)
}
