package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/embedding"
	"github.com/jonathan/resume-matcher/internal/fetch"
	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/jonathan/resume-matcher/internal/schemas"
	"github.com/jonathan/resume-matcher/internal/scoring"
	"github.com/jonathan/resume-matcher/internal/store"
	"github.com/jonathan/resume-matcher/internal/types"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a resume against a job description",
	Long:  "Loads a resume (JSON file or database record) and a job description (text file or URL), runs the five component scorers, and prints the score report as JSON.",
	RunE:  runScore,
}

var (
	scoreConfigPath string
	scoreResume     string
	scoreResumeID   string
	scoreJob        string
	scoreJobURL     string
	scoreOutput     string
	scoreVerbose    bool
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreConfigPath, "config", "c", "", "Path to JSON config file")
	scoreCmd.Flags().StringVarP(&scoreResume, "resume", "r", "", "Path to resume facts JSON file")
	scoreCmd.Flags().StringVar(&scoreResumeID, "resume-id", "", "Resume UUID to load from the database")
	scoreCmd.Flags().StringVarP(&scoreJob, "job", "j", "", "Path to job description text file")
	scoreCmd.Flags().StringVar(&scoreJobURL, "job-url", "", "URL to fetch the job description from")
	scoreCmd.Flags().StringVarP(&scoreOutput, "out", "o", "", "Path to write the report JSON (defaults to stdout)")
	scoreCmd.Flags().BoolVarP(&scoreVerbose, "verbose", "v", false, "Print a formatted report and debug logs")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := buildConfig()
	if err != nil {
		return err
	}

	logger, err := buildLogger(cfg.Verbose)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	resume, err := loadResume(ctx, cfg)
	if err != nil {
		return err
	}

	jobText, err := loadJobText(ctx, cfg)
	if err != nil {
		return err
	}
	job := types.JobFacts{RawText: jobText}

	embedder, err := embedding.NewGeminiEmbedder(ctx, cfg.APIKey, cfg.EmbeddingModel)
	if err != nil {
		return fmt.Errorf("failed to create embedder: %w", err)
	}
	defer func() { _ = embedder.Close() }()

	engine := scoring.NewEngine(embedder,
		scoring.WithWeights(cfg.ResolveWeights()),
		scoring.WithLogger(logger),
	)

	report, err := engine.Score(ctx, *resume, job)
	if err != nil {
		return fmt.Errorf("scoring failed: %w", err)
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stderr).PrintScoreReport(report)
	}

	return writeReport(report, scoreOutput)
}

// buildConfig merges the optional config file, environment, and CLI flags.
// Flags win over file values.
func buildConfig() (*config.Config, error) {
	cfg := &config.Config{}
	if scoreConfigPath != "" {
		loaded, err := config.LoadConfig(scoreConfigPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if scoreResume != "" {
		cfg.Resume = scoreResume
	}
	if scoreResumeID != "" {
		cfg.ResumeID = scoreResumeID
	}
	if scoreJob != "" {
		cfg.Job = scoreJob
	}
	if scoreJobURL != "" {
		cfg.JobURL = scoreJobURL
	}
	if scoreVerbose {
		cfg.Verbose = true
	}

	cfg.FromEnv()

	if cfg.Resume == "" && cfg.ResumeID == "" {
		return nil, fmt.Errorf("one of --resume or --resume-id is required")
	}
	if cfg.Job == "" && cfg.JobURL == "" {
		return nil, fmt.Errorf("one of --job or --job-url is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func buildLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// loadResume reads resume facts from a JSON file or from the database.
func loadResume(ctx context.Context, cfg *config.Config) (*types.ResumeFacts, error) {
	if cfg.Resume != "" {
		content, err := os.ReadFile(cfg.Resume)
		if err != nil {
			return nil, fmt.Errorf("failed to read resume file %s: %w", cfg.Resume, err)
		}

		if err := schemas.ValidateResumeFacts(content); err != nil {
			return nil, fmt.Errorf("invalid resume file %s: %w", cfg.Resume, err)
		}

		var facts types.ResumeFacts
		if err := json.Unmarshal(content, &facts); err != nil {
			return nil, fmt.Errorf("failed to unmarshal resume JSON: %w", err)
		}
		return &facts, nil
	}

	resumeID, err := uuid.Parse(cfg.ResumeID)
	if err != nil {
		return nil, fmt.Errorf("invalid resume ID %q: %w", cfg.ResumeID, err)
	}

	db, err := store.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, err
	}
	defer db.Close()

	return db.LoadResumeFacts(ctx, resumeID)
}

// loadJobText reads the job description from a text file or fetches it from
// a URL.
func loadJobText(ctx context.Context, cfg *config.Config) (string, error) {
	if cfg.Job != "" {
		content, err := os.ReadFile(cfg.Job)
		if err != nil {
			return "", fmt.Errorf("failed to read job file %s: %w", cfg.Job, err)
		}
		return string(content), nil
	}

	text, err := fetch.JobText(ctx, cfg.JobURL, nil)
	if err != nil {
		return "", fmt.Errorf("failed to fetch job description: %w", err)
	}
	return text, nil
}

// writeReport marshals the report to the output file, or stdout when no
// path is given.
func writeReport(report *types.ScoreReport, outputPath string) error {
	jsonOutput, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report to JSON: %w", err)
	}

	if outputPath == "" {
		_, _ = fmt.Fprintln(os.Stdout, string(jsonOutput))
		return nil
	}

	if err := os.WriteFile(outputPath, jsonOutput, 0644); err != nil {
		return fmt.Errorf("failed to write report to %s: %w", outputPath, err)
	}
	return nil
}
