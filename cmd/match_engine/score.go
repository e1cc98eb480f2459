package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/db"
	"github.com/jonathan/resume-matcher/internal/ingestion"
	"github.com/jonathan/resume-matcher/internal/llm"
	"github.com/jonathan/resume-matcher/internal/observability"
	"github.com/jonathan/resume-matcher/internal/schemas"
	"github.com/jonathan/resume-matcher/internal/scoring"
	"github.com/jonathan/resume-matcher/internal/semantic"
	"github.com/jonathan/resume-matcher/internal/taxonomy"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a résumé against a job posting",
	Long:  "Parse both documents, match keywords, compute semantic similarity when an API key is configured, and print the blended score with a gap analysis.",
	RunE:  runScore,
}

var (
	scoreResume      string
	scorePosting     string
	scoreCompany     string
	scoreOverlay     string
	scoreConfigPath  string
	scoreAPIKey      string
	scoreModel       string
	scoreCacheSize   int
	scoreEvidenceCap float64
	scoreJSON        bool
	scoreVerbose     bool
	scoreSave        bool
	scoreDBURL       string
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreResume, "resume", "r", "", "Path to résumé text file")
	scoreCmd.Flags().StringVarP(&scorePosting, "posting", "p", "", "Path to job posting text or HTML file")
	scoreCmd.Flags().StringVar(&scoreCompany, "company", "", "Hiring company name (suppressed from keyword matching)")
	scoreCmd.Flags().StringVar(&scoreOverlay, "taxonomy", "", "Path to taxonomy overlay JSON file")
	scoreCmd.Flags().StringVarP(&scoreConfigPath, "config", "c", "", "Path to config JSON file")
	scoreCmd.Flags().StringVar(&scoreAPIKey, "api-key", "", "Gemini API key (defaults to GEMINI_API_KEY)")
	scoreCmd.Flags().StringVar(&scoreModel, "model", "", "Embedding model name")
	scoreCmd.Flags().IntVar(&scoreCacheSize, "cache-size", 0, "Embedding cache capacity")
	scoreCmd.Flags().Float64Var(&scoreEvidenceCap, "evidence-cap", 0, "Max evidence strength per entity mention")
	scoreCmd.Flags().BoolVar(&scoreJSON, "json", false, "Output the full result as JSON")
	scoreCmd.Flags().BoolVarP(&scoreVerbose, "verbose", "v", false, "Print the full formatted report")
	scoreCmd.Flags().BoolVar(&scoreSave, "save", false, "Persist the result to score history")
	scoreCmd.Flags().StringVar(&scoreDBURL, "db-url", "", "PostgreSQL URL for score history (defaults to DATABASE_URL)")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, _ []string) error {
	cfg := config.Config{
		Resume:          scoreResume,
		Posting:         scorePosting,
		Company:         scoreCompany,
		TaxonomyOverlay: scoreOverlay,
		APIKey:          resolveKey(scoreAPIKey, "GEMINI_API_KEY"),
		EmbeddingModel:  scoreModel,
		CacheSize:       scoreCacheSize,
		EvidenceCap:     scoreEvidenceCap,
		Verbose:         scoreVerbose,
		DatabaseURL:     resolveKey(scoreDBURL, "DATABASE_URL"),
	}

	if scoreConfigPath != "" {
		fileCfg, err := config.LoadConfig(scoreConfigPath)
		if err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	if cfg.Resume == "" {
		return fmt.Errorf("--resume is required")
	}
	if cfg.Posting == "" {
		return fmt.Errorf("--posting is required")
	}

	tax, err := buildTaxonomy(cfg)
	if err != nil {
		return err
	}

	resumeText, resumeMeta, err := ingestion.IngestFromFile(cfg.Resume)
	if err != nil {
		return fmt.Errorf("failed to ingest resume: %w", err)
	}
	postingText, postingMeta, err := ingestion.IngestFromFile(cfg.Posting)
	if err != nil {
		return fmt.Errorf("failed to ingest posting: %w", err)
	}

	ctx := cmd.Context()

	llmConfig := llm.DefaultConfig()
	if cfg.EmbeddingModel != "" {
		llmConfig = llmConfig.WithModel(cfg.EmbeddingModel)
	}
	embedder, err := llm.NewClient(ctx, llmConfig, cfg.APIKey)
	if err != nil {
		return fmt.Errorf("failed to create embedding client: %w", err)
	}
	defer embedder.Close()

	cacheSize := cfg.CacheSize
	if cacheSize == 0 {
		cacheSize = semantic.DefaultCacheSize
	}

	engine := scoring.NewEngine(tax, embedder, semantic.NewCache(cacheSize))
	result := engine.Score(ctx, scoring.Request{
		ResumeText:  resumeText,
		PostingText: postingText,
		Company:     cfg.Company,
	})

	if scoreJSON {
		output, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal result: %w", err)
		}
		fmt.Fprintln(os.Stdout, string(output))
	} else {
		printer := observability.NewPrinter(os.Stdout)
		if cfg.Verbose {
			printer.PrintReport(result)
		} else {
			printer.PrintScore(result)
			printer.PrintGaps(result.GapAnalysis, result.ExperienceGap)
		}
	}

	if scoreSave {
		if cfg.DatabaseURL == "" {
			return fmt.Errorf("--save requires --db-url or DATABASE_URL")
		}
		database, err := db.Connect(ctx, cfg.DatabaseURL)
		if err != nil {
			return err
		}
		defer database.Close()

		id, err := database.SaveScore(ctx, cfg.Company, resumeMeta.Hash, postingMeta.Hash, result)
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "Saved score record: %s\n", id)
	}

	return nil
}

// buildTaxonomy assembles the taxonomy from the built-in terms, an optional
// overlay file, and an optional evidence cap override.
func buildTaxonomy(cfg config.Config) (*taxonomy.Taxonomy, error) {
	tax := taxonomy.Default()
	if cfg.TaxonomyOverlay != "" {
		overlay, err := schemas.LoadOverlay(cfg.TaxonomyOverlay)
		if err != nil {
			return nil, err
		}
		tax = tax.WithOverlay(overlay)
	}
	if cfg.EvidenceCap > 0 {
		tax = tax.WithOverlay(taxonomy.Overlay{EvidenceCap: cfg.EvidenceCap})
	}
	return tax, nil
}

// resolveKey returns the flag value when set, the environment variable
// otherwise.
func resolveKey(flagValue, envVar string) string {
	if flagValue != "" {
		return flagValue
	}
	return os.Getenv(envVar)
}
