package main

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-matcher/internal/config"
	"github.com/jonathan/resume-matcher/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  "Start an HTTP server that exposes scoring and score-history endpoints.",
	RunE:  runServe,
}

var (
	servePort       int
	serveDBURL      string
	serveAPIKey     string
	serveModel      string
	serveCacheSize  int
	serveOverlay    string
	serveConfigPath string
)

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveDBURL, "db-url", "", "PostgreSQL URL for score history (defaults to DATABASE_URL)")
	serveCmd.Flags().StringVar(&serveAPIKey, "api-key", "", "Gemini API key (defaults to GEMINI_API_KEY)")
	serveCmd.Flags().StringVar(&serveModel, "model", "", "Embedding model name")
	serveCmd.Flags().IntVar(&serveCacheSize, "cache-size", 0, "Embedding cache capacity")
	serveCmd.Flags().StringVar(&serveOverlay, "taxonomy", "", "Path to taxonomy overlay JSON file")
	serveCmd.Flags().StringVarP(&serveConfigPath, "config", "c", "", "Path to config JSON file")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg := config.Config{
		TaxonomyOverlay: serveOverlay,
		APIKey:          resolveKey(serveAPIKey, "GEMINI_API_KEY"),
		EmbeddingModel:  serveModel,
		CacheSize:       serveCacheSize,
		DatabaseURL:     resolveKey(serveDBURL, "DATABASE_URL"),
	}

	if serveConfigPath != "" {
		fileCfg, err := config.LoadConfig(serveConfigPath)
		if err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	port := servePort
	if !cmd.Flags().Changed("port") && cfg.Listen != "" {
		p, err := parseListenPort(cfg.Listen)
		if err != nil {
			return fmt.Errorf("invalid listen address %q: %w", cfg.Listen, err)
		}
		port = p
	}

	srv, err := server.New(cmd.Context(), server.Config{
		Port:            port,
		DatabaseURL:     cfg.DatabaseURL,
		APIKey:          cfg.APIKey,
		EmbeddingModel:  cfg.EmbeddingModel,
		CacheSize:       cfg.CacheSize,
		TaxonomyOverlay: cfg.TaxonomyOverlay,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

// parseListenPort extracts the port from a configured listen address.
// Accepts ":8080", "0.0.0.0:8080", or a bare port number.
func parseListenPort(listen string) (int, error) {
	portStr := listen
	if strings.Contains(listen, ":") {
		_, p, err := net.SplitHostPort(listen)
		if err != nil {
			return 0, err
		}
		portStr = p
	}
	port, err := strconv.Atoi(portStr)
	if err != nil || port < 1 || port > 65535 {
		return 0, fmt.Errorf("port %q out of range", portStr)
	}
	return port, nil
}
