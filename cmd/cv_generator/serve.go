package main

import (
	"fmt"
	"os"

	"github.com/jonathan/cv-generator/internal/config"
	"github.com/jonathan/cv-generator/internal/server"
	"github.com/spf13/cobra"
)

var (
	servePort      int
	serveOutputDir string
	serveConfig    string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for job analysis, CV generation and artifact download.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on")
	serveCmd.Flags().StringVar(&serveOutputDir, "output-dir", "", "Directory for generated PDF artifacts")
	serveCmd.Flags().StringVar(&serveConfig, "config", "", "Path to JSON config file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := config.FromEnv()
	if serveConfig != "" {
		fileCfg, err := config.Load(serveConfig)
		if err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}

	// Flags win over config file and environment.
	if servePort != 0 {
		cfg.Port = servePort
	}
	if serveOutputDir != "" {
		cfg.OutputDir = serveOutputDir
	}
	cfg = cfg.MergeWithDefaults(config.Config{Port: 8080, OutputDir: os.TempDir()})

	if err := cfg.Validate(); err != nil {
		return err
	}

	srv, err := server.New(server.Config{Port: cfg.Port, OutputDir: cfg.OutputDir})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
