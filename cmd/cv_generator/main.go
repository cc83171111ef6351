// Package main provides the entry point for the CV Generator HTTP API server
// and CLI tools.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cv_generator",
	Short: "ATS-optimized CV generator",
	Long:  "CV Generator analyzes job descriptions with lexical heuristics and renders ATS-optimized PDF resumes tailored to them, via REST API or CLI.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
