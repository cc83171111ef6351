package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/cv-generator/internal/analysis"
	"github.com/jonathan/cv-generator/internal/ingestion"
	"github.com/spf13/cobra"
)

var analyzeText string

var analyzeCmd = &cobra.Command{
	Use:   "analyze [file]",
	Short: "Analyze a job description",
	Long:  `Extract keywords, skills, experience level and education requirements from a job description file (txt, pdf, doc, docx, html) or inline text.`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVar(&analyzeText, "text", "", "Job description text (instead of a file)")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, args []string) error {
	jobText := analyzeText
	if jobText == "" {
		if len(args) == 0 {
			return fmt.Errorf("provide a job description file or --text")
		}
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read job file: %w", err)
		}
		jobText, err = ingestion.New().ExtractText(data, args[0])
		if err != nil {
			return err
		}
	}

	result := analysis.Analyze(jobText)

	encoded, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode analysis: %w", err)
	}
	fmt.Println(string(encoded))
	return nil
}
