package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/cv-generator/internal/analysis"
	"github.com/jonathan/cv-generator/internal/generation"
	"github.com/jonathan/cv-generator/internal/ingestion"
	"github.com/jonathan/cv-generator/internal/rendering"
	"github.com/jonathan/cv-generator/internal/schemas"
	"github.com/jonathan/cv-generator/internal/types"
	"github.com/spf13/cobra"
)

var (
	generateResume    string
	generateJob       string
	generateTemplate  string
	generateOutputDir string
	generateATSReport bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate an ATS-optimized CV PDF",
	Long:  `Generate a PDF resume from résumé JSON, optionally optimized against a job description file.`,
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringVar(&generateResume, "resume", "", "Path to résumé JSON file (required)")
	generateCmd.Flags().StringVar(&generateJob, "job", "", "Path to job description file to optimize against")
	generateCmd.Flags().StringVar(&generateTemplate, "template", "professional", "Template id (professional, modern, minimal)")
	generateCmd.Flags().StringVar(&generateOutputDir, "output-dir", "", "Directory for the PDF artifact (defaults to the system temp dir)")
	generateCmd.Flags().BoolVar(&generateATSReport, "ats-report", false, "Print the ATS compatibility report")
	_ = generateCmd.MarkFlagRequired("resume")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(_ *cobra.Command, _ []string) error {
	resumeJSON, err := os.ReadFile(generateResume)
	if err != nil {
		return fmt.Errorf("failed to read résumé file: %w", err)
	}
	if err := schemas.ValidateResumeJSON(string(resumeJSON)); err != nil {
		return err
	}

	var resume types.ResumeData
	if err := json.Unmarshal(resumeJSON, &resume); err != nil {
		return fmt.Errorf("failed to parse résumé JSON: %w", err)
	}
	if err := resume.Validate(); err != nil {
		return fmt.Errorf("invalid résumé data: %w", err)
	}

	var jobAnalysis *types.JobAnalysis
	if generateJob != "" {
		data, err := os.ReadFile(generateJob)
		if err != nil {
			return fmt.Errorf("failed to read job file: %w", err)
		}
		jobText, err := ingestion.New().ExtractText(data, generateJob)
		if err != nil {
			return err
		}
		result := analysis.Analyze(jobText)
		jobAnalysis = &result
	}

	outputDir := generateOutputDir
	if outputDir == "" {
		outputDir = os.TempDir()
	}
	renderer, err := rendering.New(outputDir)
	if err != nil {
		return err
	}

	blocks := generation.Generate(&resume, jobAnalysis)
	id, path, err := renderer.RenderPDF(context.Background(), blocks, generateTemplate)
	if err != nil {
		return err
	}
	fmt.Printf("Generated CV %s\n%s\n", id, path)

	if generateATSReport {
		report := generation.CheckATSCompatibility(&resume, jobAnalysis)
		encoded, err := json.MarshalIndent(report, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode ATS report: %w", err)
		}
		fmt.Println(string(encoded))
	}
	return nil
}
