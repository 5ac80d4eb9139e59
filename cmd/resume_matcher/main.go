// Package main implements the resume_matcher CLI: résumé extraction, candidate scoring and ranking.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	cfgFile  string
	logDebug bool
	logJSON  bool
)

var rootCmd = &cobra.Command{
	Use:   "resume_matcher",
	Short: "Résumé profile extraction and candidate-job scoring",
	Long: "resume_matcher extracts structured candidate profiles from PDF and DOCX résumés " +
		"and scores candidates against job postings on skills, education, experience and application quality.",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is resume-matcher.yaml in current directory)")
	rootCmd.PersistentFlags().BoolVarP(&logDebug, "debug", "d", false, "debug logging")
	// no shorthand: -j is --job on score and rank
	rootCmd.PersistentFlags().BoolVar(&logJSON, "json", false, "JSON log format")
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
