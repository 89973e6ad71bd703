// Package main provides the entry point for the resume match engine CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "match_engine",
	Short: "Resume-to-job match scoring engine",
	Long:  "Computes a compatibility score between a structured resume and a free-text job description, combining lexical, semantic, and structured-field matching into one ranked report.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
