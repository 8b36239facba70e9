// Package main provides the entry point for the CareerPath AI API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "careerpath",
	Short: "CareerPath AI API Server",
	Long:  "CareerPath AI tracks a user's skills, goals and learning progress, and serves AI-generated career recommendations enriched with video search results via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
