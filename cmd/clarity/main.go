// Package main is the entry point for the Clarity keyword intelligence
// service and CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "clarity",
	Short: "Clarity marketing intelligence engine",
	Long:  "Clarity merges advertising, SEO and CRM data per keyword and tells you exactly what to STOP, FIX, INVEST or OBSERVE.",
}

func main() {
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
