package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	serverURL  string
	reqTimeout string
)

var rootCmd = &cobra.Command{
	Use:     "resumatch",
	Short:   "Upload a resume and see matching job listings",
	Long:    `Resumatch uploads a resume (PDF or DOCX) to the Resumatch API and renders the returned resume analysis and ranked job matches in the terminal.`,
	Version: "1.0.0",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "API base URL (default $RESUMATCH_SERVER or http://localhost:8000)")
	rootCmd.PersistentFlags().StringVar(&reqTimeout, "timeout", "", "request timeout, e.g. 90s (default $RESUMATCH_TIMEOUT or 120s)")

	rootCmd.AddCommand(uploadCmd)
	rootCmd.AddCommand(jobsCmd)
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
