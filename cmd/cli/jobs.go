package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var jobsCmd = &cobra.Command{
	Use:   "jobs",
	Short: "List the ingested job corpus",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")

		c, err := apiClient()
		if err != nil {
			return err
		}

		jobs, err := c.ListJobs(cmd.Context(), limit)
		if err != nil {
			return fmt.Errorf("failed to list jobs: %w", err)
		}

		if len(jobs) == 0 {
			fmt.Println("No jobs in the corpus yet. Run the ingest script first.")
			return nil
		}

		for i, job := range jobs {
			fmt.Printf("%d. %s — %s (%s, %s)\n", i+1, job.Title, job.Company, job.Location, job.Mode)
			fmt.Printf("   %s\n", job.URL)
		}

		return nil
	},
}

func init() {
	jobsCmd.Flags().Int("limit", 20, "maximum number of jobs to list")
}
