package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"resumatch/internal/client"
	"resumatch/internal/config"
)

var uploadCmd = &cobra.Command{
	Use:   "upload <resume-file>",
	Short: "Upload a resume and show matching jobs",
	Example: `  resumatch upload resume.pdf
  resumatch upload resume.docx --open 1
  resumatch upload resume.pdf --server http://localhost:8000`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		openIndex, _ := cmd.Flags().GetInt("open")

		c, err := apiClient()
		if err != nil {
			return err
		}
		view := client.NewView(c)
		renderer := client.NewRenderer()

		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", path, err)
		}

		name := filepath.Base(path)
		if err := view.SelectFile(name, client.MIMETypeForFile(name), content); err != nil {
			fmt.Println(renderer.RenderError(view.ErrorMessage()))
			os.Exit(1)
		}

		fmt.Printf("Uploading %s...\n", name)
		if err := view.Submit(cmd.Context()); err != nil {
			fmt.Println(renderer.RenderError(view.ErrorMessage()))
			os.Exit(1)
		}

		fmt.Print(renderer.Render(view.Analysis(), view.Listings()))

		if openIndex > 0 {
			if err := view.OpenJob(openIndex - 1); err != nil {
				return fmt.Errorf("failed to open job %d: %w", openIndex, err)
			}
			fmt.Printf("Opened job %d in your browser.\n", openIndex)
		}

		return nil
	},
}

func init() {
	uploadCmd.Flags().Int("open", 0, "open the Nth matched job in the browser after upload")
}

// apiClient builds a client from flags and environment config.
func apiClient() (*client.Client, error) {
	cfg := config.Load()

	baseURL := cfg.Client.BaseURL
	if serverURL != "" {
		baseURL = serverURL
	}

	timeout := cfg.Client.Timeout
	if reqTimeout != "" {
		parsed, err := time.ParseDuration(reqTimeout)
		if err != nil {
			return nil, fmt.Errorf("invalid --timeout value: %w", err)
		}
		timeout = parsed
	}

	return client.New(baseURL, timeout), nil
}
