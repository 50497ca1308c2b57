package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/muhammadolammi/atschecker/internal/ats"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type checkOutput struct {
	Band string `json:"band"`
	ats.Result
}

func newCheckCmd() *cobra.Command {
	var (
		keywords     []string
		keywordsFile string
	)

	cmd := &cobra.Command{
		Use:   "check <resume>",
		Short: "Score a single resume file and print the result as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read resume: %w", err)
			}

			checker := ats.NewChecker(ats.LoadCatalog(keywordsFile, log.Logger), log.Logger)

			// an explicit --keywords replaces the catalog for matching only
			var override []string
			if cmd.Flags().Changed("keywords") {
				override = append([]string{}, keywords...)
			}

			result := checker.Check(data, override)

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(checkOutput{Band: ats.Band(result.Score), Result: result})
		},
	}

	cmd.Flags().StringSliceVarP(&keywords, "keywords", "k", nil, "Comma separated keywords to match instead of the catalog")
	cmd.Flags().StringVar(&keywordsFile, "keywords-file", os.Getenv("KEYWORDS_PATH"), "JSON or YAML keyword catalog (defaults to the bundled catalog)")

	return cmd
}
