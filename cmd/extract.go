package main

import (
	"github.com/spf13/cobra"

	"github.com/sells-group/firecrawl-web/internal/tools"
)

var (
	extractSchema string
	extractPrompt string
	extractFormat string
)

var extractCmd = &cobra.Command{
	Use:   "extract <url>",
	Short: "Extract structured data from a page using a JSON schema",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return newToolkit(cmd, cfg).Extract(cmd.Context(), tools.ExtractOptions{
			URL:        args[0],
			SchemaPath: extractSchema,
			Prompt:     extractPrompt,
			Format:     extractFormat,
		})
	},
}

func init() {
	extractCmd.Flags().StringVar(&extractSchema, "schema", "", "path to a JSON schema file")
	extractCmd.Flags().StringVar(&extractPrompt, "prompt", "", "optional extraction instructions")
	extractCmd.Flags().StringVar(&extractFormat, "format", tools.OutputJSON, "output format: json or yaml")
	_ = extractCmd.MarkFlagRequired("schema")
	rootCmd.AddCommand(extractCmd)
}
