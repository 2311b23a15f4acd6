package main

import (
	"github.com/spf13/cobra"

	"github.com/sells-group/firecrawl-web/internal/tools"
)

var searchLimit int

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search the web",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return newToolkit(cmd, cfg).Search(cmd.Context(), args[0], searchLimit)
	},
}

func init() {
	searchCmd.Flags().IntVar(&searchLimit, "limit", tools.DefaultSearchLimit, "maximum number of results")
	rootCmd.AddCommand(searchCmd)
}
