package main

import (
	"github.com/spf13/cobra"
)

var markdownMainOnly bool

var markdownCmd = &cobra.Command{
	Use:   "markdown <url>",
	Short: "Print a page as markdown",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return newToolkit(cmd, cfg).Markdown(cmd.Context(), args[0], markdownMainOnly)
	},
}

func init() {
	markdownCmd.Flags().BoolVar(&markdownMainOnly, "main-only", false, "strip navigation and other boilerplate")
	rootCmd.AddCommand(markdownCmd)
}
