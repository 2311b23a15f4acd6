package main

import (
	"github.com/spf13/cobra"
)

var screenshotOutput string

var screenshotCmd = &cobra.Command{
	Use:   "screenshot <url>",
	Short: "Capture a screenshot of a page",
	Long:  "Captures a page screenshot. With --output the image is saved to that path; otherwise its URL or size is printed.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return newToolkit(cmd, cfg).Screenshot(cmd.Context(), args[0], screenshotOutput)
	},
}

func init() {
	screenshotCmd.Flags().StringVarP(&screenshotOutput, "output", "o", "", "file to save the image to")
	rootCmd.AddCommand(screenshotCmd)
}
