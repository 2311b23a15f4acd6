package main

import (
	"github.com/spf13/cobra"

	"github.com/sells-group/firecrawl-web/internal/tools"
)

var (
	crawlLimit  int
	crawlOutput string
)

var crawlCmd = &cobra.Command{
	Use:   "crawl <url>",
	Short: "Crawl a site and collect its pages as markdown",
	Long:  "Crawls a site. With --output each page is written to DIR/page_NNN.md; otherwise a preview of every page is printed.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return newToolkit(cmd, cfg).Crawl(cmd.Context(), args[0], crawlLimit, crawlOutput)
	},
}

func init() {
	crawlCmd.Flags().IntVar(&crawlLimit, "limit", tools.DefaultCrawlLimit, "maximum number of pages")
	crawlCmd.Flags().StringVarP(&crawlOutput, "output", "o", "", "directory to write pages to")
	rootCmd.AddCommand(crawlCmd)
}
