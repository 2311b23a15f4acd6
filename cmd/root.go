package main

import (
	"fmt"
	"io"
	"os"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/firecrawl-web/internal/config"
)

var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "fc",
	Short: "Web tools backed by the Firecrawl API",
	Long:  "Scrapes pages to markdown, captures screenshots, extracts structured data, searches the web and crawls sites through Firecrawl.",
	// Flags and arguments have been validated by the time this runs, so
	// later failures are not usage errors.
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cmd.SilenceUsage = true

		c, err := config.Load()
		if err != nil {
			return eris.Wrap(err, "load config")
		}
		if err := c.Validate(); err != nil {
			return err
		}
		cfg = c

		if err := config.InitLogger(cfg.Log); err != nil {
			return eris.Wrap(err, "init logger")
		}
		zap.ReplaceGlobals(zap.L().With(zap.String("run_id", uuid.NewString())))
		zap.L().Debug("starting", zap.String("command", cmd.Name()))

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = zap.L().Sync()
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		_ = cmd.Usage()
		return eris.New("missing command: expected one of markdown, screenshot, extract, search, crawl")
	},
	SilenceErrors: true,
}

func main() {
	os.Exit(run(os.Args[1:], os.Getenv, os.Stderr))
}

// run checks the credential before any argument parsing, then executes the
// command tree. It returns the process exit code.
func run(args []string, getenv func(string) string, stderr io.Writer) int {
	if err := config.RequireAPIKey(getenv); err != nil {
		fmt.Fprintln(stderr, err.Error())
		return 1
	}

	if args == nil {
		args = []string{}
	}
	rootCmd.SetArgs(args)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(stderr, eris.ToString(err, true))
		return 1
	}
	return 0
}
