package cmd

import (
	"fmt"

	"github.com/harrison/pathseek/internal/config"
	"github.com/spf13/cobra"
)

// Version is injected at build time via -ldflags
var Version = "dev"

// NewRootCommand creates and returns the root cobra command for pathseek
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pathseek <target>",
		Short: "Concurrent recursive search for paths containing a substring",
		Long: `pathseek walks a directory tree with a pool of concurrent workers and
prints every entry whose full path contains the target substring.

The whole path is matched, not just the file name, so a target found in a
directory name matches everything below that directory. Matches are printed
in no particular order; directories that cannot be read are reported on
stderr and skipped.

Configuration is loaded from .pathseek.yaml if present.
CLI flags override configuration file settings.

Examples:
  pathseek report                      # search the current directory
  pathseek report --dir ~/docs         # search another directory
  pathseek README -ic --workers 8      # case-insensitive, 8 workers
  pathseek .go --output matches.txt    # also write sorted matches to a file`,
		Version: Version,
		Args:    exactlyOneTarget,
		RunE:    runSearch,
		// Silence usage on errors to avoid duplicate help text
		SilenceUsage: true,
		// main reports the returned error once
		SilenceErrors: true,
	}

	cmd.Flags().String("dir", ".", "Directory to start searching from")
	cmd.Flags().Uint("workers", 4, "Number of concurrent search workers")
	cmd.Flags().BoolP("ignore-case", "i", false, "Match case-insensitively (also accepted as -ic)")
	cmd.Flags().String("config", "", "Path to config file (default: ./"+config.FileName+")")
	cmd.Flags().String("output", "", "Also write the sorted matches to this file")
	cmd.Flags().String("log-level", "", "Diagnostic log level (trace, debug, info, warn, error)")
	cmd.Flags().String("log-dir", "", "Directory for per-run log files")
	cmd.Flags().Bool("verbose", false, "Log worker activity and a run summary to stderr")
	cmd.Flags().String("color", "", "Color output: auto, always or never")
	cmd.Flags().Bool("no-color", false, "Disable colored output (same as --color never)")

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		fmt.Fprint(c.ErrOrStderr(), c.UsageString())
		return err
	})

	return cmd
}

// exactlyOneTarget requires a single positional search target and prints
// usage to stderr otherwise.
func exactlyOneTarget(c *cobra.Command, args []string) error {
	switch {
	case len(args) == 0:
		fmt.Fprint(c.ErrOrStderr(), c.UsageString())
		return fmt.Errorf("missing search target")
	case len(args) > 1:
		fmt.Fprint(c.ErrOrStderr(), c.UsageString())
		return fmt.Errorf("expected exactly one search target, got %d: %v", len(args), args)
	case args[0] == "":
		return fmt.Errorf("search target cannot be empty")
	}
	return nil
}
