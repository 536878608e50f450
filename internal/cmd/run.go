package cmd

import (
	"fmt"

	"github.com/harrison/pathseek/internal/config"
	"github.com/harrison/pathseek/internal/display"
	"github.com/harrison/pathseek/internal/logger"
	"github.com/harrison/pathseek/internal/resultfile"
	"github.com/harrison/pathseek/internal/search"
	"github.com/spf13/cobra"
)

// runLogger is what a search run logs through: diagnostics plus the summary.
type runLogger interface {
	search.Logger
	LogSummary(summary *search.Summary)
}

// runSearch implements the root command logic
func runSearch(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	dir, _ := cmd.Flags().GetString("dir")
	if err := config.ValidateRoot(dir); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	opts := search.Options{
		Target:     args[0],
		Root:       dir,
		IgnoreCase: cfg.IgnoreCase,
		Workers:    cfg.Workers,
		Stagger:    cfg.Stagger,
	}

	consoleLog := logger.NewConsoleLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	loggers := []runLogger{consoleLog}

	if cfg.LogDir != "" {
		fileLog, err := logger.NewFileLoggerWithDirAndLevel(cfg.LogDir, cfg.LogLevel)
		if err != nil {
			return fmt.Errorf("failed to create file logger: %w", err)
		}
		defer fileLog.Close()
		consoleLog.LogDebug(fmt.Sprintf("run %s logging to %s", fileLog.RunID(), fileLog.RunFile()))
		loggers = append(loggers, fileLog)
	}
	multiLog := &multiLogger{loggers: loggers}

	colorMode, err := display.ParseColorMode(cfg.Color)
	if err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	printer := display.NewPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr(), multiLog, display.PrinterOptions{
		Target:     opts.Target,
		IgnoreCase: opts.IgnoreCase,
		Color:      colorMode,
		Collect:    cfg.Output != "",
	})
	printer.Start()

	summary, err := search.Search(opts, printer, multiLog)
	printer.Close()
	if err != nil {
		return err
	}

	multiLog.LogSummary(summary)

	if cfg.Output != "" {
		if err := resultfile.Write(cfg.Output, printer.Matches()); err != nil {
			return fmt.Errorf("failed to write results: %w", err)
		}
		multiLog.LogDebug(fmt.Sprintf("wrote %d matches to %s", summary.Matches, cfg.Output))
	}

	printer.Finish()
	return nil
}

// resolveConfig loads the config file and applies command-line overrides.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	configPath, _ := cmd.Flags().GetString("config")
	var cfg *config.Config
	var err error

	if configPath != "" {
		cfg, err = config.LoadConfig(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", configPath, err)
		}
	} else {
		cfg, err = config.LoadConfigFromDir(".")
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
	}

	if cmd.Flags().Changed("color") && cmd.Flags().Changed("no-color") {
		return nil, fmt.Errorf("cannot use both --color and --no-color")
	}

	var workersPtr *int
	if cmd.Flags().Changed("workers") {
		workers, _ := cmd.Flags().GetUint("workers")
		w := int(workers)
		workersPtr = &w
	}

	var ignoreCasePtr *bool
	if cmd.Flags().Changed("ignore-case") {
		ignoreCase, _ := cmd.Flags().GetBool("ignore-case")
		ignoreCasePtr = &ignoreCase
	}

	var logLevelPtr *string
	if cmd.Flags().Changed("log-level") {
		logLevel, _ := cmd.Flags().GetString("log-level")
		logLevelPtr = &logLevel
	}
	// --verbose wins over both the config file and --log-level
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		debug := "debug"
		logLevelPtr = &debug
	}

	var logDirPtr *string
	if cmd.Flags().Changed("log-dir") {
		logDir, _ := cmd.Flags().GetString("log-dir")
		logDirPtr = &logDir
	}

	var outputPtr *string
	if cmd.Flags().Changed("output") {
		output, _ := cmd.Flags().GetString("output")
		outputPtr = &output
	}

	var colorPtr *string
	if cmd.Flags().Changed("color") {
		color, _ := cmd.Flags().GetString("color")
		colorPtr = &color
	} else if noColor, _ := cmd.Flags().GetBool("no-color"); noColor {
		never := string(display.ColorNever)
		colorPtr = &never
	}

	cfg.MergeWithFlags(workersPtr, ignoreCasePtr, logLevelPtr, logDirPtr, outputPtr, colorPtr)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// multiLogger implements runLogger by delegating to multiple loggers
type multiLogger struct {
	loggers []runLogger
}

// LogTrace forwards to all loggers
func (ml *multiLogger) LogTrace(message string) {
	for _, l := range ml.loggers {
		l.LogTrace(message)
	}
}

// LogDebug forwards to all loggers
func (ml *multiLogger) LogDebug(message string) {
	for _, l := range ml.loggers {
		l.LogDebug(message)
	}
}

// LogInfo forwards to all loggers
func (ml *multiLogger) LogInfo(message string) {
	for _, l := range ml.loggers {
		l.LogInfo(message)
	}
}

// LogWarn forwards to all loggers
func (ml *multiLogger) LogWarn(message string) {
	for _, l := range ml.loggers {
		l.LogWarn(message)
	}
}

// LogError forwards to all loggers
func (ml *multiLogger) LogError(message string) {
	for _, l := range ml.loggers {
		l.LogError(message)
	}
}

// LogSummary forwards to all loggers
func (ml *multiLogger) LogSummary(summary *search.Summary) {
	for _, l := range ml.loggers {
		l.LogSummary(summary)
	}
}
