package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/iconfetch/iconfetch/internal/app"
	"github.com/iconfetch/iconfetch/internal/config"
	"github.com/iconfetch/iconfetch/internal/logger"
)

// Version information (set via ldflags during build)
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Global flags
var (
	globalNoColor bool
	globalQuiet   bool
	globalDebug   bool
)

// Root command flags
var (
	rootConfigFile  string
	rootVerbose     bool
	rootConcurrency int
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "iconfetch",
	Short: "Fetch SVG icons from open-source icon sets on GitHub",
	Long: `iconfetch reads a declarative JSON config describing icons to fetch
from well-known open-source icon repositories on GitHub, downloads the
raw SVG for each, optionally rewrites it into a typed React component,
and writes the result to disk.

Examples:
  iconfetch
  iconfetch -c ./icons.input.json -v
  iconfetch repos
  iconfetch init`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runFetch,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		printError(err)
		os.Exit(1)
	}
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVar(&globalNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&globalQuiet, "quiet", "q", false, "Suppress non-error output")
	rootCmd.PersistentFlags().BoolVar(&globalDebug, "debug", false, "Enable debug logging")

	// Fetch flags on the root command
	rootCmd.Flags().StringVarP(&rootConfigFile, "config-file", "c", config.DefaultConfigFile, "Path to icons input file")
	rootCmd.Flags().BoolVarP(&rootVerbose, "verbose", "v", false, "Print per-icon failures")
	rootCmd.Flags().IntVar(&rootConcurrency, "concurrency", app.DefaultConcurrency, "Maximum parallel downloads")

	// Add subcommands
	rootCmd.AddCommand(reposCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(versionCmd)
}

// newLogger builds the run logger based on global flags.
func newLogger() *zerolog.Logger {
	level := logger.DefaultLogLevel
	if globalDebug {
		level = "debug"
	}
	if globalQuiet {
		level = "error"
	}
	return logger.NewConsoleLogger(level)
}

func runFetch(cmd *cobra.Command, args []string) error {
	log := newLogger()

	result, err := app.Run(cmd.Context(), app.RunOptions{
		ConfigFile:  rootConfigFile,
		Concurrency: rootConcurrency,
		Logger:      log,
	})
	if err != nil {
		return err
	}

	// Per-icon failure detail prints only in verbose mode.
	if rootVerbose {
		for _, r := range result.Results {
			if r.Failed() {
				printErrorMsg(r.Err.Error())
			}
		}
	}

	printSummary(result)

	if result.Failed > 0 {
		return fmt.Errorf("%d of %d icons failed", result.Failed, result.Requested)
	}
	return nil
}

// printError prints an error message to stderr
func printError(err error) {
	if globalQuiet {
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
}
