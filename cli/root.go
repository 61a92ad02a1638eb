// Package cli implements the mortgage-planner command tree.
package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"mortgage-planner/config"
	"mortgage-planner/domain"
	"mortgage-planner/logging"
)

// Build-time variables (set via -ldflags).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

type app struct {
	cfg    *config.Config
	logger *slog.Logger
}

// Execute runs the command line and returns the process exit code.
func Execute() int {
	return run(os.Args[1:], os.Stdout, os.Stderr)
}

func run(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	if err := root.Execute(); err != nil {
		printError(stderr, err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "mortgage-planner",
		Short: "Mortgage amortization and early repayment calculator",
		Long: `mortgage-planner computes monthly amortization schedules for level-payment
and level-principal mortgages, combined commercial + fund loans, and the
effect of a one-time early repayment on the remaining schedule.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			configFile, _ := cmd.Flags().GetString("config")
			if configFile != "" {
				a.cfg, err = config.LoadFromFile(configFile)
			} else {
				a.cfg, err = config.Load()
			}
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}

			if level, _ := cmd.Flags().GetString("log-level"); level != "" {
				a.cfg.Logging.Level = level
			}
			a.logger = logging.New(a.cfg.Logging, cmd.ErrOrStderr())
			return nil
		},
	}

	root.PersistentFlags().String("config", "", "config file path (default: ./config/config.yaml)")
	root.PersistentFlags().String("log-level", "", "log level override (debug, info, warn, error)")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newScheduleCmd(a))
	root.AddCommand(newCombinedCmd(a))
	root.AddCommand(newServeCmd(a))
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "mortgage-planner %s\n", version)
			fmt.Fprintf(out, "  commit:  %s\n", commit)
			fmt.Fprintf(out, "  built:   %s\n", date)
		},
	}
}

// printError reports calculation errors with their kind and offending
// field.
func printError(w io.Writer, err error) {
	var calcErr *domain.CalculationError
	if errors.As(err, &calcErr) {
		fmt.Fprintf(w, "error: %s\n", calcErr)
		return
	}
	fmt.Fprintf(w, "error: %v\n", err)
}
