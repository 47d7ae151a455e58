package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/saint0x/letsflow/pkg/conditionals"
	"github.com/saint0x/letsflow/pkg/config"
	"github.com/saint0x/letsflow/pkg/demo"
	"github.com/saint0x/letsflow/pkg/log"
	"github.com/saint0x/letsflow/pkg/loops"
)

func main() {
	logger := log.New(false)
	if err := newRootCmd(logger).Execute(); err != nil {
		logger.Error("%v", err)
		os.Exit(1)
	}
}

// newRootCmd wires the subcommands around one logger
func newRootCmd(logger *log.Logger) *cobra.Command {
	var (
		debug bool
		env   *config.Environment
	)

	rootCmd := &cobra.Command{
		Use:   "letsflow",
		Short: "Print the for-loop and conditional examples",
		Long: `letsflow prints two fixed transcripts to stdout:

  loops          for loops: counting, arrays, nesting, break, two counters
  conditionals   if, else-if, nested ifs, logical operators, switch

Diagnostics go to stderr. DEBUG=true or --debug enables debug output.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger.SetDebug(debug)
			e, err := config.Validate(logger)
			if err != nil {
				return fmt.Errorf("environment validation failed: %w", err)
			}
			if e.Debug {
				logger.SetDebug(true)
			}
			env = e
			return nil
		},
	}
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")

	runLoops := func(w io.Writer) error {
		return loops.New(logger, loops.WithSpinBudget(env.SpinBudget)).Run(w)
	}
	runConditionals := func(w io.Writer) error {
		return conditionals.New(logger).Run(w)
	}

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "loops",
			Short: "Print the for-loop examples",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runLoops(cmd.OutOrStdout())
			},
		},
		&cobra.Command{
			Use:     "conditionals",
			Aliases: []string{"ifs"},
			Short:   "Print the if/else and switch examples",
			Args:    cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				return runConditionals(cmd.OutOrStdout())
			},
		},
		&cobra.Command{
			Use:   "all",
			Short: "Print both programs, loops first",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				out := cmd.OutOrStdout()
				if err := runLoops(out); err != nil {
					return err
				}
				if _, err := io.WriteString(out, demo.Separator); err != nil {
					return err
				}
				return runConditionals(out)
			},
		},
	)

	return rootCmd
}
