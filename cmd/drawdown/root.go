package main

import (
	"github.com/rpgo/pension-drawdown/internal/calculation"
	"github.com/rpgo/pension-drawdown/internal/config"
	"github.com/rpgo/pension-drawdown/internal/domain"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	verbose bool
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "drawdown",
		Short: "Retirement drawdown planner",
		Long: "Simulate yearly retirement cash flow from age 60 to 90: national pension, pension savings,\n" +
			"IRP and housing annuity income, health insurance contributions and remaining assets.",
		SilenceUsage: true,
	}
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log every simulated year to stderr")

	cmd.AddCommand(
		newSimulateCmd(opts),
		newExportCmd(opts),
		newSweepCmd(opts),
		newExampleCmd(),
		newServeCmd(opts),
		newInteractiveCmd(opts),
	)
	return cmd
}

// newEngine builds an engine for the configuration's rule overrides with the CLI's logger.
func (o *rootOptions) newEngine(cmd *cobra.Command, rules domain.RuleOverrides) *calculation.CalculationEngine {
	engine := calculation.NewCalculationEngineWithOverrides(rules)
	if o.verbose {
		engine.Debug = true
		engine.SetLogger(calculation.NewStdLogger(cmd.ErrOrStderr(), true))
	}
	return engine
}

func loadConfiguration(path string) (*domain.Configuration, error) {
	return config.NewInputParser().LoadFromFile(path)
}
