package main

import (
	"fmt"

	"github.com/rpgo/pension-drawdown/internal/domain"
	"github.com/rpgo/pension-drawdown/internal/output"
	"github.com/spf13/cobra"
)

func newSweepCmd(root *rootOptions) *cobra.Command {
	var scenarioName string
	cmd := &cobra.Command{
		Use:   "sweep <config>",
		Short: "Re-run scenarios at every return rate from 0% to 10%",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfiguration(args[0])
			if err != nil {
				return err
			}

			scenarios := cfg.Scenarios
			if scenarioName != "" {
				scenarios = nil
				for _, sc := range cfg.Scenarios {
					if sc.Name == scenarioName {
						scenarios = []domain.Scenario{sc}
						break
					}
				}
				if scenarios == nil {
					return fmt.Errorf("%w: scenario %q not found", domain.ErrInvalidInput, scenarioName)
				}
			}

			engine := root.newEngine(cmd, cfg.Rules)
			for _, sc := range scenarios {
				points, err := engine.ReturnRateSweep(cmd.Context(), sc.Household, nil)
				if err != nil {
					return fmt.Errorf("scenario %q: %w", sc.Name, err)
				}
				fmt.Fprintln(cmd.OutOrStdout(), output.SweepTable(sc.Name, points))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&scenarioName, "scenario", "s", "", "Only sweep the named scenario")
	return cmd
}
