package main

import (
	"github.com/rpgo/pension-drawdown/internal/output"
	"github.com/spf13/cobra"
)

func newSimulateCmd(root *rootOptions) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "simulate <config>",
		Short: "Run every scenario in a configuration file and print the results",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfiguration(args[0])
			if err != nil {
				return err
			}
			if format == "" {
				format = cfg.Output.Format
			}
			if format == "" {
				format = "console"
			}
			formatter := output.GetFormatterByName(format)
			if formatter == nil {
				return output.UnsupportedFormatError(format)
			}

			results, err := root.newEngine(cmd, cfg.Rules).RunScenarios(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			data, err := formatter.Format(results)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "Output format: "+formatList()+" (default from config, else console)")
	return cmd
}
