package main

import (
	"fmt"
	"strings"

	"github.com/rpgo/pension-drawdown/internal/output"
	"github.com/spf13/cobra"
)

func formatList() string {
	return strings.Join(output.AvailableFormatterNames(), ", ")
}

func newExportCmd(root *rootOptions) *cobra.Command {
	var (
		format string
		outDir string
	)
	cmd := &cobra.Command{
		Use:   "export <config>",
		Short: "Write report files for every scenario in a configuration file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfiguration(args[0])
			if err != nil {
				return err
			}
			if outDir == "" {
				outDir = cfg.Output.Directory
			}

			results, err := root.newEngine(cmd, cfg.Rules).RunScenarios(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			paths, err := output.GenerateReport(results, format, outDir)
			if err != nil {
				return err
			}
			for _, p := range paths {
				fmt.Fprintf(cmd.OutOrStdout(), "Report written: %s\n", p)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "xlsx", "Export format: "+formatList()+", or all")
	cmd.Flags().StringVarP(&outDir, "out", "o", "", "Output directory (default from config, else current directory)")
	return cmd
}
