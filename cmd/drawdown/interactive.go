package main

import (
	"errors"
	"fmt"

	"github.com/rpgo/pension-drawdown/internal/domain"
	"github.com/rpgo/pension-drawdown/internal/tui"
	"github.com/spf13/cobra"
)

func newInteractiveCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "interactive",
		Short: "Fill in a household on a form and see its drawdown",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			engine := root.newEngine(cmd, domain.RuleOverrides{})
			session := tui.NewSession(engine, cmd.OutOrStdout())
			_, err := session.Run(cmd.Context(), tui.DefaultFormValues())
			if errors.Is(err, tui.ErrAborted) {
				fmt.Fprintln(cmd.ErrOrStderr(), "Aborted.")
				return nil
			}
			return err
		},
	}
}
