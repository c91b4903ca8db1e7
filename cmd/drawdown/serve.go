package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/rpgo/pension-drawdown/internal/api"
	"github.com/rpgo/pension-drawdown/internal/domain"
	"github.com/spf13/cobra"
)

func newServeCmd(root *rootOptions) *cobra.Command {
	var (
		addr    string
		origins []string
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the simulator over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if os.Getenv("API_ENV") == "production" {
				gin.SetMode(gin.ReleaseMode)
			}
			engine := root.newEngine(cmd, domain.RuleOverrides{})
			router := api.NewRouter(engine, api.Options{
				AllowedOrigins: origins,
				RequestLogging: true,
			})

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			fmt.Fprintf(cmd.ErrOrStderr(), "Starting API server on %s\n", addr)
			return api.Serve(ctx, addr, router)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "Listen address")
	cmd.Flags().StringSliceVar(&origins, "origins", nil, "Allowed CORS origins (default: any)")
	return cmd
}
