package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rpgo/pension-drawdown/internal/api/handlers"
	"github.com/rpgo/pension-drawdown/internal/api/middleware"
	"github.com/rpgo/pension-drawdown/internal/calculation"
)

// Options configures the HTTP surface.
type Options struct {
	AllowedOrigins []string
	RequestLogging bool
}

// NewRouter wires the middleware and routes around a calculation engine.
func NewRouter(engine *calculation.CalculationEngine, opts Options) *gin.Engine {
	if engine == nil {
		engine = calculation.NewCalculationEngine()
	}

	router := gin.New()
	if opts.RequestLogging {
		router.Use(gin.Logger())
	}
	router.Use(middleware.ErrorHandler())
	router.Use(middleware.CORS(opts.AllowedOrigins...))

	simulationHandler := handlers.NewSimulationHandler(engine)
	exportHandler := handlers.NewExportHandler(engine)

	router.GET("/health", handlers.Health)

	api := router.Group("/api/v1")
	{
		api.GET("/rules", handlers.Rules(engine.Rules))
		api.POST("/simulate", simulationHandler.Simulate)
		api.POST("/sweep", simulationHandler.Sweep)
		api.POST("/export/:format", exportHandler.Export)
	}
	return router
}

// Serve runs the router on addr until ctx is canceled, then shuts down gracefully.
func Serve(ctx context.Context, addr string, handler http.Handler) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
