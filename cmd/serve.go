package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Govind-619/CorpSite/config"
	"github.com/Govind-619/CorpSite/middleware"
	"github.com/Govind-619/CorpSite/routes"
	"github.com/Govind-619/CorpSite/services"
	"github.com/Govind-619/CorpSite/utils"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

func serveCmd() *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, db, err := bootstrap()
			if err != nil {
				return err
			}
			if port != "" {
				cfg.Port = port
			}
			if err := config.Migrate(db); err != nil {
				utils.LogError("Migration failed: %v", err)
				return err
			}

			if cfg.IsProduction() {
				gin.SetMode(gin.ReleaseMode)
			}

			var limiter middleware.Limiter
			if cfg.RedisURL != "" {
				redisLimiter, err := middleware.NewRedisLimiter(cfg.RedisURL, cfg.RateLimitPerMinute, time.Minute)
				if err != nil {
					// rate limiting is best effort
					utils.LogError("Rate limiting disabled, Redis unavailable: %v", err)
				} else {
					defer redisLimiter.Close()
					limiter = redisLimiter
				}
			}

			router := routes.SetupRouter(routes.Dependencies{
				Config:  cfg,
				DB:      db,
				Gateway: services.NewRazorpayGateway(cfg.RazorpayKeyID, cfg.RazorpayKeySecret),
				Limiter: limiter,
			})

			return run(cmd.Context(), router, ":"+cfg.Port)
		},
	}

	cmd.Flags().StringVar(&port, "port", "", "port to listen on (overrides PORT)")
	return cmd
}

// run serves until SIGINT/SIGTERM, then drains in-flight requests
func run(ctx context.Context, handler http.Handler, addr string) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	server := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		utils.LogInfo("Server starting on %s", addr)
		fmt.Printf("Server running on %s\n", addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			utils.LogError("Error starting server: %v", err)
		}
		return err
	case <-ctx.Done():
	}

	utils.LogInfo("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}
