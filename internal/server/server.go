package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"go.uber.org/zap"

	"shortener-go/internal/config"
	"shortener-go/internal/handler"
	"shortener-go/internal/middleware"
	"shortener-go/internal/service"
	"shortener-go/pkg/logging"
)

// NewEngine builds the gin engine with the full middleware chain and the /api/v1 routes.
func NewEngine(cfg *config.Config, svc *service.UrlService, bundle *i18n.Bundle, logger *zap.Logger) (*gin.Engine, error) {
	gin.SetMode(cfg.Server.Mode)

	r := gin.New()
	if err := r.SetTrustedProxies(cfg.Server.TrustedProxies); err != nil {
		return nil, fmt.Errorf("set trusted proxies: %w", err)
	}

	r.Use(gin.Recovery())
	r.Use(middleware.ZapGinLogger(logger))
	r.Use(middleware.GlobalErrorMiddleware())
	r.Use(middleware.I18nMiddleware(bundle))
	r.Use(middleware.BlacklistMiddleware(cfg.Security.Blacklist))
	r.Use(middleware.CorsMiddleware(cfg.Cors.AllowedOrigins))

	handler.SetupRoutes(r, svc)
	return r, nil
}

// Run serves h on addr until ctx is cancelled, then shuts down within shutdownPeriod.
func Run(ctx context.Context, addr string, h http.Handler, shutdownPeriod time.Duration) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)
		logging.Logger.Info("Server is running on " + addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen on %s: %w", addr, err)
		}
		return nil
	case <-ctx.Done():
	}

	logging.Logger.Info("Shutting down server...")
	if shutdownPeriod <= 0 {
		shutdownPeriod = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logging.Logger.Error("Server forced to shutdown", zap.Error(err))
		return err
	}

	logging.Logger.Info("Server exiting")
	return nil
}
