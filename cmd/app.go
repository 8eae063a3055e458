package cmd

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/hagio-gakuto/user-directory/api"
	"github.com/hagio-gakuto/user-directory/config"
	"github.com/hagio-gakuto/user-directory/pkg/logger"
)

// App is the assembled application.
type App struct {
	config *config.Config
	router *api.Router
	server *http.Server
	db     *gorm.DB
}

// Run serves until SIGINT/SIGTERM, then drains within the configured
// shutdown timeout.
func (a *App) Run() error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("Server listening",
			zap.String("addr", a.server.Addr),
			zap.String("health", "/api/v1/health"))
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-sigCh:
		logger.Info("Shutting down", zap.String("signal", sig.String()))
	}

	ctx, cancel := context.WithTimeout(context.Background(), a.config.Server.ShutdownTimeout)
	defer cancel()

	if err := a.server.Shutdown(ctx); err != nil {
		logger.Error("Forced shutdown", zap.Error(err))
		return err
	}

	if a.db != nil {
		if sqlDB, err := a.db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}

	logger.Info("Server stopped")
	return logger.Sync()
}

// GetEngine exposes the gin engine for tests.
func (a *App) GetEngine() *gin.Engine {
	return a.router.GetEngine()
}
