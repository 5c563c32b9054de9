package main

import (
	"context"
	"log/slog"
	"os"

	"toolrental-service/cmd/bootstrap"
	"toolrental-service/internal/cli"
	"toolrental-service/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
)

func init() {
	// Never leak debug information on a misconfigured deployment
	gin.SetMode(gin.ReleaseMode)

	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}
}

// @title           toolrental-service
// @version         1.0
// @description     Tool rental checkout and pricing API

// @BasePath  /
// @schemes http https
func startApp(lc fx.Lifecycle, shutdowner fx.Shutdowner, engine *gin.Engine, console *cli.Console, cfg config.Config, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			if cfg.App.Mode == config.ModeCLI {
				go func() {
					if err := console.Run(context.Background()); err != nil {
						logger.Error("console session failed", "error", err)
					}
					_ = shutdowner.Shutdown()
				}()
				return nil
			}

			gin.EnableJsonDecoderDisallowUnknownFields()
			listenAddr := ":" + cfg.Server.Port
			logger.Info("starting server", "address", listenAddr, "mode", gin.Mode())
			go func() {
				if err := engine.Run(listenAddr); err != nil {
					logger.Error("server failed", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(_ context.Context) error {
			logger.Info("stopping application")
			return nil
		},
	})
}

func main() {
	app := fx.New(
		bootstrap.Module,
		fx.Provide(
			func() *gin.Engine {
				return gin.New()
			},
		),
		fx.Invoke(
			startApp,
		),
	)

	if err := app.Start(context.Background()); err != nil {
		slog.Error("failed to start application", "error", err)
		os.Exit(1)
	}

	<-app.Done()

	if err := app.Stop(context.Background()); err != nil {
		slog.Error("failed to stop application cleanly", "error", err)
	}

	slog.Info("application stopped")
}
