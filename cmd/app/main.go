package main

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"tiew/cmd/fx/clients_fx"
	"tiew/cmd/fx/config_fx"
	"tiew/cmd/fx/content_fx"
	"tiew/cmd/fx/controllers_fx"
	"tiew/cmd/fx/db_fx"
	"tiew/cmd/fx/feeds_fx"
	"tiew/cmd/fx/i18n_fx"
	"tiew/cmd/fx/memcache_fx"
	"tiew/cmd/fx/weather_fx"
	"tiew/internal/config"
)

// @title Tiew API
// @version 1.0
// @description Province tourism feeds, weather and localization.
// @BasePath /
func main() {
	app := fx.New(
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		config_fx.Module,
		db_fx.Module,
		memcache_fx.Module,
		clients_fx.Module,
		feeds_fx.Module,
		weather_fx.Module,
		content_fx.Module,
		i18n_fx.Module,
		controllers_fx.Module,

		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, engine *gin.Engine, log *zap.Logger) {
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: engine,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Info("Starting HTTP server", zap.String("addr", srv.Addr))
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal("Failed to start server", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}
