package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/radieske/football-predictions-view/internal/predictions-view/app"
	httpapi "github.com/radieske/football-predictions-view/internal/predictions-view/http"
	"github.com/radieske/football-predictions-view/internal/predictions-view/view"
	"github.com/radieske/football-predictions-view/internal/predictions-view/ws"
	"github.com/radieske/football-predictions-view/internal/shared/config"
	"github.com/radieske/football-predictions-view/internal/shared/logger"
	"github.com/radieske/football-predictions-view/internal/shared/metrics"
)

func main() {
	// carrega config
	cfg, err := config.Load("predictions-web")
	if err != nil {
		panic(fmt.Errorf("config: %w", err))
	}

	// inicia logger
	log, err := logger.New(cfg.ServiceName, cfg.Env, cfg.LogLevel)
	if err != nil {
		panic(fmt.Errorf("logger init: %w", err))
	}
	defer log.Sync()

	log.Info("starting service", zap.String("service", cfg.ServiceName), zap.String("env", cfg.Env))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, log)
	if err != nil {
		log.Fatal("failed to build view", zap.Error(err))
	}
	defer a.Close()

	// hub avisa as páginas abertas quando a carga termina
	hub := ws.NewHub(func(r *http.Request) bool { return true }, log.Named("ws"))
	a.View.OnSettle(func(out view.Outcome) {
		msg := ws.Message{Type: ws.TypeLoaded, LoadID: out.LoadID}
		if !out.Applied {
			msg.Type = ws.TypeFailed
		}
		hub.Broadcast(msg)
	})
	if a.Redis != nil {
		ws.StartRedisSubscriber(ctx, a.Redis, cfg.RedisPubSubChannel, hub, log.Named("ws"))
	}

	if err := a.View.Mount(ctx); err != nil {
		log.Fatal("mount failed", zap.Error(err))
	}

	// sobe servidor de métricas e health
	msrv := metrics.StartMetricsServer(cfg.MetricsPort, a.Registry, a.Health)
	log.Info("metrics/health server starting", zap.String("port", cfg.MetricsPort))

	api := &httpapi.API{
		View:     a.View,
		WS:       hub.HandleWS,
		Location: cfg.Location(),
		Log:      log.Named("http"),
	}
	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           api.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("predictions-web listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("http server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = srv.Shutdown(sctx)
	_ = msrv.Shutdown(sctx)
}
