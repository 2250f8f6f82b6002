package app

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/radieske/football-predictions-view/internal/predictions-view/client"
	"github.com/radieske/football-predictions-view/internal/predictions-view/loader"
	"github.com/radieske/football-predictions-view/internal/predictions-view/sink"
	"github.com/radieske/football-predictions-view/internal/predictions-view/view"
	"github.com/radieske/football-predictions-view/internal/shared/cache"
	"github.com/radieske/football-predictions-view/internal/shared/config"
	"github.com/radieske/football-predictions-view/internal/shared/db"
	"github.com/radieske/football-predictions-view/internal/shared/kafka"
	"github.com/radieske/football-predictions-view/internal/shared/metrics"
)

// ErrLoading é devolvido pelo health enquanto a view não terminou a carga
var ErrLoading = errors.New("view still loading")

// App reúne a view já ligada ao loader, métricas e sinks configurados.
// A view ainda não está montada: registre observadores e chame View.Mount.
type App struct {
	Log      *zap.Logger
	Registry *prometheus.Registry
	Metrics  *metrics.Loader
	View     *view.View
	Fanout   *sink.Fanout

	Redis *redis.Client // nil quando REDIS_ADDR está vazio
	DB    *sql.DB       // nil quando POSTGRES_DSN está vazio

	closers []func() error
}

// New monta o app a partir da configuração; conecta apenas os sinks configurados
func New(ctx context.Context, cfg config.Config, log *zap.Logger) (*App, error) {
	variant, err := view.ParseVariant(cfg.Variant)
	if err != nil {
		return nil, err
	}
	mode, err := loader.ParseJoinMode(cfg.JoinMode)
	if err != nil {
		return nil, err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	a := &App{Log: log, Registry: reg, Metrics: metrics.NewLoader(reg)}

	api := client.New(cfg.APIBaseURL, cfg.FetchTimeout)
	l := loader.New(api, loader.Options{IncludeGames: variant.IncludesGames(), Mode: mode}, log.Named("loader"), a.Metrics)
	a.View = view.New(variant, l, log.Named("view"))

	sinks, err := a.connectSinks(ctx, cfg, mode)
	if err != nil {
		_ = a.Close()
		return nil, err
	}
	a.Fanout = sink.NewFanout(log.Named("sink"), cfg.SinkTimeout, sinks...)
	a.Fanout.OnError = a.Metrics.ObserveSinkError
	a.View.OnSettle(a.Fanout.Observe)

	log.Info("view ready",
		zap.String("api", cfg.APIBaseURL),
		zap.String("variant", string(variant)),
		zap.String("join_mode", string(mode)),
		zap.Int("sinks", len(sinks)),
	)
	return a, nil
}

func (a *App) connectSinks(ctx context.Context, cfg config.Config, mode loader.JoinMode) ([]sink.Sink, error) {
	var sinks []sink.Sink

	if cfg.RedisAddr != "" {
		rdb, err := cache.ConnectRedis(ctx, cfg.RedisAddr)
		if err != nil {
			return nil, err
		}
		a.Redis = rdb
		a.closers = append(a.closers, rdb.Close)
		sinks = append(sinks, sink.NewRedisSink(rdb, cfg.RedisSnapshotTTL, cfg.RedisPubSubChannel))
		a.Log.Info("redis connected", zap.String("addr", cfg.RedisAddr))
	}

	if cfg.KafkaBrokers != "" {
		w := kafka.NewWriter(cfg.KafkaBrokers, cfg.TopicSnapshots)
		a.closers = append(a.closers, w.Close)
		sinks = append(sinks, sink.NewKafkaSink(w, cfg.TopicSnapshots))
		a.Log.Info("kafka writer ready", zap.String("topic", cfg.TopicSnapshots))
	}

	if cfg.PostgresDSN != "" {
		pg, err := db.ConnectPostgres(ctx, cfg.PostgresDSN)
		if err != nil {
			return nil, err
		}
		a.DB = pg
		a.closers = append(a.closers, pg.Close)
		j := sink.NewPostgresJournal(pg, string(mode))
		if err := j.EnsureSchema(ctx); err != nil {
			return nil, err
		}
		sinks = append(sinks, j)
		a.Log.Info("postgres connected")
	}

	return sinks, nil
}

// Health falha enquanto a view carrega ou se algum sink conectado não responder
func (a *App) Health(ctx context.Context) error {
	if a.View.State().Loading {
		return ErrLoading
	}
	if a.Redis != nil {
		if err := a.Redis.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis: %w", err)
		}
	}
	if a.DB != nil {
		if err := a.DB.PingContext(ctx); err != nil {
			return fmt.Errorf("postgres: %w", err)
		}
	}
	return nil
}

// Close desmonta a view e fecha as conexões dos sinks
func (a *App) Close() error {
	if a.View != nil {
		a.View.Close()
	}
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
