package loader

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/radieske/football-predictions-view/internal/predictions-view/client"
	"github.com/radieske/football-predictions-view/internal/shared/metrics"
	"github.com/radieske/football-predictions-view/pkg/contracts/predictions"
)

// API é o que o loader precisa da API de previsões (implementado por *client.Client)
type API interface {
	Games(ctx context.Context) ([]predictions.Game, error)
	StatPredictions(ctx context.Context) ([]predictions.StatPrediction, error)
	NeuralPredictions(ctx context.Context) ([]predictions.NeuralPrediction, error)
	BestCombo(ctx context.Context) (*predictions.BestCombo, error)
}

// PartialError lista os endpoints que falharam numa carga collect-all com algum sucesso
type PartialError struct {
	Failed map[string]error
}

func (e *PartialError) Error() string {
	endpoints := make([]string, 0, len(e.Failed))
	for ep := range e.Failed {
		endpoints = append(endpoints, ep)
	}
	sort.Strings(endpoints)

	parts := make([]string, 0, len(endpoints))
	for _, ep := range endpoints {
		parts = append(parts, fmt.Sprintf("%s: %v", ep, e.Failed[ep]))
	}
	return "partial load: " + strings.Join(parts, "; ")
}

func (e *PartialError) Unwrap() []error {
	out := make([]error, 0, len(e.Failed))
	for _, err := range e.Failed {
		out = append(out, err)
	}
	return out
}

// Options controla quais endpoints entram na carga e como as falhas são juntadas
type Options struct {
	IncludeGames bool // false na variante light
	Mode         JoinMode
}

// Loader dispara as requisições da view em paralelo e consolida o resultado num Snapshot
type Loader struct {
	api     API
	opts    Options
	log     *zap.Logger
	metrics *metrics.Loader
}

func New(api API, opts Options, log *zap.Logger, m *metrics.Loader) *Loader {
	if opts.Mode == "" {
		opts.Mode = JoinFailFast
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Loader{api: api, opts: opts, log: log, metrics: m}
}

// Mode retorna o modo de junção em uso
func (l *Loader) Mode() JoinMode { return l.opts.Mode }

// Load busca todos os endpoints em paralelo, sem retry.
// fail-fast: qualquer falha devolve snapshot vazio e o erro.
// collect-all: endpoints com falha ficam vazios e o erro é um *PartialError;
// se todos falharem o snapshot também volta vazio.
func (l *Loader) Load(ctx context.Context) (predictions.Snapshot, error) {
	var (
		games  []predictions.Game
		stats  []predictions.StatPrediction
		neural []predictions.NeuralPrediction
		combo  *predictions.BestCombo

		mu     sync.Mutex
		failed = make(map[string]error)
	)

	track := func(endpoint string, fn func(ctx context.Context) error) Task {
		return func(ctx context.Context) error {
			start := time.Now()
			err := fn(ctx)
			l.metrics.ObserveFetch(endpoint, time.Since(start), err)
			if err != nil {
				mu.Lock()
				failed[endpoint] = err
				mu.Unlock()
			}
			return err
		}
	}

	var tasks []Task
	if l.opts.IncludeGames {
		tasks = append(tasks, track(client.EndpointGames, func(ctx context.Context) (err error) {
			games, err = l.api.Games(ctx)
			return err
		}))
	}
	tasks = append(tasks,
		track(client.EndpointPredictions, func(ctx context.Context) (err error) {
			stats, err = l.api.StatPredictions(ctx)
			return err
		}),
		track(client.EndpointNeural, func(ctx context.Context) (err error) {
			neural, err = l.api.NeuralPredictions(ctx)
			return err
		}),
		track(client.EndpointBestCombo, func(ctx context.Context) (err error) {
			combo, err = l.api.BestCombo(ctx)
			return err
		}),
	)

	err := l.opts.Mode.join()(ctx, tasks...)
	if err != nil && (l.opts.Mode == JoinFailFast || len(failed) == len(tasks)) {
		l.metrics.ObserveLoad("failed")
		return predictions.Empty(), fmt.Errorf("fetch batch failed: %w", err)
	}

	snap := predictions.Empty()
	if _, bad := failed[client.EndpointGames]; !bad && games != nil {
		snap.Games = games
	}
	if _, bad := failed[client.EndpointPredictions]; !bad && stats != nil {
		snap.StatPredictions = stats
	}
	if _, bad := failed[client.EndpointNeural]; !bad && neural != nil {
		snap.NeuralPredictions = neural
	}
	if _, bad := failed[client.EndpointBestCombo]; !bad {
		snap.BestCombo = combo
	}

	if len(failed) > 0 {
		l.metrics.ObserveLoad("partial")
		pe := &PartialError{Failed: failed}
		l.log.Warn("carga parcial", zap.Error(pe))
		return snap, pe
	}

	l.metrics.ObserveLoad("ok")
	return snap, nil
}
