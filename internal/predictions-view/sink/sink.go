package sink

import (
	"context"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/radieske/football-predictions-view/internal/predictions-view/view"
	"github.com/radieske/football-predictions-view/pkg/contracts/events"
)

// Sink recebe cada carga concluída da view
type Sink interface {
	Name() string
	Publish(ctx context.Context, out view.Outcome) error
}

// Fanout entrega o resultado a todos os sinks em paralelo com prazo limitado.
// Erros são apenas logados; nunca alteram o estado da view.
type Fanout struct {
	Log     *zap.Logger
	Timeout time.Duration
	Sinks   []Sink

	OnError func(sink string) // métricas
}

func NewFanout(log *zap.Logger, timeout time.Duration, sinks ...Sink) *Fanout {
	if log == nil {
		log = zap.NewNop()
	}
	return &Fanout{Log: log, Timeout: timeout, Sinks: sinks}
}

// Observe tem a assinatura de view.OnSettle
func (f *Fanout) Observe(out view.Outcome) {
	if len(f.Sinks) == 0 {
		return
	}
	ctx := context.Background()
	if f.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.Timeout)
		defer cancel()
	}

	var g errgroup.Group
	for _, s := range f.Sinks {
		g.Go(func() error {
			if err := s.Publish(ctx, out); err != nil {
				f.Log.Warn("sink failed",
					zap.String("sink", s.Name()),
					zap.String("load_id", out.LoadID),
					zap.Error(err))
				if f.OnError != nil {
					f.OnError(s.Name())
				}
			}
			return nil
		})
	}
	_ = g.Wait()
}

// event monta o evento publicado em redis e kafka
func event(out view.Outcome) events.SnapshotLoaded {
	return events.NewSnapshotLoaded(
		out.LoadID,
		string(out.Variant),
		out.StartedAt.Add(out.Duration),
		out.Duration,
		out.Partial(),
		out.Snapshot,
	)
}
