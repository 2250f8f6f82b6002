package view

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/radieske/football-predictions-view/internal/predictions-view/loader"
	"github.com/radieske/football-predictions-view/pkg/contracts/predictions"
)

var (
	ErrAlreadyMounted = errors.New("view already mounted")
	ErrClosed         = errors.New("view closed")
)

// Loader é a fonte de dados da view (implementado por *loader.Loader)
type Loader interface {
	Load(ctx context.Context) (predictions.Snapshot, error)
}

// State é uma cópia do estado da view num instante
type State struct {
	Variant Variant
	Tab     Tab
	Loading bool
	predictions.Snapshot
}

// Outcome descreve uma carga concluída, entregue aos observadores de OnSettle
type Outcome struct {
	LoadID    string
	Variant   Variant
	StartedAt time.Time
	Duration  time.Duration
	Snapshot  predictions.Snapshot
	Applied   bool  // snapshot foi aplicado ao estado (sucesso ou parcial)
	Err       error // nil em sucesso; *loader.PartialError em carga parcial
}

// Partial indica carga aplicada com falha em algum endpoint
func (o Outcome) Partial() bool { return o.Applied && o.Err != nil }

// View guarda o estado de exibição das previsões: aba ativa, flag de carregamento
// e as quatro coleções. Cada instância carrega os dados uma única vez.
type View struct {
	log    *zap.Logger
	loader Loader

	mu        sync.Mutex
	state     State
	mounted   bool
	closed    bool
	cancel    context.CancelFunc
	done      chan struct{}
	observers []func(Outcome)
}

// New cria a view no estado inicial: carregando, aba padrão da variante e listas vazias
func New(variant Variant, l Loader, log *zap.Logger) *View {
	if log == nil {
		log = zap.NewNop()
	}
	return &View{
		log:    log,
		loader: l,
		state: State{
			Variant:  variant,
			Tab:      variant.DefaultTab(),
			Loading:  true,
			Snapshot: predictions.Empty(),
		},
		done: make(chan struct{}),
	}
}

// OnSettle registra um observador chamado quando a carga termina (fora do lock).
// Deve ser chamado antes de Mount.
func (v *View) OnSettle(fn func(Outcome)) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.observers = append(v.observers, fn)
}

// Mount dispara a carga em background e retorna imediatamente
func (v *View) Mount(ctx context.Context) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return ErrClosed
	}
	if v.mounted {
		return ErrAlreadyMounted
	}
	v.mounted = true

	lctx, cancel := context.WithCancel(ctx)
	v.cancel = cancel
	go v.load(lctx, v.state.Variant)
	return nil
}

func (v *View) load(ctx context.Context, variant Variant) {
	defer close(v.done)

	loadID := uuid.NewString()
	started := time.Now()
	snap, err := v.loader.Load(ctx)

	out := Outcome{
		LoadID:    loadID,
		Variant:   variant,
		StartedAt: started,
		Duration:  time.Since(started),
		Snapshot:  snap,
		Err:       err,
	}

	v.mu.Lock()
	if v.closed {
		v.mu.Unlock()
		v.log.Debug("descartando resultado após desmontagem", zap.String("load_id", loadID))
		return
	}
	v.state.Loading = false
	var pe *loader.PartialError
	switch {
	case err == nil:
		v.state.Snapshot = snap
		out.Applied = true
	case errors.As(err, &pe):
		v.state.Snapshot = snap
		out.Applied = true
		v.log.Warn("erro ao buscar dados (parcial)", zap.String("load_id", loadID), zap.Error(err))
	default:
		v.log.Error("erro ao buscar dados", zap.String("load_id", loadID), zap.Error(err))
	}
	observers := append([]func(Outcome){}, v.observers...)
	v.mu.Unlock()

	for _, fn := range observers {
		fn(out)
	}
}

// Wait bloqueia até a carga terminar (ou ser descartada) ou o contexto expirar
func (v *View) Wait(ctx context.Context) error {
	select {
	case <-v.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Done fecha quando a carga termina
func (v *View) Done() <-chan struct{} { return v.done }

// Select troca a aba ativa. Não faz I/O nem recarrega dados.
func (v *View) Select(tab Tab) error {
	v.mu.Lock()
	defer v.mu.Unlock()
	if !v.state.Variant.Has(tab) {
		return fmt.Errorf("%w: %q", ErrUnknownTab, tab)
	}
	v.state.Tab = tab
	return nil
}

// State retorna uma cópia do estado atual
func (v *View) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// Close desmonta a view: cancela a carga em andamento e descarta resultados tardios
func (v *View) Close() {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.closed {
		return
	}
	v.closed = true
	if v.cancel != nil {
		v.cancel()
	}
	if !v.mounted {
		close(v.done)
	}
}
