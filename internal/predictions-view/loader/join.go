package loader

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// Task é uma unidade de trabalho executada em paralelo por um Join
type Task func(ctx context.Context) error

// Join executa todas as tasks concorrentemente e devolve o erro consolidado
type Join func(ctx context.Context, tasks ...Task) error

// FailFast roda as tasks em paralelo e devolve o primeiro erro.
// O primeiro erro cancela o contexto compartilhado; o chamador deve descartar
// todos os resultados, inclusive os das tasks que terminaram com sucesso.
func FailFast(ctx context.Context, tasks ...Task) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, task := range tasks {
		g.Go(func() error { return task(gctx) })
	}
	return g.Wait()
}

// CollectAll roda as tasks em paralelo, espera todas terminarem e devolve
// todos os erros juntos (errors.Join). Nenhuma falha cancela as demais.
func CollectAll(ctx context.Context, tasks ...Task) error {
	errs := make([]error, len(tasks))
	var g errgroup.Group
	for i, task := range tasks {
		g.Go(func() error {
			errs[i] = task(ctx)
			return nil
		})
	}
	_ = g.Wait()
	return errors.Join(errs...)
}

// JoinMode define a semântica da junção das requisições da carga
type JoinMode string

const (
	JoinFailFast   JoinMode = "fail-fast"   // tudo ou nada
	JoinCollectAll JoinMode = "collect-all" // falha isolada por endpoint
)

// ParseJoinMode valida o modo vindo da configuração; vazio vira fail-fast
func ParseJoinMode(s string) (JoinMode, error) {
	switch JoinMode(s) {
	case "", JoinFailFast:
		return JoinFailFast, nil
	case JoinCollectAll:
		return JoinCollectAll, nil
	default:
		return "", fmt.Errorf("unknown join mode %q", s)
	}
}

func (m JoinMode) join() Join {
	if m == JoinCollectAll {
		return CollectAll
	}
	return FailFast
}
