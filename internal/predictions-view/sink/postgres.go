package sink

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/radieske/football-predictions-view/internal/predictions-view/view"
)

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// PostgresJournal registra toda carga concluída (sucesso, parcial ou falha) na tabela view_loads
type PostgresJournal struct {
	DB   execer
	Mode string // modo de junção configurado
}

func NewPostgresJournal(db execer, mode string) *PostgresJournal {
	return &PostgresJournal{DB: db, Mode: mode}
}

func (j *PostgresJournal) Name() string { return "postgres" }

// EnsureSchema cria a tabela se ainda não existir
func (j *PostgresJournal) EnsureSchema(ctx context.Context) error {
	const q = `
		CREATE TABLE IF NOT EXISTS view_loads (
		  load_id            TEXT PRIMARY KEY,
		  variant            TEXT NOT NULL,
		  join_mode          TEXT NOT NULL,
		  started_at         TIMESTAMPTZ NOT NULL,
		  duration_ms        BIGINT NOT NULL,
		  ok                 BOOLEAN NOT NULL,
		  partial            BOOLEAN NOT NULL,
		  error              TEXT,
		  games              INT NOT NULL,
		  stat_predictions   INT NOT NULL,
		  neural_predictions INT NOT NULL,
		  combo_legs         INT NOT NULL
		)
	`
	if _, err := j.DB.ExecContext(ctx, q); err != nil {
		return fmt.Errorf("create view_loads: %w", err)
	}
	return nil
}

func (j *PostgresJournal) Publish(ctx context.Context, out view.Outcome) error {
	const q = `
		INSERT INTO view_loads
		  (load_id, variant, join_mode, started_at, duration_ms, ok, partial, error,
		   games, stat_predictions, neural_predictions, combo_legs)
		VALUES
		  ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
		ON CONFLICT (load_id) DO NOTHING
	`
	var errText sql.NullString
	if out.Err != nil {
		errText = sql.NullString{String: out.Err.Error(), Valid: true}
	}
	s := out.Snapshot
	_, err := j.DB.ExecContext(ctx, q,
		out.LoadID, string(out.Variant), j.Mode, out.StartedAt, out.Duration.Milliseconds(),
		out.Applied, out.Partial(), errText,
		len(s.Games), len(s.StatPredictions), len(s.NeuralPredictions), s.ComboLegs(),
	)
	if err != nil {
		return fmt.Errorf("insert view_loads: %w", err)
	}
	return nil
}
