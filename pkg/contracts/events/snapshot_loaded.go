package events

import (
	"time"

	"github.com/radieske/football-predictions-view/pkg/contracts/predictions"
)

// Evento publicado no tópico "predictions_snapshots" quando uma carga da view termina com dados
type SnapshotLoaded struct {
	LoadID     string    `json:"load_id"`
	Variant    string    `json:"variant"` // "full" | "light"
	LoadedAt   time.Time `json:"loaded_at"`
	DurationMs int64     `json:"duration_ms"`
	Partial    bool      `json:"partial"` // true quando algum endpoint falhou em collect-all

	Games             int `json:"games"`
	StatPredictions   int `json:"stat_predictions"`
	NeuralPredictions int `json:"neural_predictions"`
	ComboLegs         int `json:"combo_legs"`

	Snapshot predictions.Snapshot `json:"snapshot"`
}

// NewSnapshotLoaded preenche os contadores a partir do snapshot
func NewSnapshotLoaded(loadID, variant string, loadedAt time.Time, d time.Duration, partial bool, s predictions.Snapshot) SnapshotLoaded {
	return SnapshotLoaded{
		LoadID:            loadID,
		Variant:           variant,
		LoadedAt:          loadedAt,
		DurationMs:        d.Milliseconds(),
		Partial:           partial,
		Games:             len(s.Games),
		StatPredictions:   len(s.StatPredictions),
		NeuralPredictions: len(s.NeuralPredictions),
		ComboLegs:         s.ComboLegs(),
		Snapshot:          s,
	}
}
