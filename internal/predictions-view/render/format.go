package render

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/radieske/football-predictions-view/pkg/contracts/predictions"
)

// Percent converte probabilidade 0-1 em porcentagem com uma casa: 0.456 -> "45.6%".
// Empate exato na segunda casa (0.25, 1.25) sobe, como toFixed(1); o resto segue o fmt.
func Percent(p float64) string {
	v := p * 100
	if q := v * 4; q == math.Trunc(q) && math.Mod(q, 2) != 0 {
		v = math.Ceil(v*10) / 10
	}
	return fmt.Sprintf("%.1f%%", v)
}

// Clock formata o horário da partida em HH:MM (24h) no fuso informado.
// Datas não interpretadas viram "--:--".
func Clock(ts predictions.Timestamp, loc *time.Location) string {
	if !ts.Valid() {
		return "--:--"
	}
	if loc == nil {
		loc = time.UTC
	}
	return ts.Time.In(loc).Format("15:04")
}

// StatusLabel traduz o status da partida; códigos desconhecidos passam direto
func StatusLabel(status string) string {
	switch status {
	case predictions.StatusScheduled:
		return "Agendado"
	case predictions.StatusLive:
		return "Ao Vivo"
	default:
		return status
	}
}

// Number formata odds e gols esperados com a menor representação decimal
func Number(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
