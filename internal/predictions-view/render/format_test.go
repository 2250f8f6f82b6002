package render

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/radieske/football-predictions-view/pkg/contracts/predictions"
)

func TestPercent(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want string
	}{
		{name: "one decimal", in: 0.456, want: "45.6%"},
		{name: "certain", in: 1.0, want: "100.0%"},
		{name: "zero", in: 0, want: "0.0%"},
		{name: "rounds nearest", in: 0.6789, want: "67.9%"},
		{name: "exact tie rounds up", in: 0.0025, want: "0.3%"},
		{name: "exact tie above one", in: 0.0125, want: "1.3%"},
		{name: "below tie", in: 0.0024, want: "0.2%"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Percent(tt.in))
		})
	}
}

func TestClock(t *testing.T) {
	sp, err := time.LoadLocation("America/Sao_Paulo")
	if err != nil {
		t.Skip("tzdata indisponível")
	}
	ts := predictions.Timestamp{Time: time.Date(2025, 8, 16, 19, 30, 0, 0, time.UTC)}

	assert.Equal(t, "19:30", Clock(ts, nil))
	assert.Equal(t, "16:30", Clock(ts, sp))
	assert.Equal(t, "--:--", Clock(predictions.Timestamp{Raw: "amanhã"}, sp))
}

func TestStatusLabel(t *testing.T) {
	assert.Equal(t, "Agendado", StatusLabel("SCHEDULED"))
	assert.Equal(t, "Ao Vivo", StatusLabel("LIVE"))
	assert.Equal(t, "FINISHED", StatusLabel("FINISHED"))
}

func TestNumber(t *testing.T) {
	assert.Equal(t, "3.45", Number(3.45))
	assert.Equal(t, "2", Number(2))
}
