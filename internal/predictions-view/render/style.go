package render

import "github.com/radieske/football-predictions-view/pkg/contracts/predictions"

// Color é a cor lógica de um badge
type Color string

const (
	Green  Color = "green"
	Yellow Color = "yellow"
	Red    Color = "red"
	Blue   Color = "blue"
	Gray   Color = "gray"
)

// Style é o par de classes (texto + fundo) de um badge
type Style struct {
	Color   Color
	Classes string
}

var (
	confidenceGreen  = Style{Color: Green, Classes: "text-green-600 bg-green-100"}
	confidenceYellow = Style{Color: Yellow, Classes: "text-yellow-600 bg-yellow-100"}
	confidenceRed    = Style{Color: Red, Classes: "text-red-600 bg-red-100"}
	confidenceGray   = Style{Color: Gray, Classes: "text-gray-600 bg-gray-100"}
)

// ConfidenceStyle mapeia o rótulo de confiança para o estilo do badge.
// Total: qualquer rótulo desconhecido vira cinza.
func ConfidenceStyle(label string) Style {
	switch label {
	case predictions.ConfidenceVeryHigh, predictions.ConfidenceHigh:
		return confidenceGreen
	case predictions.ConfidenceMedium:
		return confidenceYellow
	case predictions.ConfidenceLow:
		return confidenceRed
	default:
		return confidenceGray
	}
}

// StatusStyle mapeia o status da partida para o estilo do badge
func StatusStyle(status string) Style {
	switch status {
	case predictions.StatusScheduled:
		return Style{Color: Blue, Classes: "bg-blue-100 text-blue-800"}
	case predictions.StatusLive:
		return Style{Color: Red, Classes: "bg-red-100 text-red-800"}
	default:
		return Style{Color: Gray, Classes: "bg-gray-100 text-gray-800"}
	}
}

var ansi = map[Color]string{
	Green:  "\033[32m",
	Yellow: "\033[33m",
	Red:    "\033[31m",
	Blue:   "\033[34m",
	Gray:   "\033[90m",
}

const ansiReset = "\033[0m"

// paint envolve s com a cor ANSI do estilo
func paint(s string, st Style, enabled bool) string {
	if !enabled {
		return s
	}
	return ansi[st.Color] + s + ansiReset
}
