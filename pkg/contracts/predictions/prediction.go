package predictions

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Rótulos de confiança produzidos pelo serviço de previsões
const (
	ConfidenceVeryHigh = "Muito Alta"
	ConfidenceHigh     = "Alta"
	ConfidenceMedium   = "Média"
	ConfidenceLow      = "Baixa"
)

// StatPrediction representa uma previsão da análise estatística
type StatPrediction struct {
	Game          string   `json:"game"`
	League        string   `json:"league,omitempty"`
	Prediction    string   `json:"prediction"`
	Probability   float64  `json:"probability"`
	Confidence    string   `json:"confidence,omitempty"`
	ExpectedGoals *float64 `json:"expected_goals,omitempty"`

	// probabilidades brutas, não exibidas
	HomeWin *float64 `json:"home_win,omitempty"`
	Draw    *float64 `json:"draw,omitempty"`
	AwayWin *float64 `json:"away_win,omitempty"`
	Over25  *float64 `json:"over_2_5,omitempty"`
}

// PredictionsResponse é o corpo de GET /predictions
type PredictionsResponse struct {
	Predictions []StatPrediction `json:"predictions"`
}

// Probabilities agrupa as probabilidades do ensemble para uma partida
type Probabilities struct {
	HomeWin float64 `json:"home_win_prob"`
	Draw    float64 `json:"draw_prob"`
	AwayWin float64 `json:"away_win_prob"`
	Over25  float64 `json:"over_2_5_prob"`
}

// BestBet é a melhor aposta do ensemble. No JSON vem como tupla [rótulo, probabilidade].
type BestBet struct {
	Label       string
	Probability float64
}

func (b *BestBet) UnmarshalJSON(data []byte) error {
	*b = BestBet{}
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil
	}

	var parts []json.RawMessage
	if err := json.Unmarshal(data, &parts); err != nil {
		return fmt.Errorf("best_bet: expected [label, probability]: %w", err)
	}
	if len(parts) > 0 {
		_ = json.Unmarshal(parts[0], &b.Label)
	}
	if len(parts) > 1 {
		_ = json.Unmarshal(parts[1], &b.Probability)
	}
	return nil
}

func (b BestBet) MarshalJSON() ([]byte, error) {
	return json.Marshal([]any{b.Label, b.Probability})
}

// NeuralPrediction representa uma previsão do ensemble de modelos
type NeuralPrediction struct {
	Match      string        `json:"match"`
	Confidence string        `json:"confidence"`
	BestBet    BestBet       `json:"best_bet"`
	Prediction Probabilities `json:"prediction"`
	ModelsUsed []string      `json:"models_used"`
}

// NeuralResponse é o corpo de GET /predictions/neural
type NeuralResponse struct {
	Predictions []NeuralPrediction `json:"predictions"`
}
