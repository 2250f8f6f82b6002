package predictions

// ComboLeg representa uma perna da combinação (uma aposta em uma partida)
type ComboLeg struct {
	Match       string  `json:"match"`
	Bet         string  `json:"bet"`
	Odds        float64 `json:"odds"`
	Probability float64 `json:"probability"`
}

// BestCombo é o corpo de GET /best-combo: a melhor combinação do dia
type BestCombo struct {
	Games               []ComboLeg `json:"games"`
	TotalOdds           float64    `json:"total_odds"`
	ExpectedReturn      string     `json:"expected_return,omitempty"`
	Confidence          string     `json:"confidence,omitempty"`
	CombinedProbability *float64   `json:"combined_probability,omitempty"`
	RiskLevel           string     `json:"risk_level,omitempty"`
	Message             string     `json:"message,omitempty"`
}
