package render

import (
	"time"

	"github.com/radieske/football-predictions-view/internal/predictions-view/view"
	"github.com/radieske/football-predictions-view/pkg/contracts/predictions"
)

func ptr(v float64) *float64 { return &v }

func loadedState(tab view.Tab) view.State {
	return view.State{
		Variant: view.VariantFull,
		Tab:     tab,
		Snapshot: predictions.Snapshot{
			Games: []predictions.Game{
				{
					Competition: "Brasileirão",
					HomeTeam:    "Flamengo",
					AwayTeam:    "Palmeiras",
					Date:        predictions.Timestamp{Time: time.Date(2025, 8, 16, 19, 30, 0, 0, time.UTC)},
					Status:      predictions.StatusScheduled,
				},
				{
					Competition: "Premier League",
					HomeTeam:    "Arsenal",
					AwayTeam:    "Chelsea",
					Date:        predictions.Timestamp{Raw: "invalid"},
					Status:      predictions.StatusLive,
				},
			},
			StatPredictions: []predictions.StatPrediction{
				{Game: "Flamengo vs Palmeiras", League: "Brasileirão", Prediction: "Vitória do Flamengo", Probability: 0.456, Confidence: "Média", ExpectedGoals: ptr(2.7)},
				{Game: "Arsenal vs Chelsea", Prediction: "Over 2.5", Probability: 0.61, ExpectedGoals: ptr(0)},
			},
			NeuralPredictions: []predictions.NeuralPrediction{
				{
					Match:      "Real Madrid vs Barcelona",
					Confidence: "Alta",
					BestBet:    predictions.BestBet{Label: "Casa", Probability: 0.52},
					Prediction: predictions.Probabilities{HomeWin: 0.52, Draw: 0.25, AwayWin: 0.23, Over25: 0.68},
					ModelsUsed: []string{"statistical", "neural_network", "random_forest"},
				},
			},
			BestCombo: &predictions.BestCombo{
				Games: []predictions.ComboLeg{
					{Match: "Flamengo vs Palmeiras", Bet: "Casa", Odds: 1.85, Probability: 0.6},
					{Match: "Real Madrid vs Barcelona", Bet: "Over 2.5", Odds: 1.7, Probability: 0.68},
				},
				TotalOdds:      3.145,
				ExpectedReturn: "214.5%",
				Confidence:     "Média",
				RiskLevel:      "Médio",
			},
		},
	}
}

func emptyState(tab view.Tab) view.State {
	return view.State{Variant: view.VariantFull, Tab: tab, Snapshot: predictions.Empty()}
}
