package predictions

// Snapshot é o resultado consolidado de uma carga: as quatro coleções exibidas pela view.
// BestCombo é nil enquanto nada foi carregado.
type Snapshot struct {
	Games             []Game             `json:"games"`
	StatPredictions   []StatPrediction   `json:"predictions"`
	NeuralPredictions []NeuralPrediction `json:"neural_predictions"`
	BestCombo         *BestCombo         `json:"best_combo"`
}

// Empty retorna um snapshot com todas as listas vazias (não nil)
func Empty() Snapshot {
	return Snapshot{
		Games:             []Game{},
		StatPredictions:   []StatPrediction{},
		NeuralPredictions: []NeuralPrediction{},
	}
}

// ComboLegs retorna a quantidade de pernas da combinação
func (s Snapshot) ComboLegs() int {
	if s.BestCombo == nil {
		return 0
	}
	return len(s.BestCombo.Games)
}
