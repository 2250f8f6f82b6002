package view

import (
	"errors"
	"fmt"
)

// ErrUnknownTab indica uma aba fora do conjunto da variante
var ErrUnknownTab = errors.New("unknown tab")

// Tab identifica o painel ativo
type Tab string

const (
	TabGames  Tab = "games"
	TabNeural Tab = "neural"
	TabStats  Tab = "stats"
	TabCombo  Tab = "combo"
)

// Label é o texto do botão da aba
func (t Tab) Label() string {
	switch t {
	case TabGames:
		return "🏆 Jogos de Hoje"
	case TabNeural:
		return "🧠 Previsões IA (Ensemble)"
	case TabStats:
		return "📊 Análise Estatística"
	case TabCombo:
		return "🎯 Melhor Combinação"
	default:
		return string(t)
	}
}

// Variant define o conjunto de abas e quais endpoints são buscados
type Variant string

const (
	VariantFull  Variant = "full"  // quatro abas, abre em "games"
	VariantLight Variant = "light" // sem jogos do dia, abre em "neural"
)

// ParseVariant valida a variante vinda da configuração; vazio vira full
func ParseVariant(s string) (Variant, error) {
	switch Variant(s) {
	case "", VariantFull:
		return VariantFull, nil
	case VariantLight:
		return VariantLight, nil
	default:
		return "", fmt.Errorf("unknown variant %q", s)
	}
}

// Tabs retorna as abas da variante na ordem de exibição
func (v Variant) Tabs() []Tab {
	if v == VariantLight {
		return []Tab{TabNeural, TabStats, TabCombo}
	}
	return []Tab{TabGames, TabNeural, TabStats, TabCombo}
}

// DefaultTab é a aba ativa ao montar a view
func (v Variant) DefaultTab() Tab {
	if v == VariantLight {
		return TabNeural
	}
	return TabGames
}

// IncludesGames indica se a variante busca /games
func (v Variant) IncludesGames() bool { return v != VariantLight }

// Has indica se a aba pertence à variante
func (v Variant) Has(t Tab) bool {
	for _, tab := range v.Tabs() {
		if tab == t {
			return true
		}
	}
	return false
}
