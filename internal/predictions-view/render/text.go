package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/radieske/football-predictions-view/internal/predictions-view/view"
	"github.com/radieske/football-predictions-view/pkg/contracts/predictions"
)

// Options controla a apresentação
type Options struct {
	Location *time.Location // fuso dos horários; nil = UTC
	Color    bool           // badges com cores ANSI (somente texto)
}

// textWriter guarda o primeiro erro de escrita
type textWriter struct {
	w   io.Writer
	err error
}

func (t *textWriter) line(format string, args ...any) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.w, format+"\n", args...)
}

// Text escreve o estado da view como texto para terminal: cabeçalho, abas e o painel ativo
func Text(w io.Writer, st view.State, opts Options) error {
	tw := &textWriter{w: w}

	tw.line("%s", Title)
	tw.line("%s", Leagues)
	tw.line("")

	if st.Loading {
		tw.line("%s", LoadingMessage)
		return tw.err
	}

	tabs := make([]string, 0, 4)
	for _, tab := range st.Variant.Tabs() {
		if tab == st.Tab {
			tabs = append(tabs, "["+tab.Label()+"]")
		} else {
			tabs = append(tabs, " "+tab.Label()+" ")
		}
	}
	tw.line("%s", strings.Join(tabs, "  "))
	tw.line("")

	textPanel(tw, st, opts)
	return tw.err
}

func textPanel(tw *textWriter, st view.State, opts Options) {
	switch st.Tab {
	case view.TabGames:
		textGames(tw, st.Games, opts)
	case view.TabNeural:
		textNeural(tw, st.NeuralPredictions, opts)
	case view.TabStats:
		textStats(tw, st.StatPredictions, opts)
	case view.TabCombo:
		textCombo(tw, st.BestCombo, opts)
	}
}

func badge(label string, st Style, color bool) string {
	return paint("["+label+"]", st, color)
}

func textGames(tw *textWriter, games []predictions.Game, opts Options) {
	tw.line("%s", GamesHeading)
	tw.line("%s", Leagues)
	tw.line("")

	if len(games) == 0 {
		tw.line("%s", EmptyGames)
		tw.line("%s", EmptyGamesHint)
		return
	}
	for _, g := range games {
		tw.line("%s", g.Competition)
		tw.line("  %s vs %s", g.HomeTeam, g.AwayTeam)
		tw.line("  %s  %s", Clock(g.Date, opts.Location), badge(StatusLabel(g.Status), StatusStyle(g.Status), opts.Color))
		tw.line("")
	}
}

func textNeural(tw *textWriter, preds []predictions.NeuralPrediction, opts Options) {
	tw.line("%s", NeuralHeading)
	tw.line("%s", NeuralSubheading)
	tw.line("")

	if len(preds) == 0 {
		tw.line("%s", EmptyNeural)
		return
	}
	for _, p := range preds {
		tw.line("%s  %s", p.Match, badge(p.Confidence, ConfidenceStyle(p.Confidence), opts.Color))
		tw.line("  🎯 Melhor Aposta: %s", p.BestBet.Label)
		tw.line("  Probabilidade: %s", Percent(p.BestBet.Probability))
		tw.line("  Casa: %s  Empate: %s  Fora: %s",
			Percent(p.Prediction.HomeWin), Percent(p.Prediction.Draw), Percent(p.Prediction.AwayWin))
		tw.line("  Over 2.5: %s  Modelos: %d", Percent(p.Prediction.Over25), len(p.ModelsUsed))
		tw.line("")
	}
}

func textStats(tw *textWriter, preds []predictions.StatPrediction, opts Options) {
	tw.line("%s", StatsHeading)
	tw.line("%s", StatsSubheading)
	tw.line("")

	if len(preds) == 0 {
		tw.line("%s", EmptyStats)
		return
	}
	for _, p := range preds {
		header := p.Game
		if p.Confidence != "" {
			header += "  " + badge(p.Confidence, ConfidenceStyle(p.Confidence), opts.Color)
		}
		tw.line("%s", header)
		if p.League != "" {
			tw.line("  %s", p.League)
		}
		tw.line("  📈 Previsão: %s", p.Prediction)
		tw.line("  Probabilidade: %s", Percent(p.Probability))
		if hasExpectedGoals(p) {
			tw.line("  Gols esperados: %s", Number(*p.ExpectedGoals))
		}
		tw.line("")
	}
}

func textCombo(tw *textWriter, combo *predictions.BestCombo, opts Options) {
	tw.line("%s", ComboHeading)
	tw.line("")

	if !hasLegs(combo) {
		tw.line("%s", EmptyCombo)
		return
	}
	tw.line("Odds Total: %s", Number(combo.TotalOdds))
	tw.line("Retorno Esperado: %s", combo.ExpectedReturn)
	tw.line("Confiança: %s", badge(combo.Confidence, ConfidenceStyle(combo.Confidence), opts.Color))
	if combo.RiskLevel != "" {
		tw.line("Risco: %s", combo.RiskLevel)
	}
	tw.line("")
	for _, leg := range combo.Games {
		tw.line("%s", leg.Match)
		tw.line("  %s  @ %s  (%s)", leg.Bet, Number(leg.Odds), Percent(leg.Probability))
	}
}

// gols esperados só aparecem quando vierem e forem diferentes de zero
func hasExpectedGoals(p predictions.StatPrediction) bool {
	return p.ExpectedGoals != nil && *p.ExpectedGoals != 0
}

func hasLegs(combo *predictions.BestCombo) bool {
	return combo != nil && len(combo.Games) > 0
}
