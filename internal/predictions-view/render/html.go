package render

import (
	"bytes"
	"html/template"
	"io"
	"time"

	"github.com/radieske/football-predictions-view/internal/predictions-view/view"
	"github.com/radieske/football-predictions-view/pkg/contracts/predictions"
)

// HTMLOptions estende Options com o caminho do websocket de recarga (vazio = sem script)
type HTMLOptions struct {
	Options
	LiveReloadPath string
}

type tabLink struct {
	Tab    view.Tab
	Label  string
	Active bool
}

type pageData struct {
	view.State
	Tabs           []tabLink
	LiveReloadPath string
}

func funcs(loc *time.Location) template.FuncMap {
	return template.FuncMap{
		"percent":          Percent,
		"number":           Number,
		"statusLabel":      StatusLabel,
		"clock":            func(ts predictions.Timestamp) string { return Clock(ts, loc) },
		"confidence":       func(label string) string { return ConfidenceStyle(label).Classes },
		"status":           func(status string) string { return StatusStyle(status).Classes },
		"hasGoals":         hasExpectedGoals,
		"hasLegs":          hasLegs,
		"title":            func() string { return Title },
		"leagues":          func() string { return Leagues },
		"loadingMessage":   func() string { return LoadingMessage },
		"emptyGames":       func() string { return EmptyGames },
		"emptyGamesHint":   func() string { return EmptyGamesHint },
		"emptyNeural":      func() string { return EmptyNeural },
		"emptyStats":       func() string { return EmptyStats },
		"emptyCombo":       func() string { return EmptyCombo },
		"gamesHeading":     func() string { return GamesHeading },
		"neuralHeading":    func() string { return NeuralHeading },
		"neuralSubheading": func() string { return NeuralSubheading },
		"statsHeading":     func() string { return StatsHeading },
		"statsSubheading":  func() string { return StatsSubheading },
		"comboHeading":     func() string { return ComboHeading },
		"deref": func(v *float64) float64 {
			if v == nil {
				return 0
			}
			return *v
		},
	}
}

func newTemplate(loc *time.Location) *template.Template {
	return template.Must(template.New("page").Funcs(funcs(loc)).Parse(pageHTML + panelHTML))
}

// HTML escreve a página completa com abas e o painel ativo
func HTML(w io.Writer, st view.State, opts HTMLOptions) error {
	data := pageData{State: st, LiveReloadPath: opts.LiveReloadPath}
	for _, tab := range st.Variant.Tabs() {
		data.Tabs = append(data.Tabs, tabLink{Tab: tab, Label: tab.Label(), Active: tab == st.Tab})
	}
	return newTemplate(opts.Location).ExecuteTemplate(w, "page", data)
}

// PanelHTML devolve apenas o fragmento do painel ativo
func PanelHTML(st view.State, opts Options) (string, error) {
	var buf bytes.Buffer
	if err := newTemplate(opts.Location).ExecuteTemplate(&buf, "panel", st); err != nil {
		return "", err
	}
	return buf.String(), nil
}

const pageHTML = `<!doctype html>
<html lang="pt-BR">
<head>
  <meta charset="utf-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>{{title}}</title>
  <script src="https://cdn.tailwindcss.com"></script>
</head>
<body class="min-h-screen bg-gray-50">
{{- if .Loading}}
  <div class="min-h-screen bg-gray-50 flex items-center justify-center">
    <div class="text-center">
      <div class="animate-spin rounded-full h-12 w-12 border-b-2 border-blue-600 mx-auto"></div>
      <p class="mt-4 text-gray-600" id="loading">{{loadingMessage}}</p>
    </div>
  </div>
  {{- if .LiveReloadPath}}
  <script>
    (function () {
      var proto = location.protocol === "https:" ? "wss://" : "ws://";
      var ws = new WebSocket(proto + location.host + {{.LiveReloadPath}});
      ws.onmessage = function () { location.reload(); };
    })();
  </script>
  {{- end}}
{{- else}}
  <header class="bg-white shadow-sm border-b">
    <div class="max-w-7xl mx-auto px-4 py-6">
      <h1 class="text-3xl font-bold text-gray-900">{{title}}</h1>
      <p class="text-gray-600 mt-2">{{leagues}}</p>
    </div>
  </header>
  <div class="max-w-7xl mx-auto px-4 py-8">
    <div class="mb-8">
      <div class="border-b border-gray-200">
        <nav class="-mb-px flex space-x-8">
        {{- range .Tabs}}
          <a href="?tab={{.Tab}}" data-tab="{{.Tab}}" class="tab py-2 px-1 border-b-2 font-medium text-sm {{if .Active}}active border-blue-500 text-blue-600{{else}}border-transparent text-gray-500 hover:text-gray-700{{end}}">{{.Label}}</a>
        {{- end}}
        </nav>
      </div>
    </div>
    {{template "panel" .State}}
  </div>
{{- end}}
</body>
</html>
`

const panelHTML = `{{define "panel"}}
{{- if eq .Tab "games"}}
<section class="space-y-6" id="panel-games">
  <div class="bg-green-50 border border-green-200 rounded-lg p-4">
    <h3 class="font-semibold text-green-900 mb-2">{{gamesHeading}}</h3>
    <p class="text-green-700 text-sm">{{leagues}}</p>
  </div>
  {{- if .Games}}
  <div class="grid gap-4 md:grid-cols-2 lg:grid-cols-3">
    {{- range .Games}}
    <div class="game-card bg-white rounded-lg shadow-md p-4">
      <div class="text-center">
        <div class="competition text-xs text-gray-500 mb-2">{{.Competition}}</div>
        <div class="home font-semibold text-gray-900 mb-1">{{.HomeTeam}}</div>
        <div class="text-gray-600 text-sm mb-1">vs</div>
        <div class="away font-semibold text-gray-900 mb-2">{{.AwayTeam}}</div>
        <div class="time text-xs text-gray-500">{{clock .Date}}</div>
        <div class="status inline-block px-2 py-1 rounded text-xs mt-2 {{status .Status}}">{{statusLabel .Status}}</div>
      </div>
    </div>
    {{- end}}
  </div>
  {{- else}}
  <div class="empty-state text-center py-8">
    <p class="text-gray-600">{{emptyGames}}</p>
    <p class="text-sm text-gray-500 mt-2">{{emptyGamesHint}}</p>
  </div>
  {{- end}}
</section>
{{- else if eq .Tab "neural"}}
<section class="space-y-6" id="panel-neural">
  <div class="bg-blue-50 border border-blue-200 rounded-lg p-4">
    <h3 class="font-semibold text-blue-900 mb-2">{{neuralHeading}}</h3>
    <p class="text-blue-700 text-sm">{{neuralSubheading}}</p>
  </div>
  {{- if .NeuralPredictions}}
  <div class="grid gap-6 md:grid-cols-2">
    {{- range .NeuralPredictions}}
    <div class="neural-card bg-white rounded-lg shadow-md p-6">
      <div class="flex justify-between items-start mb-4">
        <h3 class="match text-lg font-semibold text-gray-900">{{.Match}}</h3>
        <span class="badge px-2 py-1 rounded-full text-xs font-medium {{confidence .Confidence}}">{{.Confidence}}</span>
      </div>
      <div class="space-y-3">
        <div class="bg-gray-50 rounded p-3">
          <p class="font-medium text-gray-900 mb-2">🎯 Melhor Aposta:</p>
          <p class="best-bet text-blue-600 font-semibold">{{.BestBet.Label}}</p>
          <p class="best-prob text-sm text-gray-600">Probabilidade: {{percent .BestBet.Probability}}</p>
        </div>
        <div class="grid grid-cols-2 gap-4 text-sm">
          <div>
            <p class="text-gray-600">Casa: {{percent .Prediction.HomeWin}}</p>
            <p class="text-gray-600">Empate: {{percent .Prediction.Draw}}</p>
            <p class="text-gray-600">Fora: {{percent .Prediction.AwayWin}}</p>
          </div>
          <div>
            <p class="text-gray-600">Over 2.5: {{percent .Prediction.Over25}}</p>
            <p class="models text-gray-600">Modelos: {{len .ModelsUsed}}</p>
          </div>
        </div>
      </div>
    </div>
    {{- end}}
  </div>
  {{- else}}
  <div class="empty-state text-center py-8"><p class="text-gray-600">{{emptyNeural}}</p></div>
  {{- end}}
</section>
{{- else if eq .Tab "stats"}}
<section class="space-y-6" id="panel-stats">
  <div class="bg-purple-50 border border-purple-200 rounded-lg p-4">
    <h3 class="font-semibold text-purple-900 mb-2">{{statsHeading}}</h3>
    <p class="text-purple-700 text-sm">{{statsSubheading}}</p>
  </div>
  {{- if .StatPredictions}}
  <div class="grid gap-6 md:grid-cols-2">
    {{- range .StatPredictions}}
    <div class="stat-card bg-white rounded-lg shadow-md p-6">
      <div class="flex justify-between items-start mb-4">
        <div>
          <h3 class="match text-lg font-semibold text-gray-900">{{.Game}}</h3>
          {{- if .League}}
          <p class="league text-sm text-gray-500">{{.League}}</p>
          {{- end}}
        </div>
        <span class="badge px-2 py-1 rounded-full text-xs font-medium {{confidence .Confidence}}">{{.Confidence}}</span>
      </div>
      <div class="space-y-3">
        <div class="bg-gray-50 rounded p-3">
          <p class="font-medium text-gray-900 mb-1">📈 Previsão:</p>
          <p class="prediction text-blue-600 font-semibold">{{.Prediction}}</p>
          <p class="probability text-sm text-gray-600">Probabilidade: {{percent .Probability}}</p>
        </div>
        {{- if hasGoals .}}
        <p class="expected-goals text-sm text-gray-600">Gols esperados: {{number (deref .ExpectedGoals)}}</p>
        {{- end}}
      </div>
    </div>
    {{- end}}
  </div>
  {{- else}}
  <div class="empty-state text-center py-8"><p class="text-gray-600">{{emptyStats}}</p></div>
  {{- end}}
</section>
{{- else if eq .Tab "combo"}}
<section class="bg-white rounded-lg shadow-md p-6" id="panel-combo">
  <h3 class="text-xl font-semibold text-gray-900 mb-4">{{comboHeading}}</h3>
  {{- if hasLegs .BestCombo}}
  <div class="space-y-4">
    <div class="grid grid-cols-1 md:grid-cols-3 gap-4 mb-6">
      <div class="bg-green-50 rounded p-4 text-center">
        <p class="total-odds text-green-600 font-semibold text-lg">{{number .BestCombo.TotalOdds}}</p>
        <p class="text-green-700 text-sm">Odds Total</p>
      </div>
      <div class="bg-blue-50 rounded p-4 text-center">
        <p class="expected-return text-blue-600 font-semibold text-lg">{{.BestCombo.ExpectedReturn}}</p>
        <p class="text-blue-700 text-sm">Retorno Esperado</p>
      </div>
      <div class="bg-purple-50 rounded p-4 text-center">
        <p class="combo-confidence text-purple-600 font-semibold text-lg">{{.BestCombo.Confidence}}</p>
        <p class="text-purple-700 text-sm">Confiança</p>
      </div>
    </div>
    {{- if .BestCombo.RiskLevel}}
    <p class="risk text-sm text-gray-600">Risco: {{.BestCombo.RiskLevel}}</p>
    {{- end}}
    <div class="space-y-3">
      {{- range .BestCombo.Games}}
      <div class="combo-leg border rounded p-4">
        <div class="flex justify-between items-center">
          <div>
            <p class="match font-medium">{{.Match}}</p>
            <p class="bet text-blue-600">{{.Bet}}</p>
          </div>
          <div class="text-right">
            <p class="odds font-semibold">{{number .Odds}}</p>
            <p class="probability text-sm text-gray-600">{{percent .Probability}}</p>
          </div>
        </div>
      </div>
      {{- end}}
    </div>
  </div>
  {{- else}}
  <p class="empty-state text-gray-600">{{emptyCombo}}</p>
  {{- end}}
</section>
{{- end}}
{{end}}`
