package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/radieske/football-predictions-view/internal/predictions-view/view"
)

func renderDoc(t *testing.T, st view.State, opts HTMLOptions) *goquery.Document {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, HTML(&buf, st, opts))
	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	return doc
}

func TestHTML_Loading(t *testing.T) {
	st := emptyState(view.TabGames)
	st.Loading = true

	doc := renderDoc(t, st, HTMLOptions{LiveReloadPath: "/ws"})
	assert.Equal(t, LoadingMessage, doc.Find("#loading").Text())
	assert.Equal(t, 0, doc.Find("a.tab").Length())
	assert.Contains(t, doc.Find("script").Last().Text(), "WebSocket")
}

func TestHTML_LoadingWithoutLiveReload(t *testing.T) {
	st := emptyState(view.TabGames)
	st.Loading = true

	doc := renderDoc(t, st, HTMLOptions{})
	// só o script do tailwind
	assert.Equal(t, 1, doc.Find("script").Length())
}

func TestHTML_Tabs(t *testing.T) {
	doc := renderDoc(t, loadedState(view.TabStats), HTMLOptions{})

	tabs := doc.Find("a.tab")
	require.Equal(t, 4, tabs.Length())
	active := doc.Find("a.tab.active")
	assert.Equal(t, 1, active.Length())
	assert.Equal(t, "stats", active.AttrOr("data-tab", ""))
	assert.Equal(t, "?tab=stats", active.AttrOr("href", ""))
}

func TestHTML_LightVariantTabs(t *testing.T) {
	st := loadedState(view.TabNeural)
	st.Variant = view.VariantLight

	doc := renderDoc(t, st, HTMLOptions{})
	assert.Equal(t, 3, doc.Find("a.tab").Length())
	assert.Equal(t, 0, doc.Find(`a.tab[data-tab="games"]`).Length())
}

func TestHTML_Games(t *testing.T) {
	doc := renderDoc(t, loadedState(view.TabGames), HTMLOptions{})

	cards := doc.Find(".game-card")
	require.Equal(t, 2, cards.Length())
	first := cards.First()
	assert.Equal(t, "Flamengo", first.Find(".home").Text())
	assert.Equal(t, "19:30", first.Find(".time").Text())
	assert.Equal(t, "Agendado", first.Find(".status").Text())
	assert.True(t, first.Find(".status").HasClass("bg-blue-100"))
	assert.True(t, cards.Last().Find(".status").HasClass("bg-red-100"))
	assert.Equal(t, "--:--", cards.Last().Find(".time").Text())
}

func TestHTML_EmptyGames(t *testing.T) {
	doc := renderDoc(t, emptyState(view.TabGames), HTMLOptions{})

	assert.Equal(t, 0, doc.Find(".game-card").Length())
	assert.Contains(t, doc.Find(".empty-state").Text(), EmptyGames)
	assert.Contains(t, doc.Find(".empty-state").Text(), EmptyGamesHint)
}

func TestHTML_Neural(t *testing.T) {
	doc := renderDoc(t, loadedState(view.TabNeural), HTMLOptions{})

	card := doc.Find(".neural-card")
	require.Equal(t, 1, card.Length())
	assert.Equal(t, "Casa", card.Find(".best-bet").Text())
	assert.Equal(t, "Probabilidade: 52.0%", card.Find(".best-prob").Text())
	assert.Equal(t, "Modelos: 3", card.Find(".models").Text())
	assert.True(t, card.Find(".badge").HasClass("text-green-600"))
}

func TestHTML_Stats(t *testing.T) {
	doc := renderDoc(t, loadedState(view.TabStats), HTMLOptions{})

	cards := doc.Find(".stat-card")
	require.Equal(t, 2, cards.Length())
	assert.Equal(t, "Probabilidade: 45.6%", cards.First().Find(".probability").Text())
	assert.True(t, cards.First().Find(".badge").HasClass("bg-yellow-100"))
	assert.Equal(t, 1, doc.Find(".expected-goals").Length())

	// sem confiança o badge continua lá, cinza e vazio
	missing := cards.Last().Find(".badge")
	require.Equal(t, 1, missing.Length())
	assert.True(t, missing.HasClass("bg-gray-100"))
	assert.Empty(t, missing.Text())
}

func TestHTML_EmptyPanels(t *testing.T) {
	tests := []struct {
		tab     view.Tab
		heading string
		want    string
	}{
		{view.TabGames, GamesHeading, EmptyGames},
		{view.TabNeural, NeuralHeading, EmptyNeural},
		{view.TabStats, StatsHeading, EmptyStats},
		{view.TabCombo, ComboHeading, EmptyCombo},
	}
	for _, tt := range tests {
		t.Run(string(tt.tab), func(t *testing.T) {
			doc := renderDoc(t, emptyState(tt.tab), HTMLOptions{})
			panel := doc.Find("#panel-" + string(tt.tab))
			require.Equal(t, 1, panel.Length())
			assert.Equal(t, tt.heading, panel.Find("h3").First().Text())
			assert.Contains(t, panel.Find(".empty-state").Text(), tt.want)
		})
	}
}

func TestHTML_HeaderUsesMessages(t *testing.T) {
	doc := renderDoc(t, emptyState(view.TabGames), HTMLOptions{})
	assert.Equal(t, Title, doc.Find("title").Text())
	assert.Equal(t, Title, doc.Find("h1").Text())
}

func TestHTML_Combo(t *testing.T) {
	doc := renderDoc(t, loadedState(view.TabCombo), HTMLOptions{})

	assert.Equal(t, 2, doc.Find(".combo-leg").Length())
	assert.Equal(t, "3.145", doc.Find(".total-odds").Text())
	assert.Equal(t, "214.5%", doc.Find(".expected-return").Text())
	assert.Equal(t, 0, doc.Find(".empty-state").Length())
}

func TestHTML_NilCombo(t *testing.T) {
	doc := renderDoc(t, emptyState(view.TabCombo), HTMLOptions{})

	assert.Equal(t, 0, doc.Find(".combo-leg").Length())
	assert.Equal(t, EmptyCombo, doc.Find(".empty-state").Text())
}

func TestHTML_EscapesPayload(t *testing.T) {
	st := loadedState(view.TabGames)
	st.Games[0].HomeTeam = "<script>alert(1)</script>"

	var buf bytes.Buffer
	require.NoError(t, HTML(&buf, st, HTMLOptions{}))
	assert.False(t, strings.Contains(buf.String(), "<script>alert(1)</script>"))
}

func TestPanelHTML(t *testing.T) {
	panel, err := PanelHTML(loadedState(view.TabCombo), Options{})
	require.NoError(t, err)
	assert.Contains(t, panel, `id="panel-combo"`)
	assert.NotContains(t, panel, "<html")
}
