package render

import (
	"fmt"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"

	"github.com/radieske/football-predictions-view/internal/predictions-view/view"
)

// Markdown gera o painel ativo em markdown a partir do mesmo fragmento HTML da página
func Markdown(st view.State, opts Options) (string, error) {
	if st.Loading {
		return "# " + Title + "\n\n" + LoadingMessage + "\n", nil
	}

	panel, err := PanelHTML(st, opts)
	if err != nil {
		return "", fmt.Errorf("render panel: %w", err)
	}
	md, err := htmltomarkdown.ConvertString(panel)
	if err != nil {
		return "", fmt.Errorf("convert panel to markdown: %w", err)
	}

	var b strings.Builder
	b.WriteString("# " + Title + "\n\n")
	b.WriteString(Leagues + "\n\n")
	for _, tab := range st.Variant.Tabs() {
		if tab == st.Tab {
			b.WriteString("**" + tab.Label() + "** ")
		} else {
			b.WriteString(tab.Label() + " ")
		}
	}
	b.WriteString("\n\n")
	b.WriteString(strings.TrimSpace(md))
	b.WriteString("\n")
	return b.String(), nil
}
