package httpapi

import (
	"github.com/radieske/football-predictions-view/internal/predictions-view/view"
	"github.com/radieske/football-predictions-view/pkg/contracts/predictions"
)

// StateResponse é o corpo de GET /api/state
type StateResponse struct {
	Variant string               `json:"variant"`
	Tab     string               `json:"tab"`
	Tabs    []string             `json:"tabs"`
	Loading bool                 `json:"loading"`
	Data    predictions.Snapshot `json:"data"`
}

func newStateResponse(st view.State) StateResponse {
	tabs := make([]string, 0, 4)
	for _, t := range st.Variant.Tabs() {
		tabs = append(tabs, string(t))
	}
	return StateResponse{
		Variant: string(st.Variant),
		Tab:     string(st.Tab),
		Tabs:    tabs,
		Loading: st.Loading,
		Data:    st.Snapshot,
	}
}
