package predictions

// Status conhecidos de uma partida; outros valores são exibidos como vieram
const (
	StatusScheduled = "SCHEDULED"
	StatusLive      = "LIVE"
)

// Game representa um jogo do dia nas ligas acompanhadas
type Game struct {
	Competition string    `json:"competition"`
	HomeTeam    string    `json:"homeTeam"`
	AwayTeam    string    `json:"awayTeam"`
	Date        Timestamp `json:"date"`
	Status      string    `json:"status"`
}

// GamesResponse é o corpo de GET /games
type GamesResponse struct {
	Games []Game `json:"games"`
}
