package ws

const (
	TypeLoaded = "loaded"
	TypeFailed = "failed"
	TypePing   = "ping"
	TypePong   = "pong"
)

// ClientMsg representa uma mensagem recebida do navegador (apenas ping)
type ClientMsg struct {
	Type string `json:"type"`
}

// Message avisa a página que a carga terminou e ela deve recarregar
type Message struct {
	Type   string `json:"type"` // loaded | failed
	LoadID string `json:"loadId"`
}
