package ws

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// client serializa as escritas numa conexão (gorilla aceita um único escritor)
type client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *client) write(b []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteMessage(websocket.TextMessage, b)
}

// Hub mantém as páginas abertas e avisa todas quando a view termina de carregar
type Hub struct {
	log      *zap.Logger
	upgrader websocket.Upgrader

	mu      sync.RWMutex
	clients map[*websocket.Conn]*client
	last    *Message // último aviso, reenviado a quem conecta depois
}

// NewHub cria o hub com política customizada de origem (CORS)
func NewHub(allowOrigin func(r *http.Request) bool, log *zap.Logger) *Hub {
	if log == nil {
		log = zap.NewNop()
	}
	return &Hub{
		log:      log,
		upgrader: websocket.Upgrader{CheckOrigin: allowOrigin},
		clients:  make(map[*websocket.Conn]*client),
	}
}

// HandleWS registra a conexão e responde pings até o cliente desconectar
func (h *Hub) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}
	defer conn.Close()

	// c.mu segura broadcasts novos até o reenvio do último aviso sair
	c := &client{conn: conn}
	c.mu.Lock()
	h.mu.Lock()
	h.clients[conn] = c
	last := h.last
	h.mu.Unlock()
	if last != nil {
		b, _ := json.Marshal(last)
		_ = conn.WriteMessage(websocket.TextMessage, b)
	}
	c.mu.Unlock()

	for {
		var msg ClientMsg
		if err := conn.ReadJSON(&msg); err != nil {
			break
		}
		if msg.Type == TypePing {
			b, _ := json.Marshal(ClientMsg{Type: TypePong})
			_ = c.write(b)
		}
	}

	h.mu.Lock()
	delete(h.clients, conn)
	h.mu.Unlock()
}

// Broadcast envia a mensagem para todas as conexões e a guarda para quem conectar depois.
// A mesma carga não é anunciada duas vezes (settle local + pub/sub).
func (h *Hub) Broadcast(msg Message) {
	h.mu.Lock()
	if msg.LoadID != "" && h.last != nil && msg.LoadID == h.last.LoadID {
		h.mu.Unlock()
		return
	}
	h.last = &msg
	clients := make([]*client, 0, len(h.clients))
	for _, c := range h.clients {
		clients = append(clients, c)
	}
	h.mu.Unlock()

	b, _ := json.Marshal(msg)
	for _, c := range clients {
		if err := c.write(b); err != nil {
			h.log.Debug("ws write failed", zap.Error(err))
		}
	}
}

// Count retorna o número de conexões abertas
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
