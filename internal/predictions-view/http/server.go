package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/radieske/football-predictions-view/internal/predictions-view/render"
	"github.com/radieske/football-predictions-view/internal/predictions-view/view"
)

// StateSource é a view lida pelos handlers (implementado por *view.View)
type StateSource interface {
	State() view.State
}

// API expõe a página HTML, o estado em JSON e o websocket de recarga
type API struct {
	View           StateSource
	WS             http.HandlerFunc // nil desativa /ws
	Location       *time.Location
	AllowedOrigins []string
	Log            *zap.Logger
}

// Router retorna o roteador HTTP com as rotas da view
func (a *API) Router() http.Handler {
	origins := a.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/", a.page)             // Página com a aba ativa
	r.Get("/markdown", a.markdown) // Mesmo painel em markdown
	r.Get("/api/state", a.state)   // Estado completo em JSON
	if a.WS != nil {
		r.Get("/ws", a.WS) // Aviso de recarga quando a carga termina
	}
	return r
}

// writeJSON serializa a resposta em JSON e define o status HTTP
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// stateFor aplica ?tab= numa cópia do estado; a aba global da view não muda
func (a *API) stateFor(r *http.Request) (view.State, error) {
	st := a.View.State()
	if raw := r.URL.Query().Get("tab"); raw != "" {
		tab := view.Tab(raw)
		if !st.Variant.Has(tab) {
			return st, fmt.Errorf("%w: %q", view.ErrUnknownTab, raw)
		}
		st.Tab = tab
	}
	return st, nil
}

func (a *API) logger() *zap.Logger {
	if a.Log == nil {
		return zap.NewNop()
	}
	return a.Log
}

// page renderiza a página HTML da aba pedida
func (a *API) page(w http.ResponseWriter, r *http.Request) {
	st, err := a.stateFor(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	opts := render.HTMLOptions{Options: render.Options{Location: a.Location}}
	if a.WS != nil {
		opts.LiveReloadPath = "/ws"
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := render.HTML(w, st, opts); err != nil {
		a.logger().Error("render html failed", zap.Error(err))
	}
}

// markdown renderiza o painel pedido em markdown
func (a *API) markdown(w http.ResponseWriter, r *http.Request) {
	st, err := a.stateFor(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	md, err := render.Markdown(st, render.Options{Location: a.Location})
	if err != nil {
		a.logger().Error("render markdown failed", zap.Error(err))
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	_, _ = w.Write([]byte(md))
}

// state devolve o estado atual da view
func (a *API) state(w http.ResponseWriter, r *http.Request) {
	st, err := a.stateFor(r)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, newStateResponse(st))
}
