package client

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/radieske/football-predictions-view/pkg/contracts/predictions"
)

// Endpoints da API de previsões consumidos pela view
const (
	EndpointGames       = "/games"
	EndpointPredictions = "/predictions"
	EndpointNeural      = "/predictions/neural"
	EndpointBestCombo   = "/best-combo"
)

// StatusError indica resposta fora da faixa 2xx
type StatusError struct {
	Endpoint   string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("GET %s: http %d", e.Endpoint, e.StatusCode)
}

// Client faz GET simples na API de previsões: sem corpo, headers extras, query ou auth
type Client struct {
	BaseURL string
	HTTP    *http.Client
}

// New cria o cliente; timeout 0 significa sem timeout
func New(base string, timeout time.Duration) *Client {
	return &Client{
		BaseURL: strings.TrimRight(base, "/"),
		HTTP:    &http.Client{Timeout: timeout},
	}
}

// Games busca os jogos do dia
func (c *Client) Games(ctx context.Context) ([]predictions.Game, error) {
	var out predictions.GamesResponse
	if err := c.get(ctx, EndpointGames, &out); err != nil {
		return nil, err
	}
	if out.Games == nil {
		out.Games = []predictions.Game{}
	}
	return out.Games, nil
}

// StatPredictions busca as previsões da análise estatística
func (c *Client) StatPredictions(ctx context.Context) ([]predictions.StatPrediction, error) {
	var out predictions.PredictionsResponse
	if err := c.get(ctx, EndpointPredictions, &out); err != nil {
		return nil, err
	}
	if out.Predictions == nil {
		out.Predictions = []predictions.StatPrediction{}
	}
	return out.Predictions, nil
}

// NeuralPredictions busca as previsões do ensemble
func (c *Client) NeuralPredictions(ctx context.Context) ([]predictions.NeuralPrediction, error) {
	var out predictions.NeuralResponse
	if err := c.get(ctx, EndpointNeural, &out); err != nil {
		return nil, err
	}
	if out.Predictions == nil {
		out.Predictions = []predictions.NeuralPrediction{}
	}
	return out.Predictions, nil
}

// BestCombo busca a melhor combinação do dia; o corpo inteiro é a combinação
func (c *Client) BestCombo(ctx context.Context) (*predictions.BestCombo, error) {
	var out predictions.BestCombo
	if err := c.get(ctx, EndpointBestCombo, &out); err != nil {
		return nil, err
	}
	if out.Games == nil {
		out.Games = []predictions.ComboLeg{}
	}
	return &out, nil
}

func (c *Client) get(ctx context.Context, endpoint string, dst any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+endpoint, nil)
	if err != nil {
		return fmt.Errorf("GET %s: %w", endpoint, err)
	}
	res, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("GET %s: %w", endpoint, err)
	}
	defer res.Body.Close()
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return &StatusError{Endpoint: endpoint, StatusCode: res.StatusCode}
	}
	if err := json.NewDecoder(res.Body).Decode(dst); err != nil {
		return fmt.Errorf("GET %s: decode: %w", endpoint, err)
	}
	return nil
}
