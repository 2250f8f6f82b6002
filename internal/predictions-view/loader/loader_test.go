package loader

import (
	"context"
	"errors"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/radieske/football-predictions-view/internal/predictions-view/client"
	"github.com/radieske/football-predictions-view/internal/shared/metrics"
	"github.com/radieske/football-predictions-view/pkg/contracts/predictions"
)

// MockAPI
type MockAPI struct {
	GamesFunc             func(ctx context.Context) ([]predictions.Game, error)
	StatPredictionsFunc   func(ctx context.Context) ([]predictions.StatPrediction, error)
	NeuralPredictionsFunc func(ctx context.Context) ([]predictions.NeuralPrediction, error)
	BestComboFunc         func(ctx context.Context) (*predictions.BestCombo, error)

	calls atomic.Int32
}

func (m *MockAPI) Games(ctx context.Context) ([]predictions.Game, error) {
	m.calls.Add(1)
	if m.GamesFunc != nil {
		return m.GamesFunc(ctx)
	}
	return []predictions.Game{}, nil
}

func (m *MockAPI) StatPredictions(ctx context.Context) ([]predictions.StatPrediction, error) {
	m.calls.Add(1)
	if m.StatPredictionsFunc != nil {
		return m.StatPredictionsFunc(ctx)
	}
	return []predictions.StatPrediction{}, nil
}

func (m *MockAPI) NeuralPredictions(ctx context.Context) ([]predictions.NeuralPrediction, error) {
	m.calls.Add(1)
	if m.NeuralPredictionsFunc != nil {
		return m.NeuralPredictionsFunc(ctx)
	}
	return []predictions.NeuralPrediction{}, nil
}

func (m *MockAPI) BestCombo(ctx context.Context) (*predictions.BestCombo, error) {
	m.calls.Add(1)
	if m.BestComboFunc != nil {
		return m.BestComboFunc(ctx)
	}
	return &predictions.BestCombo{Games: []predictions.ComboLeg{}}, nil
}

func fullAPI() *MockAPI {
	return &MockAPI{
		GamesFunc: func(ctx context.Context) ([]predictions.Game, error) {
			return []predictions.Game{{Competition: "La Liga", HomeTeam: "Real Madrid", AwayTeam: "Barcelona", Status: "LIVE"}}, nil
		},
		StatPredictionsFunc: func(ctx context.Context) ([]predictions.StatPrediction, error) {
			return []predictions.StatPrediction{{Game: "Flamengo vs Palmeiras", Prediction: "Under 2.5 gols", Probability: 0.58}}, nil
		},
		NeuralPredictionsFunc: func(ctx context.Context) ([]predictions.NeuralPrediction, error) {
			return []predictions.NeuralPrediction{{Match: "Juventus vs Inter Milan", Confidence: "Média"}}, nil
		},
		BestComboFunc: func(ctx context.Context) (*predictions.BestCombo, error) {
			return &predictions.BestCombo{
				Games:     []predictions.ComboLeg{{Match: "Real Madrid vs Barcelona", Bet: "Over 2.5 gols", Odds: 1.75, Probability: 0.62}},
				TotalOdds: 1.75,
			}, nil
		},
	}
}

func TestLoad_Success(t *testing.T) {
	api := fullAPI()
	reg := prometheus.NewRegistry()
	m := metrics.NewLoader(reg)
	l := New(api, Options{IncludeGames: true}, zap.NewNop(), m)

	snap, err := l.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int32(4), api.calls.Load())
	require.Len(t, snap.Games, 1)
	assert.Equal(t, "Real Madrid", snap.Games[0].HomeTeam)
	require.Len(t, snap.StatPredictions, 1)
	assert.Equal(t, 0.58, snap.StatPredictions[0].Probability)
	require.Len(t, snap.NeuralPredictions, 1)
	require.NotNil(t, snap.BestCombo)
	assert.Equal(t, 1, snap.ComboLegs())

	expected := `
# HELP predictions_view_load_total Cargas da view por resultado (ok, partial, failed).
# TYPE predictions_view_load_total counter
predictions_view_load_total{outcome="ok"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected), "predictions_view_load_total"))
	count, err := testutil.GatherAndCount(reg, "predictions_view_fetch_total")
	require.NoError(t, err)
	assert.Equal(t, 4, count)
}

func TestLoad_LightVariantSkipsGames(t *testing.T) {
	api := fullAPI()
	api.GamesFunc = func(ctx context.Context) ([]predictions.Game, error) {
		t.Error("games endpoint must not be requested in the light variant")
		return nil, nil
	}
	l := New(api, Options{IncludeGames: false}, zap.NewNop(), nil)

	snap, err := l.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(3), api.calls.Load())
	assert.NotNil(t, snap.Games)
	assert.Empty(t, snap.Games)
}

func TestLoad_NilListsBecomeEmpty(t *testing.T) {
	api := &MockAPI{
		GamesFunc:             func(ctx context.Context) ([]predictions.Game, error) { return nil, nil },
		StatPredictionsFunc:   func(ctx context.Context) ([]predictions.StatPrediction, error) { return nil, nil },
		NeuralPredictionsFunc: func(ctx context.Context) ([]predictions.NeuralPrediction, error) { return nil, nil },
	}
	snap, err := New(api, Options{IncludeGames: true}, zap.NewNop(), nil).Load(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, snap.Games)
	assert.NotNil(t, snap.StatPredictions)
	assert.NotNil(t, snap.NeuralPredictions)
}

func TestLoad_FailFastDiscardsEverything(t *testing.T) {
	api := fullAPI()
	api.NeuralPredictionsFunc = func(ctx context.Context) ([]predictions.NeuralPrediction, error) {
		return nil, &client.StatusError{Endpoint: client.EndpointNeural, StatusCode: 500}
	}
	l := New(api, Options{IncludeGames: true, Mode: JoinFailFast}, zap.NewNop(), nil)

	snap, err := l.Load(context.Background())
	require.Error(t, err)

	var se *client.StatusError
	assert.True(t, errors.As(err, &se))
	assert.Empty(t, snap.Games)
	assert.Empty(t, snap.StatPredictions)
	assert.Empty(t, snap.NeuralPredictions)
	assert.Nil(t, snap.BestCombo)
}

func TestLoad_CollectAllIsolatesFailures(t *testing.T) {
	api := fullAPI()
	api.GamesFunc = func(ctx context.Context) ([]predictions.Game, error) {
		return nil, errors.New("connection refused")
	}
	l := New(api, Options{IncludeGames: true, Mode: JoinCollectAll}, zap.NewNop(), nil)

	snap, err := l.Load(context.Background())
	require.Error(t, err)

	var pe *PartialError
	require.True(t, errors.As(err, &pe))
	assert.Contains(t, pe.Failed, client.EndpointGames)
	assert.Len(t, pe.Failed, 1)
	assert.Contains(t, err.Error(), "/games: connection refused")

	assert.Empty(t, snap.Games)
	assert.Len(t, snap.StatPredictions, 1)
	assert.Len(t, snap.NeuralPredictions, 1)
	assert.NotNil(t, snap.BestCombo)
}

func TestLoad_CollectAllEverythingFails(t *testing.T) {
	boom := errors.New("boom")
	api := &MockAPI{
		StatPredictionsFunc:   func(ctx context.Context) ([]predictions.StatPrediction, error) { return nil, boom },
		NeuralPredictionsFunc: func(ctx context.Context) ([]predictions.NeuralPrediction, error) { return nil, boom },
		BestComboFunc:         func(ctx context.Context) (*predictions.BestCombo, error) { return nil, boom },
	}
	l := New(api, Options{Mode: JoinCollectAll}, zap.NewNop(), nil)

	snap, err := l.Load(context.Background())
	require.Error(t, err)
	var pe *PartialError
	assert.False(t, errors.As(err, &pe), "total failure is not partial")
	assert.ErrorIs(t, err, boom)
	assert.Nil(t, snap.BestCombo)
}
