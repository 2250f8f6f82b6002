package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		env       string
		level     string
		wantDebug bool
		wantErr   bool
	}{
		{name: "local is development", env: "local", wantDebug: true},
		{name: "prod is info", env: "prod", wantDebug: false},
		{name: "level override", env: "prod", level: "debug", wantDebug: true},
		{name: "invalid level", env: "prod", level: "barulhento", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New("predictions-view", tt.env, tt.level)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantDebug, l.Core().Enabled(zap.DebugLevel))
		})
	}
}
