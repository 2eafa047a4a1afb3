package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lidofinance/web3-provider/internal/env"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name      string
		cfg       env.AppConfig
		wantLevel slog.Level
	}{
		{
			name:      "debug text",
			cfg:       env.AppConfig{Name: "test", Env: "local", LogLevel: "debug", LogFormat: "text"},
			wantLevel: slog.LevelDebug,
		},
		{
			name:      "warn json",
			cfg:       env.AppConfig{Name: "test", Env: "local", LogLevel: "WARN", LogFormat: "json"},
			wantLevel: slog.LevelWarn,
		},
		{
			name:      "unknown level falls back to info",
			cfg:       env.AppConfig{Name: "test", Env: "staging", LogLevel: "verbose"},
			wantLevel: slog.LevelInfo,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, sentryClient, err := New(&tt.cfg)
			require.NoError(t, err)
			require.Nil(t, sentryClient)
			require.True(t, log.Enabled(context.Background(), tt.wantLevel))
			if tt.wantLevel > slog.LevelDebug {
				require.False(t, log.Enabled(context.Background(), tt.wantLevel-4))
			}
		})
	}
}
