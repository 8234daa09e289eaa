package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestLoad(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "secret")
	t.Setenv("STORE_TIMEOUT", "2s")
	t.Setenv("KAFKA_ADDRS", "kafka-1:9092,kafka-2:9092")

	cfg, err := Load(WithLogLevel(zapcore.DebugLevel), WithPort("9000"))
	require.NoError(t, err)

	require.Equal(t, DriverPostgres, cfg.Store.Driver)
	require.Equal(t, 2*time.Second, cfg.Store.Timeout)
	require.Equal(t, "9000", cfg.Server.Port)
	require.Equal(t, zapcore.DebugLevel, cfg.Log.LogLevel)
	require.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Addrs)
	require.True(t, cfg.Kafka.Enabled())
	require.Equal(t, 10, cfg.Review.MinTextLength)
	require.Equal(t, 3, cfg.Notify.Attempts)
	require.False(t, cfg.Swap.ClearAvailabilityOnComplete)
	require.True(t, cfg.Cover.Enabled)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "no secret", env: map[string]string{"AUTH_JWT_SECRET": ""}},
		{name: "unknown driver", env: map[string]string{"AUTH_JWT_SECRET": "s", "STORE_DRIVER": "mongo"}},
		{name: "zero timeout", env: map[string]string{"AUTH_JWT_SECRET": "s", "STORE_TIMEOUT": "0s"}},
		{name: "bad duration", env: map[string]string{"AUTH_JWT_SECRET": "s", "STORE_TIMEOUT": "soon"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load()
			require.Error(t, err)
		})
	}
}
