package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(viper.New())
	require.NoError(t, err)

	require.Equal(t, "8080", cfg.AppPort)
	require.Equal(t, StoreMemory, cfg.StoreDriver)
	require.Equal(t, "raisedesk", cfg.DatabaseName)
	require.Equal(t, 5*time.Minute, cfg.MatchCacheTTL)
	require.Equal(t, 30*time.Minute, cfg.ReminderLeadTime)
	require.Empty(t, cfg.RedisAddr)
	require.True(t, cfg.SeedOnStart)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("ENV", "production")
	t.Setenv("STORE_DRIVER", StoreMongo)
	t.Setenv("MATCH_CACHE_TTL", "90s")
	t.Setenv("REDIS_ADDR", "redis:6379")

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	require.Equal(t, "9090", cfg.AppPort)
	require.Equal(t, "production", cfg.Env)
	require.Equal(t, StoreMongo, cfg.StoreDriver)
	require.Equal(t, 90*time.Second, cfg.MatchCacheTTL)
	require.Equal(t, "redis:6379", cfg.RedisAddr)
}
