package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "token")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, "token", cfg.DiscordToken)
	assert.True(t, cfg.BotEnabled)
	assert.True(t, cfg.WebEnabled)
	assert.Equal(t, "127.0.0.1:5000", cfg.WebAddr)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, StoreFile, cfg.StoreBackend)
	assert.Equal(t, "player_stats.json", cfg.StatsPath)
	assert.Equal(t, "player_stats.db", cfg.BoltPath)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 0, cfg.RedisDB)
	assert.Equal(t, "tabletally:ledger", cfg.RedisKey)
	assert.Equal(t, DefaultAvatarURL, cfg.DefaultAvatarURL)
	assert.Empty(t, cfg.PublicURL)
}

func TestParseOverrides(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "token")
	t.Setenv("GUILD_ID", "guild")
	t.Setenv("STORE_BACKEND", "redis")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("PUBLIC_URL", "https://example.test")
	t.Setenv("DEFAULT_AVATAR_URL", "https://example.test/a.png")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, "guild", cfg.GuildID)
	assert.Equal(t, StoreRedis, cfg.StoreBackend)
	assert.Equal(t, 2, cfg.RedisDB)
	assert.Equal(t, "https://example.test", cfg.PublicURL)
	assert.Equal(t, "https://example.test/a.png", cfg.DefaultAvatarURL)
}

func TestParseError(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "token")
	t.Setenv("REDIS_DB", "not-an-int")

	_, err := Parse()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse env:")
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{
			name:    "bot needs token",
			cfg:     Config{BotEnabled: true, WebEnabled: true, StoreBackend: StoreFile},
			wantErr: ErrMissingToken,
		},
		{
			name: "web only needs no token",
			cfg:  Config{WebEnabled: true, StoreBackend: StoreBolt},
		},
		{
			name:    "unknown backend",
			cfg:     Config{WebEnabled: true, StoreBackend: "sqlite"},
			wantErr: ErrUnknownBackend,
		},
		{
			name:    "nothing enabled",
			cfg:     Config{StoreBackend: StoreFile},
			wantErr: ErrNothingEnabled,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestLoadReadsDotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("DISCORD_TOKEN=from-file\nWEB_ADDR=:8080\n"), 0o600))

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	// godotenv sets variables directly, so clear them afterwards
	t.Setenv("DISCORD_TOKEN", "")
	t.Setenv("WEB_ADDR", "")
	require.NoError(t, os.Unsetenv("DISCORD_TOKEN"))
	require.NoError(t, os.Unsetenv("WEB_ADDR"))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.DiscordToken)
	assert.Equal(t, ":8080", cfg.WebAddr)
}
