package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.Error(t, err, "explicit path must exist")

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000", cfg.Service.BaseURL)
	assert.Equal(t, 2*time.Second, cfg.Service.PollInterval())
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shopboard.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[service]
base_url = "http://sched.example:9000"
poll_interval_ms = 500

[display]
team_priority = ["Turn", "Mill"]
`), 0o644))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "http://sched.example:9000", cfg.Service.BaseURL)
	assert.Equal(t, 500*time.Millisecond, cfg.Service.PollInterval())
	assert.Equal(t, []string{"Turn", "Mill"}, cfg.Display.TeamPriority)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shopboard.toml")
	require.NoError(t, os.WriteFile(path, []byte("[service]\nbase_url = \"http://file\"\n"), 0o644))
	t.Setenv("SHOPBOARD_SERVICE_URL", "http://env")
	t.Setenv("SHOPBOARD_POLL_INTERVAL_MS", "250")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "http://env", cfg.Service.BaseURL)
	assert.Equal(t, 250, cfg.Service.PollIntervalMS)
}

func TestLoad_RejectsBadInterval(t *testing.T) {
	path := filepath.Join(t.TempDir(), "shopboard.toml")
	require.NoError(t, os.WriteFile(path, []byte("[service]\npoll_interval_ms = -5\n"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}
