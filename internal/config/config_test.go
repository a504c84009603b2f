package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, "batterbox", cfg.Name)
	assert.Equal(t, "data", cfg.Data.Dir)
	assert.Equal(t, "2025", cfg.Data.CurrentSeason)
	assert.Equal(t, 3, cfg.Naver.NewsCount)
	assert.True(t, cfg.Browser.Headless)
	assert.Equal(t, 60*time.Second, cfg.LLMTimeout())
	assert.Equal(t, 15*time.Second, cfg.NaverTimeout())
	assert.Equal(t, 45*time.Second, cfg.PageTimeout())
	assert.Equal(t, 4*time.Second, cfg.SettleDelay())
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "batterbox", cfg.Name)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "batterbox.yaml")

	cfg := DefaultConfig()
	cfg.Data.Dir = "/srv/kbo"
	cfg.LLM.Model = "gemini-2.5-flash"
	cfg.Browser.SettleDelayMs = 1500
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/srv/kbo", loaded.Data.Dir)
	assert.Equal(t, "gemini-2.5-flash", loaded.LLM.Model)
	assert.Equal(t, 1500*time.Millisecond, loaded.SettleDelay())
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("data: [not closed"), 0o644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "gem-key")
	t.Setenv("NAVER_CLIENT_ID", "naver-id")
	t.Setenv("NAVER_CLIENT_SECRET", "naver-secret")
	t.Setenv("BATTERBOX_DATA_DIR", "/tmp/kbo-data")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "gem-key", cfg.LLM.APIKey)
	assert.Equal(t, "naver-id", cfg.Naver.ClientID)
	assert.Equal(t, "naver-secret", cfg.Naver.ClientSecret)
	assert.Equal(t, "/tmp/kbo-data", cfg.Data.Dir)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	cfg := DefaultConfig()
	assert.Error(t, cfg.Validate(), "missing credentials must fail validation")

	cfg.LLM.APIKey = "k"
	cfg.Naver.ClientID = "id"
	cfg.Naver.ClientSecret = "secret"
	assert.NoError(t, cfg.Validate())

	cfg.Data.Dir = ""
	assert.Error(t, cfg.Validate())
}

func TestDurationFallbacks(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LLM.Timeout = "not-a-duration"
	cfg.Browser.SettleDelayMs = -1

	assert.Equal(t, 60*time.Second, cfg.LLMTimeout())
	assert.Equal(t, 4*time.Second, cfg.SettleDelay())
}
