package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
port: "9090"
db:
  path: /tmp/heating.db
auth:
  signing_key: secret
heating:
  threshold: 0.3
  loop_interval: 30s
  fake_relay: true
alerts:
  slack:
    webhook_url: https://hooks.example.com/x
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	w, err := Load(writeConfig(t, sample))
	require.NoError(t, err)

	cfg := w.Config()
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "/tmp/heating.db", cfg.DB.Path)
	assert.Equal(t, 0.3, cfg.Heating.Threshold)
	assert.Equal(t, 30*time.Second, cfg.Heating.LoopInterval)
	assert.True(t, cfg.Heating.FakeRelay)
	assert.Equal(t, "https://hooks.example.com/x", cfg.Alerts.Slack.WebhookURL)

	// defaults
	assert.Equal(t, 5.0, cfg.Heating.MinimumTemp)
	assert.Equal(t, 60*time.Second, cfg.Heating.AdvanceInterval)
	assert.Equal(t, "heating/alerts", cfg.Alerts.MQTT.Topic)
	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("HEATING_HEATING_MINIMUM_TEMP", "7")
	w, err := Load(writeConfig(t, sample))
	require.NoError(t, err)
	assert.Equal(t, 7.0, w.Config().Heating.MinimumTemp)
}

func TestLoad_InvalidConfig(t *testing.T) {
	_, err := Load(writeConfig(t, "heating:\n  threshold: 0\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "heating.threshold")
	assert.Contains(t, err.Error(), "auth.signing_key")
}

func TestReload_KeepsPreviousOnError(t *testing.T) {
	path := writeConfig(t, sample)
	w, err := Load(path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte(sample+"\nlog:\n  level: debug\n"), 0o600))
	cfg, err := w.Reload()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)

	require.NoError(t, os.WriteFile(path, []byte("heating:\n  threshold: -1\nauth:\n  signing_key: x\n"), 0o600))
	cfg, err = w.Reload()
	require.Error(t, err)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "debug", w.Config().Log.Level)
}

func TestDefault_ValidExceptSigningKey(t *testing.T) {
	cfg := Default()
	cfg.Auth.SigningKey = "k"
	assert.NoError(t, cfg.Validate())
}

func TestValidate_RejectsUnknownLogLevel(t *testing.T) {
	cfg := Default()
	cfg.Auth.SigningKey = "k"
	cfg.Log.Level = "verbose"
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log.level")
}
