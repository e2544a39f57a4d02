package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettingsMissingFile(t *testing.T) {
	t.Setenv("SHIFTBOT_HOME", t.TempDir())

	settings, err := LoadSettings()

	require.NoError(t, err)
	assert.Equal(t, "", settings.BotToken)
	assert.Zero(t, settings.BroadcastChat)
}

func TestLoadSettingsFromFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("SHIFTBOT_HOME", home)

	data := `{"bot_token":"abc123","broadcast_chat":-100555,"listen":":9000"}`
	require.NoError(t, os.WriteFile(filepath.Join(home, "settings.json"), []byte(data), 0644))

	settings, err := LoadSettings()

	require.NoError(t, err)
	assert.Equal(t, "abc123", settings.BotToken)
	assert.Equal(t, int64(-100555), settings.BroadcastChat)
	assert.Equal(t, ":9000", settings.Listen)
}

func TestLoadSettingsEnvOverrides(t *testing.T) {
	home := t.TempDir()
	t.Setenv("SHIFTBOT_HOME", home)

	data := `{"bot_token":"from-file","listen":":9000","broadcast_chat":1}`
	require.NoError(t, os.WriteFile(filepath.Join(home, "settings.json"), []byte(data), 0644))

	t.Setenv("SHIFTBOT_TOKEN", "from-env")
	t.Setenv("SHIFTBOT_LISTEN", ":7070")
	t.Setenv("SHIFTBOT_BROADCAST_CHAT", "-100777")

	settings, err := LoadSettings()

	require.NoError(t, err)
	assert.Equal(t, "from-env", settings.BotToken)
	assert.Equal(t, ":7070", settings.Listen)
	assert.Equal(t, int64(-100777), settings.BroadcastChat)
}

func TestLoadSettingsInvalidBroadcastChatEnv(t *testing.T) {
	t.Setenv("SHIFTBOT_HOME", t.TempDir())
	t.Setenv("SHIFTBOT_BROADCAST_CHAT", "not-a-number")

	_, err := LoadSettings()

	assert.Error(t, err)
}

func TestLoadSettingsInvalidJSON(t *testing.T) {
	home := t.TempDir()
	t.Setenv("SHIFTBOT_HOME", home)

	require.NoError(t, os.WriteFile(filepath.Join(home, "settings.json"), []byte("{"), 0644))

	_, err := LoadSettings()

	assert.Error(t, err)
}

func TestSaveSettingsRoundTrip(t *testing.T) {
	home := t.TempDir()
	t.Setenv("SHIFTBOT_HOME", home)

	persist := true
	ttl := 30
	in := &Settings{
		BotToken:          "tok",
		PersistSessions:   &persist,
		SessionTTLMinutes: &ttl,
	}
	require.NoError(t, SaveSettings(in))

	out, err := LoadSettings()

	require.NoError(t, err)
	assert.Equal(t, "tok", out.BotToken)
	require.NotNil(t, out.PersistSessions)
	assert.True(t, *out.PersistSessions)
	require.NotNil(t, out.SessionTTLMinutes)
	assert.Equal(t, 30, *out.SessionTTLMinutes)
}

func TestExpandPath(t *testing.T) {
	homeDir, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(homeDir, "reports"), ExpandPath("~/reports"))
	assert.Equal(t, homeDir, ExpandPath("~"))
	assert.Equal(t, "/var/lib/shiftbot", ExpandPath("/var/lib/shiftbot"))
}
