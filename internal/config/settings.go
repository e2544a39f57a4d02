package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Settings represents the structure of ~/.shiftbot/settings.json
type Settings struct {
	// BotToken is the chat platform bot token
	BotToken string `json:"bot_token,omitempty"`
	// BroadcastChat is the chat id finalized reports are forwarded to;
	// zero disables broadcasting
	BroadcastChat int64 `json:"broadcast_chat,omitempty"`
	Debug         *bool `json:"debug,omitempty"`
	// Listen is the webhook server address, e.g. ":8080"
	Listen      string `json:"listen,omitempty"`
	MaxLogFiles *int   `json:"max_log_files,omitempty"`
	// PersistSessions stores dialogue sessions in SQLite instead of memory
	PersistSessions *bool `json:"persist_sessions,omitempty"`
	// SessionTTLMinutes discards sessions idle for longer; zero disables
	SessionTTLMinutes *int `json:"session_ttl_minutes,omitempty"`
}

// GetShiftbotHome returns SHIFTBOT_HOME or ~/.shiftbot default
func GetShiftbotHome() string {
	home := os.Getenv("SHIFTBOT_HOME")
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".shiftbot"
		}
		return filepath.Join(homeDir, ".shiftbot")
	}
	return ExpandPath(home)
}

// GetDBPath returns $SHIFTBOT_HOME/state.db
func GetDBPath() string {
	return filepath.Join(GetShiftbotHome(), "state.db")
}

// GetSettingsPath returns $SHIFTBOT_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetShiftbotHome(), "settings.json")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}

// LoadSettings loads settings from $SHIFTBOT_HOME/settings.json.
// Returns empty Settings if the file doesn't exist (not an error).
// SHIFTBOT_TOKEN, SHIFTBOT_LISTEN and SHIFTBOT_BROADCAST_CHAT env
// variables override their settings.json counterparts.
func LoadSettings() (*Settings, error) {
	path := GetSettingsPath()
	data, err := os.ReadFile(path)

	var settings Settings
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read settings file: %w", err)
		}
	} else if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	if token := os.Getenv("SHIFTBOT_TOKEN"); token != "" {
		settings.BotToken = token
	}
	if listen := os.Getenv("SHIFTBOT_LISTEN"); listen != "" {
		settings.Listen = listen
	}
	if chat := os.Getenv("SHIFTBOT_BROADCAST_CHAT"); chat != "" {
		id, err := strconv.ParseInt(chat, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid SHIFTBOT_BROADCAST_CHAT: %w", err)
		}
		settings.BroadcastChat = id
	}

	return &settings, nil
}

// SaveSettings saves settings to $SHIFTBOT_HOME/settings.json
func SaveSettings(settings *Settings) error {
	path := GetSettingsPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}
