// Package app provides application-level configuration.
package app

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/lazyvibe/proxyrun/internal/model"
)

// NotificationConfig holds launch notification settings.
type NotificationConfig struct {
	// Desktop enables desktop notifications after a successful launch.
	Desktop bool `json:"desktop"`
	// WebhookURL is an optional URL to POST launch reports to.
	WebhookURL string `json:"webhook_url,omitempty"`
}

// Config holds the application configuration.
type Config struct {
	// DefaultIP pre-fills the proxy IP field.
	DefaultIP string `json:"default_ip"`
	// DefaultPort pre-fills the proxy port field.
	DefaultPort string `json:"default_port"`
	// DefaultProtocol pre-selects the proxy protocol.
	DefaultProtocol model.Protocol `json:"default_protocol"`
	// Notification configures launch notifications.
	Notification NotificationConfig `json:"notification"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		DefaultIP:       "127.0.0.1",
		DefaultPort:     "7890",
		DefaultProtocol: model.ProtocolHTTP,
		Notification: NotificationConfig{
			Desktop: true,
		},
	}
}

// ConfigPath returns the path to the config file.
func ConfigPath(configDir string) string {
	return filepath.Join(configDir, "config.json")
}

// LoadConfig loads the configuration from disk. A missing file yields the
// defaults.
func LoadConfig(configDir string) (*Config, error) {
	path := ConfigPath(configDir)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	config := DefaultConfig()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, err
	}

	return config, nil
}

// SaveConfig saves the configuration to disk.
func SaveConfig(configDir string, config *Config) error {
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(ConfigPath(configDir), data, 0644)
}
