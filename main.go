// ProxyRun - Process Proxy Launcher
// A TUI for relaunching running programs with proxy environment variables.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lazyvibe/proxyrun/internal/app"
	"github.com/lazyvibe/proxyrun/internal/launch"
	"github.com/lazyvibe/proxyrun/internal/notify"
	"github.com/lazyvibe/proxyrun/internal/proc"
	"github.com/lazyvibe/proxyrun/internal/store"
	"github.com/lazyvibe/proxyrun/internal/ui"
)

func main() {
	configDir, err := getConfigDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error getting config directory: %v\n", err)
		os.Exit(1)
	}

	config, err := app.LoadConfig(configDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	// Profiles load leniently: a missing or corrupt file is an empty list.
	s := store.NewJSONStore(configDir)

	application := ui.New(
		s,
		launch.NewSystem(),
		proc.SystemEnumerator{},
		notify.NewDispatcher(),
		config,
	)

	p := tea.NewProgram(
		application,
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running application: %v\n", err)
		os.Exit(1)
	}
}

// getConfigDir returns the ProxyRun configuration directory.
func getConfigDir() (string, error) {
	// Use XDG_CONFIG_HOME if available, otherwise default to ~/.config
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(home, ".config")
	}

	return filepath.Join(configHome, "proxyrun"), nil
}
