// Package ui provides the terminal user interface for ProxyRun.
package ui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lazyvibe/proxyrun/internal/app"
	"github.com/lazyvibe/proxyrun/internal/launch"
	"github.com/lazyvibe/proxyrun/internal/model"
	"github.com/lazyvibe/proxyrun/internal/notify"
	"github.com/lazyvibe/proxyrun/internal/proc"
)

// SnapshotMsg carries a fresh process table snapshot.
type SnapshotMsg struct {
	Records []proc.Record
}

// LaunchFinishedMsg reports the outcome of a launch attempt.
type LaunchFinishedMsg struct {
	Result launch.Result
	Err    error
}

// RefreshProcesses returns a command that snapshots the process table.
func RefreshProcesses(e proc.Enumerator) tea.Cmd {
	return func() tea.Msg {
		return SnapshotMsg{Records: proc.Snapshot(e)}
	}
}

// DoLaunch returns a command that launches the selected process with the
// proxy environment and dispatches notifications on success.
func DoLaunch(l *launch.Launcher, d *notify.Dispatcher, cfg app.NotificationConfig,
	ip, port string, protocol model.Protocol, selected *proc.Record, extraArgs string) tea.Cmd {
	return func() tea.Msg {
		result, err := l.Launch(ip, port, protocol, selected, extraArgs)
		if err == nil && d != nil {
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			d.Dispatch(ctx, cfg, result)
		}
		return LaunchFinishedMsg{Result: result, Err: err}
	}
}
