package ui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lazyvibe/proxyrun/internal/app"
	"github.com/lazyvibe/proxyrun/internal/launch"
	"github.com/lazyvibe/proxyrun/internal/model"
	"github.com/lazyvibe/proxyrun/internal/notify"
	"github.com/lazyvibe/proxyrun/internal/proc"
	"github.com/lazyvibe/proxyrun/internal/store"
	"github.com/lazyvibe/proxyrun/internal/ui/components/dialog"
	"github.com/lazyvibe/proxyrun/internal/ui/components/processlist"
	"github.com/lazyvibe/proxyrun/internal/ui/components/profilelist"
	"github.com/lazyvibe/proxyrun/internal/ui/components/statusbar"
	"github.com/lazyvibe/proxyrun/internal/ui/keys"
)

// FocusArea represents which UI pane has focus.
type FocusArea int

const (
	// FocusProcesses is the running-process list pane.
	FocusProcesses FocusArea = iota
	// FocusProfiles is the saved-profile list pane.
	FocusProfiles
)

// DialogMode represents the current dialog being shown.
type DialogMode int

const (
	DialogNone DialogMode = iota
	DialogEndpoint
)

const (
	minAppWidth  = 60
	minAppHeight = 14

	// historyCap bounds the in-memory launch history.
	historyCap = 20
)

// App is the main application model.
type App struct {
	// Components
	processList    processlist.Model
	profileList    profilelist.Model
	statusBar      statusbar.Model
	endpointDialog dialog.InputDialog

	// Collaborators
	store      store.ProfileStore
	launcher   *launch.Launcher
	enumerator proc.Enumerator
	dispatcher *notify.Dispatcher
	config     *app.Config

	// Endpoint form state, pre-filled from config defaults and overwritten
	// when a saved profile is loaded.
	profileName string
	ip          string
	port        string
	protocol    model.Protocol
	extraArgs   string

	// history holds this session's launches, most recent first.
	history []launch.Result

	// State
	focus      FocusArea
	dialogMode DialogMode
	width      int
	height     int
	ready      bool
	quitting   bool
	keyMap     keys.KeyMap
}

// New creates the application model.
func New(s store.ProfileStore, l *launch.Launcher, e proc.Enumerator, d *notify.Dispatcher, cfg *app.Config) App {
	a := App{
		processList: processlist.New(),
		profileList: profilelist.New(),
		statusBar:   statusbar.New(),
		store:       s,
		launcher:    l,
		enumerator:  e,
		dispatcher:  d,
		config:      cfg,
		profileName: "Default",
		ip:          cfg.DefaultIP,
		port:        cfg.DefaultPort,
		protocol:    cfg.DefaultProtocol,
		keyMap:      keys.DefaultKeyMap(),
	}

	a.profileList.SetProfiles(s.Profiles())
	a.processList.SetFocused(true)
	a.statusBar.SetMessage("Select a process and press L to launch it with the proxy.", false)
	a.statusBar.SetProxyURL(a.currentProxyURL())
	return a
}

// Init refreshes the process list on startup.
func (a App) Init() tea.Cmd {
	return RefreshProcesses(a.enumerator)
}

// setFocus moves focus between the two panes.
func (a *App) setFocus(focus FocusArea) {
	a.focus = focus
	a.processList.SetFocused(focus == FocusProcesses)
	a.profileList.SetFocused(focus == FocusProfiles)
}

// windowTooSmall reports whether the terminal is below the minimum size.
func (a App) windowTooSmall() bool {
	return a.width < minAppWidth || a.height < minAppHeight
}

// recordLaunch prepends a launch result to the session history.
func (a *App) recordLaunch(result launch.Result) {
	a.history = append([]launch.Result{result}, a.history...)
	if len(a.history) > historyCap {
		a.history = a.history[:historyCap]
	}
}
