package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/lazyvibe/proxyrun/internal/model"
	"github.com/lazyvibe/proxyrun/internal/ui/components/dialog"
	"github.com/lazyvibe/proxyrun/internal/ui/components/processlist"
)

// Update handles all application messages.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.layout()
		return a, nil

	case SnapshotMsg:
		hadSelection := a.processList.SelectedIndex() != processlist.NoSelection
		a.processList.SetRecords(msg.Records)
		if len(msg.Records) == 0 {
			a.statusBar.SetMessage("No processes available.", false)
		} else if hadSelection && a.processList.SelectedIndex() == processlist.NoSelection {
			a.statusBar.SetMessage(fmt.Sprintf("Process list refreshed (%d); selection cleared.", len(msg.Records)), false)
		} else {
			a.statusBar.SetMessage(fmt.Sprintf("Process list refreshed (%d processes).", len(msg.Records)), false)
		}
		return a, nil

	case LaunchFinishedMsg:
		if msg.Err != nil {
			a.statusBar.SetMessage(msg.Err.Error(), true)
			return a, nil
		}
		a.recordLaunch(msg.Result)
		a.statusBar.SetMessage(fmt.Sprintf(
			"Launched [%s] pid=%d proxy=%s. Only the new process inherits the proxy variables.",
			msg.Result.ProcessName, msg.Result.PID, msg.Result.ProxyURL), false)
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, nil
}

// handleKey routes key input to the open dialog or the main key map.
func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.dialogMode == DialogEndpoint {
		return a.handleEndpointDialogKey(msg)
	}

	switch {
	case key.Matches(msg, a.keyMap.Quit):
		a.quitting = true
		return a, tea.Quit

	case key.Matches(msg, a.keyMap.Tab), key.Matches(msg, a.keyMap.ShiftTab):
		if a.focus == FocusProcesses {
			a.setFocus(FocusProfiles)
		} else {
			a.setFocus(FocusProcesses)
		}
		return a, nil

	case key.Matches(msg, a.keyMap.Refresh):
		return a, RefreshProcesses(a.enumerator)

	case key.Matches(msg, a.keyMap.Endpoint):
		a.openEndpointDialog()
		return a, nil

	case key.Matches(msg, a.keyMap.Launch):
		return a, DoLaunch(a.launcher, a.dispatcher, a.config.Notification,
			a.ip, a.port, a.protocol, a.processList.SelectedRecord(), a.extraArgs)

	case key.Matches(msg, a.keyMap.Select):
		return a.handleSelect()

	case key.Matches(msg, a.keyMap.Save):
		a.saveProfile()
		return a, nil

	case key.Matches(msg, a.keyMap.Update):
		a.updateProfile()
		return a, nil

	case key.Matches(msg, a.keyMap.Delete):
		a.deleteProfile()
		return a, nil
	}

	// Remaining keys move the cursor in the focused pane.
	if a.focus == FocusProcesses {
		a.processList.HandleKey(msg.String())
	} else {
		a.profileList.HandleKey(msg.String())
	}
	return a, nil
}

// handleSelect marks a process as launch target or loads a profile into the
// endpoint form, depending on the focused pane.
func (a App) handleSelect() (tea.Model, tea.Cmd) {
	if a.focus == FocusProcesses {
		a.processList.Select()
		if rec := a.processList.SelectedRecord(); rec != nil {
			a.statusBar.SetMessage(fmt.Sprintf("Selected %s (%s).", rec.Name, rec.PID), false)
		}
		return a, nil
	}

	p := a.profileList.SelectedProfile()
	if p == nil {
		a.statusBar.SetMessage("Select a profile to load first.", true)
		return a, nil
	}
	a.profileName = p.Name
	a.ip = p.IP
	a.port = p.Port
	a.protocol = p.Protocol
	a.statusBar.SetProxyURL(a.currentProxyURL())
	a.statusBar.SetMessage(fmt.Sprintf("Loaded profile %q into the endpoint form.", p.Name), false)
	return a, nil
}

// handleEndpointDialogKey feeds keys to the endpoint dialog and applies the
// result on submit.
func (a App) handleEndpointDialogKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	a.endpointDialog, cmd = a.endpointDialog.Update(msg)

	if a.endpointDialog.IsCancelled() {
		a.dialogMode = DialogNone
		return a, nil
	}

	if a.endpointDialog.IsSubmitted() {
		a.profileName = a.endpointDialog.Value(0)
		a.ip = a.endpointDialog.Value(1)
		a.port = a.endpointDialog.Value(2)
		a.protocol = protocolFromLabel(a.endpointDialog.Value(3))
		a.extraArgs = a.endpointDialog.Value(4)
		a.dialogMode = DialogNone
		a.statusBar.SetProxyURL(a.currentProxyURL())
		a.statusBar.SetMessage("Endpoint updated.", false)
		return a, nil
	}

	return a, cmd
}

// openEndpointDialog shows the endpoint form dialog pre-filled with the
// current values.
func (a *App) openEndpointDialog() {
	a.endpointDialog = dialog.NewInputDialog("Proxy Endpoint", []dialog.InputField{
		{Label: "Profile name", Placeholder: "Default", Value: a.profileName},
		{Label: "Proxy IP", Placeholder: "127.0.0.1", Value: a.ip},
		{Label: "Port", Placeholder: "7890", Value: a.port},
		{Label: "Protocol", Value: a.protocol.Label(), Choices: protocolLabels()},
		{Label: "Extra arguments", Placeholder: "--config config.toml", Value: a.extraArgs},
	})
	a.endpointDialog.SetSize(a.width, a.height)
	a.dialogMode = DialogEndpoint
}

// saveProfile appends the current form as a new profile.
func (a *App) saveProfile() {
	p := model.NewProfile(a.profileName, a.ip, a.port, a.protocol)
	err := a.store.Add(p)
	// The in-memory collection may have changed even when persisting
	// failed, so the list is re-read regardless of the outcome.
	a.profileList.SetProfiles(a.store.Profiles())
	if err != nil {
		a.statusBar.SetMessage(err.Error(), true)
		return
	}
	a.statusBar.SetMessage(fmt.Sprintf("Profile %q added.", p.Name), false)
}

// updateProfile overwrites the selected profile with the current form.
func (a *App) updateProfile() {
	index := a.profileList.SelectedIndex()
	p := model.NewProfile(a.profileName, a.ip, a.port, a.protocol)
	err := a.store.Update(index, p)
	a.profileList.SetProfiles(a.store.Profiles())
	if err != nil {
		a.statusBar.SetMessage(err.Error(), true)
		return
	}
	a.statusBar.SetMessage("Profile updated.", false)
}

// deleteProfile removes the selected profile.
func (a *App) deleteProfile() {
	index := a.profileList.SelectedIndex()
	err := a.store.Delete(index)
	a.profileList.ClearSelection()
	a.profileList.SetProfiles(a.store.Profiles())
	if err != nil {
		a.statusBar.SetMessage(err.Error(), true)
		return
	}
	a.statusBar.SetMessage("Profile deleted.", false)
}

// layout recomputes component sizes from the window dimensions.
func (a *App) layout() {
	listHeight := a.height - 1

	leftWidth := a.width * 55 / 100
	if leftWidth < 30 {
		leftWidth = 30
	}
	rightWidth := a.width - leftWidth

	a.processList.SetSize(leftWidth, listHeight)
	a.profileList.SetSize(rightWidth, listHeight/2)
	a.statusBar.SetWidth(a.width)
	a.endpointDialog.SetSize(a.width, a.height)
}
