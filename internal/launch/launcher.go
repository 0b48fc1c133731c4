// Package launch relaunches a selected process's executable with proxy
// environment variables injected into the child.
package launch

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/lazyvibe/proxyrun/internal/model"
	"github.com/lazyvibe/proxyrun/internal/proc"
	"github.com/lazyvibe/proxyrun/internal/proxy"
	"github.com/lazyvibe/proxyrun/pkg/utils"
)

var (
	// ErrNoProcessSelected is returned when launch is attempted without a
	// selected process.
	ErrNoProcessSelected = errors.New("no process selected")
	// ErrNoExecutablePath is returned when the selected process has no
	// resolvable executable path on disk.
	ErrNoExecutablePath = errors.New("selected process has no executable path on disk")
)

// InvalidEndpointError wraps an endpoint validation failure.
type InvalidEndpointError struct {
	Reason error
}

func (e *InvalidEndpointError) Error() string {
	return "invalid proxy endpoint: " + e.Reason.Error()
}

func (e *InvalidEndpointError) Unwrap() error {
	return e.Reason
}

// SpawnError wraps an OS-level spawn failure.
type SpawnError struct {
	Err error
}

func (e *SpawnError) Error() string {
	return "failed to start process: " + e.Err.Error()
}

func (e *SpawnError) Unwrap() error {
	return e.Err
}

// Spawner starts a new OS process and hands it back untracked.
type Spawner interface {
	// Spawn starts path with args, env, and working dir, returning the new
	// process ID. The child is not awaited.
	Spawn(path string, args, env []string, dir string) (int, error)
}

// Result reports a successful launch.
//
// Only the newly spawned child carries the injected proxy variables; the
// environment of the originally selected process is untouched.
type Result struct {
	// LaunchID uniquely identifies this launch in the session history.
	LaunchID string
	// ProcessName is the name of the relaunched process.
	ProcessName string
	// PID is the new child's process ID.
	PID int
	// ProxyURL is the scheme URL injected into the child's environment.
	ProxyURL string
	// Time is when the child was spawned.
	Time time.Time
}

// Launcher spawns child processes with proxy environments.
type Launcher struct {
	spawner Spawner
}

// New creates a Launcher backed by the given spawner.
func New(spawner Spawner) *Launcher {
	return &Launcher{spawner: spawner}
}

// NewSystem creates a Launcher that spawns real OS processes.
func NewSystem() *Launcher {
	return New(SystemSpawner{})
}

// Launch validates the endpoint, resolves the selected process's executable,
// and spawns it with proxy variables injected. Checks run in order and the
// first failure wins: invalid endpoint, no selection, unusable executable
// path, then spawn itself.
//
// The child is fire-and-forget: it is not awaited, tracked, or supervised.
func (l *Launcher) Launch(ip, port string, protocol model.Protocol, selected *proc.Record, extraArgs string) (Result, error) {
	endpoint, err := proxy.Validate(ip, port, protocol)
	if err != nil {
		return Result{}, &InvalidEndpointError{Reason: err}
	}

	if selected == nil {
		return Result{}, ErrNoProcessSelected
	}

	if selected.Exe == "" {
		return Result{}, ErrNoExecutablePath
	}
	if _, err := os.Stat(selected.Exe); err != nil {
		return Result{}, ErrNoExecutablePath
	}

	args := utils.SplitArgs(extraArgs)
	proxyURL := endpoint.URL()
	env := append(os.Environ(), ProxyEnv(proxyURL)...)

	// Run the child from its executable's directory so relative resource
	// paths keep resolving.
	dir := filepath.Dir(selected.Exe)

	pid, err := l.spawner.Spawn(selected.Exe, args, env, dir)
	if err != nil {
		return Result{}, &SpawnError{Err: err}
	}

	return Result{
		LaunchID:    uuid.New().String(),
		ProcessName: selected.Name,
		PID:         pid,
		ProxyURL:    proxyURL,
		Time:        time.Now(),
	}, nil
}

// ProxyEnv returns the proxy variable overrides for the given scheme URL.
// NO_PROXY is forced empty so the child routes everything through the proxy.
func ProxyEnv(proxyURL string) []string {
	return []string{
		"HTTP_PROXY=" + proxyURL,
		"HTTPS_PROXY=" + proxyURL,
		"ALL_PROXY=" + proxyURL,
		"http_proxy=" + proxyURL,
		"https_proxy=" + proxyURL,
		"all_proxy=" + proxyURL,
		"NO_PROXY=",
		"no_proxy=",
	}
}

// SystemSpawner starts real OS processes via exec.Cmd.
type SystemSpawner struct{}

// Spawn starts the process and releases the handle immediately.
func (SystemSpawner) Spawn(path string, args, env []string, dir string) (int, error) {
	cmd := exec.Command(path, args...)
	// exec.Cmd keeps the last value for duplicate env keys, so appending the
	// proxy overrides after the inherited environment is enough.
	cmd.Env = env
	cmd.Dir = dir

	if err := cmd.Start(); err != nil {
		return 0, err
	}

	pid := cmd.Process.Pid
	_ = cmd.Process.Release()
	return pid, nil
}
