package launch

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/lazyvibe/proxyrun/internal/model"
	"github.com/lazyvibe/proxyrun/internal/proc"
	"github.com/lazyvibe/proxyrun/internal/proxy"
)

// fakeSpawner implements Spawner and records the last spawn request.
type fakeSpawner struct {
	path string
	args []string
	env  []string
	dir  string
	pid  int
	err  error
}

func (f *fakeSpawner) Spawn(path string, args, env []string, dir string) (int, error) {
	f.path = path
	f.args = args
	f.env = env
	f.dir = dir
	if f.err != nil {
		return 0, f.err
	}
	return f.pid, nil
}

// writeFakeExe creates a file to stand in for an executable path.
func writeFakeExe(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "someapp")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatalf("write fake exe: %v", err)
	}
	return path
}

func TestLaunchInvalidEndpointWinsFirst(t *testing.T) {
	l := New(&fakeSpawner{})

	// Even with no selection, the endpoint check fires first.
	_, err := l.Launch("", "7890", model.ProtocolHTTP, nil, "")
	var epErr *InvalidEndpointError
	if !errors.As(err, &epErr) {
		t.Fatalf("got=%v, want=InvalidEndpointError", err)
	}
	if !errors.Is(err, proxy.ErrEmptyIP) {
		t.Fatalf("got=%v, want wrapped ErrEmptyIP", err)
	}

	_, err = l.Launch("127.0.0.1", "banana", model.ProtocolHTTP, nil, "")
	if !errors.Is(err, proxy.ErrInvalidPort) {
		t.Fatalf("got=%v, want wrapped ErrInvalidPort", err)
	}
}

func TestLaunchNoProcessSelected(t *testing.T) {
	l := New(&fakeSpawner{})
	_, err := l.Launch("127.0.0.1", "7890", model.ProtocolHTTP, nil, "")
	if !errors.Is(err, ErrNoProcessSelected) {
		t.Fatalf("got=%v, want=ErrNoProcessSelected", err)
	}
}

func TestLaunchNoExecutablePath(t *testing.T) {
	l := New(&fakeSpawner{})

	// Empty path.
	rec := &proc.Record{PID: "1", Name: "ghost"}
	if _, err := l.Launch("127.0.0.1", "7890", model.ProtocolHTTP, rec, ""); !errors.Is(err, ErrNoExecutablePath) {
		t.Fatalf("empty exe: got=%v, want=ErrNoExecutablePath", err)
	}

	// Path that does not exist on disk.
	rec = &proc.Record{PID: "1", Name: "gone", Exe: filepath.Join(t.TempDir(), "missing")}
	if _, err := l.Launch("127.0.0.1", "7890", model.ProtocolHTTP, rec, ""); !errors.Is(err, ErrNoExecutablePath) {
		t.Fatalf("missing exe: got=%v, want=ErrNoExecutablePath", err)
	}
}

func TestLaunchSpawnsWithProxyEnv(t *testing.T) {
	exe := writeFakeExe(t)
	spawner := &fakeSpawner{pid: 4242}
	l := New(spawner)

	rec := &proc.Record{PID: "99", Name: "someapp", Exe: exe}
	res, err := l.Launch(" 127.0.0.1 ", "7890", model.ProtocolSOCKS5, rec, "--config config.toml  --debug")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if res.PID != 4242 {
		t.Errorf("PID: got=%d, want=4242", res.PID)
	}
	if res.ProcessName != "someapp" {
		t.Errorf("ProcessName: got=%q, want=%q", res.ProcessName, "someapp")
	}
	if res.ProxyURL != "socks5://127.0.0.1:7890" {
		t.Errorf("ProxyURL: got=%q, want=%q", res.ProxyURL, "socks5://127.0.0.1:7890")
	}
	if res.LaunchID == "" {
		t.Error("LaunchID: got empty, want uuid")
	}

	if spawner.path != exe {
		t.Errorf("path: got=%q, want=%q", spawner.path, exe)
	}
	if want := []string{"--config", "config.toml", "--debug"}; !reflect.DeepEqual(spawner.args, want) {
		t.Errorf("args: got=%v, want=%v", spawner.args, want)
	}
	if spawner.dir != filepath.Dir(exe) {
		t.Errorf("dir: got=%q, want=%q", spawner.dir, filepath.Dir(exe))
	}

	// The overrides must come after the inherited environment so they win.
	overrides := ProxyEnv("socks5://127.0.0.1:7890")
	if len(spawner.env) < len(overrides) {
		t.Fatalf("env too short: %d entries", len(spawner.env))
	}
	tail := spawner.env[len(spawner.env)-len(overrides):]
	if !reflect.DeepEqual(tail, overrides) {
		t.Errorf("env tail: got=%v, want=%v", tail, overrides)
	}
}

func TestLaunchSpawnFailure(t *testing.T) {
	exe := writeFakeExe(t)
	spawner := &fakeSpawner{err: errors.New("operation not permitted")}
	l := New(spawner)

	rec := &proc.Record{PID: "99", Name: "someapp", Exe: exe}
	_, err := l.Launch("127.0.0.1", "7890", model.ProtocolHTTP, rec, "")
	var spawnErr *SpawnError
	if !errors.As(err, &spawnErr) {
		t.Fatalf("got=%v, want=SpawnError", err)
	}
}

func TestProxyEnv(t *testing.T) {
	got := ProxyEnv("http://127.0.0.1:7890")
	want := []string{
		"HTTP_PROXY=http://127.0.0.1:7890",
		"HTTPS_PROXY=http://127.0.0.1:7890",
		"ALL_PROXY=http://127.0.0.1:7890",
		"http_proxy=http://127.0.0.1:7890",
		"https_proxy=http://127.0.0.1:7890",
		"all_proxy=http://127.0.0.1:7890",
		"NO_PROXY=",
		"no_proxy=",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got=%v, want=%v", got, want)
	}
}
