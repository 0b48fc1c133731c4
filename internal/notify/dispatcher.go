// Package notify reports launch outcomes to configured channels.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gen2brain/beeep"

	"github.com/lazyvibe/proxyrun/internal/app"
	"github.com/lazyvibe/proxyrun/internal/launch"
)

// Dispatcher sends launch notifications to configured channels.
type Dispatcher struct {
	client *http.Client
}

// NewDispatcher creates a Dispatcher with sensible defaults.
func NewDispatcher() *Dispatcher {
	return &Dispatcher{
		client: &http.Client{
			Timeout: 5 * time.Second,
		},
	}
}

// Dispatch reports a successful launch. Notification failures are swallowed:
// the launch already happened and the status line carries the real outcome.
func (d *Dispatcher) Dispatch(ctx context.Context, cfg app.NotificationConfig, result launch.Result) {
	title := strings.TrimSpace(result.ProcessName)
	if title == "" {
		title = "ProxyRun"
	}
	message := fmt.Sprintf("Relaunched with proxy %s (pid %d)", result.ProxyURL, result.PID)

	if cfg.Desktop {
		_ = beeep.Notify(title, message, "")
	}

	if cfg.WebhookURL != "" {
		payload := map[string]any{
			"launchId": result.LaunchID,
			"process":  result.ProcessName,
			"pid":      result.PID,
			"proxyUrl": result.ProxyURL,
			"time":     result.Time.Unix(),
		}
		body, err := json.Marshal(payload)
		if err != nil {
			return
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, cfg.WebhookURL, bytes.NewReader(body))
		if err != nil {
			return
		}
		req.Header.Set("Content-Type", "application/json")
		resp, err := d.client.Do(req)
		if err != nil {
			return
		}
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}
}
