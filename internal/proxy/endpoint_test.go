package proxy

import (
	"errors"
	"testing"

	"github.com/lazyvibe/proxyrun/internal/model"
)

func TestValidateURL(t *testing.T) {
	tests := []struct {
		name     string
		ip       string
		port     string
		protocol model.Protocol
		want     string
	}{
		{"http", "127.0.0.1", "7890", model.ProtocolHTTP, "http://127.0.0.1:7890"},
		{"socks5", "10.10.10.1", "1080", model.ProtocolSOCKS5, "socks5://10.10.10.1:1080"},
		{"socks4", "192.168.1.5", "4145", model.ProtocolSOCKS4, "socks4://192.168.1.5:4145"},
		{"trimmed ip", "  127.0.0.1  ", "7890", model.ProtocolHTTP, "http://127.0.0.1:7890"},
		{"trimmed port", "127.0.0.1", " 8080 ", model.ProtocolHTTP, "http://127.0.0.1:8080"},
		{"port zero", "127.0.0.1", "0", model.ProtocolHTTP, "http://127.0.0.1:0"},
		{"max port", "127.0.0.1", "65535", model.ProtocolHTTP, "http://127.0.0.1:65535"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ep, err := Validate(tt.ip, tt.port, tt.protocol)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := ep.URL(); got != tt.want {
				t.Fatalf("URL: got=%q, want=%q", got, tt.want)
			}
		})
	}
}

func TestValidateEmptyIP(t *testing.T) {
	for _, ip := range []string{"", "   ", "\t"} {
		if _, err := Validate(ip, "7890", model.ProtocolHTTP); !errors.Is(err, ErrEmptyIP) {
			t.Fatalf("ip=%q: got=%v, want=ErrEmptyIP", ip, err)
		}
	}
}

func TestValidateInvalidPort(t *testing.T) {
	for _, port := range []string{"", "abc", "70000", "-1", "80.5", "65536"} {
		if _, err := Validate("127.0.0.1", port, model.ProtocolHTTP); !errors.Is(err, ErrInvalidPort) {
			t.Fatalf("port=%q: got=%v, want=ErrInvalidPort", port, err)
		}
	}
}

func TestProtocolScheme(t *testing.T) {
	tests := []struct {
		protocol model.Protocol
		scheme   string
		label    string
	}{
		{model.ProtocolHTTP, "http", "HTTP"},
		{model.ProtocolSOCKS5, "socks5", "SOCKS5"},
		{model.ProtocolSOCKS4, "socks4", "SOCKS4"},
	}
	for _, tt := range tests {
		if got := tt.protocol.Scheme(); got != tt.scheme {
			t.Errorf("Scheme: got=%q, want=%q", got, tt.scheme)
		}
		if got := tt.protocol.Label(); got != tt.label {
			t.Errorf("Label: got=%q, want=%q", got, tt.label)
		}
	}
}
