// Package model defines core data structures for ProxyRun.
package model

import (
	"encoding/json"
	"fmt"
)

// Protocol represents the proxy protocol advertised to launched processes.
type Protocol string

const (
	// ProtocolHTTP is a plain HTTP proxy.
	ProtocolHTTP Protocol = "http"
	// ProtocolSOCKS5 is a SOCKS5 proxy.
	ProtocolSOCKS5 Protocol = "socks5"
	// ProtocolSOCKS4 is a SOCKS4 proxy.
	ProtocolSOCKS4 Protocol = "socks4"
)

// Protocols lists all supported protocols in display order.
func Protocols() []Protocol {
	return []Protocol{ProtocolHTTP, ProtocolSOCKS5, ProtocolSOCKS4}
}

// Scheme returns the URL scheme for the protocol.
func (p Protocol) Scheme() string {
	return string(p)
}

// Label returns the display name for the protocol.
func (p Protocol) Label() string {
	switch p {
	case ProtocolHTTP:
		return "HTTP"
	case ProtocolSOCKS5:
		return "SOCKS5"
	case ProtocolSOCKS4:
		return "SOCKS4"
	}
	return string(p)
}

// ParseProtocol converts a scheme string into a Protocol.
func ParseProtocol(s string) (Protocol, error) {
	switch Protocol(s) {
	case ProtocolHTTP, ProtocolSOCKS5, ProtocolSOCKS4:
		return Protocol(s), nil
	}
	return "", fmt.Errorf("unknown proxy protocol %q", s)
}

// UnmarshalJSON rejects protocol values outside the supported set so a
// tampered profiles file is detected at load time.
func (p *Protocol) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseProtocol(s)
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}
