// Package proxy validates proxy endpoint input and renders scheme URLs.
package proxy

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lazyvibe/proxyrun/internal/model"
)

var (
	// ErrEmptyIP is returned when the IP field is blank after trimming.
	ErrEmptyIP = errors.New("proxy IP must not be empty")
	// ErrInvalidPort is returned when the port is not an integer in [0, 65535].
	ErrInvalidPort = errors.New("proxy port must be a number between 0 and 65535")
)

// Endpoint is a validated proxy address. Construct via Validate.
type Endpoint struct {
	IP       string
	Port     uint16
	Protocol model.Protocol
}

// Validate checks raw ip/port input and returns a usable Endpoint.
// The ip and port are trimmed; the port must parse as an unsigned 16-bit
// integer. Port 0 is accepted: only the numeric form is checked, matching the
// original input contract.
func Validate(ip, port string, protocol model.Protocol) (Endpoint, error) {
	ip = strings.TrimSpace(ip)
	if ip == "" {
		return Endpoint{}, ErrEmptyIP
	}

	n, err := strconv.ParseUint(strings.TrimSpace(port), 10, 16)
	if err != nil {
		return Endpoint{}, ErrInvalidPort
	}

	return Endpoint{IP: ip, Port: uint16(n), Protocol: protocol}, nil
}

// URL renders the endpoint as "{scheme}://{ip}:{port}".
func (e Endpoint) URL() string {
	return fmt.Sprintf("%s://%s:%d", e.Protocol.Scheme(), e.IP, e.Port)
}
