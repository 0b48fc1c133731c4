package model

import "strings"

// Profile is a named, persisted proxy endpoint.
//
// Profiles have no identifier beyond their position in the stored list;
// duplicate names are allowed.
type Profile struct {
	// Name is the display name (e.g., "Office", "Home Clash").
	Name string `json:"name"`
	// IP is the proxy host address as entered by the user.
	IP string `json:"ip"`
	// Port is the proxy port as numeric text.
	Port string `json:"port"`
	// Protocol selects the URL scheme for the proxy.
	Protocol Protocol `json:"protocol"`
}

// NewProfile creates a profile with trimmed fields.
func NewProfile(name, ip, port string, protocol Protocol) Profile {
	return Profile{
		Name:     strings.TrimSpace(name),
		IP:       strings.TrimSpace(ip),
		Port:     strings.TrimSpace(port),
		Protocol: protocol,
	}
}
