package ui

import (
	"github.com/lazyvibe/proxyrun/internal/model"
	"github.com/lazyvibe/proxyrun/internal/proxy"
)

// currentProxyURL renders the endpoint form as a scheme URL, or empty when
// the form does not validate yet.
func (a App) currentProxyURL() string {
	endpoint, err := proxy.Validate(a.ip, a.port, a.protocol)
	if err != nil {
		return ""
	}
	return endpoint.URL()
}

// protocolLabels returns the protocol choices for the endpoint dialog.
func protocolLabels() []string {
	protocols := model.Protocols()
	labels := make([]string, len(protocols))
	for i, p := range protocols {
		labels[i] = p.Label()
	}
	return labels
}

// protocolFromLabel maps a dialog choice back to a Protocol.
func protocolFromLabel(label string) model.Protocol {
	for _, p := range model.Protocols() {
		if p.Label() == label {
			return p
		}
	}
	return model.ProtocolHTTP
}
