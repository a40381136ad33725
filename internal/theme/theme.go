// Package theme owns the light/dark mode shared by every panel of the dashboard.
// The root creates one Provider and hands the same pointer to each consumer.
package theme

import (
	"fmt"
	"strings"

	"github.com/idilsaglam/classboard/internal/observe"
)

// Mode is the two-valued display mode.
type Mode string

const (
	Light Mode = "light"
	Dark  Mode = "dark"
)

// Toggle returns the other mode. Anything that is not Dark toggles to Dark.
func (m Mode) Toggle() Mode {
	if m == Dark {
		return Light
	}
	return Dark
}

func (m Mode) String() string { return string(m) }

// ParseMode reads "light" or "dark", ignoring case and surrounding space.
// An empty string yields Light.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "light":
		return Light, nil
	case "dark":
		return Dark, nil
	}
	return "", fmt.Errorf("unknown theme %q (want light or dark)", s)
}

// Provider holds the session's mode.
type Provider struct {
	mode      Mode
	listeners observe.List[Mode]
}

// NewProvider returns a Provider starting in initial; an invalid mode starts Light.
func NewProvider(initial Mode) *Provider {
	if initial != Dark {
		initial = Light
	}
	return &Provider{mode: initial}
}

func (p *Provider) Mode() Mode { return p.mode }

// Dark reports whether the current mode is Dark.
func (p *Provider) Dark() bool { return p.mode == Dark }

// Toggle flips the mode unconditionally, notifies subscribers and returns the new mode.
func (p *Provider) Toggle() Mode {
	p.mode = p.mode.Toggle()
	p.listeners.Notify(p.mode)
	return p.mode
}

// Subscribe registers fn to run after every Toggle.
func (p *Provider) Subscribe(fn func(Mode)) (cancel func()) {
	return p.listeners.Subscribe(fn)
}
