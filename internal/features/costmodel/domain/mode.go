package domain

import (
	"errors"
	"fmt"
	"strings"
)

// TransportMode identifies how freight moves between two cities.
type TransportMode string

const (
	// ModeRoad is truck freight.
	ModeRoad TransportMode = "road"
	// ModeRail is rail freight.
	ModeRail TransportMode = "rail"
	// ModeAir is air cargo.
	ModeAir TransportMode = "air"
)

var (
	// ErrUnknownMode is returned when a mode is outside the supported set or missing from a parameter table.
	ErrUnknownMode = errors.New("unknown transport mode")
)

// AllModes returns every supported mode in a stable order.
func AllModes() []TransportMode {
	return []TransportMode{ModeRoad, ModeRail, ModeAir}
}

// IsValid reports whether m is one of the supported modes.
func (m TransportMode) IsValid() bool {
	switch m {
	case ModeRoad, ModeRail, ModeAir:
		return true
	}
	return false
}

// ParseTransportMode converts a wire value (case-insensitive) into a TransportMode.
func ParseTransportMode(s string) (TransportMode, error) {
	m := TransportMode(strings.ToLower(strings.TrimSpace(s)))
	if !m.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, s)
	}
	return m, nil
}

// ParseTransportModes parses a list of values, each of which may itself be a
// comma separated list. An empty input yields all modes. Duplicates are dropped.
func ParseTransportModes(values []string) ([]TransportMode, error) {
	var modes []TransportMode
	seen := make(map[TransportMode]bool)

	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if strings.TrimSpace(part) == "" {
				continue
			}
			m, err := ParseTransportMode(part)
			if err != nil {
				return nil, err
			}
			if !seen[m] {
				seen[m] = true
				modes = append(modes, m)
			}
		}
	}

	if len(modes) == 0 {
		return AllModes(), nil
	}
	return modes, nil
}
