// Package design loads a utility-CSS design system from a stylesheet and
// resolves canonical spellings for class name candidates.
//
// The theme is read from @theme blocks (with :root custom properties as a
// fallback): --spacing defines the base spacing step, --color-* variables
// define the named palette, and --radius-* variables define named radii.
package design

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// DefaultRootFontSize is the pixels-per-rem ratio assumed when the caller
// does not configure one.
const DefaultRootFontSize = 16.0

// DefaultSpacing is the base spacing step used when the stylesheet does not
// declare --spacing.
var DefaultSpacing = Length{Value: 0.25, Unit: "rem"}

// Length is a CSS length restricted to the units the canonicalizer converts.
type Length struct {
	Value float64
	Unit  string // "rem" or "px"
}

// Rem converts the length to rem using the given root font size in pixels.
func (l Length) Rem(rootFontSize float64) float64 {
	if l.Unit == "px" {
		return l.Value / rootFontSize
	}
	return l.Value
}

func (l Length) String() string {
	return strconv.FormatFloat(l.Value, 'f', -1, 64) + l.Unit
}

// Options configures canonicalization.
type Options struct {
	// RootFontSize is the pixels-per-rem ratio for relative-unit conversion.
	// Zero means DefaultRootFontSize.
	RootFontSize float64
}

func (o Options) rootFontSize() float64 {
	if o.RootFontSize > 0 {
		return o.RootFontSize
	}
	return DefaultRootFontSize
}

// System is the loaded in-memory representation of a stylesheet's utility
// definitions and scale.
type System struct {
	// Spacing is the base spacing step (--spacing).
	Spacing Length

	// Colors maps palette names to normalized values ("red-500" -> "#ef4444").
	Colors map[string]string

	// Radii maps radius names to lengths ("sm" -> 0.125rem).
	Radii map[string]Length

	// colorsByValue is the reverse palette index. The first declaration of a
	// value wins, so reloading the same stylesheet is deterministic.
	colorsByValue map[string]string
}

// ThemeEntry is a single resolved theme variable.
type ThemeEntry struct {
	Name  string
	Value string
}

// Description groups the resolved theme by namespace for display.
type Description struct {
	Spacing Length
	Colors  []ThemeEntry
	Radii   []ThemeEntry
}

// Describe returns the resolved theme sorted by name within each namespace.
func (s *System) Describe() Description {
	d := Description{Spacing: s.Spacing}

	for name, value := range s.Colors {
		d.Colors = append(d.Colors, ThemeEntry{Name: name, Value: value})
	}
	sort.Slice(d.Colors, func(i, j int) bool { return d.Colors[i].Name < d.Colors[j].Name })

	for name, value := range s.Radii {
		d.Radii = append(d.Radii, ThemeEntry{Name: name, Value: value.String()})
	}
	sort.Slice(d.Radii, func(i, j int) bool { return d.Radii[i].Name < d.Radii[j].Name })

	return d
}

// parseLength parses a CSS length in rem or px. The bare value "0" is
// accepted as 0rem.
func parseLength(s string) (Length, error) {
	s = strings.TrimSpace(s)

	switch {
	case s == "0":
		return Length{Value: 0, Unit: "rem"}, nil
	case strings.HasSuffix(s, "rem"):
		v, err := strconv.ParseFloat(strings.TrimSuffix(s, "rem"), 64)
		if err != nil {
			return Length{}, fmt.Errorf("invalid length %q", s)
		}
		return Length{Value: v, Unit: "rem"}, nil
	case strings.HasSuffix(s, "px"):
		v, err := strconv.ParseFloat(strings.TrimSuffix(s, "px"), 64)
		if err != nil {
			return Length{}, fmt.Errorf("invalid length %q", s)
		}
		return Length{Value: v, Unit: "px"}, nil
	}

	return Length{}, fmt.Errorf("unsupported length %q", s)
}
