// Package style defines the value types for terminal character styling:
// colors, per-character attributes, styled runs, and run-grouped lines.
// The JSON encoding of these types is the shared contract between the
// terminal host's selection dump and the conversion engine.
package style

import (
	"encoding/json"
	"fmt"
)

// ColorMode defines how a color is represented.
type ColorMode uint8

const (
	// ColorModeDefault is the terminal's default (unset) color.
	ColorModeDefault ColorMode = iota
	// ColorModeIndexed uses the 256-color palette (0-255).
	ColorModeIndexed
	// ColorModeRGB uses 24-bit true color.
	ColorModeRGB
)

// Color is a tagged variant: Default, Indexed(0-255), or RGB.
// The zero value is the terminal default. Colors are comparable with ==
// and equality is structural.
type Color struct {
	Mode    ColorMode
	Value   uint8 // palette index for Indexed mode
	R, G, B uint8 // components for RGB mode
}

// Default is the terminal's default color.
var Default = Color{}

// Indexed creates a 256-palette color.
func Indexed(v uint8) Color {
	return Color{Mode: ColorModeIndexed, Value: v}
}

// RGB creates a 24-bit true color.
func RGB(r, g, b uint8) Color {
	return Color{Mode: ColorModeRGB, R: r, G: g, B: b}
}

// IsDefault reports whether the color is the terminal default.
func (c Color) IsDefault() bool {
	return c.Mode == ColorModeDefault
}

// String returns a human-readable representation, mostly for debug traces.
func (c Color) String() string {
	switch c.Mode {
	case ColorModeIndexed:
		return fmt.Sprintf("indexed(%d)", c.Value)
	case ColorModeRGB:
		return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B)
	default:
		return "default"
	}
}

// colorJSON is the wire shape of a non-default color.
type colorJSON struct {
	Type  string `json:"type"`
	Value *int   `json:"value,omitempty"`
	R     *int   `json:"r,omitempty"`
	G     *int   `json:"g,omitempty"`
	B     *int   `json:"b,omitempty"`
}

// MarshalJSON encodes the color as null (default),
// {"type":"indexed","value":n}, or {"type":"rgb","r":..,"g":..,"b":..}.
func (c Color) MarshalJSON() ([]byte, error) {
	switch c.Mode {
	case ColorModeIndexed:
		v := int(c.Value)
		return json.Marshal(colorJSON{Type: "indexed", Value: &v})
	case ColorModeRGB:
		r, g, b := int(c.R), int(c.G), int(c.B)
		return json.Marshal(colorJSON{Type: "rgb", R: &r, G: &g, B: &b})
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON decodes the wire shape produced by MarshalJSON.
func (c *Color) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*c = Color{}
		return nil
	}
	var cj colorJSON
	if err := json.Unmarshal(data, &cj); err != nil {
		return err
	}
	switch cj.Type {
	case "indexed":
		if cj.Value == nil {
			return fmt.Errorf("style: indexed color missing value")
		}
		if *cj.Value < 0 || *cj.Value > 255 {
			return fmt.Errorf("style: indexed color value %d out of range", *cj.Value)
		}
		*c = Indexed(uint8(*cj.Value))
	case "rgb":
		if cj.R == nil || cj.G == nil || cj.B == nil {
			return fmt.Errorf("style: rgb color missing component")
		}
		for _, v := range []int{*cj.R, *cj.G, *cj.B} {
			if v < 0 || v > 255 {
				return fmt.Errorf("style: rgb component %d out of range", v)
			}
		}
		*c = RGB(uint8(*cj.R), uint8(*cj.G), uint8(*cj.B))
	default:
		return fmt.Errorf("style: unknown color type %q", cj.Type)
	}
	return nil
}
