package main

import (
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"

	"github.com/OneOfOne/xxhash"

	"github.com/babs/unicon/compositor"
)

// defaultAutoColor is used when no project name is known: orange at 30%.
var defaultAutoColor = compositor.Color{R: 1, G: 0.5, B: 0, A: 0.3}

// autoColor derives a stable, saturated overlay color from a project name.
// The same name always yields the same color.
func autoColor(projectName string) compositor.Color {
	if projectName == "" {
		return defaultAutoColor
	}
	seed := xxhash.ChecksumString64(projectName)
	rng := rand.New(rand.NewSource(int64(seed)))

	h := rng.Float64()
	s := 0.7 + rng.Float64()*0.3
	v := 0.8 + rng.Float64()*0.2

	c := hsvToRGB(h, s, v)
	c.A = 0.3
	return c
}

// hsvToRGB converts hue, saturation and value in [0,1] to an opaque color.
func hsvToRGB(h, s, v float64) compositor.Color {
	h = math.Mod(h, 1) * 6
	i := math.Floor(h)
	f := h - i
	p := v * (1 - s)
	q := v * (1 - s*f)
	t := v * (1 - s*(1-f))

	var r, g, b float64
	switch int(i) % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}
	return compositor.Color{R: r, G: g, B: b, A: 1}
}

// resolveOverlay returns the overlay color the config asks for.
func resolveOverlay(cfg Config) compositor.Color {
	if cfg.UseAutoColor {
		return autoColor(cfg.ProjectName)
	}
	return cfg.OverlayColor
}

// parseHexColor parses "#RRGGBB" or "#RRGGBBAA" (leading # optional).
func parseHexColor(s string) (compositor.Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return compositor.Color{}, fmt.Errorf("invalid color %q: want #RRGGBB or #RRGGBBAA", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return compositor.Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	channel := func(shift uint) float64 {
		return float64((v>>shift)&0xff) / 255
	}
	return compositor.Color{R: channel(24), G: channel(16), B: channel(8), A: channel(0)}, nil
}
