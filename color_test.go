package main

import (
	"math"
	"testing"

	"github.com/babs/unicon/compositor"
)

func TestAutoColor_EmptyNameIsOrange(t *testing.T) {
	got := autoColor("")
	want := compositor.Color{R: 1, G: 0.5, B: 0, A: 0.3}
	if got != want {
		t.Errorf("autoColor(\"\") = %+v, want %+v", got, want)
	}
}

func TestAutoColor_Deterministic(t *testing.T) {
	a := autoColor("my-project")
	b := autoColor("my-project")
	if a != b {
		t.Errorf("autoColor not stable: %+v vs %+v", a, b)
	}
	if c := autoColor("other-project"); c == a {
		t.Errorf("autoColor(%q) == autoColor(%q) = %+v", "other-project", "my-project", a)
	}
}

func TestAutoColor_Saturated(t *testing.T) {
	for _, name := range []string{"a", "unicon", "backend-api", "日本語"} {
		c := autoColor(name)
		if c.A != 0.3 {
			t.Errorf("autoColor(%q).A = %f, want 0.3", name, c.A)
		}
		hi := math.Max(c.R, math.Max(c.G, c.B))
		lo := math.Min(c.R, math.Min(c.G, c.B))
		if hi < 0.8 || hi > 1 {
			t.Errorf("autoColor(%q) value = %f, want [0.8,1]", name, hi)
		}
		if s := (hi - lo) / hi; s < 0.7-1e-9 {
			t.Errorf("autoColor(%q) saturation = %f, want >= 0.7", name, s)
		}
	}
}

func TestHSVToRGB(t *testing.T) {
	tests := []struct {
		h, s, v float64
		want    compositor.Color
	}{
		{0, 1, 1, compositor.Color{R: 1, G: 0, B: 0, A: 1}},
		{1.0 / 3, 1, 1, compositor.Color{R: 0, G: 1, B: 0, A: 1}},
		{2.0 / 3, 1, 1, compositor.Color{R: 0, G: 0, B: 1, A: 1}},
		{0.5, 0, 0.5, compositor.Color{R: 0.5, G: 0.5, B: 0.5, A: 1}},
	}
	for _, tt := range tests {
		got := hsvToRGB(tt.h, tt.s, tt.v)
		if math.Abs(got.R-tt.want.R) > 1e-9 || math.Abs(got.G-tt.want.G) > 1e-9 ||
			math.Abs(got.B-tt.want.B) > 1e-9 || got.A != 1 {
			t.Errorf("hsvToRGB(%v, %v, %v) = %+v, want %+v", tt.h, tt.s, tt.v, got, tt.want)
		}
	}
}

func TestResolveOverlay(t *testing.T) {
	cfg := defaultConfig()
	cfg.ProjectName = "acme"
	if got := resolveOverlay(cfg); got != autoColor("acme") {
		t.Errorf("resolveOverlay(auto) = %+v, want autoColor", got)
	}
	cfg.UseAutoColor = false
	cfg.OverlayColor = compositor.Black
	if got := resolveOverlay(cfg); got != compositor.Black {
		t.Errorf("resolveOverlay(manual) = %+v, want black", got)
	}
}

func TestParseHexColor(t *testing.T) {
	c, err := parseHexColor("#FF8000")
	if err != nil {
		t.Fatalf("parseHexColor error: %v", err)
	}
	if c.R != 1 || c.B != 0 || c.A != 1 {
		t.Errorf("parseHexColor(#FF8000) = %+v", c)
	}
	if math.Abs(c.G-128.0/255) > 1e-9 {
		t.Errorf("G = %f, want %f", c.G, 128.0/255)
	}

	c, err = parseHexColor("00000000")
	if err != nil {
		t.Fatalf("parseHexColor error: %v", err)
	}
	if c != (compositor.Color{}) {
		t.Errorf("parseHexColor(00000000) = %+v, want zero", c)
	}
}

func TestParseHexColor_Invalid(t *testing.T) {
	for _, s := range []string{"", "#fff", "#GGGGGG", "red", "#1234567"} {
		if _, err := parseHexColor(s); err == nil {
			t.Errorf("parseHexColor(%q) should fail", s)
		}
	}
}
