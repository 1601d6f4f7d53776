package compositor

import (
	"bytes"
	"image"
	"image/color"
	"testing"
)

func solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+0] = c.R
		img.Pix[i+1] = c.G
		img.Pix[i+2] = c.B
		img.Pix[i+3] = c.A
	}
	return img
}

func TestOverlay_TransparentPixelsUntouched(t *testing.T) {
	img := solid(4, 4, color.NRGBA{10, 20, 30, 0})
	want := bytes.Clone(img.Pix)
	Overlay(img, Color{1, 1, 1, 1})
	if !bytes.Equal(img.Pix, want) {
		t.Errorf("Overlay changed transparent pixels: %v, want %v", img.Pix[:4], want[:4])
	}
}

func TestOverlay_ZeroAlphaIsIdentity(t *testing.T) {
	img := solid(3, 3, color.NRGBA{100, 150, 200, 255})
	img.SetNRGBA(1, 1, color.NRGBA{5, 6, 7, 128})
	want := bytes.Clone(img.Pix)
	Overlay(img, Color{1, 0.2, 0.7, 0})
	if !bytes.Equal(img.Pix, want) {
		t.Error("Overlay with alpha 0 should not change any pixel")
	}
}

func TestOverlay_WhiteOnOpaqueBlack(t *testing.T) {
	img := solid(2, 2, color.NRGBA{0, 0, 0, 255})
	Overlay(img, Color{1, 1, 1, 1})
	got := img.NRGBAAt(0, 0)
	want := color.NRGBA{255, 255, 255, 255}
	if got != want {
		t.Errorf("Overlay(white) on black = %v, want %v", got, want)
	}
}

func TestOverlay_Saturates(t *testing.T) {
	img := solid(1, 1, color.NRGBA{250, 200, 10, 255})
	Overlay(img, Color{1, 0, 0, 1})
	got := img.NRGBAAt(0, 0)
	want := color.NRGBA{255, 200, 10, 255}
	if got != want {
		t.Errorf("Overlay(red) = %v, want %v", got, want)
	}
}

func TestOverlay_ScalesWithPixelAlpha(t *testing.T) {
	img := solid(1, 1, color.NRGBA{0, 0, 0, 51})
	Overlay(img, Color{1, 1, 1, 1})
	// 255 * 51 / 255 = 51
	got := img.NRGBAAt(0, 0)
	want := color.NRGBA{51, 51, 51, 51}
	if got != want {
		t.Errorf("Overlay on alpha 51 = %v, want %v", got, want)
	}
}

func TestOverlay_ClampsColor(t *testing.T) {
	a := solid(1, 1, color.NRGBA{0, 0, 0, 255})
	b := solid(1, 1, color.NRGBA{0, 0, 0, 255})
	Overlay(a, Color{2, -1, 0.5, 7})
	Overlay(b, Color{1, 0, 0.5, 1})
	if a.NRGBAAt(0, 0) != b.NRGBAAt(0, 0) {
		t.Errorf("out-of-range color = %v, want %v", a.NRGBAAt(0, 0), b.NRGBAAt(0, 0))
	}
}

func TestOverlay_AlphaUnchanged(t *testing.T) {
	img := solid(1, 1, color.NRGBA{40, 40, 40, 200})
	Overlay(img, Color{0.3, 0.6, 0.9, 0.8})
	if got := img.NRGBAAt(0, 0).A; got != 200 {
		t.Errorf("alpha = %d, want 200", got)
	}
}

func TestOverlay_SubImage(t *testing.T) {
	img := solid(4, 4, color.NRGBA{0, 0, 0, 255})
	sub := img.SubImage(image.Rect(2, 2, 4, 4)).(*image.NRGBA)
	Overlay(sub, Color{1, 1, 1, 1})
	if got := img.NRGBAAt(0, 0); got.R != 0 {
		t.Errorf("pixel outside sub-image = %v, want untouched", got)
	}
	if got := img.NRGBAAt(3, 3); got.R != 255 {
		t.Errorf("pixel inside sub-image = %v, want tinted", got)
	}
}

func TestOverlayMultiply_FullAlpha(t *testing.T) {
	img := solid(1, 1, color.NRGBA{200, 100, 50, 255})
	OverlayMultiply(img, Color{0.5, 1, 0, 1})
	got := img.NRGBAAt(0, 0)
	want := color.NRGBA{100, 100, 0, 255}
	if got != want {
		t.Errorf("OverlayMultiply = %v, want %v", got, want)
	}
}

func TestOverlayMultiply_HalfAlpha(t *testing.T) {
	img := solid(1, 1, color.NRGBA{200, 100, 50, 255})
	OverlayMultiply(img, Color{0, 0, 0, 0.5})
	got := img.NRGBAAt(0, 0)
	want := color.NRGBA{100, 50, 25, 255}
	if got != want {
		t.Errorf("OverlayMultiply(black, 0.5) = %v, want %v", got, want)
	}
}

func TestOverlayMultiply_TransparentUntouched(t *testing.T) {
	img := solid(2, 2, color.NRGBA{9, 9, 9, 0})
	want := bytes.Clone(img.Pix)
	OverlayMultiply(img, Color{0, 0, 0, 1})
	if !bytes.Equal(img.Pix, want) {
		t.Error("OverlayMultiply changed transparent pixels")
	}
}

func TestColor_NRGBA(t *testing.T) {
	got := Color{1, 0.5, -3, 2}.NRGBA()
	want := color.NRGBA{255, 127, 0, 255}
	if got != want {
		t.Errorf("NRGBA() = %v, want %v", got, want)
	}
}

func TestColor_Hex(t *testing.T) {
	if got := (Color{1, 0, 0, 1}).Hex(); got != "#FF0000FF" {
		t.Errorf("Hex() = %q, want %q", got, "#FF0000FF")
	}
}

func TestParseBlendMode(t *testing.T) {
	for _, m := range []BlendMode{BlendAdd, BlendMultiply} {
		got, err := ParseBlendMode(m.String())
		if err != nil || got != m {
			t.Errorf("ParseBlendMode(%q) = %v, %v; want %v", m.String(), got, err, m)
		}
	}
	if _, err := ParseBlendMode("screen"); err == nil {
		t.Error("ParseBlendMode(screen) should fail")
	}
}
