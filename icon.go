package main

import (
	"errors"
	"image"
	"image/color"
	"log"
	"math"

	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"

	"github.com/babs/unicon/compositor"
)

// defaultIconSize is used for the fallback icon when the config keeps the
// base image's own size.
const defaultIconSize = 256

// defaultIcon renders the fallback base icon: a white cube outline on a dark
// rounded square.
func defaultIcon(size int) *image.NRGBA {
	if size <= 0 {
		size = defaultIconSize
	}
	s := float64(size)
	dc := gg.NewContext(size, size)
	dc.SetColor(color.RGBA{0, 0, 0, 0})
	dc.Clear()

	margin := s * 0.06
	dc.SetColor(color.RGBA{34, 34, 38, 255})
	dc.DrawRoundedRectangle(margin, margin, s-2*margin, s-2*margin, s*0.18)
	dc.Fill()

	drawCube(dc, s/2, s/2+s*0.02, s*0.3, math.Max(1, s*0.045))
	return imaging.Clone(dc.Image())
}

// drawCube strokes an isometric cube of the given radius centered at (cx, cy).
func drawCube(dc *gg.Context, cx, cy, radius, lineWidth float64) {
	var hx, hy [6]float64
	for i := 0; i < 6; i++ {
		a := math.Pi/6 + float64(i)*math.Pi/3
		hx[i] = cx + radius*math.Cos(a)
		hy[i] = cy + radius*math.Sin(a)
	}

	dc.SetColor(color.RGBA{255, 255, 255, 255})
	dc.SetLineWidth(lineWidth)
	dc.SetLineJoin(gg.LineJoinRound)
	dc.SetLineCap(gg.LineCapRound)

	// Outer hexagon
	dc.MoveTo(hx[0], hy[0])
	for i := 1; i < 6; i++ {
		dc.LineTo(hx[i], hy[i])
	}
	dc.ClosePath()
	dc.Stroke()

	// Inner "Y": top-left, top-right and bottom edges meet at the center.
	for _, i := range []int{1, 3, 5} {
		dc.DrawLine(cx, cy, hx[i], hy[i])
		dc.Stroke()
	}
}

// resolveBase returns the custom image named in cfg, or the default icon
// when none is set or it cannot be decoded.
func resolveBase(cfg Config) image.Image {
	if cfg.IconPath != "" {
		img, err := compositor.LoadImage(cfg.IconPath)
		if err == nil {
			return img
		}
		if errors.Is(err, compositor.ErrImageDecode) {
			log.Printf("Custom icon unusable, falling back to default: %v", err)
		} else {
			log.Printf("Custom icon rejected, falling back to default: %v", err)
		}
	}
	size := cfg.IconSize
	if size <= 0 {
		size = defaultIconSize
	}
	return defaultIcon(size)
}

// composeOptions translates cfg into compositor options.
func composeOptions(cfg Config) compositor.Options {
	blend, err := compositor.ParseBlendMode(cfg.Blend)
	if err != nil {
		blend = compositor.BlendAdd
	}
	return compositor.Options{
		Overlay: resolveOverlay(cfg),
		Blend:   blend,
		Badge: compositor.Badge{
			Text:      cfg.BadgeText,
			Color:     cfg.BadgeTextColor,
			FontScale: cfg.FontSizeMultiplier,
			FontName:  cfg.FontName,
		},
		Size: cfg.IconSize,
	}
}

// buildIcon composes the icon described by cfg.
func buildIcon(cfg Config) (*image.NRGBA, error) {
	return compositor.Compose(resolveBase(cfg), composeOptions(cfg))
}
