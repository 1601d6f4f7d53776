package compositor

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
)

// NormalizeToSquare centers img on a new transparent side×side canvas where
// side is the larger of its dimensions. The aspect ratio is preserved.
func NormalizeToSquare(img image.Image) (*image.NRGBA, error) {
	b := img.Bounds()
	if err := checkGeometry(b); err != nil {
		return nil, err
	}
	w, h := b.Dx(), b.Dy()
	side := max(w, h)

	scale := math.Min(float64(side)/float64(w), float64(side)/float64(h))
	sw := int(math.Round(float64(w) * scale))
	sh := int(math.Round(float64(h) * scale))

	var src image.Image = img
	if sw != w || sh != h {
		src = imaging.Resize(img, sw, sh, imaging.Lanczos)
	}

	canvas := imaging.New(side, side, color.NRGBA{})
	return imaging.Paste(canvas, src, image.Pt((side-sw)/2, (side-sh)/2)), nil
}

// FitSquare normalizes img to a square and resamples it to size×size.
// A source that is already size×size after normalization is only copied.
func FitSquare(img image.Image, size int) (*image.NRGBA, error) {
	if size <= 0 {
		return nil, checkGeometry(image.Rect(0, 0, size, size))
	}
	sq, err := NormalizeToSquare(img)
	if err != nil {
		return nil, err
	}
	if sq.Rect.Dx() == size {
		return sq, nil
	}
	return imaging.Resize(sq, size, size, imaging.Lanczos), nil
}
