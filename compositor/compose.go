package compositor

import (
	"image"

	"github.com/disintegration/imaging"
)

// Options describes one composition request.
type Options struct {
	// Overlay is applied when its alpha is above zero.
	Overlay Color
	Blend   BlendMode
	// Badge is drawn when its text is non-empty.
	Badge Badge
	// Size, when positive, fits the base into a Size×Size square before
	// the overlay and badge are applied.
	Size int
}

// Compose builds an icon from base according to opts and returns it as a
// new buffer. base is never modified. With no overlay, no badge and no Size
// the result is a pixel-for-pixel copy of base.
//
// The caller substitutes its own default icon for a missing base; a nil base
// returns ErrNoImage. On error no partial result is returned.
func Compose(base image.Image, opts Options) (*image.NRGBA, error) {
	if base == nil {
		return nil, ErrNoImage
	}
	if err := checkGeometry(base.Bounds()); err != nil {
		return nil, err
	}

	var (
		img *image.NRGBA
		err error
	)
	if opts.Size > 0 {
		if img, err = FitSquare(base, opts.Size); err != nil {
			return nil, err
		}
	} else {
		img = imaging.Clone(base)
	}

	if opts.Overlay.Clamped().A > 0 {
		switch opts.Blend {
		case BlendMultiply:
			OverlayMultiply(img, opts.Overlay)
		default:
			Overlay(img, opts.Overlay)
		}
	}

	if opts.Badge.Text != "" {
		if img, err = DrawBadge(img, opts.Badge); err != nil {
			return nil, err
		}
	}
	return img, nil
}
