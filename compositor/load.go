package compositor

import (
	"fmt"
	"image"
	"io"

	"github.com/disintegration/imaging"
)

// LoadImage reads and decodes the image at path (PNG, JPEG, GIF, BMP or
// TIFF), honoring EXIF orientation. Failures wrap ErrImageDecode.
func LoadImage(path string) (*image.NRGBA, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrImageDecode, path, err)
	}
	return normalizeDecoded(img)
}

// DecodeImage decodes an image from r. Failures wrap ErrImageDecode.
func DecodeImage(r io.Reader) (*image.NRGBA, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrImageDecode, err)
	}
	return normalizeDecoded(img)
}

func normalizeDecoded(img image.Image) (*image.NRGBA, error) {
	if err := checkGeometry(img.Bounds()); err != nil {
		return nil, err
	}
	return imaging.Clone(img), nil
}
