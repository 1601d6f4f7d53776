package compositor

import (
	"errors"
	"fmt"
	"image"
)

var (
	// ErrImageDecode reports a base image that could not be read or decoded.
	// Callers usually fall back to their default icon.
	ErrImageDecode = errors.New("image decode failed")

	// ErrInvalidGeometry reports an image with a non-positive width or height.
	ErrInvalidGeometry = errors.New("invalid image geometry")

	// ErrNoImage is returned by Compose when no base image is supplied.
	ErrNoImage = errors.New("no base image")
)

func checkGeometry(r image.Rectangle) error {
	if r.Dx() <= 0 || r.Dy() <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidGeometry, r.Dx(), r.Dy())
	}
	return nil
}
