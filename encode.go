package main

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"path/filepath"
	"strings"

	ico "github.com/sergeymakinen/go-ico"
)

// encodePNG encodes an image as PNG bytes.
func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

// encodeICO encodes an image as a single-entry ICO file.
func encodeICO(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := ico.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode ico: %w", err)
	}
	return buf.Bytes(), nil
}

// encodeForPath picks the encoding from the file extension of path.
func encodeForPath(path string, img image.Image) ([]byte, error) {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		return encodePNG(img)
	case ".ico":
		return encodeICO(img)
	default:
		return nil, fmt.Errorf("unsupported icon format %q (want .png or .ico)", ext)
	}
}
