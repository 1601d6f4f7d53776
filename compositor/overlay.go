package compositor

import "image"

// Overlay tints img in place with an additive, alpha-premultiplied wash.
//
// For every pixel with non-zero alpha each color channel becomes
// min(255, old + c.X*c.A*255 * alpha/255). Transparent pixels and the alpha
// channel are never modified, so the tint cannot create visibility.
func Overlay(img *image.NRGBA, c Color) {
	c = c.Clamped()
	if c.A == 0 {
		return
	}
	addR := int(c.R * c.A * 255)
	addG := int(c.G * c.A * 255)
	addB := int(c.B * c.A * 255)

	eachRow(img, func(row []uint8) {
		for i := 0; i < len(row); i += 4 {
			a := int(row[i+3])
			if a == 0 {
				continue
			}
			row[i+0] = addSaturate(row[i+0], addR*a/255)
			row[i+1] = addSaturate(row[i+1], addG*a/255)
			row[i+2] = addSaturate(row[i+2], addB*a/255)
		}
	})
}

// OverlayMultiply tints img in place by interpolating each channel toward
// channel*c.X with weight c.A. Transparent pixels and alpha are untouched.
func OverlayMultiply(img *image.NRGBA, c Color) {
	c = c.Clamped()
	if c.A == 0 {
		return
	}
	mul := [3]float64{c.R, c.G, c.B}

	eachRow(img, func(row []uint8) {
		for i := 0; i < len(row); i += 4 {
			if row[i+3] == 0 {
				continue
			}
			for ch := 0; ch < 3; ch++ {
				old := float64(row[i+ch])
				v := old + (old*mul[ch]-old)*c.A
				row[i+ch] = uint8(v + 0.5)
			}
		}
	})
}

// eachRow calls fn with the pixel bytes of every row inside img.Rect.
func eachRow(img *image.NRGBA, fn func(row []uint8)) {
	b := img.Rect
	w := b.Dx() * 4
	for y := b.Min.Y; y < b.Max.Y; y++ {
		off := img.PixOffset(b.Min.X, y)
		fn(img.Pix[off : off+w])
	}
}

func addSaturate(v uint8, add int) uint8 {
	s := int(v) + add
	if s > 255 {
		return 255
	}
	return uint8(s)
}
