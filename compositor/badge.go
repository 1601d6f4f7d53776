package compositor

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/fogleman/gg"
	"github.com/rivo/uniseg"
	"golang.org/x/image/font/sfnt"
)

const (
	// badgeMargin is the gap to the right and bottom edges, as a fraction of the side.
	badgeMargin = 0.05
	// outlineWidth is the black stroke width as a fraction of the font size.
	outlineWidth = 0.03
)

// Font size per character count, as a fraction of the side. Longer strings
// use badgeMinRatio.
var badgeRatios = [...]float64{0.40, 0.35, 0.28, 0.25}

const badgeMinRatio = 0.22

// Badge describes the text drawn in the bottom-right corner of an icon.
type Badge struct {
	Text  string
	Color Color
	// FontScale multiplies the stepped font size. Zero means 1.
	FontScale float64
	// FontName selects an embedded font; see ValidFontName. Empty means bold.
	FontName string
}

// BadgeFontSize returns the stepped font size for text on a canvas of the
// given side, before any FontScale is applied. Length is counted in
// user-perceived characters.
func BadgeFontSize(text string, side float64) float64 {
	n := uniseg.GraphemeClusterCount(text)
	switch {
	case n <= 0:
		return 0
	case n <= len(badgeRatios):
		return side * badgeRatios[n-1]
	default:
		return side * badgeMinRatio
	}
}

// DrawBadge normalizes img to a square and draws b.Text in its bottom-right
// corner: a black outline pass, then a fill pass in b.Color over the same
// glyph path. Text wider than the canvas minus both margins is shrunk to fit.
// img is not modified.
func DrawBadge(img image.Image, b Badge) (*image.NRGBA, error) {
	sq, err := NormalizeToSquare(img)
	if err != nil {
		return nil, err
	}
	if b.Text == "" {
		return sq, nil
	}

	f, err := loadFont(b.FontName)
	if err != nil {
		return nil, err
	}

	side := float64(sq.Rect.Dx())
	margin := side * badgeMargin
	size := BadgeFontSize(b.Text, side)
	if b.FontScale > 0 {
		size *= b.FontScale
	}

	l, err := layoutText(f, b.Text, size)
	if err != nil {
		return nil, err
	}
	if avail := side - 2*margin; l.width > avail && l.width > 0 {
		size *= avail / l.width
		if l, err = layoutText(f, b.Text, size); err != nil {
			return nil, err
		}
	}

	x := side - l.width - margin
	y := side - margin - l.descent

	// The glyphs are rendered on their own layer so pixels outside the text
	// keep their exact bytes.
	dc := gg.NewContext(sq.Rect.Dx(), sq.Rect.Dy())
	dc.SetLineJoin(gg.LineJoinRound)
	dc.SetLineWidth(max(1, size*outlineWidth))
	tracePath(dc, l.segments, x, y)

	dc.SetColor(color.Black)
	dc.StrokePreserve()
	dc.SetColor(b.Color.NRGBA())
	dc.Fill()

	layer, ok := dc.Image().(*image.RGBA)
	if !ok {
		layer = image.NewRGBA(dc.Image().Bounds())
		draw.Draw(layer, layer.Rect, dc.Image(), layer.Rect.Min, draw.Src)
	}
	compositeOver(sq, layer)
	return sq, nil
}

// compositeOver blends the premultiplied layer onto dst with source-over,
// aligning both origins. Pixels where the layer is fully transparent are
// left untouched.
func compositeOver(dst *image.NRGBA, layer *image.RGBA) {
	w := min(dst.Rect.Dx(), layer.Rect.Dx())
	h := min(dst.Rect.Dy(), layer.Rect.Dy())
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			j := layer.PixOffset(layer.Rect.Min.X+x, layer.Rect.Min.Y+y)
			src := layer.Pix[j : j+4 : j+4]
			if src[3] == 0 {
				continue
			}
			i := dst.PixOffset(dst.Rect.Min.X+x, dst.Rect.Min.Y+y)
			p := dst.Pix[i : i+4 : i+4]

			srcA := float64(src[3]) / 255
			keep := float64(p[3]) / 255 * (1 - srcA)
			outA := srcA + keep
			for c := 0; c < 3; c++ {
				v := (float64(src[c])/255 + float64(p[c])/255*keep) / outA
				p[c] = uint8(clamp01(v)*255 + 0.5)
			}
			p[3] = uint8(outA*255 + 0.5)
		}
	}
}

// tracePath appends the glyph outlines, offset by (x, y), to the current path.
func tracePath(dc *gg.Context, segs []sfnt.Segment, x, y float64) {
	pt := func(s sfnt.Segment, i int) (float64, float64) {
		return x + fixedToFloat(s.Args[i].X), y + fixedToFloat(s.Args[i].Y)
	}
	open := false
	for _, s := range segs {
		switch s.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				dc.ClosePath()
			}
			dc.MoveTo(pt(s, 0))
			open = true
		case sfnt.SegmentOpLineTo:
			dc.LineTo(pt(s, 0))
		case sfnt.SegmentOpQuadTo:
			x1, y1 := pt(s, 0)
			x2, y2 := pt(s, 1)
			dc.QuadraticTo(x1, y1, x2, y2)
		case sfnt.SegmentOpCubeTo:
			x1, y1 := pt(s, 0)
			x2, y2 := pt(s, 1)
			x3, y3 := pt(s, 2)
			dc.CubicTo(x1, y1, x2, y2, x3, y3)
		}
	}
	if open {
		dc.ClosePath()
	}
}
