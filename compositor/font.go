package compositor

import (
	"fmt"
	"math"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// DefaultFontName is the bold sans-serif used for badges.
const DefaultFontName = "bold"

var fontData = map[string][]byte{
	"bold":     gobold.TTF,
	"regular":  goregular.TTF,
	"mono":     gomono.TTF,
	"monobold": gomonobold.TTF,
}

// ValidFontName reports whether name is one of the embedded badge fonts.
func ValidFontName(name string) bool {
	_, ok := fontData[name]
	return ok
}

// loadFont parses the embedded font called name. An empty name selects the default.
func loadFont(name string) (*opentype.Font, error) {
	if name == "" {
		name = DefaultFontName
	}
	data, ok := fontData[name]
	if !ok {
		return nil, fmt.Errorf("unknown font %q", name)
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %w", name, err)
	}
	return f, nil
}

// textLayout is a laid out string: glyph outlines translated to their pen
// positions, with the baseline at y=0 and +y pointing down.
type textLayout struct {
	segments []sfnt.Segment
	width    float64 // advance width including kerning
	ascent   float64
	descent  float64
}

// layoutText shapes text at size pixels per em without hinting, so every
// metric scales linearly with size.
func layoutText(f *opentype.Font, text string, size float64) (textLayout, error) {
	var (
		buf     sfnt.Buffer
		l       textLayout
		pen     fixed.Int26_6
		prev    sfnt.GlyphIndex
		hasPrev bool
	)
	ppem := fixed.Int26_6(math.Round(size * 64))

	m, err := f.Metrics(&buf, ppem, font.HintingNone)
	if err != nil {
		return l, fmt.Errorf("font metrics: %w", err)
	}
	l.ascent = fixedToFloat(m.Ascent)
	l.descent = fixedToFloat(m.Descent)

	for _, r := range text {
		gi, err := f.GlyphIndex(&buf, r)
		if err != nil {
			return l, fmt.Errorf("glyph index %q: %w", r, err)
		}
		if hasPrev {
			// Fonts without a kern table report an error; treat as zero.
			if k, err := f.Kern(&buf, prev, gi, ppem, font.HintingNone); err == nil {
				pen += k
			}
		}

		segs, err := f.LoadGlyph(&buf, gi, ppem, nil)
		if err != nil {
			return l, fmt.Errorf("load glyph %q: %w", r, err)
		}
		for _, s := range segs {
			for i := range s.Args {
				s.Args[i].X += pen
			}
			l.segments = append(l.segments, s)
		}

		adv, err := f.GlyphAdvance(&buf, gi, ppem, font.HintingNone)
		if err != nil {
			return l, fmt.Errorf("glyph advance %q: %w", r, err)
		}
		pen += adv
		prev, hasPrev = gi, true
	}
	l.width = fixedToFloat(pen)
	return l, nil
}

func fixedToFloat(v fixed.Int26_6) float64 {
	return float64(v) / 64
}
