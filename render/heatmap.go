package render

import (
	"fmt"
	"image/color"
	"io"

	"github.com/carbocation/pfx"
	"github.com/fogleman/gg"

	"github.com/bulkrna/diffexpr"
	"github.com/bulkrna/diffexpr/dge"
)

// ExpressionHeatmap renders the table as a colored matrix, one cell per
// gene and sample. The ramp runs blue through white to red, centered on
// the whole-table mean and saturating two standard deviations out, so a
// cell's color says how far that measurement sits from the table's
// center. Pass a Head view to truncate the rows drawn.
func ExpressionHeatmap(w io.Writer, size Size, t *diffexpr.SampleTable, norms dge.Norms) error {
	if t.Len() == 0 || len(t.Samples) == 0 {
		return fmt.Errorf("no rows to draw")
	}

	const (
		leftPad = 90
		topPad  = 40
		pad     = 10
	)

	width, height := size.or(
		leftPad+48*len(t.Samples)+pad,
		topPad+24*t.Len()+pad,
	)

	cellW := float64(width-leftPad-pad) / float64(len(t.Samples))
	cellH := float64(height-topPad-pad) / float64(t.Len())
	if cellW < 1 || cellH < 1 {
		return fmt.Errorf("canvas %dx%d is too small for %d samples x %d rows", width, height, len(t.Samples), t.Len())
	}

	center := norms.Mean()
	scale := 2 * norms.StandardDeviation()
	if scale == 0 {
		scale = 1
	}

	dc := gg.NewContext(width, height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	for yi, row := range t.Rows {
		for xi, v := range row.Values {
			dc.SetColor(rampColor(v, center, scale))
			dc.DrawRectangle(leftPad+float64(xi)*cellW, topPad+float64(yi)*cellH, cellW, cellH)
			dc.Fill()
		}
	}

	dc.SetRGB(0, 0, 0)
	for xi, name := range t.Samples {
		dc.DrawStringAnchored(name, leftPad+(float64(xi)+0.5)*cellW, topPad-10, 0.5, 0.5)
	}
	for yi, row := range t.Rows {
		dc.DrawStringAnchored(row.Gene, leftPad-8, topPad+(float64(yi)+0.5)*cellH, 1, 0.5)
	}

	if err := dc.EncodePNG(w); err != nil {
		return pfx.Err(err)
	}

	return nil
}

// rampColor maps v onto the blue-white-red ramp: the center maps to white
// and the ends saturate at center±scale.
func rampColor(v, center, scale float64) color.Color {
	d := (v - center) / scale
	if d > 1 {
		d = 1
	}
	if d < -1 {
		d = -1
	}

	if d >= 0 {
		fade := uint8(255 * (1 - d))
		return color.RGBA{R: 255, G: fade, B: fade, A: 255}
	}

	fade := uint8(255 * (1 + d))
	return color.RGBA{R: fade, G: fade, B: 255, A: 255}
}
