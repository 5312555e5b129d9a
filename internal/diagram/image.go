// Package diagram draws steel sections and flexural capacity curves, as
// ASCII for the console and as images through gonum/plot.
package diagram

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/bambangtrikodono-PCE/civil-steel-calculator/internal/member"
	"github.com/bambangtrikodono-PCE/civil-steel-calculator/internal/profile"
)

var (
	steelFill = color.RGBA{R: 100, G: 149, B: 237, A: 150}
	steelEdge = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	limitLine = color.RGBA{R: 255, G: 0, B: 0, A: 255}
)

// ExportSection writes the outline of an I-shape to an image file. The
// format follows the extension (png, svg or pdf); anything else gets .png.
func ExportSection(s profile.Section, filename string) error {
	p, err := sectionPlot(s)
	if err != nil {
		return err
	}
	return save(p, 6*vg.Inch, 6*vg.Inch, filename)
}

// WriteSectionPNG renders the section outline as PNG to w.
func WriteSectionPNG(w io.Writer, s profile.Section) (int64, error) {
	p, err := sectionPlot(s)
	if err != nil {
		return 0, err
	}
	wt, err := p.WriterTo(6*vg.Inch, 6*vg.Inch, "png")
	if err != nil {
		return 0, err
	}
	return wt.WriteTo(w)
}

func sectionPlot(s profile.Section) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = s.Name()
	p.X.Label.Text = "Width (mm)"
	p.Y.Label.Text = "Height (mm)"

	d, bf, tw, tf := s.D(), s.Bf(), s.Tw(), s.Tf()
	half := bf / 2

	// origin at the centre of the bottom flange
	parts := []plotter.XYs{
		{{X: -half, Y: 0}, {X: half, Y: 0}, {X: half, Y: tf}, {X: -half, Y: tf}},
		{{X: -tw / 2, Y: tf}, {X: tw / 2, Y: tf}, {X: tw / 2, Y: d - tf}, {X: -tw / 2, Y: d - tf}},
		{{X: -half, Y: d - tf}, {X: half, Y: d - tf}, {X: half, Y: d}, {X: -half, Y: d}},
	}
	for _, pts := range parts {
		poly, err := plotter.NewPolygon(pts)
		if err != nil {
			return nil, err
		}
		poly.Color = steelFill
		poly.LineStyle.Color = steelEdge
		poly.LineStyle.Width = vg.Points(1.5)
		p.Add(poly)
	}

	// Dimension lines
	gap := 0.15 * bf
	dims := []plotter.XYs{
		{{X: half + gap, Y: 0}, {X: half + gap, Y: d}},
		{{X: -half, Y: d + gap}, {X: half, Y: d + gap}},
	}
	for _, pts := range dims {
		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, err
		}
		line.LineStyle.Color = color.Gray{Y: 96}
		line.LineStyle.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
		p.Add(line)
	}

	labels, err := plotter.NewLabels(plotter.XYLabels{
		XYs: []plotter.XY{
			{X: half + 1.3*gap, Y: d / 2},
			{X: 0, Y: d + 1.3*gap},
			{X: tw/2 + 0.05*bf, Y: d / 3},
		},
		Labels: []string{
			fmt.Sprintf("d=%.0fmm", d),
			fmt.Sprintf("bf=%.0fmm", bf),
			fmt.Sprintf("tw=%.1f tf=%.1f", tw, tf),
		},
	})
	if err != nil {
		return nil, err
	}
	p.Add(labels)

	// keep the aspect ratio close to the real shape
	span := max(d, bf) + 3*gap
	p.X.Min, p.X.Max = -span/2, span/2
	p.Y.Min, p.Y.Max = -gap, span-gap

	return p, nil
}

// ExportCapacityCurve writes φMn against Lb, with Lp and Lr marked, to an
// image file.
func ExportCapacityCurve(title string, points []member.CurvePoint, lp, lr float64, filename string) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Unbraced length Lb (m)"
	p.Y.Label.Text = "Design moment φMn (kN-m)"

	curve := make(plotter.XYs, len(points))
	var maxM float64
	for i, pt := range points {
		curve[i] = plotter.XY{X: pt.Lb / 1e3, Y: pt.PhiMn / 1e6}
		maxM = max(maxM, curve[i].Y)
	}

	line, err := plotter.NewLine(curve)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(2)
	line.LineStyle.Color = steelEdge
	p.Add(line)
	p.Legend.Add("φMn", line)

	for _, mark := range []struct {
		at   float64
		text string
	}{
		{lp, "Lp"},
		{lr, "Lr"},
	} {
		x := mark.at / 1e3
		limit, err := plotter.NewLine(plotter.XYs{{X: x, Y: 0}, {X: x, Y: maxM * 1.05}})
		if err != nil {
			return err
		}
		limit.LineStyle.Width = vg.Points(1)
		limit.LineStyle.Color = limitLine
		limit.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
		p.Add(limit)

		lbl, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    []plotter.XY{{X: x, Y: maxM * 1.07}},
			Labels: []string{fmt.Sprintf("%s=%.2fm", mark.text, x)},
		})
		if err != nil {
			return err
		}
		p.Add(lbl)
	}

	p.X.Min = 0
	p.Y.Min = 0
	p.Y.Max = maxM * 1.15

	return save(p, 8*vg.Inch, 5*vg.Inch, filename)
}

func save(p *plot.Plot, width, height vg.Length, filename string) error {
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
