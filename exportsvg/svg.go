package exportsvg

import (
	"encoding/xml"
	"image/color"
	"io"

	"github.com/llgcode/draw2d/draw2dsvg"

	boxen "github.com/maxthelion/boxen-sub012"
)

// StrokeColor and FillColor are the pen settings used for every cut line.
// Laser-cut panels are vector line art, not filled shapes, so FillColor is
// fully transparent by default.
var (
	StrokeColor = color.RGBA{0x11, 0x11, 0x11, 0xff}
	FillColor   = color.RGBA{0, 0, 0, 0}
	LineWidth   = 0.1 // mm
)

// WriteSheet renders one sheet's worth of panels (every placement whose
// Sheet field equals sheetIndex) to w as an SVG document: each panel's
// outline and holes are drawn as closed paths positioned by its
// boxen.Affine2D placement transform.
func WriteSheet(w io.Writer, panelsByID map[string]boxen.PanelSnapshot, placements []boxen.PanelPlacement, sheetIndex int, sheetWidth, sheetHeight float64) error {
	dest := draw2dsvg.NewSvg()
	gc := draw2dsvg.NewGraphicContext(dest)

	gc.SetFillColor(FillColor)
	gc.SetStrokeColor(StrokeColor)
	gc.SetLineWidth(LineWidth)

	for _, placement := range placements {
		if placement.Sheet != sheetIndex {
			continue
		}
		panel, ok := panelsByID[placement.PanelID]
		if !ok {
			continue
		}
		drawPath(gc, placement.Transform.ApplyToPath(panel.Outline))
		for _, hole := range panel.Holes {
			drawPath(gc, placement.Transform.ApplyToPath(hole))
		}
	}
	gc.FillStroke()

	return xml.NewEncoder(w).Encode(dest)
}

// drawPath traces a closed polygon onto gc: MoveTo the first point, LineTo
// every subsequent point, then Close.
func drawPath(gc *draw2dsvg.GraphicContext, p boxen.Path) {
	if len(p.Points) == 0 {
		return
	}
	gc.MoveTo(p.Points[0].X, p.Points[0].Y)
	for _, pt := range p.Points[1:] {
		gc.LineTo(pt.X, pt.Y)
	}
	gc.Close()
}
