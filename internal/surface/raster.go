package surface

import (
	"image"
	"image/color"
	"io"
	"strings"

	"github.com/fogleman/gg"
	"golang.org/x/image/colornames"
)

// Raster draws onto an in-memory image.
type Raster struct {
	dc         *gg.Context
	background color.Color
}

var _ Surface = (*Raster)(nil)

func NewRaster(width, height int) *Raster {
	r := &Raster{
		dc:         gg.NewContext(width, height),
		background: color.White,
	}
	r.Clear()
	return r
}

func (r *Raster) setColor(name string) {
	if c, ok := colornames.Map[strings.ToLower(name)]; ok {
		r.dc.SetColor(c)
		return
	}
	r.dc.SetHexColor(name)
}

func (r *Raster) Clear() {
	r.dc.SetColor(r.background)
	r.dc.Clear()
}

func (r *Raster) Circle(c Circle) {
	x, y := c.Center.X, c.Center.Y

	r.setColor(c.Color)
	r.dc.DrawCircle(x, y, c.Radius)
	r.dc.Fill()

	if c.Outline {
		r.setColor(ColorHighlight)
		r.dc.SetLineWidth(OutlineWidth)
		r.dc.DrawCircle(x, y, c.Radius*OutlineScale)
		r.dc.Stroke()
	}
	if c.InnerDot {
		r.setColor(ColorHighlight)
		r.dc.DrawCircle(x, y, c.Radius*InnerDotScale)
		r.dc.Fill()
	}
}

func (r *Raster) Line(l Line) {
	r.setColor(l.Color)
	r.dc.SetLineWidth(l.Width)
	r.dc.SetDash(l.Dash...)
	r.dc.DrawLine(l.From.X, l.From.Y, l.To.X, l.To.Y)
	r.dc.Stroke()
	r.dc.SetDash()
}

func (r *Raster) Image() image.Image {
	return r.dc.Image()
}

func (r *Raster) EncodePNG(w io.Writer) error {
	return r.dc.EncodePNG(w)
}

func (r *Raster) SavePNG(path string) error {
	return r.dc.SavePNG(path)
}
