// Package window hosts Floaty Cloud in a resizable desktop window using
// Ebitengine. One world unit is one pixel.
package window

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/floaty-cloud/internal/core"
)

// Debug font metrics, in pixels at scale 1
const (
	glyphW   = 6
	glyphH   = 16
	baseline = 12
)

// Canvas draws on an ebiten image.
type Canvas struct {
	dst   *ebiten.Image
	texts map[string]*ebiten.Image
}

// NewCanvas creates a canvas. Call Target before drawing each frame.
func NewCanvas() *Canvas {
	return &Canvas{texts: make(map[string]*ebiten.Image)}
}

// Target selects the image the next calls draw on.
func (c *Canvas) Target(dst *ebiten.Image) {
	c.dst = dst
}

// Size returns the image size in pixels.
func (c *Canvas) Size() (w, h float64) {
	b := c.dst.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

// Clear fills the whole image with bg.
func (c *Canvas) Clear(bg core.Color) {
	c.dst.Fill(bg.RGBA())
}

// FillRect fills an axis-aligned rectangle.
func (c *Canvas) FillRect(x, y, w, h float64, clr core.Color) {
	vector.DrawFilledRect(c.dst, float32(x), float32(y), float32(w), float32(h), clr.RGBA(), false)
}

// FillCircle fills a disc.
func (c *Canvas) FillCircle(cx, cy, r float64, clr core.Color) {
	vector.DrawFilledCircle(c.dst, float32(cx), float32(cy), float32(r), clr.RGBA(), true)
}

// FillEllipse fills an axis-aligned ellipse one pixel row at a time.
func (c *Canvas) FillEllipse(cx, cy, rx, ry float64, clr core.Color) {
	c.fillRows(cy-ry, cy+ry, clr, func(y float64) [][2]float64 {
		x0, x1, ok := core.EllipseSpan(cx, cy, rx, ry, y)
		if !ok {
			return nil
		}
		return [][2]float64{{x0, x1}}
	})
}

// FillPolygon fills a closed polygon one pixel row at a time.
func (c *Canvas) FillPolygon(pts []core.Vec2, clr core.Color) {
	top, bottom := core.PolygonBounds(pts)
	c.fillRows(top, bottom, clr, func(y float64) [][2]float64 {
		return core.PolygonSpans(pts, y)
	})
}

// fillRows draws the spans of every pixel row between top and bottom,
// sampling each row at its centre.
func (c *Canvas) fillRows(top, bottom float64, clr core.Color, spans func(y float64) [][2]float64) {
	_, h := c.Size()
	first := math.Max(math.Floor(top), 0)
	last := math.Min(math.Ceil(bottom), h)
	col := clr.RGBA()

	for y := first; y < last; y++ {
		for _, s := range spans(y + 0.5) {
			vector.DrawFilledRect(c.dst, float32(s[0]), float32(y), float32(s[1]-s[0]), 1, col, true)
		}
	}
}

// StrokeLine draws a segment.
func (c *Canvas) StrokeLine(from, to core.Vec2, width float64, clr core.Color) {
	vector.StrokeLine(c.dst, float32(from.X), float32(from.Y), float32(to.X), float32(to.Y), float32(width), clr.RGBA(), true)
}

// Text draws s centred on x with its baseline at y. Large text is the debug
// font scaled up.
func (c *Canvas) Text(x, y float64, s string, size core.TextSize, clr core.Color) {
	if s == "" {
		return
	}
	img := c.textImage(s)

	scale := 1.5
	if size == core.TextLarge {
		scale = 3
	}

	w := float64(len([]rune(s))*glyphW) * scale
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x-w/2, y-baseline*scale)
	op.ColorScale.ScaleWithColor(clr.RGBA())
	op.Filter = ebiten.FilterNearest
	c.dst.DrawImage(img, op)
}

// textImage returns s rendered in white with the debug font, cached.
func (c *Canvas) textImage(s string) *ebiten.Image {
	if img, ok := c.texts[s]; ok {
		return img
	}
	// The score changes often; keep the cache from growing without bound
	if len(c.texts) > 64 {
		for k, img := range c.texts {
			img.Deallocate()
			delete(c.texts, k)
		}
	}

	img := ebiten.NewImage(len([]rune(s))*glyphW, glyphH)
	ebitenutil.DebugPrintAt(img, s, 0, 0)
	c.texts[s] = img
	return img
}
