package core

import (
	"math"
	"sort"
)

// TextSize selects one of the two HUD font sizes.
type TextSize int

const (
	TextSmall TextSize = iota
	TextLarge
)

// Canvas is a 2D drawing surface measured in world units.
// The renderer only ever talks to a Canvas, so the same frame can be painted
// onto a terminal or a desktop window.
type Canvas interface {
	// Size returns the drawable width and height in world units.
	Size() (w, h float64)
	// Clear paints the whole surface with bg.
	Clear(bg Color)
	FillRect(x, y, w, h float64, c Color)
	FillCircle(cx, cy, r float64, c Color)
	FillEllipse(cx, cy, rx, ry float64, c Color)
	// FillPolygon fills a closed polygon using the even-odd rule.
	FillPolygon(pts []Vec2, c Color)
	StrokeLine(from, to Vec2, width float64, c Color)
	// Text draws s horizontally centred on x with its baseline at y.
	Text(x, y float64, s string, size TextSize, c Color)
}

// EllipseSpan returns the horizontal extent of an axis-aligned ellipse on the
// line at height y. ok is false when the line misses the ellipse.
func EllipseSpan(cx, cy, rx, ry, y float64) (x0, x1 float64, ok bool) {
	if rx <= 0 || ry <= 0 {
		return 0, 0, false
	}
	dy := (y - cy) / ry
	if dy*dy > 1 {
		return 0, 0, false
	}
	half := rx * math.Sqrt(1-dy*dy)
	return cx - half, cx + half, true
}

// PolygonSpans returns the interior spans of a polygon on the line at height y,
// sorted left to right.
func PolygonSpans(pts []Vec2, y float64) [][2]float64 {
	if len(pts) < 3 {
		return nil
	}

	var xs []float64
	for i := range pts {
		a := pts[i]
		b := pts[(i+1)%len(pts)]
		if (a.Y <= y) == (b.Y <= y) {
			continue
		}
		xs = append(xs, a.X+(y-a.Y)*(b.X-a.X)/(b.Y-a.Y))
	}
	sort.Float64s(xs)

	spans := make([][2]float64, 0, len(xs)/2)
	for i := 0; i+1 < len(xs); i += 2 {
		spans = append(spans, [2]float64{xs[i], xs[i+1]})
	}
	return spans
}

// PolygonBounds returns the vertical extent of a polygon.
func PolygonBounds(pts []Vec2) (top, bottom float64) {
	if len(pts) == 0 {
		return 0, 0
	}
	top, bottom = pts[0].Y, pts[0].Y
	for _, p := range pts[1:] {
		top = math.Min(top, p.Y)
		bottom = math.Max(bottom, p.Y)
	}
	return top, bottom
}

// Raster is a Canvas backed by a character Screen.
// Each cell covers cellW x cellH world units and is painted when its centre
// falls inside a shape. Shapes too small to cover any cell centre are drawn
// as a single glyph so that stars and thin details stay visible.
type Raster struct {
	screen *Screen
	cellW  float64
	cellH  float64
}

// NewRaster wraps a screen so it can be drawn on in world units.
func NewRaster(screen *Screen, cellW, cellH float64) *Raster {
	if cellW <= 0 {
		cellW = 1
	}
	if cellH <= 0 {
		cellH = 1
	}
	return &Raster{screen: screen, cellW: cellW, cellH: cellH}
}

// Screen returns the underlying cell buffer.
func (r *Raster) Screen() *Screen {
	return r.screen
}

// Size returns the drawable area in world units.
func (r *Raster) Size() (w, h float64) {
	return float64(r.screen.Width()) * r.cellW, float64(r.screen.Height()) * r.cellH
}

// Clear paints every cell with bg.
func (r *Raster) Clear(bg Color) {
	r.screen.Fill(bg)
}

// cellAt returns the cell containing the world point (x, y).
func (r *Raster) cellAt(x, y float64) (int, int) {
	return int(math.Floor(x / r.cellW)), int(math.Floor(y / r.cellH))
}

// fillRows paints the cells whose centres lie inside the spans produced for
// every row between top and bottom. Reports whether any cell was painted.
func (r *Raster) fillRows(top, bottom float64, c Color, spans func(y float64) [][2]float64) bool {
	firstRow := max(int(math.Floor(top/r.cellH)), 0)
	lastRow := min(int(math.Ceil(bottom/r.cellH)), r.screen.Height()-1)

	painted := false
	for row := firstRow; row <= lastRow; row++ {
		cy := (float64(row) + 0.5) * r.cellH
		for _, span := range spans(cy) {
			first := max(int(math.Ceil(span[0]/r.cellW-0.5)), 0)
			end := min(int(math.Ceil(span[1]/r.cellW-0.5)), r.screen.Width())
			for col := first; col < end; col++ {
				r.screen.Paint(col, row, c)
				painted = true
			}
		}
	}
	return painted
}

// glyph marks a single cell with a coloured rune, keeping its background.
func (r *Raster) glyph(x, y float64, ch rune, c Color) {
	col, row := r.cellAt(x, y)
	if !r.screen.inBounds(col, row) {
		return
	}
	cell := r.screen.GetCell(col, row)
	cell.Rune = ch
	cell.Fg = c
	r.screen.SetCell(col, row, cell)
}

// FillRect fills an axis-aligned rectangle.
func (r *Raster) FillRect(x, y, w, h float64, c Color) {
	painted := r.fillRows(y, y+h, c, func(cy float64) [][2]float64 {
		if cy < y || cy >= y+h {
			return nil
		}
		return [][2]float64{{x, x + w}}
	})
	if !painted {
		r.glyph(x+w/2, y+h/2, '·', c)
	}
}

// FillCircle fills a disc.
func (r *Raster) FillCircle(cx, cy, radius float64, c Color) {
	r.FillEllipse(cx, cy, radius, radius, c)
}

// FillEllipse fills an axis-aligned ellipse.
func (r *Raster) FillEllipse(cx, cy, rx, ry float64, c Color) {
	painted := r.fillRows(cy-ry, cy+ry, c, func(y float64) [][2]float64 {
		x0, x1, ok := EllipseSpan(cx, cy, rx, ry, y)
		if !ok {
			return nil
		}
		return [][2]float64{{x0, x1}}
	})
	if !painted {
		r.glyph(cx, cy, '●', c)
	}
}

// FillPolygon fills a closed polygon.
func (r *Raster) FillPolygon(pts []Vec2, c Color) {
	if len(pts) < 3 {
		return
	}
	top, bottom := PolygonBounds(pts)
	painted := r.fillRows(top, bottom, c, func(y float64) [][2]float64 {
		return PolygonSpans(pts, y)
	})
	if !painted {
		var centroid Vec2
		for _, p := range pts {
			centroid.X += p.X
			centroid.Y += p.Y
		}
		n := float64(len(pts))
		r.glyph(centroid.X/n, centroid.Y/n, '◆', c)
	}
}

// StrokeLine draws a segment with box-drawing glyphs chosen by its slope.
// Terminal cells are far wider than any stroke, so width is ignored.
func (r *Raster) StrokeLine(from, to Vec2, _ float64, c Color) {
	dx := (to.X - from.X) / r.cellW
	dy := (to.Y - from.Y) / r.cellH

	var ch rune
	switch {
	case math.Abs(dx) > 2*math.Abs(dy):
		ch = '─'
	case math.Abs(dy) > 2*math.Abs(dx):
		ch = '│'
	case dx*dy > 0:
		ch = '╲'
	default:
		ch = '╱'
	}

	steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy))*2)) + 1
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		r.glyph(from.X+(to.X-from.X)*t, from.Y+(to.Y-from.Y)*t, ch, c)
	}
}

// Text writes s centred on x, on the row holding the baseline y.
// Both text sizes map to one terminal row.
func (r *Raster) Text(x, y float64, s string, _ TextSize, c Color) {
	col, _ := r.cellAt(x, y)
	row := int(math.Floor((y - 1) / r.cellH))
	r.screen.DrawText(col-len([]rune(s))/2, row, s, c)
}
