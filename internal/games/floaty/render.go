package floaty

import (
	"fmt"
	"math"

	"github.com/vovakirdan/floaty-cloud/internal/core"
)

// Umbrella geometry, relative to the top of the player's body
const (
	umbrellaStick  = 30.0
	umbrellaRadius = 20.0
	umbrellaSteps  = 16
	strokeWidth    = 3.0
)

// HUD layout, in world units
const (
	scoreBaseline = 40.0
)

// Render paints the session onto dst. It only reads the session.
func Render(dst core.Canvas, s *Session, high int) {
	w, h := dst.Size()

	night := IsNight(s.Score())
	if night {
		dst.Clear(core.ColorSkyNight)
		for _, st := range s.Stars() {
			dst.FillRect(st.X, st.Y, st.Size, st.Size, core.ColorWhite)
		}
	} else {
		dst.Clear(core.ColorSkyDay)
	}

	drawPlayer(dst, s.Player())

	for _, o := range s.Obstacles() {
		switch o.Variant {
		case VariantCloud:
			drawCloud(dst, o)
		case VariantBird:
			drawBird(dst, o)
		}
	}

	dst.Text(w/2, scoreBaseline, fmt.Sprint(s.Score()), core.TextLarge, core.ColorWhite)

	switch s.State() {
	case StateEnded:
		dst.Text(w/2, h/2-20, "Game Over", core.TextLarge, core.ColorWhite)
		dst.Text(w/2, h/2+10, "Tap to restart", core.TextSmall, core.ColorWhite)
		dst.Text(w/2, h/2+35, fmt.Sprintf("High: %d", high), core.TextSmall, core.ColorWhite)
	case StatePaused:
		dst.Text(w/2, h/2, "PAUSED", core.TextLarge, core.ColorWhite)
		dst.Text(w/2, h/2+30, "Double-tap or press P to resume", core.TextSmall, core.ColorWhite)
	}
}

// drawPlayer draws the white body holding a yellow umbrella above it.
func drawPlayer(dst core.Canvas, p Player) {
	dst.FillCircle(p.X, p.Y, p.Radius, core.ColorWhite)

	top := p.Y - p.Radius
	tip := top - umbrellaStick
	dst.StrokeLine(core.Vec2{X: p.X, Y: top}, core.Vec2{X: p.X, Y: tip}, strokeWidth, core.ColorYellow)
	dst.FillPolygon(canopy(p.X, tip, umbrellaRadius), core.ColorYellow)
}

// canopy returns the upper half of a circle as a polygon.
func canopy(cx, cy, r float64) []core.Vec2 {
	pts := make([]core.Vec2, 0, umbrellaSteps+1)
	for i := 0; i <= umbrellaSteps; i++ {
		a := math.Pi + math.Pi*float64(i)/umbrellaSteps
		pts = append(pts, core.Vec2{X: cx + r*math.Cos(a), Y: cy + r*math.Sin(a)})
	}
	return pts
}

// drawCloud draws a grey thunder cloud with a lightning bolt below it.
func drawCloud(dst core.Canvas, o Obstacle) {
	dst.FillEllipse(o.X, o.Y, o.W/2, o.H/3, core.ColorGray)

	bolt := []core.Vec2{
		{X: o.X, Y: o.Y + o.H/3},
		{X: o.X + 5, Y: o.Y + o.H/2},
		{X: o.X - 5, Y: o.Y + o.H*0.66},
	}
	for i := 0; i+1 < len(bolt); i++ {
		dst.StrokeLine(bolt[i], bolt[i+1], strokeWidth, core.ColorYellow)
	}
}

// drawBird draws a black diamond.
func drawBird(dst core.Canvas, o Obstacle) {
	dst.FillPolygon([]core.Vec2{
		{X: o.X - o.W/2, Y: o.Y},
		{X: o.X, Y: o.Y - o.H/4},
		{X: o.X + o.W/2, Y: o.Y},
		{X: o.X, Y: o.Y + o.H/4},
	}, core.ColorBlack)
}
