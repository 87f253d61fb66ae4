package game

import (
	"fmt"
	"time"

	"github.com/vovakirdan/tui-lander/internal/core"
	"github.com/vovakirdan/tui-lander/internal/history"
)

// World-to-screen scale. The viewport crops a window of the playfield
// around the lander; the whole field is far wider than any terminal.
const (
	metersPerCol = 8.0
	metersPerRow = 4.0
)

// Visual characters for rendering
const (
	LanderChar   = '◆'
	FlameChar    = '▼'
	ThrusterChar = '»'
	StarChar     = '·'
	GroundChar   = '═'
	PadChar      = '▀'
)

// hudRows is the number of screen rows reserved for readouts at the top.
const hudRows = 2

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.flight == nil {
		return
	}

	w := dst.Width()
	h := dst.Height()
	playRows := h - hudRows
	if playRows < 3 || w < 20 {
		dst.DrawTextCentered(h/2, "terminal too small")
		return
	}

	camX, camZ := g.camera(w, playRows)

	g.drawStars(dst, camX, camZ, w, playRows)
	g.drawSurface(dst, camX, camZ, w, playRows)
	g.drawLander(dst, camX, camZ, w, playRows)
	g.drawHUD(dst)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if g.done {
		g.drawEndScreen(dst)
	}
}

// camera returns the world coordinates of the viewport's left edge and
// bottom edge, clamped so the view never leaves the playfield and the
// surface stays in frame during the final approach.
func (g *Game) camera(w, playRows int) (camX, camZ float64) {
	viewW := float64(w) * metersPerCol
	viewH := float64(playRows) * metersPerRow

	camX = g.flight.X - viewW/2
	maxCamX := g.simCfg.FieldMax - viewW
	if maxCamX < g.simCfg.FieldMin {
		// Field narrower than the view: center it.
		camX = g.simCfg.FieldMin - (viewW-(g.simCfg.FieldMax-g.simCfg.FieldMin))/2
	} else {
		camX = core.ClampF(camX, g.simCfg.FieldMin, maxCamX)
	}

	camZ = g.flight.Z - viewH/2
	maxCamZ := g.simCfg.StartHeight - viewH
	if maxCamZ < 0 {
		maxCamZ = 0
	}
	camZ = core.ClampF(camZ, 0, maxCamZ)
	return camX, camZ
}

// toScreen projects world coordinates into the play area. ok is false when
// the point is outside the viewport.
func (g *Game) toScreen(wx, wz, camX, camZ float64, w, playRows int) (x, y int, ok bool) {
	x = int((wx - camX) / metersPerCol)
	y = hudRows + playRows - 1 - int((wz-camZ)/metersPerRow)
	ok = x >= 0 && x < w && y >= hudRows && y < hudRows+playRows
	return x, y, ok
}

func (g *Game) drawStars(dst *core.Screen, camX, camZ float64, w, playRows int) {
	for _, st := range g.stars {
		if x, y, ok := g.toScreen(st.x, st.z, camX, camZ, w, playRows); ok {
			dst.SetWithColor(x, y, StarChar, core.ColorGray)
		}
	}
}

func (g *Game) drawSurface(dst *core.Screen, camX, camZ float64, w, playRows int) {
	if camZ > 0 {
		return // surface below the viewport
	}
	groundY := hudRows + playRows - 1
	dst.DrawHLine(0, groundY, w, GroundChar)

	if !g.simCfg.HasPad {
		return
	}
	// The pad spans a fixed width around its world x.
	const padHalfWidth = 24.0 // m
	for wx := g.simCfg.PadX - padHalfWidth; wx <= g.simCfg.PadX+padHalfWidth; wx += metersPerCol {
		if x, _, ok := g.toScreen(wx, 0, camX, camZ, w, playRows); ok {
			dst.SetWithColor(x, groundY, PadChar, core.ColorBrightGreen)
		}
	}
}

func (g *Game) drawLander(dst *core.Screen, camX, camZ float64, w, playRows int) {
	s := g.flight
	x, y, ok := g.toScreen(s.X, s.Z, camX, camZ, w, playRows)
	if !ok {
		return
	}
	dst.SetWithColor(x, y, LanderChar, core.ColorBrightWhite)

	if s.FuelMass <= 0 {
		return
	}
	if s.MainThrottle > 0 {
		dst.SetWithColor(x, y+1, FlameChar, core.ColorOrange)
	}
	// Lateral flames exit opposite the thrust direction.
	if s.LatX > 0 {
		dst.SetWithColor(x-1, y, ThrusterChar, core.ColorYellow)
	} else if s.LatX < 0 {
		dst.SetWithColor(x+1, y, '«', core.ColorYellow)
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	s := g.flight

	line1 := fmt.Sprintf(" ALT %7.1f m   VS %+6.1f m/s   HS %+6.1f m/s   T %s",
		s.Z, s.VZ, s.VX, formatClock(g.clock))
	dst.DrawTextColor(0, 0, line1, core.ColorBrightCyan)

	line2 := fmt.Sprintf(" FUEL %6.0f kg  THR %3.0f%% [%s]  MASS %6.0f kg",
		s.FuelMass, s.MainThrottle*100, throttleBar(s.MainThrottle, 10), s.TotalMass())
	color := core.ColorBrightCyan
	if s.FuelMass <= 0 {
		color = core.ColorBrightRed
	}
	dst.DrawTextColor(0, 1, line2, color)
}

// throttleBar renders a fixed-width fill bar for a [0,1] setting.
func throttleBar(level float64, width int) string {
	filled := int(level*float64(width) + 0.5)
	filled = core.Clamp(filled, 0, width)
	bar := make([]rune, width)
	for i := range bar {
		if i < filled {
			bar[i] = '█'
		} else {
			bar[i] = '-'
		}
	}
	return string(bar)
}

func formatClock(d time.Duration) string {
	total := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

// drawEndScreen shows the touchdown classification, the key numbers of the
// attempt, and the recorded altitude-vs-time chart.
func (g *Game) drawEndScreen(dst *core.Screen) {
	w := dst.Width()
	h := dst.Height()

	plotW := core.Min(60, w-8)
	plotH := 8
	boxW := plotW + 4
	boxH := plotH + 9
	if boxH > h {
		boxH = h
		plotH = core.Max(1, boxH-9)
	}
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	title := "TOUCHDOWN"
	titleColor := core.ColorBrightGreen
	if !g.outcome.Landed {
		title = "CRASHED"
		titleColor = core.ColorBrightRed
	}
	dst.DrawTextColor(boxX+(boxW-len(title))/2, boxY+1, title, titleColor)

	stats := fmt.Sprintf("speed %.1f m/s  pad %.0f m  fuel %.0f kg",
		g.outcome.TouchdownSpeed, g.outcome.PadDistance, g.outcome.FuelRemaining)
	dst.DrawText(boxX+(boxW-len(stats))/2, boxY+3, stats)

	result := fmt.Sprintf("time %s  score %d", formatClock(g.clock), g.score)
	dst.DrawText(boxX+(boxW-len(result))/2, boxY+4, result)

	rows := history.RenderAltitude(g.recorder.Samples(), plotW, plotH)
	for i, row := range rows {
		dst.DrawTextColor(boxX+2, boxY+6+i, row, core.ColorCyan)
	}

	footer := "Press R to restart, Q to quit"
	dst.DrawText(boxX+(boxW-len(footer))/2, boxY+boxH-2, footer)
}
