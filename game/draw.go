package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/meghashyamc/derby2d/geometry"
	"github.com/meghashyamc/derby2d/overflow"
	"github.com/meghashyamc/derby2d/player"
	"github.com/meghashyamc/derby2d/sim"
	"github.com/meghashyamc/derby2d/track"
)

var (
	colorBackground = color.RGBA{20, 24, 28, 255}
	colorBound      = color.RGBA{230, 230, 230, 255}
	colorLane       = color.RGBA{90, 90, 100, 255}
	colorPackLine   = color.RGBA{60, 110, 60, 255}
	colorMarker     = color.RGBA{240, 200, 60, 255}
	colorZone       = color.RGBA{60, 90, 160, 120}
	colorPack       = color.RGBA{80, 180, 90, 160}
	colorHome       = color.RGBA{220, 60, 60, 255}
	colorAway       = color.RGBA{60, 120, 230, 255}
	colorJammer     = color.RGBA{255, 215, 0, 255}
	colorPivot      = color.RGBA{255, 255, 255, 255}
	colorSelected   = color.RGBA{0, 255, 160, 255}
	colorTarget     = color.RGBA{200, 200, 200, 180}
	colorDebug      = color.RGBA{255, 0, 255, 200}
	colorMessage    = color.RGBA{255, 215, 0, 255}
	colorHelp       = color.RGBA{150, 150, 150, 255}
)

const (
	samplesPerShape = 48
	zoneStep        = 0.25 // meters between zone shading strokes
)

func (g *Game) line(screen *ebiten.Image, a, b geometry.Vector, width float32, clr color.Color) {
	x0, y0 := g.view.ToScreen(a)
	x1, y1 := g.view.ToScreen(b)
	vector.StrokeLine(screen, x0, y0, x1, y1, width, clr, true)
}

// drawShape strokes any geometry shape by sampling points along it.
func (g *Game) drawShape(screen *ebiten.Image, s geometry.Shape, width float32, clr color.Color) {
	prev := s.PointAt(0)
	for k := 1; k <= samplesPerShape; k++ {
		next := s.PointAt(float64(k) / samplesPerShape)
		g.line(screen, prev, next, width, clr)
		prev = next
	}
}

func (g *Game) drawTrackLine(screen *ebiten.Image, tl track.TrackLine, width float32, clr color.Color) {
	for _, s := range tl.Shapes() {
		g.drawShape(screen, s, width, clr)
	}
}

func (g *Game) drawTrack(screen *ebiten.Image) {
	t := g.session.Track()
	for _, lane := range t.Lanes {
		g.drawTrackLine(screen, lane, 1, colorLane)
	}
	g.drawTrackLine(screen, t.PackLine, 1, colorPackLine)
	g.drawTrackLine(screen, t.InnerBound, 2, colorBound)
	g.drawTrackLine(screen, t.OuterBound, 2, colorBound)
	g.drawShape(screen, t.JammerLine, 2, colorMarker)
	g.drawShape(screen, t.PivotLine, 2, colorMarker)
}

// shade strokes across the track every zoneStep meters from back to front.
func (g *Game) shade(screen *ebiten.Image, back, front overflow.Value, clr color.Color) {
	t := g.session.Track()
	span := back.Forward(front)
	for d := 0.0; d <= span; d += zoneStep {
		y := back.Add(d).Fraction()
		inner := t.AbsolutePosition(geometry.Vector{X: 0, Y: y})
		outer := t.AbsolutePosition(geometry.Vector{X: 1, Y: y})
		g.line(screen, inner, outer, g.view.Length(zoneStep)*0.6, clr)
	}
}

func (g *Game) drawPack(screen *ebiten.Image, f *sim.Frame) {
	active, ok := f.Pack.ActivePack()
	if !ok {
		return
	}
	g.shade(screen, active.ZoneBack, active.ZoneFront, colorZone)
	g.shade(screen, active.Back, active.Front, colorPack)
}

func (g *Game) drawDiagnostics(screen *ebiten.Image, f *sim.Frame) {
	for _, p := range f.Diagnostics {
		x, y := g.view.ToScreen(p.Position)
		vector.DrawFilledCircle(screen, x, y, 3, colorDebug, true)
	}
}

func teamColor(team player.Team) color.Color {
	if team == player.TeamAway {
		return colorAway
	}
	return colorHome
}

func (g *Game) drawPlayers(screen *ebiten.Image, f *sim.Frame, selected int, hasSelection bool) {
	for i, p := range f.Players {
		// Target chain first so the player sits on top of it.
		prev := p.Position
		for _, target := range p.Targets {
			g.line(screen, prev, target.Position, 1, colorTarget)
			tx, ty := g.view.ToScreen(target.Position)
			vector.StrokeCircle(screen, tx, ty, 3, 1, colorTarget, true)
			prev = target.Position
		}

		x, y := g.view.ToScreen(p.Position)
		r := g.view.Length(p.Radius)
		vector.DrawFilledCircle(screen, x, y, r, teamColor(p.Team), true)

		switch p.Role {
		case player.RoleJammer:
			vector.StrokeCircle(screen, x, y, r*0.6, 2, colorJammer, true)
		case player.RolePivot:
			vector.StrokeLine(screen, x-r, y, x+r, y, 2, colorPivot, true)
		}
		if hasSelection && i == selected {
			vector.StrokeCircle(screen, x, y, r+3, 2, colorSelected, true)
		}

		if heading, moving := p.Heading(); moving {
			g.line(screen, p.Position, p.Position.Add(heading.Vector(p.Radius*1.5)), 1, colorPivot)
		}
	}
}
