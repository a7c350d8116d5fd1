package game

import (
	"fmt"
	"image/color"
	"time"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/meghashyamc/derby2d/assets"
	"github.com/meghashyamc/derby2d/config"
	"github.com/meghashyamc/derby2d/logger"
	"github.com/meghashyamc/derby2d/sim"
)

const messageFor = 2 * time.Second

// Game shows a running jam. It only reads published frames; every change
// goes through the session.
type Game struct {
	cfg          *config.Config
	session      *sim.Session
	view         View
	logger       logger.Logger
	paused       bool
	diagnostics  bool
	userMessage  string
	messageTimer *Timer
}

func NewGame(cfg *config.Config, session *sim.Session, log logger.Logger) *Game {
	frame := cfg.Tuning().FrameDuration()
	g := &Game{
		cfg:          cfg,
		session:      session,
		view:         NewView(session.Track(), cfg.GetWindowWidth(), cfg.GetWindowHeight()),
		logger:       log,
		diagnostics:  true,
		messageTimer: NewTimer(messageFor, frame),
	}

	g.logger.Info("viewer initialized", "session", session.ID.String(), "width", cfg.GetWindowWidth(), "height", cfg.GetWindowHeight())
	return g
}

func (g *Game) Run() error {
	g.logger.Info("starting viewer")
	g.setupWindow()

	// Running the game calls Update() on every 'tick'
	return ebiten.RunGame(g)
}

func (g *Game) setupWindow() {
	ebiten.SetWindowSize(g.cfg.GetWindowWidth(), g.cfg.GetWindowHeight())
	ebiten.SetWindowTitle(g.cfg.GetWindowTitle())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	ebiten.SetTPS(int(g.cfg.GetFrameRate()))
}

func (g *Game) Update() error {
	g.messageTimer.Update()
	g.handleInput()

	step := !g.paused || inpututil.IsKeyJustPressed(ebiten.KeyPeriod)
	if step {
		g.session.Step()
	}
	return nil
}

func (g *Game) handleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
		g.logger.Debug("pause toggled", "paused", g.paused)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		g.diagnostics = !g.diagnostics
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.copyReport()
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		pos := getCurrentMousePosition(g.view)
		if _, ok := g.session.SelectAt(pos); !ok {
			g.session.SetTarget(pos)
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		g.session.ClearTargets()
		g.session.ClearSelection()
	}
}

func (g *Game) copyReport() {
	report := g.session.Frame().Report()
	if err := clipboard.WriteAll(report); err != nil {
		g.logger.Warn("failed to copy frame report", "err", err.Error())
		g.showMessage("clipboard unavailable")
		return
	}
	g.showMessage("frame report copied")
}

func (g *Game) showMessage(message string) {
	g.userMessage = message
	g.messageTimer.Reset()
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	f := g.session.Frame()
	selected, hasSelection := g.session.Selected()

	g.drawTrack(screen)
	g.drawPack(screen, f)
	if g.diagnostics {
		g.drawDiagnostics(screen, f)
	}
	g.drawPlayers(screen, f, selected, hasSelection)
	g.drawOverlay(screen, f)
}

func (g *Game) drawOverlay(screen *ebiten.Image, f *sim.Frame) {
	status := fmt.Sprintf("%s   %.1fs", f.Warning, f.Now.Seconds())
	if g.paused {
		status += "   PAUSED"
	}
	drawText(screen, status, 20, 30, color.White)

	if !g.messageTimer.IsReady() {
		drawText(screen, g.userMessage, 20, 60, colorMessage)
	}

	help := "click: select / set target   right click: clear   space: pause   .: step   d: diagnostics   c: copy report"
	drawText(screen, help, 20, float64(g.cfg.GetWindowHeight())-30, colorHelp)
}

func drawText(screen *ebiten.Image, s string, x, y float64, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(screen, s, assets.OverlayFont, op)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return g.cfg.GetWindowWidth(), g.cfg.GetWindowHeight()
}
