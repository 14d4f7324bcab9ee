package ebitenui

import (
	"fmt"
	"image/color"

	"snake-stones/game/types"
	"snake-stones/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const hudHeight = 20

// Game adapts a session to ebiten's Update/Draw/Layout loop.
// Ebiten calls Update Speed times per second, so each Update is one tick.
type Game struct {
	sess     *ui.Session
	cellSize int
	width    int
	height   int
	hold     bool
	finished bool
	keys     []ebiten.Key
}

func New(sess *ui.Session, hold bool) *Game {
	cfg := sess.Game().Config()
	return &Game{
		sess:     sess,
		cellSize: cfg.CellSize,
		width:    cfg.Width * cfg.CellSize,
		height:   cfg.Height*cfg.CellSize + hudHeight,
		hold:     hold,
	}
}

// Run opens the window and blocks until the game ends or the window is closed
func Run(sess *ui.Session, title string, hold bool) error {
	g := New(sess, hold)
	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetWindowTitle(title)
	ebiten.SetTPS(sess.Game().Config().Speed)
	return ebiten.RunGame(g)
}

func (g *Game) Update() error {
	// The final frame has been drawn
	if g.finished {
		return ebiten.Termination
	}

	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		if g.sess.Apply(commandForKey(k)) {
			return ebiten.Termination
		}
	}

	if !g.sess.Game().Over() && g.sess.Step() && !g.hold {
		g.finished = true
	}
	return nil
}

func commandForKey(k ebiten.Key) ui.Command {
	switch k {
	case ebiten.KeyArrowUp, ebiten.KeyW:
		return ui.CmdUp
	case ebiten.KeyArrowDown, ebiten.KeyS:
		return ui.CmdDown
	case ebiten.KeyArrowLeft, ebiten.KeyA:
		return ui.CmdLeft
	case ebiten.KeyArrowRight, ebiten.KeyD:
		return ui.CmdRight
	case ebiten.KeyR:
		return ui.CmdRestart
	case ebiten.KeyEscape, ebiten.KeyQ:
		return ui.CmdQuit
	}
	return ui.CmdNone
}

func toColor(c types.Color) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}

// surface paints grid cells onto an ebiten image
type surface struct {
	dst      *ebiten.Image
	cellSize float32
}

func (s surface) FillCell(p types.Point, fill, border types.Color) {
	x := float32(p.X) * s.cellSize
	y := float32(p.Y) * s.cellSize
	vector.DrawFilledRect(s.dst, x, y, s.cellSize, s.cellSize, toColor(fill), false)
	vector.StrokeRect(s.dst, x, y, s.cellSize, s.cellSize, 1, toColor(border), false)
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(toColor(types.BackgroundColor))

	s := surface{dst: screen, cellSize: float32(g.cellSize)}
	state := g.sess.Game()
	for _, e := range state.Entities() {
		e.Draw(s)
	}

	stats := state.Stats()
	status := fmt.Sprintf("Score: %d  Stones: %d  Best: %d", state.Score(), len(state.Stones()), stats.HighScore)
	if state.Over() {
		status = fmt.Sprintf("Game over, %s. R to restart, Esc to quit", state.Cause())
	}
	ebitenutil.DebugPrintAt(screen, status, 4, g.height-hudHeight+2)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
