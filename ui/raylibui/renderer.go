package raylibui

import (
	"fmt"

	"snake-stones/game"
	"snake-stones/game/types"
	"snake-stones/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const hudHeight = 30 // Strip below the board for the score line

type Renderer struct {
	cellSize     int32
	screenWidth  int32
	screenHeight int32
	boardHeight  int32
	fontSize     int32
}

// NewRenderer opens a window sized to the board
func NewRenderer(cfg game.Config, title string) *Renderer {
	r := &Renderer{
		cellSize:    int32(cfg.CellSize),
		screenWidth: int32(cfg.Width * cfg.CellSize),
		boardHeight: int32(cfg.Height * cfg.CellSize),
		fontSize:    20,
	}
	r.screenHeight = r.boardHeight + hudHeight

	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(r.screenWidth, r.screenHeight, title)
	// Escape is handled as a quit command, like the window close button
	rl.SetExitKey(rl.KeyNull)
	return r
}

func toColor(c types.Color) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: 255}
}

// FillCell draws one grid cell with a 1 pixel border
func (r *Renderer) FillCell(p types.Point, fill, border types.Color) {
	x := int32(p.X) * r.cellSize
	y := int32(p.Y) * r.cellSize
	rl.DrawRectangle(x, y, r.cellSize, r.cellSize, toColor(fill))
	rl.DrawRectangleLines(x, y, r.cellSize, r.cellSize, toColor(border))
}

// Poll drains the key queue raylib filled during the last frame
func (r *Renderer) Poll() []ui.Command {
	var cmds []ui.Command
	if rl.WindowShouldClose() {
		return append(cmds, ui.CmdQuit)
	}
	for key := rl.GetKeyPressed(); key != 0; key = rl.GetKeyPressed() {
		if cmd := commandForKey(key); cmd != ui.CmdNone {
			cmds = append(cmds, cmd)
		}
	}
	return cmds
}

func commandForKey(key int32) ui.Command {
	switch key {
	case rl.KeyUp, rl.KeyW:
		return ui.CmdUp
	case rl.KeyDown, rl.KeyS:
		return ui.CmdDown
	case rl.KeyLeft, rl.KeyA:
		return ui.CmdLeft
	case rl.KeyRight, rl.KeyD:
		return ui.CmdRight
	case rl.KeyR:
		return ui.CmdRestart
	case rl.KeyEscape, rl.KeyQ:
		return ui.CmdQuit
	}
	return ui.CmdNone
}

func (r *Renderer) Render(g *game.Game) {
	rl.BeginDrawing()
	rl.ClearBackground(toColor(types.BackgroundColor))

	for _, e := range g.Entities() {
		e.Draw(r)
	}

	r.drawHUD(g)
	rl.EndDrawing()
}

func (r *Renderer) drawHUD(g *game.Game) {
	rl.DrawRectangle(0, r.boardHeight, r.screenWidth, hudHeight, rl.DarkGray)

	stats := g.Stats()
	label := fmt.Sprintf("Score: %d   Stones: %d   Best: %d", g.Score(), len(g.Stones()), stats.HighScore)
	rl.DrawText(label, 10, r.boardHeight+(hudHeight-r.fontSize)/2, r.fontSize, rl.White)

	if !g.Over() {
		return
	}

	// Game over banner in the middle of the board
	lines := []string{
		"Game Over!",
		g.Cause().String(),
		"R to restart, Esc to quit",
	}
	y := r.boardHeight/2 - int32(len(lines))*r.fontSize
	for _, line := range lines {
		width := rl.MeasureText(line, r.fontSize)
		rl.DrawText(line, (r.screenWidth-width)/2, y, r.fontSize, rl.Yellow)
		y += r.fontSize + 4
	}
}

func (r *Renderer) Close() {
	rl.CloseWindow()
}
