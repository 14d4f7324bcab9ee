package entity

import (
	"testing"

	"snake-stones/game/types"
)

type recordingSurface struct {
	cells []types.Point
	fills []types.Color
}

func (r *recordingSurface) FillCell(p types.Point, fill, border types.Color) {
	r.cells = append(r.cells, p)
	r.fills = append(r.fills, fill)
}

func TestNextHeadWraps(t *testing.T) {
	grid := types.Grid{Width: 32, Height: 24}
	s := NewSnake(types.Point{X: 31, Y: 12}, types.Right)

	head, ok := s.NextHead(grid, types.BoundaryWrap)
	if !ok {
		t.Fatal("wrap mode should never report out of bounds")
	}
	if head != (types.Point{X: 0, Y: 12}) {
		t.Errorf("expected (0,12), got %v", head)
	}
}

func TestNextHeadSolidWall(t *testing.T) {
	grid := types.Grid{Width: 32, Height: 24}
	s := NewSnake(types.Point{X: 0, Y: 0}, types.Up)

	if _, ok := s.NextHead(grid, types.BoundarySolid); ok {
		t.Error("expected head to leave the grid")
	}
}

func TestQueueDirectionRejectsReversal(t *testing.T) {
	grid := types.Grid{Width: 10, Height: 10}
	s := NewSnake(types.Point{X: 5, Y: 5}, types.Right)

	if s.QueueDirection(types.Left) {
		t.Error("reversal should be refused")
	}
	head, _ := s.NextHead(grid, types.BoundaryWrap)
	if s.Direction() != types.Right {
		t.Errorf("direction changed to %v", s.Direction())
	}
	if head != (types.Point{X: 6, Y: 5}) {
		t.Errorf("expected (6,5), got %v", head)
	}
}

func TestQueueDirectionLastTurnWins(t *testing.T) {
	grid := types.Grid{Width: 10, Height: 10}
	s := NewSnake(types.Point{X: 5, Y: 5}, types.Right)

	s.QueueDirection(types.Up)
	s.QueueDirection(types.Down)
	if d, ok := s.Pending(); !ok || d != types.Down {
		t.Fatalf("expected pending down, got %v (%v)", d, ok)
	}

	s.NextHead(grid, types.BoundaryWrap)
	if s.Direction() != types.Down {
		t.Errorf("expected down, got %v", s.Direction())
	}
	if _, ok := s.Pending(); ok {
		t.Error("pending turn should be consumed")
	}
}

func TestMoveAndGrow(t *testing.T) {
	s := NewSnake(types.Point{X: 5, Y: 5}, types.Right)
	s.Body = []types.Point{{X: 5, Y: 5}, {X: 4, Y: 5}, {X: 3, Y: 5}}

	s.Move(types.Point{X: 6, Y: 5})
	want := []types.Point{{X: 6, Y: 5}, {X: 5, Y: 5}, {X: 4, Y: 5}}
	for i := range want {
		if s.Body[i] != want[i] {
			t.Fatalf("after move body[%d] = %v, want %v", i, s.Body[i], want[i])
		}
	}

	s.Grow()
	if s.Len() != 4 {
		t.Fatalf("expected length 4 after growing, got %d", s.Len())
	}
	if s.Body[3] != s.Body[2] {
		t.Error("growth should duplicate the tail")
	}

	// the duplicate tail is kept for one move
	s.Move(types.Point{X: 7, Y: 5})
	if s.Len() != 4 || s.Body[3] != (types.Point{X: 4, Y: 5}) {
		t.Errorf("unexpected body after growth move: %v", s.Body)
	}
}

func TestHitsBodyIgnoresHead(t *testing.T) {
	s := NewSnake(types.Point{X: 5, Y: 5}, types.Right)
	s.Body = []types.Point{{X: 5, Y: 5}, {X: 5, Y: 6}}

	if s.HitsBody(types.Point{X: 5, Y: 5}) {
		t.Error("head cell must not count as a body hit")
	}
	if !s.HitsBody(types.Point{X: 5, Y: 6}) {
		t.Error("expected a body hit")
	}
}

func TestEntitiesDrawThemselves(t *testing.T) {
	surface := &recordingSurface{}

	s := NewSnake(types.Point{X: 1, Y: 1}, types.Right)
	s.Grow()
	entities := []Entity{NewApple(types.Point{X: 3, Y: 3}), NewStone(types.Point{X: 4, Y: 4}), s}
	for _, e := range entities {
		e.Draw(surface)
	}

	if len(surface.cells) != 4 {
		t.Fatalf("expected 4 painted cells, got %d", len(surface.cells))
	}
	if surface.fills[0] != types.AppleColor || surface.fills[1] != types.StoneColor || surface.fills[2] != types.SnakeColor {
		t.Errorf("unexpected colours: %v", surface.fills)
	}
	if !entities[0].Occupies(types.Point{X: 3, Y: 3}) || entities[1].Occupies(types.Point{X: 3, Y: 3}) {
		t.Error("occupancy mismatch")
	}
}
