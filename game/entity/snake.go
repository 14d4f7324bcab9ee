package entity

import (
	"snake-stones/game/types"

	"golang.org/x/exp/slices"
)

// Snake is an ordered list of cells, head first
type Snake struct {
	Body      []types.Point
	direction types.Direction
	pending   types.Direction // zero when no turn is queued
	Color     types.Color
}

func NewSnake(startPos types.Point, dir types.Direction) *Snake {
	return &Snake{
		Body:      []types.Point{startPos},
		direction: dir,
		Color:     types.SnakeColor,
	}
}

func (s *Snake) GetHead() types.Point {
	return s.Body[0]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

func (s *Snake) Direction() types.Direction {
	return s.direction
}

// Pending returns the queued turn, if any
func (s *Snake) Pending() (types.Direction, bool) {
	return s.pending, s.pending.Valid()
}

// QueueDirection records a turn to apply on the next move.
// Turning straight back onto the body is refused.
func (s *Snake) QueueDirection(dir types.Direction) bool {
	if !dir.Valid() || dir == s.direction.Opposite() {
		return false
	}
	s.pending = dir
	return true
}

// NextHead applies the queued turn and returns where the head goes next.
// With solid walls the second result is false when the head would leave the grid.
func (s *Snake) NextHead(grid types.Grid, boundary types.Boundary) (types.Point, bool) {
	if s.pending.Valid() && s.pending != s.direction.Opposite() {
		s.direction = s.pending
	}
	s.pending = 0

	next := s.GetHead().Add(s.direction.ToPoint())
	if boundary == types.BoundarySolid {
		return next, grid.Contains(next)
	}
	return grid.Wrap(next), true
}

// HitsBody reports whether p lies on any segment behind the head
func (s *Snake) HitsBody(p types.Point) bool {
	return slices.Contains(s.Body[1:], p)
}

// Move prepends the new head and drops the tail
func (s *Snake) Move(newHead types.Point) {
	copy(s.Body[1:], s.Body[:len(s.Body)-1])
	s.Body[0] = newHead
}

// Grow duplicates the tail; the duplicate is left behind on the next move
func (s *Snake) Grow() {
	s.Body = append(s.Body, s.Body[len(s.Body)-1])
}

func (s *Snake) Occupies(p types.Point) bool {
	return slices.Contains(s.Body, p)
}

func (s *Snake) Cells() []types.Point {
	return slices.Clone(s.Body)
}

func (s *Snake) Draw(surface Surface) {
	for _, p := range s.Body {
		surface.FillCell(p, s.Color, types.BorderColor)
	}
}
