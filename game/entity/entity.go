package entity

import "snake-stones/game/types"

// Surface is anything a frontend can paint grid cells onto
type Surface interface {
	FillCell(p types.Point, fill, border types.Color)
}

// Entity is an object that occupies grid cells and knows how to draw itself
type Entity interface {
	Occupies(p types.Point) bool
	Cells() []types.Point
	Draw(s Surface)
}

// Apple is the single piece of food on the board
type Apple struct {
	Position types.Point
	Color    types.Color
}

func NewApple(pos types.Point) *Apple {
	return &Apple{Position: pos, Color: types.AppleColor}
}

// MoveTo relocates the apple
func (a *Apple) MoveTo(p types.Point) {
	a.Position = p
}

func (a *Apple) Occupies(p types.Point) bool {
	return a.Position == p
}

func (a *Apple) Cells() []types.Point {
	return []types.Point{a.Position}
}

func (a *Apple) Draw(s Surface) {
	s.FillCell(a.Position, a.Color, types.BorderColor)
}

// Stone is an obstacle. It never moves once placed.
type Stone struct {
	position types.Point
}

func NewStone(pos types.Point) Stone {
	return Stone{position: pos}
}

func (st Stone) Position() types.Point {
	return st.position
}

func (st Stone) Occupies(p types.Point) bool {
	return st.position == p
}

func (st Stone) Cells() []types.Point {
	return []types.Point{st.position}
}

func (st Stone) Draw(s Surface) {
	s.FillCell(st.position, types.StoneColor, types.BorderColor)
}
