package types

import "fmt"

// Point is a cell on the grid
type Point struct {
	X, Y int
}

// Add returns the cell offset by d, without wrapping
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Direction is one of the four headings a snake can take
type Direction int

const (
	Up Direction = iota + 1
	Down
	Left
	Right
)

// ToPoint returns the unit vector of the direction
func (d Direction) ToPoint() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	case Right:
		return Point{X: 1, Y: 0}
	}
	return Point{}
}

// Opposite returns the heading that would reverse the snake into itself
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	}
	return d
}

// Valid reports whether d is one of the four headings
func (d Direction) Valid() bool {
	return d >= Up && d <= Right
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "none"
}

// Boundary selects what happens when the snake reaches the edge of the grid
type Boundary int

const (
	BoundaryWrap Boundary = iota
	BoundarySolid
)

func (b Boundary) String() string {
	if b == BoundarySolid {
		return "solid"
	}
	return "wrap"
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Cells returns the number of cells on the grid
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// Contains reports whether p lies inside the grid
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Wrap maps p back onto the grid, treating it as a torus
func (g Grid) Wrap(p Point) Point {
	return Point{X: mod(p.X, g.Width), Y: mod(p.Y, g.Height)}
}

// Center returns the middle cell, rounded down
func (g Grid) Center() Point {
	return Point{X: g.Width / 2, Y: g.Height / 2}
}

// Distance is the Manhattan distance between two cells, taking wrapping into account
func (g Grid) Distance(a, b Point) int {
	dx := abs(b.X - a.X)
	dy := abs(b.Y - a.Y)

	if dx > g.Width/2 {
		dx = g.Width - dx
	}
	if dy > g.Height/2 {
		dy = g.Height - dy
	}

	return dx + dy
}

func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Color is an opaque RGB colour
type Color struct {
	R, G, B uint8
}

// Palette
var (
	BackgroundColor = Color{R: 0, G: 0, B: 0}
	BorderColor     = Color{R: 93, G: 216, B: 228}
	AppleColor      = Color{R: 255, G: 0, B: 0}
	SnakeColor      = Color{R: 0, G: 255, B: 0}
	StoneColor      = Color{R: 128, G: 128, B: 128}
)

// Cause represents why a game ended
type Cause int

const (
	NoCollision Cause = iota
	SelfCollision
	StoneCollision
	WallCollision
	BoardFull
)

func (c Cause) String() string {
	switch c {
	case SelfCollision:
		return "the snake ran into itself"
	case StoneCollision:
		return "the snake hit a stone"
	case WallCollision:
		return "the snake hit the wall"
	case BoardFull:
		return "the board is full"
	}
	return "no collision"
}
