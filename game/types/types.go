package types

import "golang.org/x/exp/rand"

// Point is a grid-aligned cell in pixel coordinates
type Point struct {
	X, Y int
}

// Grid represents the board dimensions and the size of one cell
type Grid struct {
	Width  int
	Height int
	Unit   int
}

type Color struct {
	R, G, B uint8
}

// Reference palette
var (
	BackgroundColor = Color{R: 0, G: 0, B: 0}
	BorderColor     = Color{R: 93, G: 216, B: 228}
	AppleColor      = Color{R: 255, G: 0, B: 0}
	SnakeColor      = Color{R: 0, G: 255, B: 0}
)

func NewGrid(width, height, unit int) Grid {
	return Grid{
		Width:  width,
		Height: height,
		Unit:   unit,
	}
}

func (g Grid) Columns() int {
	return g.Width / g.Unit
}

func (g Grid) Rows() int {
	return g.Height / g.Unit
}

func (g Grid) CellCount() int {
	return g.Columns() * g.Rows()
}

// Wrap reduces a coordinate pair onto the board, so moving off one edge
// reappears on the opposite one.
func (g Grid) Wrap(x, y int) Point {
	return Point{X: mod(x, g.Width), Y: mod(y, g.Height)}
}

// Center returns the cell closest to the middle of the board
func (g Grid) Center() Point {
	return Point{
		X: (g.Width / 2) / g.Unit * g.Unit,
		Y: (g.Height / 2) / g.Unit * g.Unit,
	}
}

// RandomCell draws a uniformly random cell
func (g Grid) RandomCell(rng *rand.Rand) Point {
	return Point{
		X: rng.Intn(g.Columns()) * g.Unit,
		Y: rng.Intn(g.Rows()) * g.Unit,
	}
}

func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height &&
		p.X%g.Unit == 0 && p.Y%g.Unit == 0
}

// Go's % keeps the sign of the dividend
func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}
