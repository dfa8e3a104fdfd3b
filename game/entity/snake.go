package entity

import (
	"the-snake/game/types"
)

type Snake struct {
	Body      []types.Point // head first
	Direction types.Direction
	Color     types.Color

	length  int
	pending types.Direction
	// tail cell dropped by the last Advance, nil after a growth tick
	lastVacated *types.Point
	grid        types.Grid
}

func NewSnake(grid types.Grid) *Snake {
	s := &Snake{
		Color: types.SnakeColor,
		grid:  grid,
	}
	s.Reset()
	return s
}

// Reset puts the snake back in the center of the board, length 1, moving right
func (s *Snake) Reset() {
	s.Body = []types.Point{s.grid.Center()}
	s.Direction = types.Right
	s.length = 1
	s.pending = types.NoDirection
	s.lastVacated = nil
}

// SetPendingDirection buffers a direction change for the next tick.
// Reversing straight into the neck is ignored.
func (s *Snake) SetPendingDirection(dir types.Direction) {
	if dir == types.NoDirection || dir.IsOpposite(s.Direction) {
		return
	}
	s.pending = dir
}

func (s *Snake) ApplyPendingDirection() {
	if s.pending == types.NoDirection {
		return
	}
	s.Direction = s.pending
	s.pending = types.NoDirection
}

// Advance moves the head one cell and drops the tail unless the snake is growing
func (s *Snake) Advance() {
	head := s.HeadPosition()
	delta := s.Direction.Delta()
	newHead := s.grid.Wrap(head.X+delta.X*s.grid.Unit, head.Y+delta.Y*s.grid.Unit)

	s.Body = append([]types.Point{newHead}, s.Body...)

	if len(s.Body) > s.length {
		tail := s.Body[len(s.Body)-1]
		s.Body = s.Body[:len(s.Body)-1]
		s.lastVacated = &tail
	} else {
		s.lastVacated = nil
	}
}

func (s *Snake) Grow() {
	s.length++
}

func (s *Snake) HeadPosition() types.Point {
	return s.Body[0]
}

func (s *Snake) Length() int {
	return s.length
}

func (s *Snake) PendingDirection() types.Direction {
	return s.pending
}

// LastVacated returns the cell freed by the last move, if any
func (s *Snake) LastVacated() (types.Point, bool) {
	if s.lastVacated == nil {
		return types.Point{}, false
	}
	return *s.lastVacated, true
}

// Positions returns a copy of the body, head first
func (s *Snake) Positions() []types.Point {
	body := make([]types.Point, len(s.Body))
	copy(body, s.Body)
	return body
}

// Occupies reports whether any segment sits on p
func (s *Snake) Occupies(p types.Point) bool {
	for _, part := range s.Body {
		if part == p {
			return true
		}
	}
	return false
}

func (s *Snake) Render(c Canvas) {
	border := types.BorderColor

	// Erase first: the head may have just moved into the vacated cell
	if tail, ok := s.LastVacated(); ok {
		c.DrawRect(tail, s.grid.Unit, types.BackgroundColor, nil)
	}

	for _, p := range s.Body[1:] {
		c.DrawRect(p, s.grid.Unit, s.Color, &border)
	}
	c.DrawRect(s.HeadPosition(), s.grid.Unit, s.Color, &border)
}
