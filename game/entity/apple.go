package entity

import (
	"the-snake/game/types"

	"golang.org/x/exp/rand"
)

type Apple struct {
	Position types.Point
	Color    types.Color
	grid     types.Grid
}

// SpawnApple places a new apple on a random cell. The snake's body is not
// consulted here.
func SpawnApple(grid types.Grid, rng *rand.Rand) *Apple {
	return NewApple(grid, grid.RandomCell(rng))
}

func NewApple(grid types.Grid, pos types.Point) *Apple {
	return &Apple{
		Position: pos,
		Color:    types.AppleColor,
		grid:     grid,
	}
}

func (a *Apple) Render(c Canvas) {
	border := types.BorderColor
	c.DrawRect(a.Position, a.grid.Unit, a.Color, &border)
}
