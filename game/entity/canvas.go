package entity

import "the-snake/game/types"

// Canvas is the drawing surface a backend exposes to the entities
type Canvas interface {
	// DrawRect fills a size×size square at pos, outlined when border is set
	DrawRect(pos types.Point, size int, fill types.Color, border *types.Color)
	Clear(color types.Color)
	Present() error
}
