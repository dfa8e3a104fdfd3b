package manager

import (
	"the-snake/game/entity"
	"the-snake/game/types"
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// AteApple reports whether the snake's head landed on the apple
func (cm *CollisionManager) AteApple(snake *entity.Snake, apple *entity.Apple) bool {
	return snake.HeadPosition() == apple.Position
}

// Occupied checks if a cell is covered by any part of the snake
func (cm *CollisionManager) Occupied(pos types.Point, snake *entity.Snake) bool {
	return snake != nil && snake.Occupies(pos)
}

// ValidateSpawnPosition checks if an apple may be placed at pos under the given policy
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, snake *entity.Snake, policy SpawnPolicy) bool {
	if !cm.grid.Contains(pos) {
		return false
	}
	if policy == AvoidSnake && cm.Occupied(pos, snake) {
		return false
	}
	return true
}
