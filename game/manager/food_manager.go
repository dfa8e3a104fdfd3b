package manager

import (
	"fmt"

	"the-snake/game/entity"
	"the-snake/game/types"

	"golang.org/x/exp/rand"
)

// SpawnPolicy decides whether apples may land on the snake's body
type SpawnPolicy string

const (
	AllowOverlap SpawnPolicy = "allow-overlap"
	AvoidSnake   SpawnPolicy = "avoid-snake"
)

func ParseSpawnPolicy(s string) (SpawnPolicy, error) {
	switch p := SpawnPolicy(s); p {
	case AllowOverlap, AvoidSnake:
		return p, nil
	}
	return "", fmt.Errorf("unknown apple policy %q", s)
}

type FoodManager struct {
	grid         types.Grid
	rng          *rand.Rand
	policy       SpawnPolicy
	apple        *entity.Apple
	collisionMgr *CollisionManager
}

func NewFoodManager(grid types.Grid, rng *rand.Rand, policy SpawnPolicy, collisionMgr *CollisionManager) *FoodManager {
	return &FoodManager{
		grid:         grid,
		rng:          rng,
		policy:       policy,
		collisionMgr: collisionMgr,
	}
}

func (fm *FoodManager) Apple() *entity.Apple {
	return fm.apple
}

// Respawn replaces the current apple with a freshly drawn one
func (fm *FoodManager) Respawn(snake *entity.Snake) *entity.Apple {
	fm.apple = fm.GenerateApple(snake)
	return fm.apple
}

func (fm *FoodManager) GenerateApple(snake *entity.Snake) *entity.Apple {
	if fm.policy != AvoidSnake {
		return entity.SpawnApple(fm.grid, fm.rng)
	}

	// No free cell left, nothing to avoid
	if snake != nil && len(snake.Body) >= fm.grid.CellCount() {
		return entity.SpawnApple(fm.grid, fm.rng)
	}

	for {
		apple := entity.SpawnApple(fm.grid, fm.rng)
		if fm.collisionMgr.ValidateSpawnPosition(apple.Position, snake, fm.policy) {
			return apple
		}
	}
}

// Place puts the apple on a specific cell
func (fm *FoodManager) Place(pos types.Point) *entity.Apple {
	fm.apple = entity.NewApple(fm.grid, pos)
	return fm.apple
}
