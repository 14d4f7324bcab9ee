package manager

import (
	"snake-stones/game/entity"
	"snake-stones/game/types"
)

type CollisionManager struct {
	grid types.Grid
}

func NewCollisionManager(grid types.Grid) *CollisionManager {
	return &CollisionManager{
		grid: grid,
	}
}

// CheckCollision checks all terminal collisions for the snake's next head.
// Walls only matter with solid boundaries, where pos is left unwrapped.
func (cm *CollisionManager) CheckCollision(pos types.Point, snake *entity.Snake, stones *StoneManager) types.Cause {
	if cm.isWallCollision(pos) {
		return types.WallCollision
	}

	if stones != nil && stones.Occupies(pos) {
		return types.StoneCollision
	}

	if cm.isSelfCollision(pos, snake) {
		return types.SelfCollision
	}

	return types.NoCollision
}

// isWallCollision checks if a position is off the grid
func (cm *CollisionManager) isWallCollision(pos types.Point) bool {
	return !cm.grid.Contains(pos)
}

// isSelfCollision checks the body behind the head, whatever the snake's length
func (cm *CollisionManager) isSelfCollision(pos types.Point, snake *entity.Snake) bool {
	return snake != nil && snake.HitsBody(pos)
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food *entity.Apple) bool {
	return food != nil && food.Occupies(pos)
}
