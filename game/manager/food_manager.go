package manager

import (
	"snake-stones/game/entity"
	"snake-stones/game/types"
)

type FoodManager struct {
	apple  *entity.Apple
	placer *Placer
}

func NewFoodManager(placer *Placer) *FoodManager {
	return &FoodManager{
		apple:  entity.NewApple(types.Point{}),
		placer: placer,
	}
}

// Spawn moves the apple to a random cell outside the excluded sets
func (fm *FoodManager) Spawn(excluded ...[]types.Point) error {
	pos, err := fm.placer.Place(excluded...)
	if err != nil {
		return err
	}
	fm.apple.MoveTo(pos)
	return nil
}

func (fm *FoodManager) Apple() *entity.Apple {
	return fm.apple
}

func (fm *FoodManager) Position() types.Point {
	return fm.apple.Position
}
