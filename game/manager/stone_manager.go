package manager

import (
	"snake-stones/game/entity"
	"snake-stones/game/types"

	"golang.org/x/exp/slices"
)

// StoneManager keeps the obstacles. Stones are only ever added, until Reset.
type StoneManager struct {
	cadence int
	stones  []entity.Stone
	placer  *Placer
}

func NewStoneManager(cadence int, placer *Placer) *StoneManager {
	return &StoneManager{
		cadence: cadence,
		stones:  make([]entity.Stone, 0),
		placer:  placer,
	}
}

// Due reports whether eating the apple that brought the count to eaten spawns a stone
func (sm *StoneManager) Due(eaten int) bool {
	return sm.cadence > 0 && eaten > 0 && eaten%sm.cadence == 0
}

// Spawn places one new stone outside the excluded sets and the existing stones
func (sm *StoneManager) Spawn(excluded ...[]types.Point) (entity.Stone, error) {
	pos, err := sm.placer.Place(append(excluded, sm.Cells())...)
	if err != nil {
		return entity.Stone{}, err
	}
	stone := entity.NewStone(pos)
	sm.stones = append(sm.stones, stone)
	return stone, nil
}

func (sm *StoneManager) Occupies(p types.Point) bool {
	return slices.ContainsFunc(sm.stones, func(s entity.Stone) bool {
		return s.Occupies(p)
	})
}

func (sm *StoneManager) Cells() []types.Point {
	cells := make([]types.Point, len(sm.stones))
	for i, s := range sm.stones {
		cells[i] = s.Position()
	}
	return cells
}

func (sm *StoneManager) Stones() []entity.Stone {
	return slices.Clone(sm.stones)
}

func (sm *StoneManager) Count() int {
	return len(sm.stones)
}

func (sm *StoneManager) Reset() {
	sm.stones = sm.stones[:0]
}
