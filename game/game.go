package game

import (
	"fmt"
	"time"

	"snake-stones/game/entity"
	"snake-stones/game/manager"
	"snake-stones/game/types"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"
)

// ErrGridFull is returned by Tick when no free cell is left for the apple or a stone
var ErrGridFull = manager.ErrGridFull

// TickResult describes what happened during one tick
type TickResult struct {
	Head  types.Point
	Ate   bool
	Stone *types.Point // set when a stone was spawned
	Over  bool
	Cause types.Cause
}

// Game is one play session: the snake, the apple, the stones and the counters
type Game struct {
	id     string
	cfg    Config
	grid   types.Grid
	placer *manager.Placer
	snake  *entity.Snake

	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	stoneMgr     *manager.StoneManager
	stateMgr     *manager.StateManager

	over  bool
	cause types.Cause
}

// NewGame validates cfg and starts a session. A nil rng is seeded from cfg.Seed.
func NewGame(cfg Config, rng *rand.Rand) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		rng = rand.New(rand.NewSource(seed))
	}

	grid := cfg.Grid()
	placer := manager.NewPlacer(grid, rng)

	g := &Game{
		id:           uuid.New().String(),
		cfg:          cfg,
		grid:         grid,
		placer:       placer,
		collisionMgr: manager.NewCollisionManager(grid),
		foodMgr:      manager.NewFoodManager(placer),
		stoneMgr:     manager.NewStoneManager(cfg.StoneCadence, placer),
		stateMgr:     manager.NewStateManager(),
	}

	if err := g.reset(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) reset() error {
	g.snake = entity.NewSnake(g.cfg.StartPosition(), g.cfg.StartDirection)
	g.stoneMgr.Reset()
	g.stateMgr.NewGame()
	g.over = false
	g.cause = types.NoCollision

	if err := g.foodMgr.Spawn(g.snake.Body); err != nil {
		return fmt.Errorf("placing apple: %w", err)
	}
	return nil
}

// Restart begins a new game on the same session. High score and history survive.
func (g *Game) Restart() error {
	return g.reset()
}

// QueueDirection asks the snake to turn on the next tick
func (g *Game) QueueDirection(dir types.Direction) bool {
	if g.over {
		return false
	}
	return g.snake.QueueDirection(dir)
}

// Tick advances the game by one step
func (g *Game) Tick() (TickResult, error) {
	if g.over {
		return TickResult{Head: g.snake.GetHead(), Over: true, Cause: g.cause}, nil
	}
	g.stateMgr.AddTick()

	next, inBounds := g.snake.NextHead(g.grid, g.cfg.Boundary)
	cause := types.WallCollision
	if inBounds {
		cause = g.collisionMgr.CheckCollision(next, g.snake, g.stoneMgr)
	}
	if cause != types.NoCollision {
		g.end(cause)
		return TickResult{Head: g.snake.GetHead(), Over: true, Cause: cause}, nil
	}

	g.snake.Move(next)
	result := TickResult{Head: next}

	if !g.collisionMgr.IsFoodCollision(next, g.foodMgr.Apple()) {
		return result, nil
	}

	eaten := g.stateMgr.AddApple()
	g.snake.Grow()
	result.Ate = true

	if err := g.foodMgr.Spawn(g.snake.Body, g.stoneMgr.Cells()); err != nil {
		return g.fail(result, fmt.Errorf("relocating apple: %w", err))
	}

	if g.stoneMgr.Due(eaten) {
		stone, err := g.stoneMgr.Spawn(g.snake.Body, g.foodMgr.Apple().Cells())
		if err != nil {
			return g.fail(result, fmt.Errorf("spawning stone: %w", err))
		}
		pos := stone.Position()
		result.Stone = &pos
	}

	return result, nil
}

func (g *Game) fail(result TickResult, err error) (TickResult, error) {
	g.end(types.BoardFull)
	result.Over = true
	result.Cause = types.BoardFull
	return result, err
}

func (g *Game) end(cause types.Cause) {
	g.over = true
	g.cause = cause
	g.stateMgr.EndGame(cause)
}

// ID identifies the session in logs
func (g *Game) ID() string {
	return g.id
}

func (g *Game) Config() Config {
	return g.cfg
}

func (g *Game) Grid() types.Grid {
	return g.grid
}

func (g *Game) Over() bool {
	return g.over
}

func (g *Game) Cause() types.Cause {
	return g.cause
}

// Score is the number of apples eaten in the current game
func (g *Game) Score() int {
	return g.stateMgr.Score()
}

func (g *Game) Stats() manager.GameStats {
	return g.stateMgr.Stats()
}

func (g *Game) Snake() *entity.Snake {
	return g.snake
}

func (g *Game) Apple() *entity.Apple {
	return g.foodMgr.Apple()
}

func (g *Game) Stones() []entity.Stone {
	return g.stoneMgr.Stones()
}

// Entities returns everything on the board in draw order: apple, stones, snake
func (g *Game) Entities() []entity.Entity {
	stones := g.stoneMgr.Stones()
	entities := make([]entity.Entity, 0, len(stones)+2)
	entities = append(entities, g.foodMgr.Apple())
	for _, s := range stones {
		entities = append(entities, s)
	}
	return append(entities, g.snake)
}
