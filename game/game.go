package game

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"time"

	"the-snake/config"
	"the-snake/game/entity"
	"the-snake/game/manager"
	"the-snake/game/types"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"
)

// Game holds everything the loop owns. It is created before the loop starts
// and dropped after it returns.
type Game struct {
	UUID   string
	Config config.Config
	Grid   types.Grid

	snake        *entity.Snake
	foodMgr      *manager.FoodManager
	collisionMgr *manager.CollisionManager
	stateMgr     *manager.StateManager
	logger       *log.Logger
}

func NewGame(cfg config.Config, rng *rand.Rand, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	grid := types.NewGrid(cfg.ScreenWidth, cfg.ScreenHeight, cfg.GridSize)
	collisionMgr := manager.NewCollisionManager(grid)

	g := &Game{
		UUID:         uuid.New().String(),
		Config:       cfg,
		Grid:         grid,
		snake:        entity.NewSnake(grid),
		collisionMgr: collisionMgr,
		foodMgr:      manager.NewFoodManager(grid, rng, cfg.Policy(), collisionMgr),
		stateMgr:     manager.NewStateManager(),
		logger:       logger,
	}
	g.foodMgr.Respawn(g.snake)
	return g
}

func (g *Game) Snake() *entity.Snake {
	return g.snake
}

func (g *Game) Apple() *entity.Apple {
	return g.foodMgr.Apple()
}

func (g *Game) Stats() manager.SessionStats {
	return g.stateMgr.Stats()
}

// HandleEvents applies queued input in arrival order. It returns true when a
// quit event was seen; events after it are dropped.
func (g *Game) HandleEvents(events []Event) bool {
	for _, ev := range events {
		switch ev.Kind {
		case EventQuit:
			return true
		case EventKeyDown:
			g.snake.SetPendingDirection(ev.Direction)
		case EventRestart:
			g.snake.Reset()
			g.stateMgr.Restart()
			g.logger.Printf("restart #%d", g.stateMgr.Stats().Restarts)
		}
	}
	return false
}

// Tick advances the simulation by one step
func (g *Game) Tick() {
	g.snake.ApplyPendingDirection()
	g.snake.Advance()

	if g.collisionMgr.AteApple(g.snake, g.foodMgr.Apple()) {
		g.snake.Grow()
		g.foodMgr.Respawn(g.snake)
		g.stateMgr.AppleEaten()
		g.logger.Printf("apple eaten, length %d, next apple at %v", g.snake.Length(), g.foodMgr.Apple().Position)
	}
	g.stateMgr.Tick()
}

func (g *Game) Render(c entity.Canvas) error {
	c.Clear(types.BackgroundColor)
	g.foodMgr.Apple().Render(c)
	g.snake.Render(c)
	if err := c.Present(); err != nil {
		return fmt.Errorf("present frame: %w", err)
	}
	return nil
}

// Run drives the loop until the player quits, ctx is cancelled or a
// collaborator fails. Quitting is not an error.
func (g *Game) Run(ctx context.Context, backend Backend, clock Clock) error {
	g.logger.Printf("game %s started: %dx%d grid, %d ticks/s, apple policy %s",
		g.UUID, g.Grid.Columns(), g.Grid.Rows(), g.Config.Speed, g.Config.ApplePolicy)
	defer g.logSummary()

	for {
		events, err := backend.PollEvents()
		if err != nil {
			return fmt.Errorf("poll events: %w", err)
		}
		if g.HandleEvents(events) {
			g.logger.Printf("quit requested")
			return nil
		}

		g.Tick()

		if err := g.Render(backend); err != nil {
			return err
		}

		if err := clock.SleepUntilNextTick(ctx); err != nil {
			if errors.Is(err, context.Canceled) {
				g.logger.Printf("interrupted")
				return nil
			}
			return fmt.Errorf("wait for tick: %w", err)
		}
	}
}

func (g *Game) logSummary() {
	s := g.stateMgr.Stats()
	g.logger.Printf("game %s over after %s: %d ticks, %d apples, best score %d, %d restarts",
		g.UUID, g.stateMgr.Elapsed().Round(time.Millisecond), s.Ticks, s.ApplesEaten, s.BestScore, s.Restarts)
}
