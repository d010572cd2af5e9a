// Package game holds the simulation core: players, the consumer sector and
// the single entry points through which time advances and commands apply.
//
// Every operation runs to completion before the next is invoked. Commands
// that cannot apply are dropped without error.
package game

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/napolitain/gatherers/internal/market"
	"github.com/napolitain/gatherers/internal/models"
)

// DefaultRosterSize is the number of workers a new player starts with
const DefaultRosterSize = 3

// GameState is the aggregate root of one simulation run
type GameState struct {
	players []*Player
	paused  bool
	market  *market.ConsumerSector
	tick    uint64

	catalog   models.ProductionCatalog
	roster    []models.Worker
	stockpile models.ResourceAmount
	newWorker models.WorkerAction
	logger    *slog.Logger
}

// Option configures a GameState
type Option func(*GameState)

// WithMarket replaces the default consumer sector
func WithMarket(cs *market.ConsumerSector) Option {
	return func(g *GameState) {
		if cs != nil {
			g.market = cs
		}
	}
}

// WithProductionCatalog replaces the default production recipes
func WithProductionCatalog(c models.ProductionCatalog) Option {
	return func(g *GameState) {
		g.catalog = c
	}
}

// WithStartingRoster sets the workers every newly registered player gets
func WithStartingRoster(size int, action models.WorkerAction) Option {
	return func(g *GameState) {
		g.roster = make([]models.Worker, max(size, 0))
		for i := range g.roster {
			g.roster[i] = models.NewWorker(action)
		}
	}
}

// WithStartingStockpile sets the resources every newly registered player gets
func WithStartingStockpile(a models.ResourceAmount) Option {
	return func(g *GameState) {
		g.stockpile = a
	}
}

// WithNewWorkerAction sets the action of workers created by production
func WithNewWorkerAction(action models.WorkerAction) Option {
	return func(g *GameState) {
		g.newWorker = action
	}
}

// WithLogger sets the logger used for debug traces
func WithLogger(l *slog.Logger) Option {
	return func(g *GameState) {
		if l != nil {
			g.logger = l
		}
	}
}

// New creates an empty world. Defaults: reference market and production
// catalogs, three starting workers gathering Iron, produced workers Idle.
func New(opts ...Option) *GameState {
	g := &GameState{
		market:    market.Default(),
		catalog:   models.DefaultProductionCatalog(),
		newWorker: models.Idle,
		logger:    slog.Default(),
	}
	WithStartingRoster(DefaultRosterSize, models.Gather(models.Iron))(g)
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// RegisterPlayer adds a player with the starting roster and returns its id
func (g *GameState) RegisterPlayer() PlayerID {
	id := PlayerID(len(g.players))
	p := newPlayer(id, g.roster, g.newWorker)
	p.logger = g.logger
	p.stockpile = g.stockpile
	g.players = append(g.players, p)
	g.logger.Debug("player registered", "player", id, "workers", len(g.roster))
	return id
}

// Step advances every player by one tick
func (g *GameState) Step() {
	for _, p := range g.players {
		p.Step()
	}
	g.tick++
}

// HandleAction applies a command. Commands naming an unknown player, or
// that cannot be satisfied, leave the state unchanged.
func (g *GameState) HandleAction(action GameAction) {
	if action.Kind == ActionTogglePause {
		g.paused = !g.paused
		g.logger.Debug("pause toggled", "paused", g.paused)
		return
	}

	p := g.player(action.Player)
	if p == nil || !action.valid() {
		g.logger.Debug("action dropped: invalid target", "action", action)
		return
	}

	var applied bool
	switch action.Kind {
	case ActionAllocateWorker:
		applied = p.allocate(action.Resource)
	case ActionDeallocateWorker:
		applied = p.deallocate(action.Resource)
	case ActionProduce:
		applied = p.enqueue(action.Item, g.catalog.Recipe(action.Item))
	case ActionSell:
		var money uint64
		money, applied = g.market.Trade(&p.stockpile, action.SellItem)
		if applied {
			p.money += money
		}
	}

	if !applied {
		g.logger.Debug("action dropped", "action", action, "tick", g.tick)
	}
}

func (g *GameState) player(id PlayerID) *Player {
	if id < 0 || int(id) >= len(g.players) {
		return nil
	}
	return g.players[id]
}

// IsPaused reports whether the driver should hold time
func (g *GameState) IsPaused() bool {
	return g.paused
}

// Tick returns the number of steps taken so far
func (g *GameState) Tick() uint64 {
	return g.tick
}

// Catalog returns the production catalog in use
func (g *GameState) Catalog() models.ProductionCatalog {
	return g.catalog
}

// Trade returns the currently posted trade for item
func (g *GameState) Trade(item models.SellItem) models.Trade {
	return g.market.GetTrade(item)
}

// Market returns the full price table
func (g *GameState) Market() []market.TradeQuote {
	return g.market.Prices()
}

func (g *GameState) String() string {
	var sb strings.Builder
	for _, p := range g.players {
		fmt.Fprintf(&sb, "%d: %s\n", p.id, p.stockpile)
	}
	return sb.String()
}
