package game

import (
	"log/slog"

	"github.com/napolitain/gatherers/internal/models"
)

// PlayerID identifies a registered player. IDs are sequential from zero
// and never reused.
type PlayerID int

// QueuedProduction is a production item waiting in, or at the head of,
// a player's production queue.
type QueuedProduction struct {
	Item      models.ProductionItem
	Remaining int // ticks left; only the head counts down
}

// Player owns workers, a stockpile, money and a production queue
type Player struct {
	id        PlayerID
	workers   []models.Worker
	stockpile models.ResourceAmount
	money     uint64
	queue     []QueuedProduction

	newWorker models.WorkerAction
	logger    *slog.Logger
}

func newPlayer(id PlayerID, roster []models.Worker, newWorker models.WorkerAction) *Player {
	workers := make([]models.Worker, len(roster))
	copy(workers, roster)
	return &Player{
		id:        id,
		workers:   workers,
		newWorker: newWorker,
		logger:    slog.Default(),
	}
}

// ID returns the player's id
func (p *Player) ID() PlayerID {
	return p.id
}

// Money returns the player's balance
func (p *Player) Money() uint64 {
	return p.money
}

// Stockpile returns a copy of the player's resources
func (p *Player) Stockpile() models.ResourceAmount {
	return p.stockpile
}

// Workers returns a copy of the roster
func (p *Player) Workers() []models.Worker {
	out := make([]models.Worker, len(p.workers))
	copy(out, p.workers)
	return out
}

// Queue returns a copy of the production queue, head first
func (p *Player) Queue() []QueuedProduction {
	out := make([]QueuedProduction, len(p.queue))
	copy(out, p.queue)
	return out
}

// Step advances the player by one tick: the production head counts down
// and completes first, then every gathering worker adds one unit.
func (p *Player) Step() {
	// workers completed this tick start gathering next tick
	gatherers := p.workers

	if len(p.queue) > 0 {
		head := &p.queue[0]
		head.Remaining--
		if head.Remaining <= 0 {
			item := head.Item
			p.queue = p.queue[1:]
			p.complete(item)
		}
	}

	for _, w := range gatherers {
		if r, ok := w.Action.Gathering(); ok {
			*p.stockpile.Ptr(r)++
		}
	}
}

// complete applies the completion effect of item. Every item in the
// catalog yields one new worker.
func (p *Player) complete(item models.ProductionItem) {
	switch item {
	case models.WorkerIron, models.WorkerStone:
		p.workers = append(p.workers, models.NewWorker(p.newWorker))
		p.logger.Debug("production complete", "player", p.id, "item", item, "workers", len(p.workers))
	}
}

func (p *Player) allocate(r models.Resource) bool {
	for i := range p.workers {
		if p.workers[i].Action.IsIdle() {
			p.workers[i].Action = models.Gather(r)
			return true
		}
	}
	return false
}

func (p *Player) deallocate(r models.Resource) bool {
	target := models.Gather(r)
	for i := range p.workers {
		if p.workers[i].Action == target {
			p.workers[i].Action = models.Idle
			return true
		}
	}
	return false
}

// enqueue pays for item and queues it. Nothing happens if the stockpile
// cannot cover the cost.
func (p *Player) enqueue(item models.ProductionItem, recipe models.Recipe) bool {
	if !p.stockpile.Consume(recipe.Cost) {
		return false
	}
	p.queue = append(p.queue, QueuedProduction{Item: item, Remaining: recipe.Duration})
	return true
}
