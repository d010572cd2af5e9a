package game

import "github.com/napolitain/gatherers/internal/models"

// PlayerView is a read-only snapshot of one player for rendering
type PlayerView struct {
	ID         PlayerID
	Money      uint64
	Stockpile  models.ResourceAmount
	Workers    models.WorkerCounts
	Production *QueuedProduction // head of the queue, nil when empty
	Queued     int               // total items in the queue, head included
}

// Players returns the registered ids in registration order
func (g *GameState) Players() []PlayerID {
	ids := make([]PlayerID, len(g.players))
	for i, p := range g.players {
		ids[i] = p.id
	}
	return ids
}

// Player returns a snapshot of the player, or false for an unknown id
func (g *GameState) Player(id PlayerID) (PlayerView, bool) {
	p := g.player(id)
	if p == nil {
		return PlayerView{}, false
	}
	v := PlayerView{
		ID:        p.id,
		Money:     p.money,
		Stockpile: p.stockpile,
		Workers:   models.CountWorkers(p.workers),
		Queued:    len(p.queue),
	}
	if len(p.queue) > 0 {
		head := p.queue[0]
		v.Production = &head
	}
	return v, true
}

// PlayerViews returns snapshots of every player in id order
func (g *GameState) PlayerViews() []PlayerView {
	views := make([]PlayerView, 0, len(g.players))
	for _, id := range g.Players() {
		v, _ := g.Player(id)
		views = append(views, v)
	}
	return views
}
