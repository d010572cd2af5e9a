package game

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/napolitain/gatherers/internal/market"
	"github.com/napolitain/gatherers/internal/models"
)

type fixedSampler float64

func (f fixedSampler) NormFloat64() float64 { return float64(f) }

// clonePlayer deep-copies a player for before/after comparisons
func clonePlayer(p *Player) Player {
	c := *p
	c.workers = slices.Clone(p.workers)
	c.queue = slices.Clone(p.queue)
	return c
}

// assertConservation checks idle + gathering == roster size for every player
func assertConservation(t *testing.T, g *GameState) {
	t.Helper()
	for _, p := range g.players {
		c := models.CountWorkers(p.workers)
		sum := c.Idle
		for _, r := range models.AllResources() {
			sum += c.GatheringOf(r)
		}
		assert.Equal(t, len(p.workers), sum, "player %d", p.id)
	}
}

func TestRegisterPlayer_SequentialIDs(t *testing.T) {
	g := New()

	for want := PlayerID(0); want < 4; want++ {
		assert.Equal(t, want, g.RegisterPlayer())
	}
	assert.Equal(t, []PlayerID{0, 1, 2, 3}, g.Players())

	v, ok := g.Player(2)
	require.True(t, ok)
	assert.Equal(t, DefaultRosterSize, v.Workers.GatheringOf(models.Iron))
	assert.Zero(t, v.Workers.Idle)
	assert.Zero(t, v.Money)
	assert.Nil(t, v.Production)

	_, ok = g.Player(4)
	assert.False(t, ok)
}

func TestEndToEndScenario(t *testing.T) {
	g := New()
	p := g.RegisterPlayer()

	g.Step()
	v, _ := g.Player(p)
	assert.Equal(t, uint32(3), v.Stockpile.Get(models.Iron))
	assert.Zero(t, v.Stockpile.Get(models.Copper))
	assert.Zero(t, v.Stockpile.Get(models.Stone))

	// every worker already gathers: allocation has nobody to move
	before := clonePlayer(g.players[p])
	g.HandleAction(AllocateWorker(p, models.Copper))
	assert.Equal(t, before, clonePlayer(g.players[p]))

	g.HandleAction(DeallocateWorker(p, models.Iron))
	v, _ = g.Player(p)
	assert.Equal(t, 1, v.Workers.Idle)
	assert.Equal(t, 2, v.Workers.GatheringOf(models.Iron))

	g.Step()
	v, _ = g.Player(p)
	assert.Equal(t, uint32(5), v.Stockpile.Get(models.Iron))
	assertConservation(t, g)
}

func TestAllocate_FirstIdleWins(t *testing.T) {
	g := New(WithStartingRoster(3, models.Idle))
	p := g.RegisterPlayer()

	g.HandleAction(AllocateWorker(p, models.Stone))
	g.HandleAction(AllocateWorker(p, models.Copper))

	workers := g.players[p].Workers()
	assert.Equal(t, models.Gather(models.Stone), workers[0].Action)
	assert.Equal(t, models.Gather(models.Copper), workers[1].Action)
	assert.Equal(t, models.Idle, workers[2].Action)
}

func TestDeallocate_FirstMatchWins(t *testing.T) {
	g := New(WithStartingRoster(3, models.Idle))
	p := g.RegisterPlayer()
	g.HandleAction(AllocateWorker(p, models.Copper))
	g.HandleAction(AllocateWorker(p, models.Stone))
	g.HandleAction(AllocateWorker(p, models.Stone))

	g.HandleAction(DeallocateWorker(p, models.Stone))

	workers := g.players[p].Workers()
	assert.Equal(t, models.Gather(models.Copper), workers[0].Action)
	assert.Equal(t, models.Idle, workers[1].Action)
	assert.Equal(t, models.Gather(models.Stone), workers[2].Action)
}

func TestIdempotentNoOps(t *testing.T) {
	tests := []struct {
		name   string
		opts   []Option
		action func(PlayerID) GameAction
	}{
		{
			name:   "allocate without idle workers",
			action: func(p PlayerID) GameAction { return AllocateWorker(p, models.Stone) },
		},
		{
			name:   "deallocate resource nobody gathers",
			action: func(p PlayerID) GameAction { return DeallocateWorker(p, models.Copper) },
		},
		{
			name:   "deallocate with idle roster",
			opts:   []Option{WithStartingRoster(2, models.Idle)},
			action: func(p PlayerID) GameAction { return DeallocateWorker(p, models.Iron) },
		},
		{
			name:   "produce without resources",
			action: func(p PlayerID) GameAction { return Produce(p, models.WorkerIron) },
		},
		{
			name:   "sell without resources",
			opts:   []Option{WithStartingStockpile(models.Amount(models.Iron, 99))},
			action: func(p PlayerID) GameAction { return Sell(p, models.SellIron) },
		},
		{
			name:   "invalid resource",
			action: func(p PlayerID) GameAction { return AllocateWorker(p, models.Resource(42)) },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New(tt.opts...)
			p := g.RegisterPlayer()
			before := clonePlayer(g.players[p])
			prices := g.Market()

			g.HandleAction(tt.action(p))

			assert.Equal(t, before, clonePlayer(g.players[p]))
			assert.Equal(t, prices, g.Market())
		})
	}
}

func TestHandleAction_UnknownPlayerIgnored(t *testing.T) {
	g := New()
	g.RegisterPlayer()

	assert.NotPanics(t, func() {
		g.HandleAction(AllocateWorker(7, models.Iron))
		g.HandleAction(Sell(-1, models.SellIron))
		g.HandleAction(Produce(1, models.WorkerStone))
	})
	assert.Len(t, g.Players(), 1)
}

func TestTogglePause_CommandsStillApply(t *testing.T) {
	g := New()
	p := g.RegisterPlayer()

	g.HandleAction(TogglePause())
	require.True(t, g.IsPaused())

	g.HandleAction(DeallocateWorker(p, models.Iron))
	v, _ := g.Player(p)
	assert.Equal(t, 1, v.Workers.Idle)

	g.HandleAction(TogglePause())
	assert.False(t, g.IsPaused())
}

func TestProduction_CompletesOnFinalTick(t *testing.T) {
	catalog := models.DefaultProductionCatalog()
	d := catalog.ProductionTime(models.WorkerIron)
	g := New(WithStartingStockpile(models.Amount(models.Iron, 100)))
	p := g.RegisterPlayer()

	g.HandleAction(Produce(p, models.WorkerIron))
	v, _ := g.Player(p)
	require.NotNil(t, v.Production)
	assert.Equal(t, models.WorkerIron, v.Production.Item)
	assert.Equal(t, d, v.Production.Remaining)
	assert.Zero(t, v.Stockpile.Get(models.Iron), "cost is paid when queued")

	for step := 1; step < d; step++ {
		g.Step()
		v, _ = g.Player(p)
		require.NotNil(t, v.Production, "step %d", step)
		assert.Equal(t, d-step, v.Production.Remaining)
		assert.Equal(t, DefaultRosterSize, v.Workers.Total())
	}

	g.Step()
	v, _ = g.Player(p)
	assert.Nil(t, v.Production)
	assert.Equal(t, DefaultRosterSize+1, v.Workers.Total())
	assert.Equal(t, 1, v.Workers.Idle, "produced workers start idle")
	// the new worker did not gather on the tick it appeared
	assert.Equal(t, uint32(DefaultRosterSize*d), v.Stockpile.Get(models.Iron))
}

func TestProduction_QueueRunsOneAtATime(t *testing.T) {
	catalog := models.DefaultProductionCatalog().
		WithRecipe(models.WorkerIron, models.Recipe{Cost: models.Amount(models.Iron, 1), Duration: 2}).
		WithRecipe(models.WorkerStone, models.Recipe{Cost: models.Amount(models.Iron, 1), Duration: 3})
	g := New(
		WithProductionCatalog(catalog),
		WithStartingStockpile(models.Amount(models.Iron, 2)),
		WithStartingRoster(1, models.Idle),
	)
	p := g.RegisterPlayer()

	g.HandleAction(Produce(p, models.WorkerIron))
	g.HandleAction(Produce(p, models.WorkerStone))
	g.HandleAction(Produce(p, models.WorkerStone)) // unaffordable, dropped

	queue := g.players[p].Queue()
	require.Len(t, queue, 2)
	assert.Equal(t, QueuedProduction{Item: models.WorkerStone, Remaining: 3}, queue[1])

	g.Step()
	queue = g.players[p].Queue()
	assert.Equal(t, 1, queue[0].Remaining)
	assert.Equal(t, 3, queue[1].Remaining, "items behind the head do not count down")

	g.Step()
	v, _ := g.Player(p)
	assert.Equal(t, 2, v.Workers.Total())
	require.NotNil(t, v.Production)
	assert.Equal(t, models.WorkerStone, v.Production.Item)
	assert.Equal(t, 1, v.Queued)

	for range 3 {
		g.Step()
	}
	v, _ = g.Player(p)
	assert.Equal(t, 3, v.Workers.Total())
	assert.Nil(t, v.Production)
	assert.Zero(t, v.Queued)
}

func TestNewWorkerActionOption(t *testing.T) {
	catalog := models.DefaultProductionCatalog().
		WithRecipe(models.WorkerStone, models.Recipe{Duration: 1})
	g := New(WithProductionCatalog(catalog), WithNewWorkerAction(models.Gather(models.Stone)))
	p := g.RegisterPlayer()

	g.HandleAction(Produce(p, models.WorkerStone))
	g.Step()
	g.Step()

	v, _ := g.Player(p)
	assert.Equal(t, 1, v.Workers.GatheringOf(models.Stone))
	assert.Equal(t, uint32(1), v.Stockpile.Get(models.Stone))
}

func TestSell_CreditsMoneyAndDrifts(t *testing.T) {
	cs := market.New(models.DefaultSellCatalog(), fixedSampler(0), market.DefaultDriftParams())
	g := New(WithMarket(cs), WithStartingStockpile(models.Amount(models.Iron, 250)))
	p := g.RegisterPlayer()

	g.HandleAction(Sell(p, models.SellIron))
	g.HandleAction(Sell(p, models.SellIron))
	g.HandleAction(Sell(p, models.SellIron))

	v, _ := g.Player(p)
	// 5 then floor(5*e^-0.01)=4; the third sale is short on iron
	assert.Equal(t, uint64(9), v.Money)
	assert.Equal(t, uint32(50), v.Stockpile.Get(models.Iron))
	assert.Equal(t, uint64(3), g.Trade(models.SellIron).Receive)
}

func TestStep_AdvancesTickAndAllPlayers(t *testing.T) {
	g := New()
	a := g.RegisterPlayer()
	b := g.RegisterPlayer()
	g.HandleAction(DeallocateWorker(b, models.Iron))
	g.HandleAction(DeallocateWorker(b, models.Iron))
	g.HandleAction(AllocateWorker(b, models.Copper))

	for range 4 {
		g.Step()
	}

	assert.Equal(t, uint64(4), g.Tick())
	va, _ := g.Player(a)
	vb, _ := g.Player(b)
	assert.Equal(t, uint32(12), va.Stockpile.Get(models.Iron))
	assert.Equal(t, uint32(4), vb.Stockpile.Get(models.Iron))
	assert.Equal(t, uint32(4), vb.Stockpile.Get(models.Copper))
	assertConservation(t, g)
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "AllocateWorker(0, Copper)", AllocateWorker(0, models.Copper).String())
	assert.Equal(t, "TogglePause", TogglePause().String())
	assert.Equal(t, "Produce(1, WorkerStone)", Produce(1, models.WorkerStone).String())
	assert.Equal(t, "Sell(2, Iron)", Sell(2, models.SellIron).String())
}

func BenchmarkStep(b *testing.B) {
	g := New()
	for range 8 {
		g.RegisterPlayer()
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g.Step()
	}
}
