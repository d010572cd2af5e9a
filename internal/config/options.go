package config

import (
	"fmt"

	"github.com/napolitain/gatherers/internal/game"
	"github.com/napolitain/gatherers/internal/market"
	"github.com/napolitain/gatherers/internal/models"
)

// parseAmount converts a name-keyed resource map into a ResourceAmount.
// Viper lower-cases keys, so names are matched case-insensitively.
func parseAmount(m map[string]uint32) (models.ResourceAmount, error) {
	byResource := make(map[models.Resource]uint32, len(m))
	for name, n := range m {
		r, err := models.ParseResource(name)
		if err != nil {
			return models.ResourceAmount{}, err
		}
		byResource[r] += n
	}
	return models.NewResourceAmount(byResource), nil
}

// SellCatalog builds the starting sell catalog with configured overrides applied
func (c *Config) SellCatalog() (models.SellCatalog, error) {
	catalog := models.DefaultSellCatalog()
	for i, it := range c.Market.Items {
		item, err := models.ParseSellItem(it.Item)
		if err != nil {
			return catalog, fmt.Errorf("market.items[%d]: %w", i, err)
		}
		give, err := parseAmount(it.Give)
		if err != nil {
			return catalog, fmt.Errorf("market.items[%d].give: %w", i, err)
		}
		catalog = catalog.WithTrade(item, models.Trade{Give: give, Receive: it.Price})
	}
	return catalog, nil
}

// ProductionCatalog builds the production catalog with configured overrides applied
func (c *Config) ProductionCatalog() (models.ProductionCatalog, error) {
	catalog := models.DefaultProductionCatalog()
	for i, it := range c.Production.Items {
		item, err := models.ParseProductionItem(it.Item)
		if err != nil {
			return catalog, fmt.Errorf("production.items[%d]: %w", i, err)
		}
		cost, err := parseAmount(it.Cost)
		if err != nil {
			return catalog, fmt.Errorf("production.items[%d].cost: %w", i, err)
		}
		catalog = catalog.WithRecipe(item, models.Recipe{Cost: cost, Duration: it.Duration})
	}
	return catalog, nil
}

// NewMarket builds a seeded consumer sector from the market section
func (c *Config) NewMarket() (*market.ConsumerSector, error) {
	catalog, err := c.SellCatalog()
	if err != nil {
		return nil, err
	}
	drift := market.DriftParams{Mean: c.Market.DriftMean, StdDev: c.Market.DriftStdDev}
	return market.NewSeeded(catalog, c.Market.Seed, drift), nil
}

// ToGameOptions translates the configuration into game construction options
func (c *Config) ToGameOptions() ([]game.Option, error) {
	cs, err := c.NewMarket()
	if err != nil {
		return nil, err
	}
	production, err := c.ProductionCatalog()
	if err != nil {
		return nil, err
	}
	rosterAction, err := models.ParseWorkerAction(c.Players.RosterAction)
	if err != nil {
		return nil, fmt.Errorf("players.roster_action: %w", err)
	}
	newWorker, err := models.ParseWorkerAction(c.Production.NewWorkerAction)
	if err != nil {
		return nil, fmt.Errorf("production.new_worker_action: %w", err)
	}
	stockpile, err := parseAmount(c.Players.Stockpile)
	if err != nil {
		return nil, fmt.Errorf("players.stockpile: %w", err)
	}

	return []game.Option{
		game.WithMarket(cs),
		game.WithProductionCatalog(production),
		game.WithStartingRoster(c.Players.RosterSize, rosterAction),
		game.WithStartingStockpile(stockpile),
		game.WithNewWorkerAction(newWorker),
	}, nil
}
