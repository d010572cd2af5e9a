// Package market implements the consumer sector: posted prices for every
// sell item and the trade rule that drifts a price after each sale.
package market

import (
	"log/slog"
	"math"
	"math/rand"

	"github.com/napolitain/gatherers/internal/models"
)

// Default drift parameters. Each successful trade multiplies the posted
// price by exp(x) with x drawn from N(DefaultDriftMean, DefaultDriftStdDev).
const (
	DefaultDriftMean   = -0.01
	DefaultDriftStdDev = 0.01
)

// Sampler draws standard normal samples. *rand.Rand satisfies it.
type Sampler interface {
	NormFloat64() float64
}

// DriftParams shapes the log-normal price walk
type DriftParams struct {
	Mean   float64
	StdDev float64
}

// DefaultDriftParams returns the reference drift parameters
func DefaultDriftParams() DriftParams {
	return DriftParams{Mean: DefaultDriftMean, StdDev: DefaultDriftStdDev}
}

// Sample draws one drift exponent from s
func (p DriftParams) Sample(s Sampler) float64 {
	return p.Mean + p.StdDev*s.NormFloat64()
}

// Drift returns floor(price * exp(x)). Results that are not finite or
// fall below zero become zero.
func Drift(price uint64, x float64) uint64 {
	next := math.Floor(float64(price) * math.Exp(x))
	if math.IsNaN(next) || next <= 0 {
		return 0
	}
	if next >= float64(math.MaxUint64) {
		return math.MaxUint64
	}
	return uint64(next)
}

// TradeQuote is one row of the price table
type TradeQuote struct {
	Item  models.SellItem
	Trade models.Trade
}

// ConsumerSector owns exactly one live trade per sell item
type ConsumerSector struct {
	trades  [models.SellItemCount]models.Trade
	sampler Sampler
	drift   DriftParams
}

// New seeds a consumer sector from the catalog. A nil sampler gets a
// fixed-seed *rand.Rand so behavior stays reproducible.
func New(catalog models.SellCatalog, sampler Sampler, drift DriftParams) *ConsumerSector {
	if sampler == nil {
		sampler = rand.New(rand.NewSource(1))
	}
	cs := &ConsumerSector{sampler: sampler, drift: drift}
	for _, item := range models.AllSellItems() {
		cs.trades[item] = catalog.Trade(item)
	}
	return cs
}

// NewSeeded is New with a *rand.Rand seeded from seed
func NewSeeded(catalog models.SellCatalog, seed int64, drift DriftParams) *ConsumerSector {
	return New(catalog, rand.New(rand.NewSource(seed)), drift)
}

// Default returns a consumer sector with the reference catalog and drift
func Default() *ConsumerSector {
	return New(models.DefaultSellCatalog(), nil, DefaultDriftParams())
}

// GetTrade returns the currently posted trade for item
func (cs *ConsumerSector) GetTrade(item models.SellItem) models.Trade {
	return cs.trades[item]
}

// Trade sells item out of stockpile. On success it returns the posted
// price and drifts it for the next seller. When the stockpile cannot cover
// the trade nothing changes and ok is false.
func (cs *ConsumerSector) Trade(stockpile *models.ResourceAmount, item models.SellItem) (uint64, bool) {
	t := &cs.trades[item]
	if !stockpile.Consume(t.Give) {
		return 0, false
	}
	paid := t.Receive
	x := cs.drift.Sample(cs.sampler)
	t.Receive = Drift(paid, x)
	slog.Debug("market trade", "item", item, "paid", paid, "next_price", t.Receive, "x", x)
	return paid, true
}

// Prices returns the full price table in sell item order
func (cs *ConsumerSector) Prices() []TradeQuote {
	quotes := make([]TradeQuote, 0, len(cs.trades))
	for _, item := range models.AllSellItems() {
		quotes = append(quotes, TradeQuote{Item: item, Trade: cs.trades[item]})
	}
	return quotes
}
