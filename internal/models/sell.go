package models

import (
	"fmt"
	"strings"
)

// SellItem is a resource bundle the consumer sector buys
type SellItem uint8

const (
	SellIron SellItem = iota
	SellStone
	SellCopper

	// SellItemCount is the number of sell items
	SellItemCount = int(SellCopper) + 1
)

// AllSellItems returns all sell items in ordinal order
func AllSellItems() []SellItem {
	return []SellItem{SellIron, SellStone, SellCopper}
}

func (s SellItem) String() string {
	switch s {
	case SellIron:
		return "Iron"
	case SellStone:
		return "Stone"
	case SellCopper:
		return "Copper"
	default:
		return fmt.Sprintf("SellItem(%d)", uint8(s))
	}
}

// Valid reports whether s is one of the declared items
func (s SellItem) Valid() bool {
	return int(s) < SellItemCount
}

// ParseSellItem converts a case-insensitive name into a SellItem
func ParseSellItem(name string) (SellItem, error) {
	for _, s := range AllSellItems() {
		if strings.EqualFold(s.String(), strings.TrimSpace(name)) {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown sell item %q", name)
}

// Trade is a posted price: give resources, receive money
type Trade struct {
	Give    ResourceAmount
	Receive uint64
}

// SellCatalog holds the starting trade for every sell item
type SellCatalog struct {
	trades [SellItemCount]Trade
}

// DefaultSellCatalog returns the reference starting prices
func DefaultSellCatalog() SellCatalog {
	var c SellCatalog
	c.trades[SellIron] = Trade{Give: Amount(Iron, 100), Receive: 5}
	c.trades[SellStone] = Trade{Give: Amount(Stone, 100), Receive: 3}
	c.trades[SellCopper] = Trade{Give: Amount(Copper, 100), Receive: 5}
	return c
}

// Trade returns the starting trade for s
func (c SellCatalog) Trade(s SellItem) Trade {
	return c.trades[s]
}

// WithTrade returns a copy of the catalog with s's starting trade replaced
func (c SellCatalog) WithTrade(s SellItem, t Trade) SellCatalog {
	c.trades[s] = t
	return c
}
