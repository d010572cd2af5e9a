package models

import (
	"fmt"
	"strings"
)

// ProductionItem is a buildable item in the production catalog
type ProductionItem uint8

const (
	WorkerIron ProductionItem = iota
	WorkerStone

	productionItemCount = int(WorkerStone) + 1
)

// AllProductionItems returns all production items in ordinal order
func AllProductionItems() []ProductionItem {
	return []ProductionItem{WorkerIron, WorkerStone}
}

func (p ProductionItem) String() string {
	switch p {
	case WorkerIron:
		return "WorkerIron"
	case WorkerStone:
		return "WorkerStone"
	default:
		return fmt.Sprintf("ProductionItem(%d)", uint8(p))
	}
}

// Valid reports whether p is one of the declared items
func (p ProductionItem) Valid() bool {
	return int(p) < productionItemCount
}

// ParseProductionItem accepts the item name, case-insensitive, with or
// without the "worker_" separator (e.g. "worker_iron", "WorkerIron").
func ParseProductionItem(name string) (ProductionItem, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "")
	for _, p := range AllProductionItems() {
		if strings.ToLower(p.String()) == key {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown production item %q", name)
}

// Recipe is the static cost and build duration of a production item
type Recipe struct {
	Cost     ResourceAmount
	Duration int // ticks, always > 0
}

// ProductionCatalog maps every production item to its recipe
type ProductionCatalog struct {
	recipes [productionItemCount]Recipe
}

// DefaultProductionCatalog returns the reference recipes: a worker costs
// 100 of the matching resource.
func DefaultProductionCatalog() ProductionCatalog {
	var c ProductionCatalog
	c.recipes[WorkerIron] = Recipe{Cost: Amount(Iron, 100), Duration: 10}
	c.recipes[WorkerStone] = Recipe{Cost: Amount(Stone, 100), Duration: 20}
	return c
}

// Recipe returns the recipe for p
func (c ProductionCatalog) Recipe(p ProductionItem) Recipe {
	return c.recipes[p]
}

// Cost returns the resource cost of p
func (c ProductionCatalog) Cost(p ProductionItem) ResourceAmount {
	return c.recipes[p].Cost
}

// ProductionTime returns the number of ticks p takes to build
func (c ProductionCatalog) ProductionTime(p ProductionItem) int {
	return c.recipes[p].Duration
}

// WithRecipe returns a copy of the catalog with p's recipe replaced.
// Durations below one tick are raised to one.
func (c ProductionCatalog) WithRecipe(p ProductionItem, r Recipe) ProductionCatalog {
	if r.Duration < 1 {
		r.Duration = 1
	}
	c.recipes[p] = r
	return c
}
