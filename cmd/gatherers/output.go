package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/napolitain/gatherers/internal/game"
	"github.com/napolitain/gatherers/internal/market"
	"github.com/napolitain/gatherers/internal/models"
)

// formatAmount renders the non-zero entries, e.g. "100 Iron, 3 Stone"
func formatAmount(a models.ResourceAmount) string {
	var parts []string
	for r, n := range a.All() {
		if n > 0 {
			parts = append(parts, fmt.Sprintf("%d %s", n, r))
		}
	}
	if len(parts) == 0 {
		return "-"
	}
	return strings.Join(parts, ", ")
}

func printPlayers(state *game.GameState) {
	header := []string{"Player", "Money"}
	for _, r := range models.AllResources() {
		header = append(header, r.String())
	}
	header = append(header, "Idle")
	for _, r := range models.AllResources() {
		header = append(header, "→"+r.String())
	}
	header = append(header, "Production")

	table := tablewriter.NewTable(os.Stdout, tablewriter.WithHeader(header))

	for _, v := range state.PlayerViews() {
		row := []string{fmt.Sprintf("%d", v.ID), fmt.Sprintf("%d", v.Money)}
		for _, n := range v.Stockpile.Counts() {
			row = append(row, fmt.Sprintf("%d", n))
		}
		row = append(row, fmt.Sprintf("%d", v.Workers.Idle))
		for _, r := range models.AllResources() {
			row = append(row, fmt.Sprintf("%d", v.Workers.GatheringOf(r)))
		}

		production := "-"
		if v.Production != nil {
			production = fmt.Sprintf("%s (%d left", v.Production.Item, v.Production.Remaining)
			if v.Queued > 1 {
				production += fmt.Sprintf(", +%d queued", v.Queued-1)
			}
			production += ")"
		}
		row = append(row, production)

		_ = table.Append(row)
	}
	_ = table.Render()
}

func printMarket(quotes []market.TradeQuote) {
	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"Item", "Give", "Price"}),
	)
	for _, q := range quotes {
		_ = table.Append([]string{q.Item.String(), formatAmount(q.Trade.Give), fmt.Sprintf("%d", q.Trade.Receive)})
	}
	_ = table.Render()
}

func printProductionCatalog(c models.ProductionCatalog) {
	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"Item", "Cost", "Ticks"}),
	)
	for _, item := range models.AllProductionItems() {
		recipe := c.Recipe(item)
		_ = table.Append([]string{item.String(), formatAmount(recipe.Cost), fmt.Sprintf("%d", recipe.Duration)})
	}
	_ = table.Render()
}

func sellQuotes(c models.SellCatalog) []market.TradeQuote {
	quotes := make([]market.TradeQuote, 0, models.SellItemCount)
	for _, item := range models.AllSellItems() {
		quotes = append(quotes, market.TradeQuote{Item: item, Trade: c.Trade(item)})
	}
	return quotes
}
