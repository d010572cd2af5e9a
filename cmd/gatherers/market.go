package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/napolitain/gatherers/internal/models"
)

var (
	marketTrades int
	marketItem   string
	marketSeed   int64
)

func newMarketCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "market",
		Short: "Show posted prices and simulate successive sales of one item",
		Args:  cobra.NoArgs,
		Run:   runMarket,
	}

	cmd.Flags().IntVarP(&marketTrades, "trades", "n", 20, "Number of successive sales to simulate")
	cmd.Flags().StringVarP(&marketItem, "item", "i", "iron", "Sell item to trade (iron, stone, copper)")
	cmd.Flags().Int64VarP(&marketSeed, "seed", "s", 0, "Market random seed (overrides config)")

	return cmd
}

func runMarket(cmd *cobra.Command, args []string) {
	cfg, _ := setup()
	infoColor := color.New(color.FgYellow)

	printTitle("Consumer Sector")

	item, err := models.ParseSellItem(marketItem)
	if err != nil {
		color.Red("Error: %v", err)
		os.Exit(1)
	}
	if cmd.Flags().Changed("seed") {
		cfg.Market.Seed = marketSeed
	}

	cs, err := cfg.NewMarket()
	if err != nil {
		color.Red("Invalid config: %v", err)
		os.Exit(1)
	}

	infoColor.Println("📊 Posted prices:")
	printMarket(cs.Prices())

	if marketTrades <= 0 {
		return
	}

	// A stockpile that covers every simulated sale
	give := cs.GetTrade(item).Give
	var stockpile models.ResourceAmount
	for r, n := range give.All() {
		stockpile.Add(r, n*uint32(marketTrades))
	}

	infoColor.Printf("\n📈 %d sales of %s (seed %d, drift N(%.3f, %.3f)):\n",
		marketTrades, item, cfg.Market.Seed, cfg.Market.DriftMean, cfg.Market.DriftStdDev)

	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"#", "Paid", "Next Price", "Total"}),
	)

	var total uint64
	for i := range marketTrades {
		paid, ok := cs.Trade(&stockpile, item)
		if !ok {
			break
		}
		total += paid
		row := []string{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d", paid),
			fmt.Sprintf("%d", cs.GetTrade(item).Receive),
			fmt.Sprintf("%d", total),
		}
		_ = table.Append(row)
	}
	_ = table.Render()
}
