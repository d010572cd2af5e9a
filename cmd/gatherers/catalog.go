package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func newCatalogCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "catalog",
		Short: "Show the production and sell catalogs",
		Args:  cobra.NoArgs,
		Run:   runCatalog,
	}
}

func runCatalog(cmd *cobra.Command, args []string) {
	cfg, _ := setup()
	infoColor := color.New(color.FgYellow)

	printTitle("Catalog")

	production, err := cfg.ProductionCatalog()
	if err != nil {
		color.Red("Invalid config: %v", err)
		os.Exit(1)
	}
	sell, err := cfg.SellCatalog()
	if err != nil {
		color.Red("Invalid config: %v", err)
		os.Exit(1)
	}

	infoColor.Println("🏗️  Production:")
	printProductionCatalog(production)
	fmt.Printf("   New workers start as: %s\n\n", cfg.Production.NewWorkerAction)

	infoColor.Println("💰 Sell:")
	table := tablewriter.NewTable(os.Stdout,
		tablewriter.WithHeader([]string{"Item", "Give", "Receive"}),
	)
	for _, q := range sellQuotes(sell) {
		_ = table.Append([]string{q.Item.String(), formatAmount(q.Trade.Give), fmt.Sprintf("%d", q.Trade.Receive)})
	}
	_ = table.Render()
}
