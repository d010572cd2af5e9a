package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/napolitain/gatherers/internal/driver"
	"github.com/napolitain/gatherers/internal/game"
	"github.com/napolitain/gatherers/internal/scenario"
)

var (
	runTicks    int
	runSeed     int64
	runRealtime bool
	runProgress int
)

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [scenario]",
		Short: "Run a scenario file, or the built-in demo",
		Args:  cobra.MaximumNArgs(1),
		Run:   runScenario,
	}

	cmd.Flags().IntVarP(&runTicks, "ticks", "t", 0, "Stop after this many ticks (overrides scenario and config)")
	cmd.Flags().Int64VarP(&runSeed, "seed", "s", 0, "Market random seed (overrides config)")
	cmd.Flags().BoolVarP(&runRealtime, "realtime", "r", false, "Pace frames at the configured frame interval")
	cmd.Flags().IntVarP(&runProgress, "progress", "p", 0, "Print a progress line every N ticks")

	return cmd
}

func runScenario(cmd *cobra.Command, args []string) {
	cfg, logger := setup()
	successColor := color.New(color.FgGreen, color.Bold)
	infoColor := color.New(color.FgYellow)

	printTitle("Scenario Runner")

	sc := scenario.Demo()
	if len(args) == 1 {
		loaded, err := scenario.Load(args[0])
		if err != nil {
			color.Red("Error loading scenario: %v", err)
			os.Exit(1)
		}
		sc = loaded
	}

	if cmd.Flags().Changed("seed") {
		cfg.Market.Seed = runSeed
	}
	driverCfg := cfg.Driver
	if sc.Ticks > 0 {
		driverCfg.MaxTicks = sc.Ticks
	}
	if runTicks > 0 {
		driverCfg.MaxTicks = runTicks
	}
	if !runRealtime {
		driverCfg.FrameInterval = 0
	}
	if driverCfg.MaxTicks == 0 && !runRealtime {
		color.Red("Refusing an unpaced run without a tick limit: pass --ticks or --realtime")
		os.Exit(1)
	}

	opts, err := cfg.ToGameOptions()
	if err != nil {
		color.Red("Invalid config: %v", err)
		os.Exit(1)
	}
	state := game.New(append(opts, game.WithLogger(logger))...)

	players := max(sc.Players, cfg.Players.Count)
	for range players {
		state.RegisterPlayer()
	}

	if !quiet {
		infoColor.Printf("📜 Scenario %q: %d players, %d commands, %d ticks\n",
			sc.Name, players, len(sc.Commands), driverCfg.MaxTicks)
		infoColor.Printf("🎲 Market seed %d\n\n", cfg.Market.Seed)
	}

	var observe driver.Observer
	if runProgress > 0 && !quiet {
		observe = func(g *game.GameState) {
			if g.Tick()%uint64(runProgress) == 0 {
				printProgress(g)
			}
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	d := driver.New(state, sc.Schedule(), driverCfg,
		driver.WithLogger(logger),
		driver.WithObserver(observe),
	)
	res := d.Run(ctx)

	successColor.Printf("\n✓ Run %s: %s after %d ticks (%d frames, %d commands)\n\n",
		res.RunID, res.Reason, res.Ticks, res.Frames, res.Commands)

	printPlayers(state)
	fmt.Println()
	printMarket(state.Market())
}

func printProgress(g *game.GameState) {
	fmt.Printf("   tick %5d", g.Tick())
	for _, v := range g.PlayerViews() {
		fmt.Printf("  | P%d money=%d %s", v.ID, v.Money, formatAmount(v.Stockpile))
	}
	fmt.Println()
}
