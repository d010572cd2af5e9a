package scenario

// DemoTicks is the length of the built-in demo run
const DemoTicks = 300

// Demo returns the built-in run: two players, player 1 moves its roster
// to one worker per resource, both sell periodically and player 0 saves
// up for a new worker.
func Demo() *Scenario {
	cmds := []Command{
		{At: 0, Action: ActionDeallocate, Player: 1, Resource: "iron"},
		{At: 0, Action: ActionDeallocate, Player: 1, Resource: "iron"},
		{At: 0, Action: ActionAllocate, Player: 1, Resource: "copper"},
		{At: 0, Action: ActionAllocate, Player: 1, Resource: "stone"},
		{At: 40, Action: ActionProduce, Player: 0, Item: "worker_iron"},
		{At: 51, Action: ActionAllocate, Player: 0, Resource: "stone"},
	}
	for at := uint64(100); at < DemoTicks; at += 100 {
		cmds = append(cmds,
			Command{At: at, Action: ActionSell, Player: 0, Item: "iron"},
			Command{At: at, Action: ActionSell, Player: 1, Item: "copper"},
		)
	}

	return &Scenario{
		Name:     "demo",
		Players:  2,
		Ticks:    DemoTicks,
		Commands: cmds,
	}
}
