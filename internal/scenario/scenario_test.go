package scenario

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/napolitain/gatherers/internal/game"
	"github.com/napolitain/gatherers/internal/models"
)

const demoYAML = `
name: demo
players: 2
ticks: 300
commands:
  - at: 120
    action: sell
    player: 0
    item: iron
  - at: 0
    action: deallocate
    player: 1
    resource: iron
  - at: 0
    action: allocate
    player: 1
    resource: Copper
  - at: 60
    action: pause
  - at: 61
    action: produce
    player: 0
    item: worker_stone
`

func TestParse_YAML(t *testing.T) {
	sc, err := Parse([]byte(demoYAML), FormatYAML)
	require.NoError(t, err)

	assert.Equal(t, "demo", sc.Name)
	assert.Equal(t, 2, sc.Players)
	assert.Equal(t, 300, sc.Ticks)
	require.Len(t, sc.Commands, 5)
	assert.Equal(t, Command{At: 120, Action: "sell", Player: 0, Item: "iron"}, sc.Commands[0])
}

func TestParse_JSON(t *testing.T) {
	data := `{"players": 1, "ticks": 10, "commands": [{"at": 3, "action": "produce", "player": 0, "item": "WorkerIron"}]}`

	sc, err := Parse([]byte(data), FormatJSON)
	require.NoError(t, err)
	require.Len(t, sc.Commands, 1)

	action, err := sc.Commands[0].GameAction()
	require.NoError(t, err)
	assert.Equal(t, game.Produce(0, models.WorkerIron), action)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		data  string
		field string
	}{
		{"no players", "players: 0\n", "scenario"},
		{"unknown action", "players: 1\ncommands:\n  - at: 0\n    action: build\n", "scenario"},
		{"player out of range", "players: 1\ncommands:\n  - at: 0\n    action: sell\n    player: 1\n    item: iron\n", "commands[0].player"},
		{"bad resource", "players: 1\ncommands:\n  - at: 0\n    action: allocate\n    resource: gold\n", "commands[0]"},
		{"bad sell item", "players: 1\ncommands:\n  - at: 0\n    action: pause\n  - at: 1\n    action: sell\n    item: wood\n", "commands[1]"},
		{"bad production item", "players: 1\ncommands:\n  - at: 0\n    action: produce\n    item: castle\n", "commands[0]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data), FormatYAML)
			require.Error(t, err)

			var verr *ValidationError
			require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestParse_Malformed(t *testing.T) {
	_, err := Parse([]byte("players: [1, 2"), FormatYAML)
	assert.Error(t, err)

	_, err = Parse([]byte("{"), FormatJSON)
	assert.Error(t, err)

	_, err = Parse([]byte("players: 1"), Format("toml"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	yamlPath := filepath.Join(dir, "copper-rush.yaml")
	require.NoError(t, os.WriteFile(yamlPath, []byte("players: 1\nticks: 5\n"), 0o644))
	sc, err := Load(yamlPath)
	require.NoError(t, err)
	assert.Equal(t, "copper-rush", sc.Name)
	assert.Equal(t, 5, sc.Ticks)

	jsonPath := filepath.Join(dir, "batch.JSON")
	require.NoError(t, os.WriteFile(jsonPath, []byte(`{"name": "named", "players": 3}`), 0o644))
	sc, err = Load(jsonPath)
	require.NoError(t, err)
	assert.Equal(t, "named", sc.Name)
	assert.Equal(t, 3, sc.Players)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestLoad_ExampleScenarios(t *testing.T) {
	paths, err := filepath.Glob(filepath.Join("..", "..", "examples", "*.yaml"))
	require.NoError(t, err)
	require.NotEmpty(t, paths)

	for _, p := range paths {
		_, err := Load(p)
		assert.NoError(t, err, p)
	}
}

func TestCommandAction(t *testing.T) {
	tests := []struct {
		cmd  Command
		want game.GameAction
	}{
		{Command{Action: "allocate", Player: 1, Resource: "copper"}, game.AllocateWorker(1, models.Copper)},
		{Command{Action: "deallocate", Player: 0, Resource: "IRON"}, game.DeallocateWorker(0, models.Iron)},
		{Command{Action: "pause"}, game.TogglePause()},
		{Command{Action: "produce", Player: 2, Item: "worker_stone"}, game.Produce(2, models.WorkerStone)},
		{Command{Action: "sell", Player: 1, Item: "Stone"}, game.Sell(1, models.SellStone)},
	}

	for _, tt := range tests {
		got, err := tt.cmd.GameAction()
		require.NoError(t, err, tt.cmd.Action)
		assert.Equal(t, tt.want, got, tt.want.String())
	}

	_, err := Command{Action: "teleport"}.GameAction()
	assert.Error(t, err)
}

func TestFormatFromPath(t *testing.T) {
	assert.Equal(t, FormatYAML, FormatFromPath("a.yaml"))
	assert.Equal(t, FormatYAML, FormatFromPath("a.yml"))
	assert.Equal(t, FormatYAML, FormatFromPath("a"))
	assert.Equal(t, FormatJSON, FormatFromPath("a.json"))
}

func TestDemo(t *testing.T) {
	sc := Demo()
	require.NoError(t, sc.Validate())
	assert.Equal(t, DemoTicks, sc.Ticks)

	loaded, err := Load(filepath.Join("..", "..", "examples", "demo.yaml"))
	require.NoError(t, err)
	assert.Equal(t, sc, loaded)
}
