// Package scenario loads scripted runs: how many players to register and
// which commands to submit at which tick.
package scenario

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/napolitain/gatherers/internal/config"
	"github.com/napolitain/gatherers/internal/game"
	"github.com/napolitain/gatherers/internal/models"
)

// Format is the encoding of a scenario file
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath picks the format from the file extension, defaulting to YAML
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}
	return FormatYAML
}

// Action names accepted in scenario files
const (
	ActionAllocate   = "allocate"
	ActionDeallocate = "deallocate"
	ActionPause      = "pause"
	ActionProduce    = "produce"
	ActionSell       = "sell"
)

// Command is one scripted input submitted at tick At
type Command struct {
	At       uint64 `yaml:"at" json:"at"`
	Action   string `yaml:"action" json:"action" validate:"required,oneof=allocate deallocate pause produce sell"`
	Player   int    `yaml:"player" json:"player" validate:"min=0"`
	Resource string `yaml:"resource,omitempty" json:"resource,omitempty"`
	Item     string `yaml:"item,omitempty" json:"item,omitempty"`
}

// Scenario is a scripted run
type Scenario struct {
	Name     string    `yaml:"name,omitempty" json:"name,omitempty"`
	Players  int       `yaml:"players" json:"players" validate:"min=1"`
	Ticks    int       `yaml:"ticks" json:"ticks" validate:"min=0"`
	Commands []Command `yaml:"commands" json:"commands" validate:"dive"`
}

// ValidationError reports the first invalid field of a scenario
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NewValidationError creates a ValidationError
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}

// Load reads and validates a scenario file
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}
	sc, err := Parse(data, FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	if sc.Name == "" {
		sc.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}
	return sc, nil
}

// Parse decodes and validates a scenario
func Parse(data []byte, format Format) (*Scenario, error) {
	var sc Scenario
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &sc); err != nil {
			return nil, fmt.Errorf("failed to decode yaml: %w", err)
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &sc); err != nil {
			return nil, fmt.Errorf("failed to decode json: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported scenario format %q", format)
	}

	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// Validate checks tags first, then that every command names a registered
// player and operands its action understands.
func (sc *Scenario) Validate() error {
	if err := config.NewValidator().Validate(sc); err != nil {
		return NewValidationError("scenario", err.Error())
	}
	for i, c := range sc.Commands {
		if c.Player >= sc.Players {
			return NewValidationError(fmt.Sprintf("commands[%d].player", i),
				fmt.Sprintf("player %d is not among the %d registered players", c.Player, sc.Players))
		}
		if _, err := c.GameAction(); err != nil {
			return NewValidationError(fmt.Sprintf("commands[%d]", i), err.Error())
		}
	}
	return nil
}

// Schedule returns a fresh schedule of the scenario's commands
func (sc *Scenario) Schedule() *Schedule {
	return NewSchedule(sc.Commands...)
}

// GameAction converts the command into a game action
func (c Command) GameAction() (game.GameAction, error) {
	player := game.PlayerID(c.Player)

	switch strings.ToLower(c.Action) {
	case ActionAllocate, ActionDeallocate:
		r, err := models.ParseResource(c.Resource)
		if err != nil {
			return game.GameAction{}, err
		}
		if strings.EqualFold(c.Action, ActionAllocate) {
			return game.AllocateWorker(player, r), nil
		}
		return game.DeallocateWorker(player, r), nil
	case ActionPause:
		return game.TogglePause(), nil
	case ActionProduce:
		item, err := models.ParseProductionItem(c.Item)
		if err != nil {
			return game.GameAction{}, err
		}
		return game.Produce(player, item), nil
	case ActionSell:
		item, err := models.ParseSellItem(c.Item)
		if err != nil {
			return game.GameAction{}, err
		}
		return game.Sell(player, item), nil
	}
	return game.GameAction{}, fmt.Errorf("unknown action %q", c.Action)
}
