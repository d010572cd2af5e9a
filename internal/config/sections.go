package config

import "time"

// DriverConfig paces the frame loop around the simulation core
type DriverConfig struct {
	// Wall-clock time between frames; zero runs frames back to back
	FrameInterval time.Duration `mapstructure:"frame_interval" validate:"min=0"`

	// Number of unpaused frames per simulation tick
	FramesPerTick int `mapstructure:"frames_per_tick" validate:"min=1"`

	// Stop after this many ticks; zero means run until cancelled
	MaxTicks int `mapstructure:"max_ticks" validate:"min=0"`
}

// MarketConfig holds the consumer sector settings
type MarketConfig struct {
	// Seed for the drift random source
	Seed int64 `mapstructure:"seed"`

	// Mean of the per-trade log-return
	DriftMean float64 `mapstructure:"drift_mean"`

	// Standard deviation of the per-trade log-return
	DriftStdDev float64 `mapstructure:"drift_stddev" validate:"min=0"`

	// Overrides of the starting sell catalog
	Items []SellItemConfig `mapstructure:"items" validate:"dive"`
}

// SellItemConfig overrides one posted trade
type SellItemConfig struct {
	Item  string            `mapstructure:"item" validate:"required,oneof=iron stone copper"`
	Give  map[string]uint32 `mapstructure:"give" validate:"required,min=1"`
	Price uint64            `mapstructure:"price"`
}

// ProductionConfig holds production catalog settings
type ProductionConfig struct {
	// Action of workers created by production: idle or a resource name
	NewWorkerAction string `mapstructure:"new_worker_action" validate:"required,oneof=idle iron copper stone"`

	// Overrides of the production catalog
	Items []RecipeConfig `mapstructure:"items" validate:"dive"`
}

// RecipeConfig overrides one production recipe
type RecipeConfig struct {
	Item     string            `mapstructure:"item" validate:"required,oneof=worker_iron worker_stone"`
	Cost     map[string]uint32 `mapstructure:"cost"`
	Duration int               `mapstructure:"duration" validate:"min=1"`
}

// PlayersConfig describes how players start
type PlayersConfig struct {
	// Players registered at startup when no scenario says otherwise
	Count int `mapstructure:"count" validate:"min=1"`

	// Starting roster size and action
	RosterSize   int    `mapstructure:"roster_size" validate:"min=0"`
	RosterAction string `mapstructure:"roster_action" validate:"required,oneof=idle iron copper stone"`

	// Starting resources per player
	Stockpile map[string]uint32 `mapstructure:"stockpile"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	// Log level: debug, info, warn, error
	Level string `mapstructure:"level" validate:"required,oneof=debug info warn error"`

	// Log format: json, text
	Format string `mapstructure:"format" validate:"required,oneof=json text"`

	// Output destination: stdout, stderr
	Output string `mapstructure:"output" validate:"required,oneof=stdout stderr"`
}
