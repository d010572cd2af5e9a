package config

import (
	"time"

	"github.com/spf13/viper"

	"github.com/napolitain/gatherers/internal/market"
)

// registerDefaults sets default values for all configuration keys
func registerDefaults(v *viper.Viper) {
	// Driver defaults: 20ms frames, one tick every 10 frames
	v.SetDefault("driver.frame_interval", 20*time.Millisecond)
	v.SetDefault("driver.frames_per_tick", 10)
	v.SetDefault("driver.max_ticks", 0)

	// Market defaults
	v.SetDefault("market.seed", 1)
	v.SetDefault("market.drift_mean", market.DefaultDriftMean)
	v.SetDefault("market.drift_stddev", market.DefaultDriftStdDev)

	// Production defaults
	v.SetDefault("production.new_worker_action", "idle")

	// Player defaults
	v.SetDefault("players.count", 2)
	v.SetDefault("players.roster_size", 3)
	v.SetDefault("players.roster_action", "iron")

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")
	v.SetDefault("logging.output", "stderr")
}
