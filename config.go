package deque

import (
	"fmt"

	"github.com/npillmayer/schuko"
)

const (
	// DefaultBlockCapacity is the block capacity B used if none is configured.
	DefaultBlockCapacity = 1024
	// MinBlockCapacity is the smallest block capacity accepted.
	MinBlockCapacity = 2
)

// ConfigKeyBlockCapacity is the configuration key read by ConfigFrom.
const ConfigKeyBlockCapacity = "deque.blockcapacity"

// Config configures a deque.
type Config struct {
	// BlockCapacity is B, the target number of nodes per block.
	// Blocks split at 2B nodes and merge at B/2 nodes.
	// Zero selects DefaultBlockCapacity.
	BlockCapacity int
}

// ConfigFrom creates a configuration from an application configuration.
// Unset keys keep their defaults.
func ConfigFrom(conf schuko.Configuration) Config {
	var cfg Config
	if conf != nil && conf.IsSet(ConfigKeyBlockCapacity) {
		cfg.BlockCapacity = conf.GetInt(ConfigKeyBlockCapacity)
		tracer().Infof("deque: configured block capacity %d", cfg.BlockCapacity)
	}
	return cfg.normalized()
}

func (cfg Config) normalized() Config {
	if cfg.BlockCapacity == 0 {
		cfg.BlockCapacity = DefaultBlockCapacity
	}
	return cfg
}

func (cfg Config) validate() error {
	cfg = cfg.normalized()
	if cfg.BlockCapacity < MinBlockCapacity {
		return fmt.Errorf("%w: block capacity %d is below minimum %d",
			ErrIllegalArguments, cfg.BlockCapacity, MinBlockCapacity)
	}
	return nil
}

// splitAt is the block size which triggers a split.
func (cfg Config) splitAt() int {
	return 2 * cfg.BlockCapacity
}

// mergeAt is the block size at or below which a block is merged.
func (cfg Config) mergeAt() int {
	return cfg.BlockCapacity / 2
}
