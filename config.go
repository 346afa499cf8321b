package slider

import (
	"fmt"

	"github.com/npillmayer/schuko"
)

// Configuration keys read by ConfigFrom.
const (
	KeyStrategy   = "slider.strategy"   // magic | extract | rays
	KeyVerify     = "slider.verify"     // run Table.Verify after building
	KeyCollisions = "slider.collisions" // build with WithCollisionCheck
)

// Config controls how the process-wide tables are built.
type Config struct {
	Strategy   Strategy
	Verify     bool
	Collisions bool
}

// DefaultConfig returns the configuration the package is initialized with.
func DefaultConfig() Config {
	return Config{Strategy: DefaultStrategy}
}

// ConfigFrom reads a Config from an application configuration. Unset keys
// keep their defaults.
func ConfigFrom(conf schuko.Configuration) (Config, error) {
	cfg := DefaultConfig()
	if conf.IsSet(KeyStrategy) {
		s, err := ParseStrategy(conf.GetString(KeyStrategy))
		if err != nil {
			return cfg, fmt.Errorf("config %s: %w", KeyStrategy, err)
		}
		cfg.Strategy = s
	}
	cfg.Verify = conf.GetBool(KeyVerify)
	cfg.Collisions = conf.GetBool(KeyCollisions)
	return cfg, nil
}

// NewTable builds and initializes a table for pt according to cfg.
func (cfg Config) NewTable(pt PieceType, opts ...Option) (*Table, error) {
	if cfg.Collisions {
		opts = append(opts, WithCollisionCheck())
	}
	t := NewTable(pt, cfg.Strategy, opts...)
	if err := t.Init(); err != nil {
		return nil, fmt.Errorf("building %s table: %w", pt, err)
	}
	if cfg.Verify {
		if err := t.Verify(); err != nil {
			return nil, err
		}
	}
	return t, nil
}
