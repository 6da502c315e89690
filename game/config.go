package game

import (
	"fmt"
	"os"

	"github.com/SoyUnGlitch/utuado-game/engine/util"
	"github.com/SoyUnGlitch/utuado-game/engine/voxel"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type WorldConfig struct {
	ChunkSize int32   `yaml:"chunk_size"`
	Width     int32   `yaml:"width"`
	Height    int32   `yaml:"height"`
	Depth     int32   `yaml:"depth"`
	BlockSize float32 `yaml:"block_size"`
}

type ResourceConfig struct {
	Starting  Amounts `yaml:"starting"`
	Limits    Amounts `yaml:"limits"`
	BaseRates Amounts `yaml:"base_rates"`
}

type LogConfig struct {
	Level      string   `yaml:"level"`
	Categories []string `yaml:"categories"`
}

type Config struct {
	World     WorldConfig          `yaml:"world"`
	Terrain   voxel.TerrainOptions `yaml:"terrain"`
	Resources ResourceConfig       `yaml:"resources"`
	Log       LogConfig            `yaml:"log"`
	// Catalog is an optional path to a building catalog replacing the
	// built-in one.
	Catalog string `yaml:"catalog"`
}

func DefaultConfig() Config {
	return Config{
		World: WorldConfig{
			ChunkSize: 16,
			Width:     32,
			Height:    16,
			Depth:     32,
			BlockSize: 1,
		},
		Terrain: voxel.DefaultTerrainOptions(),
		Resources: ResourceConfig{
			Starting:  Amounts{Energy: 100, Water: 100, Food: 100, Materials: 100, Knowledge: 50},
			Limits:    Amounts{Energy: 200, Water: 200, Food: 200, Materials: 200, Knowledge: 200},
			BaseRates: Amounts{Energy: -5, Water: -5, Food: -5, Materials: -2, Knowledge: 1},
		},
		Log: LogConfig{
			Level:      "info",
			Categories: []string{"all"},
		},
	}
}

// LoadConfig reads a YAML file over DefaultConfig. Keys missing from the file
// keep their default.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()
	raw, err := os.ReadFile(path)
	if err != nil {
		return config, errors.Wrapf(err, "reading config %s", path)
	}
	if err := yaml.Unmarshal(raw, &config); err != nil {
		return config, errors.Wrapf(err, "parsing config %s", path)
	}
	if err := config.Validate(); err != nil {
		return config, errors.Wrapf(err, "config %s", path)
	}
	return config, nil
}

func (c Config) Validate() error {
	w := c.World
	if w.Width <= 0 || w.Height <= 0 || w.Depth <= 0 {
		return errors.Errorf("world size must be positive, got %dx%dx%d", w.Width, w.Height, w.Depth)
	}
	if w.ChunkSize <= 0 {
		return errors.Errorf("chunk_size must be positive, got %d", w.ChunkSize)
	}
	if w.BlockSize <= 0 {
		return errors.Errorf("block_size must be positive, got %f", w.BlockSize)
	}
	for _, amounts := range []Amounts{c.Resources.Starting, c.Resources.Limits, c.Resources.BaseRates} {
		for resource := range amounts {
			if !resource.IsValid() {
				return errors.Errorf("unknown resource %q", resource)
			}
		}
	}
	for resource, limit := range c.Resources.Limits {
		if limit < 0 {
			return errors.Errorf("limit for %s must not be negative", resource)
		}
	}
	if _, ok := util.ParseLogLevel(c.Log.Level); !ok {
		return errors.Errorf("unknown log level %q", c.Log.Level)
	}
	if _, unknown := util.ParseLogCategories(c.Log.Categories); len(unknown) > 0 {
		return errors.Errorf("unknown log categories %v", unknown)
	}
	return nil
}

// ApplyLogging sets the global log level and categories.
func (c Config) ApplyLogging() {
	level, _ := util.ParseLogLevel(c.Log.Level)
	util.SetLogLevel(level)
	if len(c.Log.Categories) > 0 {
		categories, _ := util.ParseLogCategories(c.Log.Categories)
		util.SetLogCategories(categories)
	}
}

func (c Config) WorldOptions(scene voxel.Scene) voxel.Options {
	return voxel.Options{
		ChunkSize: c.World.ChunkSize,
		Width:     c.World.Width,
		Height:    c.World.Height,
		Depth:     c.World.Depth,
		BlockSize: c.World.BlockSize,
		Scene:     scene,
		Terrain:   c.Terrain,
	}
}

func (c Config) LoadCatalog() (*Catalog, error) {
	if c.Catalog == "" {
		return DefaultCatalog(), nil
	}
	return LoadCatalog(c.Catalog)
}

// NewSessionFromConfig builds the world, catalog, ledger and state described
// by the config. The world is empty until terrain is generated.
func NewSessionFromConfig(c Config, scene voxel.Scene) (*Session, error) {
	world, err := voxel.NewWorld(c.WorldOptions(scene))
	if err != nil {
		return nil, errors.Wrap(err, "creating world")
	}
	catalog, err := c.LoadCatalog()
	if err != nil {
		return nil, err
	}
	util.LogGameDebug(fmt.Sprintf("[Config] World %dx%dx%d, chunk size %d", c.World.Width, c.World.Height, c.World.Depth, c.World.ChunkSize))
	return NewSession(world, catalog, NewLedger(c.Resources), NewState()), nil
}
