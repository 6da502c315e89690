package game

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/SoyUnGlitch/utuado-game/engine/util"
)

func writeConfig(t *testing.T, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "utuado.yaml")
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config: %v", err)
	}
}

func TestLoadConfigOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, `
world:
  width: 8
resources:
  starting:
    energy: 10
terrain:
  peak_height: 4
log:
  level: debug
  categories: [voxel, io]
`)
	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if config.World.Width != 8 || config.World.Depth != 32 || config.World.ChunkSize != 16 {
		t.Errorf("world = %+v", config.World)
	}
	if config.Resources.Starting[Energy] != 10 || config.Resources.Starting[Water] != 100 {
		t.Errorf("starting = %s", config.Resources.Starting)
	}
	if config.Terrain.PeakHeight != 4 || config.Terrain.BaseHeight != 3 {
		t.Errorf("terrain = %+v", config.Terrain)
	}
	if len(config.Log.Categories) != 2 {
		t.Errorf("categories = %v", config.Log.Categories)
	}
}

func TestLoadConfigKeepsZeroTerrain(t *testing.T) {
	path := writeConfig(t, `
terrain:
  peak_height: 0
  ripple_amplitude: 0
`)
	config, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	session, err := NewSessionFromConfig(config, nil)
	if err != nil {
		t.Fatal(err)
	}
	if got := session.World().HeightAt(16, 16); got != 3 {
		t.Errorf("HeightAt(16,16) = %d, want the base height 3 with no mountain", got)
	}
}

func TestLoadConfigRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"chunk size":   "world: {chunk_size: 0}\n",
		"negative":     "world: {height: -4}\n",
		"block size":   "world: {block_size: -1}\n",
		"resource":     "resources: {starting: {gold: 5}}\n",
		"limit":        "resources: {limits: {energy: -1}}\n",
		"log level":    "log: {level: loud}\n",
		"log category": "log: {categories: [network]}\n",
		"syntax":       "world: [\n",
	}
	for name, data := range cases {
		if _, err := LoadConfig(writeConfig(t, data)); err == nil {
			t.Errorf("%s: expected an error", name)
		}
	}
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestApplyLogging(t *testing.T) {
	level, categories := util.GLOBAL_LOG_LEVEL, util.GLOBAL_LOG_CATEGORIES
	defer func() {
		util.SetLogLevel(level)
		util.SetLogCategories(categories)
	}()

	config := DefaultConfig()
	config.Log = LogConfig{Level: "error", Categories: []string{"game"}}
	config.ApplyLogging()
	if util.GLOBAL_LOG_LEVEL != util.LogLevelError || util.GLOBAL_LOG_CATEGORIES != util.LogGame {
		t.Error("logging settings not applied")
	}
}

func TestNewSessionFromConfig(t *testing.T) {
	config := testConfig()
	session, err := NewSessionFromConfig(config, nil)
	if err != nil {
		t.Fatal(err)
	}
	world := session.World()
	if world.Width() != 16 || world.Height() != 8 || world.ChunkSize() != 8 {
		t.Errorf("world is %dx%dx%d chunk %d", world.Width(), world.Height(), world.Depth(), world.ChunkSize())
	}
	if session.Ledger().Amount(Knowledge) != 50 {
		t.Errorf("knowledge = %g", session.Ledger().Amount(Knowledge))
	}

	config.Catalog = filepath.Join(t.TempDir(), "missing.yaml")
	if _, err := NewSessionFromConfig(config, nil); err == nil {
		t.Error("expected an error for a missing catalog")
	}
}
