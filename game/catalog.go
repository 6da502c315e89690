package game

import (
	_ "embed"
	"fmt"
	"os"

	"github.com/SoyUnGlitch/utuado-game/engine/util"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

//go:embed buildings.yaml
var defaultCatalogYAML []byte

type Requirements struct {
	Population int     `yaml:"population,omitempty"`
	Knowledge  float64 `yaml:"knowledge,omitempty"`
	NearWater  bool    `yaml:"near_water,omitempty"`
}

type BuildingType struct {
	ID           string       `yaml:"id"`
	Name         string       `yaml:"name"`
	Description  string       `yaml:"description"`
	Category     string       `yaml:"category"`
	Cost         Amounts      `yaml:"cost"`
	Effect       *Effect      `yaml:"effect"`
	Requirements Requirements `yaml:"requirements"`
}

// Catalog is the set of buildings a player can place, in file order.
type Catalog struct {
	types map[string]*BuildingType
	order []string
}

type catalogFile struct {
	Buildings []*BuildingType `yaml:"buildings"`
}

// ParseCatalog reads a YAML catalog and checks every entry.
func ParseCatalog(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrap(err, "parsing building catalog")
	}
	c := &Catalog{types: make(map[string]*BuildingType, len(file.Buildings))}
	for i, building := range file.Buildings {
		if building.ID == "" {
			return nil, errors.Errorf("building #%d has no id", i)
		}
		if _, duplicate := c.types[building.ID]; duplicate {
			return nil, errors.Errorf("building %s is defined twice", building.ID)
		}
		if building.Category == "" {
			return nil, errors.Errorf("building %s has no category", building.ID)
		}
		for resource, amount := range building.Cost {
			if !resource.IsValid() {
				return nil, errors.Errorf("building %s costs unknown resource %q", building.ID, resource)
			}
			if amount < 0 {
				return nil, errors.Errorf("building %s has a negative %s cost", building.ID, resource)
			}
		}
		if building.Effect != nil && !building.Effect.Resource.IsValid() {
			return nil, errors.Errorf("building %s affects unknown resource %q", building.ID, building.Effect.Resource)
		}
		c.types[building.ID] = building
		c.order = append(c.order, building.ID)
	}
	return c, nil
}

func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "reading catalog %s", path)
	}
	catalog, err := ParseCatalog(data)
	if err != nil {
		return nil, errors.Wrapf(err, "catalog %s", path)
	}
	util.LogGameInfo(fmt.Sprintf("[Catalog] Loaded %d buildings from %s", len(catalog.order), path))
	return catalog, nil
}

// DefaultCatalog is the built-in catalog. It panics if the embedded file is
// broken.
func DefaultCatalog() *Catalog {
	catalog, err := ParseCatalog(defaultCatalogYAML)
	if err != nil {
		panic(err)
	}
	return catalog
}

func (c *Catalog) Get(id string) (*BuildingType, bool) {
	building, ok := c.types[id]
	return building, ok
}

func (c *Catalog) IDs() []string {
	result := make([]string, len(c.order))
	copy(result, c.order)
	return result
}

// Categories lists categories in the order they first appear.
func (c *Catalog) Categories() []string {
	seen := make(map[string]bool)
	var result []string
	for _, id := range c.order {
		category := c.types[id].Category
		if !seen[category] {
			seen[category] = true
			result = append(result, category)
		}
	}
	return result
}

func (c *Catalog) ByCategory(category string) []*BuildingType {
	var result []*BuildingType
	for _, id := range c.order {
		if c.types[id].Category == category {
			result = append(result, c.types[id])
		}
	}
	return result
}

// CheckRequirements tests the population and knowledge thresholds. Placement
// requirements such as near_water need the world and are checked by Session.
func (c *Catalog) CheckRequirements(id string, state *State, ledger *Ledger) bool {
	building, ok := c.types[id]
	if !ok {
		return false
	}
	if building.Requirements.Population > 0 && state.Population() < building.Requirements.Population {
		return false
	}
	if building.Requirements.Knowledge > 0 && ledger.Amount(Knowledge) < building.Requirements.Knowledge {
		return false
	}
	return true
}
