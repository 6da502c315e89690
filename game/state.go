package game

import (
	"math"

	"github.com/SoyUnGlitch/utuado-game/engine/util"
	"github.com/SoyUnGlitch/utuado-game/engine/voxel"
)

type Building struct {
	ID       int        `json:"id"`
	Type     string     `json:"type"`
	Position voxel.Int3 `json:"position"`
}

type Summary struct {
	BuildingCount  int
	Population     int
	Happiness      float64
	Sustainability float64
	AILevel        float64
}

// State is the settlement bookkeeping: which buildings stand where and the
// metrics they drive.
type State struct {
	buildings      []Building
	nextID         int
	population     int
	happiness      float64
	sustainability float64
	aiLevel        float64
}

func NewState() *State {
	return &State{
		nextID:         1,
		happiness:      100,
		sustainability: 50,
	}
}

func (s *State) AddBuilding(buildingType string, position voxel.Int3) Building {
	building := Building{ID: s.nextID, Type: buildingType, Position: position}
	s.nextID++
	s.buildings = append(s.buildings, building)
	s.updateMetricsForBuilding(buildingType, 1)
	return building
}

// restoreBuilding re-adds a saved building and keeps its id.
func (s *State) restoreBuilding(building Building) {
	s.buildings = append(s.buildings, building)
	if building.ID >= s.nextID {
		s.nextID = building.ID + 1
	}
	s.updateMetricsForBuilding(building.Type, 1)
}

func (s *State) RemoveBuilding(id int) bool {
	for i, building := range s.buildings {
		if building.ID == id {
			s.updateMetricsForBuilding(building.Type, -1)
			s.buildings = append(s.buildings[:i], s.buildings[i+1:]...)
			return true
		}
	}
	return false
}

func (s *State) Building(id int) (Building, bool) {
	for _, building := range s.buildings {
		if building.ID == id {
			return building, true
		}
	}
	return Building{}, false
}

func (s *State) BuildingAt(position voxel.Int3) (Building, bool) {
	for _, building := range s.buildings {
		if building.Position == position {
			return building, true
		}
	}
	return Building{}, false
}

func (s *State) Buildings() []Building {
	result := make([]Building, len(s.buildings))
	copy(result, s.buildings)
	return result
}

func (s *State) BuildingsByType(buildingType string) []Building {
	var result []Building
	for _, building := range s.buildings {
		if building.Type == buildingType {
			result = append(result, building)
		}
	}
	return result
}

func (s *State) updateMetricsForBuilding(buildingType string, factor int) {
	f := float64(factor)
	switch buildingType {
	case "house":
		s.population += 5 * factor
	case "community_center":
		s.population += 10 * factor
		s.happiness += 5 * f
	case "solar_panel", "wind_turbine", "hydro_plant":
		s.sustainability += 5 * f
	case "farm", "greenhouse":
		s.sustainability += 3 * f
	case "ai_hub":
		s.aiLevel += 1 * f
	case "sensor_network":
		s.aiLevel += 0.5 * f
	}
	if s.population < 0 {
		s.population = 0
	}
	s.happiness = clampPercent(s.happiness)
	s.sustainability = clampPercent(s.sustainability)
	s.aiLevel = math.Max(0, s.aiLevel)
}

var happinessFactors = map[Resource]float64{
	Energy:    0.2,
	Water:     0.3,
	Food:      0.3,
	Materials: 0.1,
	Knowledge: 0.1,
}

// UpdateHappiness nudges happiness down for scarce resources and up for
// plentiful ones.
func (s *State) UpdateHappiness(resources Amounts) float64 {
	change := 0.0
	for resource, factor := range happinessFactors {
		level := resources[resource]
		switch {
		case level < 20:
			change -= factor * 2
		case level < 50:
			change -= factor
		case level > 80:
			change += factor * 0.5
		}
	}
	s.happiness = clampPercent(s.happiness + change)
	return s.happiness
}

func clampPercent(value float64) float64 {
	return util.Clamp(value, 0, 100)
}

func (s *State) Population() int {
	return s.population
}

func (s *State) Happiness() float64 {
	return s.happiness
}

func (s *State) Sustainability() float64 {
	return s.sustainability
}

func (s *State) AILevel() float64 {
	return s.aiLevel
}

func (s *State) SetAILevel(level float64) {
	s.aiLevel = math.Max(0, level)
}

func (s *State) Summary() Summary {
	return Summary{
		BuildingCount:  len(s.buildings),
		Population:     s.population,
		Happiness:      s.happiness,
		Sustainability: s.sustainability,
		AILevel:        s.aiLevel,
	}
}
