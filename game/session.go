package game

import (
	"fmt"

	"github.com/SoyUnGlitch/utuado-game/engine/util"
	"github.com/SoyUnGlitch/utuado-game/engine/voxel"
	"github.com/pkg/errors"
)

var (
	ErrUnknownBuilding    = errors.New("unknown building type")
	ErrRequirementsNotMet = errors.New("requirements not met")
	ErrCannotAfford       = errors.New("not enough resources")
	ErrCannotPlace        = errors.New("cannot build here")
	ErrNothingToDemolish  = errors.New("nothing to demolish")
)

// waterSearchRadius is how far, in cells, a near_water building may be from
// a water voxel on each axis.
const waterSearchRadius = 3

// Session ties a world to the game rules. It checks every rule before the
// world is touched, so a failed Build or Demolish leaves everything as it was.
type Session struct {
	world   *voxel.World
	catalog *Catalog
	ledger  *Ledger
	state   *State
}

func NewSession(world *voxel.World, catalog *Catalog, ledger *Ledger, state *State) *Session {
	return &Session{
		world:   world,
		catalog: catalog,
		ledger:  ledger,
		state:   state,
	}
}

func (s *Session) World() *voxel.World {
	return s.world
}

func (s *Session) Catalog() *Catalog {
	return s.catalog
}

func (s *Session) Ledger() *Ledger {
	return s.ledger
}

func (s *Session) State() *State {
	return s.state
}

// Build places a building of the given type at cell, pays for it and
// starts its effect.
func (s *Session) Build(cell voxel.Int3, buildingType string) (Building, error) {
	definition, ok := s.catalog.Get(buildingType)
	if !ok {
		return Building{}, errors.Wrap(ErrUnknownBuilding, buildingType)
	}
	if _, ok := s.world.BuildingBlock(buildingType); !ok {
		return Building{}, errors.Wrapf(ErrUnknownBuilding, "%s has no block", buildingType)
	}
	if !s.world.CanPlaceBuilding(cell.X, cell.Y, cell.Z, buildingType) {
		return Building{}, errors.Wrapf(ErrCannotPlace, "%s at %v", buildingType, cell)
	}
	if !s.catalog.CheckRequirements(buildingType, s.state, s.ledger) {
		return Building{}, errors.Wrap(ErrRequirementsNotMet, buildingType)
	}
	if definition.Requirements.NearWater && !s.isNearWater(cell) {
		return Building{}, errors.Wrapf(ErrRequirementsNotMet, "%s needs water nearby", buildingType)
	}
	if !s.ledger.CanAfford(definition.Cost) {
		return Building{}, errors.Wrapf(ErrCannotAfford, "%s costs %s", buildingType, definition.Cost)
	}
	if !s.world.PlaceBuilding(cell.X, cell.Y, cell.Z, buildingType) {
		return Building{}, errors.Wrapf(ErrCannotPlace, "%s at %v", buildingType, cell)
	}

	s.ledger.Deduct(definition.Cost)
	building := s.state.AddBuilding(buildingType, cell)
	if definition.Effect != nil {
		s.ledger.ApplyEffect(*definition.Effect)
	}
	util.LogGameInfo(fmt.Sprintf("[Session] Built %s #%d at %v", buildingType, building.ID, cell))
	return building, nil
}

// Demolish clears the cell. A building standing there is removed from the
// state and its effect stops; terrain is simply dug out.
func (s *Session) Demolish(cell voxel.Int3) (Building, error) {
	if !s.world.ContainsGrid(cell) || s.world.GetVoxelAt(cell) == voxel.BlockAir {
		return Building{}, errors.Wrapf(ErrNothingToDemolish, "at %v", cell)
	}
	building, found := s.state.BuildingAt(cell)
	if found {
		s.state.RemoveBuilding(building.ID)
		if definition, ok := s.catalog.Get(building.Type); ok && definition.Effect != nil {
			s.ledger.RemoveEffect(*definition.Effect)
		}
		util.LogGameInfo(fmt.Sprintf("[Session] Demolished %s #%d at %v", building.Type, building.ID, cell))
	}
	s.world.RemoveVoxel(cell.X, cell.Y, cell.Z)
	return building, nil
}

// BuildAtHit builds in front of the face struck by a ray.
func (s *Session) BuildAtHit(hit voxel.Intersection, buildingType string) (Building, error) {
	return s.Build(s.world.PlacementTarget(hit), buildingType)
}

// DemolishAtHit demolishes the cell struck by a ray.
func (s *Session) DemolishAtHit(hit voxel.Intersection) (Building, error) {
	return s.Demolish(s.world.VoxelPositionFromIntersect(hit))
}

// Advance runs the economy forward and lets happiness follow the stocks.
func (s *Session) Advance(days float64) {
	s.ledger.Advance(days)
	s.state.UpdateHappiness(s.ledger.Amounts())
}

func (s *Session) isNearWater(cell voxel.Int3) bool {
	for dx := int32(-waterSearchRadius); dx <= waterSearchRadius; dx++ {
		for dy := int32(-waterSearchRadius); dy <= waterSearchRadius; dy++ {
			for dz := int32(-waterSearchRadius); dz <= waterSearchRadius; dz++ {
				if s.world.GetVoxel(cell.X+dx, cell.Y+dy, cell.Z+dz) == voxel.BlockWater {
					return true
				}
			}
		}
	}
	return false
}
