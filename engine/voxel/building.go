package voxel

import (
	"fmt"
	"sort"

	"github.com/SoyUnGlitch/utuado-game/engine/util"
)

// BuildingBlock returns the block code placed for a building identifier.
func (w *World) BuildingBlock(buildingType string) (byte, bool) {
	code, ok := w.buildingBlocks[buildingType]
	return code, ok
}

// BuildingTypes lists every building identifier the world can place.
func (w *World) BuildingTypes() []string {
	result := make([]string, 0, len(w.buildingBlocks))
	for building := range w.buildingBlocks {
		result = append(result, building)
	}
	sort.Strings(result)
	return result
}

// CanPlaceBuilding reports whether PlaceBuilding would succeed.
func (w *World) CanPlaceBuilding(x, y, z int32, buildingType string) bool {
	if !w.Contains(x, y, z) {
		return false
	}
	if w.GetVoxel(x, y, z) != EMPTY {
		return false
	}
	_, ok := w.buildingBlocks[buildingType]
	return ok
}

// PlaceBuilding writes the building's block into an empty, in-bounds cell.
// Nothing changes when it returns false. Costs are the caller's concern.
func (w *World) PlaceBuilding(x, y, z int32, buildingType string) bool {
	if !w.CanPlaceBuilding(x, y, z, buildingType) {
		util.LogVoxelDebug(fmt.Sprintf("[VoxelWorld] Cannot place %s at %d,%d,%d", buildingType, x, y, z))
		return false
	}
	w.SetVoxel(x, y, z, w.buildingBlocks[buildingType])
	util.LogVoxelDebug(fmt.Sprintf("[VoxelWorld] Placed %s at %d,%d,%d", buildingType, x, y, z))
	return true
}

// RemoveVoxel clears an in-bounds cell to air, whatever it held before.
func (w *World) RemoveVoxel(x, y, z int32) bool {
	if !w.Contains(x, y, z) {
		return false
	}
	w.SetVoxel(x, y, z, EMPTY)
	return true
}
