package voxel

import (
	"fmt"
	"sort"

	"github.com/SoyUnGlitch/utuado-game/engine/util"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	BlockAir   byte = EMPTY
	BlockGrass byte = 1
	BlockDirt  byte = 2
	BlockStone byte = 3
	BlockWater byte = 4
	BlockSand  byte = 5

	BlockSolarPanel      byte = 10
	BlockWindTurbine     byte = 11
	BlockHydroPlant      byte = 12
	BlockFarm            byte = 13
	BlockGreenhouse      byte = 14
	BlockWaterCollector  byte = 15
	BlockWaterFilter     byte = 16
	BlockHouse           byte = 17
	BlockCommunityCenter byte = 18
	BlockAIHub           byte = 19
	BlockSensorNetwork   byte = 20
)

// BlockType describes how voxels of one code look. Color is 0xRRGGBB.
type BlockType struct {
	Name        string  `json:"name" yaml:"name"`
	Solid       bool    `json:"solid" yaml:"solid"`
	Color       uint32  `json:"color" yaml:"color"`
	Transparent bool    `json:"transparent,omitempty" yaml:"transparent,omitempty"`
	Opacity     float32 `json:"opacity,omitempty" yaml:"opacity,omitempty"`
}

func (b BlockType) RGB() mgl32.Vec3 {
	return util.HexToRGB(b.Color)
}

// BlockPalette maps block codes to their descriptors. It is never mutated
// once a World holds it.
type BlockPalette map[byte]BlockType

func DefaultBlockTypes() BlockPalette {
	return BlockPalette{
		BlockAir:   {Name: "air", Solid: false, Color: 0x000000},
		BlockGrass: {Name: "grass", Solid: true, Color: 0x7CFC00},
		BlockDirt:  {Name: "dirt", Solid: true, Color: 0x8B4513},
		BlockStone: {Name: "stone", Solid: true, Color: 0x808080},
		BlockWater: {Name: "water", Solid: false, Color: 0x0000FF, Transparent: true, Opacity: 0.7},
		BlockSand:  {Name: "sand", Solid: true, Color: 0xF5DEB3},

		BlockSolarPanel:      {Name: "solar_panel", Solid: true, Color: 0x1E90FF},
		BlockWindTurbine:     {Name: "wind_turbine", Solid: true, Color: 0xFFFFFF},
		BlockHydroPlant:      {Name: "hydro_plant", Solid: true, Color: 0x00FFFF},
		BlockFarm:            {Name: "farm", Solid: true, Color: 0x32CD32},
		BlockGreenhouse:      {Name: "greenhouse", Solid: true, Color: 0x98FB98},
		BlockWaterCollector:  {Name: "water_collector", Solid: true, Color: 0x4682B4},
		BlockWaterFilter:     {Name: "water_filter", Solid: true, Color: 0x87CEEB},
		BlockHouse:           {Name: "house", Solid: true, Color: 0xCD853F},
		BlockCommunityCenter: {Name: "community_center", Solid: true, Color: 0xDDA0DD},
		BlockAIHub:           {Name: "ai_hub", Solid: true, Color: 0x9370DB},
		BlockSensorNetwork:   {Name: "sensor_network", Solid: true, Color: 0x708090},
	}
}

// DefaultBuildingBlocks maps building identifiers to the block placed for them.
func DefaultBuildingBlocks() map[string]byte {
	return map[string]byte{
		"solar_panel":      BlockSolarPanel,
		"wind_turbine":     BlockWindTurbine,
		"hydro_plant":      BlockHydroPlant,
		"farm":             BlockFarm,
		"greenhouse":       BlockGreenhouse,
		"water_collector":  BlockWaterCollector,
		"water_filter":     BlockWaterFilter,
		"house":            BlockHouse,
		"community_center": BlockCommunityCenter,
		"ai_hub":           BlockAIHub,
		"sensor_network":   BlockSensorNetwork,
	}
}

// Lookup resolves a code. Codes missing from the palette come back as an
// opaque, solid, black block named after the code so they stay visible.
func (p BlockPalette) Lookup(code byte) BlockType {
	if blockType, ok := p[code]; ok {
		return blockType
	}
	return BlockType{Name: fmt.Sprintf("unknown_%d", code), Solid: true}
}

func (p BlockPalette) Has(code byte) bool {
	_, ok := p[code]
	return ok
}

func (p BlockPalette) IsTransparent(code byte) bool {
	return p.Lookup(code).Transparent
}

// CodeByName does a linear search. Palettes are small.
func (p BlockPalette) CodeByName(name string) (byte, bool) {
	for code, blockType := range p {
		if blockType.Name == name {
			return code, true
		}
	}
	return 0, false
}

func (p BlockPalette) Codes() []byte {
	codes := make([]byte, 0, len(p))
	for code := range p {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}

func (p BlockPalette) clone() BlockPalette {
	result := make(BlockPalette, len(p))
	for code, blockType := range p {
		result[code] = blockType
	}
	return result
}
