package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/SoyUnGlitch/utuado-game/engine/util"
	"github.com/SoyUnGlitch/utuado-game/engine/voxel"
	"github.com/SoyUnGlitch/utuado-game/game"
	"github.com/pkg/errors"
	"golang.org/x/term"
)

type appOptions struct {
	configFile   string
	placements   placementList
	removals     cellList
	days         float64
	glbFile      string
	previewFile  string
	previewScale int
	saveFile     string
	saveWorld    bool
	loadFile     string
	printMap     bool
}

type placement struct {
	buildingType string
	cell         voxel.Int3
	onSurface    bool
}

type placementList []placement

func (p *placementList) String() string {
	parts := make([]string, len(*p))
	for i, entry := range *p {
		parts[i] = entry.buildingType + "@" + entry.cell.String()
	}
	return strings.Join(parts, " ")
}

func (p *placementList) Set(value string) error {
	buildingType, coords, found := strings.Cut(value, "@")
	if !found || buildingType == "" {
		return errors.Errorf("expected type@x,y,z, got %q", value)
	}
	numbers, err := parseInts(coords)
	if err != nil {
		return err
	}
	switch len(numbers) {
	case 2:
		*p = append(*p, placement{buildingType: buildingType, cell: voxel.Int3{X: numbers[0], Z: numbers[1]}, onSurface: true})
	case 3:
		*p = append(*p, placement{buildingType: buildingType, cell: voxel.Int3{X: numbers[0], Y: numbers[1], Z: numbers[2]}})
	default:
		return errors.Errorf("expected two or three coordinates, got %q", coords)
	}
	return nil
}

type cellList []voxel.Int3

func (c *cellList) String() string {
	parts := make([]string, len(*c))
	for i, cell := range *c {
		parts[i] = cell.String()
	}
	return strings.Join(parts, " ")
}

func (c *cellList) Set(value string) error {
	numbers, err := parseInts(value)
	if err != nil {
		return err
	}
	if len(numbers) != 3 {
		return errors.Errorf("expected x,y,z, got %q", value)
	}
	*c = append(*c, voxel.Int3{X: numbers[0], Y: numbers[1], Z: numbers[2]})
	return nil
}

func parseInts(value string) ([]int32, error) {
	fields := strings.Split(value, ",")
	result := make([]int32, len(fields))
	for i, field := range fields {
		n, err := strconv.ParseInt(strings.TrimSpace(field), 10, 32)
		if err != nil {
			return nil, errors.Wrapf(err, "bad coordinate %q", field)
		}
		result[i] = int32(n)
	}
	return result, nil
}

func loadConfig(path string) (game.Config, error) {
	if path == "" {
		return game.DefaultConfig(), nil
	}
	return game.LoadConfig(path)
}

func runApp(options appOptions, out io.Writer) error {
	config, err := loadConfig(options.configFile)
	if err != nil {
		return err
	}
	config.ApplyLogging()

	scene := voxel.NewMemoryScene()
	session, err := game.NewSessionFromConfig(config, scene)
	if err != nil {
		return err
	}
	world := session.World()
	util.LogSystemInfo(fmt.Sprintf("[App] World %dx%dx%d, chunk size %d", world.Width(), world.Height(), world.Depth(), config.World.ChunkSize))

	if options.loadFile != "" {
		if !util.DoesFileExist(options.loadFile) {
			return errors.Errorf("save file %s not found", options.loadFile)
		}
		if err := game.LoadGame(options.loadFile, session); err != nil {
			return err
		}
	} else {
		world.GenerateTerrain()
	}

	failures := 0
	for _, cell := range options.removals {
		if _, err := session.Demolish(cell); err != nil {
			fmt.Fprintf(out, "remove %v: %v\n", cell, err)
			failures++
			continue
		}
		fmt.Fprintf(out, "removed %v\n", cell)
	}
	for _, entry := range options.placements {
		cell := entry.cell
		if entry.onSurface {
			cell.Y = world.SurfaceHeight(cell.X, cell.Z) + 1
		}
		building, err := session.Build(cell, entry.buildingType)
		if err != nil {
			fmt.Fprintf(out, "place %s at %v: %v\n", entry.buildingType, cell, err)
			failures++
			continue
		}
		fmt.Fprintf(out, "placed %s #%d at %v\n", building.Type, building.ID, building.Position)
	}
	if options.days > 0 {
		session.Advance(options.days)
	}

	printSummary(out, session, scene)
	if options.printMap {
		printHeightMap(out, world, isTerminal(out))
	}

	if options.glbFile != "" {
		if err := world.ExportGLB(options.glbFile); err != nil {
			return err
		}
	}
	if options.previewFile != "" {
		if err := util.SavePNG(options.previewFile, world.TopDownImage(options.previewScale)); err != nil {
			return err
		}
	}
	if options.saveFile != "" {
		if err := game.SaveGame(options.saveFile, session, options.saveWorld); err != nil {
			return err
		}
	}
	if failures > 0 {
		return errors.Errorf("%d of %d commands failed", failures, len(options.removals)+len(options.placements))
	}
	return nil
}

func printSummary(out io.Writer, session *game.Session, scene *voxel.MemoryScene) {
	stats := session.World().Stats()
	summary := session.State().Summary()
	fmt.Fprintf(out, "world: %d chunks, %d faces, %d triangles, %d meshes in scene\n", stats.Chunks, stats.Faces, stats.Triangles, scene.Len())
	fmt.Fprintf(out, "resources: %s\n", session.Ledger().Amounts())
	fmt.Fprintf(out, "rates: %s\n", session.Ledger().Rates())
	fmt.Fprintf(out, "buildings: %d, population: %d, happiness: %.1f, sustainability: %.1f, ai level: %.1f\n",
		summary.BuildingCount, summary.Population, summary.Happiness, summary.Sustainability, summary.AILevel)
}

func isTerminal(out io.Writer) bool {
	file, ok := out.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}

// printHeightMap prints one character per column: the surface height in
// base 36, '~' for water and '.' for an empty column.
func printHeightMap(out io.Writer, world *voxel.World, colored bool) {
	palette := world.BlockTypes()
	for z := int32(0); z < world.Depth(); z++ {
		var line strings.Builder
		for x := int32(0); x < world.Width(); x++ {
			y := world.SurfaceHeight(x, z)
			if y < 0 {
				line.WriteByte('.')
				continue
			}
			code := world.GetVoxel(x, y, z)
			symbol := strconv.FormatInt(int64(y), 36)
			if code == voxel.BlockWater {
				symbol = "~"
			}
			if colored {
				rgb := palette.Lookup(code).RGB()
				fmt.Fprintf(&line, "\x1b[38;2;%d;%d;%dm%s\x1b[0m", int(rgb.X()*255), int(rgb.Y()*255), int(rgb.Z()*255), symbol)
				continue
			}
			line.WriteString(symbol)
		}
		fmt.Fprintln(out, line.String())
	}
}
