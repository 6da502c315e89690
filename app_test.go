package main

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/SoyUnGlitch/utuado-game/engine/util"
	"github.com/SoyUnGlitch/utuado-game/engine/voxel"
)

func TestMain(m *testing.M) {
	util.SetLogOutput(io.Discard)
	os.Exit(m.Run())
}

func TestPlacementFlag(t *testing.T) {
	var list placementList
	if err := list.Set("solar_panel@1,2,3"); err != nil {
		t.Fatal(err)
	}
	if err := list.Set("farm@4,5"); err != nil {
		t.Fatal(err)
	}
	if list[0].cell != (voxel.Int3{X: 1, Y: 2, Z: 3}) || list[0].onSurface {
		t.Errorf("first placement = %+v", list[0])
	}
	if list[1].cell != (voxel.Int3{X: 4, Z: 5}) || !list[1].onSurface {
		t.Errorf("second placement = %+v", list[1])
	}
	for _, bad := range []string{"solar_panel", "@1,2,3", "farm@1", "farm@a,b,c", "farm@1,2,3,4"} {
		if err := list.Set(bad); err == nil {
			t.Errorf("Set(%q) should fail", bad)
		}
	}
}

func TestCellFlag(t *testing.T) {
	var cells cellList
	if err := cells.Set("1, 2, 3"); err != nil {
		t.Fatal(err)
	}
	if cells[0] != (voxel.Int3{X: 1, Y: 2, Z: 3}) {
		t.Errorf("cell = %v", cells[0])
	}
	if err := cells.Set("1,2"); err == nil {
		t.Error("two coordinates should fail")
	}
}

func writeTestConfig(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "utuado.yaml")
	data := "world: {chunk_size: 8, width: 16, height: 8, depth: 16}\nlog: {level: error}\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRunApp(t *testing.T) {
	dir := t.TempDir()
	options := appOptions{
		configFile:   writeTestConfig(t, dir),
		placements:   placementList{{buildingType: "solar_panel", cell: voxel.Int3{X: 0, Z: 0}, onSurface: true}},
		removals:     cellList{{X: 15, Y: 0, Z: 15}},
		glbFile:      filepath.Join(dir, "world.glb"),
		previewFile:  filepath.Join(dir, "world.png"),
		previewScale: 2,
		saveFile:     filepath.Join(dir, "save.json.zst"),
		saveWorld:    true,
		printMap:     true,
	}
	var out bytes.Buffer
	if err := runApp(options, &out); err != nil {
		t.Fatalf("runApp: %v\n%s", err, out.String())
	}
	text := out.String()
	if !strings.Contains(text, "placed solar_panel #1 at 0,3,0") {
		t.Errorf("missing placement line:\n%s", text)
	}
	if !strings.Contains(text, "removed 15,0,15") {
		t.Errorf("missing removal line:\n%s", text)
	}
	for _, file := range []string{options.glbFile, options.previewFile, options.saveFile} {
		if !util.DoesFileExist(file) {
			t.Errorf("%s was not written", file)
		}
	}

	reload := appOptions{configFile: options.configFile, loadFile: options.saveFile}
	out.Reset()
	if err := runApp(reload, &out); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if !strings.Contains(out.String(), "buildings: 1") {
		t.Errorf("reloaded summary:\n%s", out.String())
	}
}

func TestRunAppReportsFailures(t *testing.T) {
	dir := t.TempDir()
	options := appOptions{
		configFile: writeTestConfig(t, dir),
		placements: placementList{{buildingType: "castle", cell: voxel.Int3{X: 1, Y: 5, Z: 1}}},
	}
	var out bytes.Buffer
	if err := runApp(options, &out); err == nil {
		t.Error("expected an error for a failed placement")
	}
	if !strings.Contains(out.String(), "unknown building type") {
		t.Errorf("output:\n%s", out.String())
	}
}

func TestHeightMap(t *testing.T) {
	world, err := voxel.NewWorld(voxel.Options{Width: 3, Height: 4, Depth: 2})
	if err != nil {
		t.Fatal(err)
	}
	world.SetVoxel(0, 2, 0, voxel.BlockStone)
	world.SetVoxel(1, 0, 0, voxel.BlockWater)
	var out bytes.Buffer
	printHeightMap(&out, world, false)
	if got := out.String(); got != "2~.\n...\n" {
		t.Errorf("height map = %q", got)
	}
}
