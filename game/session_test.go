package game

import (
	"io"
	"os"
	"testing"

	"github.com/SoyUnGlitch/utuado-game/engine/util"
	"github.com/SoyUnGlitch/utuado-game/engine/voxel"
	"github.com/pkg/errors"
)

func TestMain(m *testing.M) {
	util.SetLogOutput(io.Discard)
	os.Exit(m.Run())
}

func testConfig() Config {
	config := DefaultConfig()
	config.World = WorldConfig{ChunkSize: 8, Width: 16, Height: 8, Depth: 16, BlockSize: 1}
	return config
}

func newTestSession(t *testing.T) *Session {
	t.Helper()
	session, err := NewSessionFromConfig(testConfig(), voxel.NewMemoryScene())
	if err != nil {
		t.Fatalf("NewSessionFromConfig: %v", err)
	}
	session.World().GenerateTerrain()
	return session
}

func TestBuildPaysAndRecords(t *testing.T) {
	session := newTestSession(t)
	cell := voxel.Int3{X: 0, Y: 3, Z: 0}

	building, err := session.Build(cell, "solar_panel")
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if building.ID != 1 || building.Type != "solar_panel" || building.Position != cell {
		t.Errorf("unexpected building %+v", building)
	}
	if got := session.World().GetVoxelAt(cell); got != voxel.BlockSolarPanel {
		t.Errorf("voxel = %d, want solar panel", got)
	}
	ledger := session.Ledger()
	if ledger.Amount(Energy) != 90 || ledger.Amount(Materials) != 80 {
		t.Errorf("cost not paid: %s", ledger.Amounts())
	}
	if rates := ledger.Rates(); rates[Energy] != -2 {
		t.Errorf("energy rate = %g, want -2", rates[Energy])
	}
	if session.State().Sustainability() != 55 {
		t.Errorf("sustainability = %g, want 55", session.State().Sustainability())
	}
}

func TestBuildFailuresLeaveEverythingUntouched(t *testing.T) {
	session := newTestSession(t)
	before := session.World().Voxels()
	amounts := session.Ledger().Amounts()

	cases := []struct {
		name     string
		cell     voxel.Int3
		building string
		want     error
	}{
		{"unknown", voxel.Int3{X: 0, Y: 3, Z: 0}, "castle", ErrUnknownBuilding},
		{"occupied", voxel.Int3{X: 0, Y: 2, Z: 0}, "farm", ErrCannotPlace},
		{"outside", voxel.Int3{X: -1, Y: 3, Z: 0}, "farm", ErrCannotPlace},
		{"population", voxel.Int3{X: 0, Y: 3, Z: 0}, "community_center", ErrRequirementsNotMet},
		{"no water", voxel.Int3{X: 0, Y: 3, Z: 0}, "hydro_plant", ErrRequirementsNotMet},
	}
	for _, c := range cases {
		_, err := session.Build(c.cell, c.building)
		if !errors.Is(err, c.want) {
			t.Errorf("%s: got %v, want %v", c.name, err, c.want)
		}
	}

	if string(before) != string(session.World().Voxels()) {
		t.Error("failed builds changed the world")
	}
	for resource, amount := range amounts {
		if session.Ledger().Amount(resource) != amount {
			t.Errorf("%s changed to %g", resource, session.Ledger().Amount(resource))
		}
	}
	if len(session.State().Buildings()) != 0 {
		t.Error("failed builds were recorded")
	}
}

func TestBuildNearWater(t *testing.T) {
	session := newTestSession(t)
	if session.World().GetVoxel(12, 1, 12) != voxel.BlockWater {
		t.Fatal("expected water at 12,1,12")
	}
	if _, err := session.Build(voxel.Int3{X: 12, Y: 2, Z: 12}, "hydro_plant"); err != nil {
		t.Fatalf("hydro plant next to water: %v", err)
	}
}

func TestBuildRequiresPopulationAndFunds(t *testing.T) {
	session := newTestSession(t)
	for _, cell := range []voxel.Int3{{X: 0, Y: 3, Z: 0}, {X: 1, Y: 3, Z: 1}} {
		if _, err := session.Build(cell, "house"); err != nil {
			t.Fatalf("house at %v: %v", cell, err)
		}
	}
	if session.State().Population() != 10 {
		t.Fatalf("population = %d, want 10", session.State().Population())
	}

	cell := voxel.Int3{X: 0, Y: 3, Z: 1}
	if _, err := session.Build(cell, "community_center"); !errors.Is(err, ErrCannotAfford) {
		t.Fatalf("got %v, want ErrCannotAfford", err)
	}
	if session.World().GetVoxelAt(cell) != voxel.BlockAir {
		t.Error("unaffordable building was placed")
	}

	session.Ledger().Add(Amounts{Materials: 50})
	if _, err := session.Build(cell, "community_center"); err != nil {
		t.Fatalf("community center: %v", err)
	}
	if session.State().Population() != 20 {
		t.Errorf("population = %d, want 20", session.State().Population())
	}
}

func TestDemolish(t *testing.T) {
	session := newTestSession(t)
	cell := voxel.Int3{X: 0, Y: 3, Z: 0}
	built, err := session.Build(cell, "solar_panel")
	if err != nil {
		t.Fatal(err)
	}

	removed, err := session.Demolish(cell)
	if err != nil {
		t.Fatalf("Demolish: %v", err)
	}
	if removed.ID != built.ID {
		t.Errorf("removed %+v, want %+v", removed, built)
	}
	if session.World().GetVoxelAt(cell) != voxel.BlockAir {
		t.Error("cell not cleared")
	}
	if len(session.Ledger().Effects()) != 0 || len(session.State().Buildings()) != 0 {
		t.Error("building or effect left behind")
	}
	if session.State().Sustainability() != 50 {
		t.Errorf("sustainability = %g, want 50", session.State().Sustainability())
	}

	if _, err := session.Demolish(cell); !errors.Is(err, ErrNothingToDemolish) {
		t.Errorf("demolishing air: got %v", err)
	}
	if _, err := session.Demolish(voxel.Int3{X: 99, Y: 0, Z: 0}); !errors.Is(err, ErrNothingToDemolish) {
		t.Errorf("demolishing outside: got %v", err)
	}

	ground := voxel.Int3{X: 0, Y: 2, Z: 0}
	if _, err := session.Demolish(ground); err != nil {
		t.Errorf("digging terrain: %v", err)
	}
	if session.World().GetVoxelAt(ground) != voxel.BlockAir {
		t.Error("terrain not removed")
	}
}

func TestBuildAndDemolishAtHit(t *testing.T) {
	session := newTestSession(t)
	world := session.World()

	hit, ok := world.Raycast(mgl(0.3, 20, 0.6), mgl(0.3, -1, 0.6))
	if !ok {
		t.Fatal("ray missed the terrain")
	}
	building, err := session.BuildAtHit(hit.Intersection, "farm")
	if err != nil {
		t.Fatalf("BuildAtHit: %v", err)
	}
	if building.Position != (voxel.Int3{X: 0, Y: 3, Z: 0}) {
		t.Errorf("built at %v, want 0,3,0", building.Position)
	}

	hit, ok = world.Raycast(mgl(0.3, 20, 0.6), mgl(0.3, -1, 0.6))
	if !ok {
		t.Fatal("ray missed the farm")
	}
	removed, err := session.DemolishAtHit(hit.Intersection)
	if err != nil || removed.ID != building.ID {
		t.Errorf("DemolishAtHit = %+v, %v", removed, err)
	}
}

func TestAdvance(t *testing.T) {
	session := newTestSession(t)
	session.Advance(2)
	if got := session.Ledger().Amount(Energy); got != 90 {
		t.Errorf("energy = %g, want 90", got)
	}
	if got := session.Ledger().Amount(Knowledge); got != 52 {
		t.Errorf("knowledge = %g, want 52", got)
	}
}
