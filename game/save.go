package game

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/SoyUnGlitch/utuado-game/engine/util"
	"github.com/SoyUnGlitch/utuado-game/engine/voxel"
	"github.com/klauspost/compress/zstd"
	"github.com/pkg/errors"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

const SaveVersion = 1

//go:embed save.schema.json
var saveSchemaJSON string

var saveSchema = jsonschema.MustCompileString("save.schema.json", saveSchemaJSON)

// SaveFile is the flat JSON save document. World is optional; without it a
// load regenerates terrain and places the buildings again.
type SaveFile struct {
	Version   int                  `json:"version"`
	Resources Amounts              `json:"resources"`
	AILevel   float64              `json:"ai_level"`
	Buildings []Building           `json:"buildings"`
	World     *voxel.WorldSnapshot `json:"world,omitempty"`
}

func (s *Session) SaveFile(includeWorld bool) SaveFile {
	save := SaveFile{
		Version:   SaveVersion,
		Resources: s.ledger.Amounts(),
		AILevel:   s.state.AILevel(),
		Buildings: s.state.Buildings(),
	}
	if includeWorld {
		snapshot := s.world.Snapshot()
		save.World = &snapshot
	}
	return save
}

func isCompressed(path string) bool {
	return strings.HasSuffix(path, ".zst")
}

// SaveGame writes the session to path, zstd-compressed if it ends in .zst.
// The file is written next to path and renamed into place, so a failed save
// leaves any previous file untouched.
func SaveGame(path string, s *Session, includeWorld bool) error {
	data, err := json.MarshalIndent(s.SaveFile(includeWorld), "", "  ")
	if err != nil {
		return errors.Wrap(err, "encoding save")
	}
	if isCompressed(path) {
		encoder, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if err != nil {
			return errors.Wrap(err, "creating zstd writer")
		}
		data = encoder.EncodeAll(data, nil)
		if err := encoder.Close(); err != nil {
			return errors.Wrapf(err, "compressing save %s", path)
		}
	}
	if err := writeFileAtomic(path, data); err != nil {
		return errors.Wrapf(err, "writing save %s", path)
	}
	util.LogIOInfo(fmt.Sprintf("[Save] Wrote %s with %d buildings", path, len(s.state.buildings)))
	return nil
}

func writeFileAtomic(path string, data []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}

// ReadSave loads and validates a save file without applying it.
func ReadSave(path string) (SaveFile, error) {
	var save SaveFile
	data, err := os.ReadFile(path)
	if err != nil {
		return save, errors.Wrapf(err, "reading save %s", path)
	}
	if isCompressed(path) {
		decoder, err := zstd.NewReader(bytes.NewReader(data))
		if err != nil {
			return save, errors.Wrap(err, "creating zstd reader")
		}
		data, err = io.ReadAll(decoder)
		decoder.Close()
		if err != nil {
			return save, errors.Wrapf(err, "decompressing save %s", path)
		}
	}
	if err := ValidateSave(data); err != nil {
		util.LogIOError(fmt.Sprintf("[Save] %s failed validation: %v", path, err))
		return save, errors.Wrapf(err, "save %s", path)
	}
	if err := json.Unmarshal(data, &save); err != nil {
		return save, errors.Wrapf(err, "decoding save %s", path)
	}
	return save, nil
}

// ValidateSave checks raw JSON against the save schema.
func ValidateSave(data []byte) error {
	var document any
	if err := json.Unmarshal(data, &document); err != nil {
		return errors.Wrap(err, "invalid json")
	}
	if err := saveSchema.Validate(document); err != nil {
		return errors.Wrap(err, "schema violation")
	}
	return nil
}

func LoadGame(path string, s *Session) error {
	save, err := ReadSave(path)
	if err != nil {
		return err
	}
	if err := s.Apply(save); err != nil {
		return errors.Wrapf(err, "applying save %s", path)
	}
	util.LogIOInfo(fmt.Sprintf("[Save] Loaded %s with %d buildings", path, len(save.Buildings)))
	return nil
}

// Apply replaces the session's state with the save. The world is restored
// from the snapshot if there is one. Otherwise terrain is regenerated and
// every building is placed again. Buildings that no longer fit, or whose
// cell in the snapshot does not hold their block, are dropped.
func (s *Session) Apply(save SaveFile) error {
	if save.Version != SaveVersion {
		return errors.Errorf("unsupported save version %d", save.Version)
	}
	if save.World != nil {
		if err := s.world.Restore(*save.World); err != nil {
			return err
		}
	} else {
		s.world.GenerateTerrain()
	}

	s.state = NewState()
	s.ledger.ClearEffects()
	s.ledger.Set(save.Resources)
	for _, building := range save.Buildings {
		definition, ok := s.catalog.Get(building.Type)
		if !ok {
			util.LogGameWarning(fmt.Sprintf("[Save] Dropping unknown building %s #%d", building.Type, building.ID))
			continue
		}
		p := building.Position
		if save.World == nil {
			if !s.world.PlaceBuilding(p.X, p.Y, p.Z, building.Type) {
				util.LogGameWarning(fmt.Sprintf("[Save] Dropping %s #%d, cannot place at %v", building.Type, building.ID, p))
				continue
			}
		} else if code, ok := s.world.BuildingBlock(building.Type); !ok || s.world.GetVoxel(p.X, p.Y, p.Z) != code {
			util.LogGameWarning(fmt.Sprintf("[Save] Dropping %s #%d, no building block at %v", building.Type, building.ID, p))
			continue
		}
		s.state.restoreBuilding(building)
		if definition.Effect != nil {
			s.ledger.ApplyEffect(*definition.Effect)
		}
	}
	s.state.SetAILevel(save.AILevel)
	return nil
}
