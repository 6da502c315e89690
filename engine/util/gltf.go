package util

import (
	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// GLTFMesh is one indexed triangle primitive with flat per-vertex attributes.
type GLTFMesh struct {
	Name      string
	Positions [][3]float32
	Normals   [][3]float32
	Colors    [][3]float32
	Indices   []uint32
}

// BuildGLTF places every mesh under its own node in the default scene.
// Meshes without triangles are skipped.
func BuildGLTF(meshes []GLTFMesh) *gltf.Document {
	doc := gltf.NewDocument()
	for _, mesh := range meshes {
		if len(mesh.Indices) == 0 || len(mesh.Positions) == 0 {
			continue
		}
		attributes := map[string]uint32{
			gltf.POSITION: modeler.WritePosition(doc, mesh.Positions),
		}
		if len(mesh.Normals) == len(mesh.Positions) {
			attributes[gltf.NORMAL] = modeler.WriteNormal(doc, mesh.Normals)
		}
		if len(mesh.Colors) == len(mesh.Positions) {
			attributes[gltf.COLOR_0] = modeler.WriteColor(doc, mesh.Colors)
		}
		indices := modeler.WriteIndices(doc, mesh.Indices)
		doc.Meshes = append(doc.Meshes, &gltf.Mesh{
			Name: mesh.Name,
			Primitives: []*gltf.Primitive{{
				Indices:    gltf.Index(indices),
				Attributes: attributes,
			}},
		})
		doc.Nodes = append(doc.Nodes, &gltf.Node{
			Name: mesh.Name,
			Mesh: gltf.Index(uint32(len(doc.Meshes) - 1)),
		})
		doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, uint32(len(doc.Nodes)-1))
	}
	return doc
}

func SaveGLB(filename string, meshes []GLTFMesh) error {
	doc := BuildGLTF(meshes)
	if err := gltf.SaveBinary(doc, filename); err != nil {
		return errors.Wrapf(err, "writing glb %s", filename)
	}
	LogIOInfo("[GLTF] Wrote " + filename)
	return nil
}
