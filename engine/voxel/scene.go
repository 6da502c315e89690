package voxel

// Scene is the render scene graph chunk meshes are inserted into and
// removed from.
type Scene interface {
	Add(mesh *ChunkMesh)
	Remove(mesh *ChunkMesh)
}

type NopScene struct{}

func (NopScene) Add(*ChunkMesh)    {}
func (NopScene) Remove(*ChunkMesh) {}

type SceneEventKind int

const (
	SceneAdd SceneEventKind = iota
	SceneRemove
)

func (k SceneEventKind) String() string {
	if k == SceneAdd {
		return "add"
	}
	return "remove"
}

type SceneEvent struct {
	Kind  SceneEventKind
	Chunk Int3
}

// MemoryScene keeps the live meshes in insertion order and a log of every
// add and remove.
type MemoryScene struct {
	meshes []*ChunkMesh
	Events []SceneEvent
}

func NewMemoryScene() *MemoryScene {
	return &MemoryScene{}
}

func (s *MemoryScene) Add(mesh *ChunkMesh) {
	s.meshes = append(s.meshes, mesh)
	s.Events = append(s.Events, SceneEvent{Kind: SceneAdd, Chunk: mesh.Chunk})
}

func (s *MemoryScene) Remove(mesh *ChunkMesh) {
	for i, candidate := range s.meshes {
		if candidate == mesh {
			s.meshes = append(s.meshes[:i], s.meshes[i+1:]...)
			break
		}
	}
	s.Events = append(s.Events, SceneEvent{Kind: SceneRemove, Chunk: mesh.Chunk})
}

func (s *MemoryScene) Meshes() []*ChunkMesh {
	result := make([]*ChunkMesh, len(s.meshes))
	copy(result, s.meshes)
	return result
}

func (s *MemoryScene) Len() int {
	return len(s.meshes)
}

func (s *MemoryScene) ClearEvents() {
	s.Events = s.Events[:0]
}
