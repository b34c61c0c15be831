package resource

import (
	"sync"

	"github.com/Carmen-Shannon/glint-go/engine/geometry"
	"github.com/Carmen-Shannon/glint-go/engine/gfx"
)

// Default planar primitive names registered by NewPlanarMeshManager.
const (
	MeshCircle    = "circle"
	MeshRectangle = "rectangle"
)

// PlanarMeshManager hands out 2D meshes keyed by name, mirroring
// MeshManager for the planar scene graph.
type PlanarMeshManager struct {
	mu     sync.RWMutex
	ctx    gfx.Context
	meshes map[string]*PlanarMesh
}

// NewPlanarMeshManager creates a manager with the unit circle and rectangle
// registered.
func NewPlanarMeshManager(ctx gfx.Context) *PlanarMeshManager {
	m := &PlanarMeshManager{ctx: ctx, meshes: make(map[string]*PlanarMesh)}
	m.AddTriMesh(geometry.UnitCircle(50), false, MeshCircle)
	m.AddTriMesh(geometry.UnitRectangle(), false, MeshRectangle)
	return m
}

// Context returns the graphics context meshes are built on.
func (m *PlanarMeshManager) Context() gfx.Context {
	return m.ctx
}

// Get looks up a mesh by name.
func (m *PlanarMeshManager) Get(name string) (*PlanarMesh, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	mesh, ok := m.meshes[name]
	return mesh, ok
}

// Add registers a mesh under the given name, replacing any previous entry.
func (m *PlanarMeshManager) Add(mesh *PlanarMesh, name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.meshes[name] = mesh
}

// AddTriMesh wraps raw planar geometry in GPU-backed buffers and registers
// it.
func (m *PlanarMeshManager) AddTriMesh(tm geometry.PlanarTriMesh, dynamic bool, name string) *PlanarMesh {
	mesh := NewPlanarMesh(m.ctx, tm.Coords, tm.Faces, tm.UVs, dynamic)
	m.Add(mesh, name)
	return mesh
}

// Remove unregisters a mesh.
func (m *PlanarMeshManager) Remove(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.meshes, name)
}
