package resource

import (
	"sync"

	"github.com/Carmen-Shannon/glint-go/engine/geometry"
	"github.com/Carmen-Shannon/glint-go/engine/gfx"
)

// Default primitive names registered by NewMeshManager.
const (
	MeshCube     = "cube"
	MeshSphere   = "sphere"
	MeshCone     = "cone"
	MeshCylinder = "cylinder"
)

// MeshManager hands out meshes keyed by name. The unit-sized primitives are
// registered on construction; scene nodes instantiate them and apply a
// non-uniform scale instead of regenerating geometry per object.
type MeshManager struct {
	mu     sync.RWMutex
	ctx    gfx.Context
	meshes map[string]*Mesh
}

// NewMeshManager creates a manager with the default primitives registered
// under MeshCube, MeshSphere, MeshCone and MeshCylinder.
func NewMeshManager(ctx gfx.Context) *MeshManager {
	m := &MeshManager{ctx: ctx, meshes: make(map[string]*Mesh)}
	m.AddTriMesh(geometry.UnitCube(), false, MeshCube)
	m.AddTriMesh(geometry.UnitSphere(50, 25), false, MeshSphere)
	m.AddTriMesh(geometry.UnitCone(50), false, MeshCone)
	m.AddTriMesh(geometry.UnitCylinder(50), false, MeshCylinder)
	return m
}

// Context returns the graphics context meshes are built on.
func (m *MeshManager) Context() gfx.Context {
	return m.ctx
}

// Get looks up a mesh by name.
//
// Returns:
//   - *Mesh: the mesh, or nil
//   - bool: whether the name was registered
func (m *MeshManager) Get(name string) (*Mesh, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	mesh, ok := m.meshes[name]
	return mesh, ok
}

// Add registers a mesh under the given name, replacing any previous entry.
func (m *MeshManager) Add(mesh *Mesh, name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.meshes[name] = mesh
}

// AddTriMesh wraps raw geometry in GPU-backed buffers and registers it.
//
// Parameters:
//   - tm: geometry to wrap; nil normals or UVs are derived
//   - dynamic: true when the buffers will be modified after creation
//   - name: registry key
//
// Returns:
//   - *Mesh: the registered mesh
func (m *MeshManager) AddTriMesh(tm geometry.TriMesh, dynamic bool, name string) *Mesh {
	mesh := NewMesh(m.ctx, tm.Coords, tm.Faces, tm.Normals, tm.UVs, dynamic)
	m.Add(mesh, name)
	return mesh
}

// Remove unregisters a mesh.
func (m *MeshManager) Remove(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.meshes, name)
}
