// Package scene implements the retained scene graphs of the engine: a 3D
// hierarchy of nodes with lazily resolved world transforms, its planar (2D)
// mirror, and the registries handing out shared meshes, materials and
// textures.
package scene

import (
	"sync"

	"github.com/Carmen-Shannon/glint-go/common"
	"github.com/Carmen-Shannon/glint-go/engine/camera"
	"github.com/Carmen-Shannon/glint-go/engine/light"
	"github.com/Carmen-Shannon/glint-go/engine/resource"
	"github.com/go-gl/mathgl/mgl32"
)

// Material shades an object of the 3D scene. Implementations own their
// shader program and draw the mesh up to three times per pass: the filled
// surface, the wireframe and the vertex points, as selected by the object's
// render attributes.
type Material interface {
	// Render draws one object for one camera pass.
	//
	// Parameters:
	//   - pass: index of the current camera pass
	//   - transform: world transformation of the object
	//   - scale: world scale of the object, applied before the transform
	//   - cam: camera supplying the projection and view
	//   - lgt: light to resolve against the camera
	//   - data: per-object render attributes
	//   - mesh: geometry to draw
	Render(pass int, transform common.Isometry3, scale mgl32.Vec3, cam camera.Camera, lgt light.Light, data *ObjectData, mesh *resource.Mesh)
}

// PlanarMaterial shades an object of the 2D scene.
type PlanarMaterial interface {
	// Render draws one planar object.
	Render(transform common.Isometry2, scale mgl32.Vec2, cam camera.PlanarCamera, data *PlanarObjectData, mesh *resource.PlanarMesh)
}

// MaterialManager hands out materials keyed by name. The default material is
// injected at construction; the window registers the built-in shading styles
// under "object", "normals" and "uvs".
type MaterialManager struct {
	mu         sync.RWMutex
	defaultMat Material
	materials  map[string]Material
}

// NewMaterialManager creates a manager whose default material is also
// registered under "default".
func NewMaterialManager(defaultMat Material) *MaterialManager {
	return &MaterialManager{
		defaultMat: defaultMat,
		materials:  map[string]Material{"default": defaultMat},
	}
}

// GetDefault returns the injected default material.
func (m *MaterialManager) GetDefault() Material {
	return m.defaultMat
}

// Get looks up a material by name.
func (m *MaterialManager) Get(name string) (Material, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	mat, ok := m.materials[name]
	return mat, ok
}

// Add registers a material under the given name, replacing any previous
// entry.
func (m *MaterialManager) Add(mat Material, name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.materials[name] = mat
}

// Remove unregisters a material.
func (m *MaterialManager) Remove(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.materials, name)
}

// PlanarMaterialManager mirrors MaterialManager for the 2D scene.
type PlanarMaterialManager struct {
	mu         sync.RWMutex
	defaultMat PlanarMaterial
	materials  map[string]PlanarMaterial
}

// NewPlanarMaterialManager creates a manager whose default material is also
// registered under "default".
func NewPlanarMaterialManager(defaultMat PlanarMaterial) *PlanarMaterialManager {
	return &PlanarMaterialManager{
		defaultMat: defaultMat,
		materials:  map[string]PlanarMaterial{"default": defaultMat},
	}
}

// GetDefault returns the injected default material.
func (m *PlanarMaterialManager) GetDefault() PlanarMaterial {
	return m.defaultMat
}

// Get looks up a material by name.
func (m *PlanarMaterialManager) Get(name string) (PlanarMaterial, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	mat, ok := m.materials[name]
	return mat, ok
}

// Add registers a material under the given name, replacing any previous
// entry.
func (m *PlanarMaterialManager) Add(mat PlanarMaterial, name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.materials[name] = mat
}

// Remove unregisters a material.
func (m *PlanarMaterialManager) Remove(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.materials, name)
}
