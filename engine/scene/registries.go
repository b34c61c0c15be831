package scene

import (
	"github.com/Carmen-Shannon/glint-go/engine/gfx"
	"github.com/Carmen-Shannon/glint-go/engine/resource"
)

// Registries bundles the shared resource managers of one window. The window
// creates them alongside its graphics context and injects them into its
// scene roots; nodes created through the convenience constructors inherit
// the reference from their parent.
type Registries struct {
	// Meshes hands out 3D meshes by name.
	Meshes *resource.MeshManager
	// PlanarMeshes hands out 2D meshes by name.
	PlanarMeshes *resource.PlanarMeshManager
	// Materials hands out 3D materials by name.
	Materials *MaterialManager
	// PlanarMaterials hands out 2D materials by name.
	PlanarMaterials *PlanarMaterialManager
	// Textures hands out textures by name and owns the default.
	Textures *resource.TextureManager
}

// NewRegistries creates the managers for one window.
//
// Parameters:
//   - ctx: graphics context all resources upload through
//   - defaultMat: material used by objects that never pick one
//   - defaultPlanarMat: planar counterpart of defaultMat
//
// Returns:
//   - *Registries: the bundled managers with their defaults registered
func NewRegistries(ctx gfx.Context, defaultMat Material, defaultPlanarMat PlanarMaterial) *Registries {
	return &Registries{
		Meshes:          resource.NewMeshManager(ctx),
		PlanarMeshes:    resource.NewPlanarMeshManager(ctx),
		Materials:       NewMaterialManager(defaultMat),
		PlanarMaterials: NewPlanarMaterialManager(defaultPlanarMat),
		Textures:        resource.NewTextureManager(ctx),
	}
}

// Context returns the graphics context the registries were built on.
func (r *Registries) Context() gfx.Context {
	return r.Meshes.Context()
}

// Clear releases every named resource, keeping only the built-in defaults.
// The window calls this when it closes.
func (r *Registries) Clear() {
	r.Textures.Clear()
}
