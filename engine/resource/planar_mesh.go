package resource

import (
	"github.com/Carmen-Shannon/glint-go/common"
	"github.com/Carmen-Shannon/glint-go/engine/gfx"
	"github.com/go-gl/mathgl/mgl32"
)

// PlanarMesh is the 2D counterpart of Mesh: coordinates, triangle indices
// and texture coordinates, with no normal stream.
type PlanarMesh struct {
	coords *GPUVec[mgl32.Vec2]
	faces  *GPUVec[common.Face]
	uvs    *GPUVec[mgl32.Vec2]
	edges  *GPUVec[common.Edge]
}

// NewPlanarMesh builds a 2D mesh from raw buffers. Missing texture
// coordinates default to the origin.
func NewPlanarMesh(ctx gfx.Context, coords []mgl32.Vec2, faces []common.Face, uvs []mgl32.Vec2, dynamic bool) *PlanarMesh {
	if uvs == nil {
		uvs = make([]mgl32.Vec2, len(coords))
	}

	alloc := StaticDraw
	if dynamic {
		alloc = DynamicDraw
	}

	return &PlanarMesh{
		coords: NewGPUVec(ctx, coords, ArrayBuffer, alloc),
		faces:  NewGPUVec(ctx, faces, ElementArrayBuffer, alloc),
		uvs:    NewGPUVec(ctx, uvs, ArrayBuffer, alloc),
	}
}

// Bind uploads the vertex streams if needed and points the given attributes
// at them.
func (m *PlanarMesh) Bind(coords *ShaderAttribute[mgl32.Vec2], uvs *ShaderAttribute[mgl32.Vec2]) {
	m.coords.LoadToGPU()
	m.uvs.LoadToGPU()
	m.faces.LoadToGPU()

	coords.Bind(m.coords)
	uvs.Bind(m.uvs)
	m.faces.Bind()
}

// BindEdges derives the edge index buffer on first use and binds it in
// place of the face indices.
func (m *PlanarMesh) BindEdges() {
	if m.edges == nil {
		faces := m.faces.Data()
		if faces == nil {
			panic("resource: cannot derive mesh edges once the face data left RAM")
		}
		edges := make([]common.Edge, 0, len(faces)*3)
		for _, f := range faces {
			edges = append(edges,
				common.Edge{f[0], f[1]},
				common.Edge{f[1], f[2]},
				common.Edge{f[2], f[0]},
			)
		}
		m.edges = NewGPUVec(m.faces.ctx, edges, ElementArrayBuffer, StaticDraw)
	}
	m.edges.LoadToGPU()
	m.edges.Bind()
}

// Unbind clears the array and element buffer bindings.
func (m *PlanarMesh) Unbind() {
	m.coords.Unbind()
	m.faces.Unbind()
}

// NumPts reports the number of vertex indices drawn for the surface.
func (m *PlanarMesh) NumPts() int {
	return m.faces.Len() * 3
}

// Coords exposes the coordinate stream.
func (m *PlanarMesh) Coords() *GPUVec[mgl32.Vec2] { return m.coords }

// Faces exposes the triangle index stream.
func (m *PlanarMesh) Faces() *GPUVec[common.Face] { return m.faces }

// UVs exposes the texture coordinate stream.
func (m *PlanarMesh) UVs() *GPUVec[mgl32.Vec2] { return m.uvs }
