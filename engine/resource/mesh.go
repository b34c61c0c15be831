package resource

import (
	"github.com/Carmen-Shannon/glint-go/common"
	"github.com/Carmen-Shannon/glint-go/engine/gfx"
	"github.com/go-gl/mathgl/mgl32"
)

// Mesh aggregates the vertex streams of a renderable surface: coordinates,
// triangle indices, normals and texture coordinates. Streams are held by
// pointer so several meshes can alias the same buffers (the OBJ loader
// shares one coordinate stream across all groups of a file).
//
// An edge index buffer is derived lazily the first time a wireframe has to
// be drawn on a backend without polygon-mode support.
type Mesh struct {
	coords  *GPUVec[mgl32.Vec3]
	faces   *GPUVec[common.Face]
	normals *GPUVec[mgl32.Vec3]
	uvs     *GPUVec[mgl32.Vec2]
	edges   *GPUVec[common.Edge]
}

// NewMesh builds a mesh from raw buffers. Missing normals are computed from
// the face geometry; missing texture coordinates default to the origin.
//
// Parameters:
//   - ctx: graphics context the streams upload through
//   - coords: vertex positions
//   - faces: triangle vertex indices
//   - normals: per-vertex normals, or nil to compute them
//   - uvs: per-vertex texture coordinates, or nil to fill with the origin
//   - dynamic: true when the buffers will be modified after creation
//
// Returns:
//   - *Mesh: the assembled mesh, not yet uploaded
func NewMesh(ctx gfx.Context, coords []mgl32.Vec3, faces []common.Face, normals []mgl32.Vec3, uvs []mgl32.Vec2, dynamic bool) *Mesh {
	if normals == nil {
		normals = ComputeNormals(coords, faces)
	}
	if uvs == nil {
		uvs = make([]mgl32.Vec2, len(coords))
	}

	alloc := StaticDraw
	if dynamic {
		alloc = DynamicDraw
	}

	return NewMeshWithVectors(
		NewGPUVec(ctx, coords, ArrayBuffer, alloc),
		NewGPUVec(ctx, faces, ElementArrayBuffer, alloc),
		NewGPUVec(ctx, normals, ArrayBuffer, alloc),
		NewGPUVec(ctx, uvs, ArrayBuffer, alloc),
	)
}

// NewMeshWithVectors assembles a mesh from pre-existing, possibly shared
// vertex streams.
func NewMeshWithVectors(coords *GPUVec[mgl32.Vec3], faces *GPUVec[common.Face], normals *GPUVec[mgl32.Vec3], uvs *GPUVec[mgl32.Vec2]) *Mesh {
	return &Mesh{coords: coords, faces: faces, normals: normals, uvs: uvs}
}

// Bind uploads the vertex streams if needed and points the given attributes
// at them. The face index buffer is bound as well. The normals and uvs
// attributes may be nil for effects that do not consume those streams.
func (m *Mesh) Bind(coords *ShaderAttribute[mgl32.Vec3], normals *ShaderAttribute[mgl32.Vec3], uvs *ShaderAttribute[mgl32.Vec2]) {
	m.coords.LoadToGPU()
	m.faces.LoadToGPU()
	coords.Bind(m.coords)

	if normals != nil {
		m.normals.LoadToGPU()
		normals.Bind(m.normals)
	}
	if uvs != nil {
		m.uvs.LoadToGPU()
		uvs.Bind(m.uvs)
	}
	m.faces.Bind()
}

// BindCoords binds only the coordinate stream, for effects that ignore
// normals and texture coordinates.
func (m *Mesh) BindCoords(coords *ShaderAttribute[mgl32.Vec3]) {
	m.coords.LoadToGPU()
	m.faces.LoadToGPU()
	coords.Bind(m.coords)
	m.faces.Bind()
}

// BindEdges derives the edge index buffer on first use and binds it in
// place of the face indices. Requires the face data to still be resident on
// the CPU.
func (m *Mesh) BindEdges() {
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
func (m *Mesh) Unbind() {
	m.coords.Unbind()
	m.faces.Unbind()
}

// NumPts reports the number of vertex indices drawn for the surface, three
// per triangle.
func (m *Mesh) NumPts() int {
	return m.faces.Len() * 3
}

// Coords exposes the coordinate stream.
func (m *Mesh) Coords() *GPUVec[mgl32.Vec3] { return m.coords }

// Faces exposes the triangle index stream.
func (m *Mesh) Faces() *GPUVec[common.Face] { return m.faces }

// Normals exposes the normal stream.
func (m *Mesh) Normals() *GPUVec[mgl32.Vec3] { return m.normals }

// UVs exposes the texture coordinate stream.
func (m *Mesh) UVs() *GPUVec[mgl32.Vec2] { return m.uvs }

// RecomputeNormals rebuilds the normal stream from the current coordinates
// and faces. Requires both streams to still be resident on the CPU.
func (m *Mesh) RecomputeNormals() {
	coords := m.coords.Data()
	faces := m.faces.Data()
	if coords == nil || faces == nil {
		panic("resource: cannot recompute normals once the mesh data left RAM")
	}
	m.normals.SetData(ComputeNormals(coords, faces))
}

// ComputeNormals derives per-vertex normals by averaging the cross-product
// normals of every face adjacent to each vertex. Degenerate faces contribute
// a zero vector rather than poisoning neighbors with NaNs. Vertices not
// referenced by any face get a zero normal.
//
// Parameters:
//   - coords: vertex positions
//   - faces: triangle vertex indices
//
// Returns:
//   - []mgl32.Vec3: one normal per vertex
func ComputeNormals(coords []mgl32.Vec3, faces []common.Face) []mgl32.Vec3 {
	normals := make([]mgl32.Vec3, len(coords))
	divisor := make([]float32, len(coords))

	for _, f := range faces {
		edge1 := coords[f[1]].Sub(coords[f[0]])
		edge2 := coords[f[2]].Sub(coords[f[0]])
		cross := edge1.Cross(edge2)

		var normal mgl32.Vec3
		if norm := cross.Len(); norm != 0 {
			normal = cross.Mul(1 / norm)
		}

		for _, i := range f {
			normals[i] = normals[i].Add(normal)
			divisor[i]++
		}
	}

	for i := range normals {
		if divisor[i] != 0 {
			normals[i] = normals[i].Mul(1 / divisor[i])
		}
	}
	return normals
}
