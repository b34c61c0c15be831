package resource

import (
	"testing"

	"github.com/Carmen-Shannon/glint-go/common"
	"github.com/Carmen-Shannon/glint-go/engine/gfx"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func flatQuad() ([]mgl32.Vec3, []common.Face) {
	coords := []mgl32.Vec3{
		{0, 0, 0},
		{1, 0, 0},
		{1, 1, 0},
		{0, 1, 0},
	}
	faces := []common.Face{{0, 1, 2}, {0, 2, 3}}
	return coords, faces
}

func TestComputeNormalsFlatSurface(t *testing.T) {
	coords, faces := flatQuad()
	normals := ComputeNormals(coords, faces)

	require.Len(t, normals, 4)
	for _, n := range normals {
		assert.InDelta(t, 0, n.X(), 1e-6)
		assert.InDelta(t, 0, n.Y(), 1e-6)
		assert.InDelta(t, 1, n.Z(), 1e-6)
	}
}

func TestComputeNormalsDegenerateFace(t *testing.T) {
	coords := []mgl32.Vec3{{0, 0, 0}, {0, 0, 0}, {0, 0, 0}}
	normals := ComputeNormals(coords, []common.Face{{0, 1, 2}})

	for _, n := range normals {
		assert.Equal(t, mgl32.Vec3{}, n)
	}
}

func TestComputeNormalsUnreferencedVertex(t *testing.T) {
	coords := []mgl32.Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}, {5, 5, 5}}
	normals := ComputeNormals(coords, []common.Face{{0, 1, 2}})

	assert.Equal(t, mgl32.Vec3{}, normals[3])
}

func TestNewMeshFillsMissingStreams(t *testing.T) {
	ctx := gfx.NewTestContext()
	coords, faces := flatQuad()
	m := NewMesh(ctx, coords, faces, nil, nil, false)

	assert.Equal(t, 4, m.Normals().Len())
	assert.Equal(t, 4, m.UVs().Len())
	assert.Equal(t, 6, m.NumPts())
}

func TestMeshRecomputeNormalsFollowsCoords(t *testing.T) {
	ctx := gfx.NewTestContext()
	coords, faces := flatQuad()
	m := NewMesh(ctx, coords, faces, nil, nil, true)

	// Rotate the quad into the XZ plane and rebuild the normals.
	pts := m.Coords().MutData()
	for i, p := range pts {
		pts[i] = mgl32.Vec3{p.X(), 0, p.Y()}
	}
	m.RecomputeNormals()

	n := m.Normals().Data()[0]
	assert.InDelta(t, 1, float64(n.Y())*float64(n.Y()), 1e-6)
}

func TestMeshBindEdgesDerivesThreePerFace(t *testing.T) {
	ctx := gfx.NewTestContext()
	coords, faces := flatQuad()
	m := NewMesh(ctx, coords, faces, nil, nil, false)

	m.BindEdges()
	require.NotNil(t, m.edges)
	assert.Equal(t, 6, m.edges.Len())
	assert.Equal(t, common.Edge{0, 1}, m.edges.Data()[0])
}

func TestMeshBindEdgesPanicsWithoutFaceData(t *testing.T) {
	ctx := gfx.NewTestContext()
	coords, faces := flatQuad()
	m := NewMesh(ctx, coords, faces, nil, nil, false)
	m.Faces().UnloadFromRAM()

	require.Panics(t, func() { m.BindEdges() })
}
