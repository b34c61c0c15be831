package geometry

import (
	"testing"

	"github.com/Carmen-Shannon/glint-go/common"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitCube(t *testing.T) {
	m := UnitCube()

	assert.Len(t, m.Coords, 24)
	assert.Len(t, m.Normals, 24)
	assert.Len(t, m.UVs, 24)
	assert.Len(t, m.Faces, 12)

	for _, p := range m.Coords {
		for axis := 0; axis < 3; axis++ {
			assert.LessOrEqual(t, p[axis], float32(0.5))
			assert.GreaterOrEqual(t, p[axis], float32(-0.5))
		}
	}
	for _, n := range m.Normals {
		assert.InDelta(t, 1, n.Len(), 1e-6)
	}
}

func TestUnitSphere(t *testing.T) {
	m := UnitSphere(8, 4)

	assert.Len(t, m.Coords, 9*5)
	assert.Len(t, m.Faces, 8*4*2)

	for i, p := range m.Coords {
		assert.InDelta(t, 0.5, p.Len(), 1e-5)
		assert.InDelta(t, 1, m.Normals[i].Len(), 1e-5)
	}
}

func TestUnitCylinderStaysInsideUnitBox(t *testing.T) {
	m := UnitCylinder(12)

	for _, p := range m.Coords {
		assert.InDelta(t, 0, p.Y(), 0.5+1e-6)
		radial := mgl32.Vec2{p.X(), p.Z()}.Len()
		assert.LessOrEqual(t, radial, float32(0.5)+1e-6)
	}
}

func TestUnitConeApexAndBase(t *testing.T) {
	m := UnitCone(8)

	var top, bottom float32
	for _, p := range m.Coords {
		if p.Y() > top {
			top = p.Y()
		}
		if p.Y() < bottom {
			bottom = p.Y()
		}
	}
	assert.InDelta(t, 0.5, top, 1e-6)
	assert.InDelta(t, -0.5, bottom, 1e-6)
}

func TestCapsuleTotalHeight(t *testing.T) {
	m := Capsule(0.5, 2, 8, 4)

	var top, bottom float32
	for _, p := range m.Coords {
		if p.Y() > top {
			top = p.Y()
		}
		if p.Y() < bottom {
			bottom = p.Y()
		}
	}
	// height + 2*radius, split evenly about the origin.
	assert.InDelta(t, 1.5, top, 1e-5)
	assert.InDelta(t, -1.5, bottom, 1e-5)
}

func TestQuadSubdivisions(t *testing.T) {
	m := Quad(2, 1, 4, 2)

	assert.Len(t, m.Coords, 5*3)
	assert.Len(t, m.Faces, 4*2*2)

	for _, p := range m.Coords {
		assert.Equal(t, float32(0), p.Z())
		assert.LessOrEqual(t, p.X(), float32(1))
		assert.GreaterOrEqual(t, p.X(), float32(-1))
	}
	for _, n := range m.Normals {
		assert.Equal(t, mgl32.Vec3{0, 0, 1}, n)
	}
}

func TestUnitCircle(t *testing.T) {
	m := UnitCircle(16)

	assert.Len(t, m.Faces, 16)
	assert.Equal(t, mgl32.Vec2{0, 0}, m.Coords[0])
	for _, p := range m.Coords[1:] {
		assert.InDelta(t, 0.5, p.Len(), 1e-5)
	}
}

func TestConvexPolygonFansFromFirstVertex(t *testing.T) {
	points := []mgl32.Vec2{{0, 0}, {2, 0}, {2, 2}, {0, 2}}
	m := ConvexPolygon(points)

	require.Len(t, m.Faces, 2)
	assert.Equal(t, common.Face{0, 1, 2}, m.Faces[0])
	assert.Equal(t, common.Face{0, 2, 3}, m.Faces[1])

	// UVs map the bounding box onto the unit square with Y flipped.
	assert.Equal(t, mgl32.Vec2{0, 1}, m.UVs[0])
	assert.Equal(t, mgl32.Vec2{1, 0}, m.UVs[2])
}

func TestConvexPolygonTooFewPoints(t *testing.T) {
	m := ConvexPolygon([]mgl32.Vec2{{0, 0}, {1, 0}})
	assert.Empty(t, m.Faces)
}
