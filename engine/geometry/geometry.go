// Package geometry generates procedural triangle meshes for the engine's
// built-in primitives. Generators return plain CPU-side buffers; the
// resource layer wraps them into GPU-backed meshes.
package geometry

import (
	"math"

	"github.com/Carmen-Shannon/glint-go/common"
	"github.com/go-gl/mathgl/mgl32"
)

// TriMesh is a CPU-side triangle mesh. Normals may be nil, in which case the
// resource layer derives them from the face geometry.
type TriMesh struct {
	// Coords are the vertex positions.
	Coords []mgl32.Vec3
	// Normals are the per-vertex normals, or nil.
	Normals []mgl32.Vec3
	// UVs are the per-vertex texture coordinates, or nil.
	UVs []mgl32.Vec2
	// Faces are the triangle vertex indices.
	Faces []common.Face
}

// PlanarTriMesh is a CPU-side 2D triangle mesh.
type PlanarTriMesh struct {
	// Coords are the vertex positions.
	Coords []mgl32.Vec2
	// UVs are the per-vertex texture coordinates, or nil.
	UVs []mgl32.Vec2
	// Faces are the triangle vertex indices.
	Faces []common.Face
}

// UnitCube generates an axis-aligned cube spanning [-0.5, 0.5] on every
// axis, with per-face normals and texture coordinates.
func UnitCube() TriMesh {
	var m TriMesh

	addFace := func(a, b, c, d, normal mgl32.Vec3) {
		base := uint32(len(m.Coords))
		m.Coords = append(m.Coords, a, b, c, d)
		m.Normals = append(m.Normals, normal, normal, normal, normal)
		m.UVs = append(m.UVs,
			mgl32.Vec2{0, 0}, mgl32.Vec2{1, 0}, mgl32.Vec2{1, 1}, mgl32.Vec2{0, 1})
		m.Faces = append(m.Faces,
			common.Face{base, base + 1, base + 2},
			common.Face{base, base + 2, base + 3})
	}

	const h = 0.5
	// +X, -X, +Y, -Y, +Z, -Z, each wound counter-clockwise seen from outside.
	addFace(mgl32.Vec3{h, -h, h}, mgl32.Vec3{h, -h, -h}, mgl32.Vec3{h, h, -h}, mgl32.Vec3{h, h, h}, mgl32.Vec3{1, 0, 0})
	addFace(mgl32.Vec3{-h, -h, -h}, mgl32.Vec3{-h, -h, h}, mgl32.Vec3{-h, h, h}, mgl32.Vec3{-h, h, -h}, mgl32.Vec3{-1, 0, 0})
	addFace(mgl32.Vec3{-h, h, h}, mgl32.Vec3{h, h, h}, mgl32.Vec3{h, h, -h}, mgl32.Vec3{-h, h, -h}, mgl32.Vec3{0, 1, 0})
	addFace(mgl32.Vec3{-h, -h, -h}, mgl32.Vec3{h, -h, -h}, mgl32.Vec3{h, -h, h}, mgl32.Vec3{-h, -h, h}, mgl32.Vec3{0, -1, 0})
	addFace(mgl32.Vec3{-h, -h, h}, mgl32.Vec3{h, -h, h}, mgl32.Vec3{h, h, h}, mgl32.Vec3{-h, h, h}, mgl32.Vec3{0, 0, 1})
	addFace(mgl32.Vec3{h, -h, -h}, mgl32.Vec3{-h, -h, -h}, mgl32.Vec3{-h, h, -h}, mgl32.Vec3{h, h, -h}, mgl32.Vec3{0, 0, -1})

	return m
}

// UnitSphere generates a latitude/longitude sphere of diameter 1 centered at
// the origin.
//
// Parameters:
//   - segments: subdivisions around the equator, at least 3
//   - rings: subdivisions from pole to pole, at least 2
func UnitSphere(segments, rings uint32) TriMesh {
	var m TriMesh
	const r = 0.5

	for i := uint32(0); i <= rings; i++ {
		theta := math.Pi * float64(i) / float64(rings)
		for j := uint32(0); j <= segments; j++ {
			phi := 2 * math.Pi * float64(j) / float64(segments)
			dir := mgl32.Vec3{
				float32(math.Sin(theta) * math.Cos(phi)),
				float32(math.Cos(theta)),
				float32(math.Sin(theta) * math.Sin(phi)),
			}
			m.Coords = append(m.Coords, dir.Mul(r))
			m.Normals = append(m.Normals, dir)
			m.UVs = append(m.UVs, mgl32.Vec2{
				float32(j) / float32(segments),
				float32(i) / float32(rings),
			})
		}
	}

	m.Faces = gridFaces(rings, segments, 0)
	return m
}

// UnitCylinder generates a cylinder of diameter 1 and height 1 centered at
// the origin, axis along Y, with closed caps.
func UnitCylinder(segments uint32) TriMesh {
	var m TriMesh
	const r = 0.5
	const h = 0.5

	// Wall vertices, top ring then bottom ring, with horizontal normals.
	for _, y := range []float32{h, -h} {
		for j := uint32(0); j <= segments; j++ {
			phi := 2 * math.Pi * float64(j) / float64(segments)
			c := float32(math.Cos(phi))
			s := float32(math.Sin(phi))
			m.Coords = append(m.Coords, mgl32.Vec3{r * c, y, r * s})
			m.Normals = append(m.Normals, mgl32.Vec3{c, 0, s})
			m.UVs = append(m.UVs, mgl32.Vec2{float32(j) / float32(segments), (y + h)})
		}
	}
	m.Faces = gridFaces(1, segments, 0)

	m.Faces = append(m.Faces, capFaces(&m, r, h, segments, true)...)
	m.Faces = append(m.Faces, capFaces(&m, r, -h, segments, false)...)
	return m
}

// UnitCone generates a cone with a base of diameter 1 at y = -0.5 and its
// apex at y = 0.5.
func UnitCone(segments uint32) TriMesh {
	var m TriMesh
	const r = 0.5
	const h = 1.0

	// Side surface: one apex vertex per segment so normals stay per-facet
	// smooth around the rim.
	sideNormal := func(phi float64) mgl32.Vec3 {
		n := mgl32.Vec3{float32(h * math.Cos(phi)), r, float32(h * math.Sin(phi))}
		return n.Normalize()
	}
	for j := uint32(0); j <= segments; j++ {
		phi := 2 * math.Pi * float64(j) / float64(segments)
		m.Coords = append(m.Coords, mgl32.Vec3{
			r * float32(math.Cos(phi)), -0.5, r * float32(math.Sin(phi)),
		})
		m.Normals = append(m.Normals, sideNormal(phi))
		m.UVs = append(m.UVs, mgl32.Vec2{float32(j) / float32(segments), 0})
	}
	for j := uint32(0); j < segments; j++ {
		phi := 2 * math.Pi * (float64(j) + 0.5) / float64(segments)
		apex := uint32(len(m.Coords))
		m.Coords = append(m.Coords, mgl32.Vec3{0, 0.5, 0})
		m.Normals = append(m.Normals, sideNormal(phi))
		m.UVs = append(m.UVs, mgl32.Vec2{(float32(j) + 0.5) / float32(segments), 1})
		m.Faces = append(m.Faces, common.Face{j, apex, j + 1})
	}

	m.Faces = append(m.Faces, capFaces(&m, r, -0.5, segments, false)...)
	return m
}

// Capsule generates a cylinder of the given height capped with hemispheres
// of the given radius. The total height is height + 2*radius, axis along Y,
// centered at the origin.
//
// Parameters:
//   - radius: hemisphere and cylinder radius
//   - height: height of the cylindrical section
//   - segments: subdivisions around the axis, at least 3
//   - rings: subdivisions per hemisphere, at least 1
func Capsule(radius, height float32, segments, rings uint32) TriMesh {
	var m TriMesh
	half := height / 2
	rows := 2*rings + 1

	for i := uint32(0); i <= rows; i++ {
		// Split the rows between the two hemispheres; the repeated equator
		// row (once shifted up, once down) forms the cylinder wall.
		var theta float64
		var shift float32
		if i <= rings {
			theta = math.Pi / 2 * float64(i) / float64(rings)
			shift = half
		} else {
			theta = math.Pi/2 + math.Pi/2*float64(i-rings-1)/float64(rings)
			shift = -half
		}
		for j := uint32(0); j <= segments; j++ {
			phi := 2 * math.Pi * float64(j) / float64(segments)
			dir := mgl32.Vec3{
				float32(math.Sin(theta) * math.Cos(phi)),
				float32(math.Cos(theta)),
				float32(math.Sin(theta) * math.Sin(phi)),
			}
			p := dir.Mul(radius)
			m.Coords = append(m.Coords, mgl32.Vec3{p.X(), p.Y() + shift, p.Z()})
			m.Normals = append(m.Normals, dir)
			m.UVs = append(m.UVs, mgl32.Vec2{
				float32(j) / float32(segments),
				float32(i) / float32(rows),
			})
		}
	}

	m.Faces = gridFaces(rows, segments, 0)
	return m
}

// Quad generates a subdivided rectangle in the XY plane facing +Z, centered
// at the origin.
//
// Parameters:
//   - width: extent along X
//   - height: extent along Y
//   - usubs: subdivisions along X, at least 1
//   - vsubs: subdivisions along Y, at least 1
func Quad(width, height float32, usubs, vsubs uint32) TriMesh {
	var m TriMesh

	for i := uint32(0); i <= vsubs; i++ {
		v := float32(i) / float32(vsubs)
		for j := uint32(0); j <= usubs; j++ {
			u := float32(j) / float32(usubs)
			m.Coords = append(m.Coords, mgl32.Vec3{
				width * (u - 0.5),
				height * (v - 0.5),
				0,
			})
			m.Normals = append(m.Normals, mgl32.Vec3{0, 0, 1})
			m.UVs = append(m.UVs, mgl32.Vec2{u, 1 - v})
		}
	}

	m.Faces = gridFaces(vsubs, usubs, 0)
	return m
}

// UnitCircle generates a triangle fan disc of diameter 1 centered at the
// origin.
func UnitCircle(segments uint32) PlanarTriMesh {
	var m PlanarTriMesh
	const r = 0.5

	m.Coords = append(m.Coords, mgl32.Vec2{0, 0})
	m.UVs = append(m.UVs, mgl32.Vec2{0.5, 0.5})
	for j := uint32(0); j <= segments; j++ {
		phi := 2 * math.Pi * float64(j) / float64(segments)
		c := float32(math.Cos(phi))
		s := float32(math.Sin(phi))
		m.Coords = append(m.Coords, mgl32.Vec2{r * c, r * s})
		m.UVs = append(m.UVs, mgl32.Vec2{0.5 + c/2, 0.5 - s/2})
	}
	for j := uint32(1); j <= segments; j++ {
		m.Faces = append(m.Faces, common.Face{0, j, j + 1})
	}
	return m
}

// UnitRectangle generates a unit square spanning [-0.5, 0.5] on both axes.
func UnitRectangle() PlanarTriMesh {
	return PlanarTriMesh{
		Coords: []mgl32.Vec2{
			{-0.5, -0.5}, {0.5, -0.5}, {0.5, 0.5}, {-0.5, 0.5},
		},
		UVs: []mgl32.Vec2{
			{0, 1}, {1, 1}, {1, 0}, {0, 0},
		},
		Faces: []common.Face{{0, 1, 2}, {0, 2, 3}},
	}
}

// ConvexPolygon triangulates a convex polygon given its counter-clockwise
// vertices, fanning from the first vertex. UVs map the polygon's bounding box
// onto [0, 1] x [0, 1].
func ConvexPolygon(points []mgl32.Vec2) PlanarTriMesh {
	var m PlanarTriMesh
	if len(points) < 3 {
		return m
	}

	min := points[0]
	max := points[0]
	for _, p := range points[1:] {
		if p.X() < min.X() {
			min[0] = p.X()
		}
		if p.Y() < min.Y() {
			min[1] = p.Y()
		}
		if p.X() > max.X() {
			max[0] = p.X()
		}
		if p.Y() > max.Y() {
			max[1] = p.Y()
		}
	}
	extent := max.Sub(min)
	if extent.X() == 0 {
		extent[0] = 1
	}
	if extent.Y() == 0 {
		extent[1] = 1
	}

	m.Coords = append(m.Coords, points...)
	for _, p := range points {
		m.UVs = append(m.UVs, mgl32.Vec2{
			(p.X() - min.X()) / extent.X(),
			1 - (p.Y()-min.Y())/extent.Y(),
		})
	}
	for j := uint32(1); j+1 < uint32(len(points)); j++ {
		m.Faces = append(m.Faces, common.Face{0, j, j + 1})
	}
	return m
}

// gridFaces emits counter-clockwise triangle pairs over a (rows+1) x
// (cols+1) vertex lattice laid out row-major starting at base.
func gridFaces(rows, cols, base uint32) []common.Face {
	faces := make([]common.Face, 0, rows*cols*2)
	stride := cols + 1
	for i := uint32(0); i < rows; i++ {
		for j := uint32(0); j < cols; j++ {
			a := base + i*stride + j
			b := a + 1
			c := a + stride
			d := c + 1
			faces = append(faces, common.Face{a, b, d}, common.Face{a, d, c})
		}
	}
	return faces
}

// capFaces appends the vertices of a horizontal disc at height y to m and
// returns its triangle fan. up selects the normal direction and winding.
func capFaces(m *TriMesh, r, y float32, segments uint32, up bool) []common.Face {
	normal := mgl32.Vec3{0, 1, 0}
	if !up {
		normal = mgl32.Vec3{0, -1, 0}
	}

	center := uint32(len(m.Coords))
	m.Coords = append(m.Coords, mgl32.Vec3{0, y, 0})
	m.Normals = append(m.Normals, normal)
	m.UVs = append(m.UVs, mgl32.Vec2{0.5, 0.5})

	for j := uint32(0); j <= segments; j++ {
		phi := 2 * math.Pi * float64(j) / float64(segments)
		c := float32(math.Cos(phi))
		s := float32(math.Sin(phi))
		m.Coords = append(m.Coords, mgl32.Vec3{r * c, y, r * s})
		m.Normals = append(m.Normals, normal)
		m.UVs = append(m.UVs, mgl32.Vec2{0.5 + c/2, 0.5 - s/2})
	}

	faces := make([]common.Face, 0, segments)
	for j := uint32(0); j < segments; j++ {
		a := center + 1 + j
		b := a + 1
		if up {
			faces = append(faces, common.Face{center, b, a})
		} else {
			faces = append(faces, common.Face{center, a, b})
		}
	}
	return faces
}
