package common

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func assertVec3Near(t *testing.T, expected, actual mgl32.Vec3) {
	t.Helper()
	assert.InDelta(t, expected.X(), actual.X(), 1e-5)
	assert.InDelta(t, expected.Y(), actual.Y(), 1e-5)
	assert.InDelta(t, expected.Z(), actual.Z(), 1e-5)
}

func assertVec2Near(t *testing.T, expected, actual mgl32.Vec2) {
	t.Helper()
	assert.InDelta(t, expected.X(), actual.X(), 1e-5)
	assert.InDelta(t, expected.Y(), actual.Y(), 1e-5)
}

func TestIso3MulAppliesRhsFirst(t *testing.T) {
	rot := Iso3Rotation(mgl32.Vec3{0, 0, float32(math.Pi / 2)})
	trans := Iso3Translation(1, 0, 0)

	// rot * trans moves along X first, then rotates about the origin.
	got := rot.Mul(trans).TransformPoint(mgl32.Vec3{})
	assertVec3Near(t, mgl32.Vec3{0, 1, 0}, got)

	// trans * rot rotates in place first, so the origin just translates.
	got = trans.Mul(rot).TransformPoint(mgl32.Vec3{})
	assertVec3Near(t, mgl32.Vec3{1, 0, 0}, got)
}

func TestIso3InverseRoundTrip(t *testing.T) {
	iso := Iso3FromParts(
		mgl32.Vec3{1, -2, 3},
		mgl32.QuatRotate(0.7, mgl32.Vec3{0, 1, 0}),
	)
	p := mgl32.Vec3{4, 5, -6}
	assertVec3Near(t, p, iso.Inverse().TransformPoint(iso.TransformPoint(p)))

	ident := iso.Mul(iso.Inverse())
	assertVec3Near(t, mgl32.Vec3{}, ident.Translation)
	assert.InDelta(t, 1, float64(ident.Rotation.W), 1e-5)
}

func TestIso3TransformVectorIgnoresTranslation(t *testing.T) {
	iso := Iso3FromParts(
		mgl32.Vec3{10, 10, 10},
		mgl32.QuatRotate(float32(math.Pi/2), mgl32.Vec3{0, 0, 1}),
	)
	assertVec3Near(t, mgl32.Vec3{0, 1, 0}, iso.TransformVector(mgl32.Vec3{1, 0, 0}))
}

func TestIso3Mat4MatchesTransformPoint(t *testing.T) {
	iso := Iso3FromParts(
		mgl32.Vec3{1, 2, 3},
		mgl32.QuatRotate(1.1, mgl32.Vec3{1, 1, 0}.Normalize()),
	)
	p := mgl32.Vec3{-2, 0.5, 4}
	h := iso.Mat4().Mul4x1(p.Vec4(1))
	assertVec3Near(t, iso.TransformPoint(p), h.Vec3())
}

func TestIso3LookAtRHInverseSitsAtEye(t *testing.T) {
	eye := mgl32.Vec3{0, 0, 5}
	view := Iso3LookAtRH(eye, mgl32.Vec3{}, mgl32.Vec3{0, 1, 0})

	// The view transform takes the eye to the viewer's origin, and its
	// inverse places the viewer back at the eye.
	assertVec3Near(t, mgl32.Vec3{}, view.TransformPoint(eye))
	assertVec3Near(t, eye, view.Inverse().Translation)
}

func TestQuatFromScaledAxis(t *testing.T) {
	assert.Equal(t, mgl32.QuatIdent(), QuatFromScaledAxis(mgl32.Vec3{}))

	q := QuatFromScaledAxis(mgl32.Vec3{0, 0, float32(math.Pi / 2)})
	assertVec3Near(t, mgl32.Vec3{0, 1, 0}, q.Rotate(mgl32.Vec3{1, 0, 0}))
}

func TestIso2MulAppliesRhsFirst(t *testing.T) {
	rot := Iso2FromParts(mgl32.Vec2{}, float32(math.Pi/2))
	trans := Iso2Translation(1, 0)

	got := rot.Mul(trans).TransformPoint(mgl32.Vec2{})
	assertVec2Near(t, mgl32.Vec2{0, 1}, got)

	got = trans.Mul(rot).TransformPoint(mgl32.Vec2{})
	assertVec2Near(t, mgl32.Vec2{1, 0}, got)
}

func TestIso2InverseRoundTrip(t *testing.T) {
	iso := Iso2FromParts(mgl32.Vec2{3, -1}, 0.4)
	p := mgl32.Vec2{-2, 7}
	assertVec2Near(t, p, iso.Inverse().TransformPoint(iso.TransformPoint(p)))
}

func TestIso2Mat3MatchesTransformPoint(t *testing.T) {
	iso := Iso2FromParts(mgl32.Vec2{1, 2}, 0.9)
	p := mgl32.Vec2{4, -3}
	h := iso.Mat3().Mul3x1(mgl32.Vec3{p.X(), p.Y(), 1})
	assertVec2Near(t, iso.TransformPoint(p), mgl32.Vec2{h.X(), h.Y()})
}
