package common

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// Isometry3 is a rigid-body transformation in 3D space: a rotation followed
// by a translation. Scaling is intentionally kept out of this type; the scene
// graph tracks non-uniform scale separately so rotations stay orthonormal.
type Isometry3 struct {
	// Translation is the positional component of the transformation.
	Translation mgl32.Vec3
	// Rotation is the orientational component, kept as a unit quaternion.
	Rotation mgl32.Quat
}

// IdentityIso3 returns the identity rigid-body transformation.
//
// Returns:
//   - Isometry3: zero translation and identity rotation
func IdentityIso3() Isometry3 {
	return Isometry3{Rotation: mgl32.QuatIdent()}
}

// Iso3FromParts builds an isometry from an explicit translation and rotation.
//
// Parameters:
//   - translation: positional component
//   - rotation: orientational component (assumed unit-length)
//
// Returns:
//   - Isometry3: the combined rigid-body transformation
func Iso3FromParts(translation mgl32.Vec3, rotation mgl32.Quat) Isometry3 {
	return Isometry3{Translation: translation, Rotation: rotation}
}

// Iso3Translation builds a pure translation.
func Iso3Translation(x, y, z float32) Isometry3 {
	return Isometry3{Translation: mgl32.Vec3{x, y, z}, Rotation: mgl32.QuatIdent()}
}

// Iso3Rotation builds a pure rotation from an axis-angle vector whose
// direction is the rotation axis and whose length is the angle in radians.
// The zero vector yields the identity rotation.
func Iso3Rotation(axisAngle mgl32.Vec3) Isometry3 {
	return Isometry3{Rotation: QuatFromScaledAxis(axisAngle)}
}

// Iso3LookAtRH builds the right-handed view transformation placing a viewer
// at eye looking toward target. The result maps world-space points into the
// viewer's local frame, matching the conventions of mgl32.LookAtV.
//
// Parameters:
//   - eye: viewer position in world space
//   - target: point the viewer looks at
//   - up: approximate up direction, must not be collinear with target-eye
//
// Returns:
//   - Isometry3: world-to-viewer transformation
func Iso3LookAtRH(eye, target, up mgl32.Vec3) Isometry3 {
	m := mgl32.LookAtV(eye, target, up)
	return Isometry3{
		Translation: mgl32.Vec3{m[12], m[13], m[14]},
		Rotation:    mgl32.Mat4ToQuat(m),
	}
}

// Mul composes two isometries. The result applies rhs first, then i.
//
// Parameters:
//   - rhs: transformation applied first
//
// Returns:
//   - Isometry3: i * rhs
func (i Isometry3) Mul(rhs Isometry3) Isometry3 {
	return Isometry3{
		Translation: i.Translation.Add(i.Rotation.Rotate(rhs.Translation)),
		Rotation:    i.Rotation.Mul(rhs.Rotation).Normalize(),
	}
}

// Inverse returns the transformation undoing i.
func (i Isometry3) Inverse() Isometry3 {
	inv := i.Rotation.Conjugate()
	return Isometry3{
		Translation: inv.Rotate(i.Translation).Mul(-1),
		Rotation:    inv,
	}
}

// TransformPoint applies the full transformation (rotation then translation)
// to a point.
func (i Isometry3) TransformPoint(p mgl32.Vec3) mgl32.Vec3 {
	return i.Rotation.Rotate(p).Add(i.Translation)
}

// TransformVector applies only the rotational part, as appropriate for
// directions and normals under a rigid-body transformation.
func (i Isometry3) TransformVector(v mgl32.Vec3) mgl32.Vec3 {
	return i.Rotation.Rotate(v)
}

// Mat4 expands the isometry into a homogeneous 4x4 matrix.
func (i Isometry3) Mat4() mgl32.Mat4 {
	m := i.Rotation.Mat4()
	m[12] = i.Translation.X()
	m[13] = i.Translation.Y()
	m[14] = i.Translation.Z()
	return m
}

// RotationMat3 returns the rotational part as a 3x3 matrix, used for
// transforming normals without picking up the translation.
func (i Isometry3) RotationMat3() mgl32.Mat3 {
	return i.Rotation.Mat4().Mat3()
}

// QuatFromScaledAxis converts an axis-angle vector (direction = axis,
// length = angle in radians) into a unit quaternion. The zero vector maps to
// the identity rotation.
func QuatFromScaledAxis(axisAngle mgl32.Vec3) mgl32.Quat {
	angle := axisAngle.Len()
	if angle == 0 {
		return mgl32.QuatIdent()
	}
	return mgl32.QuatRotate(angle, axisAngle.Mul(1/angle))
}

// Isometry2 is a rigid-body transformation in the plane: a rotation by an
// angle followed by a translation.
type Isometry2 struct {
	// Translation is the positional component of the transformation.
	Translation mgl32.Vec2
	// Rotation is the angle of the rotational component, in radians.
	Rotation float32
}

// IdentityIso2 returns the identity planar transformation.
func IdentityIso2() Isometry2 {
	return Isometry2{}
}

// Iso2FromParts builds a planar isometry from a translation and an angle in
// radians.
func Iso2FromParts(translation mgl32.Vec2, rotation float32) Isometry2 {
	return Isometry2{Translation: translation, Rotation: rotation}
}

// Iso2Translation builds a pure planar translation.
func Iso2Translation(x, y float32) Isometry2 {
	return Isometry2{Translation: mgl32.Vec2{x, y}}
}

// Mul composes two planar isometries. The result applies rhs first, then i.
func (i Isometry2) Mul(rhs Isometry2) Isometry2 {
	return Isometry2{
		Translation: i.Translation.Add(rotateVec2(rhs.Translation, i.Rotation)),
		Rotation:    i.Rotation + rhs.Rotation,
	}
}

// Inverse returns the transformation undoing i.
func (i Isometry2) Inverse() Isometry2 {
	return Isometry2{
		Translation: rotateVec2(i.Translation, -i.Rotation).Mul(-1),
		Rotation:    -i.Rotation,
	}
}

// TransformPoint applies the full transformation (rotation then translation)
// to a planar point.
func (i Isometry2) TransformPoint(p mgl32.Vec2) mgl32.Vec2 {
	return rotateVec2(p, i.Rotation).Add(i.Translation)
}

// TransformVector applies only the rotational part.
func (i Isometry2) TransformVector(v mgl32.Vec2) mgl32.Vec2 {
	return rotateVec2(v, i.Rotation)
}

// Mat3 expands the planar isometry into a homogeneous 3x3 matrix.
func (i Isometry2) Mat3() mgl32.Mat3 {
	m := mgl32.Rotate3DZ(i.Rotation)
	m[6] = i.Translation.X()
	m[7] = i.Translation.Y()
	return m
}

// RotationMat2 returns the rotational part as a 2x2 matrix.
func (i Isometry2) RotationMat2() mgl32.Mat2 {
	c := Cos32(i.Rotation)
	s := Sin32(i.Rotation)
	return mgl32.Mat2{c, s, -s, c}
}

// Cos32 is a float32 convenience wrapper over math.Cos.
func Cos32(x float32) float32 { return float32(math.Cos(float64(x))) }

// Sin32 is a float32 convenience wrapper over math.Sin.
func Sin32(x float32) float32 { return float32(math.Sin(float64(x))) }

// Sqrt32 is a float32 convenience wrapper over math.Sqrt.
func Sqrt32(x float32) float32 { return float32(math.Sqrt(float64(x))) }

func rotateVec2(v mgl32.Vec2, angle float32) mgl32.Vec2 {
	c := Cos32(angle)
	s := Sin32(angle)
	return mgl32.Vec2{c*v.X() - s*v.Y(), s*v.X() + c*v.Y()}
}
