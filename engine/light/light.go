// Package light defines the point light illuminating the 3D scene.
package light

import "github.com/go-gl/mathgl/mgl32"

type mode int

const (
	modeAbsolute mode = iota
	modeStickToCamera
)

// Light is the single point light of a scene. It either sits at a fixed
// world-space position or follows the active camera's eye from frame to
// frame.
type Light struct {
	mode     mode
	position mgl32.Vec3
}

// Absolute returns a light fixed at a world-space position.
//
// Parameters:
//   - position: world-space position of the light
//
// Returns:
//   - Light: the fixed light
func Absolute(position mgl32.Vec3) Light {
	return Light{mode: modeAbsolute, position: position}
}

// StickToCamera returns a light that follows the active camera.
func StickToCamera() Light {
	return Light{mode: modeStickToCamera}
}

// IsStickToCamera reports whether the light follows the camera.
func (l Light) IsStickToCamera() bool {
	return l.mode == modeStickToCamera
}

// Position resolves the world-space position of the light for the current
// frame.
//
// Parameters:
//   - eye: the active camera's eye position
//
// Returns:
//   - mgl32.Vec3: the fixed position, or eye when sticking to the camera
func (l Light) Position(eye mgl32.Vec3) mgl32.Vec3 {
	if l.mode == modeStickToCamera {
		return eye
	}
	return l.position
}
