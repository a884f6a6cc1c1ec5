package renderer

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

var (
	cameraEye    = mgl32.Vec3{4, 3, 3}
	cameraTarget = mgl32.Vec3{0, 0, 0}
	cameraUp     = mgl32.Vec3{0, 1, 0}
	rotationAxis = mgl32.Vec3{0, 1, 0}
)

const (
	fovY  = 45.0
	zNear = 0.1
	zFar  = 100.0
)

// Transforms is the model/view/projection triple for one frame.
type Transforms struct {
	Model      mgl32.Mat4
	View       mgl32.Mat4
	Projection mgl32.Mat4
}

// MVP returns Projection * View * Model.
func (t Transforms) MVP() mgl32.Mat4 {
	return t.Projection.Mul4(t.View).Mul4(t.Model)
}

// FrameTransforms computes the transforms at time t (seconds) for a
// viewport of the given size. The cube turns about +Y at speed radians per
// second.
func FrameTransforms(t, speed float64, width, height int) Transforms {
	aspect := float32(1)
	if width > 0 && height > 0 {
		aspect = float32(width) / float32(height)
	}
	angle := float32(math.Mod(t*speed, 2*math.Pi))
	return Transforms{
		Model:      mgl32.HomogRotate3D(angle, rotationAxis),
		View:       mgl32.LookAtV(cameraEye, cameraTarget, cameraUp),
		Projection: mgl32.Perspective(mgl32.DegToRad(fovY), aspect, zNear, zFar),
	}
}
