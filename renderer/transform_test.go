package renderer

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestFrameTransformsRotation(t *testing.T) {
	tests := []struct {
		name  string
		t     float64
		speed float64
		want  mgl32.Vec3 // image of +X under the model matrix
	}{
		{"start", 0, 1, mgl32.Vec3{1, 0, 0}},
		{"quarter turn", math.Pi / 2, 1, mgl32.Vec3{0, 0, -1}},
		{"half turn at double speed", math.Pi / 2, 2, mgl32.Vec3{-1, 0, 0}},
		{"full turn wraps", 2 * math.Pi, 1, mgl32.Vec3{1, 0, 0}},
		{"stopped", 5, 0, mgl32.Vec3{1, 0, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := FrameTransforms(tt.t, tt.speed, 800, 600)
			got := mgl32.TransformCoordinate(mgl32.Vec3{1, 0, 0}, tr.Model)
			for i := range got {
				if math.Abs(float64(got[i]-tt.want[i])) > 1e-5 {
					t.Errorf("model * +X = %v, want %v", got, tt.want)
					break
				}
			}
		})
	}
}

func TestFrameTransformsCameraLooksAtOrigin(t *testing.T) {
	tr := FrameTransforms(0, 1, 800, 600)
	origin := mgl32.TransformCoordinate(mgl32.Vec3{}, tr.View)
	// The origin lies straight ahead on the view axis.
	if math.Abs(float64(origin.X())) > 1e-5 || math.Abs(float64(origin.Y())) > 1e-5 {
		t.Errorf("origin in view space = %v, want on the -Z axis", origin)
	}
	if origin.Z() >= 0 {
		t.Errorf("origin is behind the camera: %v", origin)
	}
}

func TestFrameTransformsKeepsCubeInFrustum(t *testing.T) {
	tr := FrameTransforms(1.234, 1, 800, 600)
	mvp := tr.MVP()
	for i := 0; i < len(cubeVertices); i += vertexFloats {
		v := mgl32.Vec4{cubeVertices[i], cubeVertices[i+1], cubeVertices[i+2], 1}
		clip := mvp.Mul4x1(v)
		ndc := clip.Vec3().Mul(1 / clip.W())
		for axis := 0; axis < 3; axis++ {
			if ndc[axis] < -1 || ndc[axis] > 1 {
				t.Fatalf("vertex %v leaves the frustum: ndc %v", v, ndc)
			}
		}
	}
}

func TestFrameTransformsAspect(t *testing.T) {
	wide := FrameTransforms(0, 1, 1600, 600).Projection
	square := FrameTransforms(0, 1, 0, 0).Projection
	if wide[0] >= square[0] {
		t.Errorf("wider viewport should shrink x scale: %g >= %g", wide[0], square[0])
	}
	if wide[5] != square[5] {
		t.Errorf("y scale depends only on fov: %g != %g", wide[5], square[5])
	}
}

func TestCubeMesh(t *testing.T) {
	if n := cubeVertexCount(); n != 36 {
		t.Fatalf("cube has %d vertices, want 36", n)
	}
	for i := 0; i < len(cubeVertices); i += vertexFloats {
		for axis := 0; axis < 3; axis++ {
			if c := cubeVertices[i+axis]; c != 1 && c != -1 {
				t.Fatalf("vertex %d coordinate %g is not a unit cube corner", i/vertexFloats, c)
			}
		}
	}
}
