package shader

import "testing"

func TestIsWebGL2(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{"#version 300 es\nvoid main() {}", true},
		{"\n  // header\n#version 300 es\n", true},
		{"#version 300 es // webgl2\nvoid main() {}", true},
		{"#version 410 core // desktop es\n", false},
		{"#version 410 core\n", false},
		{"#version 330\n", false},
		{"void main() {}\n#version 300 es\n", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := isWebGL2(tt.code); got != tt.want {
			t.Errorf("isWebGL2(%q) = %v, want %v", tt.code, got, tt.want)
		}
	}
}

func TestZeroLoaderUsesGLDriver(t *testing.T) {
	var l Loader
	if _, ok := l.driver().(GLDriver); !ok {
		t.Errorf("zero Loader driver = %T, want GLDriver", l.driver())
	}

	fake := &Loader{Driver: nopDriver{}}
	if _, ok := fake.driver().(nopDriver); !ok {
		t.Errorf("configured driver replaced: %T", fake.driver())
	}
}

type nopDriver struct{ GLDriver }
