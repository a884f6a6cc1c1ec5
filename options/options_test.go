package options_test

import (
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/richinsley/spincube/options"
)

func parse(t *testing.T, args ...string) (*options.Options, error) {
	t.Helper()
	fs := flag.NewFlagSet("spincube", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return options.Parse(fs, args)
}

func TestParseDefaults(t *testing.T) {
	o, err := parse(t)
	if err != nil {
		t.Fatal(err)
	}
	if o.VertexShader != "shaders/cube.vert" || o.FragmentShader != "shaders/cube.frag" {
		t.Errorf("unexpected shader defaults %q %q", o.VertexShader, o.FragmentShader)
	}
	if o.Backend != options.BackendGLFW {
		t.Errorf("backend = %q, want glfw", o.Backend)
	}
	if o.Width != 800 || o.Height != 600 {
		t.Errorf("size = %dx%d", o.Width, o.Height)
	}
}

func TestParseEnvironmentDefaults(t *testing.T) {
	t.Setenv("SPINCUBE_VERTEX", "a.vert")
	t.Setenv("SPINCUBE_BACKEND", "sdl")
	t.Setenv("SPINCUBE_SPEED", "2.5")

	o, err := parse(t, "-fragment", "b.frag")
	if err != nil {
		t.Fatal(err)
	}
	if o.VertexShader != "a.vert" {
		t.Errorf("vertex = %q, want a.vert", o.VertexShader)
	}
	if o.FragmentShader != "b.frag" {
		t.Errorf("fragment = %q, want b.frag", o.FragmentShader)
	}
	if o.Backend != options.BackendSDL {
		t.Errorf("backend = %q, want sdl", o.Backend)
	}
	if o.Speed != 2.5 {
		t.Errorf("speed = %g, want 2.5", o.Speed)
	}
}

func TestFlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("SPINCUBE_BACKEND", "sdl")
	o, err := parse(t, "-backend", "glfw")
	if err != nil {
		t.Fatal(err)
	}
	if o.Backend != options.BackendGLFW {
		t.Errorf("backend = %q, want glfw", o.Backend)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		args []string
		ok   bool
	}{
		{"defaults", nil, true},
		{"unknown backend", []string{"-backend", "vulkan"}, false},
		{"zero width", []string{"-width", "0"}, false},
		{"record", []string{"-record", "-backend", "headless"}, true},
		{"record zero fps", []string{"-record", "-fps", "0"}, false},
		{"record no output", []string{"-record", "-output", ""}, false},
		{"headless without record", []string{"-backend", "headless"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := parse(t, tt.args...)
			if (err == nil) != tt.ok {
				t.Errorf("err = %v, want ok=%v", err, tt.ok)
			}
		})
	}
}

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	if err := os.WriteFile(path, []byte("SPINCUBE_FFMPEG=/opt/ffmpeg/bin/ffmpeg\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SPINCUBE_FFMPEG", "")
	os.Unsetenv("SPINCUBE_FFMPEG")

	options.LoadEnv(filepath.Join(dir, "missing.env"), path)

	o, err := parse(t)
	if err != nil {
		t.Fatal(err)
	}
	if o.FFMPEGPath != "/opt/ffmpeg/bin/ffmpeg" {
		t.Errorf("ffmpeg = %q, want value from .env", o.FFMPEGPath)
	}
}
