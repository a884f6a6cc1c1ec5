// Package options holds the command-line configuration of the demo.
package options

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

const (
	BackendGLFW     = "glfw"
	BackendSDL      = "sdl"
	BackendHeadless = "headless"
)

type Options struct {
	VertexShader   string
	FragmentShader string
	Backend        string
	Width          int
	Height         int
	Speed          float64 // rotation, radians per second
	Translate      bool    // run GLSL ES sources through the translator
	Verbose        bool
	Help           bool

	// Recording
	Record     bool
	Duration   float64
	FPS        int
	OutputFile string
	FFMPEGPath string
}

// envDefault returns the environment value for key or def.
func envDefault(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

func envDefaultFloat(key string, def float64) float64 {
	if v, ok := os.LookupEnv(key); ok {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
		log.Warnf("Ignoring %s=%q: not a number", key, v)
	}
	return def
}

// LoadEnv loads variables from the given .env files into the process
// environment without overriding ones already set. Missing files are
// skipped.
func LoadEnv(files ...string) {
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			log.Warnf("Failed to load %s: %v", f, err)
		}
	}
}

// Parse builds Options from args. Environment variables (SPINCUBE_*) supply
// defaults that flags override.
func Parse(fs *flag.FlagSet, args []string) (*Options, error) {
	o := &Options{}
	fs.StringVar(&o.VertexShader, "vertex", envDefault("SPINCUBE_VERTEX", "shaders/cube.vert"), "Path to the vertex shader")
	fs.StringVar(&o.FragmentShader, "fragment", envDefault("SPINCUBE_FRAGMENT", "shaders/cube.frag"), "Path to the fragment shader")
	fs.StringVar(&o.Backend, "backend", envDefault("SPINCUBE_BACKEND", BackendGLFW), "Window backend: glfw, sdl or headless")
	fs.IntVar(&o.Width, "width", 800, "Width of the window or output")
	fs.IntVar(&o.Height, "height", 600, "Height of the window or output")
	fs.Float64Var(&o.Speed, "speed", envDefaultFloat("SPINCUBE_SPEED", 1.0), "Rotation speed in radians per second")
	fs.BoolVar(&o.Translate, "translate", false, "Translate '#version 300 es' sources to desktop GLSL")
	fs.BoolVar(&o.Verbose, "verbose", false, "Enable debug logging")
	fs.BoolVar(&o.Help, "help", false, "Show help message")

	fs.BoolVar(&o.Record, "record", false, "Render offscreen and encode to a video file")
	fs.Float64Var(&o.Duration, "duration", 10.0, "Duration to record in seconds")
	fs.IntVar(&o.FPS, "fps", 60, "Frames per second for recording")
	fs.StringVar(&o.OutputFile, "output", "output.mp4", "Output file name for recording")
	fs.StringVar(&o.FFMPEGPath, "ffmpeg", envDefault("SPINCUBE_FFMPEG", ""), "Path to ffmpeg executable")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return o, o.Validate()
}

// Validate checks option values for consistency.
func (o *Options) Validate() error {
	switch o.Backend {
	case BackendGLFW, BackendSDL, BackendHeadless:
	default:
		return fmt.Errorf("unknown backend %q", o.Backend)
	}
	if o.Width <= 0 || o.Height <= 0 {
		return fmt.Errorf("invalid size %dx%d", o.Width, o.Height)
	}
	if o.Record {
		if o.FPS <= 0 {
			return fmt.Errorf("fps must be positive, got %d", o.FPS)
		}
		if o.Duration <= 0 {
			return fmt.Errorf("duration must be positive, got %g", o.Duration)
		}
		if o.OutputFile == "" {
			return fmt.Errorf("record mode needs an output file")
		}
	}
	if o.Backend == BackendHeadless && !o.Record {
		return fmt.Errorf("the headless backend can only be used with -record")
	}
	return nil
}
