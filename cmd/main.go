package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	log "github.com/sirupsen/logrus"

	"github.com/richinsley/spincube/encoder"
	"github.com/richinsley/spincube/glfwcontext"
	"github.com/richinsley/spincube/graphics"
	"github.com/richinsley/spincube/headless"
	"github.com/richinsley/spincube/options"
	"github.com/richinsley/spincube/renderer"
	"github.com/richinsley/spincube/sdlcontext"
	"github.com/richinsley/spincube/shader"
	"github.com/richinsley/spincube/translator"
)

const windowTitle = "spincube"

func init() {
	runtime.LockOSThread()
}

// openContext creates the context for the selected backend. The returned
// func tears down the context and the backend library.
func openContext(o *options.Options) (graphics.Context, func(), error) {
	visible := !o.Record
	switch o.Backend {
	case options.BackendSDL:
		if err := sdlcontext.InitGraphics(); err != nil {
			return nil, nil, fmt.Errorf("failed to initialize SDL: %w", err)
		}
		ctx, err := sdlcontext.New(o.Width, o.Height, windowTitle, visible)
		if err != nil {
			sdlcontext.TerminateGraphics()
			return nil, nil, fmt.Errorf("failed to create SDL window: %w", err)
		}
		return ctx, func() { ctx.Shutdown(); sdlcontext.TerminateGraphics() }, nil
	case options.BackendHeadless:
		ctx, err := headless.NewHeadless(o.Width, o.Height)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to create headless context: %w", err)
		}
		return ctx, ctx.Shutdown, nil
	default:
		if err := glfwcontext.InitGraphics(); err != nil {
			return nil, nil, fmt.Errorf("failed to initialize GLFW: %w", err)
		}
		ctx, err := glfwcontext.New(o.Width, o.Height, windowTitle, visible)
		if err != nil {
			glfwcontext.TerminateGraphics()
			return nil, nil, fmt.Errorf("failed to create GLFW window: %w", err)
		}
		return ctx, func() { ctx.Shutdown(); glfwcontext.TerminateGraphics() }, nil
	}
}

func newLoader(o *options.Options) (*shader.Loader, error) {
	loader := shader.NewLoader()
	if o.Translate {
		t, err := translator.New()
		if err != nil {
			return nil, err
		}
		loader.Translator = t
	}
	return loader, nil
}

func run(o *options.Options) error {
	ctx, closeContext, err := openContext(o)
	if err != nil {
		return err
	}
	defer closeContext()

	if err := graphics.InitGL(ctx); err != nil {
		return err
	}

	loader, err := newLoader(o)
	if err != nil {
		return err
	}
	program, err := loader.Load(o.VertexShader, o.FragmentShader)
	if err != nil {
		return err
	}

	r, err := renderer.NewRenderer(ctx, program, o.Speed)
	if err != nil {
		program.Delete()
		return fmt.Errorf("failed to create renderer: %w", err)
	}
	defer r.Shutdown()

	if !o.Record {
		log.Info("Starting interactive render loop...")
		r.Run()
		return nil
	}

	enc, err := encoder.New(encoder.Config{
		Width:      o.Width,
		Height:     o.Height,
		FPS:        o.FPS,
		OutputFile: o.OutputFile,
		FFMPEGPath: o.FFMPEGPath,
	})
	if err != nil {
		return err
	}
	log.Info("Starting offscreen render loop...")
	if err := r.RunOffscreen(o.Width, o.Height, o.Duration, o.FPS, enc); err != nil {
		enc.Close()
		return fmt.Errorf("offscreen rendering failed: %w", err)
	}
	if err := enc.Close(); err != nil {
		return err
	}
	log.Infof("Successfully rendered to %s", o.OutputFile)
	return nil
}

func main() {
	options.LoadEnv(".env")

	o, err := options.Parse(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("Invalid options: %v", err)
	}
	if o.Help {
		fmt.Println("Rotating cube demo")
		flag.PrintDefaults()
		return
	}
	if o.Verbose {
		log.SetLevel(log.DebugLevel)
	}

	if err := run(o); err != nil {
		log.Fatalf("%v", err)
	}
}
