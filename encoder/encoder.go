// Package encoder pipes raw RGBA frames into an ffmpeg process.
package encoder

import (
	"fmt"
	"io"
	"sync"

	log "github.com/sirupsen/logrus"
	ffmpeg "github.com/u2takey/ffmpeg-go"

	"github.com/richinsley/spincube/renderer"
)

// Config describes the raw input stream and the output file.
type Config struct {
	Width      int
	Height     int
	FPS        int
	OutputFile string
	FFMPEGPath string
	Codec      string // defaults to libx264
}

// Encoder feeds frames to ffmpeg over stdin. It is safe to call WriteFrame
// from one goroutine while another waits in Close.
type Encoder struct {
	cfg    Config
	pipe   *io.PipeWriter
	errc   chan error
	mu     sync.Mutex
	closed bool
	frames int64
}

func (c Config) args() (inputArgs ffmpeg.KwArgs, outputArgs ffmpeg.KwArgs) {
	inputArgs = ffmpeg.KwArgs{
		"f":       "rawvideo",
		"pix_fmt": "rgba",
		"s":       fmt.Sprintf("%dx%d", c.Width, c.Height),
		"r":       fmt.Sprintf("%d", c.FPS),
	}
	codec := c.Codec
	if codec == "" {
		codec = "libx264"
	}
	outputArgs = ffmpeg.KwArgs{
		"c:v":     codec,
		"pix_fmt": "yuv420p",
		"r":       fmt.Sprintf("%d", c.FPS),
	}
	return inputArgs, outputArgs
}

func (c Config) frameSize() int {
	return c.Width * c.Height * 4
}

// command builds the ffmpeg invocation reading from r.
func (c Config) command(r io.Reader) *ffmpeg.Stream {
	inputArgs, outputArgs := c.args()
	cmd := ffmpeg.Input("pipe:", inputArgs).
		Output(c.OutputFile, outputArgs).
		OverWriteOutput().WithInput(r).ErrorToStdOut()
	if c.FFMPEGPath != "" {
		cmd = cmd.SetFfmpegPath(c.FFMPEGPath)
	}
	return cmd
}

// New starts ffmpeg. Frames written afterwards must be exactly
// Width*Height*4 bytes.
func New(cfg Config) (*Encoder, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 || cfg.FPS <= 0 {
		return nil, fmt.Errorf("invalid encoder config %dx%d@%d", cfg.Width, cfg.Height, cfg.FPS)
	}
	if cfg.OutputFile == "" {
		return nil, fmt.Errorf("encoder needs an output file")
	}

	pr, pw := io.Pipe()
	e := &Encoder{
		cfg:  cfg,
		pipe: pw,
		errc: make(chan error, 1),
	}

	cmd := cfg.command(pr)
	log.WithField("args", cmd.GetArgs()).Debug("Starting ffmpeg")
	go func() {
		err := cmd.Run()
		// unblock any writer if ffmpeg exits early
		pr.CloseWithError(fmt.Errorf("ffmpeg exited: %v", err))
		e.errc <- err
	}()
	return e, nil
}

// WriteFrame sends one frame to ffmpeg.
func (e *Encoder) WriteFrame(f *renderer.Frame) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return fmt.Errorf("encoder is closed")
	}
	if len(f.Pixels) != e.cfg.frameSize() {
		return fmt.Errorf("frame %d is %d bytes, want %d", f.PTS, len(f.Pixels), e.cfg.frameSize())
	}
	if _, err := e.pipe.Write(f.Pixels); err != nil {
		return err
	}
	e.frames++
	return nil
}

// Close ends the input stream and waits for ffmpeg to finish writing.
func (e *Encoder) Close() error {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return nil
	}
	e.closed = true
	e.pipe.Close()
	e.mu.Unlock()

	if err := <-e.errc; err != nil {
		return fmt.Errorf("ffmpeg failed: %w", err)
	}
	log.Infof("Encoded %d frames to %s", e.frames, e.cfg.OutputFile)
	return nil
}

var _ renderer.FrameSink = (*Encoder)(nil)
