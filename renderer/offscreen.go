package renderer

import (
	"fmt"
	"time"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	log "github.com/sirupsen/logrus"
)

// Frame is one rendered RGBA frame, top row first.
type Frame struct {
	Pixels []byte
	PTS    int64
}

// FrameSink consumes rendered frames, e.g. an encoder.
type FrameSink interface {
	WriteFrame(f *Frame) error
}

// OffscreenRenderer is a framebuffer with an RGBA8 colour texture and a
// depth renderbuffer.
type OffscreenRenderer struct {
	fbo               uint32
	textureID         uint32
	depthRenderbuffer uint32
	width             int
	height            int
}

func NewOffscreenRenderer(width, height int) (*OffscreenRenderer, error) {
	or := &OffscreenRenderer{width: width, height: height}

	gl.GenFramebuffers(1, &or.fbo)
	gl.BindFramebuffer(gl.FRAMEBUFFER, or.fbo)
	gl.GenTextures(1, &or.textureID)
	gl.BindTexture(gl.TEXTURE_2D, or.textureID)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(width), int32(height), 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, or.textureID, 0)
	gl.GenRenderbuffers(1, &or.depthRenderbuffer)
	gl.BindRenderbuffer(gl.RENDERBUFFER, or.depthRenderbuffer)
	gl.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH_COMPONENT24, int32(width), int32(height))
	gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_ATTACHMENT, gl.RENDERBUFFER, or.depthRenderbuffer)
	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)

	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.BindRenderbuffer(gl.RENDERBUFFER, 0)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)

	if status != gl.FRAMEBUFFER_COMPLETE {
		or.Destroy()
		return nil, fmt.Errorf("offscreen fbo is not complete: 0x%x", status)
	}
	return or, nil
}

func (or *OffscreenRenderer) Destroy() {
	gl.DeleteFramebuffers(1, &or.fbo)
	gl.DeleteTextures(1, &or.textureID)
	gl.DeleteRenderbuffers(1, &or.depthRenderbuffer)
}

func (or *OffscreenRenderer) Bind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, or.fbo)
}

func (or *OffscreenRenderer) Unbind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
}

// ReadPixels reads the colour attachment as RGBA, top row first.
func (or *OffscreenRenderer) ReadPixels() []byte {
	pixels := make([]byte, or.width*or.height*4)
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, or.fbo)
	gl.ReadBuffer(gl.COLOR_ATTACHMENT0)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(or.width), int32(or.height), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, 0)
	flipRows(pixels, or.width*4)
	return pixels
}

// flipRows reverses the row order of an image in place; GL reads bottom up.
func flipRows(pixels []byte, stride int) {
	if stride <= 0 {
		return
	}
	rows := len(pixels) / stride
	tmp := make([]byte, stride)
	for top, bottom := 0, rows-1; top < bottom; top, bottom = top+1, bottom-1 {
		a := pixels[top*stride : (top+1)*stride]
		b := pixels[bottom*stride : (bottom+1)*stride]
		copy(tmp, a)
		copy(a, b)
		copy(b, tmp)
	}
}

// frameTimes returns the presentation time of every frame in a recording
// of the given duration at fps.
func frameTimes(duration float64, fps int) []float64 {
	if fps <= 0 || duration <= 0 {
		return nil
	}
	n := int(duration*float64(fps) + 0.5)
	times := make([]float64, n)
	for i := range times {
		times[i] = float64(i) / float64(fps)
	}
	return times
}

// RunOffscreen renders duration*fps frames at a fixed timestep and hands
// each to sink.
func (r *Renderer) RunOffscreen(width, height int, duration float64, fps int, sink FrameSink) error {
	or, err := NewOffscreenRenderer(width, height)
	if err != nil {
		return fmt.Errorf("failed to create offscreen renderer: %w", err)
	}
	defer or.Destroy()

	times := frameTimes(duration, fps)
	log.Infof("Rendering %d frames at %dx%d", len(times), width, height)
	start := time.Now()

	for i, t := range times {
		or.Bind()
		r.RenderFrame(t, width, height)
		or.Unbind()

		if err := sink.WriteFrame(&Frame{Pixels: or.ReadPixels(), PTS: int64(i)}); err != nil {
			return fmt.Errorf("failed to write frame %d: %w", i, err)
		}
		r.context.EndFrame()
	}

	elapsed := time.Since(start)
	log.WithFields(log.Fields{
		"frames":  len(times),
		"elapsed": elapsed.Round(time.Millisecond),
	}).Info("Offscreen rendering finished")
	return nil
}
