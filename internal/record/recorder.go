// Package record captures snowfall runs to MJPEG video and summary charts.
package record

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"image/jpeg"

	"github.com/icza/mjpeg"

	"snowfall/internal/render"
)

// ErrFrameSize is returned when a frame does not match the recorder grid.
var ErrFrameSize = errors.New("record: frame size mismatch")

// Options controls video output.
type Options struct {
	Scale   int
	FPS     int
	Quality int
	// Background shows through empty cells.
	Background color.RGBA
}

// DefaultOptions returns 4x scale at 30 fps on a dark blue sky.
func DefaultOptions() Options {
	return Options{Scale: 4, FPS: 30, Quality: 90, Background: color.RGBA{R: 12, G: 18, B: 38, A: 255}}
}

// Recorder appends decoded frames to an AVI file.
type Recorder struct {
	w, h   int
	opts   Options
	avi    mjpeg.AviWriter
	buf    bytes.Buffer
	frames int
}

// New creates path and prepares it for w*h grids.
func New(path string, w, h int, opts Options) (*Recorder, error) {
	if opts.Scale <= 0 {
		opts.Scale = 1
	}
	if opts.FPS <= 0 {
		opts.FPS = 30
	}
	if opts.Quality <= 0 || opts.Quality > 100 {
		opts.Quality = jpeg.DefaultQuality
	}
	avi, err := mjpeg.New(path, int32(w*opts.Scale), int32(h*opts.Scale), int32(opts.FPS))
	if err != nil {
		return nil, fmt.Errorf("record: create %s: %w", path, err)
	}
	return &Recorder{w: w, h: h, opts: opts, avi: avi}, nil
}

// AddFrame encodes one frame of decoded pixels.
func (r *Recorder) AddFrame(pixels []uint32) error {
	if len(pixels) != r.w*r.h {
		return fmt.Errorf("%w: got %d pixels, need %d", ErrFrameSize, len(pixels), r.w*r.h)
	}
	img := render.Image(pixels, r.w, r.h, r.opts.Scale, r.opts.Background)
	r.buf.Reset()
	if err := jpeg.Encode(&r.buf, img, &jpeg.Options{Quality: r.opts.Quality}); err != nil {
		return fmt.Errorf("record: encode frame %d: %w", r.frames, err)
	}
	if err := r.avi.AddFrame(r.buf.Bytes()); err != nil {
		return fmt.Errorf("record: add frame %d: %w", r.frames, err)
	}
	r.frames++
	return nil
}

// Frames reports how many frames were written.
func (r *Recorder) Frames() int { return r.frames }

// Close finalizes the AVI index.
func (r *Recorder) Close() error {
	return r.avi.Close()
}
