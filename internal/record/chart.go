package record

import (
	"errors"
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"snowfall/pkg/snow"
)

// ErrTooFewFrames is returned when a chart is requested for fewer than two frames.
var ErrTooFewFrames = errors.New("record: need at least two frames to chart")

// Activity collects per-frame counters for charting.
type Activity struct {
	Frames    []float64
	Moved     []float64
	Particles []float64
}

// Add appends the counters of one frame.
func (a *Activity) Add(st snow.Stats) {
	a.Frames = append(a.Frames, float64(st.Frame))
	a.Moved = append(a.Moved, float64(st.Moved))
	a.Particles = append(a.Particles, float64(st.Particles))
}

// Len reports the number of recorded frames.
func (a *Activity) Len() int { return len(a.Frames) }

// WriteChart renders flakes and moves per frame as a PNG.
func (a *Activity) WriteChart(w io.Writer, width, height int) error {
	if a.Len() < 2 {
		return ErrTooFewFrames
	}
	graph := chart.Chart{
		Width:  width,
		Height: height,
		XAxis: chart.XAxis{
			Name:  "frame",
			Style: chart.Style{FontSize: 9},
			ValueFormatter: func(v interface{}) string {
				return fmt.Sprintf("%d", int(v.(float64)))
			},
		},
		YAxis: chart.YAxis{
			Name:  "cells",
			Style: chart.Style{FontSize: 9},
		},
		Series: []chart.Series{
			chart.ContinuousSeries{
				Name:    "flakes",
				XValues: a.Frames,
				YValues: a.Particles,
				Style:   chart.Style{StrokeColor: drawing.Color{R: 90, G: 140, B: 220, A: 255}, StrokeWidth: 2},
			},
			chart.ContinuousSeries{
				Name:    "moved",
				XValues: a.Frames,
				YValues: a.Moved,
				Style:   chart.Style{StrokeColor: chart.ColorRed, StrokeWidth: 2},
			},
		},
	}
	graph.Elements = []chart.Renderable{chart.Legend(&graph)}
	if err := graph.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("record: render chart: %w", err)
	}
	return nil
}
