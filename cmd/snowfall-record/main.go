// Command snowfall-record steps the field headlessly and writes an MJPEG
// AVI of the frames plus an activity chart.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"snowfall/internal/app"
	"snowfall/internal/record"
	"snowfall/pkg/snow"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	frames := flag.Int("frames", 300, "number of frames to record")
	out := flag.String("out", "snowfall.avi", "AVI output path")
	chart := flag.String("chart", "", "PNG path for the activity chart (empty skips it)")
	opts := record.DefaultOptions()
	flag.IntVar(&opts.FPS, "fps", opts.FPS, "video frame rate")
	flag.IntVar(&opts.Quality, "quality", opts.Quality, "JPEG quality 1-100")
	flag.Parse()
	opts.Scale = cfg.Scale

	field, err := snow.NewField(snow.FromMap(cfg.SimConfig()))
	if err != nil {
		log.Fatal(err)
	}
	field.Reset(cfg.Seed)

	size := field.Size()
	rec, err := record.New(*out, size.W, size.H, opts)
	if err != nil {
		log.Fatalf("open recorder: %v", err)
	}

	var activity record.Activity
	if err := rec.AddFrame(field.Pixels()); err != nil {
		log.Fatalf("frame 0: %v", err)
	}
	for i := 0; i < *frames; i++ {
		field.Step()
		activity.Add(field.Stats())
		if err := rec.AddFrame(field.Pixels()); err != nil {
			log.Fatalf("frame %d: %v", field.Frame(), err)
		}
	}
	if err := rec.Close(); err != nil {
		log.Fatalf("close recorder: %v", err)
	}
	fmt.Printf("wrote %d frames to %s\n", rec.Frames(), *out)

	if *chart == "" {
		return
	}
	f, err := os.Create(*chart)
	if err != nil {
		log.Fatalf("create chart: %v", err)
	}
	if err := activity.WriteChart(f, 960, 480); err != nil {
		f.Close()
		log.Fatalf("render chart: %v", err)
	}
	if err := f.Close(); err != nil {
		log.Fatalf("close chart: %v", err)
	}
	fmt.Printf("wrote activity chart to %s\n", *chart)
}
