package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/halvorsen/seedforge/analyzer"
	"github.com/halvorsen/seedforge/common"
	"github.com/halvorsen/seedforge/render"
	"github.com/halvorsen/seedforge/timeline"
)

func runRenderFrames(args []string) error {
	// --range takes two positional values (START END), which the stdlib
	// flag package cannot express as a single flag; extract it manually
	// before handing the rest to flag.Parse.
	args, rangeStart, rangeEnd, hasRange, err := extractRange(args)
	if err != nil {
		return fmt.Errorf("render-frames: %w", err)
	}

	fs := flag.NewFlagSet("render-frames", flag.ExitOnError)
	pipePPM := fs.Bool("pipe-ppm", false, "write a concatenated P6 stream to stdout instead of frame_%06d.ppm files")
	maxFrames := fs.Int("max-frames", 0, "cap the number of frames rendered (0 = no cap)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	rest := fs.Args()
	if len(rest) < 2 {
		return fmt.Errorf("render-frames: usage: render-frames <audio.wav> <seed-hex>")
	}
	wavPath := rest[0]
	seedHex := rest[1]

	seed, err := common.ParseSeed(seedHex)
	if err != nil {
		return fmt.Errorf("render-frames: %w", err)
	}

	if _, err := os.Stat(wavPath); err != nil {
		return fmt.Errorf("render-frames: missing input %s: %w", wavPath, err)
	}

	src, err := loadSource(wavPath)
	if err != nil {
		return fmt.Errorf("render-frames: %w", err)
	}

	mt := common.NewMusicTime(seed)
	d := render.NewDriver(seed, src, mt.StepSamples, mt.SampleRate)

	start, end := 0, d.TotalFrames()
	if hasRange {
		start, end = rangeStart, rangeEnd
		if end > d.TotalFrames() {
			end = d.TotalFrames()
		}
		if start >= d.TotalFrames() {
			return fmt.Errorf("render-frames: range start %d is beyond total_frames %d", start, d.TotalFrames())
		}
	}
	if *maxFrames > 0 && start+*maxFrames < end {
		end = start + *maxFrames
	}

	if *pipePPM {
		pw := render.NewPipeWriter(os.Stdout)
		if err := d.Run(pw, start, end); err != nil {
			return err
		}
		if err := pw.Flush(); err != nil {
			return fmt.Errorf("render-frames: %w", err)
		}
		logVerbose("piped frames [%d,%d)", start, end)
		return nil
	}

	fw := render.NewFileWriter(".")
	if err := d.Run(fw, start, end); err != nil {
		return err
	}
	logVerbose("wrote frames [%d,%d) to frame_%%06d.ppm", start, end)
	return nil
}

// loadSource prefers the timeline sidecar (<audio.wav>.json) when present,
// falling back to WAV analysis otherwise (spec.md §6).
func loadSource(wavPath string) (analyzer.Source, error) {
	sidecarPath := wavPath + ".json"
	if f, err := os.Open(sidecarPath); err == nil {
		defer f.Close()
		tl, err := timeline.Decode(f)
		if err != nil {
			return nil, fmt.Errorf("decode sidecar: %w", err)
		}
		logVerbose("using timeline sidecar %s", sidecarPath)
		return analyzer.NewTimelineSource(tl), nil
	}

	f, err := os.Open(wavPath)
	if err != nil {
		return nil, fmt.Errorf("open wav: %w", err)
	}
	defer f.Close()
	logVerbose("no sidecar found, analyzing %s", wavPath)
	return analyzer.NewWAVSource(f)
}

// extractRange pulls "--range START END" out of args (in any position)
// and returns the remaining args alongside the parsed bounds.
func extractRange(args []string) (rest []string, start, end int, found bool, err error) {
	for i := 0; i < len(args); i++ {
		if args[i] != "--range" {
			rest = append(rest, args[i])
			continue
		}
		if i+2 >= len(args) {
			return nil, 0, 0, false, fmt.Errorf("--range requires START and END")
		}
		if _, err := fmt.Sscanf(args[i+1], "%d", &start); err != nil {
			return nil, 0, 0, false, fmt.Errorf("invalid --range START %q: %w", args[i+1], err)
		}
		if _, err := fmt.Sscanf(args[i+2], "%d", &end); err != nil {
			return nil, 0, 0, false, fmt.Errorf("invalid --range END %q: %w", args[i+2], err)
		}
		if start < 0 || end < start {
			return nil, 0, 0, false, fmt.Errorf("--range end must be >= start >= 0")
		}
		found = true
		i += 2
	}
	return rest, start, end, found, nil
}
