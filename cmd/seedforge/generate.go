package main

import (
	"flag"
	"fmt"

	"github.com/halvorsen/seedforge/audio"
	"github.com/halvorsen/seedforge/common"
)

func runGenerate(args []string) error {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	melodyOnlyDelay := fs.Bool("melody-only-delay", false, "route only the melody voice through the tape delay")
	if err := fs.Parse(args); err != nil {
		return err
	}
	rest := fs.Args()
	if len(rest) < 1 {
		return fmt.Errorf("generate: seed-hex is required")
	}
	seedHex := rest[0]
	out := "out.wav"
	if len(rest) >= 2 {
		out = rest[1]
	}

	seed, err := common.ParseSeed(seedHex)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	logVerbose("generating segment for seed %s", common.FormatSeed(seed))

	g := audio.NewGenerator(seed, *melodyOnlyDelay)
	left, right, err := g.Generate()
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	if err := audio.WriteWAVFile(out, left, right, g.MusicTime().SampleRate); err != nil {
		return fmt.Errorf("generate: %w", err)
	}
	logVerbose("wrote %s (%d samples)", out, len(left))
	return nil
}
