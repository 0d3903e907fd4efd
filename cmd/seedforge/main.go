// Command seedforge is the CLI entry point: it dispatches to the three
// subcommands of spec.md §6 (generate, export-timeline, render-frames).
package main

import (
	"fmt"
	"log"
	"os"
)

var verbose = os.Getenv("VERBOSE") == "1"

// logger emits progress diagnostics to stderr only when VERBOSE=1; it never
// affects audio or pixel output (spec.md §6).
var logger = newLogger()

func newLogger() *log.Logger {
	if verbose {
		return log.New(os.Stderr, "seedforge: ", log.LstdFlags)
	}
	return log.New(os.Stderr, "seedforge: ", 0)
}

func logVerbose(format string, args ...any) {
	if verbose {
		logger.Printf(format, args...)
	}
}

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "generate", "generate_segment":
		err = runGenerate(os.Args[2:])
	case "export-timeline", "export_timeline":
		err = runExportTimeline(os.Args[2:])
	case "render-frames", "generate_frames":
		err = runRenderFrames(os.Args[2:])
	default:
		fmt.Fprintf(os.Stderr, "seedforge: unknown command %q\n", os.Args[1])
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "seedforge: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: seedforge <command> [flags]")
	fmt.Fprintln(os.Stderr, "commands:")
	fmt.Fprintln(os.Stderr, "  generate <seed-hex> [out.wav]")
	fmt.Fprintln(os.Stderr, "  export-timeline <seed-hex> [out.json]")
	fmt.Fprintln(os.Stderr, "  render-frames <audio.wav> <seed-hex> [--pipe-ppm] [--range START END] [--max-frames N]")
}
