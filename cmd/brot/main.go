// Command brot renders the Mandelbrot set to an image file.
//
// Usage:
//
//	brot [output] [--size WIDTHxHEIGHT] [--preset seahorse] [flags]
//
// The window can be given as a named preset or as explicit corner
// coordinates; a TOML preset file supplies defaults for anything not
// set on the command line.
package main

import (
	"fmt"
	"image/png"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	arg "github.com/alexflint/go-arg"
	"github.com/pkg/profile"

	"github.com/gobrot/brot"
)

// defaultSize is the image size used when neither a flag nor a config
// file supplies one.
const defaultSize = "1000x750"

// Optional flags are pointers so that a flag explicitly set to its
// default value is still distinguishable from an omitted flag and wins
// over config-file keys.
type cliArgs struct {
	Output      string  `arg:"positional" default:"mandel.png" help:"output path (.png, .tif/.tiff or .brot)"`
	Size        *string `arg:"-s,--size" help:"image size as WIDTHxHEIGHT (default 1000x750)"`
	UpperLeft   string  `arg:"-u,--upper-left" help:"window upper-left corner as RE,IM"`
	LowerRight  string  `arg:"-l,--lower-right" help:"window lower-right corner as RE,IM"`
	Preset      string  `arg:"-p,--preset" help:"named window preset (full, seahorse, elephant, spiral, triple, dragon)"`
	Iterations  *int    `arg:"-i,--iterations" help:"escape iteration cap (default 255)"`
	Workers     *int    `arg:"-w,--workers" help:"worker goroutines (default: all CPUs)"`
	Supersample *int    `arg:"--supersample" help:"render at N× and downscale (default 1)"`
	Color       *bool   `arg:"--color" help:"render through the color gradient (PNG only)"`
	Config      string  `arg:"-c,--config" help:"TOML preset file; explicit flags win over file keys"`
	Profile     string  `arg:"--profile" help:"write a cpu, mem or trace profile to the current directory"`
	Verbose     bool    `arg:"-v,--verbose" help:"log render progress to stderr"`
}

func (cliArgs) Description() string {
	return "brot renders escape-time images of the Mandelbrot set."
}

func main() {
	var args cliArgs
	p := arg.MustParse(&args)

	if args.Verbose {
		brot.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	switch args.Profile {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	case "trace":
		defer profile.Start(profile.TraceProfile, profile.ProfilePath(".")).Stop()
	default:
		p.Fail(fmt.Sprintf("unknown profile mode %q (want cpu, mem or trace)", args.Profile))
	}

	if err := run(args); err != nil {
		log.Fatalf("brot: %v", err)
	}
}

// settings is the fully resolved render request: built-in defaults,
// overlaid with config-file keys, overlaid with explicit flags.
type settings struct {
	output      string
	bounds      brot.Bounds
	window      brot.Window
	iterations  int
	workers     int
	supersample int
	color       bool
}

func run(args cliArgs) error {
	s, err := resolve(args)
	if err != nil {
		return err
	}

	r := brot.NewRenderer(
		brot.WithWorkers(s.workers),
		brot.WithIterations(s.iterations),
		brot.WithSupersample(s.supersample),
	)

	if s.color {
		if ext := strings.ToLower(filepath.Ext(s.output)); ext != ".png" {
			return fmt.Errorf("color output supports .png only, got %q", ext)
		}
		img, err := r.RenderColor(s.bounds, s.window)
		if err != nil {
			return err
		}
		f, err := os.Create(filepath.Clean(s.output))
		if err != nil {
			return err
		}
		if err := png.Encode(f, img); err != nil {
			_ = f.Close()
			return err
		}
		return f.Close()
	}

	if s.supersample > 1 {
		img, err := r.RenderImage(s.bounds, s.window)
		if err != nil {
			return err
		}
		pm := brot.Pixmap{Pix: img.Pix, Width: s.bounds.Width, Height: s.bounds.Height}
		return pm.Save(s.output)
	}

	pm, err := r.Render(s.bounds, s.window)
	if err != nil {
		return err
	}
	return pm.Save(s.output)
}

// resolve merges the config file (if any) under the explicit flags and
// turns the string-typed CLI surface into validated render inputs. A
// flag given on the command line wins even when its value matches the
// built-in default; only omitted flags fall back to file keys.
func resolve(args cliArgs) (settings, error) {
	var fc fileConfig
	var present map[string]bool
	if args.Config != "" {
		var err error
		fc, present, err = loadConfig(args.Config)
		if err != nil {
			return settings{}, err
		}
	}

	s := settings{
		output:      args.Output,
		iterations:  pick(args.Iterations, fc.Iterations, present["iterations"], brot.DefaultIterations),
		workers:     pick(args.Workers, fc.Workers, present["workers"], 0),
		supersample: pick(args.Supersample, fc.Supersample, present["supersample"], 1),
		color:       pick(args.Color, fc.Color, present["color"], false),
	}

	size := defaultSize
	switch {
	case args.Size != nil:
		size = *args.Size
	case present["width"] && present["height"]:
		size = fmt.Sprintf("%dx%d", fc.Width, fc.Height)
	}
	bounds, err := parseBounds(size)
	if err != nil {
		return settings{}, err
	}
	s.bounds = bounds

	upperLeft := args.UpperLeft
	if upperLeft == "" && present["upper_left"] {
		upperLeft = fc.UpperLeft
	}
	lowerRight := args.LowerRight
	if lowerRight == "" && present["lower_right"] {
		lowerRight = fc.LowerRight
	}
	preset := args.Preset
	if preset == "" && present["preset"] {
		preset = fc.Preset
	}
	window, err := resolveWindow(upperLeft, lowerRight, preset)
	if err != nil {
		return settings{}, err
	}
	s.window = window

	if err := window.Validate(); err != nil {
		return settings{}, fmt.Errorf("window %v..%v: %w", window.UpperLeft, window.LowerRight, err)
	}
	return s, nil
}

// pick resolves one option: an explicit flag wins, then a config-file
// key, then the built-in default.
func pick[T any](flag *T, file T, inFile bool, def T) T {
	switch {
	case flag != nil:
		return *flag
	case inFile:
		return file
	default:
		return def
	}
}

// resolveWindow picks the plane window: explicit corners beat a named
// preset, which beats the full-set default. Mixing one corner with a
// preset is rejected rather than guessed at.
func resolveWindow(upperLeft, lowerRight, preset string) (brot.Window, error) {
	hasUL := upperLeft != ""
	hasLR := lowerRight != ""

	switch {
	case hasUL != hasLR:
		return brot.Window{}, fmt.Errorf("both --upper-left and --lower-right are required for an explicit window")
	case hasUL:
		ul, err := parseComplex(upperLeft)
		if err != nil {
			return brot.Window{}, err
		}
		lr, err := parseComplex(lowerRight)
		if err != nil {
			return brot.Window{}, err
		}
		return brot.Window{UpperLeft: ul, LowerRight: lr}, nil
	case preset != "":
		return lookupPreset(preset)
	default:
		return brot.FullSet, nil
	}
}
