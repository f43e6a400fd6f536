package main

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/gobrot/brot"
)

// parseBounds parses an image size written as WIDTHxHEIGHT, e.g.
// "1000x750". Both dimensions must be positive integers.
func parseBounds(s string) (brot.Bounds, error) {
	i := strings.IndexByte(s, 'x')
	if i < 0 {
		return brot.Bounds{}, fmt.Errorf("size %q: want WIDTHxHEIGHT", s)
	}
	width, err := strconv.Atoi(s[:i])
	if err != nil {
		return brot.Bounds{}, fmt.Errorf("size %q: bad width: %w", s, err)
	}
	height, err := strconv.Atoi(s[i+1:])
	if err != nil {
		return brot.Bounds{}, fmt.Errorf("size %q: bad height: %w", s, err)
	}
	b := brot.Bounds{Width: width, Height: height}
	if err := b.Validate(); err != nil {
		return brot.Bounds{}, fmt.Errorf("size %q: %w", s, err)
	}
	return b, nil
}

// parseComplex parses a comma-separated coordinate pair as a complex
// number, e.g. "1.25,-0.0625".
func parseComplex(s string) (complex128, error) {
	i := strings.IndexByte(s, ',')
	if i < 0 {
		return 0, fmt.Errorf("point %q: want RE,IM", s)
	}
	re, err := strconv.ParseFloat(s[:i], 64)
	if err != nil {
		return 0, fmt.Errorf("point %q: bad real part: %w", s, err)
	}
	im, err := strconv.ParseFloat(s[i+1:], 64)
	if err != nil {
		return 0, fmt.Errorf("point %q: bad imaginary part: %w", s, err)
	}
	return complex(re, im), nil
}

// presets maps CLI preset names to landmark windows.
var presets = map[string]brot.Window{
	"full":     brot.FullSet,
	"seahorse": brot.SeahorseValley,
	"elephant": brot.ElephantValley,
	"spiral":   brot.SpiralMinibrot,
	"triple":   brot.TripleSpiral,
	"dragon":   brot.ValleyOfTheDragon,
}

// lookupPreset resolves a preset name, listing the valid names in the
// error to keep the CLI self-documenting.
func lookupPreset(name string) (brot.Window, error) {
	if w, ok := presets[strings.ToLower(name)]; ok {
		return w, nil
	}
	names := make([]string, 0, len(presets))
	for n := range presets {
		names = append(names, n)
	}
	sort.Strings(names)
	return brot.Window{}, fmt.Errorf("unknown preset %q (have: %s)", name, strings.Join(names, ", "))
}
