// Package chart provides the reference data of 24-patch colour checker charts.
package chart

import (
	"errors"
	"fmt"
	"maps"
	"math"
	"slices"

	"hdrchecker/colorimetry"
)

var (
	ErrUnknownChart   = errors.New("unknown color checker")
	ErrMalformedChart = errors.New("malformed color checker")
)

// Names is the canonical patch ordering, row by row from dark skin to black.
var Names = [...]string{
	"dark skin", "light skin", "blue sky", "foliage",
	"blue flower", "bluish green", "orange", "purplish blue",
	"moderate red", "purple", "yellow green", "orange yellow",
	"blue", "green", "red", "yellow",
	"magenta", "cyan", "white 9.5", "neutral 8",
	"neutral 6.5", "neutral 5", "neutral 3.5", "black 2",
}

type Patch struct {
	Index int
	Name  string
	Value colorimetry.XyY
}

// Chart is a set of reference patches measured under one illuminant.
type Chart struct {
	Name       string
	WhitePoint colorimetry.XY
	Patches    []Patch
}

const Default = "ColorChecker 2005"

// Lookup returns a copy of a built-in chart, so callers may not alter the
// shared reference data.
func Lookup(name string) (Chart, error) {
	c, ok := charts[name]
	if !ok {
		return Chart{}, fmt.Errorf("%w: %q", ErrUnknownChart, name)
	}
	c.Patches = append([]Patch(nil), c.Patches...)
	return c, nil
}

func Charts() []string {
	return slices.Sorted(maps.Keys(charts))
}

func (c Chart) Validate() error {
	if len(c.Patches) == 0 {
		return fmt.Errorf("%w: %q has no patches", ErrMalformedChart, c.Name)
	}
	if len(c.Patches) > len(Names) {
		return fmt.Errorf("%w: %q has %d patches, at most %d are known", ErrMalformedChart, c.Name, len(c.Patches), len(Names))
	}
	if !c.WhitePoint.Valid() {
		return fmt.Errorf("%w: %q has white point %v", ErrMalformedChart, c.Name, c.WhitePoint)
	}

	for i, p := range c.Patches {
		switch {
		case p.Index != i:
			return fmt.Errorf("%w: %q patch %q has index %d at position %d", ErrMalformedChart, c.Name, p.Name, p.Index, i)
		case p.Name != Names[i]:
			return fmt.Errorf("%w: %q patch %d is %q, expected %q", ErrMalformedChart, c.Name, i, p.Name, Names[i])
		case !(p.Value.Y > 0) || math.IsNaN(p.Value.X):
			return fmt.Errorf("%w: %q patch %q has chromaticity (%g, %g)", ErrMalformedChart, c.Name, p.Name, p.Value.X, p.Value.Y)
		case !(p.Value.Lum >= 0):
			return fmt.Errorf("%w: %q patch %q has luminance %g", ErrMalformedChart, c.Name, p.Name, p.Value.Lum)
		}
	}
	return nil
}

// Values returns the patch colours in canonical order.
func (c Chart) Values() []colorimetry.XyY {
	values := make([]colorimetry.XyY, len(c.Patches))
	for i, p := range c.Patches {
		values[i] = p.Value
	}
	return values
}
