// Copyright © 2023 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package style

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

func alpha(a float64) uint8 {
	if a <= 0 {
		return 0
	}
	if a >= 1 {
		return 255
	}
	return uint8(math.Round(a * 255))
}

// BlendWithWhite returns the color
// that results from painting c over a white background,
// with the indicated alpha.
func BlendWithWhite(c color.NRGBA, a float64) color.NRGBA {
	ca := float64(c.A) / 255
	bg := (1 - ca) * 255

	return color.NRGBA{
		R: uint8(float64(c.R)*ca + bg),
		G: uint8(float64(c.G)*ca + bg),
		B: uint8(float64(c.B)*ca + bg),
		A: alpha(a),
	}
}

// ParseColor parses a color definition.
//
// Valid definitions are
// "rgba(r, g, b, a)" with alpha in [0, 1],
// "rgb(r, g, b)",
// and the hexadecimal forms "#rrggbb" and "#rgb".
func ParseColor(s string) (color.NRGBA, error) {
	v := strings.ToLower(strings.Join(strings.Fields(s), ""))

	switch {
	case strings.HasPrefix(v, "rgba(") && strings.HasSuffix(v, ")"):
		f := strings.Split(v[len("rgba("):len(v)-1], ",")
		if len(f) != 4 {
			return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
		}
		c, err := rgbComponents(f[:3])
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid color %q: %v", s, err)
		}
		a, err := strconv.ParseFloat(f[3], 64)
		if err != nil || a < 0 || a > 1 {
			return color.NRGBA{}, fmt.Errorf("invalid color %q: bad alpha %q", s, f[3])
		}
		c.A = alpha(a)
		return c, nil
	case strings.HasPrefix(v, "rgb(") && strings.HasSuffix(v, ")"):
		f := strings.Split(v[len("rgb("):len(v)-1], ",")
		if len(f) != 3 {
			return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
		}
		c, err := rgbComponents(f)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid color %q: %v", s, err)
		}
		c.A = 255
		return c, nil
	case strings.HasPrefix(v, "#"):
		h := v[1:]
		if len(h) == 3 {
			h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
		}
		if len(h) != 6 {
			return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
		}
		n, err := strconv.ParseUint(h, 16, 32)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid color %q: %v", s, err)
		}
		return color.NRGBA{R: uint8(n >> 16), G: uint8(n >> 8), B: uint8(n), A: 255}, nil
	}
	return color.NRGBA{}, fmt.Errorf("invalid color %q", s)
}

func rgbComponents(f []string) (color.NRGBA, error) {
	var rgb [3]uint8
	for i, v := range f {
		n, err := strconv.Atoi(v)
		if err != nil {
			return color.NRGBA{}, err
		}
		if n < 0 || n > 255 {
			return color.NRGBA{}, fmt.Errorf("component %d out of range", n)
		}
		rgb[i] = uint8(n)
	}
	return color.NRGBA{R: rgb[0], G: rgb[1], B: rgb[2]}, nil
}

// FormatColor returns a color
// as an "rgba(r,g,b,a)" string.
func FormatColor(c color.NRGBA) string {
	a := strconv.FormatFloat(float64(c.A)/255, 'f', -1, 64)
	if len(a) > 5 {
		a = strconv.FormatFloat(float64(c.A)/255, 'f', 3, 64)
	}
	return fmt.Sprintf("rgba(%d,%d,%d,%s)", c.R, c.G, c.B, a)
}

// RGB returns a color as an "rgb(r,g,b)" string
// and its opacity.
func RGB(c color.NRGBA) (string, float64) {
	return fmt.Sprintf("rgb(%d,%d,%d)", c.R, c.G, c.B), float64(c.A) / 255
}
