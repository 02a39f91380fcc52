package style

import (
	"math"
	"slices"
	"strconv"
	"strings"
)

//go:generate go tool go-enum --marshal --names --values

// ImageKind tells which variant of BackgroundImage is in use.
// ENUM(none, url, linear-gradient)
type ImageKind int

// DefaultGradientAngle is used when gradient has no direction.
const DefaultGradientAngle = 180

// BackgroundImage is either nothing, an image reference or a linear gradient.
type BackgroundImage struct {
	Kind  ImageKind `yaml:"kind"`
	URL   string    `yaml:"url,omitempty"`
	Angle float64   `yaml:"angle,omitempty"`
	Stops []Color   `yaml:"stops,omitempty"`
}

// Clone returns deep copy of the image.
func (bi BackgroundImage) Clone() BackgroundImage {
	bi.Stops = slices.Clone(bi.Stops)
	return bi
}

// gradientDirections maps direction keywords to angles in degrees.
var gradientDirections = map[string]float64{
	"to top":          0,
	"to top right":    45,
	"to right":        90,
	"to bottom right": 135,
	"to bottom":       180,
	"to bottom left":  225,
	"to left":         270,
	"to top left":     315,
}

// BackgroundImageFromCSS parses "none", "url(...)" or "linear-gradient(...)".
// System colors in gradient stops are resolved with palette, which may be
// nil. On failure def is returned.
func BackgroundImageFromCSS(text string, def BackgroundImage, palette *SystemColors) BackgroundImage {
	if bi, ok := ParseBackgroundImage(text, palette); ok {
		return bi
	}
	return def
}

// ParseBackgroundImage is BackgroundImageFromCSS reporting whether text was
// understood.
func ParseBackgroundImage(text string, palette *SystemColors) (BackgroundImage, bool) {
	s := strings.TrimSpace(text)
	switch {
	case strings.EqualFold(s, "none"):
		return BackgroundImage{Kind: ImageKindNone}, true
	case strings.HasPrefix(s, "url(") && strings.HasSuffix(s, ")"):
		return BackgroundImage{Kind: ImageKindUrl, URL: trimQuotes(strings.TrimSpace(s[4 : len(s)-1]))}, true
	case strings.HasPrefix(s, "linear-gradient(") && strings.HasSuffix(s, ")"):
		return parseLinearGradient(s[len("linear-gradient("):len(s)-1], palette)
	}
	return BackgroundImage{}, false
}

// parseLinearGradient accepts at most one direction (keyword or angle) and at
// least two color stops.
func parseLinearGradient(args string, palette *SystemColors) (BackgroundImage, bool) {
	var (
		angle    float64 = DefaultGradientAngle
		hasAngle bool
		stops    []Color
	)
	for _, arg := range splitTopLevel(args, ',') {
		if dir, ok := gradientDirections[strings.Join(strings.Fields(strings.ToLower(arg)), " ")]; ok {
			if hasAngle {
				return BackgroundImage{}, false
			}
			angle, hasAngle = dir, true
			continue
		}
		if num, ok := strings.CutSuffix(arg, "deg"); ok {
			if hasAngle {
				return BackgroundImage{}, false
			}
			v, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
			if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
				return BackgroundImage{}, false
			}
			angle, hasAngle = v, true
			continue
		}
		c, ok := parseColor(arg, palette)
		if !ok {
			return BackgroundImage{}, false
		}
		stops = append(stops, c)
	}
	if len(stops) < 2 {
		return BackgroundImage{}, false
	}
	return BackgroundImage{Kind: ImageKindLinearGradient, Angle: angle, Stops: stops}, true
}

func trimQuotes(s string) string {
	if q, ok := unquote(s); ok {
		return q
	}
	return s
}
