package style

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

// Color is a 32-bit ARGB color value.
type Color uint32

// Transparent is fully transparent white, the CSS "transparent" keyword.
const Transparent Color = 0x00ffffff

// FromARGB builds color from individual components.
func FromARGB(a, r, g, b uint8) Color {
	return Color(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// FromRGB builds opaque color.
func FromRGB(r, g, b uint8) Color {
	return FromARGB(0xff, r, g, b)
}

func (c Color) A() uint8 { return uint8(c >> 24) }
func (c Color) R() uint8 { return uint8(c >> 16) }
func (c Color) G() uint8 { return uint8(c >> 8) }
func (c Color) B() uint8 { return uint8(c) }

// String returns color as #aarrggbb.
func (c Color) String() string {
	return fmt.Sprintf("#%08x", uint32(c))
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// colorNotation is a single supported way of writing a color. Notations are
// tried in order, the first one which matches and parses wins.
type colorNotation struct {
	name  string
	match func(s string) bool
	parse func(s string, palette *SystemColors) (Color, bool)
}

func hasPrefix(prefix string) func(string) bool {
	return func(s string) bool { return strings.HasPrefix(s, prefix) }
}

var colorNotations = []colorNotation{
	{"hex", hasPrefix("#"), parseHexColor},
	{"rgb", hasPrefix("rgb("), parseRGB},
	{"rgba", hasPrefix("rgba("), parseRGBA},
	{"hsv", hasPrefix("hsv("), parseHSV},
	{"hsva", hasPrefix("hsva("), parseHSVA},
	{"hsl", hasPrefix("hsl("), parseHSL},
	{"hsla", hasPrefix("hsla("), parseHSLA},
	{"system-color", hasPrefix("system-color("), parseSystemColor},
	{"named", func(string) bool { return true }, parseNamedColor},
}

// ColorFromCSS parses CSS color text. Supported notations are #rgb, #argb,
// #rrggbb, #aarrggbb, rgb(), rgba(), hsv(), hsva(), hsl(), hsla(),
// system-color(name) and named colors. palette is used to resolve
// system-color() references and may be nil. On failure def is returned.
func ColorFromCSS(text string, def Color, palette *SystemColors) Color {
	if c, ok := parseColor(text, palette); ok {
		return c
	}
	return def
}

// ParseColor is ColorFromCSS reporting whether text was understood.
func ParseColor(text string, palette *SystemColors) (Color, bool) {
	return parseColor(text, palette)
}

func parseColor(text string, palette *SystemColors) (Color, bool) {
	s := strings.TrimSpace(text)
	if s == "" {
		return 0, false
	}
	for _, n := range colorNotations {
		if !n.match(s) {
			continue
		}
		if c, ok := n.parse(s, palette); ok {
			return c, true
		}
	}
	return 0, false
}

func parseHexColor(s string, _ *SystemColors) (Color, bool) {
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return 0, false
	}
	nibble := func(shift uint) uint8 { return uint8((v>>shift)&0xf) * 17 }
	switch len(s) {
	case 4: // #rgb
		return FromARGB(0xff, nibble(8), nibble(4), nibble(0)), true
	case 5: // #argb
		return FromARGB(nibble(12), nibble(8), nibble(4), nibble(0)), true
	case 7: // #rrggbb
		return Color(0xff000000 | uint32(v)), true
	case 9: // #aarrggbb
		return Color(uint32(v)), true
	}
	return 0, false
}

// functionArgs strips "keyword(" and ")" and splits the rest on commas.
// It fails unless exactly n arguments are present.
func functionArgs(s, keyword string, n int) ([]string, bool) {
	if !strings.HasPrefix(s, keyword+"(") || !strings.HasSuffix(s, ")") {
		return nil, false
	}
	args := strings.Split(s[len(keyword)+1:len(s)-1], ",")
	if len(args) != n {
		return nil, false
	}
	for i := range args {
		args[i] = strings.TrimSpace(args[i])
	}
	return args, true
}

func parseChannel(s string) (uint8, bool) {
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 || v > 255 {
		return 0, false
	}
	return uint8(v), true
}

// parseAlpha converts alpha in [0,1] to a byte. Values out of range are clamped.
func parseAlpha(s string) (uint8, bool) {
	a, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(a) {
		return 0, false
	}
	a = max(0, min(1, a))
	return uint8(int(a * 255)), true
}

// parseFraction accepts "NN%" or a plain fraction in [0,1].
func parseFraction(s string) (float64, bool) {
	scale := 1.0
	if p, ok := strings.CutSuffix(s, "%"); ok {
		s, scale = p, 100
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return max(0, min(1, v/scale)), true
}

func parseHue(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSuffix(s, "deg"), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	v = math.Mod(v, 360)
	if v < 0 {
		v += 360
	}
	return v, true
}

func rgbFromArgs(args []string) (r, g, b uint8, ok bool) {
	if r, ok = parseChannel(args[0]); !ok {
		return
	}
	if g, ok = parseChannel(args[1]); !ok {
		return
	}
	b, ok = parseChannel(args[2])
	return
}

func parseRGB(s string, _ *SystemColors) (Color, bool) {
	args, ok := functionArgs(s, "rgb", 3)
	if !ok {
		return 0, false
	}
	r, g, b, ok := rgbFromArgs(args)
	if !ok {
		return 0, false
	}
	return FromRGB(r, g, b), true
}

func parseRGBA(s string, _ *SystemColors) (Color, bool) {
	args, ok := functionArgs(s, "rgba", 4)
	if !ok {
		return 0, false
	}
	r, g, b, ok := rgbFromArgs(args)
	if !ok {
		return 0, false
	}
	a, ok := parseAlpha(args[3])
	if !ok {
		return 0, false
	}
	return FromARGB(a, r, g, b), true
}

// cylindrical parses hue + two fractions and converts through conv.
func cylindrical(args []string, conv func(h, x, y float64) colorful.Color) (Color, bool) {
	h, ok := parseHue(args[0])
	if !ok {
		return 0, false
	}
	x, ok := parseFraction(args[1])
	if !ok {
		return 0, false
	}
	y, ok := parseFraction(args[2])
	if !ok {
		return 0, false
	}
	r, g, b := conv(h, x, y).Clamped().RGB255()
	return FromRGB(r, g, b), true
}

func withAlpha(c Color, ok bool, alpha string) (Color, bool) {
	if !ok {
		return 0, false
	}
	a, ok := parseAlpha(alpha)
	if !ok {
		return 0, false
	}
	return c&0x00ffffff | Color(a)<<24, true
}

func parseHSV(s string, _ *SystemColors) (Color, bool) {
	args, ok := functionArgs(s, "hsv", 3)
	if !ok {
		return 0, false
	}
	return cylindrical(args, colorful.Hsv)
}

func parseHSVA(s string, _ *SystemColors) (Color, bool) {
	args, ok := functionArgs(s, "hsva", 4)
	if !ok {
		return 0, false
	}
	c, ok := cylindrical(args, colorful.Hsv)
	return withAlpha(c, ok, args[3])
}

func parseHSL(s string, _ *SystemColors) (Color, bool) {
	args, ok := functionArgs(s, "hsl", 3)
	if !ok {
		return 0, false
	}
	return cylindrical(args, colorful.Hsl)
}

func parseHSLA(s string, _ *SystemColors) (Color, bool) {
	args, ok := functionArgs(s, "hsla", 4)
	if !ok {
		return 0, false
	}
	c, ok := cylindrical(args, colorful.Hsl)
	return withAlpha(c, ok, args[3])
}

func parseSystemColor(s string, palette *SystemColors) (Color, bool) {
	if palette == nil {
		return 0, false
	}
	args, ok := functionArgs(s, "system-color", 1)
	if !ok {
		return 0, false
	}
	return palette.Lookup(args[0])
}

func parseNamedColor(s string, _ *SystemColors) (Color, bool) {
	if s == "transparent" {
		return Transparent, true
	}
	c, ok := colornames.Map[s]
	if !ok {
		return 0, false
	}
	return FromARGB(c.A, c.R, c.G, c.B), true
}
