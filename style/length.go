package style

import (
	"math"
	"strconv"
	"strings"
)

// LengthUnit is a CSS length unit.
type LengthUnit int

const (
	UnitNone           LengthUnit = iota
	UnitCentimeters               // cm
	UnitMillimeters               // mm
	UnitInches                    // in
	UnitPixels                    // px
	UnitPoints                    // pt
	UnitPicas                     // pc
	UnitElement                   // em
	UnitElementXHeight            // ex
	UnitChase                     // ch
	UnitRootElement               // rem
	UnitViewportWidth             // vw
	UnitViewportHeight            // vh
	UnitViewportMin               // vmin
	UnitViewportMax               // vmax
	UnitPercent                   // %
)

var unitSuffixes = map[LengthUnit]string{
	UnitCentimeters:    "cm",
	UnitMillimeters:    "mm",
	UnitInches:         "in",
	UnitPixels:         "px",
	UnitPoints:         "pt",
	UnitPicas:          "pc",
	UnitElement:        "em",
	UnitElementXHeight: "ex",
	UnitChase:          "ch",
	UnitRootElement:    "rem",
	UnitViewportWidth:  "vw",
	UnitViewportHeight: "vh",
	UnitViewportMin:    "vmin",
	UnitViewportMax:    "vmax",
	UnitPercent:        "%",
}

// unitProbeOrder lists units in the order suffixes are tried. A suffix which
// is the tail of another one ("in" of "vmin", "em" of "rem") comes later.
var unitProbeOrder = []LengthUnit{
	UnitViewportMin,
	UnitViewportMax,
	UnitRootElement,
	UnitCentimeters,
	UnitMillimeters,
	UnitInches,
	UnitPixels,
	UnitPoints,
	UnitPicas,
	UnitElement,
	UnitElementXHeight,
	UnitChase,
	UnitViewportWidth,
	UnitViewportHeight,
	UnitPercent,
}

func (u LengthUnit) String() string {
	return unitSuffixes[u]
}

// Length is a CSS length: magnitude and unit.
type Length struct {
	Value float64
	Unit  LengthUnit
}

// Auto is the sentinel for auto, initial and inherit.
var Auto = Length{Value: -1, Unit: UnitNone}

// Pixels is a convenience constructor.
func Pixels(v float64) Length {
	return Length{Value: v, Unit: UnitPixels}
}

// IsAuto returns true for the auto/initial/inherit sentinel.
func (l Length) IsAuto() bool {
	return l == Auto
}

func (l Length) String() string {
	if l.IsAuto() {
		return "auto"
	}
	return strconv.FormatFloat(l.Value, 'f', -1, 64) + l.Unit.String()
}

func (l Length) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// LengthFromCSS parses CSS length text. Bare "0" is accepted without unit and
// resolves to zero pixels. On failure def is returned.
func LengthFromCSS(text string, def Length) Length {
	if l, ok := parseLength(text); ok {
		return l
	}
	return def
}

func parseLength(text string) (Length, bool) {
	s := strings.ToLower(strings.TrimSpace(text))
	switch s {
	case "auto", "initial", "inherit":
		return Auto, true
	case "0":
		return Pixels(0), true
	}
	for _, u := range unitProbeOrder {
		num, ok := strings.CutSuffix(s, unitSuffixes[u])
		if !ok {
			continue
		}
		v, err := strconv.ParseFloat(num, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			return Length{}, false
		}
		return Length{Value: v, Unit: u}, true
	}
	return Length{}, false
}
