package layout

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// This file defines the unit-safe track dimension type and its string form.

// Unit is the unit a track dimension is expressed in.
type Unit int

const (
	UnitPixel    Unit = iota // absolute pixels
	UnitPercent              // percentage of the container
	UnitFraction             // share of the space left after px and % tracks
)

// UnitToString returns the literal suffix for a Unit value.
func UnitToString(u Unit) string {
	switch u {
	case UnitPixel:
		return "px"
	case UnitPercent:
		return "%"
	case UnitFraction:
		return "fr"
	default:
		return ""
	}
}

// ParseUnit maps a literal suffix back to its Unit.
func ParseUnit(s string) (Unit, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "px":
		return UnitPixel, true
	case "%":
		return UnitPercent, true
	case "fr":
		return UnitFraction, true
	}
	return UnitPixel, false
}

func (u Unit) String() string { return UnitToString(u) }

// IsFixed reports whether the unit resolves without the fraction pool.
func (u Unit) IsFixed() bool { return u == UnitPixel || u == UnitPercent }

// Dimension preserves a track size with its unit. It is a value type; every
// operation that changes a dimension returns a new one.
type Dimension struct {
	Unit  Unit    `json:"unit"`
	Value float64 `json:"value"`
}

func Px(v float64) Dimension  { return Dimension{Unit: UnitPixel, Value: v} }
func Pct(v float64) Dimension { return Dimension{Unit: UnitPercent, Value: v} }
func Fr(v float64) Dimension  { return Dimension{Unit: UnitFraction, Value: v} }

// WithValue returns a copy of d carrying v.
func (d Dimension) WithValue(v float64) Dimension {
	d.Value = v
	return d
}

// String renders d in its compact "<value><unit>" form. Pixels keep no
// decimals, percent and fraction values keep two.
func (d Dimension) String() string {
	digits := 2
	if d.Unit == UnitPixel {
		digits = 0
	}
	return d.Format(digits)
}

// Format renders d rounded to the given number of decimals.
func (d Dimension) Format(digits int) string {
	scale := math.Pow(10, float64(digits))
	v := math.Round(d.Value*scale) / scale
	if v == 0 {
		v = 0 // drop negative zero
	}
	return strconv.FormatFloat(v, 'f', -1, 64) + UnitToString(d.Unit)
}

// ParseDimension parses a "<value><unit>" string such as "120px", "33.5%" or
// "1fr". Anything else yields ok == false, which callers treat as "auto".
func ParseDimension(value string) (Dimension, bool) {
	m := dimensionPattern.FindStringSubmatch(strings.ToLower(strings.TrimSpace(value)))
	if m == nil {
		return Dimension{}, false
	}
	f, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return Dimension{}, false
	}
	u, _ := ParseUnit(m[2])
	return Dimension{Unit: u, Value: f}, true
}

var dimensionPattern = regexp.MustCompile(`^(-?\d+(?:\.\d+)?)(px|%|fr)$`)

// Conversion constant between CSS pixels (96 dpi) and millimeters, used by
// renderers that draw in mm.
const (
	PxToMm = 25.4 / 96
	MmToPx = 1.0 / PxToMm
)
