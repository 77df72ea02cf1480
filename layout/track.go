package layout

import (
	"fmt"
	"strings"
)

// AxisKind selects the row or the column axis of a variant.
type AxisKind int

const (
	AxisRows AxisKind = iota
	AxisColumns
)

func (k AxisKind) String() string {
	if k == AxisColumns {
		return "columns"
	}
	return "rows"
}

// ParseAxisKind accepts "rows"/"row" and "columns"/"column".
func ParseAxisKind(s string) (AxisKind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rows", "row":
		return AxisRows, nil
	case "columns", "column", "cols":
		return AxisColumns, nil
	}
	return AxisRows, fmt.Errorf("layout: unknown axis %q", s)
}

// TrackKind tags a Track as a sized slot or as the terminal marker.
type TrackKind uint8

const (
	TrackSized TrackKind = iota
	TrackTerminal
)

// Track is one row or column slot. A sized track without a dimension is left
// to the renderer (auto); the terminal track closes the axis and is never
// addressed or resized.
type Track struct {
	Kind      TrackKind  `json:"kind"`
	ID        string     `json:"id,omitempty"`
	Dimension *Dimension `json:"dimension,omitempty"`
}

// Sized returns an addressable track with a resolved dimension.
func Sized(id string, d Dimension) Track {
	return Track{Kind: TrackSized, ID: id, Dimension: &d}
}

// Auto returns an addressable track without a dimension.
func Auto(id string) Track { return Track{Kind: TrackSized, ID: id} }

// Terminal returns the end-of-axis marker.
func Terminal() Track { return Track{Kind: TrackTerminal} }

func (t Track) IsTerminal() bool { return t.Kind == TrackTerminal }

// Resolved returns the track dimension, if the track carries one.
func (t Track) Resolved() (Dimension, bool) {
	if t.Kind != TrackSized || t.Dimension == nil {
		return Dimension{}, false
	}
	return *t.Dimension, true
}

// WithDimension returns a copy of t sized to d.
func (t Track) WithDimension(d Dimension) Track {
	t.Dimension = &d
	return t
}

// String renders the track the way the DSL writes it: "nav 200px", "main" or "_".
func (t Track) String() string {
	if t.IsTerminal() {
		return "_"
	}
	if d, ok := t.Resolved(); ok {
		return t.ID + " " + d.String()
	}
	return t.ID
}

// Axis is the ordered track list of one variant's rows or columns. Axes are
// treated as immutable: every edit returns a new slice.
type Axis []Track

// Dimensions returns the dimensions of all tracks that carry one, in order.
func (a Axis) Dimensions() []Dimension {
	out := make([]Dimension, 0, len(a))
	for _, t := range a {
		if d, ok := t.Resolved(); ok {
			out = append(out, d)
		}
	}
	return out
}

// dimensionIndex maps a track index to its position in Dimensions(), or -1.
func (a Axis) dimensionIndex(i int) int {
	if i < 0 || i >= len(a) {
		return -1
	}
	if _, ok := a[i].Resolved(); !ok {
		return -1
	}
	n := 0
	for j := 0; j < i; j++ {
		if _, ok := a[j].Resolved(); ok {
			n++
		}
	}
	return n
}

// IndexOf returns the index of the sized track with the given id, or -1.
func (a Axis) IndexOf(id string) int {
	if id == "" {
		return -1
	}
	for i, t := range a {
		if t.Kind == TrackSized && t.ID == id {
			return i
		}
	}
	return -1
}

// Replace returns a new axis with index i set to t.
func (a Axis) Replace(i int, t Track) Axis {
	out := make(Axis, len(a))
	copy(out, a)
	if i >= 0 && i < len(out) {
		out[i] = t
	}
	return out
}

// Insert returns a new axis with t inserted at index i.
func (a Axis) Insert(i int, t Track) Axis {
	if i < 0 {
		i = 0
	}
	if i > len(a) {
		i = len(a)
	}
	out := make(Axis, 0, len(a)+1)
	out = append(out, a[:i]...)
	out = append(out, t)
	out = append(out, a[i:]...)
	return out
}

// Validate checks the structural invariants: at least two tracks, addressable
// tracks carry unique non-empty ids, and only the last track may be terminal.
func (a Axis) Validate() error {
	if len(a) < 2 {
		return fmt.Errorf("layout: axis needs at least 2 tracks, got %d", len(a))
	}
	seen := make(map[string]struct{}, len(a))
	for i, t := range a {
		if t.IsTerminal() {
			if i != len(a)-1 {
				return fmt.Errorf("layout: terminal track at %d is not last", i)
			}
			continue
		}
		if t.ID == "" {
			return fmt.Errorf("layout: track %d has no id", i)
		}
		if _, dup := seen[t.ID]; dup {
			return fmt.Errorf("layout: duplicate track id %q", t.ID)
		}
		seen[t.ID] = struct{}{}
	}
	return nil
}

// TotalFixedSize sums the resolved pixel size of all px and % dimensions.
func TotalFixedSize(dims []Dimension, totalPixelSize float64) float64 {
	sum := 0.0
	for _, d := range dims {
		switch d.Unit {
		case UnitPixel:
			sum += d.Value
		case UnitPercent:
			sum += totalPixelSize * d.Value / 100
		}
	}
	return sum
}

// TotalFractionWeight sums the values of all fr dimensions.
func TotalFractionWeight(dims []Dimension) float64 {
	sum := 0.0
	for _, d := range dims {
		if d.Unit == UnitFraction {
			sum += d.Value
		}
	}
	return sum
}

func hasFraction(dims []Dimension) bool {
	for _, d := range dims {
		if d.Unit == UnitFraction {
			return true
		}
	}
	return false
}
