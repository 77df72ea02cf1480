package layout

import "fmt"

// MissingAdjacentTrackError is returned when a gutter has no left or right
// track. On a well-formed axis this is unreachable.
type MissingAdjacentTrackError struct {
	GutterIndex int
	Len         int
}

func (e *MissingAdjacentTrackError) Error() string {
	return fmt.Sprintf("layout: gutter %d has no adjacent track pair (axis length %d)", e.GutterIndex, e.Len)
}

// DegenerateDivisionError reports a zero denominator, such as a zero total
// pixel size or an empty fraction pool.
type DegenerateDivisionError struct {
	Op       string
	Quantity string
}

func (e *DegenerateDivisionError) Error() string {
	return fmt.Sprintf("layout: %s: %s is zero", e.Op, e.Quantity)
}
