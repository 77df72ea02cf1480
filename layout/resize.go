package layout

// Resize moves the gutter that follows axis[gutterIndex] by pixelDelta pixels
// and returns a new dimension list in which exactly one of the two adjacent
// tracks has a new value. The input slice is left untouched.
//
// The track to change is picked by unit: two fr neighbours change the left
// one, otherwise the px/% neighbour changes (the right one with the delta
// inverted). The neighbour's apparent change follows from the fraction pool
// when the axis is rendered.
//
// Axes without fr tracks, and axes where a required denominator is zero, are
// returned unchanged.
func Resize(axis []Dimension, totalPixelSize float64, gutterIndex int, pixelDelta float64) ([]Dimension, error) {
	out := make([]Dimension, len(axis))
	copy(out, axis)

	if gutterIndex < 0 || gutterIndex+1 >= len(axis) {
		return out, &MissingAdjacentTrackError{GutterIndex: gutterIndex, Len: len(axis)}
	}
	if !hasFraction(axis) {
		return out, nil
	}

	left, right := axis[gutterIndex], axis[gutterIndex+1]
	chosen := -1
	inverted := false
	switch {
	case left.Unit == UnitFraction && right.Unit == UnitFraction:
		chosen = gutterIndex
	case left.Unit.IsFixed():
		chosen = gutterIndex
	case right.Unit.IsFixed():
		chosen = gutterIndex + 1
		inverted = true
	}
	if chosen < 0 {
		return out, nil
	}

	target := axis[chosen]
	if target.Unit == UnitFraction {
		totalFraction := TotalFractionWeight(axis)
		rest := totalFraction - target.Value
		if totalFraction == 0 || rest == 0 {
			return out, nil
		}
		free := totalPixelSize - TotalFixedSize(axis, totalPixelSize)
		targetWidth := free / totalFraction * target.Value
		oneFr := (free - targetWidth - pixelDelta) / rest
		if oneFr == 0 {
			return out, nil
		}
		out[chosen] = target.WithValue((targetWidth + pixelDelta) / oneFr)
		return out, nil
	}

	delta := pixelDelta
	if inverted {
		delta = -delta
	}
	if target.Unit == UnitPercent {
		if totalPixelSize == 0 {
			return out, nil
		}
		width := totalPixelSize*target.Value/100 + delta
		out[chosen] = target.WithValue(width / (totalPixelSize / 100))
		return out, nil
	}
	out[chosen] = target.WithValue(target.Value + delta)
	return out, nil
}

// Resize applies Resize to the gutter after track i of a full axis. Tracks
// i and i+1 must both be sized tracks with a dimension; auto and terminal
// tracks are skipped when building the dimension list and are returned as is.
func (a Axis) Resize(totalPixelSize float64, i int, pixelDelta float64) (Axis, error) {
	left := a.dimensionIndex(i)
	right := a.dimensionIndex(i + 1)
	if left < 0 || right != left+1 {
		return a, &MissingAdjacentTrackError{GutterIndex: i, Len: len(a)}
	}
	dims, err := Resize(a.Dimensions(), totalPixelSize, left, pixelDelta)
	if err != nil {
		return a, err
	}
	return a.withDimensions(dims), nil
}

// withDimensions writes dims back over the tracks that carry a dimension.
func (a Axis) withDimensions(dims []Dimension) Axis {
	out := make(Axis, len(a))
	n := 0
	for i, t := range a {
		if _, ok := t.Resolved(); ok && n < len(dims) {
			t = t.WithDimension(dims[n])
			n++
		}
		out[i] = t
	}
	return out
}
