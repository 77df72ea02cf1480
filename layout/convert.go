package layout

// Resolve returns the rendered pixel size of d on an axis whose dimensions are
// siblings (d included) and whose container is totalPixelSize wide.
func Resolve(d Dimension, totalPixelSize float64, siblings []Dimension) (float64, error) {
	switch d.Unit {
	case UnitPercent:
		return totalPixelSize * d.Value / 100, nil
	case UnitFraction:
		weight := TotalFractionWeight(siblings)
		if weight == 0 {
			return 0, &DegenerateDivisionError{Op: "resolve fr", Quantity: "total fraction weight"}
		}
		free := totalPixelSize - TotalFixedSize(siblings, totalPixelSize)
		return free / weight * d.Value, nil
	default:
		return d.Value, nil
	}
}

// Convert expresses from in the unit to while keeping its rendered size.
// siblings must hold every dimension on from's axis, from included. The same
// unit short-circuits and returns from untouched.
//
// When converting into fr, one fraction unit is (T - fixed) / weight, where
// fixed already holds from's pixels. This differs from the textbook
// (T - (fixed + px)) / weight form, which subtracts from a second time: with
// that form 100px at 400 with siblings [100px, 1fr] becomes 0.5fr instead of
// 0.33fr and no longer converts back to 100px.
func Convert(from Dimension, to Unit, totalPixelSize float64, siblings []Dimension) (Dimension, error) {
	if from.Unit == to {
		return from, nil
	}
	px, err := Resolve(from, totalPixelSize, siblings)
	if err != nil {
		return from, err
	}

	switch to {
	case UnitPercent:
		if totalPixelSize == 0 {
			return from, &DegenerateDivisionError{Op: "convert to %", Quantity: "total pixel size"}
		}
		return Pct(px / totalPixelSize * 100), nil
	case UnitFraction:
		weight := TotalFractionWeight(siblings)
		if weight == 0 {
			return from, &DegenerateDivisionError{Op: "convert to fr", Quantity: "total fraction weight"}
		}
		// from is px or % here, so it is already part of the fixed total.
		fixedOthers := TotalFixedSize(siblings, totalPixelSize) - px
		oneFr := (totalPixelSize - (fixedOthers + px)) / weight
		if oneFr == 0 {
			return from, &DegenerateDivisionError{Op: "convert to fr", Quantity: "size of one fraction"}
		}
		return Fr(px / oneFr), nil
	default:
		return Px(px), nil
	}
}
