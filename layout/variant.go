package layout

// Variant is one complete row and column axis pair, active from MinWidth up.
type Variant struct {
	MinWidth float64 `json:"minWidth"`
	Rows     Axis    `json:"rows"`
	Columns  Axis    `json:"columns"`
}

// Axis returns the rows or the columns of v.
func (v Variant) Axis(kind AxisKind) Axis {
	if kind == AxisColumns {
		return v.Columns
	}
	return v.Rows
}

// WithAxis returns a copy of v with the given axis replaced.
func (v Variant) WithAxis(kind AxisKind, a Axis) Variant {
	if kind == AxisColumns {
		v.Columns = a
	} else {
		v.Rows = a
	}
	return v
}

// AreaRef addresses a grid line: a track name, a 1-based line number, or a
// span relative to the start line.
type AreaRef struct {
	Name string `json:"name,omitempty"`
	Line int    `json:"line,omitempty"`
	Span int    `json:"span,omitempty"`
}

// Cell places content over an area of the grid: row start, column start,
// row end, column end.
type Cell struct {
	ID   string     `json:"id"`
	Area [4]AreaRef `json:"area"`
	Fill *Color     `json:"fill,omitempty"`
}

// Layout is a named set of variants plus the cells laid over them. Variants
// do not need to be sorted by MinWidth.
type Layout struct {
	Name     string    `json:"name"`
	Variants []Variant `json:"variants"`
	Cells    []Cell    `json:"cells,omitempty"`
}

// SelectVariant returns the variant with the greatest MinWidth that does not
// exceed viewportWidth. Equal MinWidth values resolve to the first one.
func SelectVariant(variants []Variant, viewportWidth float64) (Variant, bool) {
	i := selectIndex(variants, viewportWidth)
	if i < 0 {
		return Variant{}, false
	}
	return variants[i], true
}

func selectIndex(variants []Variant, viewportWidth float64) int {
	best := -1
	for i, v := range variants {
		if v.MinWidth > viewportWidth {
			continue
		}
		if best < 0 || v.MinWidth > variants[best].MinWidth {
			best = i
		}
	}
	return best
}

// Select returns the index and value of the variant active at viewportWidth.
func (l Layout) Select(viewportWidth float64) (int, Variant, bool) {
	i := selectIndex(l.Variants, viewportWidth)
	if i < 0 {
		return -1, Variant{}, false
	}
	return i, l.Variants[i], true
}

// WithVariant returns a copy of l with variant i replaced.
func (l Layout) WithVariant(i int, v Variant) Layout {
	variants := make([]Variant, len(l.Variants))
	copy(variants, l.Variants)
	if i >= 0 && i < len(variants) {
		variants[i] = v
	}
	l.Variants = variants
	return l
}
