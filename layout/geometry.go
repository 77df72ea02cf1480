package layout

import (
	"fmt"
	"math"
)

// Compute 将变体在 width×height 的容器中解析为像素几何：轨道偏移、分隔线与单元格矩形。
// fr 轨道按权重瓜分剩余空间（剩余为负时按 0 计），auto 与终止轨道占 0 像素。
func Compute(l Layout, v Variant, width, height float64) (*Result, error) {
	rows := resolveAxis(v.Rows, height)
	cols := resolveAxis(v.Columns, width)

	res := &Result{
		Name:     l.Name,
		MinWidth: v.MinWidth,
		Width:    width,
		Height:   height,
		Rows:     rows,
		Columns:  cols,
	}
	res.Gutters = append(res.Gutters, axisGutters(AxisRows, v.Rows, rows)...)
	res.Gutters = append(res.Gutters, axisGutters(AxisColumns, v.Columns, cols)...)

	rowLines := lineOffsets(rows)
	colLines := lineOffsets(cols)
	for _, cell := range l.Cells {
		rs, re, err := resolveSpan(v.Rows, cell.Area[0], cell.Area[2])
		if err != nil {
			return nil, fmt.Errorf("单元格 %s 的行区域无效: %w", cell.ID, err)
		}
		cs, ce, err := resolveSpan(v.Columns, cell.Area[1], cell.Area[3])
		if err != nil {
			return nil, fmt.Errorf("单元格 %s 的列区域无效: %w", cell.ID, err)
		}
		res.Cells = append(res.Cells, CellBox{
			ID:     cell.ID,
			X:      colLines[cs],
			Y:      rowLines[rs],
			Width:  colLines[ce] - colLines[cs],
			Height: rowLines[re] - rowLines[rs],
			Fill:   cell.Fill,
		})
	}
	return res, nil
}

func resolveAxis(a Axis, total float64) []ResolvedTrack {
	dims := a.Dimensions()
	weight := TotalFractionWeight(dims)
	free := math.Max(total-TotalFixedSize(dims, total), 0)

	out := make([]ResolvedTrack, 0, len(a))
	offset := 0.0
	for _, t := range a {
		rt := ResolvedTrack{ID: t.ID, Offset: offset, Terminal: t.IsTerminal()}
		if d, ok := t.Resolved(); ok {
			rt.Dimension = d.String()
			switch d.Unit {
			case UnitPixel:
				rt.Size = d.Value
			case UnitPercent:
				rt.Size = total * d.Value / 100
			case UnitFraction:
				if weight > 0 {
					rt.Size = free / weight * d.Value
				}
			}
		}
		offset += rt.Size
		out = append(out, rt)
	}
	return out
}

// axisGutters 只列出可拖拽的分隔线：两侧都是带尺寸的可寻址轨道。
func axisGutters(kind AxisKind, a Axis, tracks []ResolvedTrack) []Gutter {
	var out []Gutter
	for i := 0; i+1 < len(a); i++ {
		left := a.dimensionIndex(i)
		if left < 0 || a.dimensionIndex(i+1) != left+1 {
			continue
		}
		out = append(out, Gutter{
			Axis:     kind.String(),
			Index:    i,
			Left:     a[i].ID,
			Right:    a[i+1].ID,
			Position: tracks[i+1].Offset,
		})
	}
	return out
}

// lineOffsets 返回 len(tracks)+1 条网格线的位置。
func lineOffsets(tracks []ResolvedTrack) []float64 {
	out := make([]float64, 0, len(tracks)+1)
	end := 0.0
	for _, t := range tracks {
		out = append(out, t.Offset)
		end = t.Offset + t.Size
	}
	return append(out, end)
}

// resolveSpan 按 CSS 网格线语义解析起止线（0 基下标）：名称指向该轨道的起始线，
// 数字为 1 基线号，span 相对于另一端。
func resolveSpan(a Axis, start, end AreaRef) (int, int, error) {
	if start.Span > 0 && end.Span > 0 {
		return 0, 0, fmt.Errorf("起止不能同时为 span")
	}
	var s, e int
	var err error
	if start.Span == 0 {
		if s, err = resolveLine(a, start); err != nil {
			return 0, 0, err
		}
	}
	if end.Span == 0 {
		if e, err = resolveLine(a, end); err != nil {
			return 0, 0, err
		}
	}
	if start.Span > 0 {
		s = e - start.Span
	}
	if end.Span > 0 {
		e = s + end.Span
	}
	if s > e {
		s, e = e, s
	}
	if s < 0 || e > len(a) {
		return 0, 0, fmt.Errorf("区域 %d..%d 超出 %d 条轨道", s, e, len(a))
	}
	return s, e, nil
}

func resolveLine(a Axis, ref AreaRef) (int, error) {
	if ref.Name != "" {
		i := a.IndexOf(ref.Name)
		if i < 0 {
			return 0, fmt.Errorf("找不到轨道 %s", ref.Name)
		}
		return i, nil
	}
	if ref.Line < 1 || ref.Line > len(a)+1 {
		return 0, fmt.Errorf("线号 %d 越界", ref.Line)
	}
	return ref.Line - 1, nil
}
