package layout

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/ByLCY/gryd/dsl"
)

// Build 根据 DSL AST 生成布局：变体（行/列轨道）与单元格定义。
func Build(doc *dsl.Document, opts BuildOptions) (*Layout, error) {
	if doc == nil {
		return nil, fmt.Errorf("文档为空")
	}
	logger := opts.logger()

	out := &Layout{Name: doc.Name}
	seen := map[float64]bool{}
	for _, sec := range doc.Sections {
		switch {
		case sec.Variant != nil:
			v, err := buildVariant(sec.Variant, logger)
			if err != nil {
				return nil, err
			}
			if seen[v.MinWidth] {
				return nil, fmt.Errorf("%s: 断点 %g 重复定义", sec.Variant.Pos, v.MinWidth)
			}
			seen[v.MinWidth] = true
			out.Variants = append(out.Variants, v)
		case sec.Cell != nil:
			c, err := buildCell(sec.Cell)
			if err != nil {
				return nil, err
			}
			out.Cells = append(out.Cells, c)
		}
	}
	if len(out.Variants) == 0 {
		return nil, fmt.Errorf("文档中缺少 variant 段落")
	}
	logger.Debug("layout built",
		zap.String("name", out.Name),
		zap.Int("variants", len(out.Variants)),
		zap.Int("cells", len(out.Cells)),
	)
	return out, nil
}

func buildVariant(sec *dsl.VariantSection, logger *zap.Logger) (Variant, error) {
	v := Variant{MinWidth: sec.MinWidth}
	var haveRows, haveCols bool
	for _, decl := range sec.Axes {
		kind, err := ParseAxisKind(decl.Kind)
		if err != nil {
			return Variant{}, fmt.Errorf("%s: %w", decl.Pos, err)
		}
		axis := buildAxis(decl, logger)
		if err := axis.Validate(); err != nil {
			return Variant{}, fmt.Errorf("%s: variant %g %s: %w", decl.Pos, sec.MinWidth, kind, err)
		}
		if kind == AxisColumns {
			if haveCols {
				return Variant{}, fmt.Errorf("%s: columns 重复定义", decl.Pos)
			}
			haveCols = true
		} else {
			if haveRows {
				return Variant{}, fmt.Errorf("%s: rows 重复定义", decl.Pos)
			}
			haveRows = true
		}
		v = v.WithAxis(kind, axis)
	}
	if !haveRows || !haveCols {
		return Variant{}, fmt.Errorf("%s: variant %g 需要同时定义 rows 与 columns", sec.Pos, sec.MinWidth)
	}
	return v, nil
}

func buildAxis(decl *dsl.AxisDecl, logger *zap.Logger) Axis {
	axis := make(Axis, 0, len(decl.Tracks))
	for _, td := range decl.Tracks {
		if td.Terminal || td.Named == nil {
			axis = append(axis, Terminal())
			continue
		}
		if td.Named.Size == nil {
			axis = append(axis, Auto(td.Named.ID))
			continue
		}
		d, ok := ParseDimension(*td.Named.Size)
		if !ok {
			// 无法识别的尺寸按 auto 处理，由渲染端决定大小。
			logger.Warn("unrecognized dimension, track falls back to auto",
				zap.String("track", td.Named.ID),
				zap.String("value", *td.Named.Size),
			)
			axis = append(axis, Auto(td.Named.ID))
			continue
		}
		axis = append(axis, Sized(td.Named.ID, d))
	}
	return axis
}

func buildCell(sec *dsl.CellSection) (Cell, error) {
	c := Cell{ID: sec.ID}
	if len(sec.Area) != 4 {
		return Cell{}, fmt.Errorf("%s: cell %s 需要 4 个区域参数", sec.Pos, sec.ID)
	}
	for i, ref := range sec.Area {
		r, err := buildAreaRef(ref)
		if err != nil {
			return Cell{}, fmt.Errorf("%s: cell %s: %w", sec.Pos, sec.ID, err)
		}
		c.Area[i] = r
	}
	if sec.Fill != nil {
		col, err := ParseColor(*sec.Fill)
		if err != nil {
			return Cell{}, fmt.Errorf("%s: cell %s: %w", sec.Pos, sec.ID, err)
		}
		c.Fill = &col
	}
	return c, nil
}

func buildAreaRef(ref *dsl.AreaRef) (AreaRef, error) {
	n, err := strconv.Atoi(ref.Value)
	if ref.Span {
		if err != nil || n < 1 {
			return AreaRef{}, fmt.Errorf("span 需要正整数，得到 %q", ref.Value)
		}
		return AreaRef{Span: n}, nil
	}
	if err == nil {
		return AreaRef{Line: n}, nil
	}
	return AreaRef{Name: ref.Value}, nil
}

// ParseColor 解析 #RGB / #RRGGBB / #RRGGBBAA（忽略透明度）。
func ParseColor(value string) (Color, error) {
	v := strings.TrimPrefix(strings.TrimSpace(value), "#")
	switch len(v) {
	case 3:
		v = string([]byte{v[0], v[0], v[1], v[1], v[2], v[2]})
	case 6:
	case 8:
		v = v[:6]
	default:
		return Color{}, fmt.Errorf("颜色格式无效: %s", value)
	}
	n, err := strconv.ParseUint(v, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("颜色格式无效: %s", value)
	}
	return Color{R: int(n >> 16 & 0xff), G: int(n >> 8 & 0xff), B: int(n & 0xff)}, nil
}

// FormatVariant 以 DSL 语法输出单个变体，供 edit 命令打印结果。
func FormatVariant(v Variant) string {
	var b strings.Builder
	fmt.Fprintf(&b, "variant %s {\n", strconv.FormatFloat(v.MinWidth, 'f', -1, 64))
	for _, kind := range []AxisKind{AxisRows, AxisColumns} {
		tracks := v.Axis(kind)
		parts := make([]string, 0, len(tracks))
		for _, t := range tracks {
			parts = append(parts, t.String())
		}
		fmt.Fprintf(&b, "  %s: [%s]\n", kind, strings.Join(parts, ", "))
	}
	b.WriteString("}")
	return b.String()
}
