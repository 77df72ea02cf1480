package canvasrenderer

import (
	"bytes"
	"fmt"
	"image/color"
	"io"
	"strings"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"
	"github.com/tdewolff/canvas/renderers/svg"

	"github.com/ByLCY/gryd/layout"
	"github.com/ByLCY/gryd/renderer"
)

const (
	lineWidth   = 0.2 // mm
	gutterWidth = 0.4 // mm
	stripeAlpha = 0.35
)

// Format 为输出文件格式。
type Format string

const (
	FormatPDF Format = "pdf"
	FormatSVG Format = "svg"
)

// ParseFormat 解析格式名，忽略大小写。
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatPDF:
		return FormatPDF, nil
	case FormatSVG:
		return FormatSVG, nil
	}
	return "", fmt.Errorf("不支持的输出格式 %q（可选 pdf、svg）", s)
}

// Options configures the canvas renderer.
type Options struct {
	Format      Format
	ShowGutters bool
	TrackColor  layout.Color
	GutterColor layout.Color
	CellColor   layout.Color // 单元格未指定 fill 时使用
}

// DefaultOptions 返回 PDF 输出与默认配色。
func DefaultOptions() Options {
	return Options{
		Format:      FormatPDF,
		ShowGutters: true,
		TrackColor:  layout.Color{R: 0xE0, G: 0xE0, B: 0xE0},
		GutterColor: layout.Color{R: 0xDA, G: 0x1E, B: 0x28},
		CellColor:   layout.Color{R: 0x8D, G: 0x8D, B: 0x8D},
	}
}

// Renderer draws grid results via github.com/tdewolff/canvas.
type Renderer struct {
	opts Options
}

var _ renderer.Renderer = (*Renderer)(nil)

func NewRenderer(opts Options) *Renderer {
	if opts.Format == "" {
		opts.Format = FormatPDF
	}
	return &Renderer{opts: opts}
}

// Render renders the result into a PDF or SVG byte slice.
func (r *Renderer) Render(result *layout.Result) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.RenderTo(&buf, result); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// RenderTo 将结果写入 w。页面尺寸按 96 DPI 由像素换算为毫米。
func (r *Renderer) RenderTo(w io.Writer, result *layout.Result) error {
	if result == nil {
		return fmt.Errorf("渲染结果为空")
	}
	if result.Width <= 0 || result.Height <= 0 {
		return fmt.Errorf("页面尺寸无效: %gx%g", result.Width, result.Height)
	}

	width, height := toMm(result.Width), toMm(result.Height)
	c := canvas.New(width, height)
	ctx := canvas.NewContext(c)
	ctx.SetCoordSystem(canvas.CartesianIV) // 使坐标与布局保持左上角为原点
	r.draw(ctx, planPage(result, r.opts), width, height)

	switch r.opts.Format {
	case FormatSVG:
		writer := svg.New(w, width, height, nil)
		c.RenderTo(writer)
		if err := writer.Close(); err != nil {
			return fmt.Errorf("写入 SVG 失败: %w", err)
		}
	case FormatPDF:
		writer := pdf.New(w, width, height, nil)
		writer.SetInfo(result.Name, fmt.Sprintf("variant %g", result.MinWidth), "grid", "", "gryd")
		c.RenderTo(writer)
		if err := writer.Close(); err != nil {
			return fmt.Errorf("写入 PDF 失败: %w", err)
		}
	default:
		return fmt.Errorf("不支持的输出格式 %q", r.opts.Format)
	}
	return nil
}

// rect 与 line 是页面上的绘制图元，单位为毫米。
type rect struct {
	X, Y, Width, Height float64
	Fill                *layout.Color
	Alpha               float64
	Stroke              layout.Color
}

type line struct {
	X1, Y1, X2, Y2 float64
	Color          layout.Color
	Dashed         bool
}

type page struct {
	Tracks  []rect
	Cells   []rect
	Gutters []line
}

// planPage 把几何结果转换为图元：先轨道条纹，再单元格，最后分隔线。
func planPage(res *layout.Result, opts Options) page {
	var p page
	width, height := toMm(res.Width), toMm(res.Height)

	for i, col := range res.Columns {
		if col.Terminal || col.Size <= 0 {
			continue
		}
		rc := rect{X: toMm(col.Offset), Y: 0, Width: toMm(col.Size), Height: height, Stroke: opts.TrackColor}
		if i%2 == 0 {
			fill := opts.TrackColor
			rc.Fill, rc.Alpha = &fill, stripeAlpha
		}
		p.Tracks = append(p.Tracks, rc)
	}
	for _, row := range res.Rows {
		if row.Terminal || row.Size <= 0 {
			continue
		}
		p.Tracks = append(p.Tracks, rect{X: 0, Y: toMm(row.Offset), Width: width, Height: toMm(row.Size), Stroke: opts.TrackColor})
	}

	for _, cell := range res.Cells {
		if cell.Width <= 0 || cell.Height <= 0 {
			continue
		}
		fill := opts.CellColor
		if cell.Fill != nil {
			fill = *cell.Fill
		}
		p.Cells = append(p.Cells, rect{
			X: toMm(cell.X), Y: toMm(cell.Y), Width: toMm(cell.Width), Height: toMm(cell.Height),
			Fill: &fill, Alpha: 1, Stroke: fill,
		})
	}

	if opts.ShowGutters {
		for _, g := range res.Gutters {
			pos := toMm(g.Position)
			ln := line{Color: opts.GutterColor, Dashed: true}
			if g.Axis == layout.AxisColumns.String() {
				ln.X1, ln.Y1, ln.X2, ln.Y2 = pos, 0, pos, height
			} else {
				ln.X1, ln.Y1, ln.X2, ln.Y2 = 0, pos, width, pos
			}
			p.Gutters = append(p.Gutters, ln)
		}
	}
	return p
}

func (r *Renderer) draw(ctx *canvas.Context, p page, width, height float64) {
	ctx.SetFillColor(canvas.White)
	ctx.SetStrokeColor(canvas.Transparent)
	ctx.DrawPath(0, 0, canvas.Rectangle(width, height))

	drawRects(ctx, p.Tracks)
	drawRects(ctx, p.Cells)

	for _, ln := range p.Gutters {
		ctx.SetFillColor(canvas.Transparent)
		ctx.SetStrokeColor(colorFromLayout(ln.Color, 1))
		ctx.SetStrokeWidth(gutterWidth)
		if ln.Dashed {
			ctx.SetDashes(0, 2, 1)
		}
		path := &canvas.Path{}
		path.MoveTo(0, 0)
		path.LineTo(ln.X2-ln.X1, ln.Y2-ln.Y1)
		ctx.DrawPath(ln.X1, ln.Y1, path)
		ctx.SetDashes(0)
	}
}

// drawRects 绘制矩形列表（毫米单位）
func drawRects(ctx *canvas.Context, rects []rect) {
	for _, rc := range rects {
		if rc.Fill != nil {
			ctx.SetFillColor(colorFromLayout(*rc.Fill, rc.Alpha))
		} else {
			ctx.SetFillColor(canvas.Transparent)
		}
		ctx.SetStrokeColor(colorFromLayout(rc.Stroke, 1))
		ctx.SetStrokeWidth(lineWidth)
		ctx.DrawPath(rc.X, rc.Y, canvas.Rectangle(rc.Width, rc.Height))
	}
}

func colorFromLayout(c layout.Color, alpha float64) color.Color {
	return canvas.RGBA(float64(c.R)/255.0, float64(c.G)/255.0, float64(c.B)/255.0, alpha)
}

// toMm 将像素(px)转换为毫米(mm)。
func toMm(px float64) float64 { return px * layout.PxToMm }
