package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/ByLCY/gryd/config"
	"github.com/ByLCY/gryd/layout"
	canvasrenderer "github.com/ByLCY/gryd/renderer/canvas"
)

type renderFlags struct {
	in     string
	out    string
	format string
	debug  string
	width  float64
	height float64
	all    bool
}

func newRenderCmd(a *app) *cobra.Command {
	f := &renderFlags{}
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the variant active at --width (or every variant) to PDF or SVG.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := runRender(cmd.Context(), a.config(), *f, a.logger())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "已生成：%s\n", strings.Join(path, ", "))
			return nil
		},
	}
	cmd.Flags().StringVar(&f.in, "in", "", "grid 文件路径")
	cmd.Flags().StringVar(&f.out, "out", "", "输出路径（.pdf 或 .svg）")
	cmd.Flags().StringVar(&f.format, "format", "", "输出格式 pdf|svg，默认按扩展名或配置")
	cmd.Flags().StringVar(&f.debug, "debug", "", "几何调试 JSON 输出路径")
	cmd.Flags().Float64Var(&f.width, "width", 0, "容器宽度（像素），默认取配置")
	cmd.Flags().Float64Var(&f.height, "height", 0, "容器高度（像素），默认取配置")
	cmd.Flags().BoolVar(&f.all, "all", false, "并发渲染所有断点变体")
	_ = cmd.MarkFlagRequired("in")
	_ = cmd.MarkFlagRequired("out")
	return cmd
}

// runRender returns the paths it wrote.
func runRender(ctx context.Context, cfg *config.Config, f renderFlags, logger *zap.Logger) ([]string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if f.width <= 0 {
		f.width = cfg.Render.Width
	}
	if f.height <= 0 {
		f.height = cfg.Render.Height
	}
	opts, err := rendererOptions(cfg.Render, f)
	if err != nil {
		return nil, err
	}
	l, err := loadLayout(f.in, logger)
	if err != nil {
		return nil, err
	}
	r := canvasrenderer.NewRenderer(opts)

	if !f.all {
		i, v, ok := l.Select(f.width)
		if !ok {
			return nil, fmt.Errorf("宽度 %g 没有匹配的断点变体", f.width)
		}
		logger.Info("rendering variant", zap.Int("variant", i), zap.Float64("minWidth", v.MinWidth), zap.Float64("width", f.width))
		if err := renderVariant(r, *l, v, f.width, f.height, f.out, f.debug); err != nil {
			return nil, err
		}
		return []string{f.out}, nil
	}

	paths := make([]string, len(l.Variants))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Render.Concurrency)
	for i, v := range l.Variants {
		width := max(f.width, v.MinWidth)
		out := variantPath(f.out, v.MinWidth)
		debug := ""
		if f.debug != "" {
			debug = variantPath(f.debug, v.MinWidth)
		}
		paths[i] = out
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			logger.Debug("rendering variant", zap.Int("variant", i), zap.Float64("width", width), zap.String("out", out))
			return renderVariant(r, *l, v, width, f.height, out, debug)
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	logger.Info("rendered all variants", zap.Int("count", len(paths)))
	return paths, nil
}

func renderVariant(r *canvasrenderer.Renderer, l layout.Layout, v layout.Variant, width, height float64, out, debug string) error {
	res, err := layout.Compute(l, v, width, height)
	if err != nil {
		return fmt.Errorf("几何解析失败: %w", err)
	}
	if debug != "" {
		if err := writeDebug(res, debug); err != nil {
			return err
		}
	}
	data, err := r.Render(res)
	if err != nil {
		return fmt.Errorf("渲染失败: %w", err)
	}
	return writeFile(out, data)
}

// variantPath inserts the breakpoint before the extension: out.pdf -> out-600.pdf.
func variantPath(path string, minWidth float64) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "-" + strconv.FormatFloat(minWidth, 'f', -1, 64) + ext
}

// rendererOptions merges config colors with the format chosen by flag,
// output extension or config, in that order.
func rendererOptions(rc config.RenderConfig, f renderFlags) (canvasrenderer.Options, error) {
	opts := canvasrenderer.DefaultOptions()
	opts.ShowGutters = rc.ShowGutters

	name := f.format
	if name == "" {
		switch strings.ToLower(filepath.Ext(f.out)) {
		case ".pdf", ".svg":
			name = strings.TrimPrefix(strings.ToLower(filepath.Ext(f.out)), ".")
		default:
			name = rc.Format
		}
	}
	format, err := canvasrenderer.ParseFormat(name)
	if err != nil {
		return opts, err
	}
	opts.Format = format

	for _, c := range []struct {
		value string
		dst   *layout.Color
	}{
		{rc.TrackColor, &opts.TrackColor},
		{rc.GutterColor, &opts.GutterColor},
		{rc.CellColor, &opts.CellColor},
	} {
		if c.value == "" {
			continue
		}
		col, err := layout.ParseColor(c.value)
		if err != nil {
			return opts, err
		}
		*c.dst = col
	}
	return opts, nil
}
