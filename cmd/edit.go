package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ByLCY/gryd/config"
	"github.com/ByLCY/gryd/dsl"
	"github.com/ByLCY/gryd/editor"
	"github.com/ByLCY/gryd/hotkey"
	"github.com/ByLCY/gryd/layout"
)

type editFlags struct {
	in     string
	script string
	debug  string
	width  float64
	height float64
}

func newEditCmd(a *app) *cobra.Command {
	f := &editFlags{}
	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Replay an edit script against a grid and print the edited variant.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEdit(cmd.OutOrStdout(), a.config(), *f, a.logger())
		},
	}
	cmd.Flags().StringVar(&f.in, "in", "", "grid 文件路径")
	cmd.Flags().StringVar(&f.script, "script", "", "编辑脚本路径")
	cmd.Flags().StringVar(&f.debug, "debug", "", "编辑后几何调试 JSON 输出路径")
	cmd.Flags().Float64Var(&f.width, "width", 0, "初始容器宽度（像素），默认取配置")
	cmd.Flags().Float64Var(&f.height, "height", 0, "初始容器高度（像素），默认取配置")
	_ = cmd.MarkFlagRequired("in")
	_ = cmd.MarkFlagRequired("script")
	return cmd
}

func runEdit(w io.Writer, cfg *config.Config, f editFlags, logger *zap.Logger) error {
	l, err := loadLayout(f.in, logger)
	if err != nil {
		return err
	}
	file, err := os.Open(f.script)
	if err != nil {
		return fmt.Errorf("无法打开脚本 %s: %w", f.script, err)
	}
	defer file.Close()
	script, err := dsl.ParseScript(file)
	if err != nil {
		return fmt.Errorf("解析脚本失败: %w", err)
	}

	width, height := f.width, f.height
	if width <= 0 {
		width = cfg.Render.Width
	}
	if height <= 0 {
		height = cfg.Render.Height
	}

	ed := editor.New(*l, editor.Options{Logger: logger.Named("editor")})
	ed.SetViewport(width, height)
	dispatcher := hotkey.NewDispatcher()
	ed.Bindings(dispatcher)

	if err := ed.Apply(script, dispatcher); err != nil {
		return fmt.Errorf("执行脚本失败: %w", err)
	}

	_, v, ok := ed.Active()
	if !ok {
		vw, _ := ed.Viewport()
		return fmt.Errorf("宽度 %g 没有匹配的断点变体", vw)
	}
	if f.debug != "" {
		res, err := ed.Result()
		if err != nil {
			return err
		}
		if err := writeDebug(res, f.debug); err != nil {
			return err
		}
	}
	_, err = fmt.Fprintln(w, layout.FormatVariant(v))
	return err
}
