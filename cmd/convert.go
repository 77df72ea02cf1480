package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ByLCY/gryd/layout"
)

func newConvertCmd() *cobra.Command {
	var (
		total    float64
		siblings string
	)
	cmd := &cobra.Command{
		Use:   "convert <dimension> <px|%|fr>",
		Short: "Convert a track dimension to another unit without changing its size.",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := runConvert(args[0], args[1], total, siblings)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), out.String())
			return nil
		},
	}
	cmd.Flags().Float64Var(&total, "total", 0, "轴的总像素尺寸")
	cmd.Flags().StringVar(&siblings, "siblings", "", "同轴全部轨道尺寸，逗号分隔（包含被转换的轨道），默认仅含自身")
	return cmd
}

func runConvert(dim, unit string, total float64, siblings string) (layout.Dimension, error) {
	from, ok := layout.ParseDimension(dim)
	if !ok {
		return layout.Dimension{}, fmt.Errorf("无效的尺寸 %q", dim)
	}
	to, ok := layout.ParseUnit(unit)
	if !ok {
		return layout.Dimension{}, fmt.Errorf("无效的单位 %q", unit)
	}

	dims := []layout.Dimension{from}
	if strings.TrimSpace(siblings) != "" {
		dims = dims[:0]
		for _, part := range strings.Split(siblings, ",") {
			d, ok := layout.ParseDimension(part)
			if !ok {
				return layout.Dimension{}, fmt.Errorf("无效的同轴尺寸 %q", part)
			}
			dims = append(dims, d)
		}
	}
	return layout.Convert(from, to, total, dims)
}
