// Package cmd wires the gryd command line: render, edit and convert.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ByLCY/gryd/config"
	"github.com/ByLCY/gryd/observability"
)

// Version is set at build time with -ldflags "-X github.com/ByLCY/gryd/cmd.Version=...".
var Version = "dev"

// app carries state shared by the subcommands once PersistentPreRunE ran.
type app struct {
	cfgFile string
	cfg     *config.Config
}

func (a *app) logger() *zap.Logger { return observability.GetLogger() }

func (a *app) config() *config.Config {
	if a.cfg == nil {
		a.cfg = config.NewDefaultConfig()
	}
	return a.cfg
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:           "gryd",
		Short:         "gryd sizes, edits and renders responsive grid layouts.",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.cfgFile)
			if err != nil {
				observability.InitializeLogger(config.NewDefaultConfig().Logger)
				return err
			}
			a.cfg = cfg
			observability.InitializeLogger(cfg.Logger)
			a.logger().Debug("configuration loaded", zap.String("version", Version), zap.String("file", a.cfgFile))
			return nil
		},
	}
	root.PersistentFlags().StringVarP(&a.cfgFile, "config", "c", "", "config file (default is ./gryd.yaml)")
	root.SetVersionTemplate(`{{printf "%s\n" .Version}}`)

	root.AddCommand(
		newRenderCmd(a),
		newEditCmd(a),
		newConvertCmd(),
	)
	return root
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	err := newRootCmd().Execute()
	observability.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
