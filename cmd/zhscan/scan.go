package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/zhscan/zhscan/internal/config"
	"github.com/zhscan/zhscan/internal/render"
	"github.com/zhscan/zhscan/internal/scan"
	"github.com/zhscan/zhscan/internal/session"
	"github.com/zhscan/zhscan/internal/tui"
	"golang.org/x/term"
)

func scanCommand() *cobra.Command {
	var exclude string
	var extraExts []string

	cmd := &cobra.Command{
		Use:   "scan [path]",
		Short: "Scan a source directory for Chinese text",
		Long: `Scan walks a directory tree and reports every occurrence of Chinese
text in js/jsx/ts/tsx sources, located by file, line and column.

Interactive TUI when stdout is a terminal; a plain grouped report for
pipes. Exclude patterns are comma-separated globs matched against paths
relative to the scan root and against base names, so "node_modules"
prunes that directory anywhere.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			path := cfg.DefaultPath
			if len(args) == 1 {
				path = args[0]
			}
			if path == "" {
				if path, err = os.Getwd(); err != nil {
					return err
				}
			}

			if !cmd.Flags().Changed("exclude") {
				exclude = cfg.Exclude
			}

			scanner := scan.New(append(cfg.Extensions, extraExts...)...)

			// Interactive TUI when stdout is a terminal; plain report for pipes
			if term.IsTerminal(int(os.Stdout.Fd())) {
				return tui.Run(scanner, path, exclude)
			}

			ctrl := session.NewController()
			ctrl.ScanPath = path
			ctrl.ExcludePatterns = exclude
			if err := ctrl.Run(context.Background(), scanner); err != nil {
				return err
			}

			groups := session.Project(ctrl.Grouping(), ctrl.Expansion())
			fmt.Print(render.Report(groups, render.Options{Color: true}))
			return nil
		},
	}

	cmd.Flags().StringVar(&exclude, "exclude", "", "Comma-separated exclude patterns (default from config)")
	cmd.Flags().StringSliceVar(&extraExts, "ext", nil, "Extra file extensions to scan (e.g. vue)")

	return cmd
}
