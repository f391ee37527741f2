package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/zhscan/zhscan/internal/config"
	"github.com/zhscan/zhscan/internal/scan"
	"github.com/zhscan/zhscan/internal/session"
)

func doctorCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Self-check: verify config, scan path, and run a trial scan",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}

			fmt.Println("=== Config ===")
			cfgPath, err := config.Path()
			if err != nil {
				return err
			}
			if _, err := os.Stat(cfgPath); os.IsNotExist(err) {
				fmt.Printf("  File: %s (not present, using defaults)\n", cfgPath)
			} else {
				fmt.Printf("  File: %s (OK)\n", cfgPath)
			}
			fmt.Printf("  Exclude: %s\n", cfg.Exclude)
			if len(cfg.Extensions) > 0 {
				fmt.Printf("  Extra extensions: %s\n", strings.Join(cfg.Extensions, ", "))
			}

			path := cfg.DefaultPath
			if path == "" {
				if path, err = os.Getwd(); err != nil {
					return err
				}
			}

			fmt.Println("\n=== Scan Path ===")
			checkDir(path)

			fmt.Println("\n=== Trial Scan ===")
			scanner := scan.New(cfg.Extensions...)
			occs, err := scanner.Scan(context.Background(), session.Request{Path: path, Exclude: cfg.Exclude})
			if err != nil {
				fmt.Printf("  scan error: %v\n", err)
				return nil
			}
			g := session.Group(occs)
			fmt.Printf("  Occurrences: %d\n", len(occs))
			fmt.Printf("  Files with matches: %d\n", g.Len())

			return nil
		},
	}
}

func checkDir(path string) {
	if info, err := os.Stat(path); err != nil {
		fmt.Printf("  %s (NOT FOUND)\n", path)
	} else if !info.IsDir() {
		fmt.Printf("  %s (NOT A DIRECTORY)\n", path)
	} else {
		fmt.Printf("  %s (OK)\n", path)
	}
}
