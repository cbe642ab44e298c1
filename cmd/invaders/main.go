// Command invaders boots the Space Invaders 8080 emulator: it loads a
// ROM image, opens a window, and runs the CPU/machine/scheduler/video
// core until the window closes.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/spaceinvaders-go/invaders8080/internal/host"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		scale      int
		fullscreen bool
		noColor    bool
		port0      uint8
	)

	cmd := &cobra.Command{
		Use:   "invaders <rom>",
		Short: "Space Invaders 8080 arcade emulator",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := host.Config{
				ROMPath:      args[0],
				Scale:        scale,
				Fullscreen:   fullscreen,
				ColorEnabled: !noColor,
				Port0Value:   port0,
			}

			game, warning := host.New(cfg)
			if warning != nil {
				// Reported but not fatal: the emulator
				// keeps running with a blank/default ROM.
				fmt.Fprintln(os.Stderr, warning)
			}

			return game.Run(context.Background())
		},
	}

	cmd.Flags().IntVar(&scale, "scale", 2, "integer window scale factor")
	cmd.Flags().BoolVar(&fullscreen, "fullscreen", false, "start in fullscreen")
	cmd.Flags().BoolVar(&noColor, "no-color", false, "disable the cellophane color overlay")
	cmd.Flags().Uint8Var(&port0, "port0", 0x01, "value returned by IN 0 (0x01 for Space Invaders conformance, 0x0E for diagnostic ROMs)")

	return cmd
}
