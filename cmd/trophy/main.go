// trophy is a software 3D renderer: a terminal mesh viewer, an offline
// triangle rasterizer, and a path-tracing ray tracer, sharing one
// linear-algebra and camera substrate.
//
// Controls (view subcommand):
//
//	Mouse drag  - Rotate model (yaw/pitch)
//	Scroll      - Zoom in/out
//	W/S         - Pitch up/down
//	A/D         - Yaw left/right
//	Q/E         - Roll left/right (Q rolls left, E rolls right)
//	Space       - Apply random impulse
//	R           - Reset rotation
//	T           - Toggle texture on/off
//	X           - Toggle wireframe mode (x-ray)
//	L           - Light positioning mode (move mouse, click to set, Esc to cancel)
//	?           - Toggle HUD overlay (FPS, filename, poly count, mode status)
//	+/-         - Adjust zoom
//	Esc         - Quit (or cancel light mode)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "trophy",
		Short: "Terminal 3D model viewer, offline rasterizer, and path-tracing ray tracer",
	}

	rootCmd.AddCommand(viewCmd())
	rootCmd.AddCommand(rasterizeCmd())
	rootCmd.AddCommand(raytraceCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
