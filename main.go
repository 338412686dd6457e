package main

import (
	"log/slog"
	"os"
	"runtime"

	"example.com/shading/internal/xform"
	"github.com/spf13/cobra"
)

var logLevel = new(slog.LevelVar)

func init() {
	// Lock OS thread to the main thread (necessary for OpenGL context)
	runtime.LockOSThread()
}

func main() {
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))

	if err := rootCmd().Execute(); err != nil {
		slog.Error("shading", "err", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "shading",
		Short:         "Flat/smooth and Phong/Gouraud shading viewer",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(viewCmd(), infoCmd(), transformsCmd())
	return root
}

func transformsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "transforms",
		Short: "Print the vector, matrix and transform exercises",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			w := cmd.OutOrStdout()
			xform.PrintVectorExercise(w)
			xform.PrintMatrixExercise(w)
			xform.PrintTransformExercise(w)
		},
	}
}
