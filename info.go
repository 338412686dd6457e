package main

import (
	"example.com/shading/internal/model"
	"github.com/spf13/cobra"
)

func infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <model-file>",
		Short: "Load a model and print its meshes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := model.Load(args[0])
			if err != nil {
				return err
			}
			m.PrintInfo(cmd.OutOrStdout())
			return nil
		},
	}
}
