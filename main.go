package main

import (
	"os"

	"github.com/spf13/cobra"

	"mandelzoom/animation"
	"mandelzoom/viewer"
)

func mainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mandelzoom",
		Short: "Render and explore the Mandelbrot set",
	}
	cmd.AddCommand(viewCmd(), animateCmd())
	return cmd
}

func viewCmd() *cobra.Command {
	var settingsFile string

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Explore the set interactively in the terminal",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			v, err := viewer.NewViewer(viewer.NewSettings(settingsFile))
			if err != nil {
				return err
			}
			return v.Run()
		},
	}
	cmd.Flags().StringVarP(&settingsFile, "settings", "s", "", "json settings file")
	return cmd
}

func animateCmd() *cobra.Command {
	var settingsFile string
	var outputFile string
	var framePath string

	cmd := &cobra.Command{
		Use:   "animate",
		Short: "Generate a looping zoom animation",
		Args:  cobra.ExactArgs(0),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			settings := animation.NewSettings(settingsFile)
			if outputFile != "" {
				settings.OutputFile = outputFile
			}
			if framePath != "" {
				settings.FramePath = framePath
			}
			animator := animation.NewAnimator(settings)
			return animator.Run()
		},
	}
	cmd.Flags().StringVarP(&settingsFile, "settings", "s", "", "json settings file")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "animation output file")
	cmd.Flags().StringVar(&framePath, "frames", "", "folder holding the per-frame png cache")
	return cmd
}

func main() {
	if err := mainCmd().Execute(); err != nil {
		// Cobra already printed the error.
		os.Exit(1)
	}
}
