package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/pathviz/controller"
	"github.com/katalvlaran/pathviz/internal/tui"
)

func playCmd(gf *globalFlags) *cobra.Command {
	var (
		gridOpts  gridFlags
		algName   string
		speedName string
	)

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Open the interactive visualizer",
		Long: "Open the interactive visualizer. Move the cursor with the arrow keys,\n" +
			"paint with space, press enter to visualize and ? for every key.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			// stderr would tear the alternate screen; log only to --log-file.
			e, err := loadEnv(gf, io.Discard)
			if err != nil {
				return err
			}
			defer e.Close()

			g, err := gridOpts.build(e.cfg)
			if err != nil {
				return err
			}
			a, err := pickAlgorithm(algName, e.cfg)
			if err != nil {
				return err
			}
			sp, err := pickSpeed(speedName, e.cfg)
			if err != nil {
				return err
			}

			m, err := tui.New(g,
				controller.WithAlgorithm(a),
				controller.WithSpeed(sp),
				controller.WithLogger(e.log),
			)
			if err != nil {
				return err
			}
			return tui.Run(cmd.Context(), m)
		},
	}

	gridOpts.register(cmd)
	cmd.Flags().StringVarP(&algName, "algorithm", "a", "", "Initial algorithm (default from config)")
	cmd.Flags().StringVar(&speedName, "speed", "", "Initial animation speed (default from config)")

	return cmd
}
