// wakesim builds a flat rectangular lifting surface and reports the wake
// emission velocity at every trailing-edge station for one time step.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/octwanna/vortexje/src/aero/lifting"
	"github.com/octwanna/vortexje/src/config"
	"github.com/octwanna/vortexje/src/mesh"
)

var (
	logger *zap.Logger

	verbose    bool
	configPath string
	chordwise  int
	spanwise   int
	chord      float64
	span       float64
	apparent   []float64
)

var rootCmd = &cobra.Command{
	Use:   "wakesim",
	Short: "Wake emission kinematics for a rectangular lifting surface",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewProductionConfig()
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: run,
}

func run(cmd *cobra.Command, args []string) error {
	params := config.Default()
	if configPath != "" {
		var err error
		params, err = config.Load(configPath)
		if err != nil {
			return err
		}
	}
	logger.Debug("parameters",
		zap.Bool("follow_bisector", params.WakeEmissionFollowBisector),
		zap.Bool("convect_wake", params.ConvectWake),
		zap.Float64("emission_distance_factor", params.WakeEmissionDistanceFactor))

	if len(apparent) != 3 {
		return fmt.Errorf("--apparent needs exactly 3 components, got %d", len(apparent))
	}
	surface, err := flatPlate(chordwise, spanwise, chord, span)
	if err != nil {
		return err
	}
	logger.Info("surface built",
		zap.Int("chordwise_nodes", surface.ChordwiseNodeCount()),
		zap.Int("spanwise_nodes", surface.SpanwiseNodeCount()),
		zap.Int("panels", surface.Mesh.PanelCount()))

	emitter := lifting.NewEmitter(params.WakeEmissionFollowBisector)
	velocity := mesh.NewVector3(apparent[0], apparent[1], apparent[2])
	for i := 0; i < surface.SpanwiseNodeCount(); i++ {
		v, err := emitter.Velocity(surface, velocity, i)
		if err != nil {
			logger.Warn("skipping station", zap.Int("station", i), zap.Error(err))
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "station %d: emission velocity (%g, %g, %g)\n", i, v.X, v.Y, v.Z)
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML parameter file")
	rootCmd.Flags().IntVar(&chordwise, "chordwise", 10, "chordwise node count")
	rootCmd.Flags().IntVar(&spanwise, "spanwise", 20, "spanwise node count")
	rootCmd.Flags().Float64Var(&chord, "chord", 1.0, "chord length")
	rootCmd.Flags().Float64Var(&span, "span", 5.0, "span length")
	rootCmd.Flags().Float64SliceVar(&apparent, "apparent", []float64{1, 0, 0}, "apparent velocity components")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
