// Package main provides the CLI entrypoint for vecop-generator.
//
// vecop-generator writes the arithmetic operators of a generic vector type
// once per operand passing mode:
//   - Reads naming settings from a YAML config
//   - Collects //vecop: directives from the target package
//   - Verifies the container type the generated code relies on
//   - Generates documented operator functions and runnable examples
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// app holds the global flags and the logger shared by all commands.
type app struct {
	verbose    bool
	configPath string
	pkg        string
	outDir     string

	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:   "vecop-generator",
		Short: "Generate vector operators for every operand passing mode",
		Long: `vecop-generator emits element-wise addition, dot product and scalar
multiplication for a generic vector type, one function per combination of
owned, borrowed and mutably borrowed operands.

Operators are requested with directives in the target package:

  //vecop:add mut *Vector, Vector
  //vecop:dot all
  //vecop:scale *Vector`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config := zap.NewProductionConfig()
			if a.verbose {
				config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}

			logger, err := config.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}

			a.logger = logger

			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(a.genCmd(), a.checkCmd(), a.configCmd(), a.tableCmd())

	return rootCmd
}

// addGenerationFlags registers the flags shared by gen and check.
func (a *app) addGenerationFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&a.configPath, "config", "vecop.yaml", "Path to the YAML config")
	cmd.Flags().StringVar(&a.pkg, "pkg", ".", "Package pattern holding the container and directives")
	cmd.Flags().StringVar(&a.outDir, "out", "", "Output directory (default: the package directory)")
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
