package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"vecop-generator/internal/analyze"
	"vecop-generator/internal/diagnostic"
	"vecop-generator/internal/gen"
	"vecop-generator/internal/request"
)

func (a *app) genCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate the operator and example files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, outDir, err := a.generate(cmd.Context())
			if err != nil {
				return err
			}

			if err := gen.WriteFiles(res.Files, outDir); err != nil {
				return err
			}

			for _, f := range res.Files {
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", f.Filename)
			}

			return nil
		},
	}

	a.addGenerationFlags(cmd)

	return cmd
}

func (a *app) checkCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Fail when the generated files are out of date",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, outDir, err := a.generate(cmd.Context())
			if err != nil {
				return err
			}

			stale, err := gen.CheckFiles(res.Files, outDir)
			if err != nil {
				return err
			}

			if len(stale) > 0 {
				return fmt.Errorf("generated files are out of date: %v (run vecop-generator gen)", stale)
			}

			fmt.Fprintln(cmd.OutOrStdout(), "generated files are up to date")

			return nil
		},
	}

	a.addGenerationFlags(cmd)

	return cmd
}

func (a *app) configCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the effective config with defaults and directive operators",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, err := a.loadConfig()
			if err != nil {
				return err
			}

			data, err := request.Marshal(cfg)
			if err != nil {
				return fmt.Errorf("encoding config: %w", err)
			}

			_, err = cmd.OutOrStdout().Write(data)

			return err
		},
	}

	a.addGenerationFlags(cmd)

	return cmd
}

// loadConfig loads the config and scans the package for directives. Package
// settings the config leaves empty are taken from the scanned package and
// directive operators follow the configured ones.
func (a *app) loadConfig() (*request.Config, *analyze.PackageInfo, error) {
	cfg, err := request.LoadFile(a.configPath)
	if err != nil {
		return nil, nil, err
	}

	scan, err := analyze.NewScanner(a.logger).Scan(a.pkg)
	if err != nil {
		return nil, nil, err
	}

	if err := scan.Diagnostics.Error(); err != nil {
		return nil, nil, fmt.Errorf("scanning %s: %w", a.pkg, err)
	}

	if len(scan.Packages) != 1 {
		return nil, nil, fmt.Errorf("pattern %q matches %d packages, want exactly one", a.pkg, len(scan.Packages))
	}

	pkg := scan.Packages[0]

	if cfg.Package == "" {
		cfg.Package = pkg.Name
	}

	if cfg.ImportPath == "" {
		cfg.ImportPath = pkg.Path
	}

	cfg.Operators = append(cfg.Operators, pkg.Operators()...)

	return cfg, pkg, nil
}

// generate verifies the container and runs the generator. It returns the
// directory the files belong in.
func (a *app) generate(ctx context.Context) (*gen.Result, string, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, pkg, err := a.loadConfig()
	if err != nil {
		return nil, "", err
	}

	if err := analyze.VerifyContainer(pkg, cfg).Error(); err != nil {
		return nil, "", fmt.Errorf("verifying %s: %w", pkg.Path, err)
	}

	outDir := a.outDir
	if outDir == "" {
		outDir = pkg.Dir
	}

	genCfg := gen.DefaultGeneratorConfig()
	genCfg.Logger = a.logger
	genCfg.OutputDir = outDir

	res, err := gen.NewGenerator(genCfg).Generate(ctx, cfg)

	if res != nil {
		a.logDiagnostics(res.Diagnostics)
	}

	if err != nil {
		return nil, "", err
	}

	return res, outDir, nil
}

func (a *app) logDiagnostics(diags diagnostic.Diagnostics) {
	for _, d := range diags.All() {
		fields := []zap.Field{
			zap.String("code", d.Code),
			zap.String("operator", d.Operator),
			zap.String("at", d.Position),
		}

		switch d.Severity {
		case diagnostic.DiagnosticError:
			a.logger.Error(d.Message, fields...)
		case diagnostic.DiagnosticWarning:
			a.logger.Warn(d.Message, fields...)
		default:
			a.logger.Info(d.Message, fields...)
		}
	}
}
