package gen

import (
	"bytes"
	"context"
	"fmt"
	"go/format"
	"runtime"
	"text/template"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"vecop-generator/internal/common"
	"vecop-generator/internal/diagnostic"
	"vecop-generator/internal/emit"
	"vecop-generator/internal/mode"
	"vecop-generator/internal/request"
	"vecop-generator/internal/variant"
)

// GeneratorConfig holds configuration for code generation.
type GeneratorConfig struct {
	// OutputDir is where unformatted sidecar files land when formatting
	// fails. Empty disables them.
	OutputDir string
	// Concurrency bounds the number of units emitted in parallel.
	Concurrency int
	// Logger receives progress messages; nil discards them.
	Logger *zap.Logger
	// Table overrides the decision table; nil selects variant.Default().
	Table *variant.Table
}

// DefaultGeneratorConfig returns the default generator configuration.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		Concurrency: runtime.GOMAXPROCS(0),
	}
}

// Generator turns a request config into Go source files.
type Generator struct {
	config GeneratorConfig
	logger *zap.Logger
	table  *variant.Table
}

// NewGenerator creates a new Generator with the given configuration.
func NewGenerator(config GeneratorConfig) *Generator {
	logger := config.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	table := config.Table
	if table == nil {
		table = variant.Default()
	}

	if config.Concurrency < 1 {
		config.Concurrency = 1
	}

	return &Generator{config: config, logger: logger, table: table}
}

// GeneratedFile represents a generated Go source file.
type GeneratedFile struct {
	// Filename is the name of the file relative to the package directory.
	Filename string
	// Content is the formatted Go source code.
	Content []byte
}

// Result is the outcome of a generation run.
type Result struct {
	Files []GeneratedFile
	// Units are the emitted operators in request order.
	Units       []*emit.Unit
	Diagnostics diagnostic.Diagnostics
}

// Generate validates cfg, emits one unit per requested operator and renders
// the operator and examples files. On a validation failure the result still
// carries the diagnostics.
func (g *Generator) Generate(ctx context.Context, cfg *request.Config) (*Result, error) {
	res := &Result{}

	diags := request.Validate(cfg, g.table)
	res.Diagnostics.Merge(*diags)

	if err := diags.Error(); err != nil {
		return res, fmt.Errorf("invalid config: %w", err)
	}

	entries, err := request.Requests(cfg, g.table)
	if err != nil {
		return res, err
	}

	opts, err := request.EmitOptions(cfg)
	if err != nil {
		return res, err
	}

	// scaled examples call ScaleRef, so it has to be part of the output
	opts.ScaledExamples = hasKey(entries, variant.Key{Family: variant.ScalarMultiply, Left: mode.Borrowed})
	if !opts.ScaledExamples && len(entries) > 0 {
		res.Diagnostics.AddInfo(diagnostic.CodeScaledExamplesNeeded,
			"ScaleRef is not generated, addition examples show no scaled operands", "", "")
	}

	units, err := g.emitUnits(ctx, emit.NewEmitter(g.table, opts), entries)
	if err != nil {
		return res, err
	}

	res.Units = units

	if err := checkDuplicates(units, entries); err != nil {
		return res, err
	}

	var examples []emit.ExampleFunc

	for i, u := range units {
		if u.Doc == "" {
			res.Diagnostics.AddWarning(diagnostic.CodeEmptyDocumentation,
				fmt.Sprintf("%s is generated without documentation", u.Name()), u.Key.String(), entries[i].Origin)
		}

		examples = append(examples, u.Examples...)
	}

	ops, err := g.render(opsFileTemplate, cfg.Output, opsFileData{
		Header:  Header,
		Package: cfg.Package,
		Units:   units,
	})
	if err != nil {
		return res, err
	}

	res.Files = append(res.Files, *ops)

	if len(examples) > 0 {
		if cfg.ImportPath == "" {
			return res, fmt.Errorf("import_path is required to render %s", cfg.ExamplesOutput)
		}

		data := examplesFileData{
			Header:     Header,
			Package:    cfg.Package,
			ImportPath: cfg.ImportPath,
			Examples:   examples,
		}

		if common.PkgAlias(cfg.ImportPath) != cfg.Package {
			data.Alias = cfg.Package
		}

		file, err := g.render(examplesFileTemplate, cfg.ExamplesOutput, data)
		if err != nil {
			return res, err
		}

		res.Files = append(res.Files, *file)
	}

	g.logger.Info("generated operators",
		zap.String("package", cfg.Package),
		zap.Int("units", len(units)),
		zap.Int("examples", len(examples)),
		zap.Int("warnings", len(res.Diagnostics.Warnings)))

	return res, nil
}

// emitUnits emits entries in parallel. Units land at their request index,
// so the order does not depend on scheduling.
func (g *Generator) emitUnits(ctx context.Context, emitter *emit.Emitter, entries []request.Entry) ([]*emit.Unit, error) {
	units := make([]*emit.Unit, len(entries))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(g.config.Concurrency)

	for i, entry := range entries {
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			u, err := emitter.Emit(entry.Request)
			if err != nil {
				return fmt.Errorf("%s: %w", entry.Origin, err)
			}

			g.logger.Debug("emitted unit",
				zap.String("func", u.Name()),
				zap.String("key", u.Key.String()),
				zap.String("origin", entry.Origin))

			units[i] = u

			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("emitting operators: %w", err)
	}

	return units, nil
}

func checkDuplicates(units []*emit.Unit, entries []request.Entry) error {
	seen := make(map[string]int, len(units))

	for i, u := range units {
		if first, ok := seen[u.Name()]; ok {
			return fmt.Errorf("duplicate function %s requested at %s and %s", u.Name(), entries[first].Origin, entries[i].Origin)
		}

		seen[u.Name()] = i
	}

	return nil
}

func hasKey(entries []request.Entry, k variant.Key) bool {
	for _, e := range entries {
		if e.Key == k {
			return true
		}
	}

	return false
}

// render executes a file template and formats the result.
func (g *Generator) render(tmpl *template.Template, filename string, data any) (*GeneratedFile, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("executing %s template: %w", tmpl.Name(), err)
	}

	formatted, err := format.Source(buf.Bytes())
	if err != nil {
		// Best-effort: write unformatted code to a sidecar file to aid debugging.
		if p, werr := writeDebugUnformatted(g.config.OutputDir, filename, buf.Bytes()); werr != nil {
			g.logger.Warn("writing unformatted sidecar failed", zap.Error(werr))
		} else if p != "" {
			g.logger.Info("wrote unformatted sidecar", zap.String("path", p))
		}

		return nil, fmt.Errorf("formatting %s: %w", filename, err)
	}

	return &GeneratedFile{Filename: filename, Content: formatted}, nil
}
