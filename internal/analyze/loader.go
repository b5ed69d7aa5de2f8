package analyze

import (
	"fmt"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/tools/go/packages"

	"vecop-generator/internal/diagnostic"
)

// LoadMode specifies what information to load from packages.
const LoadMode = packages.NeedName |
	packages.NeedFiles |
	packages.NeedSyntax |
	packages.NeedTypes |
	packages.NeedTypesInfo

// Scanner loads Go packages and collects their operator directives.
type Scanner struct {
	logger *zap.Logger
	// Dir is the working directory for resolving patterns; empty means the
	// current directory.
	Dir string
}

// NewScanner creates a new Scanner. A nil logger discards output.
func NewScanner(logger *zap.Logger) *Scanner {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Scanner{logger: logger}
}

// ScanResult holds the scanned packages and the problems found in their
// directives.
type ScanResult struct {
	Packages    []*PackageInfo
	Diagnostics diagnostic.Diagnostics
}

// Scan loads the packages matching patterns (e.g. "./vector",
// "vecop-generator/vector") and collects directives in source order.
//
// Type errors do not fail the scan: the generated file of the package may be
// stale or missing while the generator runs. List and parse errors do.
func (s *Scanner) Scan(patterns ...string) (*ScanResult, error) {
	cfg := &packages.Config{
		Mode: LoadMode,
		Dir:  s.Dir,
	}

	pkgs, err := packages.Load(cfg, patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}

	var errs []error

	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			if e.Kind == packages.TypeError {
				s.logger.Warn("ignoring type error", zap.String("package", pkg.PkgPath), zap.String("error", e.Error()))
				continue
			}

			errs = append(errs, e)
		}
	}

	if len(errs) > 0 {
		return nil, fmt.Errorf("package errors: %v", errs)
	}

	res := &ScanResult{}

	for _, pkg := range pkgs {
		info := s.processPackage(pkg, &res.Diagnostics)
		res.Packages = append(res.Packages, info)

		s.logger.Debug("scanned package",
			zap.String("package", info.Path),
			zap.String("dir", info.Dir),
			zap.Int("directives", len(info.Directives)))
	}

	return res, nil
}

// processPackage extracts directives from a loaded package.
func (s *Scanner) processPackage(pkg *packages.Package, diags *diagnostic.Diagnostics) *PackageInfo {
	info := &PackageInfo{
		Path:  pkg.PkgPath,
		Name:  pkg.Name,
		Types: pkg.Types,
	}

	if len(pkg.GoFiles) > 0 {
		info.Dir = filepath.Dir(pkg.GoFiles[0])
	}

	for _, file := range pkg.Syntax {
		for _, group := range file.Comments {
			for _, c := range group.List {
				if !IsDirective(c.Text) {
					continue
				}

				pos := pkg.Fset.Position(c.Slash)

				d, err := ParseDirective(strings.TrimRight(c.Text, " \t\r"))
				if err != nil {
					d.Pos = pos
					diags.AddError(diagnostic.CodeMalformedDirective, err.Error(), "", d.Position())

					continue
				}

				d.Pos = pos
				info.Directives = append(info.Directives, d)
			}
		}
	}

	return info
}
