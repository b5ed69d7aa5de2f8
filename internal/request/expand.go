package request

import (
	"fmt"

	"vecop-generator/internal/emit"
	"vecop-generator/internal/mode"
	"vecop-generator/internal/variant"
)

// Entry is one expanded request together with where it was asked for.
type Entry struct {
	emit.Request
	Key variant.Key
	// Origin is the directive position or the config path of the operator.
	Origin string
}

// Requests expands every operator into entries, in declaration order.
// Operand lists expand into their cartesian product and "all" expands into
// every key the table holds for the family.
func Requests(cfg *Config, table *variant.Table) ([]Entry, error) {
	if table == nil {
		table = variant.Default()
	}

	var res []Entry

	for i := range cfg.Operators {
		entries, err := expand(&cfg.Operators[i], originOf(&cfg.Operators[i], i), table)
		if err != nil {
			return nil, err
		}

		res = append(res, entries...)
	}

	return res, nil
}

func originOf(op *Operator, idx int) string {
	if op.Position != "" {
		return op.Position
	}

	return fmt.Sprintf("operators[%d]", idx)
}

func expand(op *Operator, origin string, table *variant.Table) ([]Entry, error) {
	family, err := variant.ParseFamily(op.Family)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", origin, err)
	}

	if op.All {
		keys := table.KeysOf(family)

		res := make([]Entry, 0, len(keys))
		for _, k := range keys {
			res = append(res, Entry{Request: emit.RequestFor(k), Key: k, Origin: origin})
		}

		return res, nil
	}

	lefts, err := parseOperands(op.Left)
	if err != nil {
		return nil, fmt.Errorf("%s: left: %w", origin, err)
	}

	rights := []mode.Descriptor{{}}
	if family.IsBinary() {
		rights, err = parseOperands(op.Right)
		if err != nil {
			return nil, fmt.Errorf("%s: right: %w", origin, err)
		}
	}

	res := make([]Entry, 0, len(lefts)*len(rights))

	for _, left := range lefts {
		for _, right := range rights {
			req := emit.Request{Family: family, Left: left}

			rightMode := mode.None
			if family.IsBinary() {
				req.Right = right
				rightMode = mode.Classify(right)
			}

			key := variant.KeyFor(family, mode.Classify(left), rightMode)
			if _, err := table.Select(key.Family, key.Left, key.Right); err != nil {
				return nil, fmt.Errorf("%s: %w", origin, err)
			}

			res = append(res, Entry{Request: req, Key: key, Origin: origin})
		}
	}

	return res, nil
}

func parseOperands(list OperandList) ([]mode.Descriptor, error) {
	if len(list) == 0 {
		return nil, fmt.Errorf("%w: missing operand", mode.ErrInvalidDescriptor)
	}

	res := make([]mode.Descriptor, 0, len(list))

	for _, expr := range list {
		d, err := mode.ParseDescriptor(expr)
		if err != nil {
			return nil, err
		}

		res = append(res, d)
	}

	return res, nil
}

// EmitOptions converts the naming settings into emitter options.
func EmitOptions(cfg *Config) (emit.Options, error) {
	opts := emit.Options{
		Package:      cfg.Package,
		Container:    cfg.Container,
		Constructor:  cfg.Constructor,
		Literal:      cfg.Literal,
		Elem:         cfg.Elem,
		Constraint:   cfg.Constraint,
		ErrorType:    cfg.ErrorType,
		CompleteDocs: cfg.CompleteDocs,
	}

	if len(cfg.Constraints) > 0 {
		opts.Constraints = make(map[variant.Family]string, len(cfg.Constraints))

		for name, constraint := range cfg.Constraints {
			family, err := variant.ParseFamily(name)
			if err != nil {
				return emit.Options{}, fmt.Errorf("constraints: %w", err)
			}

			opts.Constraints[family] = constraint
		}
	}

	return opts, nil
}
