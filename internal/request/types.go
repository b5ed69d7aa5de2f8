package request

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"vecop-generator/internal/common"
)

// Config is the root of a vecop YAML file.
type Config struct {
	Version        string            `yaml:"version"`
	Package        string            `yaml:"package,omitempty"`
	ImportPath     string            `yaml:"import_path,omitempty"`
	Container      string            `yaml:"container,omitempty"`
	Constructor    string            `yaml:"constructor,omitempty"`
	Literal        string            `yaml:"literal,omitempty"`
	Elem           string            `yaml:"elem,omitempty"`
	Constraint     string            `yaml:"constraint,omitempty"`
	Constraints    map[string]string `yaml:"constraints,omitempty"`
	ErrorType      string            `yaml:"error_type,omitempty"`
	Output         string            `yaml:"output,omitempty"`
	ExamplesOutput string            `yaml:"examples_output,omitempty"`
	CompleteDocs   bool              `yaml:"complete_docs,omitempty"`
	Operators      []Operator        `yaml:"operators,omitempty"`
}

// Operator requests one or more implementations of an operator family.
type Operator struct {
	Family string      `yaml:"family"`
	Left   OperandList `yaml:"left,omitempty"`
	Right  OperandList `yaml:"right,omitempty"`
	// All requests every mode combination of the family.
	All bool `yaml:"all,omitempty"`
	// Position is the source location of a directive; empty for YAML entries.
	Position string `yaml:"-"`
}

// String returns e.g. "add mut *Vector, Vector".
func (o Operator) String() string {
	if o.All {
		return o.Family + " all"
	}

	operands := []string{o.Left.String()}
	if !common.IsEmpty(o.Right) {
		operands = append(operands, o.Right.String())
	}

	return o.Family + " " + strings.Join(operands, ", ")
}

// OperandList holds operand type expressions. In YAML it is either a single
// string or a sequence of strings.
type OperandList []string

// UnmarshalYAML accepts either a single string or an array of strings.
func (s *OperandList) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var str string

		err := node.Decode(&str)
		if err != nil {
			return err
		}

		if str != "" {
			*s = OperandList{str}
		} else {
			*s = OperandList{}
		}

		return nil

	case yaml.SequenceNode:
		var arr []string

		err := node.Decode(&arr)
		if err != nil {
			return err
		}

		*s = arr

		return nil

	default:
		return fmt.Errorf("expected string or array, got %v", node.Kind)
	}
}

// MarshalYAML outputs a single string if length is 1, otherwise an array.
func (s OperandList) MarshalYAML() (any, error) {
	if len(s) == 1 {
		return s[0], nil
	}

	return []string(s), nil
}

// First returns the first element or empty string if empty.
func (s OperandList) First() string {
	if v, ok := common.First(s); ok {
		return v
	}

	return ""
}

// String returns the single operand or a bracketed list.
func (s OperandList) String() string {
	if len(s) == 1 {
		return s.First()
	}

	return "[" + strings.Join(s, " | ") + "]"
}
