package model

import (
	"github.com/cockroachdb/errors"
	"gopkg.in/yaml.v3"
)

// Schema is the entry collection of one generated configuration class.
type Schema struct {
	// File is the originating schema file name, used for the generated banner.
	File string `yaml:"file" toml:"file"`
	// Includes are extra include directives requested by the schema.
	Includes []string `yaml:"includes,omitempty" toml:"includes"`
	// Signals declares every change notification entries may reference.
	Signals []Signal `yaml:"signals,omitempty" toml:"signals"`
	// Entries in declaration order.
	Entries []*Entry `yaml:"entries" toml:"entries"`
}

// Signal is a change notification associated with one or more entries.
type Signal struct {
	Name string `yaml:"name" toml:"name"`
	// Modify selects direct emission on change. When false the signal's bit
	// is accumulated into the settingsChanged mask instead.
	Modify bool `yaml:"modify,omitempty" toml:"modify"`
}

// Entry is one configuration key declaration.
type Entry struct {
	Name string `yaml:"name" toml:"name"`
	Type Kind   `yaml:"type" toml:"type"`
	// Min and Max are literal bound expressions, only set for ordered kinds.
	Min Literal `yaml:"min,omitempty" toml:"min"`
	Max Literal `yaml:"max,omitempty" toml:"max"`
	// Param names the index of an indexed entry; empty for scalar entries.
	Param string `yaml:"param,omitempty" toml:"param"`
	// ParamName is the immutability key template; it contains the
	// placeholder $(<Param>).
	ParamName string `yaml:"paramName,omitempty" toml:"paramName"`
	ParamType Kind   `yaml:"paramType,omitempty" toml:"paramType"`
	// Choices is the explicit enum type name of an Enum entry, if any.
	Choices string `yaml:"choices,omitempty" toml:"choices"`
	// Emits lists the names of the signals raised when the entry changes.
	Emits []string `yaml:"signals,omitempty" toml:"signals"`

	// Signals is Emits resolved against Schema.Signals, in Emits order.
	Signals []Signal `yaml:"-" toml:"-"`
}

// Indexed reports whether the entry is addressed by an index variable.
func (e *Entry) Indexed() bool {
	return e.Param != ""
}

// Literal is a bound expression copied verbatim into generated code.
// Numeric and string scalars are both accepted when decoding.
type Literal string

// String returns the literal text.
func (l Literal) String() string {
	return string(l)
}

// UnmarshalYAML accepts any scalar and keeps its source text.
func (l *Literal) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return errors.Newf("expected scalar bound, got %v", node.Kind)
	}

	*l = Literal(node.Value)

	return nil
}

// UnmarshalTOML implements toml.Unmarshaler. TOML numbers lose their source
// spelling when decoded (0x0 becomes 0), so bounds must be quoted strings.
func (l *Literal) UnmarshalTOML(v any) error {
	text, ok := v.(string)
	if !ok {
		return errors.WithHint(
			errors.Newf("bound %v must be a quoted string in TOML models", v),
			`quote the literal, e.g. min = "0x0"`)
	}

	*l = Literal(text)

	return nil
}
