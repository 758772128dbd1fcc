// Package config holds the generation parameters that steer code emission
// and loads them with viper from TOML or YAML files, the environment and
// command-line flags.
package config

import "slices"

// Parameters are the process-wide generation settings. A value is read-only
// for the whole generation run and is passed explicitly to every component.
type Parameters struct {
	// File is the schema file name recorded in the generated banner.
	File string `mapstructure:"file"`
	// ClassName of the generated configuration class.
	ClassName string `mapstructure:"classname"`
	// NameSpace may contain several "::"-separated segments.
	NameSpace string `mapstructure:"namespace"`
	// StaticAccessors routes access through self()-> (singleton classes).
	StaticAccessors bool `mapstructure:"singleton"`
	// MemberVariables selects the storage style; "dpointer" stores values
	// behind the d-> indirection.
	MemberVariables string `mapstructure:"membervariables"`
	// GlobalEnums declares enums and their string tables at file scope.
	GlobalEnums bool `mapstructure:"globalenums"`
	// UseEnumTypes casts enum getters to their enum type.
	UseEnumTypes bool `mapstructure:"useenumtypes"`
	// GenerateProperties forces change detection in mutators.
	GenerateProperties bool `mapstructure:"generateproperties"`
	// CategoryLoggingName switches range diagnostics to qCDebug(<name>).
	CategoryLoggingName string   `mapstructure:"categoryloggingname"`
	SourceIncludeFiles  []string `mapstructure:"sourceincludefiles"`
	SourceExtension     string   `mapstructure:"sourceextension"`

	// AllMutators and Mutators are decoded from the single "Mutators" key,
	// which is either a boolean or a list of entry names.
	AllMutators bool     `mapstructure:"-"`
	Mutators    []string `mapstructure:"-"`
}

// DPointer reports whether entry values live behind the d-> indirection.
func (p Parameters) DPointer() bool {
	return p.MemberVariables == "dpointer"
}

// HasMutator reports whether a setter is generated for the named entry.
func (p Parameters) HasMutator(name string) bool {
	return p.AllMutators || slices.Contains(p.Mutators, name)
}
