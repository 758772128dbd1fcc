package config

import (
	"bytes"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables overriding parameters,
// e.g. KCFGC_CLASSNAME.
const EnvPrefix = "KCFGC"

// ErrInvalidParameters is returned when a parameter set cannot be used.
var ErrInvalidParameters = errors.New("invalid generation parameters")

// NewViper returns a viper instance with defaults and environment binding.
func NewViper() *viper.Viper {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	SetDefaults(v)

	return v
}

// LoadFile reads parameters from a TOML or YAML file.
func LoadFile(path string) (Parameters, error) {
	v := NewViper()

	return LoadWithViper(v, path)
}

// LoadWithViper reads path into v (which may carry bound flags) and decodes
// the result. An empty path decodes defaults, environment and flags only.
func LoadWithViper(v *viper.Viper, path string) (Parameters, error) {
	if path != "" {
		switch strings.ToLower(filepath.Ext(path)) {
		case ".toml", ".yaml", ".yml":
		default:
			return Parameters{}, errors.WithHint(
				errors.Wrapf(ErrInvalidParameters, "unsupported parameter file %s", path),
				"use a .toml, .yaml or .yml parameter file")
		}

		v.SetConfigFile(path)

		if err := v.ReadInConfig(); err != nil {
			return Parameters{}, errors.Wrapf(err, "failed to read parameter file %s", path)
		}
	}

	return Decode(v)
}

// Parse reads parameters of the given config type ("toml" or "yaml") from data.
func Parse(data []byte, configType string) (Parameters, error) {
	v := NewViper()
	v.SetConfigType(configType)

	if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
		return Parameters{}, errors.Wrapf(err, "failed to read %s parameters", configType)
	}

	return Decode(v)
}

// Decode unmarshals the parameters held by v.
func Decode(v *viper.Viper) (Parameters, error) {
	var p Parameters
	if err := v.Unmarshal(&p); err != nil {
		return Parameters{}, errors.Wrap(err, "failed to unmarshal parameters")
	}

	all, names, err := decodeMutators(v.Get(KeyMutators))
	if err != nil {
		return Parameters{}, err
	}

	p.AllMutators, p.Mutators = all, names

	if p.SourceExtension == "" {
		p.SourceExtension = "cpp"
	}

	if err := p.Validate(); err != nil {
		return Parameters{}, err
	}

	return p, nil
}

// decodeMutators accepts true/false or a list (slice or comma-separated string)
// of entry names.
func decodeMutators(raw any) (bool, []string, error) {
	switch val := raw.(type) {
	case nil:
		return false, nil, nil
	case bool:
		return val, nil, nil
	case string:
		if b, err := strconv.ParseBool(val); err == nil {
			return b, nil, nil
		}

		return false, splitNames(strings.Split(val, ",")), nil
	case []string:
		return false, splitNames(val), nil
	case []any:
		names := make([]string, 0, len(val))

		for _, n := range val {
			s, ok := n.(string)
			if !ok {
				return false, nil, errors.Wrapf(ErrInvalidParameters, "mutator name %v is not a string", n)
			}

			names = append(names, s)
		}

		return false, splitNames(names), nil
	default:
		return false, nil, errors.Wrapf(ErrInvalidParameters, "mutators must be a boolean or a list, got %T", raw)
	}
}

func splitNames(in []string) []string {
	out := make([]string, 0, len(in))

	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}

	return out
}

// Validate checks the settings the generator cannot work without.
func (p Parameters) Validate() error {
	if p.ClassName == "" {
		return errors.WithHint(
			errors.Wrap(ErrInvalidParameters, "class name is not set"),
			"set ClassName in the parameter file or pass --class-name")
	}

	switch p.MemberVariables {
	case "", "private", "protected", "public", "dpointer":
	default:
		return errors.Wrapf(ErrInvalidParameters, "unknown MemberVariables %q", p.MemberVariables)
	}

	for _, seg := range strings.Split(p.NameSpace, "::") {
		if p.NameSpace != "" && seg == "" {
			return errors.Wrapf(ErrInvalidParameters, "empty segment in namespace %q", p.NameSpace)
		}
	}

	return nil
}
