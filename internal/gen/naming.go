package gen

import (
	"strings"

	"kcfgc-gen/internal/common"
	"kcfgc-gen/internal/config"
	"kcfgc-gen/internal/model"
)

// staticPrefix reaches the singleton instance from static accessors.
const staticPrefix = "self()->"

// Naming derives identifiers and storage expressions for entries. It is a
// pure function of the generation parameters.
type Naming struct {
	params config.Parameters
}

// NewNaming returns the naming policy for params.
func NewNaming(params config.Parameters) Naming {
	return Naming{params: params}
}

// This returns the accessor-call prefix: self()-> for static accessors,
// nothing for instance methods.
func (n Naming) This() string {
	if n.params.StaticAccessors {
		return staticPrefix
	}

	return ""
}

// Const returns the qualifier of read accessors: " const" for instance
// methods, nothing for static ones.
func (n Naming) Const() string {
	if n.params.StaticAccessors {
		return ""
	}

	return " const"
}

// VarName is the member holding the entry value: mFoo for direct members,
// foo behind a dpointer.
func (n Naming) VarName(name string) string {
	if n.params.DPointer() {
		return common.LowerFirst(name)
	}

	return "m" + common.UpperFirst(name)
}

// VarPath is the storage expression of the entry value.
func (n Naming) VarPath(name string) string {
	if n.params.DPointer() {
		return "d->" + n.VarName(name)
	}

	return n.VarName(name)
}

// ImmutableFunction names the per-entry immutability predicate, qualified
// with the class name under dpointer storage.
func (n Naming) ImmutableFunction(name string) string {
	className := ""
	if n.params.DPointer() {
		className = n.params.ClassName
	}

	return immutableFunction(name, className)
}

func immutableFunction(name, className string) string {
	result := "is" + common.UpperFirst(name) + "Immutable"
	if className != "" {
		result = className + "::" + result
	}

	return result
}

// GetFunction names the getter of an entry.
func GetFunction(name string) string {
	return common.LowerFirst(name)
}

// SetFunction names the setter of an entry, optionally class-qualified.
func SetFunction(name, className string) string {
	result := "set" + common.UpperFirst(name)
	if className != "" {
		result = className + "::" + result
	}

	return result
}

// EnumName is the enum declared for a parameter or entry name.
func EnumName(name string) string {
	return "Enum" + common.UpperFirst(name)
}

// EnumType is the C++ type of an Enum entry's value. Without global enums
// the enum is nested in its holder struct.
func EnumType(e *model.Entry, globalEnums bool) string {
	if e.Choices != "" {
		return e.Choices
	}

	result := EnumName(e.Name)
	if !globalEnums {
		result += "::type"
	}

	return result
}

// EnumStringTable is the string table of the enum indexing a parameter.
func EnumStringTable(param string, globalEnums bool) string {
	if globalEnums {
		return EnumName(param) + "ToString"
	}

	return EnumName(param) + "::enumToString"
}

// SignalEnumName is the bit constant of a signal in the settingsChanged mask.
func SignalEnumName(signal string) string {
	return "signal" + common.UpperFirst(signal)
}

// ParamPlaceholder is the token standing for the index in a key template.
func ParamPlaceholder(param string) string {
	return "$(" + param + ")"
}

// ParamKey turns a key template into a QString::arg format string by
// replacing the index placeholder with %1. Only the exact placeholder of
// param is substituted.
func ParamKey(template, param string) string {
	return strings.ReplaceAll(template, ParamPlaceholder(param), "%1")
}
