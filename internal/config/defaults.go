package config

import "github.com/spf13/viper"

// Keys understood in parameter files. Viper matches them case-insensitively,
// so the kcfgc spelling (ClassName, MemberVariables, ...) works unchanged.
const (
	KeyFile                = "file"
	KeyClassName           = "classname"
	KeyNameSpace           = "namespace"
	KeySingleton           = "singleton"
	KeyMemberVariables     = "membervariables"
	KeyGlobalEnums         = "globalenums"
	KeyUseEnumTypes        = "useenumtypes"
	KeyGenerateProperties  = "generateproperties"
	KeyCategoryLoggingName = "categoryloggingname"
	KeySourceIncludeFiles  = "sourceincludefiles"
	KeySourceExtension     = "sourceextension"
	KeyMutators            = "mutators"
)

// SetDefaults registers every key so environment overrides apply to all of them.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyFile, "")
	v.SetDefault(KeyClassName, "")
	v.SetDefault(KeyNameSpace, "")
	v.SetDefault(KeySingleton, false)
	v.SetDefault(KeyMemberVariables, "protected")
	v.SetDefault(KeyGlobalEnums, false)
	v.SetDefault(KeyUseEnumTypes, false)
	v.SetDefault(KeyGenerateProperties, false)
	v.SetDefault(KeyCategoryLoggingName, "")
	v.SetDefault(KeySourceIncludeFiles, []string{})
	v.SetDefault(KeySourceExtension, "cpp")
	v.SetDefault(KeyMutators, false)
}
