package gen

import (
	"kcfgc-gen/internal/config"
	"kcfgc-gen/internal/model"
)

// cppTypes maps entry kinds to the Qt value types of generated accessors.
var cppTypes = map[model.Kind]string{
	model.KindString:     "QString",
	model.KindPassword:   "QString",
	model.KindPath:       "QString",
	model.KindPathList:   "QStringList",
	model.KindURL:        "QUrl",
	model.KindURLList:    "QList<QUrl>",
	model.KindStringList: "QStringList",
	model.KindFont:       "QFont",
	model.KindRect:       "QRect",
	model.KindRectF:      "QRectF",
	model.KindSize:       "QSize",
	model.KindSizeF:      "QSizeF",
	model.KindColor:      "QColor",
	model.KindPoint:      "QPoint",
	model.KindPointF:     "QPointF",
	model.KindInt:        "int",
	model.KindUInt:       "uint",
	model.KindBool:       "bool",
	model.KindDouble:     "double",
	model.KindDateTime:   "QDateTime",
	model.KindLongLong:   "qint64",
	model.KindULongLong:  "quint64",
	model.KindIntList:    "QList<int>",
	model.KindEnum:       "int",
}

// CppType returns the value type of a kind, "QVariant" for unmapped kinds.
func CppType(k model.Kind) string {
	if t, ok := cppTypes[k]; ok {
		return t
	}

	return "QVariant"
}

// passByValue lists the kinds whose setter argument is a plain value.
func passByValue(k model.Kind) bool {
	switch k {
	case model.KindInt, model.KindUInt, model.KindBool, model.KindDouble,
		model.KindLongLong, model.KindULongLong, model.KindEnum:
		return true
	default:
		return false
	}
}

// valueType is the getter return type of an entry.
func valueType(e *model.Entry, params config.Parameters) string {
	if e.Type == model.KindEnum && params.UseEnumTypes {
		return EnumType(e, params.GlobalEnums)
	}

	return CppType(e.Type)
}

// argType is the setter argument type of an entry.
func argType(e *model.Entry, params config.Parameters) string {
	t := valueType(e, params)
	if passByValue(e.Type) {
		return t
	}

	return "const " + t + " &"
}

// indexType is the C++ type of the index variable i.
func indexType(e *model.Entry) string {
	if e.ParamType == model.KindUInt {
		return "uint"
	}

	return "int"
}
