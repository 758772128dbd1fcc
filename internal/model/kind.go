package model

import (
	"strings"

	"github.com/cockroachdb/errors"

	"kcfgc-gen/internal/match"
)

//go:generate go tool stringer -type=Kind -trimprefix=Kind -output=kind_string.go

// Kind is the type tag of a configuration entry.
type Kind int

const (
	KindUnknown Kind = iota // zero value, never produced by ParseKind

	KindString
	KindPassword
	KindPath
	KindPathList
	KindURL
	KindURLList
	KindStringList
	KindFont
	KindRect
	KindRectF
	KindSize
	KindSizeF
	KindColor
	KindPoint
	KindPointF
	KindInt
	KindUInt
	KindBool
	KindDouble
	KindDateTime
	KindLongLong
	KindULongLong
	KindIntList
	KindEnum

	kindTotal = int(iota)
)

// ParseKind resolves a type tag such as "UInt" or "Enum". Matching is
// case-insensitive.
func ParseKind(s string) (Kind, error) {
	names := make([]string, 0, kindTotal-1)

	for k := KindString; int(k) < kindTotal; k++ {
		if strings.EqualFold(k.String(), s) {
			return k, nil
		}

		names = append(names, k.String())
	}

	err := errors.Newf("unknown entry type %q", s)
	if hint := match.Hint(s, names); hint != "" {
		err = errors.WithHint(err, hint)
	}

	return KindUnknown, err
}

// UnmarshalText implements encoding.TextUnmarshaler. An empty tag decodes to
// KindUnknown.
func (k *Kind) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*k = KindUnknown
		return nil
	}

	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}

	*k = parsed

	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	if k == KindUnknown {
		return nil, nil
	}

	return []byte(k.String()), nil
}

// IsUnsigned reports whether values of this kind cannot be negative.
func (k Kind) IsUnsigned() bool {
	return k == KindUInt || k == KindULongLong
}

// IsOrdered reports whether min/max bounds are meaningful for the kind.
func (k Kind) IsOrdered() bool {
	switch k {
	case KindInt, KindUInt, KindLongLong, KindULongLong, KindDouble:
		return true
	default:
		return false
	}
}

// IsIndex reports whether the kind may be used as the type of an entry index.
func (k Kind) IsIndex() bool {
	return k == KindInt || k == KindUInt || k == KindEnum
}
