package gen

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"kcfgc-gen/internal/config"
	"kcfgc-gen/internal/model"
)

// bodyOf runs fn with a builder whose writer sits inside a function body
// and returns what it wrote.
func bodyOf(t *testing.T, params config.Parameters, fn func(b *Builder)) string {
	t.Helper()

	var buf bytes.Buffer

	w := NewWriter(&buf, "settings", params)
	w.Indent()
	fn(NewBuilder(w, params))
	require.NoError(t, w.Save())

	return buf.String()
}

var instanceParams = config.Parameters{ClassName: "Settings"}

func TestAccessorBody(t *testing.T) {
	tests := []struct {
		name     string
		params   config.Parameters
		entry    *model.Entry
		global   bool
		expected string
	}{
		{
			name:     "scalar",
			params:   instanceParams,
			entry:    &model.Entry{Name: "Color", Type: model.KindString},
			expected: "return mColor;\n",
		},
		{
			name:     "indexed",
			params:   instanceParams,
			entry:    &model.Entry{Name: "Margin", Type: model.KindInt, Param: "side"},
			expected: "return mMargin[i];\n",
		},
		{
			name:     "enum without enum types",
			params:   instanceParams,
			entry:    &model.Entry{Name: "Mode", Type: model.KindEnum},
			expected: "return mMode;\n",
		},
		{
			name:     "enum nested",
			params:   config.Parameters{ClassName: "Settings", UseEnumTypes: true},
			entry:    &model.Entry{Name: "Mode", Type: model.KindEnum},
			expected: "return static_cast<EnumMode::type>(mMode);\n",
		},
		{
			name:     "enum global indexed",
			params:   config.Parameters{ClassName: "Settings", UseEnumTypes: true},
			entry:    &model.Entry{Name: "Mode", Type: model.KindEnum, Param: "screen"},
			global:   true,
			expected: "return static_cast<EnumMode>(mMode[i]);\n",
		},
		{
			name:     "enum with choices name",
			params:   config.Parameters{ClassName: "Settings", UseEnumTypes: true},
			entry:    &model.Entry{Name: "Mode", Type: model.KindEnum, Choices: "Shape"},
			expected: "return static_cast<Shape>(mMode);\n",
		},
		{
			name:     "non-enum ignores enum types",
			params:   config.Parameters{ClassName: "Settings", UseEnumTypes: true},
			entry:    &model.Entry{Name: "Count", Type: model.KindInt},
			expected: "return mCount;\n",
		},
		{
			name:     "static dpointer",
			params:   config.Parameters{ClassName: "Settings", StaticAccessors: true, MemberVariables: "dpointer"},
			entry:    &model.Entry{Name: "Color", Type: model.KindColor},
			expected: "return self()->d->color;\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := NewBuilder(NewWriter(&bytes.Buffer{}, "settings", tt.params), tt.params)
			assert.Equal(t, tt.expected, b.AccessorBody(tt.entry, tt.global))
		})
	}
}

func TestAccessorBodyDoesNotWrite(t *testing.T) {
	out := bodyOf(t, instanceParams, func(b *Builder) {
		b.AccessorBody(&model.Entry{Name: "Color", Type: model.KindString}, false)
	})
	assert.Empty(t, out)
}

func TestImmutableBody(t *testing.T) {
	margin := func(paramType model.Kind) *model.Entry {
		return &model.Entry{
			Name:      "Margin",
			Type:      model.KindInt,
			Param:     "side",
			ParamName: "Margin$(side)",
			ParamType: paramType,
		}
	}

	tests := []struct {
		name     string
		params   config.Parameters
		entry    *model.Entry
		global   bool
		expected string
	}{
		{
			name:     "scalar",
			params:   instanceParams,
			entry:    &model.Entry{Name: "Color", Type: model.KindColor},
			expected: `    return isImmutable( QStringLiteral( "Color" ) );` + "\n",
		},
		{
			name:     "integer index",
			params:   instanceParams,
			entry:    margin(model.KindInt),
			expected: `    return isImmutable( QStringLiteral( "Margin%1" ).arg( i ) );` + "\n",
		},
		{
			name:     "enum index global",
			params:   instanceParams,
			entry:    margin(model.KindEnum),
			global:   true,
			expected: `    return isImmutable( QStringLiteral( "Margin%1" ).arg( QLatin1String( EnumSideToString[i] ) ) );` + "\n",
		},
		{
			name:     "enum index nested",
			params:   instanceParams,
			entry:    margin(model.KindEnum),
			expected: `    return isImmutable( QStringLiteral( "Margin%1" ).arg( QLatin1String( EnumSide::enumToString[i] ) ) );` + "\n",
		},
		{
			name:     "static",
			params:   config.Parameters{ClassName: "Settings", StaticAccessors: true},
			entry:    &model.Entry{Name: "Color", Type: model.KindColor},
			expected: `    return self()->isImmutable( QStringLiteral( "Color" ) );` + "\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := bodyOf(t, tt.params, func(b *Builder) { b.ImmutableBody(tt.entry, tt.global) })
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestMutatorBody(t *testing.T) {
	tests := []struct {
		name     string
		params   config.Parameters
		entry    *model.Entry
		expected string
	}{
		{
			name:   "no signals no properties",
			params: instanceParams,
			entry:  &model.Entry{Name: "Color", Type: model.KindString},
			expected: "    if (!isColorImmutable())\n" +
				"      mColor = v;\n",
		},
		{
			name:   "unsigned min zero skips lower clamp",
			params: instanceParams,
			entry: &model.Entry{
				Name: "Size", Type: model.KindUInt, Min: "0", Max: "72",
				Signals: []model.Signal{{Name: "sizeChanged", Modify: true}},
			},
			expected: "\n" +
				"    if (v > 72)\n" +
				"    {\n" +
				"      qDebug() << \"setSize: value \" << v << \" is greater than the maximum value of 72\";\n" +
				"      v = 72;\n" +
				"    }\n" +
				"\n" +
				"    if (v != mSize && !isSizeImmutable()) {\n" +
				"      mSize = v;\n" +
				"      Q_EMIT sizeChanged();\n" +
				"    }\n",
		},
		{
			name:   "signed min zero keeps lower clamp",
			params: instanceParams,
			entry:  &model.Entry{Name: "Level", Type: model.KindInt, Min: "0"},
			expected: "    if (v < 0)\n" +
				"    {\n" +
				"      qDebug() << \"setLevel: value \" << v << \" is less than the minimum value of 0\";\n" +
				"      v = 0;\n" +
				"    }\n" +
				"    if (!isLevelImmutable())\n" +
				"      mLevel = v;\n",
		},
		{
			name:   "unsigned non-zero min keeps lower clamp",
			params: config.Parameters{ClassName: "Settings", CategoryLoggingName: "APP_LOG"},
			entry:  &model.Entry{Name: "Count", Type: model.KindULongLong, Min: "1"},
			expected: "    if (v < 1)\n" +
				"    {\n" +
				"      qCDebug(APP_LOG) << \"setCount: value \" << v << \" is less than the minimum value of 1\";\n" +
				"      v = 1;\n" +
				"    }\n" +
				"    if (!isCountImmutable())\n" +
				"      mCount = v;\n",
		},
		{
			name:   "unsigned hex zero min keeps lower clamp",
			params: instanceParams,
			entry:  &model.Entry{Name: "Count", Type: model.KindUInt, Min: "0x0"},
			expected: "    if (v < 0x0)\n" +
				"    {\n" +
				"      qDebug() << \"setCount: value \" << v << \" is less than the minimum value of 0x0\";\n" +
				"      v = 0x0;\n" +
				"    }\n" +
				"    if (!isCountImmutable())\n" +
				"      mCount = v;\n",
		},
		{
			name:   "accumulated signal indexed dpointer",
			params: config.Parameters{ClassName: "Settings", MemberVariables: "dpointer"},
			entry: &model.Entry{
				Name: "Margin", Type: model.KindInt, Param: "side", ParamType: model.KindInt,
				Signals: []model.Signal{{Name: "marginChanged"}},
			},
			expected: "    if (v != d->margin[i] && !Settings::isMarginImmutable( i )) {\n" +
				"      d->margin[i] = v;\n" +
				"      d->settingsChanged |= signalMarginChanged;\n" +
				"    }\n",
		},
		{
			name:   "properties without signals static",
			params: config.Parameters{ClassName: "Settings", StaticAccessors: true, GenerateProperties: true},
			entry:  &model.Entry{Name: "Color", Type: model.KindColor},
			expected: "    if (v != self()->mColor && !self()->isColorImmutable()) {\n" +
				"      self()->mColor = v;\n" +
				"    }\n",
		},
		{
			name:   "several signals keep order",
			params: config.Parameters{ClassName: "Settings", StaticAccessors: true},
			entry: &model.Entry{
				Name: "Font", Type: model.KindFont,
				Signals: []model.Signal{
					{Name: "fontChanged", Modify: true},
					{Name: "appearanceChanged"},
					{Name: "layoutChanged", Modify: true},
				},
			},
			expected: "    if (v != self()->mFont && !self()->isFontImmutable()) {\n" +
				"      self()->mFont = v;\n" +
				"      Q_EMIT self()->fontChanged();\n" +
				"      self()->mSettingsChanged |= signalAppearanceChanged;\n" +
				"      Q_EMIT self()->layoutChanged();\n" +
				"    }\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := bodyOf(t, tt.params, func(b *Builder) { b.MutatorBody(tt.entry) })
			assert.Equal(t, tt.expected, out)
		})
	}
}

func TestMutatorBodySignalCounts(t *testing.T) {
	direct := bodyOf(t, instanceParams, func(b *Builder) {
		b.MutatorBody(&model.Entry{Name: "A", Type: model.KindInt, Signals: []model.Signal{{Name: "aChanged", Modify: true}}})
	})
	assert.Equal(t, 1, strings.Count(direct, "Q_EMIT"))
	assert.NotContains(t, direct, "|=")

	accumulated := bodyOf(t, instanceParams, func(b *Builder) {
		b.MutatorBody(&model.Entry{Name: "A", Type: model.KindInt, Signals: []model.Signal{{Name: "aChanged"}}})
	})
	assert.Equal(t, 1, strings.Count(accumulated, "|="))
	assert.NotContains(t, accumulated, "Q_EMIT")
}

func TestScalarStringEntryEndToEnd(t *testing.T) {
	e := &model.Entry{Name: "Color", Type: model.KindString}

	b := NewBuilder(NewWriter(&bytes.Buffer{}, "settings", instanceParams), instanceParams)
	assert.Equal(t, "return mColor;\n", b.AccessorBody(e, false))

	out := bodyOf(t, instanceParams, func(b *Builder) { b.MutatorBody(e) })
	assert.Equal(t, 1, strings.Count(out, "mColor = v;"))
	assert.NotContains(t, out, "v != ")
	assert.NotContains(t, out, "Q_EMIT")
	assert.NotContains(t, out, "settingsChanged")
}
