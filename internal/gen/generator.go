package gen

import (
	"strings"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"kcfgc-gen/internal/config"
	"kcfgc-gen/internal/model"
)

// Generator writes the accessor source file of one configuration class.
type Generator struct {
	params config.Parameters
	logger *zap.Logger
	header string
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger; the default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithHeader makes the source include its own header first, e.g. "settings.h".
func WithHeader(name string) Option {
	return func(g *Generator) {
		g.header = name
	}
}

// NewGenerator creates a Generator for params.
func NewGenerator(params config.Parameters, opts ...Option) *Generator {
	g := &Generator{
		params: params,
		logger: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Generate writes the banner, includes and namespaces, then the getter,
// immutability predicate and (if enabled) setter of every entry in order.
// Write errors surface from w.Save.
func (g *Generator) Generate(w *Writer, s *model.Schema) error {
	if s == nil {
		return errors.New("nil schema")
	}

	if g.params.ClassName == "" {
		return errors.Wrap(config.ErrInvalidParameters, "class name is not set")
	}

	b := NewBuilder(w, g.params)

	w.Start()
	w.Print("\n")

	var headers []string
	if g.header != "" {
		headers = append(headers, `"`+g.header+`"`)
	}

	headers = append(headers, g.params.SourceIncludeFiles...)
	headers = append(headers, s.Includes...)

	if len(headers) > 0 {
		w.AddHeaders(headers)
		w.Print("\n")
	}

	w.BeginNamespaces()

	setters := 0

	for _, e := range s.Entries {
		g.logger.Debug("emitting entry",
			zap.String("entry", e.Name),
			zap.Stringer("type", e.Type),
			zap.Bool("indexed", e.Indexed()),
			zap.Int("signals", len(e.Signals)))

		if g.writeEntry(w, b, e) {
			setters++
		}
	}

	w.EndNamespaces()

	g.logger.Info("generated accessors",
		zap.String("class", g.params.ClassName),
		zap.Int("entries", len(s.Entries)),
		zap.Int("setters", setters))

	return nil
}

// writeEntry emits the methods of one entry and reports whether a setter
// was written.
func (g *Generator) writeEntry(w *Writer, b *Builder, e *model.Entry) bool {
	n := b.Naming()
	class := g.params.ClassName
	globalEnums := g.params.GlobalEnums

	var index []string
	if e.Indexed() {
		index = append(index, indexType(e)+" i")
	}

	w.Line(valueType(e, g.params) + " " + class + "::" + GetFunction(e.Name) + signature(index) + n.Const())
	w.StartScope()
	w.Print(w.Whitespace() + b.AccessorBody(e, globalEnums))
	w.EndScope(FinalizerNone)
	w.Print("\n")

	w.Line("bool " + class + "::" + immutableFunction(e.Name, "") + signature(index) + n.Const())
	w.StartScope()
	b.ImmutableBody(e, globalEnums)
	w.EndScope(FinalizerNone)
	w.Print("\n")

	if !g.params.HasMutator(e.Name) {
		return false
	}

	args := append(index, argType(e, g.params)+" v")

	w.Line("void " + SetFunction(e.Name, class) + signature(args))
	w.StartScope()
	b.MutatorBody(e)
	w.EndScope(FinalizerNone)
	w.Print("\n")

	return true
}

// signature formats a parameter list the way generated code spells it:
// "()" when empty, "( a, b )" otherwise.
func signature(params []string) string {
	if len(params) == 0 {
		return "()"
	}

	return "( " + strings.Join(params, ", ") + " )"
}
