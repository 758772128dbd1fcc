package gen

import (
	"strings"

	"kcfgc-gen/internal/config"
	"kcfgc-gen/internal/model"
)

// Builder synthesizes the per-entry method bodies. Bodies that span several
// statements are written through the Writer at its current indentation.
type Builder struct {
	w      *Writer
	naming Naming
	params config.Parameters
}

// NewBuilder returns a Builder writing to w under params.
func NewBuilder(w *Writer, params config.Parameters) *Builder {
	return &Builder{
		w:      w,
		naming: NewNaming(params),
		params: params,
	}
}

// Naming returns the naming policy used by the builder.
func (b *Builder) Naming() Naming {
	return b.naming
}

// AccessorBody returns the getter body, a single return statement. Placement
// and indentation are up to the caller.
func (b *Builder) AccessorBody(e *model.Entry, globalEnums bool) string {
	var sb strings.Builder

	useEnumType := b.params.UseEnumTypes && e.Type == model.KindEnum

	sb.WriteString("return ")

	if useEnumType {
		sb.WriteString("static_cast<" + EnumType(e, globalEnums) + ">(")
	}

	sb.WriteString(b.naming.This() + b.naming.VarPath(e.Name))

	if e.Indexed() {
		sb.WriteString("[i]")
	}

	if useEnumType {
		sb.WriteString(")")
	}

	sb.WriteString(";\n")

	return sb.String()
}

// target is the storage expression a setter assigns to.
func (b *Builder) target(e *model.Entry) string {
	expr := b.naming.This() + b.naming.VarPath(e.Name)
	if e.Indexed() {
		expr += "[i]"
	}

	return expr
}

// hasBody reports whether a setter compares against the stored value and
// wraps its statements in braces. Only observed changes need the comparison.
func (b *Builder) hasBody(e *model.Entry) bool {
	return len(e.Signals) > 0 || b.params.GenerateProperties
}
