package gen

import "kcfgc-gen/internal/model"

// MutatorBody writes the setter body: range clamping with a runtime
// diagnostic, the immutability guard, the assignment and change
// notification in signal order.
func (b *Builder) MutatorBody(e *model.Entry) {
	w := b.w
	ws := w.Whitespace()

	// v < 0 can never hold for unsigned values.
	if e.Min != "" && (e.Min != "0" || !e.Type.IsUnsigned()) {
		lower := e.Min.String()

		w.Print(ws + "if (v < " + lower + ")\n")
		w.Print(ws + "{\n")
		w.Print(ws + b.debugMethod(e.Name))
		w.Print(": value \" << v << \" is less than the minimum value of " + lower + "\";\n")
		w.Print(ws + "  v = " + lower + ";\n")
		w.Print(ws + "}\n")
	}

	if e.Max != "" {
		upper := e.Max.String()

		w.Print("\n")
		w.Print(ws + "if (v > " + upper + ")\n")
		w.Print(ws + "{\n")
		w.Print(ws + b.debugMethod(e.Name))
		w.Print(": value \" << v << \" is greater than the maximum value of " + upper + "\";\n")
		w.Print(ws + "  v = " + upper + ";\n")
		w.Print(ws + "}\n\n")
	}

	target := b.target(e)
	hasBody := b.hasBody(e)

	b.ifSetGuard(e, target)

	if hasBody {
		w.Print(" {")
	}

	w.Print("\n")
	w.Print(ws + "  " + target + " = v;\n")

	for _, signal := range e.Signals {
		if signal.Modify {
			w.Print(ws + "  Q_EMIT " + b.naming.This() + signal.Name + "();\n")
		} else {
			w.Print(ws + "  " + b.naming.This() + b.naming.VarPath("settingsChanged") +
				" |= " + SignalEnumName(signal.Name) + ";\n")
		}
	}

	if hasBody {
		w.Print(ws + "}\n")
	}
}

// ifSetGuard writes the condition guarding the assignment, without a line
// break.
func (b *Builder) ifSetGuard(e *model.Entry, target string) {
	w := b.w

	w.Print(w.Whitespace() + "if (")

	if b.hasBody(e) {
		w.Print("v != " + target + " && ")
	}

	w.Print("!" + b.naming.This() + b.naming.ImmutableFunction(e.Name) + "(")

	if e.Indexed() {
		w.Print(" i ")
	}

	w.Print("))")
}

// debugMethod starts the range diagnostic statement, up to and including the
// setter name inside the opening string literal.
func (b *Builder) debugMethod(name string) string {
	if b.params.CategoryLoggingName == "" {
		return "  qDebug() << \"" + SetFunction(name, "")
	}

	return "  qCDebug(" + b.params.CategoryLoggingName + ") << \"" + SetFunction(name, "")
}
