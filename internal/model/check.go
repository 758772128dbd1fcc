package model

import (
	"fmt"
	"strings"

	"kcfgc-gen/internal/common"
	"kcfgc-gen/internal/diagnostic"
	"kcfgc-gen/internal/match"
)

// Check performs the structural checks the generator relies on and resolves
// each entry's signal references. It is the last step of Parse, exported for
// schemas built in code.
func Check(s *Schema) *diagnostic.Diagnostics {
	res := &diagnostic.Diagnostics{}
	if s == nil {
		res.AddError("schema_is_nil", "schema is nil", "", "")
		return res
	}

	signals := make(map[string]Signal, len(s.Signals))
	names := make([]string, 0, len(s.Signals))

	for _, sig := range s.Signals {
		if sig.Name == "" {
			res.AddError("empty_signal_name", "signal without a name", "", "signals")
			continue
		}

		if _, seen := signals[sig.Name]; !seen {
			names = append(names, sig.Name)
		}

		signals[sig.Name] = sig
	}

	for _, dup := range common.Duplicates(s.Signals, func(sig Signal) string { return sig.Name }) {
		res.AddError("duplicate_signal", fmt.Sprintf("duplicate signal %q", dup), "", "signals")
	}

	for i, e := range s.Entries {
		if e == nil {
			res.AddError("entry_is_nil", fmt.Sprintf("entry #%d is empty", i), "", "")
			continue
		}

		checkEntry(res, e)
		resolveSignals(res, e, signals, names)
	}

	live := make([]*Entry, 0, len(s.Entries))

	for _, e := range s.Entries {
		if e != nil && e.Name != "" {
			live = append(live, e)
		}
	}

	for _, dup := range common.Duplicates(live, func(e *Entry) string { return e.Name }) {
		res.AddError("duplicate_entry", fmt.Sprintf("duplicate entry %q", dup), dup, "name")
	}

	return res
}

func checkEntry(res *diagnostic.Diagnostics, e *Entry) {
	if e.Name == "" {
		res.AddError("empty_name", "entry without a name", "", "name")
		return
	}

	if e.Type == KindUnknown {
		res.AddError("missing_type", "entry has no type", e.Name, "type")
	}

	bounds := []struct {
		field string
		value Literal
	}{{"min", e.Min}, {"max", e.Max}}

	for _, b := range bounds {
		if b.value != "" && !e.Type.IsOrdered() {
			res.AddError("bound_on_unordered",
				fmt.Sprintf("%s bound set on %s entry", b.field, e.Type), e.Name, b.field)
		}
	}

	if e.Min == "0" && e.Type.IsUnsigned() {
		res.AddInfo("unsigned_min_zero",
			"lower bound check omitted: an unsigned value cannot be below 0", e.Name, "min")
	}

	if !e.Indexed() {
		if e.ParamType != KindUnknown {
			res.AddError("param_type_without_param", "paramType set on a scalar entry", e.Name, "paramType")
		}

		return
	}

	if !e.ParamType.IsIndex() {
		res.AddError("invalid_param_type",
			fmt.Sprintf("index type %s is not one of Int, UInt, Enum", e.ParamType), e.Name, "paramType")
	}

	if !strings.Contains(e.ParamName, "$("+e.Param+")") {
		res.AddWarning("param_placeholder_missing",
			fmt.Sprintf("paramName %q does not contain $(%s)", e.ParamName, e.Param), e.Name, "paramName")
	}
}

// resolveSignals leaves Signals untouched for entries built in code without Emits.
func resolveSignals(res *diagnostic.Diagnostics, e *Entry, declared map[string]Signal, names []string) {
	if common.IsEmpty(e.Emits) {
		return
	}

	e.Signals = make([]Signal, 0, len(e.Emits))

	for _, name := range e.Emits {
		sig, ok := declared[name]
		if !ok {
			msg := fmt.Sprintf("signal %q is not declared", name)
			if hint := match.Hint(name, names); hint != "" {
				msg += "; " + hint
			}

			res.AddError("undeclared_signal", msg, e.Name, "signals")
			continue
		}

		e.Signals = append(e.Signals, sig)
	}
}
