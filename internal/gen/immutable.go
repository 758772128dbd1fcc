package gen

import "kcfgc-gen/internal/model"

// ImmutableBody writes the body of the immutability predicate:
//
//	return isImmutable( QStringLiteral( "Name" ) );
//
// Indexed entries format their key template with the index, or with the
// index's enum string when the index is an enum.
func (b *Builder) ImmutableBody(e *model.Entry, globalEnums bool) {
	w := b.w

	w.Print(w.Whitespace() + "return " + b.naming.This() + "isImmutable( QStringLiteral( \"")

	if e.Indexed() {
		w.Print(ParamKey(e.ParamName, e.Param) + "\" ).arg( ")

		if e.ParamType == model.KindEnum {
			w.Print("QLatin1String( " + EnumStringTable(e.Param, globalEnums) + "[i] )")
		} else {
			w.Print("i")
		}

		w.Print(" )")
	} else {
		w.Print(e.Name + "\" )")
	}

	w.Print(" );\n")
}
