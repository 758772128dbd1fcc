// Package model describes the parsed configuration-entry model that the
// generator consumes.
//
// A Schema is the read-only entry collection for one configuration class.
// It is normally produced from a declarative YAML or TOML file:
//
//	file: example
//	includes:
//	  - qcolor.h
//	signals:
//	  - name: colorChanged
//	    modify: true
//	entries:
//	  - name: Color
//	    type: Color
//	    signals: [colorChanged]
//	  - name: Size
//	    type: UInt
//	    min: 0
//	    max: 72
//	  - name: Margin
//	    type: Int
//	    param: side
//	    paramType: Enum
//	    paramName: Margin$(side)
//
// Key types:
//   - Kind: the type tag of an entry or of its index
//   - Entry: one configuration key declaration
//   - Signal: a change notification attached to entries
package model
