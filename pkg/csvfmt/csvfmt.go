// Package csvfmt implements the minimal CSV quoting used by translation exports.
//
// A field is quoted only when it contains a comma or a double quote; embedded
// quotes are doubled. Newlines and surrounding whitespace are written as is,
// which is why encoding/csv (which quotes both) is not used here.
package csvfmt

import "strings"

// Escape returns v ready to be written as a CSV field.
func Escape(v string) string {
	if !strings.ContainsAny(v, `,"`) {
		return v
	}
	return `"` + strings.ReplaceAll(v, `"`, `""`) + `"`
}

