/*
File    : weave/ast/format.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

package ast

import "strconv"

// formatNumber renders a float64 the way the lexer would have read it back:
// integral values print without a trailing ".0" so that print(parse(x)) can
// round-trip `5` rather than drifting to `5.0`.
func formatNumber(value float64) string {
	return strconv.FormatFloat(value, 'g', -1, 64)
}
