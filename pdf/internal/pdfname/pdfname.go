/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package pdfname writes PDF name objects.
package pdfname

import (
	"fmt"
	"strings"
)

// Escape escapes `name` for use as a PDF name object (without the leading slash). Bytes outside
// the printable ASCII range, delimiters and '#' are written as #xx. Backquotes and backslashes
// are escaped too so that the name is safe in a JS template literal.
func Escape(name string) string {
	var sb strings.Builder
	for i := 0; i < len(name); i++ {
		c := name[i]
		if c < 0x21 || c > 0x7E || strings.IndexByte("()<>[]{}/%#`\\", c) >= 0 {
			fmt.Fprintf(&sb, "#%02X", c)
			continue
		}
		sb.WriteByte(c)
	}
	return sb.String()
}
