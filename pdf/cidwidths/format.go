/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package cidwidths

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// PDF renders `t` as the /W and /DW entries of a CIDFont dictionary, one record per line:
//
//	/W [
//	  20 [600]
//	  21 23 700
//	]
//	/DW 500
func (t *Table) PDF() string {
	var buf bytes.Buffer
	buf.WriteString("/W [\n")
	for _, rec := range t.Records {
		if rec.IsRange() {
			fmt.Fprintf(&buf, "  %d %d %d\n", rec.Start, rec.End, rec.Width)
		} else {
			fmt.Fprintf(&buf, "  %d [%s]\n", rec.Start, joinInts(rec.Widths, " "))
		}
	}
	buf.WriteString("]\n")
	fmt.Fprintf(&buf, "/DW %d", t.DW)
	return buf.String()
}

// JS renders `t` as an ES module exporting the flattened /W array as W and the default width
// as DW:
//
//	export const W = [
//	  20, [600],
//	  21, 23, 700,
//	];
//	export const DW = 500;
func (t *Table) JS() string {
	var buf bytes.Buffer
	buf.WriteString("export const W = [\n")
	for _, rec := range t.Records {
		if rec.IsRange() {
			fmt.Fprintf(&buf, "  %d, %d, %d,\n", rec.Start, rec.End, rec.Width)
		} else {
			fmt.Fprintf(&buf, "  %d, [%s],\n", rec.Start, joinInts(rec.Widths, ", "))
		}
	}
	buf.WriteString("];\n")
	fmt.Fprintf(&buf, "export const DW = %d;", t.DW)
	return buf.String()
}

func joinInts(vals []int, sep string) string {
	strs := make([]string, len(vals))
	for i, v := range vals {
		strs[i] = strconv.Itoa(v)
	}
	return strings.Join(strs, sep)
}
