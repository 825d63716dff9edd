/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package tounicode builds identity ToUnicode CMaps, in which every character code maps to the
// Unicode code point of the same value.
package tounicode

import (
	"bytes"
	"compress/zlib"
	"fmt"
	"sort"
	"strings"

	"github.com/unidoc/cidmetrics/common"
	"github.com/unidoc/cidmetrics/pdf/fontmetrics"
	"github.com/unidoc/cidmetrics/pdf/internal/pdfname"
)

// MaxBlockSize is the maximum number of mappings in one beginbfchar block.
const MaxBlockSize = 100

// CMap is an identity CMap over a set of codes.
type CMap struct {
	name  string
	codes []fontmetrics.CID
}

// New returns the identity CMap named `name` over `codes`. Duplicate codes are mapped once.
func New(codes []fontmetrics.CID, name string) *CMap {
	sorted := make([]fontmetrics.CID, len(codes))
	copy(sorted, codes)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i] < sorted[j]
	})

	cmap := &CMap{name: name}
	for i, code := range sorted {
		if i > 0 && code == sorted[i-1] {
			continue
		}
		cmap.codes = append(cmap.codes, code)
	}
	if len(cmap.codes) != len(codes) {
		common.Log.Debug("CMap %s: %d duplicate codes", name, len(codes)-len(cmap.codes))
	}
	return cmap
}

// Name returns the CMap name as given to New.
func (cmap *CMap) Name() string {
	return cmap.name
}

// Chunks returns the codes of `cmap` in ascending order, split into blocks of at most MaxBlockSize.
func (cmap *CMap) Chunks() [][]fontmetrics.CID {
	var chunks [][]fontmetrics.CID
	for i := 0; i < len(cmap.codes); i += MaxBlockSize {
		end := i + MaxBlockSize
		if end > len(cmap.codes) {
			end = len(cmap.codes)
		}
		chunks = append(chunks, cmap.codes[i:end])
	}
	return chunks
}

// Text returns the CMap program. Lines are separated by "\n", without a final line break.
func (cmap *CMap) Text() string {
	lines := []string{
		"/CIDInit /ProcSet findresource begin",
		"12 dict begin",
		"begincmap",
		"/CIDSystemInfo << /Registry (Adobe) /Ordering (UCS) /Supplement 0 >> def",
		fmt.Sprintf("/CMapName /%s def", pdfname.Escape(cmap.name)),
		"/CMapType 2 def",
		"1 begincodespacerange",
		"<0000> <FFFF>",
		"endcodespacerange",
	}
	for _, chunk := range cmap.Chunks() {
		lines = append(lines, fmt.Sprintf("%d beginbfchar", len(chunk)))
		for _, code := range chunk {
			lines = append(lines, fmt.Sprintf("<%04X> <%04X>", code, code))
		}
		lines = append(lines, "endbfchar")
	}
	lines = append(lines,
		"endcmap",
		"CMapName currentdict /CMap defineresource pop",
		"end",
		"end",
	)
	return strings.Join(lines, "\n")
}

// Compressed returns the zlib compressed CMap program, the data of a /FlateDecode stream.
func (cmap *CMap) Compressed() ([]byte, error) {
	var buf bytes.Buffer
	w := zlib.NewWriter(&buf)
	_, err := w.Write([]byte(cmap.Text()))
	if err != nil {
		return nil, err
	}
	err = w.Close()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// JS returns an ES module exporting the CMap program as the template literal cMap.
func (cmap *CMap) JS() string {
	return "export const cMap = `" + cmap.Text() + "`;"
}
