/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package cidtogid builds the dense CIDToGIDMap stream of a CIDFontType2 font.
package cidtogid

import (
	"encoding/binary"

	"github.com/unidoc/cidmetrics/common"
	"github.com/unidoc/cidmetrics/pdf/fontmetrics"
)

// DefaultMaxCID is the largest CID of a full table.
const DefaultMaxCID = fontmetrics.MaxCID

// Table maps every CID from 0 to its maximum CID to a glyph index. Unmapped CIDs map to 0.
type Table struct {
	gids []fontmetrics.GlyphIndex
}

// Build returns the table for CIDs 0 to `maxCID`. CIDs of `glyphs` above `maxCID` are dropped.
func Build(glyphs map[fontmetrics.CID]fontmetrics.GlyphIndex, maxCID fontmetrics.CID) *Table {
	t := &Table{gids: make([]fontmetrics.GlyphIndex, int(maxCID)+1)}
	dropped := 0
	for cid, gid := range glyphs {
		if cid > maxCID {
			dropped++
			continue
		}
		t.gids[cid] = gid
	}
	if dropped > 0 {
		common.Log.Debug("CIDToGIDMap: dropped %d CIDs above %d", dropped, maxCID)
	}
	return t
}

// Len returns the number of entries of `t`.
func (t *Table) Len() int {
	return len(t.gids)
}

// Lookup returns the glyph of `cid`, 0 if `cid` is unmapped or beyond the table.
func (t *Table) Lookup(cid fontmetrics.CID) fontmetrics.GlyphIndex {
	if int(cid) >= len(t.gids) {
		return 0
	}
	return t.gids[cid]
}

// Bytes returns the table as a stream of big-endian uint16 glyph indices, 2 bytes per CID.
func (t *Table) Bytes() []byte {
	b := make([]byte, 2*len(t.gids))
	for i, gid := range t.gids {
		binary.BigEndian.PutUint16(b[2*i:], uint16(gid))
	}
	return b
}
