/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"sort"

	"github.com/unidoc/cidmetrics/common"
)

// cmapTable represents a Character to Glyph Index Mapping Table (cmap).
// This table defines the mapping of character codes to the glyph index values used
// in the font.
// https://docs.microsoft.com/en-us/typography/opentype/spec/cmap
type cmapTable struct {
	version         uint16
	numTables       uint16
	encodingRecords []encodingRecord // len == numTables

	// unicode is the selected Unicode subtable, nil if the font has none in a supported format.
	unicode *cmapSubtable
}

type encodingRecord struct {
	platformID uint16
	encodingID uint16
	offset     offset32
}

// cmapSubtable holds the decoded mapping of one subtable. Character codes that map to glyph 0
// are not stored.
type cmapSubtable struct {
	platformID uint16
	encodingID uint16
	format     uint16

	runes []rune // sorted ascending.
	gids  map[rune]GlyphIndex
}

// Platform and encoding IDs.
const (
	platformUnicode = 0
	platformMac     = 1
	platformWindows = 3

	encodingWindowsUCS2 = 1
	encodingWindowsUCS4 = 10
)

// Upper bounds on subtable sizes. Guards against excessive allocation for broken fonts.
const (
	maxCmapSegments = 20000
	maxCmapGroups   = 40000
	maxCmapCodes    = maxUnicode + 1 // Total span of all format 12 groups.
	maxUnicode      = 0x10FFFF
)

// unicodePreference returns the rank of an encoding record when selecting the Unicode subtable,
// lower is better, -1 if the record is not Unicode indexed.
func unicodePreference(rec encodingRecord) int {
	switch rec.platformID {
	case platformWindows:
		switch rec.encodingID {
		case encodingWindowsUCS4:
			return 0
		case encodingWindowsUCS2:
			return 2
		}
	case platformUnicode:
		switch rec.encodingID {
		case 4, 6:
			return 1
		case 0, 1, 2, 3:
			return 3
		}
	}
	return -1
}

func (f *font) parseCmap(r *byteReader) (*cmapTable, error) {
	tr, has, err := f.seekToTable(r, "cmap")
	if err != nil {
		return nil, err
	}
	if !has {
		common.Log.Debug("cmap table absent")
		return nil, nil
	}

	t := &cmapTable{}
	err = r.read(&t.version, &t.numTables)
	if err != nil {
		return nil, err
	}

	for i := 0; i < int(t.numTables); i++ {
		var rec encodingRecord
		err = r.read(&rec.platformID, &rec.encodingID, &rec.offset)
		if err != nil {
			return nil, err
		}
		if int64(rec.offset) >= int64(tr.length) {
			common.Log.Debug("cmap subtable offset outside table (%d >= %d)", rec.offset, tr.length)
			continue
		}
		t.encodingRecords = append(t.encodingRecords, rec)
	}

	var candidates []encodingRecord
	for _, rec := range t.encodingRecords {
		if unicodePreference(rec) >= 0 {
			candidates = append(candidates, rec)
		}
	}
	sort.SliceStable(candidates, func(i, j int) bool {
		return unicodePreference(candidates[i]) < unicodePreference(candidates[j])
	})

	for _, rec := range candidates {
		err = r.Seek(int64(tr.offset) + int64(rec.offset))
		if err != nil {
			return nil, err
		}
		st, err := parseCmapSubtable(r)
		if err == errUnsupportedFormat {
			continue
		}
		if err != nil {
			common.Log.Debug("cmap subtable (%d,%d): %v", rec.platformID, rec.encodingID, err)
			return nil, err
		}
		st.platformID = rec.platformID
		st.encodingID = rec.encodingID
		common.Log.Debug("cmap: using subtable (%d,%d) format %d with %d codes",
			st.platformID, st.encodingID, st.format, len(st.runes))
		t.unicode = st
		break
	}

	return t, nil
}

// parseCmapSubtable decodes the subtable at the current offset of `r`.
func parseCmapSubtable(r *byteReader) (*cmapSubtable, error) {
	var format uint16
	err := r.read(&format)
	if err != nil {
		return nil, err
	}

	st := &cmapSubtable{
		format: format,
		gids:   map[rune]GlyphIndex{},
	}
	switch format {
	case 4:
		err = st.parseFormat4(r)
	case 6:
		err = st.parseFormat6(r)
	case 12:
		err = st.parseFormat12(r)
	default:
		common.Log.Debug("cmap subtable format %d not supported", format)
		return nil, errUnsupportedFormat
	}
	if err != nil {
		return nil, err
	}

	st.runes = make([]rune, 0, len(st.gids))
	for code := range st.gids {
		st.runes = append(st.runes, code)
	}
	sort.Slice(st.runes, func(i, j int) bool {
		return st.runes[i] < st.runes[j]
	})
	return st, nil
}

func (st *cmapSubtable) set(code rune, gid GlyphIndex) {
	if gid == 0 || code > maxUnicode {
		return
	}
	st.gids[code] = gid
}

// parseFormat4 reads a segment mapping to delta values subtable (format 4).
func (st *cmapSubtable) parseFormat4(r *byteReader) error {
	var length, language, segCountX2, searchRange, entrySelector, rangeShift uint16
	err := r.read(&length, &language, &segCountX2, &searchRange, &entrySelector, &rangeShift)
	if err != nil {
		return err
	}
	if segCountX2%2 != 0 {
		common.Log.Debug("cmap format 4: odd segCountX2 (%d)", segCountX2)
		return errRangeCheck
	}
	segCount := int(segCountX2 / 2)
	if segCount > maxCmapSegments {
		common.Log.Debug("cmap format 4: too many segments (%d)", segCount)
		return errRangeCheck
	}

	var endCodes, startCodes, idDeltas, idRangeOffsets, glyphIDs []uint16
	err = r.readSlice(&endCodes, segCount)
	if err != nil {
		return err
	}
	var reservedPad uint16
	err = r.read(&reservedPad)
	if err != nil {
		return err
	}
	err = r.readSlice(&startCodes, segCount)
	if err != nil {
		return err
	}
	err = r.readSlice(&idDeltas, segCount)
	if err != nil {
		return err
	}
	err = r.readSlice(&idRangeOffsets, segCount)
	if err != nil {
		return err
	}

	// The glyph id array fills the rest of the subtable.
	numGlyphIDs := (int(length) - 16 - 8*segCount) / 2
	if numGlyphIDs > 0 {
		err = r.readSlice(&glyphIDs, numGlyphIDs)
		if err != nil {
			return err
		}
	}

	for i := 0; i < segCount; i++ {
		start, end := int(startCodes[i]), int(endCodes[i])
		delta := int(idDeltas[i])
		for c := start; c <= end && c < 0xFFFF; c++ {
			if idRangeOffsets[i] == 0 {
				st.set(rune(c), GlyphIndex(uint16(c+delta)))
				continue
			}
			// idRangeOffset is relative to its own position in the idRangeOffsets array.
			idx := int(idRangeOffsets[i])/2 + (c - start) - (segCount - i)
			if idx < 0 || idx >= len(glyphIDs) {
				common.Log.Debug("cmap format 4: glyph index outside array (%d)", idx)
				continue
			}
			gid := glyphIDs[idx]
			if gid != 0 {
				gid = uint16(int(gid) + delta)
			}
			st.set(rune(c), GlyphIndex(gid))
		}
	}
	return nil
}

// parseFormat6 reads a trimmed table mapping subtable (format 6).
func (st *cmapSubtable) parseFormat6(r *byteReader) error {
	var length, language, firstCode, entryCount uint16
	err := r.read(&length, &language, &firstCode, &entryCount)
	if err != nil {
		return err
	}

	var glyphIDs []uint16
	err = r.readSlice(&glyphIDs, int(entryCount))
	if err != nil {
		return err
	}
	for i, gid := range glyphIDs {
		st.set(rune(int(firstCode)+i), GlyphIndex(gid))
	}
	return nil
}

// parseFormat12 reads a segmented coverage subtable (format 12).
func (st *cmapSubtable) parseFormat12(r *byteReader) error {
	var reserved uint16
	var length, language, numGroups uint32
	err := r.read(&reserved, &length, &language, &numGroups)
	if err != nil {
		return err
	}
	if numGroups > maxCmapGroups {
		common.Log.Debug("cmap format 12: too many groups (%d)", numGroups)
		return errRangeCheck
	}

	total := 0
	for i := 0; i < int(numGroups); i++ {
		var startCode, endCode, startGID uint32
		err = r.read(&startCode, &endCode, &startGID)
		if err != nil {
			return err
		}
		if endCode < startCode || endCode > maxUnicode {
			common.Log.Debug("cmap format 12: invalid group [%d, %d]", startCode, endCode)
			return errRangeCheck
		}
		total += int(endCode-startCode) + 1
		if total > maxCmapCodes {
			common.Log.Debug("cmap format 12: groups span more than %d codes", maxCmapCodes)
			return errRangeCheck
		}
		for c := startCode; c <= endCode; c++ {
			gid := startGID + (c - startCode)
			if gid > 0xFFFF {
				break
			}
			st.set(rune(c), GlyphIndex(gid))
		}
	}
	return nil
}
