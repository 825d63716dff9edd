/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"bytes"
	"encoding/binary"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
	xunicode "golang.org/x/text/encoding/unicode"
)

// testFontSpec describes a minimal synthetic font assembled by buildTestFont.
type testFontSpec struct {
	unitsPerEm       uint16
	advances         []uint16 // one per glyph.
	numberOfHMetrics int      // 0 means len(advances).
	runes            map[rune]GlyphIndex
	names            []testName
	os2              *os2Table
	italicAngle      fixed
	fixedPitch       bool
	macStyle         uint16
}

type testName struct {
	platformID uint16
	encodingID uint16
	nameID     uint16
	value      string
}

type testSubtable struct {
	platformID uint16
	encodingID uint16
	data       []byte
}

// buildTestFont serializes `spec` into a font file with valid table and file checksums.
func buildTestFont(t *testing.T, spec testFontSpec) []byte {
	numGlyphs := len(spec.advances)
	numberOfHMetrics := spec.numberOfHMetrics
	if numberOfHMetrics == 0 {
		numberOfHMetrics = numGlyphs
	}

	isFixedPitch := uint32(0)
	if spec.fixedPitch {
		isFixedPitch = 1
	}

	f := &font{
		head: &headTable{
			majorVersion:     1,
			fontRevision:     0x00010000,
			magicNumber:      headMagicNumber,
			flags:            0x000B,
			unitsPerEm:       spec.unitsPerEm,
			xMin:             -100,
			yMin:             -250,
			xMax:             1100,
			yMax:             900,
			macStyle:         spec.macStyle,
			lowestRecPPEM:    8,
			indexToLocFormat: 0,
		},
		maxp: &maxpTable{
			version:   maxpVersion05,
			numGlyphs: uint16(numGlyphs),
		},
		hhea: &hheaTable{
			majorVersion:     1,
			ascender:         800,
			descender:        -200,
			lineGap:          90,
			numberOfHMetrics: uint16(numberOfHMetrics),
		},
		hmtx: &hmtxTable{},
		os2:  spec.os2,
		post: &postTable{
			version:      0x00030000,
			italicAngle:  spec.italicAngle,
			isFixedPitch: isFixedPitch,
		},
	}
	for i, adv := range spec.advances {
		if i < numberOfHMetrics {
			f.hmtx.hMetrics = append(f.hmtx.hMetrics, longHorMetric{advanceWidth: adv, lsb: 10})
		} else {
			f.hmtx.leftSideBearings = append(f.hmtx.leftSideBearings, 10)
		}
	}

	tables := map[string][]byte{}
	emit := func(tableName string, write func(w *byteWriter) error) {
		var buf bytes.Buffer
		bw := newByteWriter(&buf)
		require.NoError(t, write(bw))
		require.NoError(t, bw.flush())
		tables[tableName] = buf.Bytes()
	}
	emit("head", f.writeHead)
	emit("maxp", f.writeMaxp)
	emit("hhea", f.writeHhea)
	emit("hmtx", f.writeHmtx)
	emit("post", f.writePost)
	if f.os2 != nil {
		emit("OS/2", f.writeOS2)
	}
	if spec.runes != nil {
		tables["cmap"] = testCmap(t, testSubtable{platformWindows, encodingWindowsUCS2, testCmapFormat4(t, spec.runes)})
	}
	if spec.names != nil {
		tables["name"] = testNameTable(t, spec.names)
	}

	return assembleTestFont(t, f, tables)
}

// assembleTestFont lays out `tables` after the table directory, 4-byte aligned, and sets the
// checksumAdjustment of head.
func assembleTestFont(t *testing.T, f *font, tables map[string][]byte) []byte {
	var tags []string
	for tableName := range tables {
		tags = append(tags, tableName)
	}
	sort.Strings(tags)

	numTables := len(tags)
	entrySelector := 0
	for 1<<uint(entrySelector+1) <= numTables {
		entrySelector++
	}
	searchRange := 16 << uint(entrySelector)
	f.ot = &offsetTable{
		sfntVersion:   sfntVersionTrueType,
		numTables:     uint16(numTables),
		searchRange:   uint16(searchRange),
		entrySelector: uint16(entrySelector),
		rangeShift:    uint16(16*numTables - searchRange),
	}

	f.trec = &tableRecords{trMap: map[string]tableRecord{}}
	headerLen := 12 + 16*numTables
	var body bytes.Buffer
	for _, tableName := range tags {
		data := tables[tableName]
		rec := tableRecord{
			tableTag: makeTag(tableName),
			checksum: tableChecksum(data),
			offset:   offset32(headerLen + body.Len()),
			length:   uint32(len(data)),
		}
		f.trec.list = append(f.trec.list, rec)
		f.trec.trMap[tableName] = rec

		body.Write(data)
		for body.Len()%4 != 0 {
			body.WriteByte(0)
		}
	}

	var out bytes.Buffer
	bw := newByteWriter(&out)
	require.NoError(t, f.writeOffsetTable(bw))
	require.NoError(t, f.writeTableRecords(bw))
	require.NoError(t, bw.writeBytes(body.Bytes()))
	require.NoError(t, bw.flush())

	data := out.Bytes()
	if rec, ok := f.trec.trMap["head"]; ok {
		adjustment := uint32(checksumMagic) - tableChecksum(data)
		binary.BigEndian.PutUint32(data[rec.offset+8:], adjustment)
	}
	return data
}

// testCmap builds a cmap table holding `subtables` in the given order.
func testCmap(t *testing.T, subtables ...testSubtable) []byte {
	var buf bytes.Buffer
	bw := newByteWriter(&buf)
	require.NoError(t, bw.writeUint16(0, uint16(len(subtables))))

	offset := 4 + 8*len(subtables)
	for _, st := range subtables {
		require.NoError(t, bw.write(st.platformID, st.encodingID, offset32(offset)))
		offset += len(st.data)
	}
	for _, st := range subtables {
		require.NoError(t, bw.writeBytes(st.data))
	}
	require.NoError(t, bw.flush())
	return buf.Bytes()
}

// testFormat4Segment is one segment of a format 4 subtable. A nil glyphIDs uses idDelta mapping.
type testFormat4Segment struct {
	start, end uint16
	delta      int16
	glyphIDs   []uint16
}

// testCmapFormat4 builds a format 4 subtable with one delta segment per code in `runes`.
func testCmapFormat4(t *testing.T, runes map[rune]GlyphIndex) []byte {
	var codes []rune
	for r := range runes {
		codes = append(codes, r)
	}
	sort.Slice(codes, func(i, j int) bool {
		return codes[i] < codes[j]
	})

	var segs []testFormat4Segment
	for _, r := range codes {
		segs = append(segs, testFormat4Segment{
			start: uint16(r),
			end:   uint16(r),
			delta: int16(uint16(runes[r]) - uint16(r)),
		})
	}
	return testCmapFormat4Segments(t, segs)
}

// testCmapFormat4Segments builds a format 4 subtable from `segs`, appending the final 0xFFFF segment.
func testCmapFormat4Segments(t *testing.T, segs []testFormat4Segment) []byte {
	segs = append(segs, testFormat4Segment{start: 0xFFFF, end: 0xFFFF, delta: 1})
	segCount := len(segs)

	var glyphIDs []uint16
	idRangeOffsets := make([]uint16, segCount)
	for i, seg := range segs {
		if seg.glyphIDs == nil {
			continue
		}
		idRangeOffsets[i] = uint16(2 * (segCount - i + len(glyphIDs)))
		glyphIDs = append(glyphIDs, seg.glyphIDs...)
	}

	var buf bytes.Buffer
	bw := newByteWriter(&buf)
	length := 16 + 8*segCount + 2*len(glyphIDs)
	require.NoError(t, bw.writeUint16(4, uint16(length), 0, uint16(2*segCount), 0, 0, 0))
	for _, seg := range segs {
		require.NoError(t, bw.writeUint16(seg.end))
	}
	require.NoError(t, bw.writeUint16(0))
	for _, seg := range segs {
		require.NoError(t, bw.writeUint16(seg.start))
	}
	for _, seg := range segs {
		require.NoError(t, bw.write(seg.delta))
	}
	require.NoError(t, bw.writeSlice(idRangeOffsets))
	require.NoError(t, bw.writeSlice(glyphIDs))
	require.NoError(t, bw.flush())
	return buf.Bytes()
}

// testNameTable builds a format 0 name table. Windows and Unicode platform strings are stored as
// UTF-16BE, others as raw bytes.
func testNameTable(t *testing.T, names []testName) []byte {
	enc := xunicode.UTF16(xunicode.BigEndian, xunicode.IgnoreBOM).NewEncoder()

	var storage bytes.Buffer
	var buf bytes.Buffer
	bw := newByteWriter(&buf)
	require.NoError(t, bw.writeUint16(0, uint16(len(names)), uint16(6+12*len(names))))
	for _, name := range names {
		data := []byte(name.value)
		if name.platformID == platformWindows || name.platformID == platformUnicode {
			var err error
			data, err = enc.Bytes(data)
			require.NoError(t, err)
		}
		require.NoError(t, bw.writeUint16(name.platformID, name.encodingID, 0x409, name.nameID))
		require.NoError(t, bw.write(uint16(len(data)), offset16(storage.Len())))
		storage.Write(data)
	}
	require.NoError(t, bw.writeBytes(storage.Bytes()))
	require.NoError(t, bw.flush())
	return buf.Bytes()
}

// defaultTestFontSpec is a small proportional font with five glyphs.
func defaultTestFontSpec() testFontSpec {
	return testFontSpec{
		unitsPerEm: 2048,
		advances:   []uint16{1024, 1229, 1229, 1434, 0},
		runes: map[rune]GlyphIndex{
			'A':    1,
			'B':    2,
			'C':    3,
			0x0301: 4,
		},
		names: []testName{
			{platformWindows, encodingWindowsUCS2, nameIDFamily, "Synthetic"},
			{platformWindows, encodingWindowsUCS2, nameIDFullName, "Synthetic Regular"},
			{platformWindows, encodingWindowsUCS2, nameIDPostScriptName, "Synthetic-Regular"},
		},
	}
}
