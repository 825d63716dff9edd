/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import "github.com/unidoc/cidmetrics/common"

// maxpTable holds the header of the Maximum Profile (maxp) table.
// Only the glyph count is needed for metrics. The version 1.0 fields that follow it describe
// TrueType instruction limits and are not read.
// https://docs.microsoft.com/en-us/typography/opentype/spec/maxp
type maxpTable struct {
	version   fixed
	numGlyphs uint16
}

const (
	maxpVersion05 = 0x00005000 // CFF outlines.
	maxpVersion10 = 0x00010000 // TrueType outlines.
)

func (f *font) parseMaxp(r *byteReader) (*maxpTable, error) {
	_, has, err := f.seekToTable(r, "maxp")
	if err != nil {
		return nil, err
	}
	if !has {
		common.Log.Debug("maxp table absent")
		return nil, nil
	}

	t := &maxpTable{}
	err = r.read(&t.version, &t.numGlyphs)
	if err != nil {
		return nil, err
	}
	if t.version != maxpVersion05 && t.version < maxpVersion10 {
		common.Log.Debug("maxp: unsupported version 0x%08X", uint32(t.version))
		return nil, errRangeCheck
	}
	if t.numGlyphs == 0 {
		common.Log.Debug("maxp: no glyphs")
	}
	return t, nil
}

// writeMaxp writes a version 0.5 table, which is the glyph count alone.
func (f *font) writeMaxp(w *byteWriter) error {
	if f.maxp == nil {
		return errRequiredField
	}
	return w.write(fixed(maxpVersion05), f.maxp.numGlyphs)
}
