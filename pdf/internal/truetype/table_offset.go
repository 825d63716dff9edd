/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import "github.com/unidoc/cidmetrics/common"

// offsetTable is the header of the font file (table directory).
type offsetTable struct {
	sfntVersion   uint32
	numTables     uint16
	searchRange   uint16
	entrySelector uint16
	rangeShift    uint16
}

// Accepted sfnt versions: truetype outlines (0x00010000, 'true') and CFF outlines ('OTTO').
const (
	sfntVersionTrueType = 0x00010000
	sfntVersionApple    = 0x74727565
	sfntVersionOTTO     = 0x4F54544F
)

func (f *font) parseOffsetTable(r *byteReader) (*offsetTable, error) {
	ot := &offsetTable{}

	err := r.read(&ot.sfntVersion, &ot.numTables, &ot.searchRange, &ot.entrySelector, &ot.rangeShift)
	if err != nil {
		return nil, err
	}

	switch ot.sfntVersion {
	case sfntVersionTrueType, sfntVersionApple, sfntVersionOTTO:
	default:
		common.Log.Debug("Unsupported sfnt version 0x%08X", ot.sfntVersion)
		return nil, errRangeCheck
	}

	return ot, nil
}

func (f *font) writeOffsetTable(w *byteWriter) error {
	if f.ot == nil {
		return errRequiredField
	}
	return w.write(f.ot.sfntVersion, f.ot.numTables, f.ot.searchRange, f.ot.entrySelector, f.ot.rangeShift)
}
