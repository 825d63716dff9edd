/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import "github.com/unidoc/cidmetrics/common"

// headTable represents the font header (head).
// https://docs.microsoft.com/en-us/typography/opentype/spec/head
type headTable struct {
	majorVersion       uint16
	minorVersion       uint16
	fontRevision       fixed
	checksumAdjustment uint32 // Excluded from the file checksum, see validate.
	magicNumber        uint32
	flags              uint16
	unitsPerEm         uint16
	created            longdatetime
	modified           longdatetime
	xMin               int16
	yMin               int16
	xMax               int16
	yMax               int16
	macStyle           uint16
	lowestRecPPEM      uint16
	fontDirectionHint  int16
	indexToLocFormat   int16
	glyphDataFormat    int16
}

const headMagicNumber = 0x5F0F3CF5

// Valid unitsPerEm range. Values outside it are used as is.
const (
	minUnitsPerEm = 16
	maxUnitsPerEm = 16384
)

// macStyle bits.
const (
	macStyleBold   = 1 << 0
	macStyleItalic = 1 << 1
)

// fields returns pointers to the fields of `t` in file order.
func (t *headTable) fields() []interface{} {
	return []interface{}{
		&t.majorVersion, &t.minorVersion, &t.fontRevision, &t.checksumAdjustment, &t.magicNumber,
		&t.flags, &t.unitsPerEm, &t.created, &t.modified,
		&t.xMin, &t.yMin, &t.xMax, &t.yMax,
		&t.macStyle, &t.lowestRecPPEM, &t.fontDirectionHint, &t.indexToLocFormat, &t.glyphDataFormat,
	}
}

func (f *font) parseHead(r *byteReader) (*headTable, error) {
	_, has, err := f.seekToTable(r, "head")
	if err != nil {
		return nil, err
	}
	if !has {
		common.Log.Debug("head table absent")
		return nil, nil
	}

	t := &headTable{}
	err = r.read(t.fields()...)
	if err != nil {
		return nil, err
	}
	if t.magicNumber != headMagicNumber {
		common.Log.Debug("head: magic number 0x%08X", t.magicNumber)
		return nil, errMagicNumber
	}
	if t.unitsPerEm < minUnitsPerEm || t.unitsPerEm > maxUnitsPerEm {
		common.Log.Debug("head: unitsPerEm %d outside [%d, %d]", t.unitsPerEm, minUnitsPerEm, maxUnitsPerEm)
	}
	return t, nil
}

func (f *font) writeHead(w *byteWriter) error {
	if f.head == nil {
		return errRequiredField
	}
	return w.write(f.head.fields()...)
}
