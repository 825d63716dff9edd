/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"bytes"
	"errors"
	"io"

	"github.com/unidoc/cidmetrics/common"
)

// checksumMagic is the value that the whole-font checksum plus head.checksumAdjustment sums to.
const checksumMagic = 0xB1B0AFBA

var (
	errFileChecksum  = errors.New("file checksum mismatch")
	errTableChecksum = errors.New("table checksum incorrect")
)

// validate font data model `f` in `r`. Checks if required tables are present and whether
// table checksums are correct.
func (f *font) validate(r *byteReader) error {
	if f.trec == nil {
		common.Log.Debug("Table records missing")
		return errRequiredField
	}
	if f.ot == nil {
		common.Log.Debug("Offsets table missing")
		return errRequiredField
	}
	if f.head == nil {
		common.Log.Debug("head table missing")
		return errRequiredField
	}

	err := r.Seek(0)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	_, err = io.Copy(&buf, r.reader)
	if err != nil {
		return err
	}
	data := buf.Bytes()

	headRec, ok := f.trec.lookup("head")
	if !ok {
		common.Log.Debug("head not set")
		return errRequiredField
	}
	hoff := int(headRec.offset)
	if hoff+12 > len(data) {
		common.Log.Debug("head outside file (%d > %d)", hoff+12, len(data))
		return errRangeCheck
	}

	// The checksumAdjustment of head counts as 0 in both the file and the head checksums.
	data[hoff+8], data[hoff+9], data[hoff+10], data[hoff+11] = 0, 0, 0, 0

	common.Log.Debug("Validating entire font")
	checksum := tableChecksum(data)
	if adjustment := uint32(checksumMagic) - checksum; f.head.checksumAdjustment != adjustment {
		common.Log.Debug("checksumAdjustment 0x%08X != 0x%08X", f.head.checksumAdjustment, adjustment)
		return errFileChecksum
	}

	common.Log.Debug("Validating font tables")
	for _, tr := range f.trec.list {
		start, end := int64(tr.offset), tr.end()
		if end > int64(len(data)) {
			common.Log.Debug("Table %s outside file (%d > %d)", tr.tableTag, end, len(data))
			return errRangeCheck
		}

		checksum := tableChecksum(data[start:end])
		if tr.checksum != checksum {
			common.Log.Debug("Invalid %s checksum (0x%08X != 0x%08X)", tr.tableTag, checksum, tr.checksum)
			return errTableChecksum
		}
	}

	return nil
}
