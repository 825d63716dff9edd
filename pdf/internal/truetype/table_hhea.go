/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import "github.com/unidoc/cidmetrics/common"

// hheaTable represents the horizontal header table (hhea).
// https://docs.microsoft.com/en-us/typography/opentype/spec/hhea
type hheaTable struct {
	majorVersion        uint16
	minorVersion        uint16
	ascender            fword
	descender           fword
	lineGap             fword
	advanceWidthMax     ufword
	minLeftSideBearing  fword
	minRightSideBearing fword
	xMaxExtent          fword
	caretSlopeRise      int16
	caretSlopeRun       int16
	caretOffset         int16
	metricDataFormat    int16
	numberOfHMetrics    uint16 // Number of hMetric entries in 'hmtx' table.
}

// hheaReservedSize is the size of the reserved words between caretOffset and metricDataFormat.
const hheaReservedSize = 4 * 2

// leading returns pointers to the fields before the reserved words.
func (t *hheaTable) leading() []interface{} {
	return []interface{}{
		&t.majorVersion, &t.minorVersion,
		&t.ascender, &t.descender, &t.lineGap,
		&t.advanceWidthMax, &t.minLeftSideBearing, &t.minRightSideBearing, &t.xMaxExtent,
		&t.caretSlopeRise, &t.caretSlopeRun, &t.caretOffset,
	}
}

func (f *font) parseHhea(r *byteReader) (*hheaTable, error) {
	_, has, err := f.seekToTable(r, "hhea")
	if err != nil {
		return nil, err
	}
	if !has {
		common.Log.Debug("hhea table absent")
		return nil, nil
	}

	t := &hheaTable{}
	err = r.read(t.leading()...)
	if err != nil {
		return nil, err
	}
	err = r.Skip(hheaReservedSize)
	if err != nil {
		return nil, err
	}
	err = r.read(&t.metricDataFormat, &t.numberOfHMetrics)
	if err != nil {
		return nil, err
	}
	if t.numberOfHMetrics == 0 {
		common.Log.Debug("hhea: no horizontal metrics, all advance widths are 0")
	}
	return t, nil
}

func (f *font) writeHhea(w *byteWriter) error {
	if f.hhea == nil {
		return errRequiredField
	}
	t := f.hhea
	err := w.write(t.leading()...)
	if err != nil {
		return err
	}
	err = w.writeBytes(make([]byte, hheaReservedSize))
	if err != nil {
		return err
	}
	return w.write(t.metricDataFormat, t.numberOfHMetrics)
}
