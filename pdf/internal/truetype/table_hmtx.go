/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import "github.com/unidoc/cidmetrics/common"

// hmtxTable represents the horizontal metrics table (hmtx).
// https://docs.microsoft.com/en-us/typography/opentype/spec/hmtx
type hmtxTable struct {
	hMetrics         []longHorMetric // length is numberOfHMetrics from hhea table.
	leftSideBearings []int16         // length is numGlyphs - numberOfHmetrics from maxp and hhea tables.
}

type longHorMetric struct {
	advanceWidth uint16
	lsb          int16
}

func (f *font) parseHmtx(r *byteReader) (*hmtxTable, error) {
	if f.maxp == nil || f.hhea == nil {
		common.Log.Debug("maxp or hhea table missing")
		return nil, errRequiredField
	}

	_, has, err := f.seekToTable(r, "hmtx")
	if err != nil {
		return nil, err
	}
	if !has {
		common.Log.Debug("hmtx table absent")
		return nil, nil
	}

	t := &hmtxTable{}

	numberOfHMetrics := int(f.hhea.numberOfHMetrics)
	if numberOfHMetrics > int(f.maxp.numGlyphs) {
		common.Log.Debug("numberOfHMetrics > numGlyphs (%d > %d)", numberOfHMetrics, f.maxp.numGlyphs)
		return nil, errRangeCheck
	}
	for i := 0; i < numberOfHMetrics; i++ {
		var lhm longHorMetric
		err := r.read(&lhm.advanceWidth, &lhm.lsb)
		if err != nil {
			return nil, err
		}

		t.hMetrics = append(t.hMetrics, lhm)
	}

	lsbLen := int(f.maxp.numGlyphs) - numberOfHMetrics
	for i := 0; i < lsbLen; i++ {
		var lsb int16
		err := r.read(&lsb)
		if err != nil {
			return nil, err
		}
		t.leftSideBearings = append(t.leftSideBearings, lsb)
	}

	return t, nil
}

// advance returns the advance width of glyph `gid` in font design units.
// Glyphs past the last long metric share its advance width (monospaced tail).
func (t *hmtxTable) advance(gid GlyphIndex) uint16 {
	if len(t.hMetrics) == 0 {
		return 0
	}
	if int(gid) < len(t.hMetrics) {
		return t.hMetrics[gid].advanceWidth
	}
	return t.hMetrics[len(t.hMetrics)-1].advanceWidth
}

func (f *font) writeHmtx(w *byteWriter) error {
	if f.hmtx == nil {
		return errRequiredField
	}
	for _, lhm := range f.hmtx.hMetrics {
		err := w.write(lhm.advanceWidth, lhm.lsb)
		if err != nil {
			return err
		}
	}
	for _, lsb := range f.hmtx.leftSideBearings {
		err := w.write(lsb)
		if err != nil {
			return err
		}
	}
	return nil
}
