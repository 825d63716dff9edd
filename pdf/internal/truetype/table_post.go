/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"github.com/unidoc/cidmetrics/common"
)

// postTable represents the header of the PostScript (post) table, which holds the FontInfo
// dictionary entries of the font. The glyph names that follow the header in versions 2.0
// and 2.5 are not loaded: glyphs are resolved through the cmap.
// https://docs.microsoft.com/en-us/typography/opentype/spec/post
type postTable struct {
	version            fixed
	italicAngle        fixed // in degrees, counter-clockwise from vertical.
	underlinePosition  fword
	underlineThickness fword
	isFixedPitch       uint32
	minMemType42       uint32
	maxMemType42       uint32
	minMemType1        uint32
	maxMemType1        uint32
}

func (f *font) parsePost(r *byteReader) (*postTable, error) {
	_, has, err := f.seekToTable(r, "post")
	if err != nil {
		return nil, err
	}
	if !has {
		common.Log.Debug("Post table not present")
		return nil, nil
	}

	t := &postTable{}
	err = r.read(&t.version, &t.italicAngle, &t.underlinePosition, &t.underlineThickness, &t.isFixedPitch)
	if err != nil {
		return nil, err
	}
	err = r.read(&t.minMemType42, &t.maxMemType42, &t.minMemType1, &t.maxMemType1)
	if err != nil {
		return nil, err
	}

	common.Log.Trace("post: version %v italicAngle %v fixedPitch %d",
		t.version.Float64(), t.italicAngle.Float64(), t.isFixedPitch)
	return t, nil
}

func (f *font) writePost(w *byteWriter) error {
	if f.post == nil {
		return errRequiredField
	}
	t := f.post
	err := w.write(t.version, t.italicAngle, t.underlinePosition, t.underlineThickness, t.isFixedPitch)
	if err != nil {
		return err
	}
	return w.write(t.minMemType42, t.maxMemType42, t.minMemType1, t.maxMemType1)
}
