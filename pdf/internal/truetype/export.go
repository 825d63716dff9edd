/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"io"

	"github.com/unidoc/cidmetrics/common"
)

// Font wraps font for outside access.
type Font struct {
	*font
}

// Parse parses the truetype font from `rs` and returns a new Font.
func Parse(rs io.ReadSeeker) (*Font, error) {
	r := newByteReader(rs)

	fnt, err := parseFont(r)
	if err != nil {
		return nil, err
	}

	return &Font{font: fnt}, nil
}

// Validate checks that the required tables of the font in `rs` are present and that the file and
// table checksums are correct.
func Validate(rs io.ReadSeeker) error {
	br := newByteReader(rs)
	fnt, err := parseFont(br)
	if err != nil {
		return err
	}

	return fnt.validate(br)
}

// UnitsPerEm returns the number of font design units per em, 0 if the head table is missing.
func (f *Font) UnitsPerEm() int {
	if f.head == nil {
		return 0
	}
	return int(f.head.unitsPerEm)
}

// NumGlyphs returns the number of glyphs in the font, 0 if the maxp table is missing.
func (f *Font) NumGlyphs() int {
	if f.maxp == nil {
		return 0
	}
	return int(f.maxp.numGlyphs)
}

// HasUnicodeCmap returns true if a Unicode cmap subtable in a supported format was loaded.
func (f *Font) HasUnicodeCmap() bool {
	return f.cmap != nil && f.cmap.unicode != nil
}

// Runes returns the code points mapped by the Unicode cmap subtable in ascending order.
func (f *Font) Runes() []rune {
	if !f.HasUnicodeCmap() {
		return nil
	}
	runes := make([]rune, len(f.cmap.unicode.runes))
	copy(runes, f.cmap.unicode.runes)
	return runes
}

// GlyphIndex returns the glyph mapped to code point `r` by the Unicode cmap subtable.
func (f *Font) GlyphIndex(r rune) (GlyphIndex, bool) {
	if !f.HasUnicodeCmap() {
		return 0, false
	}
	gid, ok := f.cmap.unicode.gids[r]
	return gid, ok
}

// AdvanceWidth returns the advance width of glyph `gid` in font design units.
func (f *Font) AdvanceWidth(gid GlyphIndex) (int, error) {
	if f.hmtx == nil {
		common.Log.Debug("hmtx table missing")
		return 0, errRequiredField
	}
	if int(gid) >= f.NumGlyphs() {
		common.Log.Debug("glyph index out of range (%d >= %d)", gid, f.NumGlyphs())
		return 0, errRangeCheck
	}
	return int(f.hmtx.advance(gid)), nil
}

// PostScriptName returns the PostScript name of the font (name ID 6), falling back to the full
// font name (name ID 4). Empty if neither is present.
func (f *Font) PostScriptName() string {
	if name := f.GetNameByID(nameIDPostScriptName); name != "" {
		return name
	}
	return f.GetNameByID(nameIDFullName)
}

// FamilyName returns the font family name (name ID 1).
func (f *Font) FamilyName() string {
	return f.GetNameByID(nameIDFamily)
}

// BoundingBox returns the bounding box of all glyphs in font design units.
func (f *Font) BoundingBox() (xMin, yMin, xMax, yMax int) {
	if f.head == nil {
		return 0, 0, 0, 0
	}
	return int(f.head.xMin), int(f.head.yMin), int(f.head.xMax), int(f.head.yMax)
}

// Ascent returns the typographic ascender in font design units. The OS/2 typo metrics are
// preferred over hhea.
func (f *Font) Ascent() int {
	if f.os2 != nil && (f.os2.sTypoAscender != 0 || f.os2.sTypoDescender != 0) {
		return int(f.os2.sTypoAscender)
	}
	if f.hhea != nil {
		return int(f.hhea.ascender)
	}
	return 0
}

// Descent returns the typographic descender in font design units (normally negative).
func (f *Font) Descent() int {
	if f.os2 != nil && (f.os2.sTypoAscender != 0 || f.os2.sTypoDescender != 0) {
		return int(f.os2.sTypoDescender)
	}
	if f.hhea != nil {
		return int(f.hhea.descender)
	}
	return 0
}

// CapHeight returns the height of capital letters in font design units. Fonts without an OS/2
// table version 2 or later report their ascent.
func (f *Font) CapHeight() int {
	if f.os2 != nil && f.os2.version >= 2 && f.os2.sCapHeight != 0 {
		return int(f.os2.sCapHeight)
	}
	return f.Ascent()
}

// ItalicAngle returns the italic angle in degrees, counter-clockwise from vertical.
func (f *Font) ItalicAngle() float64 {
	if f.post == nil {
		return 0
	}
	return f.post.italicAngle.Float64()
}

// IsFixedPitch returns true if the post table marks the font as monospaced.
func (f *Font) IsFixedPitch() bool {
	return f.post != nil && f.post.isFixedPitch != 0
}

// IsBold returns true if the OS/2 weight class is bold or heavier, or head.macStyle has the bold bit.
func (f *Font) IsBold() bool {
	if f.os2 != nil && (f.os2.usWeightClass >= 700 || f.os2.fsSelection&fsSelectionBold != 0) {
		return true
	}
	return f.head != nil && f.head.macStyle&macStyleBold != 0
}

// IsItalic returns true if OS/2 fsSelection or head.macStyle has the italic bit.
func (f *Font) IsItalic() bool {
	if f.os2 != nil && f.os2.fsSelection&fsSelectionItalic != 0 {
		return true
	}
	return f.head != nil && f.head.macStyle&macStyleItalic != 0
}
