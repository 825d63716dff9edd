/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import "strings"

// GlyphIndex or Glyph ID (GID) represent each glyph within a font.
type GlyphIndex uint16

// Data types of the font file, all big endian.
// https://docs.microsoft.com/en-us/typography/opentype/spec/otff#data-types
type (
	fixed        int32 // 16.16 signed fixed point number.
	fword        int16 // Quantity in font design units.
	ufword       uint16
	longdatetime int64 // Seconds since 1904-01-01 00:00 UTC.
	tag          [4]uint8
	offset16     uint16
	offset32     uint32
)

func (t tag) String() string {
	return strings.TrimSpace(string(t[:]))
}

// Float64 returns `f` as a float64.
func (f fixed) Float64() float64 {
	return float64(f) / (1 << 16)
}

// makeTag returns the tag of table name `s`, truncated or space padded to 4 bytes.
func makeTag(s string) tag {
	t := tag{' ', ' ', ' ', ' '}
	copy(t[:], s)
	return t
}
