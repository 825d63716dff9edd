/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package fontmetrics extracts the per-character metrics of a font that CID font tables are
// derived from: the glyph each Unicode code point resolves to and its advance width scaled
// to a 1000 unit em.
//
// Fonts are accessed through the Provider capability interface. Two implementations are
// included: one backed by the module's own truetype reader (NewTrueTypeProvider) and one backed
// by golang.org/x/image/font/sfnt (NewSfntProvider).
package fontmetrics

import (
	"errors"
	"fmt"
	"math"

	"github.com/unidoc/cidmetrics/common"
)

// CID is a character identifier. CIDs equal the Unicode code point in the Basic Multilingual Plane.
type CID uint16

// MaxCID is the largest CID.
const MaxCID = 0xFFFF

// GlyphIndex or Glyph ID (GID) represent each glyph within a font. 0 is the .notdef glyph.
type GlyphIndex uint16

// WidthTable maps CIDs to advance widths in 1000 units per em. It only holds the CIDs that the
// font maps.
type WidthTable map[CID]int

var (
	// ErrNoUnicodeCmap is returned when the font has no usable Unicode indexed character table.
	ErrNoUnicodeCmap = errors.New("fontmetrics: no unicode cmap")
	// ErrInvalidUnitsPerEm is returned for fonts with a non-positive number of units per em.
	ErrInvalidUnitsPerEm = errors.New("fontmetrics: invalid units per em")
)

// Provider exposes the read-only font queries that metrics are extracted from.
type Provider interface {
	// UnitsPerEm returns the number of font design units per em.
	UnitsPerEm() int
	// NumGlyphs returns the number of glyphs in the font.
	NumGlyphs() int
	// Runes returns the code points of the font's Unicode character table in ascending order.
	Runes() []rune
	// GlyphIndex returns the glyph mapped to `r`.
	GlyphIndex(r rune) (GlyphIndex, bool)
	// AdvanceWidth returns the advance width of glyph `gid` in font design units.
	AdvanceWidth(gid GlyphIndex) (int, error)
}

// Namer is implemented by providers that know the PostScript name of their font.
type Namer interface {
	PostScriptName() string
}

// PostScriptName returns the PostScript name of the font behind `p`, empty if `p` does not
// implement Namer.
func PostScriptName(p Provider) string {
	if n, ok := p.(Namer); ok {
		return n.PostScriptName()
	}
	return ""
}

// Metrics are the per-character metrics of one font.
type Metrics struct {
	UnitsPerEm int
	NumGlyphs  int

	// Glyphs maps each CID of the font to its glyph. CIDs whose glyph is outside the font
	// map to 0.
	Glyphs map[CID]GlyphIndex

	// Widths holds the scaled advance width of each CID that resolves to a glyph of the font.
	Widths WidthTable

	// Codes lists the CIDs of the font in ascending order.
	Codes []CID
}

// Extract reads the metrics of the font behind `p`.
// Code points outside the Basic Multilingual Plane are skipped. A code point whose glyph index is
// not below the glyph count is mapped to glyph 0 and left out of the width table.
func Extract(p Provider) (*Metrics, error) {
	upem := p.UnitsPerEm()
	if upem <= 0 {
		common.Log.Debug("ERROR: units per em %d", upem)
		return nil, ErrInvalidUnitsPerEm
	}

	m := &Metrics{
		UnitsPerEm: upem,
		NumGlyphs:  p.NumGlyphs(),
		Glyphs:     map[CID]GlyphIndex{},
		Widths:     WidthTable{},
	}

	skipped := 0
	for _, r := range p.Runes() {
		if r < 0 || r > MaxCID {
			skipped++
			continue
		}
		gid, ok := p.GlyphIndex(r)
		if !ok {
			continue
		}
		cid := CID(r)
		m.Codes = append(m.Codes, cid)

		if int(gid) >= m.NumGlyphs {
			common.Log.Debug("U+%04X: glyph %d not in font (%d glyphs), using 0", r, gid, m.NumGlyphs)
			m.Glyphs[cid] = 0
			continue
		}
		m.Glyphs[cid] = gid

		adv, err := p.AdvanceWidth(gid)
		if err != nil {
			return nil, fmt.Errorf("fontmetrics: advance of glyph %d (U+%04X): %w", gid, r, err)
		}
		m.Widths[cid] = ScaleWidth(adv, upem)
	}
	if skipped > 0 {
		common.Log.Debug("Skipped %d code points outside the BMP", skipped)
	}

	if len(m.Codes) == 0 {
		common.Log.Debug("ERROR: no code points mapped")
		return nil, ErrNoUnicodeCmap
	}

	common.Log.Debug("Extracted %d codes, %d widths (unitsPerEm=%d numGlyphs=%d)",
		len(m.Codes), len(m.Widths), m.UnitsPerEm, m.NumGlyphs)
	return m, nil
}

// ScaleWidth converts `adv` font design units to 1000 units per em, rounding half to even.
func ScaleWidth(adv, unitsPerEm int) int {
	return int(math.RoundToEven(1000 * float64(adv) / float64(unitsPerEm)))
}
