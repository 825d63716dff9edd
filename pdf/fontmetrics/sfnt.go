/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package fontmetrics

import (
	"golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/unidoc/cidmetrics/common"
)

// sfntProvider adapts a golang.org/x/image/font/sfnt Font to Provider.
// sfnt does not enumerate its cmap, so the Basic Multilingual Plane is probed once at construction.
type sfntProvider struct {
	f    *sfnt.Font
	buf  *sfnt.Buffer
	upem int

	runes []rune
	gids  map[rune]GlyphIndex
}

// NewSfntProvider parses the font `data` with golang.org/x/image/font/sfnt.
// Returns ErrNoUnicodeCmap if no code point of the Basic Multilingual Plane maps to a glyph.
func NewSfntProvider(data []byte) (Provider, error) {
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, err
	}

	p := &sfntProvider{
		f:    f,
		buf:  &sfnt.Buffer{},
		upem: int(f.UnitsPerEm()),
		gids: map[rune]GlyphIndex{},
	}
	for r := rune(0); r <= MaxCID; r++ {
		gid, err := f.GlyphIndex(p.buf, r)
		if err != nil {
			return nil, err
		}
		if gid == 0 {
			continue
		}
		p.runes = append(p.runes, r)
		p.gids[r] = GlyphIndex(gid)
	}
	if len(p.runes) == 0 {
		common.Log.Debug("sfnt: no code point maps to a glyph")
		return nil, ErrNoUnicodeCmap
	}
	return p, nil
}

// PostScriptName returns the PostScript name of the font, empty if it has none.
func (p *sfntProvider) PostScriptName() string {
	name, err := p.f.Name(p.buf, sfnt.NameIDPostScript)
	if err != nil {
		common.Log.Debug("sfnt: PostScript name: %v", err)
		return ""
	}
	return name
}

func (p *sfntProvider) UnitsPerEm() int {
	return p.upem
}

func (p *sfntProvider) NumGlyphs() int {
	return p.f.NumGlyphs()
}

func (p *sfntProvider) Runes() []rune {
	runes := make([]rune, len(p.runes))
	copy(runes, p.runes)
	return runes
}

func (p *sfntProvider) GlyphIndex(r rune) (GlyphIndex, bool) {
	gid, ok := p.gids[r]
	return gid, ok
}

// AdvanceWidth queries the advance at a size of one design unit per pixel, which makes the
// 26.6 fixed point result the design unit advance shifted left by 6.
func (p *sfntProvider) AdvanceWidth(gid GlyphIndex) (int, error) {
	adv, err := p.f.GlyphAdvance(p.buf, sfnt.GlyphIndex(gid), fixed.I(p.upem), font.HintingNone)
	if err != nil {
		return 0, err
	}
	return int(adv >> 6), nil
}
