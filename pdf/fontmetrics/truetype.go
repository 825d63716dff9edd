/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package fontmetrics

import (
	"github.com/unidoc/cidmetrics/pdf/internal/truetype"
)

// trueTypeProvider adapts the truetype reader to Provider.
type trueTypeProvider struct {
	f *truetype.Font
}

// NewTrueTypeProvider returns a Provider for font `f` loaded by the truetype reader.
// Returns ErrNoUnicodeCmap if the font has no Unicode cmap subtable in a supported format.
func NewTrueTypeProvider(f *truetype.Font) (Provider, error) {
	if !f.HasUnicodeCmap() {
		return nil, ErrNoUnicodeCmap
	}
	return trueTypeProvider{f: f}, nil
}

func (p trueTypeProvider) PostScriptName() string {
	return p.f.PostScriptName()
}

func (p trueTypeProvider) UnitsPerEm() int {
	return p.f.UnitsPerEm()
}

func (p trueTypeProvider) NumGlyphs() int {
	return p.f.NumGlyphs()
}

func (p trueTypeProvider) Runes() []rune {
	return p.f.Runes()
}

func (p trueTypeProvider) GlyphIndex(r rune) (GlyphIndex, bool) {
	gid, ok := p.f.GlyphIndex(r)
	return GlyphIndex(gid), ok
}

func (p trueTypeProvider) AdvanceWidth(gid GlyphIndex) (int, error) {
	return p.f.AdvanceWidth(truetype.GlyphIndex(gid))
}
