/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package fontdesc

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/unidoc/cidmetrics/pdf/fontmetrics"
	"github.com/unidoc/cidmetrics/pdf/internal/truetype"
)

func TestDescriptorPDF(t *testing.T) {
	d := Descriptor{
		FontName:    "Liberation Sans",
		FontFamily:  "Liberation (Sans)",
		Flags:       FlagNonsymbolic | FlagItalic,
		FontBBox:    [4]int{-203, -303, 1050, 910},
		ItalicAngle: -12.5,
		Ascent:      905,
		Descent:     -212,
		CapHeight:   688,
		StemV:       70,
	}
	expected := "<< /Type /FontDescriptor\n" +
		"/FontName /Liberation#20Sans\n" +
		"/FontFamily (Liberation \\(Sans\\))\n" +
		"/Flags 96\n" +
		"/FontBBox [-203 -303 1050 910]\n" +
		"/ItalicAngle -12.5\n" +
		"/Ascent 905\n" +
		"/Descent -212\n" +
		"/CapHeight 688\n" +
		"/StemV 70\n" +
		">>"
	assert.Equal(t, expected, d.PDF())

	d = Descriptor{Flags: FlagNonsymbolic, StemV: 120}
	assert.Equal(t, "<< /Type /FontDescriptor\n/Flags 32\n/FontBBox [0 0 0 0]\n/ItalicAngle 0\n"+
		"/Ascent 0\n/Descent 0\n/CapHeight 0\n/StemV 120\n>>", d.PDF())
}

func TestTextString(t *testing.T) {
	testcases := map[string]string{
		"Go":     "(Go)",
		"a\\b":   "(a\\\\b)",
		"Café":   "<FEFF00430061006600E9>",
		"東":      "<FEFF6771>",
		"tab\tx": "<FEFF00740061006200090078>",
	}
	for s, expected := range testcases {
		assert.Equal(t, expected, textString(s), s)
	}
	assert.Contains(t, Descriptor{FontName: "A/Bé"}.PDF(), "/FontName /A#2FB#C3#A9\n")
}

func TestFromTrueType(t *testing.T) {
	testcases := []struct {
		name string
		data []byte
	}{
		{"goregular", goregular.TTF},
		{"gobold", gobold.TTF},
		{"goitalic", goitalic.TTF},
		{"gomono", gomono.TTF},
	}

	for _, tcase := range testcases {
		t.Run(tcase.name, func(t *testing.T) {
			f, err := truetype.Parse(bytes.NewReader(tcase.data))
			require.NoError(t, err)
			d, err := FromTrueType(f)
			require.NoError(t, err)
			t.Logf("%s", d.PDF())

			upem := f.UnitsPerEm()
			scale := func(v int) int {
				return fontmetrics.ScaleWidth(v, upem)
			}
			assert.Equal(t, f.PostScriptName(), d.FontName)
			assert.NotEmpty(t, d.FontName)
			assert.Equal(t, f.FamilyName(), d.FontFamily)
			assert.Equal(t, scale(f.Ascent()), d.Ascent)
			assert.Equal(t, scale(f.Descent()), d.Descent)
			assert.Equal(t, scale(f.CapHeight()), d.CapHeight)
			assert.True(t, d.Ascent > 0)
			assert.True(t, d.Descent < 0)
			assert.True(t, d.FontBBox[0] < d.FontBBox[2])
			assert.True(t, d.FontBBox[1] < d.FontBBox[3])

			assert.NotZero(t, d.Flags&FlagNonsymbolic)
			assert.Zero(t, d.Flags&FlagSymbolic)
			assert.Equal(t, f.IsFixedPitch(), d.Flags&FlagFixedPitch != 0)
			assert.Equal(t, f.ItalicAngle() != 0, d.Flags&FlagItalic != 0)
			if f.IsBold() {
				assert.Equal(t, 120, d.StemV)
			} else {
				assert.Equal(t, 70, d.StemV)
			}
		})
	}
}

func TestFromTrueTypeStyles(t *testing.T) {
	regular, err := truetype.Parse(bytes.NewReader(goregular.TTF))
	require.NoError(t, err)
	bold, err := truetype.Parse(bytes.NewReader(gobold.TTF))
	require.NoError(t, err)

	d, err := FromTrueType(regular)
	require.NoError(t, err)
	assert.Equal(t, 70, d.StemV)
	assert.Zero(t, d.Flags&FlagItalic)

	d, err = FromTrueType(bold)
	require.NoError(t, err)
	assert.Equal(t, 120, d.StemV)
}
