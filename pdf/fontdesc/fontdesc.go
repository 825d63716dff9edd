/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package fontdesc derives the font descriptor dictionary of an embedded TrueType CIDFont from
// the font's head, hhea, OS/2 and post tables.
package fontdesc

import (
	"bytes"
	"fmt"
	"strconv"

	xunicode "golang.org/x/text/encoding/unicode"

	"github.com/unidoc/cidmetrics/common"
	"github.com/unidoc/cidmetrics/pdf/fontmetrics"
	"github.com/unidoc/cidmetrics/pdf/internal/pdfname"
	"github.com/unidoc/cidmetrics/pdf/internal/truetype"
)

// Flag is a bit of the font descriptor /Flags entry.
type Flag uint32

// Font descriptor flags set or checked by this package (PDF 32000-1:2008, table 123).
const (
	FlagFixedPitch  Flag = 1 << 0
	FlagSymbolic    Flag = 1 << 2
	FlagNonsymbolic Flag = 1 << 5
	FlagItalic      Flag = 1 << 6
)

// Stem widths used for bold and regular fonts, the TrueType tables have no stem width.
const (
	stemVBold    = 120
	stemVRegular = 70
)

// Descriptor holds the font descriptor entries. Lengths are in 1000 units per em.
type Descriptor struct {
	FontName    string
	FontFamily  string
	Flags       Flag
	FontBBox    [4]int
	ItalicAngle float64
	Ascent      int
	Descent     int
	CapHeight   int
	StemV       int
}

// FromTrueType returns the descriptor of `f`.
func FromTrueType(f *truetype.Font) (Descriptor, error) {
	upem := f.UnitsPerEm()
	if upem <= 0 {
		common.Log.Debug("ERROR: units per em %d", upem)
		return Descriptor{}, fontmetrics.ErrInvalidUnitsPerEm
	}
	scale := func(v int) int {
		return fontmetrics.ScaleWidth(v, upem)
	}

	d := Descriptor{
		FontName:    f.PostScriptName(),
		FontFamily:  f.FamilyName(),
		Flags:       FlagNonsymbolic,
		ItalicAngle: f.ItalicAngle(),
		Ascent:      scale(f.Ascent()),
		Descent:     scale(f.Descent()),
		CapHeight:   scale(f.CapHeight()),
		StemV:       stemVRegular,
	}
	xMin, yMin, xMax, yMax := f.BoundingBox()
	d.FontBBox = [4]int{scale(xMin), scale(yMin), scale(xMax), scale(yMax)}

	if f.IsFixedPitch() {
		d.Flags |= FlagFixedPitch
	}
	if d.ItalicAngle != 0 {
		d.Flags |= FlagItalic
	}
	if f.IsBold() {
		d.StemV = stemVBold
	}

	common.Log.Debug("Font descriptor: %+v", d)
	return d, nil
}

// PDF renders `d` as a font descriptor dictionary. /FontFile2 is left to the embedder.
func (d Descriptor) PDF() string {
	var buf bytes.Buffer
	buf.WriteString("<< /Type /FontDescriptor\n")
	if d.FontName != "" {
		fmt.Fprintf(&buf, "/FontName /%s\n", pdfname.Escape(d.FontName))
	}
	if d.FontFamily != "" {
		fmt.Fprintf(&buf, "/FontFamily %s\n", textString(d.FontFamily))
	}
	fmt.Fprintf(&buf, "/Flags %d\n", d.Flags)
	fmt.Fprintf(&buf, "/FontBBox [%d %d %d %d]\n", d.FontBBox[0], d.FontBBox[1], d.FontBBox[2], d.FontBBox[3])
	fmt.Fprintf(&buf, "/ItalicAngle %s\n", strconv.FormatFloat(d.ItalicAngle, 'f', -1, 64))
	fmt.Fprintf(&buf, "/Ascent %d\n", d.Ascent)
	fmt.Fprintf(&buf, "/Descent %d\n", d.Descent)
	fmt.Fprintf(&buf, "/CapHeight %d\n", d.CapHeight)
	fmt.Fprintf(&buf, "/StemV %d\n", d.StemV)
	buf.WriteString(">>")
	return buf.String()
}

// textString encodes `s` as a PDF text string: a literal string if `s` is printable ASCII,
// otherwise a hex string of UTF-16BE with byte order mark.
func textString(s string) string {
	ascii := true
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7E {
			ascii = false
			break
		}
	}
	if ascii {
		var buf bytes.Buffer
		buf.WriteByte('(')
		for i := 0; i < len(s); i++ {
			if s[i] == '(' || s[i] == ')' || s[i] == '\\' {
				buf.WriteByte('\\')
			}
			buf.WriteByte(s[i])
		}
		buf.WriteByte(')')
		return buf.String()
	}

	enc := xunicode.UTF16(xunicode.BigEndian, xunicode.UseBOM).NewEncoder()
	b, err := enc.String(s)
	if err != nil {
		common.Log.Debug("ERROR: encoding %q: %v", s, err)
		return "()"
	}
	return fmt.Sprintf("<%X>", b)
}
