/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package cidtables derives the tables needed to embed a TrueType font as a CIDFontType2 with
// Identity-H encoding: the CIDToGIDMap stream, the /W and /DW widths, an identity ToUnicode CMap
// and the font descriptor. Builds are independent of each other and may run concurrently.
package cidtables

import (
	"bytes"
	"errors"
	"fmt"
	"io/ioutil"
	"path/filepath"
	"strings"

	"github.com/unidoc/cidmetrics/common"
	"github.com/unidoc/cidmetrics/pdf/cidtogid"
	"github.com/unidoc/cidmetrics/pdf/cidwidths"
	"github.com/unidoc/cidmetrics/pdf/fontdesc"
	"github.com/unidoc/cidmetrics/pdf/fontmetrics"
	"github.com/unidoc/cidmetrics/pdf/tounicode"
	"github.com/unidoc/cidmetrics/pdf/internal/truetype"
)

// ErrUnknownProvider is returned for an unsupported Options.Provider.
var ErrUnknownProvider = errors.New("cidtables: unknown provider")

// Artifacts are the tables derived from one font.
type Artifacts struct {
	// Base is the output path prefix, the font path without extension.
	Base string

	Metrics  *fontmetrics.Metrics
	Widths   *cidwidths.Table
	GlyphMap *cidtogid.Table
	CMap     *tounicode.CMap

	// Descriptor is nil unless the font was read with ProviderTrueType.
	Descriptor *fontdesc.Descriptor
}

// BaseName returns `path` without its extension.
func BaseName(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path))
}

// BuildFile builds the tables of the font file at `path`.
func BuildFile(path string, opts Options) (*Artifacts, error) {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Build(data, BaseName(path), opts)
}

// Build builds the tables of the font `data`. `base` is the output path prefix of the
// artifacts, its last element is the fallback CMap name.
func Build(data []byte, base string, opts Options) (*Artifacts, error) {
	if opts.Validate {
		common.Log.Debug("%s: validating checksums", base)
		err := truetype.Validate(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("cidtables: validation: %w", err)
		}
	}

	a := &Artifacts{Base: base}

	var p fontmetrics.Provider
	switch opts.Provider {
	case ProviderTrueType, "":
		f, err := truetype.Parse(bytes.NewReader(data))
		if err != nil {
			return nil, fmt.Errorf("cidtables: truetype: %w", err)
		}
		p, err = fontmetrics.NewTrueTypeProvider(f)
		if err != nil {
			return nil, err
		}
		d, err := fontdesc.FromTrueType(f)
		if err != nil {
			return nil, err
		}
		a.Descriptor = &d
	case ProviderSfnt:
		var err error
		p, err = fontmetrics.NewSfntProvider(data)
		if err != nil {
			return nil, fmt.Errorf("cidtables: sfnt: %w", err)
		}
	default:
		common.Log.Debug("ERROR: provider %q", opts.Provider)
		return nil, ErrUnknownProvider
	}

	m, err := fontmetrics.Extract(p)
	if err != nil {
		return nil, err
	}
	a.Metrics = m

	a.Widths, err = cidwidths.Encode(m.Widths)
	if err != nil {
		return nil, err
	}

	a.GlyphMap = cidtogid.Build(m.Glyphs, opts.MaxCID)

	name := cmapName(opts.CMapName, fontmetrics.PostScriptName(p), base)
	a.CMap = tounicode.New(m.Codes, name)

	common.Log.Info("%s: %d codes, DW %d, %d width records, CMap %s",
		filepath.Base(base), len(m.Codes), a.Widths.DW, len(a.Widths.Records), name)
	return a, nil
}

// cmapName returns the first non-empty of `name`, `psName` and the last element of `base`.
func cmapName(name, psName, base string) string {
	if name != "" {
		return name
	}
	if psName != "" {
		return psName
	}
	return filepath.Base(base)
}
