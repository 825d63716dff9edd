/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package cidtables

import (
	"github.com/unidoc/cidmetrics/pdf/cidtogid"
	"github.com/unidoc/cidmetrics/pdf/fontmetrics"
)

// ProviderKind selects the font reader that metrics are extracted with.
type ProviderKind string

// Supported providers.
const (
	// ProviderTrueType uses the module's truetype reader. It also yields the font descriptor.
	ProviderTrueType ProviderKind = "truetype"
	// ProviderSfnt uses golang.org/x/image/font/sfnt.
	ProviderSfnt ProviderKind = "sfnt"
)

// Options configure a build. Callers start from DefaultOptions and override fields.
type Options struct {
	// Provider is the font reader. The empty value selects ProviderTrueType.
	Provider ProviderKind

	// MaxCID is the last CID of the CIDToGIDMap. DefaultOptions sets cidtogid.DefaultMaxCID.
	// MaxCID is used as given, so the zero value builds a map of CID 0 alone.
	MaxCID fontmetrics.CID

	// CMapName names the ToUnicode CMap. If empty, the PostScript name of the font is used, or
	// the base name of the font file if the font has none.
	CMapName string

	// Validate checks the table and file checksums of the font before the build.
	Validate bool
}

// DefaultOptions returns the default build options.
func DefaultOptions() Options {
	return Options{
		Provider: ProviderTrueType,
		MaxCID:   cidtogid.DefaultMaxCID,
	}
}
