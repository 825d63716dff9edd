/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package cidtables

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io/ioutil"
	"path/filepath"

	"golang.org/x/crypto/blake2b"

	"github.com/unidoc/cidmetrics/common"
)

// Artifact file name suffixes, appended to Artifacts.Base.
const (
	SuffixGlyphMap       = "_CidToGIDMap.bin"
	SuffixWidthsPDF      = "_W.txt"
	SuffixWidthsJS       = "_W.js"
	SuffixCMap           = ".cmap"
	SuffixCMapCompressed = ".bmap"
	SuffixCMapJS         = "_cMap.js"
	SuffixDescriptor     = "_FontDescriptor.txt"
	SuffixManifest       = ".b2sum"
)

// File is the content of one artifact file.
type File struct {
	Suffix string
	Data   []byte
}

// Files returns the artifact files of `a` in a fixed order, without the manifest.
func (a *Artifacts) Files() ([]File, error) {
	bmap, err := a.CMap.Compressed()
	if err != nil {
		return nil, err
	}

	files := []File{
		{SuffixGlyphMap, a.GlyphMap.Bytes()},
		{SuffixWidthsPDF, []byte(a.Widths.PDF())},
		{SuffixWidthsJS, []byte(a.Widths.JS())},
		{SuffixCMap, []byte(a.CMap.Text())},
		{SuffixCMapCompressed, bmap},
		{SuffixCMapJS, []byte(a.CMap.JS())},
	}
	if a.Descriptor != nil {
		files = append(files, File{SuffixDescriptor, []byte(a.Descriptor.PDF())})
	}
	return files, nil
}

// Manifest returns a BLAKE2b-256 digest list of `files` in the format of `b2sum -l 256`, with
// file names relative to the directory of the artifacts.
func (a *Artifacts) Manifest(files []File) []byte {
	var buf bytes.Buffer
	for _, f := range files {
		sum := blake2b.Sum256(f.Data)
		fmt.Fprintf(&buf, "%s  %s\n", hex.EncodeToString(sum[:]), filepath.Base(a.Base+f.Suffix))
	}
	return buf.Bytes()
}

// WriteFiles writes the artifact files and their manifest next to Artifacts.Base and returns the
// paths written.
func (a *Artifacts) WriteFiles() ([]string, error) {
	files, err := a.Files()
	if err != nil {
		return nil, err
	}
	files = append(files, File{SuffixManifest, a.Manifest(files)})

	var paths []string
	for _, f := range files {
		path := a.Base + f.Suffix
		err := ioutil.WriteFile(path, f.Data, 0644)
		if err != nil {
			common.Log.Debug("ERROR: writing %s: %v", path, err)
			return paths, err
		}
		common.Log.Debug("Wrote %s (%d bytes)", path, len(f.Data))
		paths = append(paths, path)
	}
	return paths, nil
}
