/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package cidtables

import (
	"bytes"
	"compress/zlib"
	"encoding/hex"
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/blake2b"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/unidoc/cidmetrics/common"
	"github.com/unidoc/cidmetrics/pdf/cidtogid"
	"github.com/unidoc/cidmetrics/pdf/cidwidths"
)

func init() {
	common.SetLogger(common.NewConsoleLogger(common.LogLevelInfo))
}

func writeGoRegular(t *testing.T) string {
	path := filepath.Join(t.TempDir(), "GoRegular.ttf")
	require.NoError(t, ioutil.WriteFile(path, goregular.TTF, 0644))
	return path
}

func TestBaseName(t *testing.T) {
	testcases := map[string]string{
		"fonts/Go.ttf":    "fonts/Go",
		"Go.regular.ttf":  "Go.regular",
		"/abs/path/NoExt": "/abs/path/NoExt",
		"dir.d/Font.otf":  "dir.d/Font",
	}
	for path, expected := range testcases {
		assert.Equal(t, expected, BaseName(path), path)
	}
}

func TestCMapName(t *testing.T) {
	assert.Equal(t, "Custom", cmapName("Custom", "GoRegular", "fonts/Go"))
	assert.Equal(t, "GoRegular", cmapName("", "GoRegular", "fonts/Go"))
	assert.Equal(t, "Go", cmapName("", "", "fonts/Go"))
}

func TestBuildTrueType(t *testing.T) {
	a, err := Build(goregular.TTF, "out/GoRegular", DefaultOptions())
	require.NoError(t, err)

	require.NotNil(t, a.Descriptor)
	assert.Equal(t, "out/GoRegular", a.Base)
	assert.Equal(t, 0x10000, a.GlyphMap.Len())
	assert.NotEmpty(t, a.CMap.Name())
	assert.Equal(t, a.Descriptor.FontName, a.CMap.Name())

	for cid, w := range a.Metrics.Widths {
		assert.Equal(t, w, a.Widths.Width(cid), "cid %d", cid)
	}
	for cid, gid := range a.Metrics.Glyphs {
		assert.Equal(t, gid, a.GlyphMap.Lookup(cid), "cid %d", cid)
	}

	n := 0
	for _, chunk := range a.CMap.Chunks() {
		n += len(chunk)
	}
	assert.Equal(t, len(a.Metrics.Codes), n)
}

func TestBuildProvidersAgree(t *testing.T) {
	tt, err := Build(goregular.TTF, "GoRegular", DefaultOptions())
	require.NoError(t, err)

	opts := DefaultOptions()
	opts.Provider = ProviderSfnt
	sf, err := Build(goregular.TTF, "GoRegular", opts)
	require.NoError(t, err)

	assert.Nil(t, sf.Descriptor)
	assert.Equal(t, tt.Widths, sf.Widths)
	assert.Equal(t, tt.GlyphMap.Bytes(), sf.GlyphMap.Bytes())
	assert.Equal(t, tt.CMap.Text(), sf.CMap.Text())
}

func TestBuildOptions(t *testing.T) {
	opts := DefaultOptions()
	opts.MaxCID = 0x7F
	opts.CMapName = "GoSubset"
	a, err := Build(goregular.TTF, "GoRegular", opts)
	require.NoError(t, err)

	assert.Equal(t, 0x80, a.GlyphMap.Len())
	assert.Len(t, a.GlyphMap.Bytes(), 0x100)
	assert.Equal(t, "GoSubset", a.CMap.Name())
	assert.Contains(t, a.CMap.Text(), "/CMapName /GoSubset def")
}

func TestBuildZeroOptions(t *testing.T) {
	a, err := Build(goregular.TTF, "GoRegular", Options{})
	require.NoError(t, err)
	require.NotNil(t, a.Descriptor)
	assert.Equal(t, 1, a.GlyphMap.Len())
	assert.Len(t, a.GlyphMap.Bytes(), 2)

	a, err = Build(goregular.TTF, "GoRegular", DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, int(cidtogid.DefaultMaxCID)+1, a.GlyphMap.Len())
}

func TestBuildErrors(t *testing.T) {
	opts := DefaultOptions()
	opts.Provider = "freetype"
	_, err := Build(goregular.TTF, "GoRegular", opts)
	assert.Equal(t, ErrUnknownProvider, err)

	garbage := []byte("not a font at all")
	_, err = Build(garbage, "garbage", DefaultOptions())
	assert.Error(t, err)

	opts = DefaultOptions()
	opts.Provider = ProviderSfnt
	_, err = Build(garbage, "garbage", opts)
	assert.Error(t, err)

	_, err = BuildFile(filepath.Join(t.TempDir(), "missing.ttf"), DefaultOptions())
	assert.Error(t, err)
}

func TestBuildValidate(t *testing.T) {
	data := make([]byte, len(goregular.TTF))
	copy(data, goregular.TTF)
	data[len(data)-1] ^= 0xFF

	opts := DefaultOptions()
	opts.Validate = true
	_, err := Build(data, "GoRegular", opts)
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "cidtables: validation:"), err.Error())
}

func TestWriteFiles(t *testing.T) {
	path := writeGoRegular(t)
	a, err := BuildFile(path, DefaultOptions())
	require.NoError(t, err)

	base := strings.TrimSuffix(path, ".ttf")
	assert.Equal(t, base, a.Base)

	paths, err := a.WriteFiles()
	require.NoError(t, err)
	expected := []string{
		base + "_CidToGIDMap.bin",
		base + "_W.txt",
		base + "_W.js",
		base + ".cmap",
		base + ".bmap",
		base + "_cMap.js",
		base + "_FontDescriptor.txt",
		base + ".b2sum",
	}
	assert.Equal(t, expected, paths)

	read := func(p string) []byte {
		data, err := ioutil.ReadFile(p)
		require.NoError(t, err)
		return data
	}

	assert.Len(t, read(base+"_CidToGIDMap.bin"), 2*0x10000)

	w, err := cidwidths.ParsePDF(string(read(base + "_W.txt")))
	require.NoError(t, err)
	assert.Equal(t, a.Widths, w)
	w, err = cidwidths.ParseJS(string(read(base + "_W.js")))
	require.NoError(t, err)
	assert.Equal(t, a.Widths, w)

	zr, err := zlib.NewReader(bytes.NewReader(read(base + ".bmap")))
	require.NoError(t, err)
	inflated, err := ioutil.ReadAll(zr)
	require.NoError(t, err)
	assert.Equal(t, read(base+".cmap"), inflated)

	assert.Equal(t, a.Descriptor.PDF(), string(read(base+"_FontDescriptor.txt")))
	assert.True(t, strings.HasPrefix(string(read(base+"_cMap.js")), "export const cMap = `"))

	lines := strings.Split(strings.TrimSuffix(string(read(base+".b2sum")), "\n"), "\n")
	require.Len(t, lines, len(expected)-1)
	for i, line := range lines {
		parts := strings.SplitN(line, "  ", 2)
		require.Len(t, parts, 2, line)
		assert.Equal(t, filepath.Base(expected[i]), parts[1])
		sum := blake2b.Sum256(read(expected[i]))
		assert.Equal(t, hex.EncodeToString(sum[:]), parts[0], parts[1])
	}
}

func TestWriteFilesSfnt(t *testing.T) {
	path := writeGoRegular(t)
	opts := DefaultOptions()
	opts.Provider = ProviderSfnt
	a, err := BuildFile(path, opts)
	require.NoError(t, err)

	paths, err := a.WriteFiles()
	require.NoError(t, err)
	assert.Len(t, paths, 7)
	for _, p := range paths {
		assert.False(t, strings.HasSuffix(p, SuffixDescriptor), p)
	}
}
