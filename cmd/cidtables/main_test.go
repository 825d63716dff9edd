/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package main

import (
	"io/ioutil"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/unidoc/cidmetrics/pdf/cidtables"
)

func TestRun(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "GoMono.ttf")
	require.NoError(t, ioutil.WriteFile(path, gomono.TTF, 0644))

	require.NoError(t, run(path, cidtables.DefaultOptions()))

	for _, suffix := range []string{
		cidtables.SuffixGlyphMap, cidtables.SuffixWidthsPDF, cidtables.SuffixWidthsJS,
		cidtables.SuffixCMap, cidtables.SuffixCMapCompressed, cidtables.SuffixCMapJS,
		cidtables.SuffixDescriptor, cidtables.SuffixManifest,
	} {
		_, err := os.Stat(filepath.Join(dir, "GoMono"+suffix))
		assert.NoError(t, err, suffix)
	}
}

func TestRunMissingFont(t *testing.T) {
	err := run(filepath.Join(t.TempDir(), "missing.ttf"), cidtables.DefaultOptions())
	assert.Error(t, err)
}
