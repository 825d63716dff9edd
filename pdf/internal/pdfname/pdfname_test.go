/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package pdfname

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscape(t *testing.T) {
	testcases := map[string]string{
		"Test-Regular":   "Test-Regular",
		"Go Regular":     "Go#20Regular",
		"A(B)/C#D":       "A#28B#29#2FC#23D",
		"A/Bé":           "A#2FB#C3#A9",
		"Café":           "Caf#C3#A9",
		"a`b\\c":         "a#60b#5Cc",
		"[x]{y}<z>%":     "#5Bx#5D#7By#7D#3Cz#3E#25",
		"":               "",
		"Adobe-Identity": "Adobe-Identity",
	}
	for name, expected := range testcases {
		assert.Equal(t, expected, Escape(name), name)
	}
}
