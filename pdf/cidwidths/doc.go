/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package cidwidths encodes the glyph widths of a CIDFont as a default width (/DW) and a compact
// width array (/W).
//
// The default width is the most frequent width. The CIDs with other widths are split into blocks
// of consecutive CIDs and each block is compacted greedily into records of two kinds:
//
//   c_first c_last w    uniform range, every CID in [c_first, c_last] has width w
//   c [w1 w2 ... wn]    explicit run, CID c+i has width w(i+1)
//
// Every run of two or more equal widths inside a block becomes its own uniform range. The other
// widths are collected in explicit runs, which end before a pair of equal widths.
//
// Tables are rendered as PDF text (Table.PDF) or as an ES module (Table.JS) and both renditions
// can be parsed back (ParsePDF, ParseJS).
package cidwidths
