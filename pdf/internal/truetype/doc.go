/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

// Package truetype reads the tables of truetype fonts needed to derive CID font metrics:
// the Unicode character to glyph mapping, horizontal metrics, font naming and the font-wide
// metrics used in PDF font descriptors. Table checksums can be validated.
package truetype
