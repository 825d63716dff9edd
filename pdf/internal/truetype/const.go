/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import "errors"

var (
	errTypeCheck     = errors.New("type check error")
	errRangeCheck    = errors.New("range check error")
	errRequiredField = errors.New("required field missing")
	errMagicNumber   = errors.New("head magic number mismatch")
)

// errUnsupportedFormat marks a cmap subtable format that is skipped in favour of other subtables.
var errUnsupportedFormat = errors.New("unsupported subtable format")
