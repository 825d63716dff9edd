/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"strings"
	"unicode"

	"golang.org/x/text/encoding/charmap"
	xunicode "golang.org/x/text/encoding/unicode"

	"github.com/unidoc/cidmetrics/common"
)

// nameTable represents the Naming table (name).
// Only the name records are read. The language tag records of format 1 are not needed to find
// font names.
// https://docs.microsoft.com/en-us/typography/opentype/spec/name
type nameTable struct {
	format       uint16
	count        uint16
	stringOffset offset16
	nameRecords  []*nameRecord // len = count.
}

// Each string in the string storage is referenced by a name record.
type nameRecord struct {
	platformID uint16
	encodingID uint16
	languageID uint16
	nameID     uint16
	length     uint16
	offset     offset16
	data       []byte // actual string data.
}

// Name IDs used by this package.
const (
	nameIDFamily         = 1
	nameIDFullName       = 4
	nameIDPostScriptName = 6
)

const languageWindowsEnglishUS = 0x409

// rank orders name records of the same name ID, lower is better: Windows US English first, then
// other Windows Unicode, Unicode platform and Macintosh records.
func (nr nameRecord) rank() int {
	switch nr.platformID {
	case platformWindows:
		if nr.encodingID != encodingWindowsUCS2 && nr.encodingID != encodingWindowsUCS4 && nr.encodingID != 0 {
			return 4
		}
		if nr.languageID == languageWindowsEnglishUS {
			return 0
		}
		return 1
	case platformUnicode:
		return 2
	case platformMac:
		return 3
	}
	return 4
}

// GetNameByID returns the best ranked non-empty string with `nameID` in the name table, an empty
// string if there is none.
func (f *font) GetNameByID(nameID int) string {
	if f == nil || f.name == nil {
		common.Log.Debug("ERROR: Font or name not set")
		return ""
	}

	best, bestRank := "", -1
	for _, nr := range f.name.nameRecords {
		if int(nr.nameID) != nameID {
			continue
		}
		if rank := nr.rank(); bestRank < 0 || rank < bestRank {
			if s := nr.Decoded(); s != "" {
				best, bestRank = s, rank
			}
		}
	}
	return best
}

// decodeUTF16BE decodes UTF-16BE `data`, returning the raw bytes as a string if decoding fails.
func decodeUTF16BE(data []byte) string {
	dec := xunicode.UTF16(xunicode.BigEndian, xunicode.IgnoreBOM).NewDecoder()
	b, err := dec.Bytes(data)
	if err != nil {
		common.Log.Debug("UTF-16BE decoding failed: %v", err)
		return string(data)
	}
	return string(b)
}

// Decoded returns the string of `nr` with unprintable runes removed.
// Windows strings with encoding 0 (symbol), 1 or 10 (Unicode) and all Unicode platform strings
// are UTF-16BE. Macintosh strings are decoded as Mac Roman.
func (nr nameRecord) Decoded() string {
	var s string
	switch {
	case nr.platformID == platformUnicode:
		s = decodeUTF16BE(nr.data)
	case nr.platformID == platformWindows && nr.rank() < 4:
		s = decodeUTF16BE(nr.data)
	case nr.platformID == platformMac:
		var sb strings.Builder
		for _, b := range nr.data {
			sb.WriteRune(charmap.Macintosh.DecodeByte(b))
		}
		s = sb.String()
	default:
		s = string(nr.data)
	}

	return strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) {
			return r
		}
		return -1
	}, s)
}

func (f *font) parseNameTable(r *byteReader) (*nameTable, error) {
	tr, has, err := f.seekToTable(r, "name")
	if err != nil {
		return nil, err
	}
	if !has {
		common.Log.Debug("name table absent")
		return nil, nil
	}

	t := &nameTable{}
	err = r.read(&t.format, &t.count, &t.stringOffset)
	if err != nil {
		return nil, err
	}
	if t.format > 1 {
		common.Log.Debug("ERROR: format > 1 (%d)", t.format)
		return nil, errRangeCheck
	}

	for i := 0; i < int(t.count); i++ {
		var nr nameRecord
		err = r.read(&nr.platformID, &nr.encodingID, &nr.languageID, &nr.nameID, &nr.length, &nr.offset)
		if err != nil {
			return nil, err
		}
		t.nameRecords = append(t.nameRecords, &nr)
	}

	for _, nr := range t.nameRecords {
		if int(t.stringOffset)+int(nr.offset)+int(nr.length) > int(tr.length) {
			common.Log.Debug("name %d: string outside table", nr.nameID)
			return nil, errRangeCheck
		}
		err = r.Seek(int64(tr.offset) + int64(t.stringOffset) + int64(nr.offset))
		if err != nil {
			return nil, err
		}
		err = r.readBytes(&nr.data, int(nr.length))
		if err != nil {
			return nil, err
		}
	}

	common.Log.Debug("Name records: %d", len(t.nameRecords))
	if common.Log.IsLogLevel(common.LogLevelTrace) {
		for _, nr := range t.nameRecords {
			common.Log.Trace("%d %d %d - %q (%d)", nr.platformID, nr.encodingID, nr.nameID, nr.Decoded(), len(nr.data))
		}
	}
	return t, nil
}
