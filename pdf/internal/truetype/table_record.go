/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"fmt"
	"strings"

	"github.com/unidoc/cidmetrics/common"
)

// tableRecord locates one table in the font file.
type tableRecord struct {
	tableTag tag
	checksum uint32
	offset   offset32
	length   uint32
}

func (tr *tableRecord) read(r *byteReader) error {
	return r.read(&tr.tableTag, &tr.checksum, &tr.offset, &tr.length)
}

func (tr tableRecord) write(w *byteWriter) error {
	return w.write(tr.tableTag, tr.checksum, tr.offset, tr.length)
}

// end returns the offset just past the table.
func (tr tableRecord) end() int64 {
	return int64(tr.offset) + int64(tr.length)
}

// tableRecords are the table records of a font in file order, indexed by tag.
type tableRecords struct {
	list  []tableRecord
	trMap map[string]tableRecord
}

func (f *font) parseTableRecords(r *byteReader) (*tableRecords, error) {
	trs := &tableRecords{
		trMap: map[string]tableRecord{},
	}

	for i := 0; i < f.numTables(); i++ {
		var rec tableRecord
		err := rec.read(r)
		if err != nil {
			return nil, err
		}
		name := rec.tableTag.String()
		if _, dup := trs.trMap[name]; dup {
			common.Log.Debug("Duplicate table record %q, using the first", name)
		} else {
			trs.trMap[name] = rec
		}
		trs.list = append(trs.list, rec)
	}

	if common.Log.IsLogLevel(common.LogLevelTrace) {
		common.Log.Trace("%s", trs)
	}
	return trs, nil
}

// seekToTable seeks `r` to the start of table `tableName` and returns its record.
// `has` is false, with no error, if the font does not have the table.
func (f *font) seekToTable(r *byteReader, tableName string) (tr tableRecord, has bool, err error) {
	tr, has = f.trec.lookup(tableName)
	if !has {
		return tr, false, nil
	}

	err = r.Seek(int64(tr.offset))
	if err != nil {
		return tr, false, err
	}
	common.Log.Trace("%s: offset %d length %d", tableName, r.Offset(), tr.length)

	return tr, true, nil
}

func (f *font) writeTableRecords(w *byteWriter) error {
	if f.trec == nil {
		common.Log.Debug("Table records not set")
		return errRequiredField
	}

	for _, tr := range f.trec.list {
		err := tr.write(w)
		if err != nil {
			return err
		}
	}
	return nil
}

// lookup returns the record of `tableName`. Tags shorter than 4 bytes are matched without their
// space padding.
func (trs *tableRecords) lookup(tableName string) (tableRecord, bool) {
	tr, has := trs.trMap[strings.TrimSpace(tableName)]
	return tr, has
}

func (trs *tableRecords) String() string {
	var sb strings.Builder
	for i, tr := range trs.list {
		fmt.Fprintf(&sb, "Table record %d: %s offset=%d length=%d checksum=0x%08X\n",
			i+1, tr.tableTag, tr.offset, tr.length, tr.checksum)
	}
	return sb.String()
}
