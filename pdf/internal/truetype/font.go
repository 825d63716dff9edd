/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import "github.com/unidoc/cidmetrics/common"

// font is a data model for truetype fonts with basic access methods.
// Only the tables needed for CID font metrics are loaded. Tables that are absent in the font
// file are nil.
type font struct {
	ot   *offsetTable
	trec *tableRecords // table records (references other tables).
	head *headTable
	maxp *maxpTable
	hhea *hheaTable
	hmtx *hmtxTable
	cmap *cmapTable
	name *nameTable
	os2  *os2Table
	post *postTable
}

func (f font) numTables() int {
	return int(f.ot.numTables)
}

// tableLoader loads one table into a font.
type tableLoader struct {
	tag  string
	load func(f *font, r *byteReader) error
}

// tableLoaders lists the loaded tables. hmtx follows maxp and hhea, which size it.
var tableLoaders = []tableLoader{
	{"head", func(f *font, r *byteReader) (err error) { f.head, err = f.parseHead(r); return err }},
	{"maxp", func(f *font, r *byteReader) (err error) { f.maxp, err = f.parseMaxp(r); return err }},
	{"hhea", func(f *font, r *byteReader) (err error) { f.hhea, err = f.parseHhea(r); return err }},
	{"hmtx", func(f *font, r *byteReader) (err error) { f.hmtx, err = f.parseHmtx(r); return err }},
	{"cmap", func(f *font, r *byteReader) (err error) { f.cmap, err = f.parseCmap(r); return err }},
	{"name", func(f *font, r *byteReader) (err error) { f.name, err = f.parseNameTable(r); return err }},
	{"OS/2", func(f *font, r *byteReader) (err error) { f.os2, err = f.parseOS2Table(r); return err }},
	{"post", func(f *font, r *byteReader) (err error) { f.post, err = f.parsePost(r); return err }},
}

func parseFont(r *byteReader) (*font, error) {
	f := &font{}

	var err error
	f.ot, err = f.parseOffsetTable(r)
	if err != nil {
		return nil, err
	}

	f.trec, err = f.parseTableRecords(r)
	if err != nil {
		return nil, err
	}

	for _, tl := range tableLoaders {
		err = tl.load(f, r)
		if err != nil {
			common.Log.Debug("ERROR: %s table: %v", tl.tag, err)
			return nil, err
		}
	}
	return f, nil
}
