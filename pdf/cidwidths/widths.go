/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package cidwidths

import (
	"errors"
	"fmt"
	"sort"

	"github.com/unidoc/cidmetrics/common"
	"github.com/unidoc/cidmetrics/pdf/fontmetrics"
)

type (
	// CID is a character identifier.
	CID = fontmetrics.CID
	// WidthTable maps CIDs to widths in 1000 units per em.
	WidthTable = fontmetrics.WidthTable
)

var (
	// ErrEmptyInput is returned when there are no widths to select a default width from.
	ErrEmptyInput = errors.New("cidwidths: empty width table")
	// ErrInvariantViolation is returned when compacted records do not cover exactly the CIDs
	// whose width differs from the default width.
	ErrInvariantViolation = errors.New("cidwidths: records do not match width table")
)

// Record is one entry of the /W array. A nil Widths is a uniform range of Width over
// [Start, End]; otherwise it is an explicit run with End = Start + len(Widths) - 1.
type Record struct {
	Start  CID
	End    CID
	Width  int
	Widths []int
}

// IsRange returns true if `r` is a uniform range.
func (r Record) IsRange() bool {
	return r.Widths == nil
}

// WidthAt returns the width of `cid` in `r`, false if `cid` is outside `r`.
func (r Record) WidthAt(cid CID) (int, bool) {
	if cid < r.Start || cid > r.End {
		return 0, false
	}
	if r.IsRange() {
		return r.Width, true
	}
	return r.Widths[cid-r.Start], true
}

func (r Record) String() string {
	if r.IsRange() {
		return fmt.Sprintf("%d %d %d", r.Start, r.End, r.Width)
	}
	return fmt.Sprintf("%d %v", r.Start, r.Widths)
}

// DefaultWidth returns the most frequent width in `wt`. Of widths with equal frequency, the
// smallest wins.
func DefaultWidth(wt WidthTable) (int, error) {
	if len(wt) == 0 {
		return 0, ErrEmptyInput
	}

	hist := make(map[int]int)
	for _, w := range wt {
		hist[w]++
	}

	bestCount := 0
	bestVal := 0
	for w, count := range hist {
		if count > bestCount || (count == bestCount && w < bestVal) {
			bestCount = count
			bestVal = w
		}
	}
	common.Log.Trace("Default width %d (%d of %d CIDs, %d distinct widths)", bestVal, bestCount, len(wt), len(hist))
	return bestVal, nil
}

// Compact returns the /W records for the CIDs of `wt` whose width is not `dw`, in ascending CID
// order.
func Compact(wt WidthTable, dw int) ([]Record, error) {
	var cids []CID
	for cid, w := range wt {
		if w != dw {
			cids = append(cids, cid)
		}
	}
	sort.Slice(cids, func(i, j int) bool {
		return cids[i] < cids[j]
	})

	var records []Record
	for _, block := range consecutiveBlocks(cids) {
		records = compactBlock(records, block, wt)
	}

	if err := verify(wt, dw, records); err != nil {
		return nil, err
	}
	common.Log.Debug("Compacted %d CIDs into %d records", len(cids), len(records))
	return records, nil
}

// consecutiveBlocks splits the sorted `cids` into maximal runs of consecutive CIDs.
func consecutiveBlocks(cids []CID) [][]CID {
	var blocks [][]CID
	start := 0
	for i := 1; i <= len(cids); i++ {
		if i == len(cids) || int(cids[i]) != int(cids[i-1])+1 {
			blocks = append(blocks, cids[start:i])
			start = i
		}
	}
	return blocks
}

// compactBlock appends the records of the consecutive CIDs `block` to `records`.
func compactBlock(records []Record, block []CID, wt WidthTable) []Record {
	n := len(block)
	width := func(j int) int {
		return wt[block[j]]
	}

	for j := 0; j < n; {
		w := width(j)
		l := 1
		for j+l < n && width(j+l) == w {
			l++
		}
		if l >= 2 {
			records = append(records, Record{Start: block[j], End: block[j+l-1], Width: w})
			j += l
			continue
		}

		// Explicit run. A pair of equal widths ahead starts a uniform range and ends the run.
		rec := Record{Start: block[j], Widths: []int{w}}
		j++
		for j < n {
			if j+1 < n && width(j) == width(j+1) {
				break
			}
			rec.Widths = append(rec.Widths, width(j))
			j++
		}
		rec.End = rec.Start + CID(len(rec.Widths)-1)
		records = append(records, rec)
	}
	return records
}

// verify checks that `records` are ordered, disjoint, well formed and cover exactly the CIDs of
// `wt` whose width is not `dw`, with their widths.
func verify(wt WidthTable, dw int, records []Record) error {
	covered := 0
	for i, rec := range records {
		if i > 0 && rec.Start <= records[i-1].End {
			return fmt.Errorf("%w: record %d (%s) overlaps or precedes record %d", ErrInvariantViolation, i, rec, i-1)
		}
		if rec.End < rec.Start {
			return fmt.Errorf("%w: record %d (%s) ends before it starts", ErrInvariantViolation, i, rec)
		}
		span := int(rec.End) - int(rec.Start) + 1
		if rec.IsRange() && span < 2 {
			return fmt.Errorf("%w: range %d (%s) shorter than 2", ErrInvariantViolation, i, rec)
		}
		if !rec.IsRange() && span != len(rec.Widths) {
			return fmt.Errorf("%w: run %d (%s) span %d != %d widths", ErrInvariantViolation, i, rec, span, len(rec.Widths))
		}

		for c := int(rec.Start); c <= int(rec.End); c++ {
			cid := CID(c)
			w, ok := wt[cid]
			if !ok || w == dw {
				return fmt.Errorf("%w: CID %d not a non-default CID", ErrInvariantViolation, cid)
			}
			if rw, _ := rec.WidthAt(cid); rw != w {
				return fmt.Errorf("%w: CID %d width %d != %d", ErrInvariantViolation, cid, rw, w)
			}
		}
		covered += span
	}

	expected := 0
	for _, w := range wt {
		if w != dw {
			expected++
		}
	}
	if covered != expected {
		return fmt.Errorf("%w: %d CIDs covered, %d expected", ErrInvariantViolation, covered, expected)
	}
	return nil
}

// Table is a default width with its /W records.
type Table struct {
	DW      int
	Records []Record
}

// Encode selects the default width of `wt` and compacts the other widths.
func Encode(wt WidthTable) (*Table, error) {
	dw, err := DefaultWidth(wt)
	if err != nil {
		return nil, err
	}
	records, err := Compact(wt, dw)
	if err != nil {
		return nil, err
	}
	return &Table{DW: dw, Records: records}, nil
}

// Width returns the width of `cid`: the width of the record covering it, else the default width.
func (t *Table) Width(cid CID) int {
	i := sort.Search(len(t.Records), func(i int) bool {
		return t.Records[i].End >= cid
	})
	if i < len(t.Records) {
		if w, ok := t.Records[i].WidthAt(cid); ok {
			return w
		}
	}
	return t.DW
}

// Expand returns the widths of all CIDs listed in the records of `t`.
func (t *Table) Expand() WidthTable {
	wt := WidthTable{}
	for _, rec := range t.Records {
		for c := int(rec.Start); c <= int(rec.End); c++ {
			wt[CID(c)], _ = rec.WidthAt(CID(c))
		}
	}
	return wt
}
