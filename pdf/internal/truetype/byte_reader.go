/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"bufio"
	"encoding/binary"
	"io"

	"github.com/unidoc/cidmetrics/common"
)

// maxSliceLen bounds the number of values read by one readSlice call.
const maxSliceLen = 1 << 20

// byteReader reads big-endian truetype data types from a buffered io.ReadSeeker.
// The buffer is dropped on every Seek since tables are visited out of file order.
type byteReader struct {
	rs     io.ReadSeeker
	reader *bufio.Reader
}

func newByteReader(rs io.ReadSeeker) *byteReader {
	return &byteReader{
		rs:     rs,
		reader: bufio.NewReader(rs),
	}
}

// Offset returns current offset position of `r`.
func (r byteReader) Offset() int64 {
	offset, _ := r.rs.Seek(0, io.SeekCurrent)
	return offset - int64(r.reader.Buffered())
}

// Seek seeks to absolute position `offset`.
func (r *byteReader) Seek(offset int64) error {
	_, err := r.rs.Seek(offset, io.SeekStart)
	if err != nil {
		common.Log.Debug("ERROR: seek to %d: %v", offset, err)
		return err
	}
	r.reader.Reset(r.rs)
	return nil
}

// Skip skips over `n` bytes.
func (r *byteReader) Skip(n int) error {
	_, err := r.reader.Discard(n)
	return err
}

// readBytes reads `length` bytes into `bp`.
func (r *byteReader) readBytes(bp *[]byte, length int) error {
	*bp = make([]byte, length)
	_, err := io.ReadFull(r.reader, *bp)
	return err
}

// readSlice appends `length` values to `slice`, a *[]uint8 or *[]uint16.
func (r *byteReader) readSlice(slice interface{}, length int) error {
	if length < 0 || length > maxSliceLen {
		common.Log.Debug("ERROR: slice length %d", length)
		return errRangeCheck
	}

	switch t := slice.(type) {
	case *[]uint8:
		vals := make([]uint8, length)
		if _, err := io.ReadFull(r.reader, vals); err != nil {
			return err
		}
		*t = append(*t, vals...)
	case *[]uint16:
		vals := make([]uint16, length)
		if err := binary.Read(r.reader, binary.BigEndian, vals); err != nil {
			return err
		}
		*t = append(*t, vals...)
	default:
		common.Log.Debug("Unsupported type: %T (readSlice)", t)
		return errTypeCheck
	}
	return nil
}

// read reads a series of fields from `r`. Each field must point to one of the fixed size
// truetype data types.
func (r byteReader) read(fields ...interface{}) error {
	for _, f := range fields {
		switch f.(type) {
		case *uint8, *int8, *uint16, *int16, *uint32,
			*fixed, *fword, *ufword, *longdatetime, *tag, *offset16, *offset32:
		default:
			common.Log.Debug("Unsupported type: %T (read)", f)
			return errTypeCheck
		}

		err := binary.Read(r.reader, binary.BigEndian, f)
		if err != nil {
			return err
		}
	}
	return nil
}
