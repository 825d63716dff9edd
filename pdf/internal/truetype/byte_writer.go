/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package truetype

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/unidoc/cidmetrics/common"
)

// byteWriter encapsulates io.Writer and provides methods to write binary data as fit for truetype fonts.
// Writes are buffered until flushed.
type byteWriter struct {
	w      io.Writer
	buffer bytes.Buffer
}

func newByteWriter(w io.Writer) *byteWriter {
	return &byteWriter{
		w: w,
	}
}

func (w *byteWriter) flush() error {
	_, err := w.w.Write(w.buffer.Bytes())
	if err != nil {
		return err
	}

	w.buffer.Reset()
	return nil
}

// tableChecksum returns the truetype checksum of `data`: the sum of its big endian uint32 words,
// the last word zero padded.
func tableChecksum(data []byte) uint32 {
	var sum uint32
	for i := 0; i < len(data); i += 4 {
		var word [4]byte
		copy(word[:], data[i:])
		sum += binary.BigEndian.Uint32(word[:])
	}
	return sum
}

func (w *byteWriter) writeSlice(slice interface{}) error {
	switch t := slice.(type) {
	case []uint8:
		return w.writeBytes(t)
	case []uint16:
		for _, val := range t {
			err := w.writeUint16(val)
			if err != nil {
				return err
			}
		}
	default:
		common.Log.Debug("Write type check error: %T (slice)", t)
		return errTypeCheck
	}
	return nil
}

// write writes a series of values to `w`. Values may also be passed by pointer.
func (w *byteWriter) write(fields ...interface{}) error {
	for _, f := range fields {
		switch f.(type) {
		case uint8, int8, uint16, int16, uint32,
			fixed, fword, ufword, longdatetime, tag, offset16, offset32,
			*uint8, *int8, *uint16, *int16, *uint32,
			*fixed, *fword, *ufword, *longdatetime, *tag, *offset16, *offset32:
		default:
			common.Log.Debug("Write type check error: %T", f)
			return errTypeCheck
		}

		err := binary.Write(&w.buffer, binary.BigEndian, f)
		if err != nil {
			return err
		}
	}
	return nil
}

func (w *byteWriter) writeBytes(b []byte) error {
	_, err := w.buffer.Write(b)
	return err
}

func (w *byteWriter) writeUint16(vals ...uint16) error {
	return binary.Write(&w.buffer, binary.BigEndian, vals)
}

func (w *byteWriter) writeUint32(vals ...uint32) error {
	return binary.Write(&w.buffer, binary.BigEndian, vals)
}
