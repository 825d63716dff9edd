/*
 * This file is subject to the terms and conditions defined in
 * file 'LICENSE.md', which is part of this source code package.
 */

package cidwidths

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"text/scanner"

	"github.com/unidoc/cidmetrics/common"
	"github.com/unidoc/cidmetrics/pdf/fontmetrics"
)

// ErrSyntax is returned when width table text cannot be parsed.
var ErrSyntax = errors.New("cidwidths: syntax error")

// ParsePDF parses the /W and /DW text produced by Table.PDF.
// Any whitespace layout is accepted.
func ParsePDF(text string) (*Table, error) {
	p := newParser(text)
	err := p.expectSeq('/', "W", '[')
	if err != nil {
		return nil, err
	}

	t := &Table{}
	for p.tok != ']' {
		err = p.recordPDF(t)
		if err != nil {
			return nil, err
		}
	}
	p.next()

	err = p.expectSeq('/', "DW")
	if err != nil {
		return nil, err
	}
	t.DW, err = p.int()
	if err != nil {
		return nil, err
	}
	return t, p.expectEOF()
}

// recordPDF reads one record: `c [w1 ... wn]` or `c_first c_last w`.
func (p *parser) recordPDF(t *Table) error {
	start, err := p.cid()
	if err != nil {
		return err
	}

	if p.tok == '[' {
		p.next()
		var widths []int
		for p.tok != ']' {
			w, err := p.int()
			if err != nil {
				return err
			}
			widths = append(widths, w)
		}
		p.next()
		return t.appendRun(p, start, widths)
	}

	end, err := p.cid()
	if err != nil {
		return err
	}
	w, err := p.int()
	if err != nil {
		return err
	}
	return t.appendRecord(p, Record{Start: start, End: end, Width: w})
}

// ParseJS parses the module text produced by Table.JS. Trailing commas are optional.
func ParseJS(text string) (*Table, error) {
	p := newParser(text)
	err := p.expectSeq("export", "const", "W", '=', '[')
	if err != nil {
		return nil, err
	}

	t := &Table{}
	for p.tok != ']' {
		err = p.recordJS(t)
		if err != nil {
			return nil, err
		}
	}
	p.next()

	err = p.expectSeq(';', "export", "const", "DW", '=')
	if err != nil {
		return nil, err
	}
	t.DW, err = p.int()
	if err != nil {
		return nil, err
	}
	if p.tok == ';' {
		p.next()
	}
	return t, p.expectEOF()
}

// recordJS reads one record: `c, [w1, ..., wn],` or `c_first, c_last, w,`.
func (p *parser) recordJS(t *Table) error {
	start, err := p.cid()
	if err != nil {
		return err
	}
	err = p.expect(',')
	if err != nil {
		return err
	}

	if p.tok == '[' {
		p.next()
		var widths []int
		for p.tok != ']' {
			w, err := p.int()
			if err != nil {
				return err
			}
			widths = append(widths, w)
			if p.tok == ',' {
				p.next()
			} else if p.tok != ']' {
				return p.errorf("expected \",\" or \"]\", got %q", p.s.TokenText())
			}
		}
		p.next()
		err = t.appendRun(p, start, widths)
	} else {
		var end CID
		var w int
		end, err = p.cid()
		if err != nil {
			return err
		}
		err = p.expect(',')
		if err != nil {
			return err
		}
		w, err = p.int()
		if err != nil {
			return err
		}
		err = t.appendRecord(p, Record{Start: start, End: end, Width: w})
	}
	if err != nil {
		return err
	}

	if p.tok == ',' {
		p.next()
	} else if p.tok != ']' {
		return p.errorf("expected \",\" or \"]\", got %q", p.s.TokenText())
	}
	return nil
}

func (t *Table) appendRun(p *parser, start CID, widths []int) error {
	if len(widths) == 0 {
		return p.errorf("empty width array at CID %d", start)
	}
	end := int(start) + len(widths) - 1
	if end > fontmetrics.MaxCID {
		return p.errorf("width array at CID %d runs past CID %d", start, fontmetrics.MaxCID)
	}
	return t.appendRecord(p, Record{Start: start, End: CID(end), Widths: widths})
}

// appendRecord appends `rec` to `t`, requiring records in ascending, non-overlapping order.
func (t *Table) appendRecord(p *parser, rec Record) error {
	if rec.End < rec.Start {
		return p.errorf("range %d %d ends before it starts", rec.Start, rec.End)
	}
	if n := len(t.Records); n > 0 && rec.Start <= t.Records[n-1].End {
		return p.errorf("record at CID %d overlaps or precedes CID %d", rec.Start, t.Records[n-1].End)
	}
	t.Records = append(t.Records, rec)
	return nil
}

// parser is a token reader over width table text.
type parser struct {
	s   scanner.Scanner
	tok rune
	err error
}

func newParser(text string) *parser {
	p := &parser{}
	p.s.Init(strings.NewReader(text))
	p.s.Mode = scanner.ScanIdents | scanner.ScanInts
	p.s.Error = func(s *scanner.Scanner, msg string) {
		if p.err == nil {
			p.err = fmt.Errorf("%w: %s: %s", ErrSyntax, s.Position, msg)
		}
	}
	p.next()
	return p
}

func (p *parser) next() {
	p.tok = p.s.Scan()
}

func (p *parser) errorf(format string, args ...interface{}) error {
	if p.err != nil {
		return p.err
	}
	err := fmt.Errorf("%w: %s: %s", ErrSyntax, p.s.Position, fmt.Sprintf(format, args...))
	common.Log.Debug("%v", err)
	return err
}

// expect consumes the single character token `tok`.
func (p *parser) expect(tok rune) error {
	if p.tok != tok {
		return p.errorf("expected %q, got %q", string(tok), p.s.TokenText())
	}
	p.next()
	return nil
}

// expectSeq consumes a sequence of single character tokens (rune) and identifiers (string).
func (p *parser) expectSeq(toks ...interface{}) error {
	for _, tok := range toks {
		switch t := tok.(type) {
		case rune:
			if err := p.expect(t); err != nil {
				return err
			}
		case string:
			if p.tok != scanner.Ident || p.s.TokenText() != t {
				return p.errorf("expected %q, got %q", t, p.s.TokenText())
			}
			p.next()
		}
	}
	return nil
}

func (p *parser) expectEOF() error {
	if p.tok != scanner.EOF {
		return p.errorf("unexpected %q after default width", p.s.TokenText())
	}
	return p.err
}

// int consumes an optionally signed integer.
func (p *parser) int() (int, error) {
	sign := 1
	if p.tok == '-' {
		sign = -1
		p.next()
	}
	if p.tok != scanner.Int {
		return 0, p.errorf("expected integer, got %q", p.s.TokenText())
	}
	v, err := strconv.Atoi(p.s.TokenText())
	if err != nil {
		return 0, p.errorf("integer %q: %v", p.s.TokenText(), err)
	}
	p.next()
	return sign * v, nil
}

// cid consumes an integer in the CID range.
func (p *parser) cid() (CID, error) {
	v, err := p.int()
	if err != nil {
		return 0, err
	}
	if v < 0 || v > fontmetrics.MaxCID {
		return 0, p.errorf("CID %d out of range", v)
	}
	return CID(v), nil
}
