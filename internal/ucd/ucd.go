/*
Package ucd provides a parser for Unicode Character Database files.

UCD files are line oriented; the format is defined in
http://www.unicode.org/reports/tr44/, example files may be found at
http://www.unicode.org/Public/UCD/latest/ucd/. Every data line consists of
semicolon-separated fields, the first of which holds a code-point or a
code-point range ("0020" or "3400..4DBF"). A '#' starts a rest-of-line
comment.

UnicodeData.txt expresses large ranges as pairs of lines instead, flagging
the first field 1 as "<Name, First>" and "<Name, Last>". The parser folds
such pairs into a single range token and reports field 1 as "<Name>".

Usage:

   p := ucd.NewUCDParser(f)
   for p.Next() {
       from, to := p.Range(0)
       value := p.String(1)
       …
   }
   if p.Err() != nil { … }
*/
package ucd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Parser reads a UCD file line by line. Clients advance it with Next and
// inspect the current data line with Range, String and Comment.
type Parser struct {
	scanner  *bufio.Scanner
	fields   []string
	comment  string
	from, to rune
	err      error
}

// NewUCDParser creates a parser reading from r.
func NewUCDParser(r io.Reader) *Parser {
	return &Parser{scanner: bufio.NewScanner(r)}
}

// Err returns the first error encountered while parsing, if any.
func (p *Parser) Err() error {
	return p.err
}

// Next advances the parser to the next data line, skipping blank and
// comment-only lines. It returns false at end of input or on error.
func (p *Parser) Next() bool {
	if p.err != nil {
		return false
	}
	fields, comment, ok := p.nextLine()
	if !ok {
		return false
	}
	p.fields, p.comment = fields, comment
	if p.from, p.to, p.err = parseRange(fields[0]); p.err != nil {
		return false
	}
	// Fold "<Name, First>" / "<Name, Last>" line pairs into one range.
	if len(fields) > 1 && strings.HasSuffix(fields[1], ", First>") {
		last, _, ok := p.nextLine()
		if !ok || len(last) < 2 || !strings.HasSuffix(last[1], ", Last>") {
			p.err = fmt.Errorf("ucd: range start %q without matching end", fields[1])
			return false
		}
		if _, p.to, p.err = parseRange(last[0]); p.err != nil {
			return false
		}
		p.fields[1] = strings.TrimSuffix(fields[1], ", First>") + ">"
	}
	return true
}

func (p *Parser) nextLine() (fields []string, comment string, ok bool) {
	for p.scanner.Scan() {
		line := p.scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			comment = strings.TrimSpace(line[i+1:])
			line = line[:i]
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields = strings.Split(line, ";")
		for i, f := range fields {
			fields[i] = strings.TrimSpace(f)
		}
		return fields, comment, true
	}
	p.err = p.scanner.Err()
	return nil, "", false
}

// Range returns the code-point range of field i. Single code-points are
// returned as a range of length one.
func (p *Parser) Range(i int) (from, to rune) {
	if i == 0 {
		return p.from, p.to
	}
	from, to, err := parseRange(p.String(i))
	if err != nil {
		p.err = err
	}
	return from, to
}

// String returns field i of the current data line, or "" if the line has
// fewer fields.
func (p *Parser) String(i int) string {
	if i >= len(p.fields) {
		return ""
	}
	return p.fields[i]
}

// Comment returns the rest-of-line comment of the current data line.
func (p *Parser) Comment() string {
	return p.comment
}

func parseRange(s string) (from, to rune, err error) {
	lo, hi := s, s
	if i := strings.Index(s, ".."); i >= 0 {
		lo, hi = s[:i], s[i+2:]
	}
	n, err := strconv.ParseUint(lo, 16, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("ucd: hex decoding error: %w", err)
	}
	m, err := strconv.ParseUint(hi, 16, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("ucd: hex decoding error: %w", err)
	}
	return rune(n), rune(m), nil
}
