package ucd

import (
	"strings"
	"testing"
)

const sample = `# Derived from UnicodeData.txt
0041;LATIN CAPITAL LETTER A;Lu;0;L;;;;;N;;;;0061;

4E00;<CJK Ideograph, First>;Lo;0;L;;;;;N;;;;;
9FFF;<CJK Ideograph, Last>;Lo;0;L;;;;;N;;;;;
AC00;<Hangul Syllable, First>;Lo;0;L;;;;;N;;;;;
D7A3;<Hangul Syllable, Last>;Lo;0;L;;;;;N;;;;;
`

func TestParseSingles(t *testing.T) {
	p := NewUCDParser(strings.NewReader(sample))
	if !p.Next() {
		t.Fatalf("expected a first data line, got none (err: %v)", p.Err())
	}
	from, to := p.Range(0)
	if from != 0x41 || to != 0x41 {
		t.Errorf("expected single code-point U+0041, have %X..%X", from, to)
	}
	if p.String(1) != "LATIN CAPITAL LETTER A" {
		t.Errorf("unexpected name field: %q", p.String(1))
	}
}

func TestParseRangePairs(t *testing.T) {
	p := NewUCDParser(strings.NewReader(sample))
	var ranges [][2]rune
	var labels []string
	for p.Next() {
		from, to := p.Range(0)
		if strings.HasPrefix(p.String(1), "<") {
			ranges = append(ranges, [2]rune{from, to})
			labels = append(labels, p.String(1))
		}
	}
	if p.Err() != nil {
		t.Fatalf("parser failed: %v", p.Err())
	}
	if len(ranges) != 2 {
		t.Fatalf("expected 2 folded ranges, have %d", len(ranges))
	}
	if ranges[0] != [2]rune{0x4E00, 0x9FFF} || labels[0] != "<CJK Ideograph>" {
		t.Errorf("unexpected first range: %X..%X %q", ranges[0][0], ranges[0][1], labels[0])
	}
	if ranges[1] != [2]rune{0xAC00, 0xD7A3} || labels[1] != "<Hangul Syllable>" {
		t.Errorf("unexpected second range: %X..%X %q", ranges[1][0], ranges[1][1], labels[1])
	}
}

func TestParseRangeField(t *testing.T) {
	p := NewUCDParser(strings.NewReader("1FFFE..1FFFF; value # plane 1 ending\n"))
	if !p.Next() {
		t.Fatalf("expected a data line, got none (err: %v)", p.Err())
	}
	from, to := p.Range(0)
	if from != 0x1FFFE || to != 0x1FFFF {
		t.Errorf("expected range 1FFFE..1FFFF, have %X..%X", from, to)
	}
	if p.String(1) != "value" {
		t.Errorf("unexpected value field: %q", p.String(1))
	}
	if p.Comment() != "plane 1 ending" {
		t.Errorf("unexpected comment: %q", p.Comment())
	}
}
