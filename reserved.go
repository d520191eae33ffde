package uniname

import "unicode"

// isCodePoint returns true if r lies within the Unicode code space.
// Reserved (unassigned) code-points are code-points too; integers beyond
// 0x10FFFF are not.
func isCodePoint(r rune) bool {
	return r >= 0 && r <= unicode.MaxRune
}

// Noncharacters are permanently reserved: U+FDD0..U+FDEF plus the last two
// code-points of each of the 17 planes. The plane endings are encoded with
// a stride of 0x10000.
var noncharacters = &unicode.RangeTable{
	R16: []unicode.Range16{
		{0xfdd0, 0xfdef, 1},
		{0xfffe, 0xffff, 1},
	},
	R32: []unicode.Range32{
		{0x1fffe, 0x10fffe, 0x10000},
		{0x1ffff, 0x10ffff, 0x10000},
	},
}

// isNoncharacter returns true if r is a permanently reserved noncharacter.
// Only called for valid code-points matched by neither name table.
func isNoncharacter(r rune) bool {
	return unicode.Is(noncharacters, r)
}
