/*
Package jamo decomposes precomposed Hangul syllables into jamo.

The Hangul syllable block U+AC00–U+D7A3 holds 11172 precomposed syllables,
arithmetically arranged from a leading consonant, a vowel and an optional
trailing consonant. The decomposition and the romanized jamo short names
are defined in chapter 3.12 of the Unicode standard; character names for
Hangul syllables derive from them (naming rule NR1).

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package jamo

// Arithmetic constants for Hangul syllable composition, from the Unicode
// standard, chapter 3.12.
const (
	SBase = 0xAC00 // first precomposed syllable
	LBase = 0x1100 // first leading consonant jamo
	VBase = 0x1161 // first vowel jamo
	TBase = 0x11A7 // one before the first trailing consonant jamo
	LCnt  = 19
	VCnt  = 21
	TCnt  = 28 // includes the empty trailing consonant
	SCnt  = LCnt * VCnt * TCnt
)

// Jamo short names, indexed by jamo offset. Entry 11 of the leading
// consonants (ieung) and entry 0 of the trailing consonants are empty.
var (
	lNames = [LCnt]string{
		"G", "GG", "N", "D", "DD", "R", "M", "B", "BB", "S",
		"SS", "", "J", "JJ", "C", "K", "T", "P", "H",
	}
	vNames = [VCnt]string{
		"A", "AE", "YA", "YAE", "EO", "E", "YEO", "YE", "O", "WA",
		"WAE", "OE", "YO", "U", "WEO", "WE", "WI", "YU", "EU", "YI",
		"I",
	}
	tNames = [TCnt]string{
		"", "G", "GG", "GS", "N", "NJ", "NH", "D", "L", "LG",
		"LM", "LB", "LS", "LT", "LP", "LH", "M", "B", "BS", "S",
		"SS", "NG", "J", "C", "K", "T", "P", "H",
	}
)

// IsSyllable returns true if r is a precomposed Hangul syllable.
func IsSyllable(r rune) bool {
	return r >= SBase && r < SBase+SCnt
}

// Decompose splits a precomposed Hangul syllable into its leading
// consonant, vowel and trailing consonant jamo code-points. For syllables
// without a trailing consonant, t is 0. ok is false if r is not a
// precomposed syllable.
func Decompose(r rune) (l, v, t rune, ok bool) {
	if !IsSyllable(r) {
		return 0, 0, 0, false
	}
	s := r - SBase
	l = LBase + s/(VCnt*TCnt)
	v = VBase + (s%(VCnt*TCnt))/TCnt
	if ti := s % TCnt; ti > 0 {
		t = TBase + ti
	}
	return l, v, t, true
}

// SyllableName returns the romanized jamo concatenation for a precomposed
// Hangul syllable, e.g. "GAG" for U+AC01. This is the variable part of the
// syllable's character name per naming rule NR1. Returns "" if r is not a
// precomposed syllable.
func SyllableName(r rune) string {
	if !IsSyllable(r) {
		return ""
	}
	s := r - SBase
	return lNames[s/(VCnt*TCnt)] + vNames[(s%(VCnt*TCnt))/TCnt] + tNames[s%TCnt]
}
