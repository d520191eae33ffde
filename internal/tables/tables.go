/*
Package tables holds the compiled-in Unicode name tables.

The tables come in two parts: an enumeration table, mapping runs of
code-points to compressed word sequences, and a special-group table,
classifying runs of code-points which receive algorithmically derived names
or code-point labels instead of a listed name. Both tables are sorted by
range start and ranges never overlap, neither within a table nor between the
two tables, so every code-point is found by binary search in at most one of
them.

Word sequences reference a shared word dictionary. Two dictionary indices
are sentinels rather than words: SpaceIndex addresses the separating blank,
and CodepointIndex instructs clients to substitute the code-point's
hexadecimal representation. A contiguous band of dictionary indices holds
"special" words, i.e. fragments like "-" which bind to their neighbors
without a separating blank.

Files enumnames.go and groups.go are generated from UnicodeData.txt by
internal/generator. Do not edit them; regenerate instead.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package tables

import "sort"

// Sentinel indices into the word dictionary.
const (
	SpaceIndex     uint16 = 0 // emit a separating blank
	CodepointIndex uint16 = 1 // substitute the code-point's hex representation
)

// SpecialGroup classifies runs of code-points which do not carry a listed
// name. Hangul syllables and ideographs receive algorithmically derived
// names (naming rules NR1 and NR2); the remaining groups have an empty Name
// property and are only ever displayed as code-point labels.
type SpecialGroup int8

// All special groups occurring in the group table.
const (
	HangulSyllable SpecialGroup = iota
	CJKIdeographExtensionA
	CJKIdeograph
	CJKIdeographExtensionB
	CJKIdeographExtensionC
	CJKIdeographExtensionD
	CJKIdeographExtensionE
	CJKIdeographExtensionF
	CJKIdeographExtensionG
	TangutIdeograph
	TangutIdeographSupplement
	Control
	NonPrivateUseHighSurrogate
	PrivateUseHighSurrogate
	LowSurrogate
	PrivateUse
	Plane15PrivateUse
	Plane16PrivateUse
)

var specialGroupNames = [...]string{
	"HangulSyllable",
	"CJKIdeographExtensionA",
	"CJKIdeograph",
	"CJKIdeographExtensionB",
	"CJKIdeographExtensionC",
	"CJKIdeographExtensionD",
	"CJKIdeographExtensionE",
	"CJKIdeographExtensionF",
	"CJKIdeographExtensionG",
	"TangutIdeograph",
	"TangutIdeographSupplement",
	"Control",
	"NonPrivateUseHighSurrogate",
	"PrivateUseHighSurrogate",
	"LowSurrogate",
	"PrivateUse",
	"Plane15PrivateUse",
	"Plane16PrivateUse",
}

// Stringer for type SpecialGroup, used for tracing.
func (g SpecialGroup) String() string {
	if g < 0 || int(g) >= len(specialGroupNames) {
		return "SpecialGroup(?)"
	}
	return specialGroupNames[g]
}

// enumRange is one run of code-points with listed names. Each code-point r
// of the run owns the word sequence
//
//    wordIndexes[wordOffsets[k] : wordOffsets[k+1]],  k = Base + (r - Lo)
//
// i.e. a run covering n code-points owns n+1 consecutive wordOffsets
// entries starting at Base.
type enumRange struct {
	Lo, Hi rune
	Base   uint32
}

// groupRange is one run of code-points sharing a special group.
type groupRange struct {
	Lo, Hi rune
	Group  SpecialGroup
}

// Word returns the dictionary word for index i.
func Word(i uint16) string {
	return wordTable[i]
}

// IsSpecialWordIndex returns true if dictionary index i addresses a special
// word, i.e. one that binds to neighboring words without a separating blank.
// The sentinel indices are not special.
func IsSpecialWordIndex(i uint16) bool {
	return i >= specialWordLo && i <= specialWordHi
}

// FindEnumName searches the enumeration table for code-point r and, on a
// hit, returns r's word-index sequence. The returned slice references the
// static dictionary index store and must not be modified.
func FindEnumName(r rune) ([]uint16, bool) {
	i := sort.Search(len(enumRanges), func(i int) bool {
		return enumRanges[i].Hi >= r
	})
	if i == len(enumRanges) || enumRanges[i].Lo > r {
		return nil, false
	}
	k := enumRanges[i].Base + uint32(r-enumRanges[i].Lo)
	return wordIndexes[wordOffsets[k]:wordOffsets[k+1]], true
}

// FindSpecialGroup searches the special-group table for code-point r.
func FindSpecialGroup(r rune) (SpecialGroup, bool) {
	i := sort.Search(len(groupRanges), func(i int) bool {
		return groupRanges[i].Hi >= r
	})
	if i == len(groupRanges) || groupRanges[i].Lo > r {
		return 0, false
	}
	return groupRanges[i].Group, true
}
