package tables

import "testing"

func TestFindEnumName(t *testing.T) {
	words, ok := FindEnumName('A')
	if !ok {
		t.Fatal("expected 'A' in the enumeration table, is not")
	}
	if len(words) == 0 {
		t.Fatal("expected a non-empty word sequence for 'A'")
	}
	if Word(words[0]) != "LATIN" {
		t.Errorf("expected first word of 'A' to be \"LATIN\", is %q", Word(words[0]))
	}
	if _, ok := FindEnumName(0x378); ok {
		t.Error("expected unassigned U+0378 not to be enumerated, is")
	}
	if _, ok := FindEnumName(0x4E00); ok {
		t.Error("expected CJK ideograph U+4E00 not to be enumerated, is")
	}
	if _, ok := FindEnumName(-1); ok {
		t.Error("expected negative input not to be enumerated, is")
	}
}

func TestFindSpecialGroup(t *testing.T) {
	groups := []struct {
		r     rune
		group SpecialGroup
	}{
		{0x00, Control},
		{0x81, Control},
		{0x4E00, CJKIdeograph},
		{0x3400, CJKIdeographExtensionA},
		{0x20000, CJKIdeographExtensionB},
		{0xAC00, HangulSyllable},
		{0xD7A3, HangulSyllable},
		{0xD800, NonPrivateUseHighSurrogate},
		{0xDB80, PrivateUseHighSurrogate},
		{0xDC00, LowSurrogate},
		{0xE000, PrivateUse},
		{0x17000, TangutIdeograph},
		{0x18D00, TangutIdeographSupplement},
		{0xF0000, Plane15PrivateUse},
		{0x100000, Plane16PrivateUse},
	}
	for _, grp := range groups {
		g, ok := FindSpecialGroup(grp.r)
		if !ok {
			t.Errorf("expected %#U in the special-group table, is not", grp.r)
			continue
		}
		if g != grp.group {
			t.Errorf("expected group of %#U to be %s, is %s", grp.r, grp.group, g)
		}
	}
	if _, ok := FindSpecialGroup('A'); ok {
		t.Error("expected 'A' not to be in the special-group table, is")
	}
	if _, ok := FindSpecialGroup(0xFDD0); ok {
		t.Error("expected noncharacter U+FDD0 in no table, found a group")
	}
}

// The binary search over both tables relies on entries being sorted by
// range start, non-overlapping, and mutually disjoint.
func TestTableInvariants(t *testing.T) {
	last := rune(-1)
	for i, e := range enumRanges {
		if e.Lo > e.Hi {
			t.Fatalf("enumeration entry %d has inverted range %X..%X", i, e.Lo, e.Hi)
		}
		if e.Lo <= last {
			t.Fatalf("enumeration entry %d (%X..%X) overlaps its predecessor", i, e.Lo, e.Hi)
		}
		last = e.Hi
	}
	last = rune(-1)
	for i, g := range groupRanges {
		if g.Lo > g.Hi {
			t.Fatalf("group entry %d has inverted range %X..%X", i, g.Lo, g.Hi)
		}
		if g.Lo <= last {
			t.Fatalf("group entry %d (%X..%X) overlaps its predecessor", i, g.Lo, g.Hi)
		}
		last = g.Hi
		if _, ok := FindEnumName(g.Lo); ok {
			t.Fatalf("group entry %d (%X..%X) intersects the enumeration table", i, g.Lo, g.Hi)
		}
		if _, ok := FindEnumName(g.Hi); ok {
			t.Fatalf("group entry %d (%X..%X) intersects the enumeration table", i, g.Lo, g.Hi)
		}
	}
}

func TestSentinels(t *testing.T) {
	if SpaceIndex == CodepointIndex {
		t.Fatal("sentinel indices collide")
	}
	if Word(SpaceIndex) != " " {
		t.Errorf("expected the space sentinel to map to a blank, is %q", Word(SpaceIndex))
	}
	if IsSpecialWordIndex(SpaceIndex) || IsSpecialWordIndex(CodepointIndex) {
		t.Error("sentinel indices must not be special words")
	}
	if !IsSpecialWordIndex(specialWordLo) || !IsSpecialWordIndex(specialWordHi) {
		t.Error("special word band boundaries must be special words")
	}
}

// Every word sequence in the index store must stay within the dictionary,
// and offsets must be monotone.
func TestWordStoreConsistency(t *testing.T) {
	for i := 1; i < len(wordOffsets); i++ {
		if wordOffsets[i] < wordOffsets[i-1] {
			t.Fatalf("wordOffsets not monotone at %d", i)
		}
	}
	if int(wordOffsets[len(wordOffsets)-1]) != len(wordIndexes) {
		t.Fatalf("final word offset %d does not close the index store of size %d",
			wordOffsets[len(wordOffsets)-1], len(wordIndexes))
	}
	for i, inx := range wordIndexes {
		if int(inx) >= len(wordTable) {
			t.Fatalf("word index %d at %d outside the dictionary", inx, i)
		}
	}
}
