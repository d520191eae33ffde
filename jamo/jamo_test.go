package jamo

import "testing"

func TestSyllableName(t *testing.T) {
	syllables := []struct {
		r    rune
		name string
	}{
		{0xAC00, "GA"},
		{0xAC01, "GAG"},
		{0xAC1C, "GAE"},
		{0xB155, "NYEONG"},
		{0xD7A3, "HIH"},
	}
	for _, syl := range syllables {
		if name := SyllableName(syl.r); name != syl.name {
			t.Errorf("expected syllable name of %#U to be %q, is %q", syl.r, syl.name, name)
		}
	}
	if name := SyllableName('A'); name != "" {
		t.Errorf("expected no syllable name for 'A', got %q", name)
	}
}

func TestDecompose(t *testing.T) {
	l, v, tt, ok := Decompose(0xAC01) // GAG
	if !ok {
		t.Fatal("expected U+AC01 to decompose, did not")
	}
	if l != 0x1100 || v != 0x1161 || tt != 0x11A8 {
		t.Errorf("expected jamo (1100, 1161, 11A8), have (%X, %X, %X)", l, v, tt)
	}
	if _, _, tt, _ = Decompose(0xAC00); tt != 0 {
		t.Errorf("expected no trailing consonant for U+AC00, have %X", tt)
	}
	if _, _, _, ok = Decompose(0xD7A4); ok {
		t.Error("expected U+D7A4 not to decompose, did")
	}
}

func TestDecomposeTotal(t *testing.T) {
	for r := rune(SBase); r < SBase+SCnt; r++ {
		if name := SyllableName(r); name == "" {
			t.Fatalf("expected a syllable name for %#U, got none", r)
		}
	}
}
