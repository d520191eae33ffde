package uniname

import (
	"fmt"

	"github.com/npillmayer/uniname/internal/tables"
	"github.com/npillmayer/uniname/jamo"
)

// CharName resolves the name of code-point r according to UAX#44.
//
// For code-points carrying a Name property value, the property value is
// returned. Hangul syllable and ideograph names are derived by naming rules
// NR1 and NR2. Code-points with an empty Name property come back as a
// code-point label in angle brackets, using one of the labels `control`,
// `surrogate`, `private-use`, `noncharacter` and `reserved` (section D10a
// of the Unicode standard):
//
//   name, _ := uniname.CharName(0x81)   // "<control-0081>"
//
// CharName returns ok=false only for integers outside the Unicode code
// space, i.e. r < 0 or r > 0x10FFFF.
func CharName(r rune) (Name, bool) {
	if words, ok := tables.FindEnumName(r); ok {
		return enumName(words, r), true
	}
	if group, ok := tables.FindSpecialGroup(r); ok {
		return specialGroupName(r, group, labelWithBrackets)
	}
	if !isCodePoint(r) {
		T().Debugf("uniname: %#x is not a Unicode code-point", r)
		return Name{}, false
	}
	if isNoncharacter(r) {
		return codePointLabel("noncharacter-", r, true), true
	}
	return codePointLabel("reserved-", r, true), true
}

// PropertyName resolves the Unicode Name property value of code-point r.
//
// PropertyName behaves like CharName, except that it returns ok=false for
// all code-points having an empty Name property: control, surrogate and
// private-use code-points as well as noncharacters and unassigned
// (reserved) code-points.
func PropertyName(r rune) (Name, bool) {
	if words, ok := tables.FindEnumName(r); ok {
		return enumName(words, r), true
	}
	if group, ok := tables.FindSpecialGroup(r); ok {
		return specialGroupName(r, group, labelNone)
	}
	return Name{}, false
}

// labelMode controls whether code-point labels are produced for code-points
// with an empty Name property. Enumerated and algorithmic names are
// unaffected by the mode.
type labelMode int8

const (
	labelNone labelMode = iota
	labelWithBrackets
)

// specialGroupName produces the name for a code-point matched by the
// special-group table. Hangul syllables and ideographs always yield a name;
// the label groups yield one only when mode asks for labels.
func specialGroupName(r rune, group tables.SpecialGroup, mode labelMode) (Name, bool) {
	switch group {
	case tables.HangulSyllable:
		// NR1
		return nr1Name(r), true
	case tables.CJKIdeograph,
		tables.CJKIdeographExtensionA,
		tables.CJKIdeographExtensionB,
		tables.CJKIdeographExtensionC,
		tables.CJKIdeographExtensionD,
		tables.CJKIdeographExtensionE,
		tables.CJKIdeographExtensionF,
		tables.CJKIdeographExtensionG:
		// NR2
		return nr2Name("CJK UNIFIED IDEOGRAPH-", r), true
	case tables.TangutIdeograph, tables.TangutIdeographSupplement:
		// NR2
		return nr2Name("TANGUT IDEOGRAPH-", r), true
	// other NR2 cases are already listed in UnicodeData.txt
	case tables.Control:
		if mode == labelWithBrackets {
			return codePointLabel("control-", r, true), true
		}
	case tables.NonPrivateUseHighSurrogate,
		tables.PrivateUseHighSurrogate,
		tables.LowSurrogate:
		if mode == labelWithBrackets {
			return codePointLabel("surrogate-", r, true), true
		}
	case tables.PrivateUse,
		tables.Plane15PrivateUse,
		tables.Plane16PrivateUse:
		if mode == labelWithBrackets {
			return codePointLabel("private-use-", r, true), true
		}
	}
	return Name{}, false
}

// nr1Name derives a Hangul syllable name: "HANGUL SYLLABLE " followed by
// the romanized jamo decomposition of the syllable.
func nr1Name(r rune) Name {
	return generated("HANGUL SYLLABLE " + jamo.SyllableName(r))
}

// nr2Name derives an ideograph name: the prefix immediately followed by the
// code-point's hex representation, without a separating blank.
func nr2Name(prefix string, r rune) Name {
	return generated(prefix + hexCodePoint(r))
}

// codePointLabel renders a code-point label, optionally in angle brackets.
func codePointLabel(prefix string, r rune, brackets bool) Name {
	if brackets {
		return generated("<" + prefix + hexCodePoint(r) + ">")
	}
	return generated(prefix + hexCodePoint(r))
}

// hexCodePoint renders a code-point as 4 to 6 uppercase hex digits.
func hexCodePoint(r rune) string {
	return fmt.Sprintf("%04X", r)
}
