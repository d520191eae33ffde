package uniname

import (
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/unicode/runenames"
)

func TestCharNameScenarios(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	scenarios := []struct {
		r    rune
		name string
	}{
		{'A', "LATIN CAPITAL LETTER A"},
		{0x1F402, "OX"},
		{0x1180, "HANGUL JUNGSEONG O-E"},
		{0xFBF9, "ARABIC LIGATURE UIGHUR KIRGHIZ YEH WITH HAMZA ABOVE WITH ALEF MAKSURA ISOLATED FORM"},
		{0xF0C, "TIBETAN MARK DELIMITER TSHEG BSTAR"},
		{0xF90A, "CJK COMPATIBILITY IDEOGRAPH-F90A"},
		{0xAC00, "HANGUL SYLLABLE GA"},
		{0xB155, "HANGUL SYLLABLE NYEONG"},
		{0xD7A3, "HANGUL SYLLABLE HIH"},
		{0x4E00, "CJK UNIFIED IDEOGRAPH-4E00"},
		{0x20000, "CJK UNIFIED IDEOGRAPH-20000"},
		{0x17000, "TANGUT IDEOGRAPH-17000"},
		{0x81, "<control-0081>"},
		{0xD800, "<surrogate-D800>"},
		{0xDB80, "<surrogate-DB80>"},
		{0xDC00, "<surrogate-DC00>"},
		{0xE000, "<private-use-E000>"},
		{0x10FFFD, "<private-use-10FFFD>"},
		{0x378, "<reserved-0378>"},
		{0x2B739, "<reserved-2B739>"},
		{0xFDD0, "<noncharacter-FDD0>"},
		{0xFFFE, "<noncharacter-FFFE>"},
		{0x10FFFF, "<noncharacter-10FFFF>"},
	}
	for _, scenario := range scenarios {
		name, ok := CharName(scenario.r)
		if !ok {
			t.Errorf("expected %#U to have a name, has none", scenario.r)
			continue
		}
		if name.String() != scenario.name {
			t.Errorf("expected name of %#U to be %q, is %q", scenario.r, scenario.name, name.String())
		}
	}
}

func TestCharNameOutOfRange(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	for _, r := range []rune{0x110000, 0x200000, -1} {
		if _, ok := CharName(r); ok {
			t.Errorf("expected no name for %#x, got one", r)
		}
		if _, ok := PropertyName(r); ok {
			t.Errorf("expected no Name property for %#x, got one", r)
		}
	}
}

func TestCharNameTotal(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	for r := rune(0); r <= 0x10FFFF; r++ {
		name, ok := CharName(r)
		if !ok {
			t.Fatalf("expected %#U to have a full name, has none", r)
		}
		if name.String() == "" {
			t.Fatalf("expected non-empty full name for %#U", r)
		}
	}
}

func TestPropertyName(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	// Code-points with an empty Name property: control, surrogate,
	// private-use, reserved, noncharacter
	for _, r := range []rune{0x81, 0xD800, 0xDB80, 0xDC00, 0xE000, 0xF0000,
		0x100000, 0x378, 0x2B739, 0xFDD0, 0x10FFFF} {
		if name, ok := PropertyName(r); ok {
			t.Errorf("expected empty Name property for %#U, got %q", r, name.String())
		}
	}
	// Listed and algorithmically named code-points agree with CharName
	for _, r := range []rune{'A', 0x1180, 0xAC00, 0x4E00, 0x17000, 0x1F402} {
		pname, ok := PropertyName(r)
		if !ok {
			t.Errorf("expected %#U to have a Name property value, has none", r)
			continue
		}
		fname, _ := CharName(r)
		if pname.String() != fname.String() {
			t.Errorf("Name property %q and full name %q of %#U differ",
				pname.String(), fname.String(), r)
		}
	}
}

func TestPropertyNameAgreesWithCharName(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	for r := rune(0); r <= 0x10FFFF; r++ {
		pname, ok := PropertyName(r)
		if !ok {
			continue
		}
		fname, fok := CharName(r)
		if !fok {
			t.Fatalf("%#U has a Name property but no full name", r)
		}
		if pname.String() != fname.String() {
			t.Fatalf("Name property %q and full name %q of %#U differ",
				pname.String(), fname.String(), r)
		}
	}
}

func TestNoCrossQueryState(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	first, _ := CharName(0xFBF9)
	want := first.String()
	for _, r := range []rune{'A', 0xAC00, 0x81, 0x378} {
		CharName(r)
	}
	again, _ := CharName(0xFBF9)
	if again.String() != want {
		t.Errorf("resolution depends on prior queries: %q vs %q", want, again.String())
	}
	if first.String() != want {
		t.Errorf("rendering is not idempotent: %q vs %q", first.String(), want)
	}
}

// Cross-check against the x/text name tables for a handful of code-points
// whose names have been stable across Unicode versions.
func TestAgainstRunenames(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	for _, r := range []rune{'A', 'z', 0xE9, 0x416, 0x3B1, 0x2603, 0x1F402} {
		name, ok := CharName(r)
		if !ok {
			t.Errorf("expected %#U to have a name, has none", r)
			continue
		}
		if want := runenames.Name(r); name.String() != want {
			t.Errorf("expected name of %#U to be %q, is %q", r, want, name.String())
		}
	}
}
