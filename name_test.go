package uniname

import (
	"reflect"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/testconfig"
	"github.com/npillmayer/schuko/tracing"
)

func collect(frags *Fragments) []string {
	var out []string
	for frags.Next() {
		out = append(out, frags.Text())
	}
	return out
}

func TestFragmentsSeparatorRule(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	name, ok := CharName(0x1180) // HANGUL JUNGSEONG O-E
	if !ok {
		t.Fatal("expected U+1180 to have a name, has none")
	}
	want := []string{"HANGUL", " ", "JUNGSEONG", " ", "O", "-", "E"}
	if frags := collect(name.Fragments()); !reflect.DeepEqual(frags, want) {
		t.Errorf("expected fragments %q, have %q", want, frags)
	}
}

func TestFragmentsCodepointSubstitution(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	name, ok := CharName(0xF90A)
	if !ok {
		t.Fatal("expected U+F90A to have a name, has none")
	}
	want := []string{"CJK", " ", "COMPATIBILITY", " ", "IDEOGRAPH", "-", "F90A"}
	if frags := collect(name.Fragments()); !reflect.DeepEqual(frags, want) {
		t.Errorf("expected fragments %q, have %q", want, frags)
	}
}

func TestFragmentsRestartable(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	for _, r := range []rune{'A', 0x1180, 0xAC00, 0x81} {
		name, _ := CharName(r)
		first := collect(name.Fragments())
		second := collect(name.Fragments())
		if !reflect.DeepEqual(first, second) {
			t.Errorf("two iterations over the name of %#U differ: %q vs %q", r, first, second)
		}
		if name.String() != name.String() {
			t.Errorf("rendering the name of %#U twice differs", r)
		}
	}
}

func TestFragmentsGeneratedName(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	name, _ := CharName(0xAC00)
	frags := name.Fragments()
	if !frags.Next() {
		t.Fatal("expected one fragment for a generated name, got none")
	}
	if frags.Text() != "HANGUL SYLLABLE GA" {
		t.Errorf("expected fragment to be the whole name, is %q", frags.Text())
	}
	if frags.Next() {
		t.Errorf("expected a single fragment for a generated name, got more: %q", frags.Text())
	}
}

func TestZeroName(t *testing.T) {
	teardown := testconfig.QuickConfig(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	//
	var name Name
	if name.String() != "" {
		t.Errorf("expected zero Name to render as empty string, is %q", name.String())
	}
}
