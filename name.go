package uniname

import (
	"context"
	"strings"

	pool "github.com/jolestar/go-commons-pool"

	"github.com/npillmayer/uniname/internal/tables"
)

// A Name represents a resolved Unicode character name. Names are immutable
// and may be rendered any number of times. The zero value is valid and
// renders as the empty string.
//
// A Name is one of two variants: a reference into the compressed word
// sequence of the enumeration table, or an eagerly generated string
// (algorithmic names and code-point labels). Clients do not see the
// difference; both variants render through Fragments and String.
type Name struct {
	kind  nameKind
	words []uint16 // word-index sequence, enumerated variant only
	hex   string   // pre-rendered code-point hex, substituted for the sentinel
	text  string   // complete name, generated variant only
}

type nameKind int8

const (
	generatedName nameKind = iota // zero value: a generated (possibly empty) string
	enumeratedName
)

func enumName(words []uint16, r rune) Name {
	return Name{kind: enumeratedName, words: words, hex: hexCodePoint(r)}
}

func generated(text string) Name {
	return Name{kind: generatedName, text: text}
}

// Fragments returns a fresh cursor over the name's fragments. Concatenating
// all fragments in order yields the complete name. Every call starts a new
// iteration; the Name itself is never consumed.
//
// Usage:
//
//   frags := name.Fragments()
//   for frags.Next() {
//       fmt.Print(frags.Text())
//   }
//
func (n Name) Fragments() *Fragments {
	return &Fragments{name: n}
}

// String returns the complete name. It is equivalent to concatenating all
// fragments of n.
func (n Name) String() string {
	if n.kind == generatedName {
		return n.text
	}
	b := borrowBuilder()
	frags := n.Fragments()
	for frags.Next() {
		b.WriteString(frags.Text())
	}
	s := b.String()
	releaseBuilder(b)
	return s
}

// Fragments is a cursor over the fragments of a Name. A zero Fragments value
// is not usable; obtain cursors from Name.Fragments.
//
// The cursor walks the name's word-index sequence and decides between
// fragments whether a separating blank has to be emitted: a blank goes
// between two consecutive words iff neither of them is a special word.
// Specialness of a word is computed once and carried over to the next step.
type Fragments struct {
	name    Name
	offset  int
	state   iterState
	special bool // specialness of the word at offset, valid in stateMiddle
	text    string
}

type iterState int8

const (
	stateInitial iterState = iota
	stateInsertSpace
	stateMiddle
	stateFinished
)

// Text returns the fragment the cursor moved to with the last call to Next.
func (f *Fragments) Text() string {
	return f.text
}

// Next advances the cursor to the next fragment. It returns false when the
// fragment sequence is exhausted.
func (f *Fragments) Next() bool {
	if f.name.kind == generatedName {
		if f.state != stateInitial {
			f.text = ""
			return false
		}
		f.state = stateFinished
		f.text = f.name.text
		return true
	}
	words := f.name.words
	if f.state == stateFinished || f.offset >= len(words) {
		f.state = stateFinished
		f.text = ""
		return false
	}
	if f.state == stateInsertSpace {
		f.state = stateMiddle
		f.text = tables.Word(tables.SpaceIndex)
		return true
	}
	// stateInitial or stateMiddle: emit the word at offset
	cur := words[f.offset]
	f.offset++
	if f.offset < len(words) {
		curSpecial := f.special
		if f.state == stateInitial {
			curSpecial = tables.IsSpecialWordIndex(cur)
		}
		nextSpecial := tables.IsSpecialWordIndex(words[f.offset])
		if !curSpecial && !nextSpecial {
			f.state = stateInsertSpace
		} else {
			f.state = stateMiddle
		}
		f.special = nextSpecial
	} else {
		f.state = stateFinished
	}
	if cur == tables.CodepointIndex {
		f.text = f.name.hex
	} else {
		f.text = tables.Word(cur)
	}
	return true
}

// Rendering names is a frequent, short-lived operation. To avoid allocating
// a string builder per call we pool them.
type builderPool struct {
	opool *pool.ObjectPool
	ctx   context.Context
}

var globalBuilderPool *builderPool

func init() {
	globalBuilderPool = &builderPool{}
	factory := pool.NewPooledObjectFactorySimple(
		func(context.Context) (interface{}, error) {
			return &strings.Builder{}, nil
		})
	globalBuilderPool.ctx = context.Background()
	config := pool.NewDefaultPoolConfig()
	config.MaxTotal = -1 // infinity
	config.BlockWhenExhausted = false
	globalBuilderPool.opool = pool.NewObjectPool(globalBuilderPool.ctx, factory, config)
}

func borrowBuilder() *strings.Builder {
	o, _ := globalBuilderPool.opool.BorrowObject(globalBuilderPool.ctx)
	b := o.(*strings.Builder)
	b.Reset()
	return b
}

func releaseBuilder(b *strings.Builder) {
	_ = globalBuilderPool.opool.ReturnObject(globalBuilderPool.ctx, b)
}
