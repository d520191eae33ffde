/*
Package for a generator for Unicode character name tables.

Contents

Generator for the compiled-in name tables of package tables.
For more information see https://unicode.org/reports/tr44/.

Tables are generated from the central UCD file "UnicodeData.txt". This is
the definite source for character names. The generator looks for it in a
directory "$GOPATH/etc/".

Names of code-points listed individually go into the enumeration table: each
name is tokenized into dictionary words, where hyphen fragments ("-", " -",
"- ") count as special words carrying their own spacing, and names ending in
the code-point's own hex representation receive the substitution sentinel
instead of a final hex word. Range pairs ("<CJK Ideograph, First>" and the
like) and "<control>" lines go into the special-group table.

Usage

The generator has just one option, a "verbose" flag. It should usually
be turned on.

   generator [-v]

This creates the files "enumnames.go" and "groups.go" in the current
directory. It is designed to be called from the "internal/tables" directory.


License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"sort"
	"strings"
	"text/template"
	"time"

	"github.com/emirpasic/gods/lists/arraylist"

	"github.com/npillmayer/uniname/internal/ucd"
)

var logger = log.New(os.Stderr, "name-table generator: ", log.LstdFlags)

// flag: verbose output ?
var verbose bool

const unicodeVersion = "14.0.0"

// Sentinel and special-word dictionary layout; must agree with tables.go.
const (
	spaceIndex     = 0
	codepointIndex = 1
	specialWordLo  = 2
)

// Special words, occupying dictionary indices 2…4.
var specialWords = []string{"-", " -", "- "}

// Mapping of UnicodeData.txt range labels onto special-group constants of
// package tables.
var groupFromLabel = map[string]string{
	"<control>":                        "Control",
	"<CJK Ideograph>":                  "CJKIdeograph",
	"<CJK Ideograph Extension A>":      "CJKIdeographExtensionA",
	"<CJK Ideograph Extension B>":      "CJKIdeographExtensionB",
	"<CJK Ideograph Extension C>":      "CJKIdeographExtensionC",
	"<CJK Ideograph Extension D>":      "CJKIdeographExtensionD",
	"<CJK Ideograph Extension E>":      "CJKIdeographExtensionE",
	"<CJK Ideograph Extension F>":      "CJKIdeographExtensionF",
	"<CJK Ideograph Extension G>":      "CJKIdeographExtensionG",
	"<Hangul Syllable>":                "HangulSyllable",
	"<Non Private Use High Surrogate>": "NonPrivateUseHighSurrogate",
	"<Private Use High Surrogate>":     "PrivateUseHighSurrogate",
	"<Low Surrogate>":                  "LowSurrogate",
	"<Private Use>":                    "PrivateUse",
	"<Plane 15 Private Use>":           "Plane15PrivateUse",
	"<Plane 16 Private Use>":           "Plane16PrivateUse",
}

// namedItem is one UnicodeData.txt line with a listed name.
type namedItem struct {
	cp   rune
	name string
}

// groupRun is one run of code-points sharing a special group.
type groupRun struct {
	lo, hi rune
	group  string
}

// Load the central UCD file: UnicodeData.txt
func loadUnicodeDataFile() (*arraylist.List, []groupRun, error) {
	if verbose {
		logger.Printf("reading UnicodeData.txt")
	}
	defer timeTrack(time.Now(), "loading UnicodeData.txt")
	gopath := os.Getenv("GOPATH")
	f, err := os.Open(gopath + "/etc/UnicodeData.txt")
	if err != nil {
		fmt.Printf("ERROR loading " + gopath + "/etc/UnicodeData.txt\n")
		return nil, nil, err
	}
	defer f.Close()
	p := ucd.NewUCDParser(f)
	named := arraylist.New()
	var groups []groupRun
	for p.Next() {
		from, to := p.Range(0)
		name := p.String(1)
		if group, ok := groupFromLabel[name]; ok {
			if n := len(groups); n > 0 && groups[n-1].group == group && groups[n-1].hi == from-1 {
				groups[n-1].hi = to // merge adjacent <control> lines
			} else {
				groups = append(groups, groupRun{lo: from, hi: to, group: group})
			}
			continue
		}
		if strings.HasPrefix(name, "<") {
			logger.Fatalf("unclassified range label %q", name)
		}
		named.Add(namedItem{cp: from, name: name})
	}
	return named, groups, p.Err()
}

// --- Name tokenization ------------------------------------------------

// tokenize splits a character name into dictionary words. Hyphen fragments
// are kept as stand-alone special words; a trailing "-XXXX" matching the
// code-point's own hex representation becomes the substitution sentinel,
// represented here by an empty token.
func tokenize(cp rune, name string) []string {
	hex := fmt.Sprintf("%04X", cp)
	substitute := false
	if strings.HasSuffix(name, "-"+hex) {
		name = strings.TrimSuffix(name, hex) // keep the trailing "-"
		substitute = true
	}
	var toks []string
	word := ""
	flush := func() {
		if word != "" {
			toks = append(toks, word)
			word = ""
		}
	}
	for i := 0; i < len(name); {
		switch {
		case strings.HasPrefix(name[i:], " -"):
			flush()
			toks = append(toks, " -")
			i += 2
		case strings.HasPrefix(name[i:], "- "):
			flush()
			toks = append(toks, "- ")
			i += 2
		case name[i] == '-':
			flush()
			toks = append(toks, "-")
			i++
		case name[i] == ' ':
			flush()
			i++
		default:
			word += string(name[i])
			i++
		}
	}
	flush()
	if substitute {
		toks = append(toks, "") // the substitution sentinel
	}
	return toks
}

// buildWordTable assigns dictionary indices: the two sentinel slots, the
// special words, then all remaining words ordered by descending frequency.
func buildWordTable(named *arraylist.List) ([]string, map[string]int) {
	freq := make(map[string]int)
	special := make(map[string]bool)
	for _, w := range specialWords {
		special[w] = true
	}
	it := named.Iterator()
	for it.Next() {
		item := it.Value().(namedItem)
		for _, tok := range tokenize(item.cp, item.name) {
			if tok != "" && !special[tok] {
				freq[tok]++
			}
		}
	}
	words := make([]string, 0, len(freq))
	for w := range freq {
		words = append(words, w)
	}
	sort.Slice(words, func(i, j int) bool {
		if freq[words[i]] != freq[words[j]] {
			return freq[words[i]] > freq[words[j]]
		}
		return words[i] < words[j]
	})
	wordTable := append([]string{" ", ""}, specialWords...)
	wordTable = append(wordTable, words...)
	if len(wordTable) > 0xFFFF {
		logger.Fatalf("word dictionary overflows uint16: %d entries", len(wordTable))
	}
	indexOf := make(map[string]int, len(wordTable))
	for i, w := range wordTable {
		indexOf[w] = i
	}
	return wordTable, indexOf
}

// --- Run assembly -----------------------------------------------------

type enumRun struct {
	lo, hi rune
	base   int
}

// buildRuns lays consecutive named code-points out as runs sharing the
// offset and index stores.
func buildRuns(named *arraylist.List, indexOf map[string]int) (runs []enumRun, offsets []int, indexes []int) {
	defer timeTrack(time.Now(), "assembling enumeration runs")
	it := named.Iterator()
	for it.Next() {
		item := it.Value().(namedItem)
		if n := len(runs); n == 0 || runs[n-1].hi != item.cp-1 {
			runs = append(runs, enumRun{lo: item.cp, hi: item.cp, base: len(offsets)})
			offsets = append(offsets, len(indexes))
		} else {
			runs[n-1].hi = item.cp
		}
		for _, tok := range tokenize(item.cp, item.name) {
			if tok == "" {
				indexes = append(indexes, codepointIndex)
			} else {
				indexes = append(indexes, indexOf[tok])
			}
		}
		offsets = append(offsets, len(indexes))
	}
	return runs, offsets, indexes
}

// --- Templates --------------------------------------------------------

var header = `package tables

// This file has been generated -- you probably should NOT EDIT IT !
//
// Source: UnicodeData.txt ({{.}}), processed by internal/generator.
// BSD License, Copyright (c) 2021, Norbert Pillmayer (norbert@pillmayer.com)
`

var templateEnumHead = `
// UnicodeVersion is the UCD version the name tables were generated from.
const UnicodeVersion = "{{.Version}}"

// Special words occupy a contiguous band of dictionary indices.
const (
	specialWordLo uint16 = {{.SpecialLo}}
	specialWordHi uint16 = {{.SpecialHi}}
)
`

func makeTemplate(name string, templString string) *template.Template {
	if verbose {
		logger.Printf("creating %s", name)
	}
	return template.Must(template.New(name).Parse(templString))
}

// --- Emitters ---------------------------------------------------------

// wrap writes items space-separated, perLine per line, tab-indented.
func wrap(w *bufio.Writer, items []string, perLine int) {
	for i, item := range items {
		if i%perLine == 0 {
			if i > 0 {
				w.WriteString("\n")
			}
			w.WriteString("\t")
		} else {
			w.WriteString(" ")
		}
		w.WriteString(item)
	}
	w.WriteString("\n")
}

func generateEnumNames(wordTable []string, runs []enumRun, offsets, indexes []int) {
	defer timeTrack(time.Now(), "generate enumnames.go")
	f, ioerr := os.Create("enumnames.go")
	checkFatal(ioerr)
	defer f.Close()
	w := bufio.NewWriter(f)
	t := makeTemplate("table header", header)
	checkFatal(t.Execute(w, unicodeVersion))
	t = makeTemplate("enum head", templateEnumHead)
	checkFatal(t.Execute(w, struct {
		Version              string
		SpecialLo, SpecialHi int
	}{unicodeVersion, specialWordLo, specialWordLo + len(specialWords) - 1}))
	w.WriteString(`
// wordTable is the word dictionary. Index 0 and 1 are the sentinel slots
// (separating blank and code-point substitution).
var wordTable = []string{
`)
	items := make([]string, len(wordTable))
	for i, word := range wordTable {
		items[i] = fmt.Sprintf("%q,", word)
	}
	wrap(w, items, 6)
	w.WriteString("}\n")
	w.WriteString(`
// enumRanges maps runs of code-points with listed names to their slot in
// wordOffsets.
var enumRanges = []enumRange{
`)
	items = items[:0]
	for _, run := range runs {
		items = append(items, fmt.Sprintf("{0x%X, 0x%X, %d},", run.lo, run.hi, run.base))
	}
	wrap(w, items, 4)
	w.WriteString("}\n")
	w.WriteString(`
// wordOffsets cuts wordIndexes into per-code-point word sequences.
var wordOffsets = []uint32{
`)
	items = items[:0]
	for _, off := range offsets {
		items = append(items, fmt.Sprintf("%d,", off))
	}
	wrap(w, items, 16)
	w.WriteString("}\n")
	w.WriteString(`
// wordIndexes is the shared store of dictionary index sequences.
var wordIndexes = []uint16{
`)
	items = items[:0]
	for _, inx := range indexes {
		items = append(items, fmt.Sprintf("%d,", inx))
	}
	wrap(w, items, 16)
	w.WriteString("}\n")
	w.Flush()
}

func generateGroups(groups []groupRun) {
	defer timeTrack(time.Now(), "generate groups.go")
	f, ioerr := os.Create("groups.go")
	checkFatal(ioerr)
	defer f.Close()
	w := bufio.NewWriter(f)
	t := makeTemplate("table header", header)
	checkFatal(t.Execute(w, unicodeVersion))
	w.WriteString(`
// groupRanges classifies runs of code-points without a listed name.
var groupRanges = []groupRange{
`)
	for _, g := range groups {
		w.WriteString(fmt.Sprintf("\t{0x%X, 0x%X, %s},\n", g.lo, g.hi, g.group))
	}
	w.WriteString("}\n")
	w.Flush()
}

// --- Main -------------------------------------------------------------

func main() {
	doVerbose := flag.Bool("v", false, "verbose output mode")
	flag.Parse()
	verbose = *doVerbose
	named, groups, err := loadUnicodeDataFile()
	checkFatal(err)
	if verbose {
		logger.Printf("loaded %d named code-points, %d special-group runs\n",
			named.Size(), len(groups))
	}
	wordTable, indexOf := buildWordTable(named)
	if verbose {
		logger.Printf("word dictionary holds %d entries\n", len(wordTable))
	}
	runs, offsets, indexes := buildRuns(named, indexOf)
	if verbose {
		logger.Printf("%d enumeration runs, %d word indexes\n", len(runs), len(indexes))
	}
	generateEnumNames(wordTable, runs, offsets, indexes)
	generateGroups(groups)
}

// --- Util -------------------------------------------------------------

// Little helper for testing
func timeTrack(start time.Time, name string) {
	if verbose {
		elapsed := time.Since(start)
		logger.Printf("timing: %s took %s\n", name, elapsed)
	}
}

func checkFatal(err error) {
	_, file, line, _ := runtime.Caller(1)
	if err != nil {
		logger.Fatalln(":", file, ":", line, "-", err)
	}
}
