/*
Package uniname resolves the standardized name of a Unicode code-point.

Description

The Unicode Character Database assigns every assigned code-point a Name
property, as described in Unicode Standard Annex #44 (see
https://unicode.org/reports/tr44/). Clients hand in a code-point and receive
the code-point's name:

   name, ok := uniname.CharName('A')
   fmt.Println(name)     // "LATIN CAPITAL LETTER A"

Not every code-point carries a Name property value. Names for Hangul
syllables and for CJK and Tangut ideographs are derived algorithmically
(naming rules NR1 and NR2 of the standard). Code-points of type control,
private-use and surrogate have an empty Name property; for these, CharName
returns a code-point label as defined in section D10a of the standard,
wrapped in angle brackets:

   name, ok := uniname.CharName(0x81)
   fmt.Println(name)     // "<control-0081>"

The same goes for unassigned (reserved) code-points and for permanently
unassigned noncharacters. CharName thus yields a printable result for every
valid code-point; only integers beyond 0x10FFFF make it come back empty.

Clients interested in the Name property proper should call PropertyName
instead, which returns ok=false wherever the Unicode Name property is empty
(control, surrogate, private-use, reserved and noncharacter code-points).

Names are handed out as Name values. A Name renders either in one piece
(Name.String) or fragment by fragment (Name.Fragments), the latter avoiding
string concatenation when clients stream or compare names.

The underlying name tables are generated from UnicodeData.txt and compiled
into the package; resolution performs no I/O and no allocation beyond the
returned value. All lookups are safe for concurrent use.

BSD License

Copyright (c) 2017–21, Norbert Pillmayer

All rights reserved.
Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRETC, INDIRETC, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRATC, STRITC LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/
package uniname

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"

	"github.com/npillmayer/uniname/internal/tables"
)

// T traces to a global core tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}

// UnicodeVersion is the version of the Unicode Character Database the
// compiled-in name tables have been generated from.
const UnicodeVersion = tables.UnicodeVersion
