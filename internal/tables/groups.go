package tables

// This file has been generated -- you probably should NOT EDIT IT !
//
// Source: UnicodeData.txt (14.0.0), processed by internal/generator.
// BSD License, Copyright (c) 2021, Norbert Pillmayer (norbert@pillmayer.com)

// groupRanges classifies runs of code-points without a listed name.
var groupRanges = []groupRange{
	{0x0, 0x1F, Control},
	{0x7F, 0x9F, Control},
	{0x3400, 0x4DBF, CJKIdeographExtensionA},
	{0x4E00, 0x9FFF, CJKIdeograph},
	{0xAC00, 0xD7A3, HangulSyllable},
	{0xD800, 0xDB7F, NonPrivateUseHighSurrogate},
	{0xDB80, 0xDBFF, PrivateUseHighSurrogate},
	{0xDC00, 0xDFFF, LowSurrogate},
	{0xE000, 0xF8FF, PrivateUse},
	{0x17000, 0x187F7, TangutIdeograph},
	{0x18D00, 0x18D08, TangutIdeographSupplement},
	{0x20000, 0x2A6DF, CJKIdeographExtensionB},
	{0x2A700, 0x2B738, CJKIdeographExtensionC},
	{0x2B740, 0x2B81D, CJKIdeographExtensionD},
	{0x2B820, 0x2CEA1, CJKIdeographExtensionE},
	{0x2CEB0, 0x2EBE0, CJKIdeographExtensionF},
	{0x30000, 0x3134A, CJKIdeographExtensionG},
	{0xF0000, 0xFFFFD, Plane15PrivateUse},
	{0x100000, 0x10FFFD, Plane16PrivateUse},
}
