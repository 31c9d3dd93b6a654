package genutil

// CommentStyle selects the comment syntax the banner is wrapped in.
type CommentStyle int

const (
	// CommentSlashStar wraps the banner in a single /* ... */ block, for C
	// and C-like sources (and for C glue files).
	CommentSlashStar CommentStyle = iota
	// CommentHash prefixes every line with "# ", for shell-dispatcher
	// style sources and Makefile-adjacent text.
	CommentHash
	// CommentParenStar wraps the banner in (* ... *), for the typed host
	// binding's declaration and implementation modules.
	CommentParenStar
)

const (
	licenceLGPL = "This library is free software; you can redistribute it and/or\n" +
		"modify it under the terms of the GNU Lesser General Public\n" +
		"License as published by the Free Software Foundation; either\n" +
		"version 2 of the License, or (at your option) any later version."

	licenceGPL = "This program is free software; you can redistribute it and/or modify\n" +
		"it under the terms of the GNU General Public License as published by\n" +
		"the Free Software Foundation; either version 2 of the License, or\n" +
		"(at your option) any later version."
)

// Licence selects which licence text the banner carries.
type Licence int

const (
	LicenceLGPL Licence = iota
	LicenceGPL
)

func (l Licence) text() string {
	if l == LicenceGPL {
		return licenceGPL
	}
	return licenceLGPL
}

// WriteBanner emits the standard top-of-file block: a "generated, do not
// edit" notice and a licence, wrapped in the given comment syntax. Every
// backend that emits C or OCaml source calls this exactly once, first,
// before any other output. The three POD manual pages and the Perl
// documentation module are written without a banner.
func WriteBanner(w *Writer, style CommentStyle, lic Licence) {
	notice := "This file was generated by the API generator. Do not edit directly."
	body := notice + "\n\n" + lic.text()

	switch style {
	case CommentHash:
		for _, line := range splitLines(body) {
			if line == "" {
				w.Line("#")
			} else {
				w.Linef("# %s", line)
			}
		}
	case CommentParenStar:
		w.Line("(*")
		for _, line := range splitLines(body) {
			w.Linef("   %s", line)
		}
		w.Line("*)")
	default: // CommentSlashStar
		w.Line("/*")
		for _, line := range splitLines(body) {
			w.Linef(" * %s", line)
		}
		w.Line(" */")
	}
	w.Writeln()
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	lines = append(lines, s[start:])
	return lines
}
