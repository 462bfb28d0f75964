package padding

// triLine is one source line spanning part of a triple-quoted string's
// fragments, used only to compute the shared indent and the blank-line/
// bug-preservation rules of spec.md §4.3.3. end excludes the terminating
// newline; trueStart is false for a line that continues a previous
// fragment's unterminated last line across an interpolation.
type triLine struct {
	start, end int
	trueStart  bool
}

// collectTripleLines splits the fragments' content into lines on unescaped
// newlines only, tracking line-start continuity across fragment (i.e.
// interpolation) boundaries.
func collectTripleLines(source string, fragments []*Fragment) []triLine {
	var lines []triLine
	atLineStart := true
	for _, f := range fragments {
		content := f.Content(source)
		segStart := 0
		sawBreak := false
		for i := 0; i < len(content); i++ {
			if content[i] != '\n' {
				continue
			}
			abs := f.Start + i
			if _, escaped := isEscapedNewline(source, f.Start, abs); escaped {
				continue
			}
			trueStart := atLineStart || sawBreak
			lines = append(lines, triLine{start: f.Start + segStart, end: abs, trueStart: trueStart})
			segStart = i + 1
			sawBreak = true
			atLineStart = true
		}
		if segStart < len(content) || !sawBreak {
			trueStart := atLineStart || sawBreak
			lines = append(lines, triLine{start: f.Start + segStart, end: f.End, trueStart: trueStart})
			atLineStart = false
		}
	}
	return lines
}

// TripleString implements spec.md §4.3.3: triple-quoted string (herestring)
// padding, including shared-indent removal and the two named
// reference-compiler bugs it must preserve bit-for-bit.
func TripleString(source string, fragments []*Fragment) {
	lines := collectTripleLines(source, fragments)
	if len(lines) == 0 {
		return
	}

	twoLineWhitespaceBug := len(lines) == 2 &&
		isWhitespaceOnly(source[lines[0].start:lines[0].end]) &&
		isWhitespaceOnly(source[lines[1].start:lines[1].end])

	if twoLineWhitespaceBug {
		markRange(fragments, lines[0].start, lines[1].start)
		return
	}

	shared := sharedIndent(source, lines)

	// Escaped-newline spans: backslash through the first subsequent
	// non-whitespace byte.
	for _, f := range fragments {
		content := f.Content(source)
		for i := 0; i < len(content); i++ {
			if content[i] != '\n' {
				continue
			}
			abs := f.Start + i
			backslashPos, escaped := isEscapedNewline(source, f.Start, abs)
			if !escaped {
				continue
			}
			end := skipPaddingRun(source, abs+1, f.End)
			f.MarkPadding(backslashPos, end)
		}
	}

	// Blank first/last line removal.
	if len(lines) > 1 && isWhitespaceOnly(source[lines[0].start:lines[0].end]) {
		markRange(fragments, lines[0].start, lines[1].start)
	}
	if n := len(lines); n > 1 && isWhitespaceOnly(source[lines[n-1].start:lines[n-1].end]) {
		markRange(fragments, lines[n-2].end, lines[n-1].end)
	}

	if len(shared) == 0 {
		return
	}
	for _, l := range lines {
		if !l.trueStart {
			continue
		}
		text := source[l.start:l.end]
		if len(text) >= len(shared) && text[:len(shared)] == shared {
			markRange(fragments, l.start, l.start+len(shared))
		}
	}
}

// sharedIndent computes the common whitespace prefix across all "full
// content lines" (trueStart lines that are neither zero-indent nor
// entirely whitespace), applying the first named bug: a nonempty,
// zero-indent first considered line forces the shared indent to be empty.
func sharedIndent(source string, lines []triLine) string {
	first := lines[0]
	firstText := source[first.start:first.end]
	if firstText != "" && leadingIndent(firstText) == "" {
		return ""
	}

	shared := ""
	have := false
	for _, l := range lines {
		if !l.trueStart {
			continue
		}
		text := source[l.start:l.end]
		if isWhitespaceOnly(text) {
			continue
		}
		indent := leadingIndent(text)
		if indent == "" {
			continue
		}
		if !have {
			shared, have = indent, true
			continue
		}
		shared = commonPrefix(shared, indent)
	}
	return shared
}

// markRange marks [start, end) as padding, splitting across whichever
// fragment(s) it falls within (a blank-line or indent span never straddles
// an interpolation in practice, but this stays correct if it ever does).
func markRange(fragments []*Fragment, start, end int) {
	for _, f := range fragments {
		s, e := start, end
		if s < f.Start {
			s = f.Start
		}
		if e > f.End {
			e = f.End
		}
		if s < e {
			f.MarkPadding(s, e)
		}
	}
}
