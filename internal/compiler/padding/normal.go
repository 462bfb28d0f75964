package padding

// NormalString implements spec.md §4.3.2: single/double-quoted string
// padding. Triggered for fragments collected under sstring_start or
// dstring_start.
func NormalString(source string, fragments []*Fragment) {
	n := len(fragments)
	for fi, f := range fragments {
		content := f.Content(source)
		for i := 0; i < len(content); i++ {
			if content[i] != '\n' {
				continue
			}
			nlPos := f.Start + i

			start := nlPos
			for start > f.Start && (source[start-1] == ' ' || source[start-1] == '\t') {
				start--
			}
			end := skipPaddingRun(source, nlPos+1, f.End)

			switch backslashPos, escaped := isEscapedNewline(source, f.Start, nlPos); {
			case escaped:
				f.MarkPadding(backslashPos, end)
			case (fi == 0 && nlPos == f.Start) || (fi == n-1 && end == f.End):
				f.MarkPadding(start, end)
			default:
				f.MarkPadding(start, nlPos)
				f.MarkLineSeparator(nlPos)
				f.MarkPadding(nlPos+1, end)
			}

			i = end - f.Start - 1
		}
	}
}
