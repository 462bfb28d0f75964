package padding

// Heregex implements spec.md §4.3.4: heregex (`///…///`) padding. Triggered
// for fragments collected under heregexp_start. useCS2 only affects
// whether `#` comments were recognised by the Location Stream in the first
// place — by the time a fragment reaches here, any heregexp_comment marker
// has already been folded into the fragment's byte range, so this pass
// only needs to find the comment runs within it.
func Heregex(source string, fragments []*Fragment) {
	for _, f := range fragments {
		content := f.Content(source)
		for i := 0; i < len(content); i++ {
			abs := f.Start + i
			switch c := content[i]; c {
			case ' ', '\t', '\n':
				if isEscapedByte(source, f.Start, abs) {
					f.MarkPadding(abs-1, abs)
				} else {
					f.MarkPadding(abs, abs+1)
				}
			case '#':
				atStart := i == 0
				precededByWS := i > 0 && (content[i-1] == ' ' || content[i-1] == '\t' || content[i-1] == '\n')
				if !atStart && !precededByWS {
					continue
				}
				j := i
				for j < len(content) && content[j] != '\n' {
					j++
				}
				f.MarkPadding(abs, f.Start+j)
				i = j - 1
			}
		}
	}
}
