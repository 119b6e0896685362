package buffer

// LineSpan is the inclusive [Start, End] rune-offset range of one logical
// line. A line that is terminated by a newline includes that newline in its
// span. The final span of data ending in a newline is degenerate
// (Start == End+1): it stands for the empty line after that newline, and the
// empty document indexes as the single span {0, 0}.
type LineSpan struct {
	Start int
	End   int
}

// Recompute derives the line index for data from scratch. The spans
// partition [0, len(data)) in order, and the result is never empty.
func Recompute(data []rune) []LineSpan {
	if len(data) == 0 {
		return []LineSpan{{Start: 0, End: 0}}
	}

	var spans []LineSpan
	prev := 0
	for i, r := range data {
		if r == '\n' {
			spans = append(spans, LineSpan{Start: prev, End: i})
			prev = i + 1
		}
	}
	spans = append(spans, LineSpan{Start: prev, End: len(data) - 1})
	return spans
}
