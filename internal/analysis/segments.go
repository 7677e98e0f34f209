package analysis

import "iter"

// Segments partitions line into maximal runs of separator and non-separator
// bytes. The sequence is lazy and may be ranged over any number of times;
// concatenating the Text of every segment reproduces line exactly.
func Segments(line string, seps SeparatorSet) iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		pos := 0
		for pos < len(line) {
			word := !seps.Contains(line[pos])
			end := pos + 1
			for end < len(line) && seps.Contains(line[end]) != word {
				end++
			}
			if !yield(Segment{Text: line[pos:end], Start: pos, Word: word}) {
				return
			}
			pos = end
		}
	}
}
