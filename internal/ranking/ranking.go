// Package ranking selects the most frequent words and orders them for display.
package ranking

import (
	"cmp"
	"slices"
	"strings"

	"github.com/samber/lo"

	"tagcloud/internal/frequency"
)

// Ranked is the selected top-N subset in alphabetical order, together with
// the largest and smallest count inside that subset.
type Ranked struct {
	Entries []frequency.Entry
	Max     int
	Min     int
}

// Len returns the number of selected entries.
func (r Ranked) Len() int {
	return len(r.Entries)
}

// ByCountDesc orders entries by count, highest first. Equal counts compare
// equal.
func ByCountDesc(a, b frequency.Entry) int {
	switch {
	case a.Count > b.Count:
		return -1
	case a.Count < b.Count:
		return 1
	default:
		return 0
	}
}

// ByWordFold orders entries alphabetically ignoring case.
func ByWordFold(a, b frequency.Entry) int {
	return cmp.Compare(strings.ToLower(a.Word), strings.ToLower(b.Word))
}

// Rank returns the n entries with the highest counts, sorted alphabetically.
// Among equal counts the entry that appears first in entries wins. n larger
// than len(entries) selects everything; n <= 0 selects nothing. entries is
// not modified.
func Rank(entries []frequency.Entry, n int) Ranked {
	if n < 0 {
		n = 0
	}

	byCount := slices.Clone(entries)
	slices.SortStableFunc(byCount, ByCountDesc)

	selected := slices.Clone(lo.Subset(byCount, 0, uint(n)))
	slices.SortStableFunc(selected, ByWordFold)

	counts := lo.Map(selected, func(e frequency.Entry, _ int) int { return e.Count })
	return Ranked{
		Entries: selected,
		Max:     lo.Max(counts),
		Min:     lo.Min(counts),
	}
}
