// Package sizing maps word counts onto discrete font-size classes.
package sizing

import (
	"tagcloud/internal/ranking"
)

// Font-size class bounds. Stylesheets define one class per value in
// [MinClass, MaxClass].
const (
	MinClass = 11
	MaxClass = 48

	// scale is the width of the raw linear scale before the MinClass offset.
	scale = 48
)

// Tag is a ranked word with its font-size class.
type Tag struct {
	Word  string
	Count int
	Size  int
}

// Class computes the font-size class for count given the smallest and largest
// counts of the selected words.
//
//	class = floor(48 × (count - min) / (max - min)) + 11
//
// Words at the minimum (and every word when max == min) get MinClass. Words
// above the minimum are clamped into [MinClass+1, MaxClass].
func Class(count, min, max int) int {
	if max <= min || count <= min {
		return MinClass
	}
	size := scale*(count-min)/(max-min) + MinClass
	return clamp(size, MinClass+1, MaxClass)
}

// Tags sizes every entry of r, preserving its order.
func Tags(r ranking.Ranked) []Tag {
	tags := make([]Tag, len(r.Entries))
	for i, e := range r.Entries {
		tags[i] = Tag{
			Word:  e.Word,
			Count: e.Count,
			Size:  Class(e.Count, r.Min, r.Max),
		}
	}
	return tags
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
