package sizing

import (
	"testing"

	"tagcloud/internal/frequency"
	"tagcloud/internal/ranking"
)

func TestClass(t *testing.T) {
	tests := []struct {
		name            string
		count, min, max int
		want            int
	}{
		{"at minimum", 1, 1, 3, 11},
		{"at maximum", 3, 1, 3, 48},
		{"midpoint", 2, 1, 3, 35},
		{"all equal", 5, 5, 5, 11},
		{"just above minimum", 2, 1, 1000, 12},
		{"below minimum", 0, 1, 3, 11},
		{"above maximum", 10, 1, 3, 48},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Class(tt.count, tt.min, tt.max); got != tt.want {
				t.Errorf("Class(%d, %d, %d) = %d, want %d", tt.count, tt.min, tt.max, got, tt.want)
			}
		})
	}
}

func TestClass_Range(t *testing.T) {
	for max := 1; max <= 60; max++ {
		for min := 1; min <= max; min++ {
			for count := min; count <= max; count++ {
				got := Class(count, min, max)
				if got < MinClass || got > MaxClass {
					t.Fatalf("Class(%d, %d, %d) = %d, out of range", count, min, max, got)
				}
				if count > min && got == MinClass {
					t.Fatalf("Class(%d, %d, %d) = %d, above-minimum word got MinClass", count, min, max, got)
				}
			}
		}
	}
}

func TestClass_Monotonic(t *testing.T) {
	for max := 1; max <= 60; max++ {
		for min := 1; min <= max; min++ {
			prev := Class(min, min, max)
			for count := min + 1; count <= max; count++ {
				cur := Class(count, min, max)
				if cur < prev {
					t.Fatalf("Class not monotonic: count %d -> %d, count %d -> %d (min=%d max=%d)",
						count-1, prev, count, cur, min, max)
				}
				prev = cur
			}
		}
	}
}

func TestTags(t *testing.T) {
	r := ranking.Ranked{
		Entries: []frequency.Entry{
			{Word: "cat", Count: 2},
			{Word: "sat", Count: 1},
			{Word: "the", Count: 3},
		},
		Max: 3,
		Min: 1,
	}

	got := Tags(r)
	want := []Tag{
		{Word: "cat", Count: 2, Size: 35},
		{Word: "sat", Count: 1, Size: 11},
		{Word: "the", Count: 3, Size: 48},
	}
	if len(got) != len(want) {
		t.Fatalf("Tags() returned %d tags, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("tag %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestTags_AllEqual(t *testing.T) {
	r := ranking.Rank([]frequency.Entry{
		{Word: "a", Count: 1},
		{Word: "b", Count: 1},
		{Word: "c", Count: 1},
	}, 3)

	for _, tag := range Tags(r) {
		if tag.Size != MinClass {
			t.Errorf("tag %q size = %d, want %d", tag.Word, tag.Size, MinClass)
		}
	}
}

func TestTags_Empty(t *testing.T) {
	if got := Tags(ranking.Ranked{}); len(got) != 0 {
		t.Errorf("Tags(empty) = %v, want none", got)
	}
}
