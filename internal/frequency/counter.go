// Package frequency aggregates word occurrence counts.
package frequency

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"tagcloud/internal/analysis"
)

// Entry is a distinct word and the number of times it occurred.
type Entry struct {
	Word  string
	Count int
}

// Counter accumulates word counts. Words are kept in the order they were
// first seen so that later stable sorts break ties deterministically.
type Counter struct {
	analyzer analysis.Analyzer

	// index maps a word to its slot in entries.
	index   map[string]int
	entries []Entry
	total   int
}

// New creates a Counter that tokenizes with the standard analyzer.
func New() *Counter {
	return NewWithAnalyzer(nil)
}

// NewWithAnalyzer creates a Counter that tokenizes lines with a. A nil
// analyzer selects the standard analyzer.
func NewWithAnalyzer(a analysis.Analyzer) *Counter {
	if a == nil {
		a = analysis.NewStandardAnalyzer()
	}
	return &Counter{
		analyzer: a,
		index:    make(map[string]int),
	}
}

// Add records one occurrence of word. The word is lowercased first; empty
// words are ignored.
func (c *Counter) Add(word string) {
	if word == "" {
		return
	}
	word = strings.ToLower(word)
	if i, ok := c.index[word]; ok {
		c.entries[i].Count++
	} else {
		c.index[word] = len(c.entries)
		c.entries = append(c.entries, Entry{Word: word, Count: 1})
	}
	c.total++
}

// AddLine tokenizes a single line and records every word in it.
func (c *Counter) AddLine(line string) {
	for _, tok := range c.analyzer.Analyze(line) {
		c.Add(tok.Term)
	}
}

// Get returns the count recorded for word, or 0.
func (c *Counter) Get(word string) int {
	i, ok := c.index[strings.ToLower(word)]
	if !ok {
		return 0
	}
	return c.entries[i].Count
}

// Len returns the number of distinct words.
func (c *Counter) Len() int {
	return len(c.entries)
}

// Total returns the sum of all counts.
func (c *Counter) Total() int {
	return c.total
}

// Entries returns a copy of the counted words in first-seen order.
func (c *Counter) Entries() []Entry {
	out := make([]Entry, len(c.entries))
	copy(out, c.entries)
	return out
}

// Count reads r line by line and counts every word. Lines may be of any
// length; "\n" and "\r\n" terminators are stripped. If reading fails the
// partial counts are discarded and the read error is returned.
func Count(r io.Reader, a analysis.Analyzer) (*Counter, error) {
	c := NewWithAnalyzer(a)
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			line = strings.TrimSuffix(line, "\n")
			line = strings.TrimSuffix(line, "\r")
			c.AddLine(line)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				return c, nil
			}
			return nil, fmt.Errorf("read line: %w", err)
		}
	}
}
