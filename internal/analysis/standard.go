package analysis

import "strings"

// StandardAnalyzer splits text on a SeparatorSet and lowercases each word.
type StandardAnalyzer struct {
	seps SeparatorSet
}

// NewStandardAnalyzer creates a StandardAnalyzer using the default separators.
func NewStandardAnalyzer() *StandardAnalyzer {
	return NewSeparatorAnalyzer(DefaultSeparators())
}

// NewSeparatorAnalyzer creates a StandardAnalyzer that splits on seps.
func NewSeparatorAnalyzer(seps SeparatorSet) *StandardAnalyzer {
	return &StandardAnalyzer{seps: seps}
}

// Separators returns the set the analyzer splits on.
func (a *StandardAnalyzer) Separators() SeparatorSet {
	return a.seps
}

// Analyze returns the lowercased word segments of text. Separator segments
// are dropped.
func (a *StandardAnalyzer) Analyze(text string) []Token {
	var tokens []Token
	pos := 0
	for seg := range Segments(text, a.seps) {
		if !seg.Word {
			continue
		}
		tokens = append(tokens, Token{
			Term:      strings.ToLower(seg.Text),
			Position:  pos,
			StartByte: seg.Start,
			EndByte:   seg.End(),
		})
		pos++
	}
	return tokens
}
