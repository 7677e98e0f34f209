package analysis

// DefaultSeparatorChars lists the punctuation and digits that delimit words.
const DefaultSeparatorChars = " ,.?/<>;:\"'[]{}!~`()*&^%$#@_-+=0123456789"

// whitespaceChars are added to the default and custom sets; line terminators are
// stripped before tokenization but may still appear mid-line.
const whitespaceChars = "\t\r\v\f\n"

// SeparatorSet is an immutable set of single-byte separator characters.
// The zero value contains no separators. Bytes >= 0x80 are never separators,
// so multi-byte UTF-8 sequences always stay inside a word.
type SeparatorSet struct {
	set [128]bool
}

// NewSeparatorSet builds a set from the ASCII characters of chars.
// Non-ASCII characters are ignored.
func NewSeparatorSet(chars string) SeparatorSet {
	var s SeparatorSet
	for i := 0; i < len(chars); i++ {
		if c := chars[i]; c < 0x80 {
			s.set[c] = true
		}
	}
	return s
}

// DefaultSeparators returns the set used when no custom set is configured.
func DefaultSeparators() SeparatorSet {
	return NewSeparatorSet(DefaultSeparatorChars + whitespaceChars)
}

// CustomSeparators returns a set of chars plus ASCII whitespace.
func CustomSeparators(chars string) SeparatorSet {
	return NewSeparatorSet(chars + whitespaceChars)
}

// Contains reports whether b is a separator.
func (s SeparatorSet) Contains(b byte) bool {
	return b < 0x80 && s.set[b]
}

// ContainsAny reports whether any byte of text is a separator.
func (s SeparatorSet) ContainsAny(text string) bool {
	for i := 0; i < len(text); i++ {
		if s.Contains(text[i]) {
			return true
		}
	}
	return false
}
