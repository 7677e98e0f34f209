package analysis

// Token represents a single word produced by an analyzer.
type Token struct {
	Term      string
	Position  int
	StartByte int
	EndByte   int
}

// Analyzer processes a line of text into a stream of word tokens.
// Implementations MUST be safe for reuse across lines.
type Analyzer interface {
	// Analyze tokenizes the input text and returns word tokens with positions.
	Analyze(text string) []Token
}

// Segment is one maximal run of either separator or non-separator bytes.
type Segment struct {
	Text  string
	Start int
	// Word is true when the run consists of non-separator bytes.
	Word bool
}

// End returns the byte offset just past the segment.
func (s Segment) End() int {
	return s.Start + len(s.Text)
}
