package cards

import (
	"iter"
	"strings"
)

const (
	keywordOpen  = "「"
	keywordClose = "」"
)

// Span is a byte range [Start, End) into a description.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Keyword is one bracketed span of a description.
type Keyword struct {
	Text string `json:"text"`
	Span Span   `json:"span"`
}

// Keywords yields the text inside each 「...」 span of desc with its byte
// range. Spans do not cross line breaks and empty spans are skipped. The
// sequence can be ranged over any number of times.
func Keywords(desc string) iter.Seq2[string, Span] {
	return func(yield func(string, Span) bool) {
		pos := 0
		for pos < len(desc) {
			i := strings.Index(desc[pos:], keywordOpen)
			if i < 0 {
				return
			}
			start := pos + i + len(keywordOpen)
			j := strings.Index(desc[start:], keywordClose)
			if j < 0 {
				return
			}
			end := start + j
			if nl := strings.IndexByte(desc[start:end], '\n'); nl >= 0 {
				pos = start + nl + 1
				continue
			}
			pos = end + len(keywordClose)
			if end == start {
				continue
			}
			if !yield(desc[start:end], Span{Start: start, End: end}) {
				return
			}
		}
	}
}

// KeywordList collects Keywords into a slice.
func KeywordList(desc string) []Keyword {
	var out []Keyword
	for text, span := range Keywords(desc) {
		out = append(out, Keyword{Text: text, Span: span})
	}
	return out
}
