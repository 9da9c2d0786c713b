package cards

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeywords(t *testing.T) {
	desc := "Often called 「Twin Elf」 by 「Dragon」 tamers."
	got := KeywordList(desc)
	if assert.Len(t, got, 2) {
		assert.Equal(t, "Twin Elf", got[0].Text)
		assert.Equal(t, "Dragon", got[1].Text)
		for _, k := range got {
			assert.Equal(t, k.Text, desc[k.Span.Start:k.Span.End])
		}
		assert.Equal(t, strings.Index(desc, "Twin"), got[0].Span.Start)
	}
}

func TestKeywordsIsRestartable(t *testing.T) {
	seq := Keywords("「a」「b」「c」")
	var first, second []string
	for text := range seq {
		first = append(first, text)
	}
	for text := range seq {
		second = append(second, text)
	}
	assert.Equal(t, []string{"a", "b", "c"}, first)
	assert.Equal(t, first, second)
}

func TestKeywordsStopsEarly(t *testing.T) {
	n := 0
	for range Keywords("「a」「b」「c」") {
		n++
		break
	}
	assert.Equal(t, 1, n)
}

func TestKeywordsEdgeCases(t *testing.T) {
	assert.Empty(t, KeywordList(""))
	assert.Empty(t, KeywordList("no spans here"))
	assert.Empty(t, KeywordList("「unclosed"))
	assert.Empty(t, KeywordList("「」"), "empty spans are skipped")

	got := KeywordList("「broken\nline」 and 「ok」")
	if assert.Len(t, got, 1) {
		assert.Equal(t, "ok", got[0].Text)
	}
}

func TestKeywordsNonGreedy(t *testing.T) {
	got := KeywordList("「x」 then 「y」")
	assert.Equal(t, []Keyword{
		{Text: "x", Span: Span{Start: 3, End: 4}},
		{Text: "y", Span: Span{Start: 16, End: 17}},
	}, got)
}
