package words

import (
	"sort"

	mapset "github.com/deckarep/golang-set/v2"
)

// stopWords is filled once at init and only read afterwards.
var stopWords = mapset.NewSet(
	"a", "an", "and", "are", "as", "at", "be", "by", "for", "from", "has",
	"he", "i", "in", "is", "it", "its", "of", "on", "that", "the", "to",
	"were", "will", "with",
)

// IsStopWord reports whether a lowercased word is excluded from counting.
func IsStopWord(word string) bool {
	return stopWords.Contains(word)
}

// StopWords lists the stop words in alphabetical order.
func StopWords() []string {
	list := stopWords.ToSlice()
	sort.Strings(list)
	return list
}
