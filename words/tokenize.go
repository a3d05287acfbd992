/*
Package words turns a document into normalized tokens and counts them.

Tokens are lowercased, stripped of ASCII punctuation (deleted, so "don't"
becomes "dont") and split on whitespace. Stop words are then dropped.
*/
package words

import (
	"strings"
	"unicode/utf8"

	"github.com/tschuyebuhl/wordfreq/data"
)

// Punctuation is the set of characters deleted from every word.
const Punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

func stripPunctuation(r rune) rune {
	if r < utf8.RuneSelf && strings.ContainsRune(Punctuation, r) {
		return -1
	}
	return r
}

// ExtractWords lowercases text, deletes punctuation and splits it on runs of whitespace.
func ExtractWords(text string) []string {
	return strings.Fields(strings.Map(stripPunctuation, strings.ToLower(text)))
}

// RemoveStopWords returns tokens without any stop word, keeping order.
func RemoveStopWords(tokens []string) []string {
	kept := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if !IsStopWord(token) {
			kept = append(kept, token)
		}
	}
	return kept
}

func Tokenize(doc data.Document) []string {
	return RemoveStopWords(ExtractWords(string(doc)))
}
