package words

import "github.com/tschuyebuhl/wordfreq/data"

// Count builds the frequency table of tokens. Tokens are compared as-is.
func Count(tokens []string) data.FrequencyTable {
	wordCounts := make(data.FrequencyTable)
	for _, token := range tokens {
		wordCounts[token]++
	}
	return wordCounts
}
