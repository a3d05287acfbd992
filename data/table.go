package data

// Document is the raw text of one input file.
type Document string

// FrequencyTable maps a normalized word to the number of times it occurs.
type FrequencyTable map[string]int

type RankedEntry struct {
	Word  string
	Count int
}
