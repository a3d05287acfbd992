package report

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/tschuyebuhl/wordfreq/data"
)

var EmptyTable = errors.New("frequency table is empty")

// Rank orders the table by count, highest first. Equal counts are ordered by word.
func Rank(table data.FrequencyTable) []data.RankedEntry {
	entries := make([]data.RankedEntry, 0, len(table))
	for word, count := range table {
		entries = append(entries, data.RankedEntry{Word: word, Count: count})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Word < entries[j].Word
	})
	return entries
}

// FormatWidth is the length in characters of the longest word in the table.
func FormatWidth(table data.FrequencyTable) (int, error) {
	if len(table) == 0 {
		return 0, EmptyTable
	}
	width := 0
	for word := range table {
		if n := utf8.RuneCountInString(word); n > width {
			width = n
		}
	}
	return width, nil
}

/*
Render draws the ranked table as a bar chart, one line per word:

	  cat : 2 **
	  mat : 1 *

Words are right-aligned to the longest word of the whole table. When top is
positive only the first top entries are drawn. The chart ends with a blank line.
*/
func Render(table data.FrequencyTable, top int) (string, error) {
	width, err := FormatWidth(table)
	if err != nil {
		return "", err
	}

	entries := Rank(table)
	if top > 0 && top < len(entries) {
		entries = entries[:top]
	}

	var out strings.Builder
	for _, e := range entries {
		fmt.Fprintf(&out, "%*s : %d %s\n", width, e.Word, e.Count, strings.Repeat("*", e.Count))
	}
	out.WriteByte('\n')
	return out.String(), nil
}

// Print writes the chart to w in one go. An empty table prints nothing.
func Print(w io.Writer, table data.FrequencyTable, top int) error {
	chart, err := Render(table, top)
	if errors.Is(err, EmptyTable) {
		slog.Info("no words left to report")
		return nil
	}
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, chart)
	return err
}
