package reader

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

// ExtractHTMLText returns the visible text of an HTML document, one space
// after each text node. Script and style bodies are dropped.
func ExtractHTMLText(r io.Reader) string {
	z := html.NewTokenizer(r)
	var textContent strings.Builder
	hidden := 0

	for {
		t := z.Next()

		switch t {
		case html.ErrorToken:
			return textContent.String()
		case html.StartTagToken:
			if name, _ := z.TagName(); isHidden(name) {
				hidden++
			}
		case html.EndTagToken:
			if name, _ := z.TagName(); isHidden(name) && hidden > 0 {
				hidden--
			}
		case html.TextToken:
			if hidden == 0 {
				textContent.Write(z.Text())
				textContent.WriteByte(' ')
			}
		}
	}
}

func isHidden(tag []byte) bool {
	switch string(tag) {
	case "script", "style":
		return true
	}
	return false
}
