package notify

import (
	"strings"

	"golang.org/x/net/html"
)

// Teaser reduces a story's HTML fragment to plain text suitable for a
// notification body: tags stripped, whitespace collapsed
func Teaser(storyHTML string) string {
	tokenizer := html.NewTokenizer(strings.NewReader(storyHTML))
	var sb strings.Builder
	for {
		tt := tokenizer.Next()
		if tt == html.ErrorToken {
			break
		}
		if tt == html.TextToken {
			sb.WriteString(tokenizer.Token().Data)
			sb.WriteString(" ")
		}
	}
	return strings.Join(strings.Fields(sb.String()), " ")
}
