// Package htmlmin compacts rendered HTML fragments.
package htmlmin

import (
	"strings"
	"sync"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/html"
)

const mediaType = "text/html"

var (
	minifier *minify.M
	once     sync.Once
)

func getMinifier() *minify.M {
	once.Do(func() {
		minifier = minify.New()
		minifier.Add(mediaType, &html.Minifier{
			KeepDefaultAttrVals: true,
			KeepEndTags:         true,
			KeepQuotes:          true,
		})
	})
	return minifier
}

// String minifies an HTML fragment. Text without markup only has its
// whitespace collapsed. When minification fails the input is returned as is.
func String(content string) string {
	if !strings.Contains(content, "<") {
		return strings.Join(strings.Fields(content), " ")
	}
	out, err := getMinifier().String(mediaType, content)
	if err != nil {
		return content
	}
	return out
}
