package dlit

import (
	"bytes"
	"strings"
	"sync"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/html"

	nethtml "golang.org/x/net/html"
)

var (
	minifier     *minify.M
	minifierOnce sync.Once
)

func getMinifier() *minify.M {
	minifierOnce.Do(func() {
		minifier = minify.New()
		minifier.Add("text/html", &html.Minifier{KeepEndTags: true})
	})
	return minifier
}

// Snapshot serializes fragment's children to an HTML string and runs it
// through a whitespace-normalizing minifier, giving tests a stable string to
// compare commits against regardless of the scanner's or parser's own
// incidental whitespace choices.
func Snapshot(fragment *nethtml.Node) (string, error) {
	var buf bytes.Buffer
	for c := fragment.FirstChild; c != nil; c = c.NextSibling {
		if err := nethtml.Render(&buf, c); err != nil {
			return "", err
		}
	}
	minified, err := getMinifier().String("text/html", buf.String())
	if err != nil {
		return buf.String(), nil
	}
	return minified, nil
}

// StripMarkers removes any surviving mark/commentBody tokens from s. Tests
// use it to assert on rendered text without hardcoding the scanner's
// randomly generated marker spelling.
func StripMarkers(s string) string {
	s = strings.ReplaceAll(s, "<!--"+commentBody+"-->", "")
	s = strings.ReplaceAll(s, mark, "")
	return s
}
