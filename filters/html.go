package filters

import (
	"strings"

	"golang.org/x/net/html"
)

// HTMLText extracts the inner text of an HTML fragment, the analog of
// jQuery's $(element).text(). Input that cannot be parsed is returned
// unchanged.
func HTMLText(fragment string) string {
	root, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		return fragment
	}
	var b strings.Builder
	collectText(root, &b)
	return b.String()
}

func collectText(n *html.Node, b *strings.Builder) {
	if n.Type == html.TextNode {
		b.WriteString(n.Data)
	}
	if n.Type == html.ElementNode && (n.Data == "script" || n.Data == "style") {
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, b)
	}
}
