package generate

import (
	"errors"
	"regexp"
	"strings"

	"golang.org/x/net/html"
)

// ErrNoDocument signals that a model reply contained no recognizable
// HTML document. Its message is user-facing.
var ErrNoDocument = errors.New("model reply did not contain an HTML document")

// doctypePrefix is the declaration a bare (unfenced) reply must start with.
const doctypePrefix = "<!DOCTYPE html>"

// fenceRe matches the first ```html fenced code block. Non-greedy so a
// reply containing several blocks yields the first one.
var fenceRe = regexp.MustCompile("(?s)```html\\s*\\n(.*?)```")

// ExtractDocument pulls the HTML document out of a raw model reply.
//
// It first looks for a ```html fenced block and returns its body trimmed.
// Model output does not always honor the requested fencing, so as a
// fallback a trimmed reply that itself starts with the doctype declaration
// is accepted unchanged. Anything else is ErrNoDocument.
func ExtractDocument(raw string) (string, error) {
	if m := fenceRe.FindStringSubmatch(raw); len(m) > 1 {
		doc := strings.TrimSpace(m[1])
		if doc != "" {
			return doc, nil
		}
		return "", ErrNoDocument
	}

	trimmed := strings.TrimSpace(raw)
	if strings.HasPrefix(trimmed, doctypePrefix) {
		return trimmed, nil
	}

	return "", ErrNoDocument
}

// DocumentTitle returns the text of the document's <title> element, or ""
// if the document has none. Best effort; used for status display only.
func DocumentTitle(doc string) string {
	root, err := html.Parse(strings.NewReader(doc))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(findTitle(root))
}

func findTitle(n *html.Node) string {
	if n.Type == html.ElementNode && n.Data == "title" {
		var buf strings.Builder
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.TextNode {
				buf.WriteString(c.Data)
			}
		}
		return buf.String()
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if t := findTitle(c); t != "" {
			return t
		}
	}
	return ""
}
