package goquery

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// NodePredicate reports whether a node matches a condition.
type NodePredicate func(*html.Node) bool

// IsElement returns a predicate matching element nodes with the given tag.
func IsElement(a atom.Atom) NodePredicate {
	return func(n *html.Node) bool {
		return n.Type == html.ElementNode && n.DataAtom == a
	}
}

// SiblingsUntil walks the siblings following n and returns the element
// nodes it passes, stopping before the first element that satisfies stop.
// Text, comment and other non-element nodes are skipped. n itself is never
// included; a nil n yields nil.
func SiblingsUntil(n *html.Node, stop NodePredicate) []*html.Node {
	if n == nil {
		return nil
	}
	var nodes []*html.Node
	for sib := n.NextSibling; sib != nil; sib = sib.NextSibling {
		if sib.Type != html.ElementNode {
			continue
		}
		if stop(sib) {
			break
		}
		nodes = append(nodes, sib)
	}
	return nodes
}

// NodeText returns the concatenated text of n and all of its descendants.
func NodeText(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

// JoinText returns the trimmed text of each node joined by newlines.
// Nodes without text are left out.
func JoinText(nodes []*html.Node) string {
	blocks := make([]string, 0, len(nodes))
	for _, n := range nodes {
		if text := strings.TrimSpace(NodeText(n)); text != "" {
			blocks = append(blocks, text)
		}
	}
	return strings.Join(blocks, "\n")
}

// RenderNodes renders nodes back to HTML, concatenated in order.
func RenderNodes(nodes []*html.Node) (string, error) {
	var sb strings.Builder
	for _, n := range nodes {
		if err := html.Render(&sb, n); err != nil {
			return "", err
		}
	}
	return sb.String(), nil
}
