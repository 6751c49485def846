package htmlutil

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// GetText concatenates every visible text node under node in document order,
// the contents of script and style elements are left out.
func GetText(node *html.Node) string {
	var buffer bytes.Buffer
	getTextRecursive(node, &buffer)
	return buffer.String()
}

func getTextRecursive(node *html.Node, buffer *bytes.Buffer) {
	if node == nil {
		return
	}
	if node.Type == html.TextNode {
		buffer.WriteString(node.Data)
		return
	}
	if node.Type == html.ElementNode && (node.DataAtom == atom.Script || node.DataAtom == atom.Style) {
		return
	}
	child := node.FirstChild
	for child != nil {
		getTextRecursive(child, buffer)
		child = child.NextSibling
	}
}

// FirstText returns the trimmed visible text of the first element in sel,
// ok is false when sel is empty.
func FirstText(sel *goquery.Selection) (text string, ok bool) {
	if sel == nil || sel.Length() == 0 {
		return "", false
	}
	return strings.TrimSpace(GetText(sel.Nodes[0])), true
}

// FirstAttr returns the value of the first attribute in keys that is set to a
// non-empty value on the first element of sel.
func FirstAttr(sel *goquery.Selection, keys ...string) (string, bool) {
	if sel == nil || sel.Length() == 0 {
		return "", false
	}
	node := sel.Nodes[0]
	for _, key := range keys {
		for _, a := range node.Attr {
			if a.Namespace == "" && a.Key == key && a.Val != "" {
				return a.Val, true
			}
		}
	}
	return "", false
}
