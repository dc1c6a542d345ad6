package confirm

import (
	"html"
	"sort"
	"strings"
)

// voidTags never carry content and render without a closing tag.
var voidTags = map[string]bool{
	"link":  true,
	"hr":    true,
	"br":    true,
	"input": true,
	"img":   true,
	"meta":  true,
}

// HTMLFactory renders surfaces as standalone HTML documents.
type HTMLFactory struct{}

func NewHTMLFactory() *HTMLFactory {
	return &HTMLFactory{}
}

func (f *HTMLFactory) NewSurface() Surface {
	return &HTMLSurface{}
}

func (f *HTMLFactory) MakeNode(tag string, content Content, attrs Attrs) *Node {
	n := &Node{Tag: tag, Attrs: attrs}
	if content.isText {
		n.Text = content.text
	} else {
		n.Children = content.children
	}
	return n
}

// HTMLSurface accumulates head and body nodes and serializes them as
// a complete HTML page.
type HTMLSurface struct {
	head      []*Node
	body      []*Node
	bodyClass []string
}

func (s *HTMLSurface) AppendHead(nodes ...*Node) {
	s.head = append(s.head, nodes...)
}

func (s *HTMLSurface) AppendBody(nodes ...*Node) {
	s.body = append(s.body, nodes...)
}

func (s *HTMLSurface) AddBodyClass(class string) {
	s.bodyClass = append(s.bodyClass, class)
}

// HTML serializes the whole surface.
func (s *HTMLSurface) HTML() string {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	for _, n := range s.head {
		writeNode(&b, n)
		b.WriteString("\n")
	}
	b.WriteString("</head>\n<body")
	if len(s.bodyClass) > 0 {
		b.WriteString(` class="` + html.EscapeString(strings.Join(s.bodyClass, " ")) + `"`)
	}
	b.WriteString(">\n")
	for _, n := range s.body {
		writeNode(&b, n)
		b.WriteString("\n")
	}
	b.WriteString("</body>\n</html>\n")
	return b.String()
}

// RenderFragment serializes a single node tree, for markup that lives
// outside a full surface (the submission popup).
func RenderFragment(n *Node) string {
	var b strings.Builder
	writeNode(&b, n)
	return b.String()
}

func writeNode(b *strings.Builder, n *Node) {
	b.WriteString("<" + n.Tag)

	// Deterministic attribute order keeps output stable for tests
	// and diffing.
	keys := make([]string, 0, len(n.Attrs))
	for k := range n.Attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		b.WriteString(" " + k + `="` + html.EscapeString(n.Attrs[k]) + `"`)
	}

	if voidTags[n.Tag] {
		b.WriteString(">")
		return
	}

	b.WriteString(">")
	if len(n.Children) > 0 {
		for _, c := range n.Children {
			writeNode(b, c)
		}
	} else {
		b.WriteString(html.EscapeString(n.Text))
	}
	b.WriteString("</" + n.Tag + ">")
}
