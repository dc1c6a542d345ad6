// Package confirm synthesizes the read-only order confirmation
// document. The builder only talks to a document factory capable of
// making structural nodes and appending them to a presentation
// surface; how that surface is rendered is the factory's business.
package confirm

// Content is what goes inside a node: either text or child nodes,
// never both.
type Content struct {
	text     string
	children []*Node
	isText   bool
}

// Text wraps a string as node content.
func Text(s string) Content {
	return Content{text: s, isText: true}
}

// Children wraps child nodes as node content.
func Children(nodes ...*Node) Content {
	return Content{children: nodes}
}

// Node is one structural element: a tag, its content, and attributes.
type Node struct {
	Tag      string
	Text     string
	Children []*Node
	Attrs    map[string]string
}

// Attrs is a convenience alias for node attribute maps.
type Attrs = map[string]string

// Surface is a blank presentation surface the factory hands out.
// Nodes appended to it are owned by the surface from then on.
type Surface interface {
	AppendHead(nodes ...*Node)
	AppendBody(nodes ...*Node)
	AddBodyClass(class string)
}

// Factory creates surfaces and nodes. The confirmation builder does
// not know or care how the result is presented.
type Factory interface {
	NewSurface() Surface
	MakeNode(tag string, content Content, attrs Attrs) *Node
}
