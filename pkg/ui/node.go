package ui

import "strings"

// Node is one element of a render tree. A node with an empty Tag is a text
// node and only Text is meaningful.
type Node struct {
	Tag      string
	Class    string
	Text     string
	OnClick  any // message enqueued when the node is activated
	Children []Node
}

func Text(s string) Node {
	return Node{Text: s}
}

func Element(tag, class string, children ...Node) Node {
	return Node{Tag: tag, Class: class, Children: children}
}

// Button is a clickable element labelled with a single text child.
func Button(label string, onClick any) Node {
	return Node{Tag: "button", OnClick: onClick, Children: []Node{Text(label)}}
}

func (n Node) IsText() bool {
	return n.Tag == ""
}

// TextContent concatenates every text node under n in document order.
func (n Node) TextContent() string {
	if n.IsText() {
		return n.Text
	}
	var b strings.Builder
	for _, c := range n.Children {
		b.WriteString(c.TextContent())
	}
	return b.String()
}

// Clickables returns the nodes with an OnClick message, depth first.
func Clickables(root Node) []Node {
	var out []Node
	var walk func(Node)
	walk = func(n Node) {
		if n.OnClick != nil {
			out = append(out, n)
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(root)
	return out
}
