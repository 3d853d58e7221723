package syntax

import (
	"fmt"
	"strings"
)

// Element is either a *Node or a Token.
type Element interface {
	Span() Span
	element()
}

// Node is an immutable concrete-tree node. Children are in source order and
// include trivia, so concatenating all leaf text reproduces the input.
type Node struct {
	kind     Kind
	children []Element
	span     Span
}

func (n *Node) Kind() Kind {
	return n.kind
}

func (n *Node) Children() []Element {
	return n.children
}

func (n *Node) Span() Span {
	return n.span
}

func (n *Node) element() {}

var _ Element = &Node{}

// Text reconstructs the exact source text covered by this node.
func (n *Node) Text() string {
	var b strings.Builder
	n.writeText(&b)

	return b.String()
}

func (n *Node) writeText(b *strings.Builder) {
	for _, child := range n.children {
		switch child := child.(type) {
		case *Node:
			child.writeText(b)
		case Token:
			b.WriteString(child.Text)
		}
	}
}

// String renders the debug dump: one line per element, two spaces of indent
// per depth, nodes as `Kind@start..end` and tokens as `Kind@start..end "text"`.
func (n *Node) String() string {
	var b strings.Builder
	n.dump(&b, 0)

	return b.String()
}

func (n *Node) dump(b *strings.Builder, indent int) {
	b.WriteString(strings.Repeat("  ", indent))
	fmt.Fprintf(b, "%s@%s\n", n.kind, n.span)

	for _, child := range n.children {
		switch child := child.(type) {
		case *Node:
			child.dump(b, indent+1)
		case Token:
			b.WriteString(strings.Repeat("  ", indent+1))
			b.WriteString(child.String())
			b.WriteString("\n")
		}
	}
}

// Builder assembles a tree bottom-up while being driven top-down:
// StartNode/FinishNode bracket children, Token appends a leaf.
type Builder struct {
	stack []*Node
	pos   int
}

func NewBuilder() *Builder {
	return &Builder{}
}

func (b *Builder) StartNode(kind Kind) {
	b.stack = append(b.stack, &Node{kind: kind})
}

func (b *Builder) Token(t Token) {
	top := b.stack[len(b.stack)-1]
	top.children = append(top.children, t)
	b.pos = t.Pos.End
}

func (b *Builder) FinishNode() {
	top := b.stack[len(b.stack)-1]
	b.stack = b.stack[:len(b.stack)-1]

	top.span = Span{Start: b.pos, End: b.pos}
	if len(top.children) > 0 {
		top.span = Span{
			Start: top.children[0].Span().Start,
			End:   top.children[len(top.children)-1].Span().End,
		}
	}

	if len(b.stack) == 0 {
		// keep the finished root for Finish
		b.stack = append(b.stack, top)

		return
	}

	parent := b.stack[len(b.stack)-1]
	parent.children = append(parent.children, top)
}

func (b *Builder) Finish() *Node {
	if len(b.stack) != 1 {
		panic(fmt.Sprintf("syntax: unbalanced builder, %d nodes open", len(b.stack)))
	}

	return b.stack[0]
}
