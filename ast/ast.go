package ast

import "fmt"

// Kind identifies what an expression node represents. The zero value is
// Other, which no evaluator recognizes.
type Kind int

const (
	Other = Kind(iota)
	Assignee
	True
	False
	Number
	HexNumber
	UnaryOperator
	Operator
	Function
	Variable
	PromptVariable
	String
)

var kindNames = map[Kind]string{
	Other:          `Other`,
	Assignee:       `Assignee`,
	True:           `True`,
	False:          `False`,
	Number:         `Number`,
	HexNumber:      `HexNumber`,
	UnaryOperator:  `UnaryOperator`,
	Operator:       `Operator`,
	Function:       `Function`,
	Variable:       `Variable`,
	PromptVariable: `PromptVariable`,
	String:         `String`,
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return fmt.Sprintf(`Kind(%d)`, int(k))
}

// Node is an expression tree node. Children are held as a first child
// plus next sibling chain in left-to-right order. A Node is built once
// and then treated as immutable by consumers.
type Node struct {
	kind        Kind
	text        string
	firstChild  *Node
	lastChild   *Node
	nextSibling *Node
}

// New creates a node of the given kind with the given text and appends
// the given children in order.
func New(kind Kind, text string, children ...*Node) *Node {
	n := &Node{kind: kind, text: text}
	for _, child := range children {
		n.AddChild(child)
	}
	return n
}

func (n *Node) Kind() Kind {
	return n.kind
}

// Text returns the literal lexeme backing this node.
func (n *Node) Text() string {
	return n.text
}

func (n *Node) FirstChild() *Node {
	return n.firstChild
}

func (n *Node) NextSibling() *Node {
	return n.nextSibling
}

// AddChild appends child as the last child of this node. The child must
// not already be attached to another parent.
func (n *Node) AddChild(child *Node) *Node {
	if n.firstChild == nil {
		n.firstChild = child
	} else {
		n.lastChild.nextSibling = child
	}
	n.lastChild = child
	return n
}

// Children returns the children as an ordered slice. The slice is
// created on each call and may be modified freely by the caller.
func (n *Node) Children() []*Node {
	children := make([]*Node, 0, 4)
	for c := n.firstChild; c != nil; c = c.nextSibling {
		children = append(children, c)
	}
	return children
}

// Label returns a short description of this node suitable for messages
// and logs.
func (n *Node) Label() string {
	return fmt.Sprintf(`%s '%s'`, n.kind, n.text)
}
