package floatexpr

import (
	"strings"
)

// node is a node in the abstract syntax tree of an expression.
type node struct {
	kind nodeKind

	// num is the value of a nodeNum.
	num float64
	// name is the source text of a nodeNum or the function name of a nodeCall.
	name string
	// pos is the column of the token that created the node.
	pos int

	left  *node
	right *node
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeNum  // push num
	nodeCall // name is function to call, left is the argument

	nodeAdd // evaluate left, add right
	nodeSub // evaluate left, sub right
	nodeMul // evaluate left, mul right
	nodeDiv // evaluate left, div by right
	nodePow // evaluate left, exp by right
	nodeMod // evaluate left, remainder by right
)

//go:generate go run golang.org/x/tools/cmd/stringer -type=nodeKind -trimprefix=node

// symbol returns the operator text for a binary node kind.
func (k nodeKind) symbol() string {
	switch k {
	case nodeAdd:
		return "+"
	case nodeSub:
		return "-"
	case nodeMul:
		return "*"
	case nodeDiv:
		return "/"
	case nodePow:
		return "**"
	case nodeMod:
		return "%"
	default:
		return ""
	}
}

func (n *node) String() string {
	var b strings.Builder
	n.fmt(&b, false)
	return b.String()
}

func (n *node) fmt(b *strings.Builder, square bool) {
	var l, r byte = '(', ')'
	if square {
		l, r = '[', ']'
	}
	b.WriteByte(l)
	defer b.WriteByte(r)
	switch n.kind {
	case nodeNone:
		// Invalid nodes use invalid characters.
		b.WriteByte('$')
		if n.left != nil {
			n.left.fmt(b, !square)
		}
		b.WriteByte('#')
		if n.right != nil {
			n.right.fmt(b, !square)
		}
		b.WriteByte('$')
	case nodeNum:
		b.WriteString(n.name)
	case nodeCall:
		b.WriteString(n.name)
		n.left.fmt(b, !square)
	case nodeAdd, nodeSub, nodeMul, nodeDiv, nodePow, nodeMod:
		n.left.fmt(b, !square)
		b.WriteByte(' ')
		b.WriteString(n.kind.symbol())
		b.WriteByte(' ')
		n.right.fmt(b, !square)
	default:
		panic("floatexpr: invalid node kind " + n.kind.String() + " after writing " + b.String())
	}
}

// calls adds the names of functions called in the tree to names.
func (n *node) calls(names map[string]bool) {
	if n == nil {
		return
	}
	if n.kind == nodeCall {
		names[n.name] = true
	}
	n.left.calls(names)
	n.right.calls(names)
}
