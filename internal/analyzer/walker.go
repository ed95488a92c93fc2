package analyzer

import (
	sitter "github.com/smacker/go-tree-sitter"
)

// walker drives the single pre-order traversal of one unit's tree and
// runs registered hooks once the traversal is complete. Detectors that
// defer reporting flush through an exit hook.
type walker struct {
	exitHooks []func()
}

func newWalker() *walker {
	return &walker{}
}

// OnExit registers fn to run after the traversal finishes. Hooks run in
// registration order.
func (w *walker) OnExit(fn func()) {
	w.exitHooks = append(w.exitHooks, fn)
}

// Walk visits every node under root exactly once, pre-order and
// left-to-right, then runs the exit hooks.
func (w *walker) Walk(root *sitter.Node, visit func(*sitter.Node)) {
	if root != nil {
		walkNode(root, visit)
	}
	for _, fn := range w.exitHooks {
		fn()
	}
}

func walkNode(node *sitter.Node, visit func(*sitter.Node)) {
	stack := make([]*sitter.Node, 0, 64)
	stack = append(stack, node)

	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n == nil {
			continue
		}

		visit(n)

		// Push children in reverse so the leftmost child is visited first.
		for i := int(n.ChildCount()) - 1; i >= 0; i-- {
			if child := n.Child(i); child != nil {
				stack = append(stack, child)
			}
		}
	}
}

// nodeKey identifies a node within one unit. Tree-sitter hands out fresh
// wrapper values per access, so pointer identity cannot be used for map
// keys; span plus kind is unique for the node shapes the engine tracks.
type nodeKey struct {
	start uint32
	end   uint32
	kind  string
}

func keyOf(n *sitter.Node) nodeKey {
	return nodeKey{start: n.StartByte(), end: n.EndByte(), kind: n.Type()}
}

// nodeText returns the source text covered by a node.
func nodeText(n *sitter.Node, src []byte) string {
	if n == nil {
		return ""
	}
	start, end := n.StartByte(), n.EndByte()
	if int(end) > len(src) || start > end {
		return ""
	}
	return string(src[start:end])
}

// namedChildren collects the named children of a node.
func namedChildren(n *sitter.Node) []*sitter.Node {
	if n == nil {
		return nil
	}
	count := int(n.NamedChildCount())
	children := make([]*sitter.Node, 0, count)
	for i := 0; i < count; i++ {
		if child := n.NamedChild(i); child != nil {
			children = append(children, child)
		}
	}
	return children
}

// callArguments returns the named argument nodes of a call or new
// expression, or nil when the node has no argument list.
func callArguments(call *sitter.Node) []*sitter.Node {
	args := call.ChildByFieldName("arguments")
	if args == nil || args.Type() != jsNodeArguments {
		return nil
	}
	return namedChildren(args)
}

// unwrapExpr strips parentheses and await wrappers, returning the
// underlying expression.
func unwrapExpr(n *sitter.Node) *sitter.Node {
	for n != nil {
		switch n.Type() {
		case jsNodeParenthesized:
			n = n.NamedChild(0)
		case jsNodeAwaitExpression:
			n = n.NamedChild(0)
		default:
			return n
		}
	}
	return nil
}

// enclosingScope returns the nearest function-like ancestor, or the
// program node for top-level code.
func enclosingScope(n *sitter.Node) *sitter.Node {
	for p := n.Parent(); p != nil; p = p.Parent() {
		if isFunctionKind(p.Type()) || p.Type() == jsNodeProgram {
			return p
		}
	}
	return nil
}

// sameNode reports whether two wrappers denote the same underlying node.
func sameNode(a, b *sitter.Node) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.StartByte() == b.StartByte() && a.EndByte() == b.EndByte() && a.Type() == b.Type()
}
