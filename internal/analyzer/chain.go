package analyzer

import (
	sitter "github.com/smacker/go-tree-sitter"
)

// continuation is one chained promise call, e.g. the `.then(...)` in
// `fetch(url).then(...)`.
type continuation struct {
	// Call is the call_expression of the continuation.
	Call *sitter.Node
	// Name is the continuation method: then, catch or finally.
	Name string
}

// continuationName returns the member name when node is a continuation
// call, or "" otherwise.
func continuationName(node *sitter.Node, src []byte) string {
	if node == nil || node.Type() != jsNodeCallExpression {
		return ""
	}
	fn := node.ChildByFieldName("function")
	if fn == nil || fn.Type() != jsNodeMemberExpression {
		return ""
	}
	prop := fn.ChildByFieldName("property")
	if prop == nil {
		return ""
	}
	switch name := nodeText(prop, src); name {
	case continuationThen, continuationCatch, continuationFinally:
		return name
	default:
		return ""
	}
}

// resolveAnchor walks backward from a continuation call through further
// continuations to the originating target call. It returns nil when the
// chain is not rooted at one. Runs in O(chain length) and never mutates
// the tree, so any detector may call it independently.
func resolveAnchor(node *sitter.Node, src []byte, target string) *sitter.Node {
	for continuationName(node, src) != "" {
		fn := node.ChildByFieldName("function")
		receiver := unwrapExpr(fn.ChildByFieldName("object"))
		if receiver == nil {
			return nil
		}
		if isTargetCall(receiver, src, target) {
			return receiver
		}
		node = receiver
	}
	return nil
}

// chainAbove enumerates the continuations chained onto anchor, innermost
// first: for `fetch(u).then(a).catch(b)` it yields then, then catch.
func chainAbove(anchor *sitter.Node, src []byte) []continuation {
	var chain []continuation

	node := anchor
	for {
		member := node.Parent()
		if member == nil || member.Type() != jsNodeMemberExpression {
			return chain
		}
		if obj := member.ChildByFieldName("object"); !sameNode(obj, node) {
			return chain
		}
		call := member.Parent()
		if call == nil || call.Type() != jsNodeCallExpression {
			return chain
		}
		if fn := call.ChildByFieldName("function"); !sameNode(fn, member) {
			return chain
		}
		name := continuationName(call, src)
		if name == "" {
			return chain
		}
		chain = append(chain, continuation{Call: call, Name: name})
		node = call
	}
}

// chainHandlesErrors reports whether a chain carries a terminal
// catch-style continuation: a .catch(), or a .then() with a rejection
// handler as its second argument.
func chainHandlesErrors(chain []continuation) bool {
	for _, c := range chain {
		if c.Name == continuationCatch {
			return true
		}
		if c.Name == continuationThen && len(callArguments(c.Call)) >= 2 {
			return true
		}
	}
	return false
}
