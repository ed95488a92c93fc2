package analyzer

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// Structural queries shared by the detectors. All of them are defensive:
// an unexpected node shape evaluates to false instead of aborting, so a
// malformed subtree never suppresses diagnostics elsewhere in the unit.

// stringLiteralValue returns the unquoted text of a string literal or a
// substitution-free template string, or "" for any other shape.
func stringLiteralValue(n *sitter.Node, src []byte) string {
	if n == nil {
		return ""
	}
	switch n.Type() {
	case jsNodeString:
		for _, child := range namedChildren(n) {
			if child.Type() == jsNodeStringFragment {
				return nodeText(child, src)
			}
		}
		// Empty string literal has no fragment child.
		text := nodeText(n, src)
		if len(text) >= 2 {
			return text[1 : len(text)-1]
		}
		return ""
	case jsNodeTemplateString:
		text := nodeText(n, src)
		if len(text) >= 2 && !strings.Contains(text, "${") {
			return text[1 : len(text)-1]
		}
	}
	return ""
}

// isStringLiteral reports whether n is a plain string literal or a
// template string without substitutions.
func isStringLiteral(n *sitter.Node, src []byte) bool {
	if n == nil {
		return false
	}
	switch n.Type() {
	case jsNodeString:
		return true
	case jsNodeTemplateString:
		return !strings.Contains(nodeText(n, src), "${")
	}
	return false
}

// insideTryBlock reports whether node lies in the protected region of an
// enclosing try statement. Code in the handler or finalizer is not
// protected by that try, but may still be protected by an outer one.
func insideTryBlock(node *sitter.Node) bool {
	for n := node; n != nil; {
		p := n.Parent()
		if p != nil && p.Type() == jsNodeTryStatement {
			if body := p.ChildByFieldName("body"); sameNode(body, n) {
				return true
			}
		}
		n = p
	}
	return false
}

// objectProperty looks up a key in an object literal, case-insensitively,
// and returns the value node. Shorthand properties return the shorthand
// identifier itself. Returns nil when obj is not an object literal or the
// key is absent.
func objectProperty(obj *sitter.Node, key string, src []byte) *sitter.Node {
	if obj == nil || obj.Type() != jsNodeObject {
		return nil
	}
	key = strings.ToLower(key)
	for _, child := range namedChildren(obj) {
		switch child.Type() {
		case jsNodePair:
			if strings.ToLower(propertyKeyName(child.ChildByFieldName("key"), src)) == key {
				return child.ChildByFieldName("value")
			}
		case jsNodeShorthandProperty:
			if strings.ToLower(nodeText(child, src)) == key {
				return child
			}
		}
	}
	return nil
}

// propertyKeyName extracts the name of an object-literal key, whether it
// is a bare identifier or a quoted string.
func propertyKeyName(key *sitter.Node, src []byte) string {
	if key == nil {
		return ""
	}
	switch key.Type() {
	case jsNodePropertyIdentifier, jsNodeIdentifier:
		return nodeText(key, src)
	case jsNodeString:
		return stringLiteralValue(key, src)
	}
	return ""
}

// isJSONStringifyCall reports whether n is a JSON.stringify(...) call.
func isJSONStringifyCall(n *sitter.Node, src []byte) bool {
	if n == nil {
		return false
	}
	n = unwrapExpr(n)
	if n == nil || n.Type() != jsNodeCallExpression {
		return false
	}
	fn := n.ChildByFieldName("function")
	if fn == nil || fn.Type() != jsNodeMemberExpression {
		return false
	}
	obj := fn.ChildByFieldName("object")
	prop := fn.ChildByFieldName("property")
	return obj != nil && obj.Type() == jsNodeIdentifier && nodeText(obj, src) == "JSON" &&
		prop != nil && nodeText(prop, src) == "stringify"
}

// scanShallow visits n and its descendants pre-order, skipping the bodies
// of nested functions, until visit returns true. It reports whether any
// visit returned true.
func scanShallow(n *sitter.Node, visit func(*sitter.Node) bool) bool {
	if n == nil {
		return false
	}
	if visit(n) {
		return true
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if child == nil || isFunctionKind(child.Type()) {
			continue
		}
		if scanShallow(child, visit) {
			return true
		}
	}
	return false
}

// hasSiblingCheck scans the statements following the one containing
// bindingNode, within the same block, for an access to name.<prop> for
// any prop in props. The scan descends into nested statements such as
// conditionals guarding on the binding, but never crosses function
// boundaries, and stops once the name is rebound.
func hasSiblingCheck(bindingNode *sitter.Node, name string, props []string, src []byte) bool {
	stmt := enclosingStatement(bindingNode)
	if stmt == nil {
		return false
	}

	for sib := stmt.NextNamedSibling(); sib != nil; sib = sib.NextNamedSibling() {
		if containsMemberAccess(sib, name, props, src) {
			return true
		}
		if rebindsName(sib, name, src) {
			return false
		}
	}
	return false
}

// enclosingStatement walks up to the child of the nearest statement block
// or program containing n.
func enclosingStatement(n *sitter.Node) *sitter.Node {
	for n != nil {
		p := n.Parent()
		if p == nil {
			return nil
		}
		if p.Type() == jsNodeStatementBlock || p.Type() == jsNodeProgram {
			return n
		}
		n = p
	}
	return nil
}

// containsMemberAccess reports whether the subtree holds name.<prop> for
// any prop in props, without descending into nested functions.
func containsMemberAccess(n *sitter.Node, name string, props []string, src []byte) bool {
	return scanShallow(n, func(node *sitter.Node) bool {
		if node.Type() != jsNodeMemberExpression {
			return false
		}
		obj := node.ChildByFieldName("object")
		if obj == nil || obj.Type() != jsNodeIdentifier || nodeText(obj, src) != name {
			return false
		}
		prop := nodeText(node.ChildByFieldName("property"), src)
		for _, want := range props {
			if prop == want {
				return true
			}
		}
		return false
	})
}

// rebindsName reports whether the subtree declares or assigns name,
// without descending into nested functions.
func rebindsName(n *sitter.Node, name string, src []byte) bool {
	return scanShallow(n, func(node *sitter.Node) bool {
		switch node.Type() {
		case jsNodeVariableDeclarator:
			ident := node.ChildByFieldName("name")
			return ident != nil && ident.Type() == jsNodeIdentifier && nodeText(ident, src) == name
		case jsNodeAssignmentExpression:
			left := node.ChildByFieldName("left")
			return left != nil && left.Type() == jsNodeIdentifier && nodeText(left, src) == name
		}
		return false
	})
}
