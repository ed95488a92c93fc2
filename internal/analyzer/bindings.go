package analyzer

import (
	sitter "github.com/smacker/go-tree-sitter"
)

// bindingTracker maps variable names to the call site that initialized
// them, scoped per enclosing function. Reassignment overwrites; nested
// function scopes shadow outer ones. All references are non-owning and
// live only for the single-unit pass.
type bindingTracker struct {
	scopes map[nodeKey]map[string]*CallSite
}

func newBindingTracker() *bindingTracker {
	return &bindingTracker{scopes: make(map[nodeKey]map[string]*CallSite)}
}

// record binds name within scope to site. Last write wins; because the
// walk is in source order, uses visited before a reassignment are never
// attributed to the later binding.
func (b *bindingTracker) record(name string, scope *sitter.Node, site *CallSite) {
	if name == "" || scope == nil {
		return
	}
	key := keyOf(scope)
	names := b.scopes[key]
	if names == nil {
		names = make(map[string]*CallSite)
		b.scopes[key] = names
	}
	names[name] = site
}

// lookup resolves name from the scope enclosing the given node, walking
// outward through enclosing functions (standard lexical shadowing).
func (b *bindingTracker) lookup(name string, from *sitter.Node) *CallSite {
	for scope := enclosingScope(from); scope != nil; scope = enclosingScope(scope) {
		if names, ok := b.scopes[keyOf(scope)]; ok {
			if site, ok := names[name]; ok {
				return site
			}
		}
		if scope.Type() == jsNodeProgram {
			break
		}
	}
	return nil
}

// bindingTarget finds the variable a target call initializes, walking up
// through await wrappers, parentheses and chained continuations to a
// declarator or a plain assignment. It returns the variable name and the
// declaring node, or "" when the call result is not bound.
func bindingTarget(node *sitter.Node, src []byte) (string, *sitter.Node) {
	cur := node
	for {
		p := cur.Parent()
		if p == nil {
			return "", nil
		}
		switch p.Type() {
		case jsNodeAwaitExpression, jsNodeParenthesized:
			cur = p

		case jsNodeMemberExpression:
			// Part of a chain only when cur is the receiver and the
			// member is itself being called.
			if obj := p.ChildByFieldName("object"); !sameNode(obj, cur) {
				return "", nil
			}
			call := p.Parent()
			if call == nil || call.Type() != jsNodeCallExpression {
				return "", nil
			}
			if fn := call.ChildByFieldName("function"); !sameNode(fn, p) {
				return "", nil
			}
			cur = call

		case jsNodeVariableDeclarator:
			if value := p.ChildByFieldName("value"); !sameNode(value, cur) {
				return "", nil
			}
			ident := p.ChildByFieldName("name")
			if ident == nil || ident.Type() != jsNodeIdentifier {
				return "", nil
			}
			return nodeText(ident, src), p

		case jsNodeAssignmentExpression:
			if right := p.ChildByFieldName("right"); !sameNode(right, cur) {
				return "", nil
			}
			left := p.ChildByFieldName("left")
			if left == nil || left.Type() != jsNodeIdentifier {
				return "", nil
			}
			return nodeText(left, src), p

		default:
			return "", nil
		}
	}
}

// callConsumed reports whether a call's result is consumed: assigned,
// awaited, or chained. A call standing alone as a full statement is
// fire-and-forget.
func callConsumed(node *sitter.Node) bool {
	cur := node
	p := cur.Parent()
	for p != nil && p.Type() == jsNodeParenthesized {
		cur = p
		p = cur.Parent()
	}
	if p == nil {
		return false
	}
	switch p.Type() {
	case jsNodeAwaitExpression, jsNodeVariableDeclarator, jsNodeAssignmentExpression:
		return true
	case jsNodeMemberExpression:
		obj := p.ChildByFieldName("object")
		return sameNode(obj, cur)
	}
	return false
}
