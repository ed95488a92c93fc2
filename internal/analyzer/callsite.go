package analyzer

import (
	sitter "github.com/smacker/go-tree-sitter"
)

// CallSite is a call to the target function, identified by a bare
// unqualified identifier match. Renamed or wrapped targets are invisible;
// that limitation is deliberate, as no alias resolution is performed.
type CallSite struct {
	// Node is the call_expression node.
	Node *sitter.Node
	// URLArg is the first argument, nil when the call has no arguments.
	URLArg *sitter.Node
	// OptionsArg is the second argument, nil when absent.
	OptionsArg *sitter.Node
}

// isTargetCall reports whether node is a call whose callee is a bare
// identifier equal to target.
func isTargetCall(node *sitter.Node, src []byte, target string) bool {
	if node == nil || node.Type() != jsNodeCallExpression {
		return false
	}
	fn := node.ChildByFieldName("function")
	if fn == nil || fn.Type() != jsNodeIdentifier {
		return false
	}
	return nodeText(fn, src) == target
}

// newCallSite classifies a call node, capturing its URL and options
// arguments.
func newCallSite(node *sitter.Node) *CallSite {
	site := &CallSite{Node: node}
	args := callArguments(node)
	if len(args) > 0 {
		site.URLArg = args[0]
	}
	if len(args) > 1 {
		site.OptionsArg = args[1]
	}
	return site
}

// optionsObject returns the options argument when it is an object
// literal. Any other shape is undecidable for option-inspecting rules.
func (c *CallSite) optionsObject() *sitter.Node {
	if c.OptionsArg == nil {
		return nil
	}
	opts := unwrapExpr(c.OptionsArg)
	if opts == nil || opts.Type() != jsNodeObject {
		return nil
	}
	return opts
}

// urlLiteral returns the string value of the URL argument when it is a
// plain string literal, and whether it was one.
func (c *CallSite) urlLiteral(src []byte) (string, bool) {
	if c.URLArg == nil || c.URLArg.Type() != jsNodeString {
		return "", false
	}
	return stringLiteralValue(c.URLArg, src), true
}
