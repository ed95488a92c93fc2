package analyzer

import (
	"github.com/Zachacious/go-fetchlint/internal/model"
	sitter "github.com/smacker/go-tree-sitter"
)

// Timeout rule: every call site must pass an abort signal. Accepted
// shapes are AbortSignal.timeout(...) and any member access ending in
// .signal; the latter assumes a paired timer without proof, a known
// false-negative gap kept on purpose. A shorthand { signal } property is
// treated as the same assumed-timer case.

func (s *State) checkTimeout(site *CallSite) {
	if !s.cfg.Enabled(model.MissingTimeout) {
		return
	}
	if site.OptionsArg == nil {
		s.report(site.Node, site, model.MissingTimeout, nil)
		return
	}
	opts := site.optionsObject()
	if opts == nil {
		// Dynamic options value: undecidable, never guess.
		return
	}

	signal := objectProperty(opts, "signal", s.src)
	if signal == nil || !isTimeoutSignal(signal, s.src) {
		s.report(site.Node, site, model.MissingTimeout, nil)
	}
}

func isTimeoutSignal(value *sitter.Node, src []byte) bool {
	if value.Type() == jsNodeShorthandProperty {
		return true
	}
	value = unwrapExpr(value)
	if value == nil {
		return false
	}
	switch value.Type() {
	case jsNodeCallExpression:
		fn := value.ChildByFieldName("function")
		if fn == nil || fn.Type() != jsNodeMemberExpression {
			return false
		}
		obj := fn.ChildByFieldName("object")
		return obj != nil && obj.Type() == jsNodeIdentifier &&
			nodeText(obj, src) == "AbortSignal" &&
			nodeText(fn.ChildByFieldName("property"), src) == "timeout"

	case jsNodeMemberExpression:
		return nodeText(value.ChildByFieldName("property"), src) == "signal"
	}
	return false
}
