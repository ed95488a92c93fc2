package analyzer

import (
	"github.com/Zachacious/go-fetchlint/internal/model"
	sitter "github.com/smacker/go-tree-sitter"
)

// Error-handling rule: a call site whose result is consumed must either
// sit inside an exception handler's protected region or carry a terminal
// catch-style continuation. Findings are deferred, since a .catch() on
// the bound variable may appear lexically after the call.

func (s *State) checkErrorHandling(site *CallSite) {
	if !s.cfg.Enabled(model.MissingErrorHandling) {
		return
	}
	if !callConsumed(site.Node) {
		return
	}
	if insideTryBlock(site.Node) {
		return
	}
	if chainHandlesErrors(chainAbove(site.Node, s.src)) {
		return
	}
	s.pendingErrors = append(s.pendingErrors, site)
}

// observeBoundContinuation marks a pending error finding satisfied when a
// catch-style continuation is attached to the bound variable, directly
// (`p.catch(log)`) or further down a chain (`p.then(a).catch(log)`).
func (s *State) observeBoundContinuation(call *sitter.Node, name string) {
	handles := name == continuationCatch ||
		(name == continuationThen && len(callArguments(call)) >= 2)
	if !handles {
		return
	}

	fn := call.ChildByFieldName("function")
	receiver := unwrapExpr(fn.ChildByFieldName("object"))
	for continuationName(receiver, s.src) != "" {
		inner := receiver.ChildByFieldName("function")
		receiver = unwrapExpr(inner.ChildByFieldName("object"))
	}
	if receiver == nil || receiver.Type() != jsNodeIdentifier {
		return
	}
	if site := s.bindings.lookup(nodeText(receiver, s.src), call); site != nil {
		s.errorsHandled[keyOf(site.Node)] = true
	}
}

func (s *State) flushErrorHandling() {
	for _, site := range s.pendingErrors {
		if s.errorsHandled[keyOf(site.Node)] {
			continue
		}
		s.report(site.Node, site, model.MissingErrorHandling, nil)
	}
}
