package analyzer

import (
	"github.com/Zachacious/go-fetchlint/internal/config"
	"github.com/Zachacious/go-fetchlint/internal/model"
	sitter "github.com/smacker/go-tree-sitter"
)

// Analyzer verifies contract properties around calls to one target
// function in a JavaScript syntax tree: error handling, status checks,
// content-type negotiation, timeouts, query encoding, body/method
// compatibility and chaining style.
//
// An Analyzer is stateless between units and safe for concurrent use;
// each AnalyzeTree call builds its own per-unit State.
type Analyzer struct {
	cfg *config.Config
}

// New creates an Analyzer. A nil config selects the defaults.
func New(cfg *config.Config) *Analyzer {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Analyzer{cfg: cfg}
}

// AnalyzeTree runs the detectors over one unit's tree in a single
// pre-order pass and returns the diagnostics in traversal-completion
// order. The tree and src must stay valid for the duration of the call;
// nothing from the tree is retained afterwards.
func (a *Analyzer) AnalyzeTree(root *sitter.Node, src []byte) []model.Diagnostic {
	s := newState(src, a.cfg)

	w := newWalker()
	w.OnExit(s.flushErrorHandling)
	w.OnExit(s.flushStatusChecks)
	w.Walk(root, s.visit)

	return s.diags
}

// visit dispatches a node to the detectors that observe its kind.
func (s *State) visit(n *sitter.Node) {
	if n.Type() != jsNodeCallExpression {
		return
	}

	if isTargetCall(n, s.src, s.cfg.Target) {
		s.visitTargetCall(n)
		return
	}

	if name := continuationName(n, s.src); name != "" {
		s.checkChainStyle(n)
		s.observeBoundContinuation(n, name)
	}
	s.observeHeaderGet(n)
	s.checkContentTypeReceive(n)
}

// visitTargetCall classifies a call site, records any binding it
// initializes, and runs the per-site detectors.
func (s *State) visitTargetCall(node *sitter.Node) {
	site := s.callSiteFor(node)

	if name, decl := bindingTarget(node, s.src); name != "" {
		s.bindings.record(name, enclosingScope(node), site)
		s.recordStatusBinding(site, name, decl)
	}

	s.checkErrorHandling(site)
	s.checkTimeout(site)
	s.checkContentTypeSend(site)
	s.checkMethodBody(site)
	s.checkQueryEncoding(site)
}
