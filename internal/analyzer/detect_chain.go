package analyzer

import (
	"github.com/Zachacious/go-fetchlint/internal/model"
	sitter "github.com/smacker/go-tree-sitter"
)

// Chaining-style rule: any continuation call whose chain resolves back to
// a target call reports preferAsyncAwait, anchored at the originating
// call and at most once per anchor regardless of chain length.

func (s *State) checkChainStyle(call *sitter.Node) {
	if !s.cfg.Enabled(model.PreferAsyncAwait) {
		return
	}
	anchor := resolveAnchor(call, s.src, s.cfg.Target)
	if anchor == nil {
		return
	}
	site := s.callSiteFor(anchor)
	s.report(site.Node, site, model.PreferAsyncAwait, nil)
}
