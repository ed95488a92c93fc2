package analyzer

import (
	"github.com/Zachacious/go-fetchlint/internal/model"
	sitter "github.com/smacker/go-tree-sitter"
)

// Status-check rule: a call site bound to a variable must be followed by
// a check of .ok or .status on that variable. The check often appears
// lexically after the call, so findings collect during the walk and the
// sibling scan runs at end of traversal.

var statusProperties = []string{"ok", "status"}

func (s *State) recordStatusBinding(site *CallSite, name string, declNode *sitter.Node) {
	if !s.cfg.Enabled(model.MissingStatusCheck) {
		return
	}
	s.pendingStatus = append(s.pendingStatus, &pendingBinding{
		site:     site,
		name:     name,
		declNode: declNode,
	})
}

func (s *State) flushStatusChecks() {
	for _, pb := range s.pendingStatus {
		if hasSiblingCheck(pb.declNode, pb.name, statusProperties, s.src) {
			continue
		}
		s.report(pb.site.Node, pb.site, model.MissingStatusCheck, nil)
	}
}
