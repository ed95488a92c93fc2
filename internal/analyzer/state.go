package analyzer

import (
	"github.com/Zachacious/go-fetchlint/internal/config"
	"github.com/Zachacious/go-fetchlint/internal/model"
	sitter "github.com/smacker/go-tree-sitter"
)

// diagKey dedupes diagnostics per (call site, rule).
type diagKey struct {
	site nodeKey
	rule model.RuleKind
}

// pendingBinding is a provisional status-check finding: a call site bound
// to a variable, awaiting proof of a later .ok/.status access.
type pendingBinding struct {
	site *CallSite
	name string
	// declNode anchors the sibling scan at the binding statement.
	declNode *sitter.Node
}

// State is the per-unit analysis context threaded through one traversal.
// It owns the shared trackers and the diagnostic sink. Nothing in it is
// global, so a host may analyze units in parallel, one State each.
type State struct {
	src []byte
	cfg *config.Config

	bindings *bindingTracker

	// sites maps call nodes to their classified call sites so a node
	// reached through several paths yields one CallSite.
	sites map[nodeKey]*CallSite

	// Deferred findings, flushed at end of traversal. A satisfying check
	// may appear lexically after the call site, so these cannot be
	// reported during the walk.
	pendingStatus []*pendingBinding
	pendingErrors []*CallSite
	errorsHandled map[nodeKey]bool

	// contentTypeChecked records call sites whose response had a
	// headers.get('content-type') inspection, so a later .json() use can
	// tell whether a check preceded it in source order.
	contentTypeChecked map[nodeKey]bool

	reported map[diagKey]bool
	diags    []model.Diagnostic
}

func newState(src []byte, cfg *config.Config) *State {
	return &State{
		src:                src,
		cfg:                cfg,
		bindings:           newBindingTracker(),
		sites:              make(map[nodeKey]*CallSite),
		errorsHandled:      make(map[nodeKey]bool),
		contentTypeChecked: make(map[nodeKey]bool),
		reported:           make(map[diagKey]bool),
	}
}

// callSiteFor returns the CallSite for a target call node, classifying it
// on first sight.
func (s *State) callSiteFor(node *sitter.Node) *CallSite {
	key := keyOf(node)
	if site, ok := s.sites[key]; ok {
		return site
	}
	site := newCallSite(node)
	s.sites[key] = site
	return site
}

// report records one diagnostic for (site, rule), anchored at node.
// Duplicate reports for the same pair are dropped.
func (s *State) report(node *sitter.Node, site *CallSite, rule model.RuleKind, fix *model.Fix) {
	key := diagKey{site: keyOf(site.Node), rule: rule}
	if s.reported[key] {
		return
	}
	s.reported[key] = true

	s.diags = append(s.diags, model.Diagnostic{
		Pos:     startPosition(node),
		End:     endPosition(node),
		Rule:    rule,
		Message: model.Message(rule),
		Fix:     fix,
	})
}

func startPosition(n *sitter.Node) model.Position {
	return model.Position{
		Line:   int(n.StartPoint().Row) + 1,
		Col:    int(n.StartPoint().Column),
		Offset: n.StartByte(),
	}
}

func endPosition(n *sitter.Node) model.Position {
	return model.Position{
		Line:   int(n.EndPoint().Row) + 1,
		Col:    int(n.EndPoint().Column),
		Offset: n.EndByte(),
	}
}
