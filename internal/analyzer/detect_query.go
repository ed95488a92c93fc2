package analyzer

import (
	"strings"

	"github.com/Zachacious/go-fetchlint/internal/model"
	sitter "github.com/smacker/go-tree-sitter"
)

// Query-encoding rule: a computed URL with at least one dynamic fragment
// must encode its parameters. A URL constructor or query-string builder
// anywhere in the argument subtree passes outright; bare
// encodeURIComponent passes only when requireQueryBuilder is off.
// Literal-only URLs are exempt.

func (s *State) checkQueryEncoding(site *CallSite) {
	wantUnsafe := s.cfg.Enabled(model.UnsafeQueryParam)
	wantBuilder := s.cfg.Enabled(model.PreferURLSearchParams)
	if !wantUnsafe && !wantBuilder {
		return
	}
	url := site.URLArg
	if url == nil || !isComputedURL(url, s.src) {
		return
	}

	hasEncode, hasBuilder := scanURLEncoding(url, s.src)
	switch {
	case hasBuilder:
		return
	case hasEncode:
		if s.cfg.RequireQueryBuilder && wantBuilder {
			s.report(site.Node, site, model.PreferURLSearchParams, nil)
		}
	case wantUnsafe:
		s.report(site.Node, site, model.UnsafeQueryParam, nil)
	}
}

// isComputedURL reports whether the URL argument is a string composed
// with at least one dynamic fragment: a concatenation with a non-literal
// operand, or a template string with a substitution.
func isComputedURL(url *sitter.Node, src []byte) bool {
	switch url.Type() {
	case jsNodeTemplateString:
		return strings.Contains(nodeText(url, src), "${")
	case jsNodeBinaryExpression:
		return scanShallow(url, func(n *sitter.Node) bool {
			switch n.Type() {
			case jsNodeIdentifier, jsNodeMemberExpression, jsNodeCallExpression,
				jsNodeSubscriptExpression, jsNodeTemplateSubstitution:
				return true
			}
			return false
		})
	}
	return false
}

// scanURLEncoding looks through the URL argument subtree for a
// component-encoding call and for a URL or query-string builder.
func scanURLEncoding(url *sitter.Node, src []byte) (hasEncode, hasBuilder bool) {
	scanShallow(url, func(n *sitter.Node) bool {
		switch n.Type() {
		case jsNodeCallExpression:
			fn := n.ChildByFieldName("function")
			if fn != nil && fn.Type() == jsNodeIdentifier && nodeText(fn, src) == "encodeURIComponent" {
				hasEncode = true
			}
		case jsNodeNewExpression:
			ctor := n.ChildByFieldName("constructor")
			if ctor != nil && ctor.Type() == jsNodeIdentifier {
				switch nodeText(ctor, src) {
				case "URL", "URLSearchParams":
					hasBuilder = true
				}
			}
		case jsNodeIdentifier:
			if nodeText(n, src) == "URLSearchParams" {
				hasBuilder = true
			}
		}
		return false
	})
	return hasEncode, hasBuilder
}
