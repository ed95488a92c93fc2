package analyzer

import (
	"strings"

	"github.com/Zachacious/go-fetchlint/internal/model"
	sitter "github.com/smacker/go-tree-sitter"
)

// Send side: an options object whose body is a JSON-serialization call
// must declare a content-type header containing "application/json".
// Receive side: a .json() continuation outside an exception handler needs
// a prior content-type inspection on the same response, unless the URL
// literal itself ends in ".json".

const jsonMediaType = "application/json"

func (s *State) checkContentTypeSend(site *CallSite) {
	if !s.cfg.Enabled(model.MissingContentType) && !s.cfg.Enabled(model.IncorrectContentType) {
		return
	}
	opts := site.optionsObject()
	if opts == nil {
		return
	}
	body := objectProperty(opts, "body", s.src)
	if body == nil || !isJSONStringifyCall(body, s.src) {
		return
	}

	headers := objectProperty(opts, "headers", s.src)
	if headers == nil {
		s.reportMissingContentType(site, insertHeadersFix(opts))
		return
	}

	headers = unwrapExpr(headers)
	if headers == nil {
		return
	}
	if headers.Type() != jsNodeObject {
		// Literal non-object shapes plainly carry no content-type, but
		// there is nothing sane to splice into. Dynamic shapes are
		// undecidable and skipped entirely.
		switch headers.Type() {
		case jsNodeString, jsNodeTemplateString, jsNodeArray, jsNodeNumber:
			s.reportMissingContentType(site, nil)
		}
		return
	}

	ct := objectProperty(headers, "content-type", s.src)
	if ct == nil {
		s.reportMissingContentType(site, appendContentTypeFix(headers))
		return
	}
	if !isStringLiteral(ct, s.src) {
		return
	}
	value := strings.ToLower(stringLiteralValue(ct, s.src))
	if !strings.Contains(value, jsonMediaType) && s.cfg.Enabled(model.IncorrectContentType) {
		s.report(site.Node, site, model.IncorrectContentType, nil)
	}
}

func (s *State) reportMissingContentType(site *CallSite, fix *model.Fix) {
	if s.cfg.Enabled(model.MissingContentType) {
		s.report(site.Node, site, model.MissingContentType, fix)
	}
}

// observeHeaderGet records a headers.get('content-type') inspection on a
// response, satisfying the receive-side rule for that call site.
func (s *State) observeHeaderGet(call *sitter.Node) {
	fn := call.ChildByFieldName("function")
	if fn == nil || fn.Type() != jsNodeMemberExpression {
		return
	}
	if nodeText(fn.ChildByFieldName("property"), s.src) != "get" {
		return
	}

	// Receiver must be <response>.headers.
	headers := fn.ChildByFieldName("object")
	if headers == nil || headers.Type() != jsNodeMemberExpression {
		return
	}
	if nodeText(headers.ChildByFieldName("property"), s.src) != "headers" {
		return
	}
	site := s.resolveResponse(headers.ChildByFieldName("object"))
	if site == nil {
		return
	}

	args := callArguments(call)
	if len(args) == 0 {
		return
	}
	if strings.ToLower(stringLiteralValue(args[0], s.src)) == "content-type" {
		s.contentTypeChecked[keyOf(site.Node)] = true
	}
}

// checkContentTypeReceive fires on <response>.json() calls.
func (s *State) checkContentTypeReceive(call *sitter.Node) {
	if !s.cfg.Enabled(model.MissingContentTypeCheck) {
		return
	}
	fn := call.ChildByFieldName("function")
	if fn == nil || fn.Type() != jsNodeMemberExpression {
		return
	}
	if nodeText(fn.ChildByFieldName("property"), s.src) != "json" {
		return
	}
	site := s.resolveResponse(fn.ChildByFieldName("object"))
	if site == nil {
		return
	}

	if insideTryBlock(call) {
		return
	}
	// The extension exemption only inspects a literal first argument;
	// computed URLs get no exemption.
	if url, ok := site.urlLiteral(s.src); ok && strings.HasSuffix(url, ".json") {
		return
	}
	if s.contentTypeChecked[keyOf(site.Node)] {
		return
	}
	s.report(site.Node, site, model.MissingContentTypeCheck, nil)
}

// resolveResponse maps an expression denoting a response back to its call
// site: either a variable bound to one, or a direct (awaited) target
// call. Anything else is undecidable.
func (s *State) resolveResponse(expr *sitter.Node) *CallSite {
	expr = unwrapExpr(expr)
	if expr == nil {
		return nil
	}
	if expr.Type() == jsNodeIdentifier {
		return s.bindings.lookup(nodeText(expr, s.src), expr)
	}
	if isTargetCall(expr, s.src, s.cfg.Target) {
		return s.callSiteFor(expr)
	}
	return nil
}
