package analyzer

import (
	"strings"

	"github.com/Zachacious/go-fetchlint/internal/model"
)

// Method/body rule: requests resolving to GET, HEAD or OPTIONS must not
// carry a JSON-serialized body. A missing method defaults to GET; a
// dynamic method name is undecidable and the rule declines.

var bodylessMethods = map[string]bool{
	"GET":     true,
	"HEAD":    true,
	"OPTIONS": true,
}

func (s *State) checkMethodBody(site *CallSite) {
	if !s.cfg.Enabled(model.JSONInGetRequest) {
		return
	}
	opts := site.optionsObject()
	if opts == nil {
		return
	}

	method := "GET"
	if m := objectProperty(opts, "method", s.src); m != nil {
		if !isStringLiteral(m, s.src) {
			return
		}
		method = strings.ToUpper(stringLiteralValue(m, s.src))
	}
	if !bodylessMethods[method] {
		return
	}

	if body := objectProperty(opts, "body", s.src); isJSONStringifyCall(body, s.src) {
		s.report(site.Node, site, model.JSONInGetRequest, nil)
	}
}
