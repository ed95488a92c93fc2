package model

// RuleKind identifies one contract check applied to a fetch call site.
type RuleKind string

const (
	MissingErrorHandling    RuleKind = "missingErrorHandling"
	MissingStatusCheck      RuleKind = "missingStatusCheck"
	MissingContentType      RuleKind = "missingContentType"
	IncorrectContentType    RuleKind = "incorrectContentType"
	MissingContentTypeCheck RuleKind = "missingContentTypeCheck"
	MissingTimeout          RuleKind = "missingTimeout"
	PreferAsyncAwait        RuleKind = "preferAsyncAwait"
	JSONInGetRequest        RuleKind = "jsonInGetRequest"
	UnsafeQueryParam        RuleKind = "unsafeQueryParam"
	PreferURLSearchParams   RuleKind = "preferURLSearchParams"
)

// AllRules lists every rule kind in a stable order.
var AllRules = []RuleKind{
	MissingErrorHandling,
	MissingStatusCheck,
	MissingContentType,
	IncorrectContentType,
	MissingContentTypeCheck,
	MissingTimeout,
	PreferAsyncAwait,
	JSONInGetRequest,
	UnsafeQueryParam,
	PreferURLSearchParams,
}

// messages maps each rule kind to its human-readable diagnostic text.
var messages = map[RuleKind]string{
	MissingErrorHandling:    "fetch call without error handling; wrap it in try/catch or add a .catch() handler",
	MissingStatusCheck:      "response status is never checked; inspect .ok or .status before using the response",
	MissingContentType:      "JSON body is sent without a Content-Type header",
	IncorrectContentType:    `Content-Type should contain "application/json" when sending a JSON body`,
	MissingContentTypeCheck: "response.json() is called without verifying the Content-Type header",
	MissingTimeout:          "fetch call without a timeout; pass an AbortSignal via the signal option",
	PreferAsyncAwait:        "prefer async/await over promise chaining",
	JSONInGetRequest:        "GET-like requests must not carry a JSON body",
	UnsafeQueryParam:        "query parameter is interpolated without encoding; use URLSearchParams or encodeURIComponent",
	PreferURLSearchParams:   "prefer URLSearchParams over manual query-string encoding",
}

// Message returns the diagnostic text for a rule kind.
func Message(kind RuleKind) string {
	return messages[kind]
}

// Position is a location in the analyzed source unit.
type Position struct {
	// Line is the 1-based source line.
	Line int `json:"line" yaml:"line"`
	// Col is the 0-based column within the line.
	Col int `json:"col" yaml:"col"`
	// Offset is the byte offset from the start of the unit.
	Offset uint32 `json:"offset" yaml:"offset"`
}

// Fix is a single self-contained text splice. Applying it in isolation
// yields syntactically valid source; fixes from one pass never overlap.
type Fix struct {
	// Start is the byte offset where the replacement begins.
	Start uint32 `json:"start" yaml:"start"`
	// End is the byte offset where the replacement ends. Start == End
	// means a pure insertion.
	End uint32 `json:"end" yaml:"end"`
	// NewText is the replacement text.
	NewText string `json:"newText" yaml:"newText"`
}

// Apply splices the fix into src and returns the result.
func (f Fix) Apply(src []byte) []byte {
	out := make([]byte, 0, len(src)+len(f.NewText))
	out = append(out, src[:f.Start]...)
	out = append(out, f.NewText...)
	out = append(out, src[f.End:]...)
	return out
}

// Diagnostic is one contract violation reported for a call site.
// At most one diagnostic exists per (call site, rule) pair.
type Diagnostic struct {
	// Pos is the start of the node the diagnostic is anchored to.
	Pos Position `json:"pos" yaml:"pos"`
	// End is the end of the anchored node.
	End Position `json:"end" yaml:"end"`
	// Rule is the contract check that failed.
	Rule RuleKind `json:"rule" yaml:"rule"`
	// Message is the human-readable description.
	Message string `json:"message" yaml:"message"`
	// Fix, when non-nil, is a minimal splice that resolves the violation.
	Fix *Fix `json:"fix,omitempty" yaml:"fix,omitempty"`
}
