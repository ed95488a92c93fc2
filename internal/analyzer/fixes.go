package analyzer

import (
	"github.com/Zachacious/go-fetchlint/internal/model"
	sitter "github.com/smacker/go-tree-sitter"
)

const contentTypeProperty = `"Content-Type": "application/json"`

// insertHeadersFix builds the splice adding a headers object to an
// options object literal that has none. Returns nil when the target is
// not an object literal; the violation is then reported without a fix.
func insertHeadersFix(options *sitter.Node) *model.Fix {
	if options == nil || options.Type() != jsNodeObject {
		return nil
	}
	if options.NamedChildCount() == 0 {
		return &model.Fix{
			Start:   options.StartByte(),
			End:     options.EndByte(),
			NewText: `{ headers: { ` + contentTypeProperty + ` } }`,
		}
	}
	// Insert directly after the opening brace, ahead of the first property.
	at := options.StartByte() + 1
	return &model.Fix{
		Start:   at,
		End:     at,
		NewText: ` headers: { ` + contentTypeProperty + ` },`,
	}
}

// appendContentTypeFix builds the splice adding the content-type entry as
// the last property of an existing headers object literal, replacing the
// object entirely when it is empty. Returns nil for non-object shapes.
func appendContentTypeFix(headers *sitter.Node) *model.Fix {
	if headers == nil || headers.Type() != jsNodeObject {
		return nil
	}
	count := int(headers.NamedChildCount())
	if count == 0 {
		return &model.Fix{
			Start:   headers.StartByte(),
			End:     headers.EndByte(),
			NewText: `{ ` + contentTypeProperty + ` }`,
		}
	}
	last := headers.NamedChild(count - 1)
	at := last.EndByte()
	return &model.Fix{
		Start:   at,
		End:     at,
		NewText: `, ` + contentTypeProperty,
	}
}
