package analyzer

// tree-sitter-javascript node kinds the engine dispatches on.
const (
	jsNodeProgram                = "program"
	jsNodeCallExpression         = "call_expression"
	jsNodeNewExpression          = "new_expression"
	jsNodeMemberExpression       = "member_expression"
	jsNodeIdentifier             = "identifier"
	jsNodePropertyIdentifier     = "property_identifier"
	jsNodeShorthandProperty      = "shorthand_property_identifier"
	jsNodeArguments              = "arguments"
	jsNodeObject                 = "object"
	jsNodePair                   = "pair"
	jsNodeString                 = "string"
	jsNodeStringFragment         = "string_fragment"
	jsNodeTemplateString         = "template_string"
	jsNodeTemplateSubstitution   = "template_substitution"
	jsNodeNumber                 = "number"
	jsNodeArray                  = "array"
	jsNodeBinaryExpression       = "binary_expression"
	jsNodeAwaitExpression        = "await_expression"
	jsNodeParenthesized          = "parenthesized_expression"
	jsNodeExpressionStatement    = "expression_statement"
	jsNodeVariableDeclarator     = "variable_declarator"
	jsNodeLexicalDeclaration     = "lexical_declaration"
	jsNodeVariableDeclaration    = "variable_declaration"
	jsNodeAssignmentExpression   = "assignment_expression"
	jsNodeStatementBlock         = "statement_block"
	jsNodeTryStatement           = "try_statement"
	jsNodeArrowFunction          = "arrow_function"
	jsNodeFunctionDeclaration    = "function_declaration"
	jsNodeFunctionExpression     = "function_expression"
	jsNodeFunction               = "function"
	jsNodeGeneratorFunction      = "generator_function"
	jsNodeGeneratorFunctionDecl  = "generator_function_declaration"
	jsNodeMethodDefinition       = "method_definition"
	jsNodeClassStaticBlock       = "class_static_block"
	jsNodeSubscriptExpression    = "subscript_expression"
)

// continuation method names of the promise protocol.
const (
	continuationThen    = "then"
	continuationCatch   = "catch"
	continuationFinally = "finally"
)

// isFunctionKind reports whether a node kind opens a new lexical function
// scope for the binding tracker.
func isFunctionKind(kind string) bool {
	switch kind {
	case jsNodeArrowFunction, jsNodeFunctionDeclaration, jsNodeFunctionExpression,
		jsNodeFunction, jsNodeGeneratorFunction, jsNodeGeneratorFunctionDecl,
		jsNodeMethodDefinition, jsNodeClassStaticBlock:
		return true
	}
	return false
}
