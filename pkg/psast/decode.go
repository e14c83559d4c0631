package psast

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/Sumatoshi-tech/powerfang/pkg/pstoken"
)

// ErrInvalidDocument is returned when a serialized tree document is
// malformed: missing fields, wrong field types or an unknown node kind.
var ErrInvalidDocument = errors.New("invalid tree document")

// DecodeJSON decodes one serialized syntax node from JSON.
func DecodeJSON(data []byte) (Node, error) {
	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var doc any

	if err := decoder.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	return decodeNode(doc)
}

// DecodeYAML decodes one serialized syntax node from YAML.
func DecodeYAML(data []byte) (Node, error) {
	var doc any

	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	return decodeNode(doc)
}

// DecodeStatement decodes a JSON document and requires the result to be a
// statement.
func DecodeStatement(data []byte) (Statement, error) {
	node, err := DecodeJSON(data)
	if err != nil {
		return nil, err
	}

	statement, ok := node.(Statement)
	if !ok {
		return nil, fmt.Errorf("%w: %T is not a statement", ErrInvalidDocument, node)
	}

	return statement, nil
}

func decodeNode(doc any) (Node, error) {
	obj, ok := doc.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: node must be an object, got %T", ErrInvalidDocument, doc)
	}

	kind, err := stringField(obj, "kind")
	if err != nil {
		return nil, err
	}

	if decode, found := nodeDecoders[kind]; found {
		return decode(obj)
	}

	return nil, fmt.Errorf("%w: unknown node kind %q", ErrInvalidDocument, kind)
}

// nodeDecoders maps document kinds to their decoders. Populated in init to
// allow the mutual recursion with decodeNode.
var nodeDecoders map[string]func(map[string]any) (Node, error)

//nolint:funlen // A flat registry of every node kind reads better unsplit.
func init() {
	nodeDecoders = map[string]func(map[string]any) (Node, error){
		"Constant":              decodeConstant,
		"StringConstant":        decodeStringConstant,
		"ExpandableString":      decodeExpandableString,
		"ArrayLiteral":          decodeArrayLiteral,
		"ArrayExpression":       decodeArrayExpression,
		"Hashtable":             decodeHashtable,
		"Variable":              decodeVariable,
		"Member":                decodeMember,
		"InvokeMember":          decodeInvokeMember,
		"Index":                 decodeIndex,
		"Unary":                 decodeUnary,
		"Binary":                decodeBinary,
		"Ternary":               decodeTernary,
		"Paren":                 decodeParen,
		"SubExpression":         decodeSubExpression,
		"TypeExpression":        decodeTypeExpression,
		"Convert":               decodeConvert,
		"Attributed":            decodeAttributed,
		"UsingExpression":       decodeUsingExpression,
		"ScriptBlockExpression": decodeScriptBlockExpression,

		"Pipeline":          decodePipeline,
		"Command":           decodeCommand,
		"CommandParameter":  decodeCommandParameter,
		"CommandExpression": decodeCommandExpression,
		"PipelineChain":     decodePipelineChain,
		"Assignment":        decodeAssignment,
		"If":                decodeIf,
		"While":             decodeWhile,
		"DoWhile":           decodeDoWhile,
		"DoUntil":           decodeDoUntil,
		"For":               decodeFor,
		"ForEach":           decodeForEach,
		"ControlFlow":       decodeControlFlow,
		"Function":          decodeFunction,
		"TypeDefinition":    decodeTypeDefinition,
		"Trap":              decodeTrap,
		"UsingDirective":    decodeUsingDirective,

		"FileRedirection":    decodeFileRedirection,
		"MergingRedirection": decodeMergingRedirection,

		"Attribute":       decodeAttributeNode,
		"TypeConstraint":  decodeTypeConstraintNode,
		"TypeName":        decodeSimpleTypeName,
		"ArrayTypeName":   decodeArrayTypeName,
		"GenericTypeName": decodeGenericTypeName,

		"Property":   decodePropertyMember,
		"Method":     decodeMethodMember,
		"EnumMember": decodeEnumMember,

		"Switch":          func(map[string]any) (Node, error) { return &SwitchStatement{}, nil },
		"Try":             func(map[string]any) (Node, error) { return &TryStatement{}, nil },
		"Block":           func(map[string]any) (Node, error) { return &BlockStatement{}, nil },
		"Data":            func(map[string]any) (Node, error) { return &DataStatement{}, nil },
		"Configuration":   func(map[string]any) (Node, error) { return &ConfigurationDefinition{}, nil },
		"DynamicKeyword":  func(map[string]any) (Node, error) { return &DynamicKeywordStatement{}, nil },
		"ErrorStatement":  func(map[string]any) (Node, error) { return &ErrorStatement{}, nil },
		"ErrorExpression": func(map[string]any) (Node, error) { return &ErrorExpression{}, nil },
		"BaseCtorInvokeMember": func(map[string]any) (Node, error) {
			return &BaseCtorInvokeMemberExpression{}, nil
		},
	}
}

/* ---------- field helpers ---------- */

func stringField(obj map[string]any, key string) (string, error) {
	value, found := obj[key]
	if !found {
		return "", fmt.Errorf("%w: missing field %q", ErrInvalidDocument, key)
	}

	text, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("%w: field %q must be a string, got %T", ErrInvalidDocument, key, value)
	}

	return text, nil
}

func optStringField(obj map[string]any, key string) string {
	text, _ := obj[key].(string)

	return text
}

func boolField(obj map[string]any, key string) bool {
	value, _ := obj[key].(bool)

	return value
}

func sliceField(obj map[string]any, key string) ([]any, error) {
	value, found := obj[key]
	if !found || value == nil {
		return nil, nil
	}

	items, ok := value.([]any)
	if !ok {
		return nil, fmt.Errorf("%w: field %q must be a list, got %T", ErrInvalidDocument, key, value)
	}

	return items, nil
}

func objectField(obj map[string]any, key string) (map[string]any, error) {
	value, found := obj[key]
	if !found || value == nil {
		return nil, nil
	}

	child, ok := value.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w: field %q must be an object, got %T", ErrInvalidDocument, key, value)
	}

	return child, nil
}

func tokenField(obj map[string]any, key string) (pstoken.Kind, error) {
	name, err := stringField(obj, key)
	if err != nil {
		return pstoken.Unknown, err
	}

	kind, err := pstoken.FromName(name)
	if err != nil {
		return pstoken.Unknown, fmt.Errorf("%w: field %q: %w", ErrInvalidDocument, key, err)
	}

	return kind, nil
}

func optTokenField(obj map[string]any, key string) (pstoken.Kind, error) {
	if _, found := obj[key]; !found {
		return pstoken.Unknown, nil
	}

	return tokenField(obj, key)
}

func expressionField(obj map[string]any, key string) (Expression, error) {
	value, found := obj[key]
	if !found || value == nil {
		return nil, fmt.Errorf("%w: missing field %q", ErrInvalidDocument, key)
	}

	return decodeExpressionValue(value, key)
}

func optExpressionField(obj map[string]any, key string) (Expression, error) {
	value, found := obj[key]
	if !found || value == nil {
		return nil, nil //nolint:nilnil // absent optional field, not an error
	}

	return decodeExpressionValue(value, key)
}

func decodeExpressionValue(value any, key string) (Expression, error) {
	node, err := decodeNode(value)
	if err != nil {
		return nil, err
	}

	expression, ok := node.(Expression)
	if !ok {
		return nil, fmt.Errorf("%w: field %q: %T is not an expression", ErrInvalidDocument, key, node)
	}

	return expression, nil
}

func statementField(obj map[string]any, key string) (Statement, error) {
	value, found := obj[key]
	if !found || value == nil {
		return nil, fmt.Errorf("%w: missing field %q", ErrInvalidDocument, key)
	}

	return decodeStatementValue(value, key)
}

func optStatementField(obj map[string]any, key string) (Statement, error) {
	value, found := obj[key]
	if !found || value == nil {
		return nil, nil //nolint:nilnil // absent optional field, not an error
	}

	return decodeStatementValue(value, key)
}

func decodeStatementValue(value any, key string) (Statement, error) {
	node, err := decodeNode(value)
	if err != nil {
		return nil, err
	}

	statement, ok := node.(Statement)
	if !ok {
		return nil, fmt.Errorf("%w: field %q: %T is not a statement", ErrInvalidDocument, key, node)
	}

	return statement, nil
}

func expressionList(obj map[string]any, key string) ([]Expression, error) {
	items, err := sliceField(obj, key)
	if err != nil || items == nil {
		return nil, err
	}

	expressions := make([]Expression, 0, len(items))

	for _, item := range items {
		expression, exprErr := decodeExpressionValue(item, key)
		if exprErr != nil {
			return nil, exprErr
		}

		expressions = append(expressions, expression)
	}

	return expressions, nil
}

func statementList(obj map[string]any, key string) ([]Statement, error) {
	items, err := sliceField(obj, key)
	if err != nil || items == nil {
		return nil, err
	}

	statements := make([]Statement, 0, len(items))

	for _, item := range items {
		statement, stmtErr := decodeStatementValue(item, key)
		if stmtErr != nil {
			return nil, stmtErr
		}

		statements = append(statements, statement)
	}

	return statements, nil
}

/* ---------- expression decoders ---------- */

// decodeConstant converts the document value to the renderer's constant
// types. JSON numbers arrive as json.Number; YAML delivers int or float64
// directly.
func decodeConstant(obj map[string]any) (Node, error) {
	value, found := obj["value"]
	if !found {
		return &ConstantExpression{Value: nil}, nil
	}

	switch typed := value.(type) {
	case nil, bool:
		return &ConstantExpression{Value: typed}, nil
	case json.Number:
		if integer, err := typed.Int64(); err == nil {
			return &ConstantExpression{Value: integer}, nil
		}

		floating, err := typed.Float64()
		if err != nil {
			return nil, fmt.Errorf("%w: bad number %q", ErrInvalidDocument, typed.String())
		}

		return &ConstantExpression{Value: floating}, nil
	case int:
		return &ConstantExpression{Value: int64(typed)}, nil
	case int64, float64, string:
		return &ConstantExpression{Value: typed}, nil
	default:
		return nil, fmt.Errorf("%w: unsupported constant type %T", ErrInvalidDocument, value)
	}
}

var stringKinds = map[string]StringKind{
	"BareWord":               BareWord,
	"SingleQuoted":           SingleQuoted,
	"DoubleQuoted":           DoubleQuoted,
	"SingleQuotedHereString": SingleQuotedHereString,
	"DoubleQuotedHereString": DoubleQuotedHereString,
}

func stringKindField(obj map[string]any) (StringKind, error) {
	name := optStringField(obj, "stringKind")
	if name == "" {
		return BareWord, nil
	}

	kind, found := stringKinds[name]
	if !found {
		return BareWord, fmt.Errorf("%w: unknown string kind %q", ErrInvalidDocument, name)
	}

	return kind, nil
}

func decodeStringConstant(obj map[string]any) (Node, error) {
	kind, err := stringKindField(obj)
	if err != nil {
		return nil, err
	}

	return &StringConstantExpression{Value: optStringField(obj, "value"), Kind: kind}, nil
}

func decodeExpandableString(obj map[string]any) (Node, error) {
	kind, err := stringKindField(obj)
	if err != nil {
		return nil, err
	}

	return &ExpandableStringExpression{Value: optStringField(obj, "value"), Kind: kind}, nil
}

func decodeArrayLiteral(obj map[string]any) (Node, error) {
	elements, err := expressionList(obj, "elements")
	if err != nil {
		return nil, err
	}

	return &ArrayLiteral{Elements: elements}, nil
}

func decodeArrayExpression(obj map[string]any) (Node, error) {
	block, err := statementBlockField(obj, "statements", "traps")
	if err != nil {
		return nil, err
	}

	return &ArrayExpression{SubExpression: block}, nil
}

func decodeSubExpression(obj map[string]any) (Node, error) {
	block, err := statementBlockField(obj, "statements", "traps")
	if err != nil {
		return nil, err
	}

	return &SubExpression{SubExpression: block}, nil
}

func decodeHashtable(obj map[string]any) (Node, error) {
	items, err := sliceField(obj, "entries")
	if err != nil {
		return nil, err
	}

	entries := make([]*HashtableEntry, 0, len(items))

	for _, item := range items {
		entryObj, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: hashtable entry must be an object, got %T", ErrInvalidDocument, item)
		}

		key, keyErr := expressionField(entryObj, "key")
		if keyErr != nil {
			return nil, keyErr
		}

		value, valueErr := statementField(entryObj, "value")
		if valueErr != nil {
			return nil, valueErr
		}

		entries = append(entries, &HashtableEntry{Key: key, Value: value})
	}

	return &HashtableExpression{Entries: entries}, nil
}

func decodeVariable(obj map[string]any) (Node, error) {
	path, err := stringField(obj, "path")
	if err != nil {
		return nil, err
	}

	return &VariableExpression{Path: path, Splatted: boolField(obj, "splatted")}, nil
}

func decodeMember(obj map[string]any) (Node, error) {
	target, err := expressionField(obj, "target")
	if err != nil {
		return nil, err
	}

	member, err := expressionField(obj, "member")
	if err != nil {
		return nil, err
	}

	return &MemberExpression{Target: target, Member: member, Static: boolField(obj, "static")}, nil
}

func decodeInvokeMember(obj map[string]any) (Node, error) {
	target, err := expressionField(obj, "target")
	if err != nil {
		return nil, err
	}

	member, err := expressionField(obj, "member")
	if err != nil {
		return nil, err
	}

	arguments, err := expressionList(obj, "arguments")
	if err != nil {
		return nil, err
	}

	return &InvokeMemberExpression{
		Target:    target,
		Member:    member,
		Arguments: arguments,
		Static:    boolField(obj, "static"),
	}, nil
}

func decodeIndex(obj map[string]any) (Node, error) {
	target, err := expressionField(obj, "target")
	if err != nil {
		return nil, err
	}

	index, err := expressionField(obj, "index")
	if err != nil {
		return nil, err
	}

	return &IndexExpression{Target: target, Index: index}, nil
}

func decodeUnary(obj map[string]any) (Node, error) {
	operator, err := tokenField(obj, "operator")
	if err != nil {
		return nil, err
	}

	child, err := expressionField(obj, "child")
	if err != nil {
		return nil, err
	}

	return &UnaryExpression{Operator: operator, Child: child}, nil
}

func decodeBinary(obj map[string]any) (Node, error) {
	left, err := expressionField(obj, "left")
	if err != nil {
		return nil, err
	}

	operator, err := tokenField(obj, "operator")
	if err != nil {
		return nil, err
	}

	right, err := expressionField(obj, "right")
	if err != nil {
		return nil, err
	}

	return &BinaryExpression{Left: left, Operator: operator, Right: right}, nil
}

func decodeTernary(obj map[string]any) (Node, error) {
	condition, err := expressionField(obj, "condition")
	if err != nil {
		return nil, err
	}

	ifTrue, err := expressionField(obj, "ifTrue")
	if err != nil {
		return nil, err
	}

	ifFalse, err := expressionField(obj, "ifFalse")
	if err != nil {
		return nil, err
	}

	return &TernaryExpression{Condition: condition, IfTrue: ifTrue, IfFalse: ifFalse}, nil
}

func decodeParen(obj map[string]any) (Node, error) {
	pipeline, err := statementField(obj, "pipeline")
	if err != nil {
		return nil, err
	}

	return &ParenExpression{Pipeline: pipeline}, nil
}

func decodeTypeExpression(obj map[string]any) (Node, error) {
	typeName, err := typeNameField(obj, "typeName")
	if err != nil {
		return nil, err
	}

	return &TypeExpression{TypeName: typeName}, nil
}

func decodeConvert(obj map[string]any) (Node, error) {
	typeName, err := typeNameField(obj, "typeName")
	if err != nil {
		return nil, err
	}

	child, err := expressionField(obj, "child")
	if err != nil {
		return nil, err
	}

	return &ConvertExpression{Type: &TypeConstraint{TypeName: typeName}, Child: child}, nil
}

func decodeAttributed(obj map[string]any) (Node, error) {
	attribute, err := attributeBaseField(obj, "attribute")
	if err != nil {
		return nil, err
	}

	child, err := expressionField(obj, "child")
	if err != nil {
		return nil, err
	}

	return &AttributedExpression{Attribute: attribute, Child: child}, nil
}

func decodeUsingExpression(obj map[string]any) (Node, error) {
	path, err := stringField(obj, "path")
	if err != nil {
		return nil, err
	}

	return &UsingExpression{Child: &VariableExpression{Path: path}}, nil
}

func decodeScriptBlockExpression(obj map[string]any) (Node, error) {
	bodyObj, err := objectField(obj, "body")
	if err != nil {
		return nil, err
	}

	block, err := decodeScriptBlock(bodyObj)
	if err != nil {
		return nil, err
	}

	return &ScriptBlockExpression{Body: block}, nil
}

/* ---------- statement decoders ---------- */

func decodePipeline(obj map[string]any) (Node, error) {
	elements, err := statementList(obj, "elements")
	if err != nil {
		return nil, err
	}

	return &Pipeline{Elements: elements, Background: boolField(obj, "background")}, nil
}

func decodeCommand(obj map[string]any) (Node, error) {
	operator, err := optTokenField(obj, "invocationOperator")
	if err != nil {
		return nil, err
	}

	items, err := sliceField(obj, "elements")
	if err != nil {
		return nil, err
	}

	elements := make([]Node, 0, len(items))

	for _, item := range items {
		element, elemErr := decodeNode(item)
		if elemErr != nil {
			return nil, elemErr
		}

		elements = append(elements, element)
	}

	redirections, err := redirectionList(obj)
	if err != nil {
		return nil, err
	}

	return &Command{InvocationOperator: operator, Elements: elements, Redirections: redirections}, nil
}

func decodeCommandParameter(obj map[string]any) (Node, error) {
	name, err := stringField(obj, "name")
	if err != nil {
		return nil, err
	}

	argument, err := optExpressionField(obj, "argument")
	if err != nil {
		return nil, err
	}

	return &CommandParameter{Name: name, Argument: argument}, nil
}

func decodeCommandExpression(obj map[string]any) (Node, error) {
	expression, err := expressionField(obj, "expression")
	if err != nil {
		return nil, err
	}

	redirections, err := redirectionList(obj)
	if err != nil {
		return nil, err
	}

	return &CommandExpression{Expression: expression, Redirections: redirections}, nil
}

func redirectionList(obj map[string]any) ([]Redirection, error) {
	items, err := sliceField(obj, "redirections")
	if err != nil || items == nil {
		return nil, err
	}

	redirections := make([]Redirection, 0, len(items))

	for _, item := range items {
		node, nodeErr := decodeNode(item)
		if nodeErr != nil {
			return nil, nodeErr
		}

		redirection, ok := node.(Redirection)
		if !ok {
			return nil, fmt.Errorf("%w: %T is not a redirection", ErrInvalidDocument, node)
		}

		redirections = append(redirections, redirection)
	}

	return redirections, nil
}

func streamField(obj map[string]any, key string) (pstoken.Stream, error) {
	value, found := obj[key]
	if !found {
		return pstoken.StreamOutput, nil
	}

	number, ok := value.(json.Number)
	if ok {
		integer, err := number.Int64()
		if err == nil {
			return pstoken.Stream(integer), nil
		}
	}

	if integer, isInt := value.(int); isInt {
		return pstoken.Stream(integer), nil
	}

	if text, isText := value.(string); isText && text == "*" {
		return pstoken.StreamAll, nil
	}

	return 0, fmt.Errorf("%w: field %q is not a stream", ErrInvalidDocument, key)
}

func decodeFileRedirection(obj map[string]any) (Node, error) {
	stream, err := streamField(obj, "stream")
	if err != nil {
		return nil, err
	}

	if !stream.Valid() {
		return nil, fmt.Errorf("%w: invalid stream %d", ErrInvalidDocument, int(stream))
	}

	target, err := expressionField(obj, "target")
	if err != nil {
		return nil, err
	}

	return &FileRedirection{Stream: stream, Append: boolField(obj, "append"), Target: target}, nil
}

func decodeMergingRedirection(obj map[string]any) (Node, error) {
	from, err := streamField(obj, "from")
	if err != nil {
		return nil, err
	}

	to, err := streamField(obj, "to")
	if err != nil {
		return nil, err
	}

	if !from.Valid() || !to.Valid() {
		return nil, fmt.Errorf("%w: invalid merge streams", ErrInvalidDocument)
	}

	return &MergingRedirection{From: from, To: to}, nil
}

func decodePipelineChain(obj map[string]any) (Node, error) {
	left, err := statementField(obj, "left")
	if err != nil {
		return nil, err
	}

	operator, err := tokenField(obj, "operator")
	if err != nil {
		return nil, err
	}

	right, err := statementField(obj, "right")
	if err != nil {
		return nil, err
	}

	return &PipelineChain{
		Left:       left,
		Operator:   operator,
		Right:      right,
		Background: boolField(obj, "background"),
	}, nil
}

func decodeAssignment(obj map[string]any) (Node, error) {
	left, err := expressionField(obj, "left")
	if err != nil {
		return nil, err
	}

	operator, err := tokenField(obj, "operator")
	if err != nil {
		return nil, err
	}

	right, err := statementField(obj, "right")
	if err != nil {
		return nil, err
	}

	return &AssignmentStatement{Left: left, Operator: operator, Right: right}, nil
}

func decodeIf(obj map[string]any) (Node, error) {
	items, err := sliceField(obj, "clauses")
	if err != nil {
		return nil, err
	}

	clauses := make([]*IfClause, 0, len(items))

	for _, item := range items {
		clauseObj, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: if clause must be an object, got %T", ErrInvalidDocument, item)
		}

		condition, condErr := statementField(clauseObj, "condition")
		if condErr != nil {
			return nil, condErr
		}

		clauseBody, bodyErr := statementBlockObject(clauseObj, "body")
		if bodyErr != nil {
			return nil, bodyErr
		}

		clauses = append(clauses, &IfClause{Condition: condition, Body: clauseBody})
	}

	elseBody, err := statementBlockObject(obj, "else")
	if err != nil {
		return nil, err
	}

	return &IfStatement{Clauses: clauses, Else: elseBody}, nil
}

func decodeWhile(obj map[string]any) (Node, error) {
	condition, body, err := conditionAndBody(obj)
	if err != nil {
		return nil, err
	}

	return &WhileStatement{Condition: condition, Body: body}, nil
}

func decodeDoWhile(obj map[string]any) (Node, error) {
	condition, body, err := conditionAndBody(obj)
	if err != nil {
		return nil, err
	}

	return &DoWhileStatement{Condition: condition, Body: body}, nil
}

func decodeDoUntil(obj map[string]any) (Node, error) {
	condition, body, err := conditionAndBody(obj)
	if err != nil {
		return nil, err
	}

	return &DoUntilStatement{Condition: condition, Body: body}, nil
}

func conditionAndBody(obj map[string]any) (Statement, *StatementBlock, error) {
	condition, err := statementField(obj, "condition")
	if err != nil {
		return nil, nil, err
	}

	body, err := statementBlockObject(obj, "body")
	if err != nil {
		return nil, nil, err
	}

	return condition, body, nil
}

func decodeFor(obj map[string]any) (Node, error) {
	initializer, err := optStatementField(obj, "initializer")
	if err != nil {
		return nil, err
	}

	condition, err := optStatementField(obj, "condition")
	if err != nil {
		return nil, err
	}

	iterator, err := optStatementField(obj, "iterator")
	if err != nil {
		return nil, err
	}

	body, err := statementBlockObject(obj, "body")
	if err != nil {
		return nil, err
	}

	return &ForStatement{Initializer: initializer, Condition: condition, Iterator: iterator, Body: body}, nil
}

func decodeForEach(obj map[string]any) (Node, error) {
	path, err := stringField(obj, "variable")
	if err != nil {
		return nil, err
	}

	source, err := statementField(obj, "source")
	if err != nil {
		return nil, err
	}

	body, err := statementBlockObject(obj, "body")
	if err != nil {
		return nil, err
	}

	return &ForEachStatement{Variable: &VariableExpression{Path: path}, Source: source, Body: body}, nil
}

func decodeControlFlow(obj map[string]any) (Node, error) {
	keyword, err := tokenField(obj, "keyword")
	if err != nil {
		return nil, err
	}

	child, err := optExpressionField(obj, "child")
	if err != nil {
		return nil, err
	}

	return &ControlFlowStatement{Keyword: keyword, Child: child}, nil
}

func decodeFunction(obj map[string]any) (Node, error) {
	name, err := stringField(obj, "name")
	if err != nil {
		return nil, err
	}

	bodyObj, err := objectField(obj, "body")
	if err != nil {
		return nil, err
	}

	body, err := decodeScriptBlock(bodyObj)
	if err != nil {
		return nil, err
	}

	return &FunctionDefinition{Name: name, IsFilter: boolField(obj, "isFilter"), Body: body}, nil
}

func decodeTypeDefinition(obj map[string]any) (Node, error) {
	keyword, err := tokenField(obj, "keyword")
	if err != nil {
		return nil, err
	}

	name, err := stringField(obj, "name")
	if err != nil {
		return nil, err
	}

	baseItems, err := sliceField(obj, "baseTypes")
	if err != nil {
		return nil, err
	}

	baseTypes := make([]TypeName, 0, len(baseItems))

	for _, item := range baseItems {
		baseType, baseErr := decodeTypeNameValue(item)
		if baseErr != nil {
			return nil, baseErr
		}

		baseTypes = append(baseTypes, baseType)
	}

	memberItems, err := sliceField(obj, "members")
	if err != nil {
		return nil, err
	}

	members := make([]Member, 0, len(memberItems))

	for _, item := range memberItems {
		node, memberErr := decodeNode(item)
		if memberErr != nil {
			return nil, memberErr
		}

		member, ok := node.(Member)
		if !ok {
			return nil, fmt.Errorf("%w: %T is not a type member", ErrInvalidDocument, node)
		}

		members = append(members, member)
	}

	return &TypeDefinition{Keyword: keyword, Name: name, BaseTypes: baseTypes, Members: members}, nil
}

func decodeTrap(obj map[string]any) (Node, error) {
	var constraint *TypeConstraint

	if _, found := obj["typeName"]; found {
		typeName, err := typeNameField(obj, "typeName")
		if err != nil {
			return nil, err
		}

		constraint = &TypeConstraint{TypeName: typeName}
	}

	body, err := statementBlockObject(obj, "body")
	if err != nil {
		return nil, err
	}

	return &TrapStatement{Type: constraint, Body: body}, nil
}

func decodeUsingDirective(obj map[string]any) (Node, error) {
	kind, err := tokenField(obj, "directive")
	if err != nil {
		return nil, err
	}

	var hashtable *HashtableExpression

	if tableObj, found := obj["hashtable"]; found {
		node, tableErr := decodeNode(tableObj)
		if tableErr != nil {
			return nil, tableErr
		}

		table, ok := node.(*HashtableExpression)
		if !ok {
			return nil, fmt.Errorf("%w: using directive hashtable must be a hashtable", ErrInvalidDocument)
		}

		hashtable = table
	}

	return &UsingDirective{Kind: kind, Name: optStringField(obj, "name"), Hashtable: hashtable}, nil
}

/* ---------- structural decoders ---------- */

func statementBlockField(obj map[string]any, statementsKey, trapsKey string) (*StatementBlock, error) {
	statements, err := statementList(obj, statementsKey)
	if err != nil {
		return nil, err
	}

	traps, err := trapList(obj, trapsKey)
	if err != nil {
		return nil, err
	}

	return &StatementBlock{Statements: statements, Traps: traps}, nil
}

func statementBlockObject(obj map[string]any, key string) (*StatementBlock, error) {
	blockObj, err := objectField(obj, key)
	if err != nil {
		return nil, err
	}

	if blockObj == nil {
		return nil, nil //nolint:nilnil // absent optional block, not an error
	}

	return statementBlockField(blockObj, "statements", "traps")
}

func trapList(obj map[string]any, key string) ([]*TrapStatement, error) {
	items, err := sliceField(obj, key)
	if err != nil || items == nil {
		return nil, err
	}

	traps := make([]*TrapStatement, 0, len(items))

	for _, item := range items {
		node, trapErr := decodeNode(item)
		if trapErr != nil {
			return nil, trapErr
		}

		trap, ok := node.(*TrapStatement)
		if !ok {
			return nil, fmt.Errorf("%w: %T is not a trap", ErrInvalidDocument, node)
		}

		traps = append(traps, trap)
	}

	return traps, nil
}

func decodeScriptBlock(obj map[string]any) (*ScriptBlock, error) {
	if obj == nil {
		return &ScriptBlock{}, nil
	}

	block := &ScriptBlock{}

	paramObj, err := objectField(obj, "paramBlock")
	if err != nil {
		return nil, err
	}

	if paramObj != nil {
		block.ParamBlock, err = decodeParamBlock(paramObj)
		if err != nil {
			return nil, err
		}
	}

	phases := []struct {
		key     string
		keyword pstoken.Kind
		target  **NamedBlock
	}{
		{"dynamicParam", pstoken.DynamicParam, &block.DynamicParam},
		{"begin", pstoken.Begin, &block.Begin},
		{"process", pstoken.Process, &block.Process},
		{"end", pstoken.End, &block.End},
	}

	for _, phase := range phases {
		phaseObj, phaseErr := objectField(obj, phase.key)
		if phaseErr != nil {
			return nil, phaseErr
		}

		if phaseObj == nil {
			continue
		}

		named, namedErr := decodeNamedBlock(phaseObj, phase.keyword)
		if namedErr != nil {
			return nil, namedErr
		}

		*phase.target = named
	}

	return block, nil
}

func decodeNamedBlock(obj map[string]any, keyword pstoken.Kind) (*NamedBlock, error) {
	statements, err := statementList(obj, "statements")
	if err != nil {
		return nil, err
	}

	traps, err := trapList(obj, "traps")
	if err != nil {
		return nil, err
	}

	return &NamedBlock{Keyword: keyword, Statements: statements, Traps: traps}, nil
}

func decodeParamBlock(obj map[string]any) (*ParamBlock, error) {
	attributeItems, err := sliceField(obj, "attributes")
	if err != nil {
		return nil, err
	}

	attributes := make([]*AttributeNode, 0, len(attributeItems))

	for _, item := range attributeItems {
		node, attrErr := decodeNode(item)
		if attrErr != nil {
			return nil, attrErr
		}

		attribute, ok := node.(*AttributeNode)
		if !ok {
			return nil, fmt.Errorf("%w: param block attribute must be an attribute, got %T", ErrInvalidDocument, node)
		}

		attributes = append(attributes, attribute)
	}

	parameterItems, err := sliceField(obj, "parameters")
	if err != nil {
		return nil, err
	}

	parameters := make([]*Parameter, 0, len(parameterItems))

	for _, item := range parameterItems {
		parameterObj, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: parameter must be an object, got %T", ErrInvalidDocument, item)
		}

		parameter, paramErr := decodeParameter(parameterObj)
		if paramErr != nil {
			return nil, paramErr
		}

		parameters = append(parameters, parameter)
	}

	return &ParamBlock{Attributes: attributes, Parameters: parameters}, nil
}

func decodeParameter(obj map[string]any) (*Parameter, error) {
	path, err := stringField(obj, "name")
	if err != nil {
		return nil, err
	}

	attributes, err := attributeBaseList(obj, "attributes")
	if err != nil {
		return nil, err
	}

	defaultValue, err := optExpressionField(obj, "default")
	if err != nil {
		return nil, err
	}

	return &Parameter{
		Attributes:   attributes,
		Name:         &VariableExpression{Path: path},
		DefaultValue: defaultValue,
	}, nil
}

func attributeBaseList(obj map[string]any, key string) ([]AttributeBase, error) {
	items, err := sliceField(obj, key)
	if err != nil || items == nil {
		return nil, err
	}

	attributes := make([]AttributeBase, 0, len(items))

	for _, item := range items {
		attribute, attrErr := decodeAttributeBaseValue(item)
		if attrErr != nil {
			return nil, attrErr
		}

		attributes = append(attributes, attribute)
	}

	return attributes, nil
}

func attributeBaseField(obj map[string]any, key string) (AttributeBase, error) {
	value, found := obj[key]
	if !found || value == nil {
		return nil, fmt.Errorf("%w: missing field %q", ErrInvalidDocument, key)
	}

	return decodeAttributeBaseValue(value)
}

func decodeAttributeBaseValue(value any) (AttributeBase, error) {
	// A bare string is shorthand for a simple type constraint.
	if text, ok := value.(string); ok {
		return &TypeConstraint{TypeName: &SimpleTypeName{FullName: text}}, nil
	}

	node, err := decodeNode(value)
	if err != nil {
		return nil, err
	}

	attribute, ok := node.(AttributeBase)
	if !ok {
		return nil, fmt.Errorf("%w: %T is not an attribute", ErrInvalidDocument, node)
	}

	return attribute, nil
}

func decodeAttributeNode(obj map[string]any) (Node, error) {
	typeName, err := typeNameField(obj, "typeName")
	if err != nil {
		return nil, err
	}

	positional, err := expressionList(obj, "positional")
	if err != nil {
		return nil, err
	}

	namedItems, err := sliceField(obj, "named")
	if err != nil {
		return nil, err
	}

	named := make([]*NamedAttributeArgument, 0, len(namedItems))

	for _, item := range namedItems {
		argObj, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: named attribute argument must be an object, got %T", ErrInvalidDocument, item)
		}

		name, nameErr := stringField(argObj, "name")
		if nameErr != nil {
			return nil, nameErr
		}

		value, valueErr := optExpressionField(argObj, "value")
		if valueErr != nil {
			return nil, valueErr
		}

		named = append(named, &NamedAttributeArgument{
			Name:              name,
			Value:             value,
			ExpressionOmitted: value == nil,
		})
	}

	return &AttributeNode{TypeName: typeName, PositionalArguments: positional, NamedArguments: named}, nil
}

func decodeTypeConstraintNode(obj map[string]any) (Node, error) {
	typeName, err := typeNameField(obj, "typeName")
	if err != nil {
		return nil, err
	}

	return &TypeConstraint{TypeName: typeName}, nil
}

/* ---------- type name decoders ---------- */

func typeNameField(obj map[string]any, key string) (TypeName, error) {
	value, found := obj[key]
	if !found || value == nil {
		return nil, fmt.Errorf("%w: missing field %q", ErrInvalidDocument, key)
	}

	return decodeTypeNameValue(value)
}

func decodeTypeNameValue(value any) (TypeName, error) {
	// A bare string is shorthand for a simple type name.
	if text, ok := value.(string); ok {
		return &SimpleTypeName{FullName: text}, nil
	}

	node, err := decodeNode(value)
	if err != nil {
		return nil, err
	}

	typeName, ok := node.(TypeName)
	if !ok {
		return nil, fmt.Errorf("%w: %T is not a type name", ErrInvalidDocument, node)
	}

	return typeName, nil
}

func decodeSimpleTypeName(obj map[string]any) (Node, error) {
	full, err := stringField(obj, "full")
	if err != nil {
		return nil, err
	}

	return &SimpleTypeName{FullName: full}, nil
}

func decodeArrayTypeName(obj map[string]any) (Node, error) {
	element, err := typeNameField(obj, "element")
	if err != nil {
		return nil, err
	}

	rank := 1

	if value, found := obj["rank"]; found {
		switch typed := value.(type) {
		case json.Number:
			integer, rankErr := typed.Int64()
			if rankErr != nil {
				return nil, fmt.Errorf("%w: bad rank %q", ErrInvalidDocument, typed.String())
			}

			rank = int(integer)
		case int:
			rank = typed
		default:
			return nil, fmt.Errorf("%w: rank must be an integer, got %T", ErrInvalidDocument, value)
		}
	}

	if rank < 1 {
		return nil, fmt.Errorf("%w: rank %d out of range", ErrInvalidDocument, rank)
	}

	return &ArrayTypeName{Element: element, Rank: rank}, nil
}

func decodeGenericTypeName(obj map[string]any) (Node, error) {
	name, err := typeNameField(obj, "name")
	if err != nil {
		return nil, err
	}

	items, err := sliceField(obj, "arguments")
	if err != nil {
		return nil, err
	}

	arguments := make([]TypeName, 0, len(items))

	for _, item := range items {
		argument, argErr := decodeTypeNameValue(item)
		if argErr != nil {
			return nil, argErr
		}

		arguments = append(arguments, argument)
	}

	return &GenericTypeName{Name: name, Arguments: arguments}, nil
}

/* ---------- member decoders ---------- */

func decodePropertyMember(obj map[string]any) (Node, error) {
	name, err := stringField(obj, "name")
	if err != nil {
		return nil, err
	}

	var constraint *TypeConstraint

	if _, found := obj["typeName"]; found {
		typeName, typeErr := typeNameField(obj, "typeName")
		if typeErr != nil {
			return nil, typeErr
		}

		constraint = &TypeConstraint{TypeName: typeName}
	}

	defaultValue, err := optExpressionField(obj, "default")
	if err != nil {
		return nil, err
	}

	attributeItems, err := sliceField(obj, "attributes")
	if err != nil {
		return nil, err
	}

	attributes := make([]*AttributeNode, 0, len(attributeItems))

	for _, item := range attributeItems {
		node, attrErr := decodeNode(item)
		if attrErr != nil {
			return nil, attrErr
		}

		attribute, ok := node.(*AttributeNode)
		if !ok {
			return nil, fmt.Errorf("%w: property attribute must be an attribute, got %T", ErrInvalidDocument, node)
		}

		attributes = append(attributes, attribute)
	}

	return &PropertyMember{
		Name:         name,
		Type:         constraint,
		Attributes:   attributes,
		DefaultValue: defaultValue,
		Static:       boolField(obj, "static"),
		Hidden:       boolField(obj, "hidden"),
	}, nil
}

func decodeMethodMember(obj map[string]any) (Node, error) {
	name, err := stringField(obj, "name")
	if err != nil {
		return nil, err
	}

	var returnType *TypeConstraint

	if _, found := obj["returnType"]; found {
		typeName, typeErr := typeNameField(obj, "returnType")
		if typeErr != nil {
			return nil, typeErr
		}

		returnType = &TypeConstraint{TypeName: typeName}
	}

	parameterItems, err := sliceField(obj, "parameters")
	if err != nil {
		return nil, err
	}

	parameters := make([]*Parameter, 0, len(parameterItems))

	for _, item := range parameterItems {
		parameterObj, ok := item.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: parameter must be an object, got %T", ErrInvalidDocument, item)
		}

		parameter, paramErr := decodeParameter(parameterObj)
		if paramErr != nil {
			return nil, paramErr
		}

		parameters = append(parameters, parameter)
	}

	body, err := statementBlockObject(obj, "body")
	if err != nil {
		return nil, err
	}

	return &MethodMember{
		Name:       name,
		ReturnType: returnType,
		Parameters: parameters,
		Body:       body,
		Static:     boolField(obj, "static"),
		Hidden:     boolField(obj, "hidden"),
	}, nil
}

func decodeEnumMember(obj map[string]any) (Node, error) {
	name, err := stringField(obj, "name")
	if err != nil {
		return nil, err
	}

	value, err := optExpressionField(obj, "value")
	if err != nil {
		return nil, err
	}

	return &EnumMember{Name: name, Value: value}, nil
}
