package psast

import (
	"github.com/Sumatoshi-tech/powerfang/pkg/pstoken"
)

// StringKind distinguishes the textual forms a string literal can take.
type StringKind int

// String literal forms.
const (
	BareWord StringKind = iota
	SingleQuoted
	DoubleQuoted
	SingleQuotedHereString
	DoubleQuotedHereString
)

// ConstantExpression is a non-string literal: an integer (int64), a float
// (float64), a bool or nil for the null constant.
type ConstantExpression struct {
	Value any
}

// StringConstantExpression is a literal string with no interpolation.
type StringConstantExpression struct {
	Value string
	Kind  StringKind
}

// ExpandableStringExpression is an interpolated string. Value holds the raw,
// unescaped content; escaping is applied at render time.
type ExpandableStringExpression struct {
	Value string
	Kind  StringKind
}

// ArrayLiteral is a bare comma-separated list of elements.
type ArrayLiteral struct {
	Elements []Expression
}

// ArrayExpression is the @( ... ) form wrapping a statement sequence.
type ArrayExpression struct {
	SubExpression *StatementBlock
}

// HashtableExpression is the @{ ... } literal.
type HashtableExpression struct {
	Entries []*HashtableEntry
}

// HashtableEntry is one key/value pair of a hashtable literal. The value is
// a statement because the grammar allows a full pipeline there.
type HashtableEntry struct {
	Key   Expression
	Value Statement
}

// VariableExpression references a variable by its path, which may carry a
// scope qualifier ("global:x"). Splatted variables spell @name instead of
// $name.
type VariableExpression struct {
	Path     string
	Splatted bool
}

// MemberExpression accesses a member of a target, either through an instance
// (".") or statically ("::").
type MemberExpression struct {
	Target Expression
	Member Expression
	Static bool
}

// InvokeMemberExpression calls a method on a target.
type InvokeMemberExpression struct {
	Target    Expression
	Member    Expression
	Arguments []Expression
	Static    bool
}

// IndexExpression subscripts a target with square brackets.
type IndexExpression struct {
	Target Expression
	Index  Expression
}

// UnaryExpression applies a prefix or postfix operator to one operand.
type UnaryExpression struct {
	Operator pstoken.Kind
	Child    Expression
}

// BinaryExpression applies an infix operator to two operands.
type BinaryExpression struct {
	Left     Expression
	Operator pstoken.Kind
	Right    Expression
}

// TernaryExpression is the condition ? ifTrue : ifFalse form.
type TernaryExpression struct {
	Condition Expression
	IfTrue    Expression
	IfFalse   Expression
}

// ParenExpression wraps a pipeline in parentheses.
type ParenExpression struct {
	Pipeline Statement
}

// SubExpression is the $( ... ) command-substitution form.
type SubExpression struct {
	SubExpression *StatementBlock
}

// TypeExpression is a type literal such as [int].
type TypeExpression struct {
	TypeName TypeName
}

// ConvertExpression casts its child to a type, e.g. [int]$x.
type ConvertExpression struct {
	Type  *TypeConstraint
	Child Expression
}

// AttributedExpression decorates its child with an attribute or type
// constraint, e.g. [ValidateNotNull()]$x.
type AttributedExpression struct {
	Attribute AttributeBase
	Child     Expression
}

// UsingExpression captures a variable from the calling scope inside a
// closure, spelled $using:name.
type UsingExpression struct {
	Child *VariableExpression
}

// ScriptBlockExpression is a script block used as a value.
type ScriptBlockExpression struct {
	Body *ScriptBlock
}

func (*ConstantExpression) node()         {}
func (*StringConstantExpression) node()   {}
func (*ExpandableStringExpression) node() {}
func (*ArrayLiteral) node()               {}
func (*ArrayExpression) node()            {}
func (*HashtableExpression) node()        {}
func (*HashtableEntry) node()             {}
func (*VariableExpression) node()         {}
func (*MemberExpression) node()           {}
func (*InvokeMemberExpression) node()     {}
func (*IndexExpression) node()            {}
func (*UnaryExpression) node()            {}
func (*BinaryExpression) node()           {}
func (*TernaryExpression) node()          {}
func (*ParenExpression) node()            {}
func (*SubExpression) node()              {}
func (*TypeExpression) node()             {}
func (*ConvertExpression) node()          {}
func (*AttributedExpression) node()       {}
func (*UsingExpression) node()            {}
func (*ScriptBlockExpression) node()      {}

func (*ConstantExpression) expression()         {}
func (*StringConstantExpression) expression()   {}
func (*ExpandableStringExpression) expression() {}
func (*ArrayLiteral) expression()               {}
func (*ArrayExpression) expression()            {}
func (*HashtableExpression) expression()        {}
func (*VariableExpression) expression()         {}
func (*MemberExpression) expression()           {}
func (*InvokeMemberExpression) expression()     {}
func (*IndexExpression) expression()            {}
func (*UnaryExpression) expression()            {}
func (*BinaryExpression) expression()           {}
func (*TernaryExpression) expression()          {}
func (*ParenExpression) expression()            {}
func (*SubExpression) expression()              {}
func (*TypeExpression) expression()             {}
func (*ConvertExpression) expression()          {}
func (*AttributedExpression) expression()       {}
func (*UsingExpression) expression()            {}
func (*ScriptBlockExpression) expression()      {}
