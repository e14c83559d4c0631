package psast

import (
	"github.com/Sumatoshi-tech/powerfang/pkg/pstoken"
)

// Parameter is one declared parameter: attributes, the variable and an
// optional default value.
type Parameter struct {
	Attributes   []AttributeBase
	Name         *VariableExpression
	DefaultValue Expression
}

// AttributeNode is a full attribute with positional and named arguments,
// e.g. [Parameter(Mandatory, Position = 0)].
type AttributeNode struct {
	TypeName            TypeName
	PositionalArguments []Expression
	NamedArguments      []*NamedAttributeArgument
}

// NamedAttributeArgument binds one named attribute argument. When
// ExpressionOmitted is set only the name renders, which the grammar reads as
// "= $true".
type NamedAttributeArgument struct {
	Name              string
	Value             Expression
	ExpressionOmitted bool
}

// TypeConstraint is a type name in brackets used as a constraint, e.g. the
// [int] in "[int]$x" or the exception type of a trap.
type TypeConstraint struct {
	TypeName TypeName
}

// SimpleTypeName is a plain, possibly dotted, type name.
type SimpleTypeName struct {
	FullName string
}

// ArrayTypeName is an array of an element type. Rank 1 spells [], higher
// ranks add one comma per extra dimension.
type ArrayTypeName struct {
	Element TypeName
	Rank    int
}

// GenericTypeName is a generic instantiation, spelled Name[Arg1, Arg2].
type GenericTypeName struct {
	Name      TypeName
	Arguments []TypeName
}

// ParamBlock is the param( ... ) declaration of a script block.
type ParamBlock struct {
	Attributes []*AttributeNode
	Parameters []*Parameter
}

// NamedBlock is one of a script block's begin/process/end/dynamicparam
// phases.
type NamedBlock struct {
	Keyword    pstoken.Kind
	Statements []Statement
	Traps      []*TrapStatement
}

// ScriptBlock is a braced block with an optional param block and up to four
// named blocks. A script block whose statements were written without phase
// keywords parses into the End block alone.
type ScriptBlock struct {
	ParamBlock   *ParamBlock
	DynamicParam *NamedBlock
	Begin        *NamedBlock
	Process      *NamedBlock
	End          *NamedBlock
}

// StatementBlock is a braced statement sequence with optional trap handlers.
type StatementBlock struct {
	Statements []Statement
	Traps      []*TrapStatement
}

// PropertyMember is a field of a class or interface definition.
type PropertyMember struct {
	Name         string
	Type         *TypeConstraint
	Attributes   []*AttributeNode
	DefaultValue Expression
	Static       bool
	Hidden       bool
}

// MethodMember is a method of a class or interface definition.
type MethodMember struct {
	Name       string
	ReturnType *TypeConstraint
	Parameters []*Parameter
	Body       *StatementBlock
	Static     bool
	Hidden     bool
}

// EnumMember is one label of an enum definition, with an optional explicit
// value.
type EnumMember struct {
	Name  string
	Value Expression
}

func (*Parameter) node()              {}
func (*AttributeNode) node()          {}
func (*NamedAttributeArgument) node() {}
func (*TypeConstraint) node()         {}
func (*SimpleTypeName) node()         {}
func (*ArrayTypeName) node()          {}
func (*GenericTypeName) node()        {}
func (*ParamBlock) node()             {}
func (*NamedBlock) node()             {}
func (*ScriptBlock) node()            {}
func (*StatementBlock) node()         {}
func (*PropertyMember) node()         {}
func (*MethodMember) node()           {}
func (*EnumMember) node()             {}

func (*AttributeNode) attributeBase()  {}
func (*TypeConstraint) attributeBase() {}

func (*SimpleTypeName) typeName()  {}
func (*ArrayTypeName) typeName()   {}
func (*GenericTypeName) typeName() {}

func (*PropertyMember) member() {}
func (*MethodMember) member()   {}
func (*EnumMember) member()     {}
