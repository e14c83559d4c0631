package psast

import (
	"github.com/Sumatoshi-tech/powerfang/pkg/pstoken"
)

// AssignmentStatement assigns the value of a statement (usually a one-element
// pipeline) to an assignable expression.
type AssignmentStatement struct {
	Left     Expression
	Operator pstoken.Kind
	Right    Statement
}

// Pipeline is a sequence of commands or expressions joined by pipes. A
// one-element pipeline renders with no pipe at all. Background pipelines end
// with an ampersand.
type Pipeline struct {
	Elements   []Statement
	Background bool
}

// Command is a bare command invocation: an optional invocation operator, the
// command elements (name, parameters, arguments) and optional redirections.
// InvocationOperator is pstoken.Unknown when the command is invoked directly.
type Command struct {
	InvocationOperator pstoken.Kind
	Elements           []Node
	Redirections       []Redirection
}

// CommandParameter is a -Name element of a command, optionally bound to its
// argument with a colon.
type CommandParameter struct {
	Name     string
	Argument Expression
}

// CommandExpression is an expression used as a pipeline element.
type CommandExpression struct {
	Expression   Expression
	Redirections []Redirection
}

// FileRedirection sends a stream to a file target, overwriting or appending.
type FileRedirection struct {
	Stream pstoken.Stream
	Append bool
	Target Expression
}

// MergingRedirection merges one stream into another, e.g. 2>&1.
type MergingRedirection struct {
	From pstoken.Stream
	To   pstoken.Stream
}

// PipelineChain joins two pipelines with && or ||.
type PipelineChain struct {
	Left       Statement
	Operator   pstoken.Kind
	Right      Statement
	Background bool
}

// IfClause is one condition/body pair of an if statement.
type IfClause struct {
	Condition Statement
	Body      *StatementBlock
}

// IfStatement is an if with zero or more elseif clauses and an optional
// else block. Clauses[0] is the if clause itself.
type IfStatement struct {
	Clauses []*IfClause
	Else    *StatementBlock
}

// WhileStatement loops while the condition holds.
type WhileStatement struct {
	Condition Statement
	Body      *StatementBlock
}

// DoWhileStatement runs the body, then loops while the condition holds.
type DoWhileStatement struct {
	Body      *StatementBlock
	Condition Statement
}

// DoUntilStatement runs the body, then loops until the condition holds.
type DoUntilStatement struct {
	Body      *StatementBlock
	Condition Statement
}

// ForStatement is the three-clause counting loop. Any of the clauses may be
// nil.
type ForStatement struct {
	Initializer Statement
	Condition   Statement
	Iterator    Statement
	Body        *StatementBlock
}

// ForEachStatement iterates a variable over the values a source statement
// produces.
type ForEachStatement struct {
	Variable *VariableExpression
	Source   Statement
	Body     *StatementBlock
}

// ControlFlowStatement is one of break, continue, return, exit or throw,
// optionally carrying a child expression. Keyword must be one of those five
// token kinds.
type ControlFlowStatement struct {
	Keyword pstoken.Kind
	Child   Expression
}

// FunctionDefinition declares a function or filter.
type FunctionDefinition struct {
	IsFilter bool
	Name     string
	Body     *ScriptBlock
}

// TypeDefinition declares a class, interface or enum. Keyword selects which.
type TypeDefinition struct {
	Keyword   pstoken.Kind
	Name      string
	BaseTypes []TypeName
	Members   []Member
}

// TrapStatement is a block-scoped error handler, optionally constrained to
// one exception type.
type TrapStatement struct {
	Type *TypeConstraint
	Body *StatementBlock
}

// UsingDirective is a top-level "using" directive. Kind selects the subtype
// (namespace, module or assembly); module directives may carry a hashtable
// specification instead of a name.
type UsingDirective struct {
	Kind      pstoken.Kind
	Name      string
	Hashtable *HashtableExpression
}

func (*AssignmentStatement) node()  {}
func (*Pipeline) node()             {}
func (*Command) node()              {}
func (*CommandParameter) node()     {}
func (*CommandExpression) node()    {}
func (*FileRedirection) node()      {}
func (*MergingRedirection) node()   {}
func (*PipelineChain) node()        {}
func (*IfClause) node()             {}
func (*IfStatement) node()          {}
func (*WhileStatement) node()       {}
func (*DoWhileStatement) node()     {}
func (*DoUntilStatement) node()     {}
func (*ForStatement) node()         {}
func (*ForEachStatement) node()     {}
func (*ControlFlowStatement) node() {}
func (*FunctionDefinition) node()   {}
func (*TypeDefinition) node()       {}
func (*TrapStatement) node()        {}
func (*UsingDirective) node()       {}

func (*AssignmentStatement) statement()  {}
func (*Pipeline) statement()             {}
func (*Command) statement()              {}
func (*CommandExpression) statement()    {}
func (*PipelineChain) statement()        {}
func (*IfStatement) statement()          {}
func (*WhileStatement) statement()       {}
func (*DoWhileStatement) statement()     {}
func (*DoUntilStatement) statement()     {}
func (*ForStatement) statement()         {}
func (*ForEachStatement) statement()     {}
func (*ControlFlowStatement) statement() {}
func (*FunctionDefinition) statement()   {}
func (*TypeDefinition) statement()       {}
func (*TrapStatement) statement()        {}

func (*FileRedirection) redirection()    {}
func (*MergingRedirection) redirection() {}
