package psast

// The node kinds below are part of the grammar but deliberately outside the
// renderer's scope. They exist so a parser can hand them over and the
// renderer can refuse them with a distinct unsupported-construct failure
// instead of guessing a canonical layout.

// SwitchStatement is a switch construct. Not rendered.
type SwitchStatement struct{}

// TryStatement is a try/catch/finally construct. Not rendered.
type TryStatement struct{}

// BlockStatement is a stand-alone braced block. Not rendered.
type BlockStatement struct{}

// DataStatement is a data section. Not rendered.
type DataStatement struct{}

// ConfigurationDefinition is a DSC configuration block. Not rendered.
type ConfigurationDefinition struct{}

// DynamicKeywordStatement is a dynamic-keyword invocation. Not rendered.
type DynamicKeywordStatement struct{}

// ErrorStatement marks a statement the parser could not fully parse. Not
// rendered.
type ErrorStatement struct{}

// ErrorExpression marks an expression the parser could not fully parse. Not
// rendered.
type ErrorExpression struct{}

// BaseCtorInvokeMemberExpression is a base-constructor call inside a class
// constructor. Not rendered.
type BaseCtorInvokeMemberExpression struct{}

func (*SwitchStatement) node()                {}
func (*TryStatement) node()                   {}
func (*BlockStatement) node()                 {}
func (*DataStatement) node()                  {}
func (*ConfigurationDefinition) node()        {}
func (*DynamicKeywordStatement) node()        {}
func (*ErrorStatement) node()                 {}
func (*ErrorExpression) node()                {}
func (*BaseCtorInvokeMemberExpression) node() {}

func (*SwitchStatement) statement()         {}
func (*TryStatement) statement()            {}
func (*BlockStatement) statement()          {}
func (*DataStatement) statement()           {}
func (*ConfigurationDefinition) statement() {}
func (*DynamicKeywordStatement) statement() {}
func (*ErrorStatement) statement()          {}

func (*ErrorExpression) expression()                {}
func (*BaseCtorInvokeMemberExpression) expression() {}
