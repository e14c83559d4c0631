// Package psast defines the typed syntax-node model the renderer consumes.
//
// Nodes are tagged values: every construct of the grammar is its own struct
// type behind one of the sealed Node, Expression or Statement interfaces, so
// a render dispatch can be checked for exhaustiveness by the compiler. Trees
// are supplied by an external parser (or decoded from a serialized document,
// see decode.go) and are treated as read-only by everything in this module.
package psast

// Node is any element of a parsed source tree.
type Node interface {
	node()
}

// Expression is a node that produces a value.
type Expression interface {
	Node
	expression()
}

// Statement is a node that can appear in a statement sequence.
type Statement interface {
	Node
	statement()
}

// AttributeBase is either a bare type constraint or a full attribute with
// arguments. Both can decorate parameters and expressions.
type AttributeBase interface {
	Node
	attributeBase()
}

// TypeName names a type: a simple dotted name, an array type or a generic
// instantiation.
type TypeName interface {
	Node
	typeName()
}

// Member is one member of a class, interface or enum definition.
type Member interface {
	Node
	member()
}

// Redirection reroutes one of a command's output streams.
type Redirection interface {
	Node
	redirection()
}
