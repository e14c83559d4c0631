package render

import (
	"fmt"
	"strings"

	"github.com/Sumatoshi-tech/powerfang/pkg/layout"
	"github.com/Sumatoshi-tech/powerfang/pkg/psast"
)

func (renderer *Renderer) renderTypeName(name psast.TypeName) error {
	switch node := name.(type) {
	case *psast.SimpleTypeName:
		renderer.engine.Write(node.FullName)

		return nil
	case *psast.ArrayTypeName:
		return renderer.renderArrayTypeName(node)
	case *psast.GenericTypeName:
		return renderer.renderGenericTypeName(node)
	default:
		return fmt.Errorf("%w: type name %T", ErrUnsupportedConstruct, name)
	}
}

// renderArrayTypeName spells the element type followed by [] for rank one,
// adding one comma per extra dimension.
func (renderer *Renderer) renderArrayTypeName(node *psast.ArrayTypeName) error {
	if err := renderer.renderTypeName(node.Element); err != nil {
		return err
	}

	renderer.engine.Write("[" + strings.Repeat(",", node.Rank-1) + "]")

	return nil
}

func (renderer *Renderer) renderGenericTypeName(node *psast.GenericTypeName) error {
	if err := renderer.renderTypeName(node.Name); err != nil {
		return err
	}

	renderer.engine.Write("[")

	if err := layout.Intersperse(renderer.engine, node.Arguments, ", ", renderer.renderTypeName); err != nil {
		return err
	}

	renderer.engine.Write("]")

	return nil
}

// renderBracketedTypeName emits a type name inside square brackets, the form
// shared by type expressions, constraints and casts.
func (renderer *Renderer) renderBracketedTypeName(name psast.TypeName) error {
	renderer.engine.Write("[")

	if err := renderer.renderTypeName(name); err != nil {
		return err
	}

	renderer.engine.Write("]")

	return nil
}

func (renderer *Renderer) renderTypeConstraint(constraint *psast.TypeConstraint) error {
	return renderer.renderBracketedTypeName(constraint.TypeName)
}

func (renderer *Renderer) renderAttributeBase(attribute psast.AttributeBase) error {
	switch node := attribute.(type) {
	case *psast.TypeConstraint:
		return renderer.renderTypeConstraint(node)
	case *psast.AttributeNode:
		return renderer.renderAttribute(node)
	default:
		return fmt.Errorf("%w: attribute %T", ErrUnsupportedConstruct, attribute)
	}
}

// renderAttribute emits [Name(pos1, pos2, Named = value)]. Attributes always
// carry the argument parentheses, even when empty.
func (renderer *Renderer) renderAttribute(node *psast.AttributeNode) error {
	renderer.engine.Write("[")

	if err := renderer.renderTypeName(node.TypeName); err != nil {
		return err
	}

	renderer.engine.Write("(")

	err := layout.Intersperse(renderer.engine, node.PositionalArguments, ", ", renderer.renderExpression)
	if err != nil {
		return err
	}

	if len(node.PositionalArguments) > 0 && len(node.NamedArguments) > 0 {
		renderer.engine.Write(", ")
	}

	err = layout.Intersperse(renderer.engine, node.NamedArguments, ", ", renderer.renderNamedAttributeArgument)
	if err != nil {
		return err
	}

	renderer.engine.Write(")]")

	return nil
}

func (renderer *Renderer) renderNamedAttributeArgument(argument *psast.NamedAttributeArgument) error {
	renderer.engine.Write(argument.Name)

	if argument.ExpressionOmitted {
		return nil
	}

	renderer.engine.Write(" = ")

	return renderer.renderExpression(argument.Value)
}
