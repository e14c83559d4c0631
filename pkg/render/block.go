package render

import (
	"fmt"

	"github.com/Sumatoshi-tech/powerfang/pkg/layout"
	"github.com/Sumatoshi-tech/powerfang/pkg/psast"
	"github.com/Sumatoshi-tech/powerfang/pkg/pstoken"
)

// renderStatementBlock emits a braced statement sequence in canonical block
// form: the brace on its own line, statements one per line, one level
// deeper.
func (renderer *Renderer) renderStatementBlock(block *psast.StatementBlock) error {
	if block == nil || (len(block.Statements) == 0 && len(block.Traps) == 0) {
		renderer.engine.Newline(1)
		renderer.engine.Write("{")
		renderer.engine.Newline(1)
		renderer.engine.Write("}")

		return nil
	}

	renderer.engine.BeginBlock()

	if err := renderer.renderSequence(block.Statements, block.Traps); err != nil {
		return err
	}

	renderer.engine.EndBlock()

	return nil
}

// renderSequence emits trap handlers first, each on its own line, then the
// statements separated by single newlines.
func (renderer *Renderer) renderSequence(statements []psast.Statement, traps []*psast.TrapStatement) error {
	for i, trap := range traps {
		if i > 0 {
			renderer.engine.Newline(1)
		}

		if err := renderer.renderTrap(trap); err != nil {
			return err
		}
	}

	for i, statement := range statements {
		if i > 0 || len(traps) > 0 {
			renderer.engine.Newline(1)
		}

		if err := renderer.renderStatement(statement); err != nil {
			return err
		}
	}

	return nil
}

// renderScriptBlock emits a script block at the current position. Blocks
// written without phase keywords live entirely in the End block and render
// without the "end" wrapper; once an explicit begin or process block exists,
// all three phases render with their keywords.
func (renderer *Renderer) renderScriptBlock(block *psast.ScriptBlock) error {
	if block == nil || scriptBlockIsEmpty(block) {
		renderer.engine.Write("{ }")

		return nil
	}

	renderer.engine.Write("{")
	renderer.engine.Indent()

	wrote := false

	if block.ParamBlock != nil {
		if err := renderer.renderParamBlock(block.ParamBlock); err != nil {
			return err
		}

		wrote = true
	}

	if block.DynamicParam != nil {
		if wrote {
			renderer.engine.Newline(1)
		}

		if err := renderer.renderNamedBlock(block.DynamicParam); err != nil {
			return err
		}

		wrote = true
	}

	explicit := block.Begin != nil || block.Process != nil

	if explicit {
		if err := renderer.renderPhases(block, wrote); err != nil {
			return err
		}
	} else if block.End != nil {
		if wrote {
			renderer.engine.Newline(1)
		}

		if err := renderer.renderSequence(block.End.Statements, block.End.Traps); err != nil {
			return err
		}
	}

	renderer.engine.Dedent()
	renderer.engine.Write("}")

	return nil
}

// renderPhases writes the begin, process and end blocks with their keywords,
// substituting empty blocks where a phase is absent.
func (renderer *Renderer) renderPhases(block *psast.ScriptBlock, wrote bool) error {
	phases := []struct {
		keyword pstoken.Kind
		block   *psast.NamedBlock
	}{
		{pstoken.Begin, block.Begin},
		{pstoken.Process, block.Process},
		{pstoken.End, block.End},
	}

	for _, phase := range phases {
		if wrote {
			renderer.engine.Newline(1)
		}

		wrote = true

		named := phase.block
		if named == nil {
			named = &psast.NamedBlock{Keyword: phase.keyword}
		}

		if err := renderer.renderNamedBlock(named); err != nil {
			return err
		}
	}

	return nil
}

func (renderer *Renderer) renderNamedBlock(block *psast.NamedBlock) error {
	if err := renderer.writeLexeme(block.Keyword); err != nil {
		return err
	}

	if len(block.Statements) == 0 && len(block.Traps) == 0 {
		renderer.engine.Newline(1)
		renderer.engine.Write("{")
		renderer.engine.Newline(1)
		renderer.engine.Write("}")

		return nil
	}

	renderer.engine.BeginBlock()

	if err := renderer.renderSequence(block.Statements, block.Traps); err != nil {
		return err
	}

	renderer.engine.EndBlock()

	return nil
}

func scriptBlockIsEmpty(block *psast.ScriptBlock) bool {
	if block.ParamBlock != nil || block.DynamicParam != nil || block.Begin != nil || block.Process != nil {
		return false
	}

	return block.End == nil || (len(block.End.Statements) == 0 && len(block.End.Traps) == 0)
}

// renderParamBlock emits param( ... ). Parameter lists stay on one line
// until a parameter carries attributes; attributed lists break one parameter
// per line with a blank line between parameters and each attribute on its
// own line.
func (renderer *Renderer) renderParamBlock(block *psast.ParamBlock) error {
	for _, attribute := range block.Attributes {
		if err := renderer.renderAttribute(attribute); err != nil {
			return err
		}

		renderer.engine.Newline(1)
	}

	attributed := false

	for _, parameter := range block.Parameters {
		if len(parameter.Attributes) > 0 {
			attributed = true

			break
		}
	}

	renderer.engine.Write("param(")

	if !attributed {
		err := layout.Intersperse(renderer.engine, block.Parameters, ", ", renderer.renderInlineParameter)
		if err != nil {
			return err
		}

		renderer.engine.Write(")")

		return nil
	}

	renderer.engine.Indent()

	for i, parameter := range block.Parameters {
		if i > 0 {
			renderer.engine.Write(",")
			renderer.engine.Newline(2)
		}

		if err := renderer.renderBlockParameter(parameter); err != nil {
			return err
		}
	}

	renderer.engine.Dedent()
	renderer.engine.Write(")")

	return nil
}

// renderInlineParameter spells a parameter on one line, attributes attached
// directly to the variable.
func (renderer *Renderer) renderInlineParameter(parameter *psast.Parameter) error {
	for _, attribute := range parameter.Attributes {
		if err := renderer.renderAttributeBase(attribute); err != nil {
			return err
		}
	}

	renderer.renderVariable(parameter.Name)

	return renderer.renderParameterDefault(parameter)
}

// renderBlockParameter spells a parameter inside a multi-line param block,
// one attribute per line above the variable.
func (renderer *Renderer) renderBlockParameter(parameter *psast.Parameter) error {
	for _, attribute := range parameter.Attributes {
		if err := renderer.renderAttributeBase(attribute); err != nil {
			return err
		}

		renderer.engine.Newline(1)
	}

	renderer.renderVariable(parameter.Name)

	return renderer.renderParameterDefault(parameter)
}

func (renderer *Renderer) renderParameterDefault(parameter *psast.Parameter) error {
	if parameter.DefaultValue == nil {
		return nil
	}

	renderer.engine.Write(" = ")

	return renderer.renderExpression(parameter.DefaultValue)
}

// renderTypeDefinition emits a class, interface or enum. Enum members join
// with commas, class members leave a blank line between each other and
// interface members render consecutively.
func (renderer *Renderer) renderTypeDefinition(node *psast.TypeDefinition) error {
	switch node.Keyword {
	case pstoken.Class, pstoken.Interface, pstoken.Enum:
	default:
		return fmt.Errorf("%w: type definition keyword %s", ErrUnsupportedConstruct, node.Keyword)
	}

	if err := renderer.writeLexeme(node.Keyword); err != nil {
		return err
	}

	renderer.engine.Write(" " + node.Name)

	if len(node.BaseTypes) > 0 {
		renderer.engine.Write(" : ")

		if err := layout.Intersperse(renderer.engine, node.BaseTypes, ", ", renderer.renderTypeName); err != nil {
			return err
		}
	}

	if len(node.Members) == 0 {
		renderer.engine.Newline(1)
		renderer.engine.Write("{")
		renderer.engine.Newline(1)
		renderer.engine.Write("}")

		return nil
	}

	renderer.engine.BeginBlock()

	for i, member := range node.Members {
		if i > 0 {
			switch node.Keyword {
			case pstoken.Enum:
				renderer.engine.Write(",")
				renderer.engine.Newline(1)
			case pstoken.Class:
				renderer.engine.Newline(2)
			default:
				renderer.engine.Newline(1)
			}
		}

		if err := renderer.renderTypeMember(member); err != nil {
			return err
		}
	}

	renderer.engine.EndBlock()

	return nil
}

func (renderer *Renderer) renderTypeMember(member psast.Member) error {
	switch node := member.(type) {
	case *psast.EnumMember:
		return renderer.renderEnumMember(node)
	case *psast.PropertyMember:
		return renderer.renderPropertyMember(node)
	case *psast.MethodMember:
		return renderer.renderMethodMember(node)
	default:
		return fmt.Errorf("%w: type member %T", ErrUnsupportedConstruct, member)
	}
}

func (renderer *Renderer) renderEnumMember(node *psast.EnumMember) error {
	renderer.engine.Write(node.Name)

	if node.Value != nil {
		renderer.engine.Write(" = ")

		return renderer.renderExpression(node.Value)
	}

	return nil
}

func (renderer *Renderer) renderPropertyMember(node *psast.PropertyMember) error {
	for _, attribute := range node.Attributes {
		if err := renderer.renderAttribute(attribute); err != nil {
			return err
		}

		renderer.engine.Newline(1)
	}

	renderer.writeMemberModifiers(node.Static, node.Hidden)

	if node.Type != nil {
		if err := renderer.renderTypeConstraint(node.Type); err != nil {
			return err
		}

		renderer.engine.Write(" ")
	}

	renderer.engine.Write("$" + node.Name)

	if node.DefaultValue != nil {
		renderer.engine.Write(" = ")

		return renderer.renderExpression(node.DefaultValue)
	}

	return nil
}

func (renderer *Renderer) renderMethodMember(node *psast.MethodMember) error {
	renderer.writeMemberModifiers(node.Static, node.Hidden)

	if node.ReturnType != nil {
		if err := renderer.renderTypeConstraint(node.ReturnType); err != nil {
			return err
		}

		renderer.engine.Write(" ")
	}

	renderer.engine.Write(node.Name + "(")

	if err := layout.Intersperse(renderer.engine, node.Parameters, ", ", renderer.renderInlineParameter); err != nil {
		return err
	}

	renderer.engine.Write(")")

	return renderer.renderStatementBlock(node.Body)
}

func (renderer *Renderer) writeMemberModifiers(static, hidden bool) {
	if static {
		renderer.engine.Write("static ")
	}

	if hidden {
		renderer.engine.Write("hidden ")
	}
}
