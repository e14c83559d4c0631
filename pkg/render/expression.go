package render

import (
	"fmt"
	"strconv"

	"github.com/Sumatoshi-tech/powerfang/pkg/layout"
	"github.com/Sumatoshi-tech/powerfang/pkg/psast"
	"github.com/Sumatoshi-tech/powerfang/pkg/pstoken"
)

func (renderer *Renderer) renderExpression(expr psast.Expression) error {
	if err := renderer.enter(); err != nil {
		return err
	}
	defer renderer.leave()

	switch node := expr.(type) {
	case *psast.ConstantExpression:
		return renderer.renderConstant(node)
	case *psast.StringConstantExpression:
		return renderer.renderStringConstant(node)
	case *psast.ExpandableStringExpression:
		return renderer.renderExpandableString(node)
	case *psast.ArrayLiteral:
		return layout.Intersperse(renderer.engine, node.Elements, ", ", renderer.renderExpression)
	case *psast.ArrayExpression:
		return renderer.renderArrayExpression(node)
	case *psast.HashtableExpression:
		return renderer.renderHashtable(node)
	case *psast.VariableExpression:
		renderer.renderVariable(node)

		return nil
	case *psast.MemberExpression:
		return renderer.renderMemberAccess(node.Target, node.Member, node.Static)
	case *psast.InvokeMemberExpression:
		return renderer.renderInvokeMember(node)
	case *psast.IndexExpression:
		return renderer.renderIndex(node)
	case *psast.UnaryExpression:
		return renderer.renderUnary(node)
	case *psast.BinaryExpression:
		return renderer.renderBinary(node)
	case *psast.TernaryExpression:
		return renderer.renderTernary(node)
	case *psast.ParenExpression:
		return renderer.renderParen(node)
	case *psast.SubExpression:
		return renderer.renderSubExpression(node)
	case *psast.TypeExpression:
		return renderer.renderBracketedTypeName(node.TypeName)
	case *psast.ConvertExpression:
		return renderer.renderConvert(node)
	case *psast.AttributedExpression:
		return renderer.renderAttributed(node)
	case *psast.UsingExpression:
		renderer.engine.Write("$using:" + node.Child.Path)

		return nil
	case *psast.ScriptBlockExpression:
		return renderer.renderScriptBlock(node.Body)
	case *psast.ErrorExpression, *psast.BaseCtorInvokeMemberExpression:
		return fmt.Errorf("%w: %T", ErrUnsupportedConstruct, node)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedConstruct, expr)
	}
}

// renderConstant emits non-string literals. Booleans and null use their
// canonical keyword spellings rather than a default value formatting.
func (renderer *Renderer) renderConstant(node *psast.ConstantExpression) error {
	switch value := node.Value.(type) {
	case nil:
		return renderer.writeLexeme(pstoken.Null)
	case bool:
		if value {
			return renderer.writeLexeme(pstoken.True)
		}

		return renderer.writeLexeme(pstoken.False)
	case int64:
		renderer.engine.Write(strconv.FormatInt(value, 10))
	case int:
		renderer.engine.Write(strconv.Itoa(value))
	case float64:
		renderer.engine.Write(strconv.FormatFloat(value, 'g', -1, 64))
	case string:
		renderer.engine.Write(value)
	default:
		return fmt.Errorf("%w: constant of type %T", ErrUnsupportedConstruct, node.Value)
	}

	return nil
}

func (renderer *Renderer) renderStringConstant(node *psast.StringConstantExpression) error {
	switch node.Kind {
	case psast.BareWord:
		renderer.engine.Write(node.Value)
	case psast.SingleQuoted:
		renderer.engine.Write("'" + doubleSingleQuotes(node.Value) + "'")
	case psast.DoubleQuoted:
		renderer.engine.Write(`"` + escapeExpandable(node.Value) + `"`)
	case psast.SingleQuotedHereString:
		renderer.engine.Write("@'\n" + node.Value + "\n'@")
	case psast.DoubleQuotedHereString:
		renderer.engine.Write("@\"\n" + node.Value + "\n\"@")
	default:
		return fmt.Errorf("%w: string kind %d", ErrUnsupportedConstruct, int(node.Kind))
	}

	return nil
}

func (renderer *Renderer) renderExpandableString(node *psast.ExpandableStringExpression) error {
	switch node.Kind {
	case psast.BareWord:
		renderer.engine.Write(node.Value)
	case psast.DoubleQuoted:
		renderer.engine.Write(`"` + escapeExpandable(node.Value) + `"`)
	case psast.DoubleQuotedHereString:
		renderer.engine.Write("@\"\n" + node.Value + "\n\"@")
	default:
		return fmt.Errorf("%w: expandable string kind %d", ErrUnsupportedConstruct, int(node.Kind))
	}

	return nil
}

// renderArrayExpression emits @( ... ) with the inner statement sequence
// joined by "; " instead of the newline separation used inside braced
// blocks. Multiple statements stay on one line; only a statement that
// itself spans lines introduces breaks.
func (renderer *Renderer) renderArrayExpression(node *psast.ArrayExpression) error {
	renderer.engine.Write("@(")

	if node.SubExpression != nil {
		err := layout.Intersperse(renderer.engine, node.SubExpression.Statements, "; ", renderer.renderStatement)
		if err != nil {
			return err
		}
	}

	renderer.engine.Write(")")

	return nil
}

func (renderer *Renderer) renderSubExpression(node *psast.SubExpression) error {
	renderer.engine.Write("$(")

	if node.SubExpression != nil {
		err := layout.Intersperse(renderer.engine, node.SubExpression.Statements, "; ", renderer.renderStatement)
		if err != nil {
			return err
		}
	}

	renderer.engine.Write(")")

	return nil
}

// renderHashtable emits @{} for empty tables, otherwise one key = value line
// per entry inside an indented block.
func (renderer *Renderer) renderHashtable(node *psast.HashtableExpression) error {
	if len(node.Entries) == 0 {
		renderer.engine.Write("@{}")

		return nil
	}

	renderer.engine.Write("@{")
	renderer.engine.Indent()

	for i, entry := range node.Entries {
		if i > 0 {
			renderer.engine.Newline(1)
		}

		if keyErr := renderer.renderExpression(entry.Key); keyErr != nil {
			return keyErr
		}

		renderer.engine.Write(" = ")

		if valErr := renderer.renderStatement(entry.Value); valErr != nil {
			return valErr
		}
	}

	renderer.engine.Dedent()
	renderer.engine.Write("}")

	return nil
}

func (renderer *Renderer) renderVariable(node *psast.VariableExpression) {
	sigil := "$"
	if node.Splatted {
		sigil = "@"
	}

	renderer.engine.Write(sigil + node.Path)
}

func (renderer *Renderer) renderMemberAccess(target, member psast.Expression, static bool) error {
	if err := renderer.renderExpression(target); err != nil {
		return err
	}

	if static {
		if err := renderer.writeLexeme(pstoken.ColonColon); err != nil {
			return err
		}
	} else {
		if err := renderer.writeLexeme(pstoken.Dot); err != nil {
			return err
		}
	}

	return renderer.renderExpression(member)
}

func (renderer *Renderer) renderInvokeMember(node *psast.InvokeMemberExpression) error {
	if err := renderer.renderMemberAccess(node.Target, node.Member, node.Static); err != nil {
		return err
	}

	renderer.engine.Write("(")

	if err := layout.Intersperse(renderer.engine, node.Arguments, ", ", renderer.renderExpression); err != nil {
		return err
	}

	renderer.engine.Write(")")

	return nil
}

func (renderer *Renderer) renderIndex(node *psast.IndexExpression) error {
	if err := renderer.renderExpression(node.Target); err != nil {
		return err
	}

	renderer.engine.Write("[")

	if err := renderer.renderExpression(node.Index); err != nil {
		return err
	}

	renderer.engine.Write("]")

	return nil
}

// renderUnary emits the operator and its operand. Increment and decrement
// attach directly to the operand; every other prefix operator is followed by
// one space.
func (renderer *Renderer) renderUnary(node *psast.UnaryExpression) error {
	switch node.Operator {
	case pstoken.PostfixPlusPlus, pstoken.PostfixMinusMinus:
		if err := renderer.renderExpression(node.Child); err != nil {
			return err
		}

		return renderer.writeLexeme(node.Operator)
	case pstoken.PlusPlus, pstoken.MinusMinus:
		if err := renderer.writeLexeme(node.Operator); err != nil {
			return err
		}

		return renderer.renderExpression(node.Child)
	default:
		if err := renderer.writeLexeme(node.Operator); err != nil {
			return err
		}

		renderer.engine.Write(" ")

		return renderer.renderExpression(node.Child)
	}
}

func (renderer *Renderer) renderBinary(node *psast.BinaryExpression) error {
	if err := renderer.renderExpression(node.Left); err != nil {
		return err
	}

	renderer.engine.Write(" ")

	if err := renderer.writeLexeme(node.Operator); err != nil {
		return err
	}

	renderer.engine.Write(" ")

	return renderer.renderExpression(node.Right)
}

func (renderer *Renderer) renderTernary(node *psast.TernaryExpression) error {
	if err := renderer.renderExpression(node.Condition); err != nil {
		return err
	}

	renderer.engine.Write(" ? ")

	if err := renderer.renderExpression(node.IfTrue); err != nil {
		return err
	}

	renderer.engine.Write(" : ")

	return renderer.renderExpression(node.IfFalse)
}

func (renderer *Renderer) renderParen(node *psast.ParenExpression) error {
	renderer.engine.Write("(")

	if err := renderer.renderStatement(node.Pipeline); err != nil {
		return err
	}

	renderer.engine.Write(")")

	return nil
}

func (renderer *Renderer) renderConvert(node *psast.ConvertExpression) error {
	if err := renderer.renderTypeConstraint(node.Type); err != nil {
		return err
	}

	return renderer.renderExpression(node.Child)
}

func (renderer *Renderer) renderAttributed(node *psast.AttributedExpression) error {
	if err := renderer.renderAttributeBase(node.Attribute); err != nil {
		return err
	}

	return renderer.renderExpression(node.Child)
}
