package render

import (
	"fmt"

	"github.com/Sumatoshi-tech/powerfang/pkg/layout"
	"github.com/Sumatoshi-tech/powerfang/pkg/psast"
	"github.com/Sumatoshi-tech/powerfang/pkg/pstoken"
)

func (renderer *Renderer) renderStatement(stmt psast.Statement) error {
	if err := renderer.enter(); err != nil {
		return err
	}
	defer renderer.leave()

	switch node := stmt.(type) {
	case *psast.Pipeline:
		return renderer.renderPipeline(node)
	case *psast.Command:
		return renderer.renderCommand(node)
	case *psast.CommandExpression:
		return renderer.renderCommandExpression(node)
	case *psast.AssignmentStatement:
		return renderer.renderAssignment(node)
	case *psast.PipelineChain:
		return renderer.renderPipelineChain(node)
	case *psast.IfStatement:
		return renderer.renderIf(node)
	case *psast.WhileStatement:
		return renderer.renderWhile(node)
	case *psast.DoWhileStatement:
		return renderer.renderDoLoop(node.Body, node.Condition, pstoken.While)
	case *psast.DoUntilStatement:
		return renderer.renderDoLoop(node.Body, node.Condition, pstoken.Until)
	case *psast.ForStatement:
		return renderer.renderFor(node)
	case *psast.ForEachStatement:
		return renderer.renderForEach(node)
	case *psast.ControlFlowStatement:
		return renderer.renderControlFlow(node)
	case *psast.FunctionDefinition:
		return renderer.renderFunctionDefinition(node)
	case *psast.TypeDefinition:
		return renderer.renderTypeDefinition(node)
	case *psast.TrapStatement:
		return renderer.renderTrap(node)
	case *psast.SwitchStatement, *psast.TryStatement, *psast.BlockStatement,
		*psast.DataStatement, *psast.ConfigurationDefinition,
		*psast.DynamicKeywordStatement, *psast.ErrorStatement:
		return fmt.Errorf("%w: %T", ErrUnsupportedConstruct, node)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedConstruct, stmt)
	}
}

// renderPipeline joins pipeline elements with " | ". Background pipelines
// append " &".
func (renderer *Renderer) renderPipeline(node *psast.Pipeline) error {
	err := layout.Intersperse(renderer.engine, node.Elements, " | ", renderer.renderStatement)
	if err != nil {
		return err
	}

	if node.Background {
		renderer.engine.Write(" &")
	}

	return nil
}

func (renderer *Renderer) renderCommand(node *psast.Command) error {
	if node.InvocationOperator != pstoken.Unknown {
		if err := renderer.writeLexeme(node.InvocationOperator); err != nil {
			return err
		}

		renderer.engine.Write(" ")
	}

	for i, element := range node.Elements {
		if i > 0 {
			renderer.engine.Write(" ")
		}

		if err := renderer.renderCommandElement(element); err != nil {
			return err
		}
	}

	return renderer.renderRedirections(node.Redirections)
}

func (renderer *Renderer) renderCommandElement(element psast.Node) error {
	switch node := element.(type) {
	case *psast.CommandParameter:
		renderer.engine.Write("-" + node.Name)

		if node.Argument != nil {
			renderer.engine.Write(":")

			return renderer.renderExpression(node.Argument)
		}

		return nil
	case psast.Expression:
		return renderer.renderExpression(node)
	default:
		return fmt.Errorf("%w: command element %T", ErrUnsupportedConstruct, element)
	}
}

func (renderer *Renderer) renderCommandExpression(node *psast.CommandExpression) error {
	if err := renderer.renderExpression(node.Expression); err != nil {
		return err
	}

	return renderer.renderRedirections(node.Redirections)
}

func (renderer *Renderer) renderRedirections(redirections []psast.Redirection) error {
	if len(redirections) == 0 {
		return nil
	}

	renderer.engine.Write(" ")

	for i, redirection := range redirections {
		if i > 0 {
			renderer.engine.Write(" ")
		}

		if err := renderer.renderRedirection(redirection); err != nil {
			return err
		}
	}

	return nil
}

func (renderer *Renderer) renderRedirection(redirection psast.Redirection) error {
	switch node := redirection.(type) {
	case *psast.FileRedirection:
		renderer.engine.Write(node.Stream.Code())

		operator := pstoken.Redirection
		if node.Append {
			operator = pstoken.RedirectionAppend
		}

		if err := renderer.writeLexeme(operator); err != nil {
			return err
		}

		return renderer.renderExpression(node.Target)
	case *psast.MergingRedirection:
		renderer.engine.Write(node.From.Code() + ">&" + node.To.Indicator())

		return nil
	default:
		return fmt.Errorf("%w: redirection %T", ErrUnsupportedConstruct, redirection)
	}
}

func (renderer *Renderer) renderAssignment(node *psast.AssignmentStatement) error {
	if err := renderer.renderExpression(node.Left); err != nil {
		return err
	}

	renderer.engine.Write(" ")

	if err := renderer.writeLexeme(node.Operator); err != nil {
		return err
	}

	renderer.engine.Write(" ")

	return renderer.renderStatement(node.Right)
}

func (renderer *Renderer) renderPipelineChain(node *psast.PipelineChain) error {
	if err := renderer.renderStatement(node.Left); err != nil {
		return err
	}

	renderer.engine.Write(" ")

	if err := renderer.writeLexeme(node.Operator); err != nil {
		return err
	}

	renderer.engine.Write(" ")

	if err := renderer.renderStatement(node.Right); err != nil {
		return err
	}

	if node.Background {
		renderer.engine.Write(" &")
	}

	return nil
}

func (renderer *Renderer) renderIf(node *psast.IfStatement) error {
	for i, clause := range node.Clauses {
		keyword := "if"

		if i > 0 {
			renderer.engine.Newline(1)

			keyword = "elseif"
		}

		renderer.engine.Write(keyword + " (")

		if err := renderer.renderStatement(clause.Condition); err != nil {
			return err
		}

		renderer.engine.Write(")")

		if err := renderer.renderStatementBlock(clause.Body); err != nil {
			return err
		}
	}

	if node.Else != nil {
		renderer.engine.Newline(1)
		renderer.engine.Write("else")

		return renderer.renderStatementBlock(node.Else)
	}

	return nil
}

func (renderer *Renderer) renderWhile(node *psast.WhileStatement) error {
	renderer.engine.Write("while (")

	if err := renderer.renderStatement(node.Condition); err != nil {
		return err
	}

	renderer.engine.Write(")")

	return renderer.renderStatementBlock(node.Body)
}

// renderDoLoop covers do/while and do/until, which differ only in the
// trailing keyword.
func (renderer *Renderer) renderDoLoop(body *psast.StatementBlock, condition psast.Statement, keyword pstoken.Kind) error {
	renderer.engine.Write("do")

	if err := renderer.renderStatementBlock(body); err != nil {
		return err
	}

	renderer.engine.Write(" ")

	if err := renderer.writeLexeme(keyword); err != nil {
		return err
	}

	renderer.engine.Write(" (")

	if err := renderer.renderStatement(condition); err != nil {
		return err
	}

	renderer.engine.Write(")")

	return nil
}

func (renderer *Renderer) renderFor(node *psast.ForStatement) error {
	renderer.engine.Write("for (")

	clauses := []psast.Statement{node.Initializer, node.Condition, node.Iterator}
	for i, clause := range clauses {
		if i > 0 {
			renderer.engine.Write(";")
		}

		if clause == nil {
			continue
		}

		if i > 0 {
			renderer.engine.Write(" ")
		}

		if err := renderer.renderStatement(clause); err != nil {
			return err
		}
	}

	renderer.engine.Write(")")

	return renderer.renderStatementBlock(node.Body)
}

func (renderer *Renderer) renderForEach(node *psast.ForEachStatement) error {
	renderer.engine.Write("foreach (")
	renderer.renderVariable(node.Variable)
	renderer.engine.Write(" in ")

	if err := renderer.renderStatement(node.Source); err != nil {
		return err
	}

	renderer.engine.Write(")")

	return renderer.renderStatementBlock(node.Body)
}

// renderControlFlow emits break, continue, return, exit or throw with an
// optional child expression.
func (renderer *Renderer) renderControlFlow(node *psast.ControlFlowStatement) error {
	switch node.Keyword {
	case pstoken.Break, pstoken.Continue, pstoken.Return, pstoken.Exit, pstoken.Throw:
	default:
		return fmt.Errorf("%w: control-flow keyword %s", ErrUnsupportedConstruct, node.Keyword)
	}

	if err := renderer.writeLexeme(node.Keyword); err != nil {
		return err
	}

	if node.Child != nil {
		renderer.engine.Write(" ")

		return renderer.renderExpression(node.Child)
	}

	return nil
}

func (renderer *Renderer) renderFunctionDefinition(node *psast.FunctionDefinition) error {
	keyword := "function"
	if node.IsFilter {
		keyword = "filter"
	}

	renderer.engine.Write(keyword + " " + node.Name)
	renderer.engine.Newline(1)

	return renderer.renderScriptBlock(node.Body)
}

// renderTrap guards depth itself: traps reach here straight from
// renderSequence, without passing through renderStatement.
func (renderer *Renderer) renderTrap(node *psast.TrapStatement) error {
	if err := renderer.enter(); err != nil {
		return err
	}
	defer renderer.leave()

	renderer.engine.Write("trap")

	if node.Type != nil {
		renderer.engine.Write(" ")

		if err := renderer.renderTypeConstraint(node.Type); err != nil {
			return err
		}
	}

	return renderer.renderStatementBlock(node.Body)
}
