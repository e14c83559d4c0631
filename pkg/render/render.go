// Package render reconstructs canonical source text from a syntax tree.
//
// Rendering is a pure function of the node graph: the tree is borrowed
// read-only and the only mutable state is the output buffer and indentation
// depth inside the Renderer, both scoped to one top-level render call. A
// Renderer is not safe for concurrent use; independent renders need separate
// Renderer values or an explicit Reset between calls.
package render

import (
	"errors"
	"fmt"

	"github.com/Sumatoshi-tech/powerfang/pkg/layout"
	"github.com/Sumatoshi-tech/powerfang/pkg/psast"
	"github.com/Sumatoshi-tech/powerfang/pkg/pstoken"
)

// MaxDepth bounds tree recursion. Inputs nested deeper than this are refused
// instead of risking stack exhaustion.
const MaxDepth = 512

// ErrUnsupportedConstruct is returned when a node variant is explicitly
// outside the renderer's scope (switch, try/catch, data sections and
// friends). No partial output is produced for that subtree.
var ErrUnsupportedConstruct = errors.New("unsupported construct")

// ErrDepthExceeded is returned when the input tree nests deeper than
// MaxDepth.
var ErrDepthExceeded = errors.New("maximum tree depth exceeded")

// Renderer walks a syntax tree depth-first and accumulates canonical source
// text.
type Renderer struct {
	engine *layout.Engine
	depth  int
}

// New returns a Renderer ready for one top-level render call.
func New() *Renderer {
	return &Renderer{engine: layout.NewEngine()}
}

// Reset discards accumulated output so the Renderer can serve a new
// top-level render call.
func (renderer *Renderer) Reset() {
	renderer.engine.Reset()
	renderer.depth = 0
}

// Statement renders a statement node, terminated with a line break. The
// partial buffer is discarded on error.
func (renderer *Renderer) Statement(stmt psast.Statement) (string, error) {
	renderer.Reset()

	if err := renderer.renderStatement(stmt); err != nil {
		return "", err
	}

	renderer.engine.EndStatement()

	return renderer.engine.String(), nil
}

// Expression renders an expression node.
func (renderer *Renderer) Expression(expr psast.Expression) (string, error) {
	renderer.Reset()

	if err := renderer.renderExpression(expr); err != nil {
		return "", err
	}

	return renderer.engine.String(), nil
}

// UsingDirective renders a top-level using directive, terminated with a line
// break.
func (renderer *Renderer) UsingDirective(directive *psast.UsingDirective) (string, error) {
	renderer.Reset()

	if err := renderer.renderUsingDirective(directive); err != nil {
		return "", err
	}

	renderer.engine.EndStatement()

	return renderer.engine.String(), nil
}

// Statement renders a single statement with a fresh Renderer.
func Statement(stmt psast.Statement) (string, error) {
	return New().Statement(stmt)
}

// Expression renders a single expression with a fresh Renderer.
func Expression(expr psast.Expression) (string, error) {
	return New().Expression(expr)
}

// UsingDirective renders a single using directive with a fresh Renderer.
func UsingDirective(directive *psast.UsingDirective) (string, error) {
	return New().UsingDirective(directive)
}

func (renderer *Renderer) renderUsingDirective(directive *psast.UsingDirective) error {
	switch directive.Kind {
	case pstoken.Namespace, pstoken.Module, pstoken.Assembly:
	default:
		return fmt.Errorf("%w: using directive kind %s", ErrUnsupportedConstruct, directive.Kind)
	}

	keyword, err := pstoken.Lexeme(directive.Kind)
	if err != nil {
		return err
	}

	renderer.engine.Write("using " + keyword + " ")

	if directive.Hashtable != nil {
		return renderer.renderExpression(directive.Hashtable)
	}

	renderer.engine.Write(directive.Name)

	return nil
}

// enter guards recursion depth; every renderExpression/renderStatement call
// pairs it with leave.
func (renderer *Renderer) enter() error {
	renderer.depth++
	if renderer.depth > MaxDepth {
		return fmt.Errorf("%w: %d levels", ErrDepthExceeded, renderer.depth)
	}

	return nil
}

func (renderer *Renderer) leave() {
	renderer.depth--
}

// writeLexeme looks up and emits the canonical spelling of a token.
func (renderer *Renderer) writeLexeme(kind pstoken.Kind) error {
	lexeme, err := pstoken.Lexeme(kind)
	if err != nil {
		return err
	}

	renderer.engine.Write(lexeme)

	return nil
}
