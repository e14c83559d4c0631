// Package layout owns the output buffer and indentation state used while
// rendering a syntax tree back to source text. Its primitives compose so that
// nested blocks produce strictly increasing indentation and dedenting never
// drops below column zero.
package layout

import (
	"strings"
)

// indentUnit is the fixed indentation step. Canonical output always indents
// by four spaces per depth level.
const indentUnit = "    "

// Engine accumulates rendered text. It is single-threaded and scoped to one
// top-level render call; use Reset (or a fresh Engine) between independent
// renders.
type Engine struct {
	buf   strings.Builder
	depth int
}

// NewEngine returns an empty Engine at depth zero.
func NewEngine() *Engine {
	return &Engine{}
}

// Write appends text verbatim to the buffer.
func (engine *Engine) Write(text string) {
	engine.buf.WriteString(text)
}

// Depth returns the current indentation depth.
func (engine *Engine) Depth() int {
	return engine.depth
}

// Indent increases the indentation depth and starts a new indented line.
func (engine *Engine) Indent() {
	engine.depth++
	engine.newlineIndent()
}

// Dedent decreases the indentation depth, never below zero, and starts a new
// indented line.
func (engine *Engine) Dedent() {
	if engine.depth > 0 {
		engine.depth--
	}

	engine.newlineIndent()
}

// BeginBlock opens a braced block: a new line at the current depth, the
// opening brace, then one level of indentation.
func (engine *Engine) BeginBlock() {
	engine.newlineIndent()
	engine.buf.WriteString("{")
	engine.Indent()
}

// EndBlock closes a braced block opened with BeginBlock.
func (engine *Engine) EndBlock() {
	engine.Dedent()
	engine.buf.WriteString("}")
}

// Newline emits count-1 blank lines followed by one indented line break.
// Newline(1) is the separator between sibling statements; Newline(2) leaves a
// blank line, as between attributed parameters.
func (engine *Engine) Newline(count int) {
	for i := 1; i < count; i++ {
		engine.buf.WriteString("\n")
	}

	engine.newlineIndent()
}

// EndStatement emits a bare line break with no re-indentation. It terminates
// a finished top-level statement.
func (engine *Engine) EndStatement() {
	engine.buf.WriteString("\n")
}

// String returns the accumulated text.
func (engine *Engine) String() string {
	return engine.buf.String()
}

// Reset discards the buffer and indentation state so the Engine can serve a
// new top-level render call.
func (engine *Engine) Reset() {
	engine.buf.Reset()
	engine.depth = 0
}

func (engine *Engine) newlineIndent() {
	engine.buf.WriteString("\n")

	for i := 0; i < engine.depth; i++ {
		engine.buf.WriteString(indentUnit)
	}
}

// Intersperse renders the first item, then for each subsequent item emits the
// separator before rendering it. Empty lists are a no-op.
func Intersperse[T any](engine *Engine, items []T, separator string, render func(T) error) error {
	for i, item := range items {
		if i > 0 {
			engine.Write(separator)
		}

		if err := render(item); err != nil {
			return err
		}
	}

	return nil
}
