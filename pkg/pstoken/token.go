// Package pstoken enumerates the operator, keyword and punctuation tokens of
// the PowerShell grammar and maps each one to its canonical textual spelling.
package pstoken

import (
	"errors"
	"fmt"
	"slices"
)

// ErrUnsupportedToken is returned when the lexeme table has no entry for a
// token kind. Hitting it means the input tree carries a token this renderer
// does not know how to spell.
var ErrUnsupportedToken = errors.New("unsupported token")

// Kind identifies one token of the target grammar.
type Kind int

// Token kinds. The numeric values are internal; only the lexeme table below
// gives them meaning.
const (
	Unknown Kind = iota

	// Punctuation and structural tokens.
	LParen
	RParen
	LCurly
	RCurly
	LBracket
	RBracket
	AtParen
	AtCurly
	DollarParen
	Semi
	Comma
	Dot
	DotDot
	ColonColon
	Colon
	Pipe
	AndAnd
	OrOr
	Ampersand
	Exclaim
	QuestionMark
	QuestionQuestion

	// Assignment operators.
	Equals
	PlusEquals
	MinusEquals
	MultiplyEquals
	DivideEquals
	RemainderEquals
	QuestionQuestionEquals

	// Arithmetic operators.
	Plus
	Minus
	Multiply
	Divide
	Rem
	Format
	Range

	// Increment and decrement. The postfix kinds share a spelling with the
	// prefix kinds but attach after their operand.
	PlusPlus
	MinusMinus
	PostfixPlusPlus
	PostfixMinusMinus

	// Logical and bitwise operators.
	And
	Or
	Xor
	Not
	Band
	Bor
	Bxor
	Bnot
	Shl
	Shr

	// Case-insensitive comparison operators.
	Ieq
	Ine
	Ige
	Igt
	Ile
	Ilt
	Ilike
	Inotlike
	Imatch
	Inotmatch
	Ireplace
	Icontains
	Inotcontains
	Iin
	Inotin
	Isplit

	// Case-sensitive comparison operators.
	Ceq
	Cne
	Cge
	Cgt
	Cle
	Clt
	Clike
	Cnotlike
	Cmatch
	Cnotmatch
	Creplace
	Ccontains
	Cnotcontains
	Cin
	Cnotin
	Csplit

	// Join and type operators.
	Join
	Is
	IsNot
	As

	// Redirection operators.
	Redirection
	RedirectionAppend

	// Invocation operators.
	DotSource
	CallOperator

	// Reserved words.
	Begin
	Break
	Catch
	Class
	Continue
	Data
	Do
	DynamicParam
	Else
	ElseIf
	End
	Enum
	Exit
	Filter
	Finally
	For
	Foreach
	From
	Function
	Hidden
	If
	In
	Interface
	Param
	Process
	Return
	Static
	Switch
	Throw
	Trap
	Try
	Until
	Using
	While
	Workflow
	Configuration
	Base
	Default
	Define
	Namespace
	Module
	Assembly
	Type
	Command

	// Constant keywords.
	True
	False
	Null
)

// lexemes is the canonical spelling table. It is pure data, built once and
// never mutated.
var lexemes = map[Kind]string{
	LParen:           "(",
	RParen:           ")",
	LCurly:           "{",
	RCurly:           "}",
	LBracket:         "[",
	RBracket:         "]",
	AtParen:          "@(",
	AtCurly:          "@{",
	DollarParen:      "$(",
	Semi:             ";",
	Comma:            ",",
	Dot:              ".",
	DotDot:           "..",
	ColonColon:       "::",
	Colon:            ":",
	Pipe:             "|",
	AndAnd:           "&&",
	OrOr:             "||",
	Ampersand:        "&",
	Exclaim:          "!",
	QuestionMark:     "?",
	QuestionQuestion: "??",

	Equals:                 "=",
	PlusEquals:             "+=",
	MinusEquals:            "-=",
	MultiplyEquals:         "*=",
	DivideEquals:           "/=",
	RemainderEquals:        "%=",
	QuestionQuestionEquals: "??=",

	Plus:     "+",
	Minus:    "-",
	Multiply: "*",
	Divide:   "/",
	Rem:      "%",
	Format:   "-f",
	Range:    "..",

	PlusPlus:          "++",
	MinusMinus:        "--",
	PostfixPlusPlus:   "++",
	PostfixMinusMinus: "--",

	And:  "-and",
	Or:   "-or",
	Xor:  "-xor",
	Not:  "-not",
	Band: "-band",
	Bor:  "-bor",
	Bxor: "-bxor",
	Bnot: "-bnot",
	Shl:  "-shl",
	Shr:  "-shr",

	Ieq:          "-eq",
	Ine:          "-ne",
	Ige:          "-ge",
	Igt:          "-gt",
	Ile:          "-le",
	Ilt:          "-lt",
	Ilike:        "-like",
	Inotlike:     "-notlike",
	Imatch:       "-match",
	Inotmatch:    "-notmatch",
	Ireplace:     "-replace",
	Icontains:    "-contains",
	Inotcontains: "-notcontains",
	Iin:          "-in",
	Inotin:       "-notin",
	Isplit:       "-split",

	Ceq:          "-ceq",
	Cne:          "-cne",
	Cge:          "-cge",
	Cgt:          "-cgt",
	Cle:          "-cle",
	Clt:          "-clt",
	Clike:        "-clike",
	Cnotlike:     "-cnotlike",
	Cmatch:       "-cmatch",
	Cnotmatch:    "-cnotmatch",
	Creplace:     "-creplace",
	Ccontains:    "-ccontains",
	Cnotcontains: "-cnotcontains",
	Cin:          "-cin",
	Cnotin:       "-cnotin",
	Csplit:       "-csplit",

	Join:  "-join",
	Is:    "-is",
	IsNot: "-isnot",
	As:    "-as",

	Redirection:       ">",
	RedirectionAppend: ">>",

	DotSource:    ".",
	CallOperator: "&",

	Begin:         "begin",
	Break:         "break",
	Catch:         "catch",
	Class:         "class",
	Continue:      "continue",
	Data:          "data",
	Do:            "do",
	DynamicParam:  "dynamicparam",
	Else:          "else",
	ElseIf:        "elseif",
	End:           "end",
	Enum:          "enum",
	Exit:          "exit",
	Filter:        "filter",
	Finally:       "finally",
	For:           "for",
	Foreach:       "foreach",
	From:          "from",
	Function:      "function",
	Hidden:        "hidden",
	If:            "if",
	In:            "in",
	Interface:     "interface",
	Param:         "param",
	Process:       "process",
	Return:        "return",
	Static:        "static",
	Switch:        "switch",
	Throw:         "throw",
	Trap:          "trap",
	Try:           "try",
	Until:         "until",
	Using:         "using",
	While:         "while",
	Workflow:      "workflow",
	Configuration: "configuration",
	Base:          "base",
	Default:       "default",
	Define:        "define",
	Namespace:     "namespace",
	Module:        "module",
	Assembly:      "assembly",
	Type:          "type",
	Command:       "command",

	True:  "$true",
	False: "$false",
	Null:  "$null",
}

// Lexeme returns the canonical spelling for kind. Every kind the grammar
// supports has an entry; anything else reports ErrUnsupportedToken.
func Lexeme(kind Kind) (string, error) {
	lexeme, ok := lexemes[kind]
	if !ok {
		return "", fmt.Errorf("%w: kind %d", ErrUnsupportedToken, int(kind))
	}

	return lexeme, nil
}

// String implements fmt.Stringer for diagnostics. Unknown kinds render as
// their numeric value.
func (kind Kind) String() string {
	if lexeme, ok := lexemes[kind]; ok {
		return lexeme
	}

	return fmt.Sprintf("Kind(%d)", int(kind))
}

// All returns every kind present in the lexeme table, in ascending kind
// order. Used by tooling that dumps the table.
func All() []Kind {
	kinds := make([]Kind, 0, len(lexemes))

	for kind := range lexemes {
		kinds = append(kinds, kind)
	}

	slices.Sort(kinds)

	return kinds
}
