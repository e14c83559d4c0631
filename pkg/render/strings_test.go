package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/powerfang/pkg/psast"
)

func TestExpandableStringEscapeTable(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"nul", "\x00", "`0"},
		{"bell", "\a", "`a"},
		{"backspace", "\b", "`b"},
		{"form feed", "\f", "`f"},
		{"newline", "\n", "`n"},
		{"carriage return", "\r", "`r"},
		{"tab", "\t", "`t"},
		{"vertical tab", "\v", "`v"},
		{"backtick", "`", "``"},
		{"double quote", `"`, "`\""},
		{"dollar", "$", "`$"},
		{"escape char", "\x1b", "`e"},
		{"plain ascii verbatim", "abc 123 '", "abc 123 '"},
		{"latin small e acute", "é", "`u{E9}"},
		{"cjk", "世", "`u{4E16}"},
		{"astral plane", "\U0001F600", "`u{1F600}"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			expr := &psast.ExpandableStringExpression{Value: tt.raw, Kind: psast.DoubleQuoted}

			got, err := Expression(expr)
			require.NoError(t, err)
			assert.Equal(t, `"`+tt.want+`"`, got)
		})
	}
}

func TestSingleQuoteDoubling(t *testing.T) {
	t.Parallel()

	expr := &psast.StringConstantExpression{Value: "banana's cake", Kind: psast.SingleQuoted}

	got, err := Expression(expr)
	require.NoError(t, err)
	assert.Equal(t, "'banana''s cake'", got)
}

func TestBareWordRendersVerbatim(t *testing.T) {
	t.Parallel()

	got, err := Expression(&psast.StringConstantExpression{Value: "Get-ChildItem", Kind: psast.BareWord})
	require.NoError(t, err)
	assert.Equal(t, "Get-ChildItem", got)
}

func TestHereStringsPreserveNewlines(t *testing.T) {
	t.Parallel()

	t.Run("literal here-string", func(t *testing.T) {
		t.Parallel()

		expr := &psast.StringConstantExpression{
			Value: "line one\nline 'two'",
			Kind:  psast.SingleQuotedHereString,
		}

		got, err := Expression(expr)
		require.NoError(t, err)
		assert.Equal(t, "@'\nline one\nline 'two'\n'@", got)
	})

	t.Run("expandable here-string", func(t *testing.T) {
		t.Parallel()

		expr := &psast.ExpandableStringExpression{
			Value: "count: $n\nsecond",
			Kind:  psast.DoubleQuotedHereString,
		}

		got, err := Expression(expr)
		require.NoError(t, err)
		assert.Equal(t, "@\"\ncount: $n\nsecond\n\"@", got)
	})
}

func TestDoubleQuotedConstantIsEscaped(t *testing.T) {
	t.Parallel()

	expr := &psast.StringConstantExpression{Value: "a\"b$c", Kind: psast.DoubleQuoted}

	got, err := Expression(expr)
	require.NoError(t, err)
	assert.Equal(t, "\"a`\"b`$c\"", got)
}

// Canonical input renders back to itself: build the tree a parser would
// produce for already-canonical source and check for byte identity modulo
// outer whitespace.
func TestIdempotenceOnCanonicalInput(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		source string
		stmt   psast.Statement
	}{
		{
			"assignment",
			"$x = 'banana''s cake'",
			assign("x", &psast.StringConstantExpression{Value: "banana's cake", Kind: psast.SingleQuoted}),
		},
		{
			"while loop",
			"while ($x)\n{\n    $a = 1\n    $b = 2\n}",
			&psast.WhileStatement{
				Condition: pipe(variable("x")),
				Body:      body(assign("a", intConst(1)), assign("b", intConst(2))),
			},
		},
		{
			"pipeline",
			"Get-Process | Where-Object CPU",
			&psast.Pipeline{Elements: []psast.Statement{
				&psast.Command{Elements: []psast.Node{bareWord("Get-Process")}},
				&psast.Command{Elements: []psast.Node{bareWord("Where-Object"), bareWord("CPU")}},
			}},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Statement(tt.stmt)
			require.NoError(t, err)
			assert.Equal(t, tt.source, strings.TrimSpace(got))
		})
	}
}
