package pstoken

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLexemeKnownKinds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		kind Kind
		want string
	}{
		{"equality", Ieq, "-eq"},
		{"case sensitive equality", Ceq, "-ceq"},
		{"not", Not, "-not"},
		{"bitwise not", Bnot, "-bnot"},
		{"shift left", Shl, "-shl"},
		{"format", Format, "-f"},
		{"pipe", Pipe, "|"},
		{"and chain", AndAnd, "&&"},
		{"null coalescing assign", QuestionQuestionEquals, "??="},
		{"increment", PlusPlus, "++"},
		{"static member access", ColonColon, "::"},
		{"foreach keyword", Foreach, "foreach"},
		{"dynamicparam keyword", DynamicParam, "dynamicparam"},
		{"true constant", True, "$true"},
		{"null constant", Null, "$null"},
		{"redirection append", RedirectionAppend, ">>"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := Lexeme(tt.kind)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLexemeUnsupportedKind(t *testing.T) {
	t.Parallel()

	_, err := Lexeme(Unknown)
	require.ErrorIs(t, err, ErrUnsupportedToken)

	_, err = Lexeme(Kind(9999))
	require.ErrorIs(t, err, ErrUnsupportedToken)
}

func TestLexemeTableIsTotal(t *testing.T) {
	t.Parallel()

	for _, kind := range All() {
		lexeme, err := Lexeme(kind)
		require.NoError(t, err)
		assert.NotEmpty(t, lexeme, "kind %d has an empty lexeme", int(kind))
	}
}

func TestKindString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "-eq", Ieq.String())
	assert.Equal(t, "Kind(0)", Unknown.String())
}

func TestStreamCodes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		stream Stream
		want   string
	}{
		{"output stream indicator is omitted", StreamOutput, ""},
		{"error", StreamError, "2"},
		{"warning", StreamWarning, "3"},
		{"verbose", StreamVerbose, "4"},
		{"debug", StreamDebug, "5"},
		{"information", StreamInformation, "6"},
		{"all", StreamAll, "*"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.want, tt.stream.Code())
			assert.True(t, tt.stream.Valid())
		})
	}

	assert.False(t, Stream(0).Valid())
	assert.False(t, Stream(42).Valid())
}
