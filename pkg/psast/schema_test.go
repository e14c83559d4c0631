package psast_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/powerfang/pkg/psast"
)

func TestValidateDocumentAcceptsWellFormedTrees(t *testing.T) {
	t.Parallel()

	doc := `{
		"kind": "Pipeline",
		"elements": [
			{"kind": "Command", "elements": [{"kind": "StringConstant", "value": "Get-Date", "stringKind": "BareWord"}]}
		]
	}`

	require.NoError(t, psast.ValidateDocument([]byte(doc)))
}

func TestValidateDocumentRejectsUnknownKind(t *testing.T) {
	t.Parallel()

	err := psast.ValidateDocument([]byte(`{"kind": "Teleport"}`))
	require.ErrorIs(t, err, psast.ErrSchemaViolation)
}

func TestValidateDocumentRejectsMissingKind(t *testing.T) {
	t.Parallel()

	err := psast.ValidateDocument([]byte(`{"path": "x"}`))
	require.ErrorIs(t, err, psast.ErrSchemaViolation)
}

func TestValidateDocumentRejectsBadStream(t *testing.T) {
	t.Parallel()

	doc := `{"kind": "FileRedirection", "stream": 9, "target": {"kind": "Variable", "path": "f"}}`

	err := psast.ValidateDocument([]byte(doc))
	require.ErrorIs(t, err, psast.ErrSchemaViolation)
}

func TestValidateDocumentRejectsMalformedJSON(t *testing.T) {
	t.Parallel()

	err := psast.ValidateDocument([]byte(`{"kind": `))
	require.ErrorIs(t, err, psast.ErrInvalidDocument)
}
