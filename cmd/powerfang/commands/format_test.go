package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/powerfang/pkg/psast"
	"github.com/Sumatoshi-tech/powerfang/pkg/pstoken"
)

const assignmentDoc = `{
	"kind": "Assignment",
	"left": {"kind": "Variable", "path": "x"},
	"operator": "Equals",
	"right": {
		"kind": "Pipeline",
		"elements": [{"kind": "CommandExpression", "expression": {"kind": "Constant", "value": 1}}]
	}
}`

func TestResolveFormat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		inputPath    string
		flagFormat   string
		configFormat string
		want         string
		wantErr      bool
	}{
		{"flag wins", "tree.json", "yaml", "auto", "yaml", false},
		{"json extension", "tree.json", "", "auto", "json", false},
		{"yaml extension", "tree.yaml", "", "auto", "yaml", false},
		{"yml extension", "tree.yml", "", "auto", "yaml", false},
		{"config fallback", "tree.txt", "", "json", "json", false},
		{"stdin defaults to json", "-", "", "auto", "json", false},
		{"unknown extension", "tree.txt", "", "auto", "", true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := resolveFormat(tt.inputPath, tt.flagFormat, tt.configFormat)

			if tt.wantErr {
				require.ErrorIs(t, err, ErrAmbiguousFormat)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRunFormatJSONToFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	inputPath := filepath.Join(dir, "tree.json")
	outputPath := filepath.Join(dir, "out.ps1")

	require.NoError(t, os.WriteFile(inputPath, []byte(assignmentDoc), 0o600))

	err := runFormat(inputPath, formatOptions{outputPath: outputPath})
	require.NoError(t, err)

	rendered, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Equal(t, "$x = 1\n", string(rendered))
}

func TestRunFormatYAML(t *testing.T) {
	t.Parallel()

	doc := `
kind: Pipeline
elements:
  - kind: Command
    elements:
      - kind: StringConstant
        value: Get-Date
        stringKind: BareWord
`

	dir := t.TempDir()
	inputPath := filepath.Join(dir, "tree.yaml")
	outputPath := filepath.Join(dir, "out.ps1")

	require.NoError(t, os.WriteFile(inputPath, []byte(doc), 0o600))

	err := runFormat(inputPath, formatOptions{outputPath: outputPath})
	require.NoError(t, err)

	rendered, err := os.ReadFile(outputPath)
	require.NoError(t, err)
	assert.Equal(t, "Get-Date\n", string(rendered))
}

func TestRunFormatValidateRejectsUnknownKind(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	inputPath := filepath.Join(dir, "tree.json")

	require.NoError(t, os.WriteFile(inputPath, []byte(`{"kind": "Teleport"}`), 0o600))

	err := runFormat(inputPath, formatOptions{validate: true})
	require.ErrorIs(t, err, psast.ErrSchemaViolation)
}

func TestRunFormatMissingInput(t *testing.T) {
	t.Parallel()

	err := runFormat(filepath.Join(t.TempDir(), "absent.json"), formatOptions{})
	require.Error(t, err)
}

func TestRenderNodeTopLevelKinds(t *testing.T) {
	t.Parallel()

	t.Run("using directive", func(t *testing.T) {
		t.Parallel()

		got, err := renderNode(&psast.UsingDirective{Kind: pstoken.Namespace, Name: "System.Text"})
		require.NoError(t, err)
		assert.Equal(t, "using namespace System.Text\n", got)
	})

	t.Run("bare expression", func(t *testing.T) {
		t.Parallel()

		got, err := renderNode(&psast.VariableExpression{Path: "x"})
		require.NoError(t, err)
		assert.Equal(t, "$x", got)
	})

	t.Run("non-renderable node", func(t *testing.T) {
		t.Parallel()

		_, err := renderNode(&psast.HashtableEntry{})
		require.Error(t, err)
	})
}

func TestNewFormatCommandRequiresOneArg(t *testing.T) {
	t.Parallel()

	cmd := NewFormatCommand()
	cmd.SetArgs([]string{})

	require.Error(t, cmd.Execute())
}
