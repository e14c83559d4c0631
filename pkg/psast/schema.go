package psast

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// treeSchemaFS contains the embedded tree document JSON schema.
//
//go:embed tree-schema.json
var treeSchemaFS embed.FS

// ErrSchemaViolation is returned when a tree document fails schema
// validation. The error message lists every violation.
var ErrSchemaViolation = errors.New("tree document violates schema")

// ValidateDocument checks a JSON tree document against the embedded schema
// before decoding. It catches unknown node kinds and wrongly typed fields
// with field paths the decoder cannot report.
func ValidateDocument(data []byte) error {
	schemaBytes, err := treeSchemaFS.ReadFile("tree-schema.json")
	if err != nil {
		return fmt.Errorf("read embedded schema: %w", err)
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.UseNumber()

	var doc any

	if err := decoder.Decode(&doc); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	schemaLoader := gojsonschema.NewBytesLoader(schemaBytes)
	documentLoader := gojsonschema.NewGoLoader(doc)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("schema validation: %w", err)
	}

	if result.Valid() {
		return nil
	}

	var report strings.Builder

	for index, violation := range result.Errors() {
		if index > 0 {
			report.WriteString("; ")
		}

		fmt.Fprintf(&report, "%s: %s", violation.Field(), violation.Description())
	}

	return fmt.Errorf("%w: %s", ErrSchemaViolation, report.String())
}
