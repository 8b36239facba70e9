package recommend

import (
	_ "embed"
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// JSON Schemas for the two structured documents the model is asked to emit.
// Fields are individually optional so a partially valid document degrades
// field by field instead of all at once; type violations reject the document.

//go:embed schemas/recommendation.schema.json
var recommendationSchemaJSON string

//go:embed schemas/chat.schema.json
var chatSchemaJSON string

var (
	recommendationSchema = mustCompileSchema("recommendation", recommendationSchemaJSON)
	chatSchema           = mustCompileSchema("chat", chatSchemaJSON)
)

func mustCompileSchema(name, source string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(source))
	if err != nil {
		panic(fmt.Sprintf("failed to compile %s schema: %v", name, err))
	}
	return schema
}

// validateAgainst checks a JSON document against a compiled schema.
// Returns a descriptive error when the document is malformed or violates the schema.
func validateAgainst(schema *gojsonschema.Schema, document string) error {
	result, err := schema.Validate(gojsonschema.NewStringLoader(document))
	if err != nil {
		return fmt.Errorf("document is not valid JSON: %w", err)
	}
	if !result.Valid() {
		first := result.Errors()[0]
		return fmt.Errorf("schema violation at %s: %s", first.Field(), first.Description())
	}
	return nil
}
