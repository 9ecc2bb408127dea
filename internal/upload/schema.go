package upload

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// metaSchema is the wire contract for the upload "data" part. Metadata is
// validated against it before any request is built, so a malformed payload
// never reaches the server.
const metaSchema = `{
	"$schema": "https://json-schema.org/draft/2020-12/schema",
	"type": "object",
	"required": ["major_head", "minor_head", "document_date", "document_remarks", "tags", "user_id"],
	"properties": {
		"major_head": {"enum": ["", "Personal", "Professional"]},
		"minor_head": {"type": "string"},
		"document_date": {"type": "string", "pattern": "^$|^[0-9]{2}-[0-9]{2}-[0-9]{4}$"},
		"document_remarks": {"type": "string"},
		"tags": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["tag_name"],
				"properties": {"tag_name": {"type": "string", "minLength": 1}}
			}
		},
		"user_id": {"type": "string", "minLength": 1}
	}
}`

// printer renders schema violations as readable English messages.
var printer = message.NewPrinter(language.English)

// compiledMetaSchema is built once at startup; the schema is a constant, so
// a compile failure is a programming error.
var compiledMetaSchema = mustCompileMetaSchema()

func mustCompileMetaSchema() *jsonschema.Schema {
	doc, err := jsonschema.UnmarshalJSON(strings.NewReader(metaSchema))
	if err != nil {
		panic(fmt.Sprintf("upload: parsing metadata schema: %v", err))
	}

	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("meta.json", doc); err != nil {
		panic(fmt.Sprintf("upload: adding metadata schema: %v", err))
	}
	schema, err := compiler.Compile("meta.json")
	if err != nil {
		panic(fmt.Sprintf("upload: compiling metadata schema: %v", err))
	}
	return schema
}

// validateMeta checks an encoded metadata payload against the schema and
// returns human-readable violations.
func validateMeta(data []byte) error {
	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("invalid metadata JSON: %w", err)
	}

	err := compiledMetaSchema.Validate(value)
	if err == nil {
		return nil
	}

	var ve *jsonschema.ValidationError
	if errors.As(err, &ve) {
		return fmt.Errorf("metadata validation failed: %s", strings.Join(leafMessages(ve), "; "))
	}
	return fmt.Errorf("metadata validation failed: %w", err)
}

// leafMessages collects the concrete violations from a validation error
// tree, skipping structural wrapper nodes.
func leafMessages(ve *jsonschema.ValidationError) []string {
	var msgs []string
	if ve.ErrorKind != nil && len(ve.Causes) == 0 {
		msg := ve.ErrorKind.LocalizedString(printer)
		if len(ve.InstanceLocation) > 0 {
			msg = "/" + strings.Join(ve.InstanceLocation, "/") + ": " + msg
		}
		msgs = append(msgs, msg)
	}
	for _, cause := range ve.Causes {
		msgs = append(msgs, leafMessages(cause)...)
	}
	return msgs
}
