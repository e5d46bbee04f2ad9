package webtests

import (
	"encoding/json"
	"fmt"

	"github.com/stretchr/testify/assert"
	"github.com/xeipuuv/gojsonschema"

	"github.com/launchdarkly/webqa-harness/framework/helpers"
)

// JSON schemas for the placeholder service's record shapes. The API suite checks
// whole response records against these instead of asserting on every field.

const userSchemaJSON = `{
	"type": "object",
	"required": ["id", "name", "username", "email", "address", "company"],
	"properties": {
		"id": {"type": "integer", "minimum": 1},
		"name": {"type": "string", "minLength": 1},
		"username": {"type": "string", "minLength": 1},
		"email": {"type": "string", "pattern": "^[^@]+@[^@]+$"},
		"address": {
			"type": "object",
			"required": ["street", "city", "zipcode", "geo"],
			"properties": {
				"geo": {
					"type": "object",
					"required": ["lat", "lng"]
				}
			}
		},
		"company": {
			"type": "object",
			"required": ["name"]
		}
	}
}`

const postSchemaJSON = `{
	"type": "object",
	"required": ["userId", "id", "title", "body"],
	"properties": {
		"userId": {"type": "integer", "minimum": 1},
		"id": {"type": "integer", "minimum": 1},
		"title": {"type": "string", "minLength": 1},
		"body": {"type": "string"}
	}
}`

var userRecordSchema = mustCompileSchema("user", userSchemaJSON)
var postRecordSchema = mustCompileSchema("post", postSchemaJSON)

func mustCompileSchema(name, schemaJSON string) *gojsonschema.Schema {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(schemaJSON))
	if err != nil {
		panic(fmt.Sprintf("the %s schema does not compile: %s", name, err))
	}
	return schema
}

// MatchesSchema is an expectation that the value, marshalled to JSON, validates
// against the schema. Each schema violation is reported as its own assertion
// failure so the output names the offending fields.
func MatchesSchema(name string, schema *gojsonschema.Schema) helpers.Expectation {
	return helpers.NewExpectation(
		fmt.Sprintf("value matches the %s schema", name),
		func(value interface{}) string {
			data, _ := json.Marshal(value)
			return string(data)
		},
		func(t assert.TestingT, value interface{}) bool {
			result, err := schema.Validate(gojsonschema.NewGoLoader(value))
			if err != nil {
				t.Errorf("could not validate value against the %s schema: %s", name, err)
				return false
			}
			if !result.Valid() {
				for _, violation := range result.Errors() {
					t.Errorf("%s schema violation: %s", name, violation)
				}
				return false
			}
			return true
		},
	)
}

func matchesUserSchema() helpers.Expectation { return MatchesSchema("user", userRecordSchema) }

func matchesPostSchema() helpers.Expectation { return MatchesSchema("post", postRecordSchema) }
