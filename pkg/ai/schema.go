package ai

import (
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// reportSchema validates parsed coach output before it is returned. Output
// violating the schema is treated exactly like a parse failure.
const reportSchemaJSON = `{
  "type": "object",
  "required": ["summary", "strengths", "weaknesses", "roadmap"],
  "properties": {
    "summary": {"type": "string", "minLength": 1},
    "strengths": {"type": "array", "items": {"type": "string"}},
    "weaknesses": {"type": "array", "items": {"type": "string"}},
    "suggested_fixes": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["description"],
        "properties": {
          "description": {"type": "string", "minLength": 1},
          "line_hint": {"type": "number"},
          "fix_snippet": {"type": "string"}
        }
      }
    },
    "roadmap": {
      "type": "array",
      "minItems": 7,
      "maxItems": 7,
      "items": {
        "type": "object",
        "required": ["day", "task"],
        "properties": {
          "day": {"type": "integer", "minimum": 1, "maximum": 7},
          "task": {"type": "string", "minLength": 1},
          "est_hours": {"type": "number"}
        }
      }
    },
    "recommendedProblems": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "id": {"type": "string"},
          "title": {"type": "string"},
          "difficulty": {"type": "string"}
        }
      }
    }
  }
}`

var reportSchema = mustCompileSchema("report.schema.json", reportSchemaJSON)

func mustCompileSchema(name, document string) *jsonschema.Schema {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(name, strings.NewReader(document)); err != nil {
		panic(err)
	}
	return compiler.MustCompile(name)
}

// validateReport checks the decoded JSON value against the schema and the
// roadmap day-uniqueness invariant the schema cannot express.
func validateReport(value interface{}) bool {
	if err := reportSchema.Validate(value); err != nil {
		return false
	}

	object, ok := value.(map[string]interface{})
	if !ok {
		return false
	}
	roadmap, ok := object["roadmap"].([]interface{})
	if !ok {
		return false
	}

	seen := make(map[int]bool, len(roadmap))
	for _, entry := range roadmap {
		item, ok := entry.(map[string]interface{})
		if !ok {
			return false
		}
		day, ok := item["day"].(float64)
		if !ok {
			return false
		}
		if seen[int(day)] {
			return false
		}
		seen[int(day)] = true
	}

	return true
}
