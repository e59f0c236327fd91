package roadmap

import (
	"errors"
	"strings"
	"testing"
)

const testSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "required": ["tasks"],
  "properties": {
    "tasks": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["title"],
        "properties": {
          "title": {"type": "string", "minLength": 1},
          "description": {"type": "string"},
          "phase": {"type": "string"},
          "status": {"type": "string"}
        }
      }
    }
  }
}`

func TestValidateFileMinimal(t *testing.T) {
	tests := []struct {
		name         string
		json         string
		wantValid    bool
		wantWarnings int
	}{
		{
			name:      "valid file",
			json:      `{"tasks": [{"title": "A"}]}`,
			wantValid: true,
		},
		{
			name:      "bare array is valid",
			json:      `[{"title": "A"}]`,
			wantValid: true,
		},
		{
			name:         "missing tasks key warns like the loader",
			json:         `{"phases": []}`,
			wantValid:    true,
			wantWarnings: 1,
		},
		{
			name:         "empty object is zero tasks",
			json:         `{}`,
			wantValid:    true,
			wantWarnings: 1,
		},
		{
			name:         "skippable records warn",
			json:         `{"tasks": [{"title": "A"}, "junk", {"no": "title"}]}`,
			wantValid:    true,
			wantWarnings: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "roadmap.json", tt.json)
			result, err := ValidateFile(path, ValidationOptions{})
			if err != nil {
				t.Fatalf("ValidateFile failed: %v", err)
			}
			if result.Valid != tt.wantValid {
				t.Errorf("Valid = %v, want %v (errors: %v)", result.Valid, tt.wantValid, result.Errors)
			}
			if result.UsedSchema {
				t.Error("UsedSchema = true without a schema")
			}
			if len(result.Warnings) != tt.wantWarnings {
				t.Errorf("got %d warnings %v, want %d", len(result.Warnings), result.Warnings, tt.wantWarnings)
			}
		})
	}
}

func TestValidateFileMalformedJSON(t *testing.T) {
	path := writeFile(t, t.TempDir(), "roadmap.json", `{"tasks": [`)

	result, err := ValidateFile(path, ValidationOptions{})
	if err != nil {
		t.Fatalf("ValidateFile failed: %v", err)
	}
	if result.Valid {
		t.Fatal("expected invalid result for malformed JSON")
	}
	if len(result.Errors) == 0 {
		t.Fatal("expected a parse error in result")
	}
	var pe *ParseError
	if !errors.As(result.Errors[0], &pe) {
		t.Errorf("expected *ParseError, got %v", result.Errors[0])
	}
}

func TestValidateFileMissing(t *testing.T) {
	_, err := ValidateFile(t.TempDir()+"/nope.json", ValidationOptions{})
	var nfe *NotFoundError
	if !errors.As(err, &nfe) {
		t.Fatalf("expected *NotFoundError, got %v", err)
	}
}

func TestValidateFileWithSchema(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "roadmap.schema.json", testSchema)

	t.Run("valid document", func(t *testing.T) {
		path := writeFile(t, dir, "ok.json", `{"tasks": [{"title": "A", "phase": "Now"}]}`)
		result, err := ValidateFile(path, ValidationOptions{SchemaPath: schemaPath})
		if err != nil {
			t.Fatalf("ValidateFile failed: %v", err)
		}
		if !result.UsedSchema {
			t.Error("expected schema validation to be used")
		}
		if !result.Valid {
			t.Errorf("expected valid, got errors: %v", result.Errors)
		}
	})

	t.Run("schema violation reported with path", func(t *testing.T) {
		path := writeFile(t, dir, "bad.json", `{"tasks": [{"title": 42}]}`)
		result, err := ValidateFile(path, ValidationOptions{SchemaPath: schemaPath})
		if err != nil {
			t.Fatalf("ValidateFile failed: %v", err)
		}
		if result.Valid {
			t.Fatal("expected schema violation")
		}
		found := false
		for _, e := range result.Errors {
			if strings.Contains(e.Error(), "tasks[0]") {
				found = true
			}
		}
		if !found {
			t.Errorf("no error mentions tasks[0]: %v", result.Errors)
		}
	})

	t.Run("missing schema falls back with warning", func(t *testing.T) {
		path := writeFile(t, dir, "ok2.json", `{"tasks": [{"title": "A"}]}`)
		result, err := ValidateFile(path, ValidationOptions{SchemaPath: dir + "/no-such-schema.json"})
		if err != nil {
			t.Fatalf("ValidateFile failed: %v", err)
		}
		if result.UsedSchema {
			t.Error("UsedSchema = true for a missing schema file")
		}
		if !result.Valid {
			t.Errorf("expected fallback to pass, got errors: %v", result.Errors)
		}
		if len(result.Warnings) == 0 {
			t.Error("expected a warning about the missing schema")
		}
	})
}
