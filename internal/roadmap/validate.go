package roadmap

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// ValidationError represents a validation error with context.
type ValidationError struct {
	Path string // JSON path to the error location
	Err  error  // Underlying error
}

func (e *ValidationError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s", e.Path, e.Err)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// ValidationOptions controls validation behavior.
type ValidationOptions struct {
	// SchemaPath is the path to the JSON Schema file.
	// If empty, validation uses only minimal fallback checks.
	SchemaPath string
}

// ValidationResult contains validation results.
type ValidationResult struct {
	Valid      bool
	Errors     []error
	Warnings   []string
	UsedSchema bool // true if JSON Schema validation was performed
}

// ValidateFile validates the roadmap file at path. Schema validation is
// attempted first when a schema path is configured; otherwise minimal
// checks mirror what Load tolerates, reporting silently-skipped records
// as warnings. I/O and parse failures are returned as errors, not
// folded into the result.
func ValidateFile(path string, opts ValidationOptions) (*ValidationResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, &NotFoundError{Path: path, Err: err}
		}
		return nil, fmt.Errorf("read roadmap file: %w", err)
	}

	result := &ValidationResult{
		Valid:    true,
		Errors:   make([]error, 0),
		Warnings: make([]string, 0),
	}

	if opts.SchemaPath != "" {
		validateWithSchema(result, data, opts.SchemaPath)
		if result.UsedSchema {
			return result, nil
		}
		result.Warnings = append(result.Warnings, "JSON Schema validation not available, using minimal checks")
	}

	validateMinimal(result, path, data)
	return result, nil
}

// validateMinimal performs minimal validation without JSON Schema.
func validateMinimal(result *ValidationResult, path string, data []byte) {
	records, err := decodeRecords(data)
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, &ParseError{Path: path, Err: err})
		return
	}

	// The loader treats a missing "tasks" key as zero tasks, so report
	// it as a warning rather than failing a file generate accepts
	if records == nil {
		result.Warnings = append(result.Warnings, "no tasks found (missing \"tasks\" key)")
		return
	}

	for i, rec := range records {
		loc := fmt.Sprintf("tasks[%d]", i)
		var fields map[string]any
		if err := json.Unmarshal(rec, &fields); err != nil || fields == nil {
			result.Warnings = append(result.Warnings, fmt.Sprintf("%s: not an object, will be skipped", loc))
			continue
		}
		if strings.TrimSpace(stringField(fields, "title")) == "" {
			result.Warnings = append(result.Warnings, fmt.Sprintf("%s: missing title, will be skipped", loc))
		}
	}
}

// validateWithSchema attempts JSON Schema validation. Missing or broken
// schema files downgrade to warnings so callers can fall back.
func validateWithSchema(result *ValidationResult, data []byte, schemaPath string) {
	absPath, err := filepath.Abs(schemaPath)
	if err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("invalid schema path: %v", err))
		return
	}

	if _, err := os.Stat(absPath); err != nil {
		if os.IsNotExist(err) {
			result.Warnings = append(result.Warnings, fmt.Sprintf("schema file not found: %s", absPath))
		} else {
			result.Warnings = append(result.Warnings, fmt.Sprintf("failed to read schema file: %v", err))
		}
		return
	}

	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true

	schema, err := compiler.Compile(absPath)
	if err != nil {
		result.Warnings = append(result.Warnings, fmt.Sprintf("invalid schema file: %v", err))
		return
	}

	result.UsedSchema = true

	var doc any
	if err := json.Unmarshal(data, &doc); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, &ValidationError{
			Err: fmt.Errorf("failed to unmarshal file for validation: %w", err),
		})
		return
	}

	if err := schema.Validate(doc); err != nil {
		result.Valid = false
		appendSchemaErrors(result, err)
	}
}

func appendSchemaErrors(result *ValidationResult, err error) {
	ve, ok := err.(*jsonschema.ValidationError)
	if !ok {
		result.Errors = append(result.Errors, err)
		return
	}
	collectSchemaErrors(result, ve)
}

func collectSchemaErrors(result *ValidationResult, err *jsonschema.ValidationError) {
	if err == nil {
		return
	}

	if len(err.Causes) == 0 {
		result.Errors = append(result.Errors, &ValidationError{
			Path: jsonPointerToPath(err.InstanceLocation),
			Err:  fmt.Errorf("%s", err.Message),
		})
		return
	}

	for _, cause := range err.Causes {
		collectSchemaErrors(result, cause)
	}
}

func jsonPointerToPath(ptr string) string {
	ptr = strings.TrimPrefix(ptr, "#")
	ptr = strings.TrimPrefix(ptr, "/")
	if ptr == "" {
		return ""
	}

	parts := strings.Split(ptr, "/")
	path := ""
	for _, part := range parts {
		part = strings.ReplaceAll(part, "~1", "/")
		part = strings.ReplaceAll(part, "~0", "~")
		if part == "" {
			continue
		}
		if idx, err := strconv.Atoi(part); err == nil {
			path += fmt.Sprintf("[%d]", idx)
			continue
		}
		if path == "" {
			path = part
		} else {
			path += "." + part
		}
	}

	return path
}
