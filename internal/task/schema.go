package task

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

// SchemaURL identifies the bundled task file schema.
const SchemaURL = "https://github.com/nibzard/tasklist/tasks.schema.json"

//go:embed tasks.schema.json
var bundledSchema string

// Schema returns the bundled JSON Schema for task files.
func Schema() string {
	return bundledSchema
}

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

// ValidationResult contains validation results.
type ValidationResult struct {
	Valid    bool
	Errors   []error
	Warnings []string
}

// ValidateFile validates the task file at path against the bundled schema.
func ValidateFile(path string) (*ValidationResult, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read task file: %w", err)
	}
	return Validate(data), nil
}

// Validate checks data against the bundled schema and reports duplicate ids
// as warnings.
func Validate(data []byte) *ValidationResult {
	result := &ValidationResult{
		Valid:    true,
		Errors:   make([]error, 0),
		Warnings: make([]string, 0),
	}

	schema, err := compileSchema()
	if err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, fmt.Errorf("compile schema: %w", err))
		return result
	}

	var doc interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		result.Valid = false
		result.Errors = append(result.Errors, &ValidationError{Err: fmt.Errorf("invalid JSON: %w", err)})
		return result
	}

	if err := schema.Validate(doc); err != nil {
		result.Valid = false
		appendSchemaErrors(result, err)
		return result
	}

	// The pattern admits impossible dates such as month 13; Decode catches them.
	tasks, err := Decode(data)
	if err != nil {
		if !errors.Is(err, ErrNullCollection) {
			result.Valid = false
			result.Errors = append(result.Errors, err)
		}
		return result
	}
	seen := make(map[int64]int, len(tasks))
	for i, t := range tasks {
		if first, ok := seen[t.ID]; ok {
			result.Warnings = append(result.Warnings,
				fmt.Sprintf("[%d].id: duplicate id %d (first at [%d])", i, t.ID, first))
			continue
		}
		seen[t.ID] = i
	}
	return result
}

func compileSchema() (*jsonschema.Schema, error) {
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(SchemaURL, strings.NewReader(bundledSchema)); err != nil {
		return nil, err
	}
	return compiler.Compile(SchemaURL)
}

func appendSchemaErrors(result *ValidationResult, err error) {
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
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
			Err:  errors.New(err.Message),
		})
		return
	}

	for _, cause := range err.Causes {
		collectSchemaErrors(result, cause)
	}
}

// jsonPointerToPath turns "/0/createdAt" into "[0].createdAt".
func jsonPointerToPath(ptr string) string {
	ptr = strings.TrimPrefix(ptr, "#")
	ptr = strings.TrimPrefix(ptr, "/")
	if ptr == "" {
		return ""
	}

	var b strings.Builder
	for _, part := range strings.Split(ptr, "/") {
		part = strings.ReplaceAll(part, "~1", "/")
		part = strings.ReplaceAll(part, "~0", "~")
		if part == "" {
			continue
		}
		if idx, err := strconv.Atoi(part); err == nil {
			fmt.Fprintf(&b, "[%d]", idx)
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(part)
	}
	return b.String()
}
