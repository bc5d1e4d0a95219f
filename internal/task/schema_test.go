package task

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		data      string
		wantValid bool
		wantPath  string
		wantWarn  bool
	}{
		{
			name:      "valid file",
			data:      `[{"id": 1, "text": "a", "completed": false, "createdAt": "2024-01-02 03:04:05"}]`,
			wantValid: true,
		},
		{
			name:      "millisecond id",
			data:      `[{"id": 1718007200500, "text": "a", "completed": false, "createdAt": "2024-06-10 08:13:20"}]`,
			wantValid: true,
		},
		{
			name:      "empty array",
			data:      `[]`,
			wantValid: true,
		},
		{
			name:      "null createdAt",
			data:      `[{"id": 1, "text": "a", "completed": true, "createdAt": null}]`,
			wantValid: true,
		},
		{
			name:      "extra fields allowed",
			data:      `[{"id": 1, "text": "a", "completed": true, "note": "x"}]`,
			wantValid: true,
		},
		{
			name:      "not an array",
			data:      `{"tasks": []}`,
			wantValid: false,
		},
		{
			name:      "missing text",
			data:      `[{"id": 1, "completed": false}]`,
			wantValid: false,
			wantPath:  "[0]",
		},
		{
			name:      "fractional id",
			data:      `[{"id": 1.5, "text": "a", "completed": false}]`,
			wantValid: false,
			wantPath:  "[0].id",
		},
		{
			name:      "completed not boolean",
			data:      `[{"id": 1, "text": "a", "completed": "yes"}]`,
			wantValid: false,
			wantPath:  "[0].completed",
		},
		{
			name:      "iso timestamp",
			data:      `[{"id": 1, "text": "a", "completed": false}, {"id": 2, "text": "b", "completed": false, "createdAt": "2024-01-02T03:04:05Z"}]`,
			wantValid: false,
			wantPath:  "[1].createdAt",
		},
		{
			name:      "impossible date",
			data:      `[{"id": 1, "text": "a", "completed": false, "createdAt": "2024-13-40 03:04:05"}]`,
			wantValid: false,
		},
		{
			name:      "invalid json",
			data:      `[{`,
			wantValid: false,
		},
		{
			name:      "duplicate ids warn",
			data:      `[{"id": 1, "text": "a", "completed": false}, {"id": 1, "text": "b", "completed": false}]`,
			wantValid: true,
			wantWarn:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Validate([]byte(tt.data))
			if result.Valid != tt.wantValid {
				t.Fatalf("Valid: got %v, want %v (errors: %v)", result.Valid, tt.wantValid, result.Errors)
			}
			if !tt.wantValid && len(result.Errors) == 0 {
				t.Error("expected at least one error")
			}
			if tt.wantPath != "" {
				found := false
				for _, err := range result.Errors {
					var ve *ValidationError
					if errors.As(err, &ve) && ve.Path == tt.wantPath {
						found = true
					}
				}
				if !found {
					t.Errorf("expected an error at %q, got %v", tt.wantPath, result.Errors)
				}
			}
			if tt.wantWarn != (len(result.Warnings) > 0) {
				t.Errorf("Warnings: got %v", result.Warnings)
			}
		})
	}
}

func TestValidateFile(t *testing.T) {
	s, _ := openTestStore(t)
	s.Add("Buy milk")
	s.Add("Pay rent")

	result, err := ValidateFile(s.Path())
	if err != nil {
		t.Fatalf("ValidateFile failed: %v", err)
	}
	if !result.Valid {
		t.Errorf("store output should satisfy the schema: %v", result.Errors)
	}

	if _, err := ValidateFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestValidationError(t *testing.T) {
	inner := errors.New("missing properties: 'text'")
	err := &ValidationError{Path: "[0]", Err: inner}
	if err.Error() != "[0]: missing properties: 'text'" {
		t.Errorf("Error: got %q", err.Error())
	}
	if !errors.Is(err, inner) {
		t.Error("expected Unwrap to expose the inner error")
	}
	if (&ValidationError{Err: inner}).Error() != inner.Error() {
		t.Error("expected bare message without path")
	}
}

func TestJSONPointerToPath(t *testing.T) {
	tests := map[string]string{
		"":              "",
		"/":             "",
		"#/0/id":        "[0].id",
		"/12/createdAt": "[12].createdAt",
		"/0/a~1b":       "[0].a/b",
		"/0/a~0b":       "[0].a~b",
	}
	for in, want := range tests {
		if got := jsonPointerToPath(in); got != want {
			t.Errorf("jsonPointerToPath(%q): got %q, want %q", in, got, want)
		}
	}
}

func TestSchemaIsBundled(t *testing.T) {
	if !strings.Contains(Schema(), SchemaURL) {
		t.Error("bundled schema should declare its $id")
	}
}
