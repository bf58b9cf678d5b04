package jsonschema

import (
	"errors"
	"strings"
	"testing"
)

const statusSchema = `{
	"type": "object",
	"required": ["service", "port"],
	"properties": {
		"service": { "const": "Flask GUI" },
		"port": { "type": "string", "pattern": "^[0-9]+$" }
	}
}`

func TestSchema_Validate(t *testing.T) {
	schema, err := Compile("status", statusSchema)
	if err != nil {
		t.Fatalf("Compile() error: %v", err)
	}
	if schema.Name() != "status" {
		t.Errorf("Name() = %q, want status", schema.Name())
	}

	tests := []struct {
		name       string
		doc        string
		valid      bool
		errorCount int
		contains   string
	}{
		{
			name:  "valid",
			doc:   `{"service":"Flask GUI","port":"5000","status":"running"}`,
			valid: true,
		},
		{
			name:       "missing property",
			doc:        `{"service":"Flask GUI"}`,
			errorCount: 1,
			contains:   "port",
		},
		{
			name:       "two bad properties",
			doc:        `{"service":"BitNet","port":5000}`,
			errorCount: 2,
		},
		{
			name:       "not json",
			doc:        `not-json`,
			errorCount: 1,
			contains:   "invalid JSON",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := schema.Validate([]byte(tt.doc))
			if tt.valid {
				if err != nil {
					t.Errorf("Validate() unexpected error: %v", err)
				}
				return
			}

			var verrs ValidationErrors
			if !errors.As(err, &verrs) {
				t.Fatalf("Validate() error type = %T, want ValidationErrors", err)
			}
			if len(verrs) != tt.errorCount {
				t.Errorf("Validate() got %d errors, want %d: %v", len(verrs), tt.errorCount, verrs)
			}
			if tt.contains != "" && !strings.Contains(err.Error(), tt.contains) {
				t.Errorf("Validate() error %q does not contain %q", err.Error(), tt.contains)
			}
		})
	}
}

func TestCompile_InvalidSchema(t *testing.T) {
	if _, err := Compile("broken", `{"type": 12}`); err == nil {
		t.Error("expected error for invalid schema")
	}
	if _, err := Compile("garbage", `{`); err == nil {
		t.Error("expected error for unparseable schema")
	}
}

func TestMustCompile_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustCompile did not panic")
		}
	}()
	MustCompile("broken", `{`)
}

func TestValidationErrors_Error(t *testing.T) {
	ve := ValidationErrors{errors.New("a"), errors.New("b")}
	if ve.Error() != "a; b" {
		t.Errorf("Error() = %q, want %q", ve.Error(), "a; b")
	}
	if (ValidationErrors{}).Error() != "" {
		t.Error("empty ValidationErrors should have empty message")
	}
}
