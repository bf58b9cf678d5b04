package config

import (
	"strings"
	"testing"
)

// TestValidationError_Error tests the ValidationError.Error() method
func TestValidationError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      ValidationError
		expected string
	}{
		{
			name: "standard error",
			err: ValidationError{
				Path:    "targets[0].url",
				Message: "url is required",
			},
			expected: "targets[0].url: url is required",
		},
		{
			name: "empty path",
			err: ValidationError{
				Path:    "",
				Message: "some error",
			},
			expected: ": some error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.err.Error()
			if result != tt.expected {
				t.Errorf("Expected '%s' but got '%s'", tt.expected, result)
			}
		})
	}
}

func TestValidatePort(t *testing.T) {
	tests := []struct {
		port    int
		wantErr bool
	}{
		{0, false},
		{1, false},
		{8000, false},
		{65535, false},
		{-1, true},
		{65536, true},
	}

	for _, tt := range tests {
		err := ValidatePort(tt.port)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidatePort(%d) error = %v, wantErr %v", tt.port, err, tt.wantErr)
		}
	}
}

func TestValidateTargets(t *testing.T) {
	tests := []struct {
		name        string
		targets     Targets
		expectedErr []string
	}{
		{
			name: "valid",
			targets: Targets{Targets: []Target{
				{Name: "bitnet", Kind: KindBitNet, URL: "http://localhost:8000"},
				{Name: "omni", Kind: KindOmniParser, URL: "http://localhost:8800", Count: 3},
			}},
		},
		{
			name:        "empty",
			targets:     Targets{},
			expectedErr: []string{"targets: at least one target is required"},
		},
		{
			name: "missing fields",
			targets: Targets{Targets: []Target{
				{Kind: KindFlaskGUI},
			}},
			expectedErr: []string{
				"targets[0].name: name is required",
				"targets[0].url: url is required",
			},
		},
		{
			name: "unknown kind and bad url",
			targets: Targets{Targets: []Target{
				{Name: "x", Kind: "lanhub", URL: "localhost"},
			}},
			expectedErr: []string{
				"targets[0].kind: unknown kind",
				"targets[0].url: invalid url",
			},
		},
		{
			name: "duplicate name",
			targets: Targets{Targets: []Target{
				{Name: "a", Kind: KindBitNet, URL: "http://localhost:8000"},
				{Name: "a", Kind: KindBitNet, URL: "http://localhost:8001", Count: -1},
			}},
			expectedErr: []string{
				"targets[1].name: duplicate target name: a",
				"targets[1].count: count cannot be negative",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := ValidateTargets(&tt.targets)
			if len(errs) != len(tt.expectedErr) {
				t.Fatalf("Expected %d errors, got %d: %v", len(tt.expectedErr), len(errs), errs)
			}
			for i, want := range tt.expectedErr {
				if !strings.HasPrefix(errs[i].Error(), want) {
					t.Errorf("Error %d: expected prefix %q, got %q", i, want, errs[i].Error())
				}
			}
		})
	}
}
