package config

import (
	"fmt"
	"net/url"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Path    string
	Message string
}

// Error returns the error message
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Path, e.Message)
}

// ValidatePort checks that port is a usable TCP port. Zero asks the OS for a
// free port.
func ValidatePort(port int) error {
	if port < 0 || port > 65535 {
		return ValidationError{
			Path:    "port",
			Message: fmt.Sprintf("port %d out of range 0-65535", port),
		}
	}
	return nil
}

// ValidateTargets validates a stubctl targets file
func ValidateTargets(t *Targets) []ValidationError {
	var errors []ValidationError

	if len(t.Targets) == 0 {
		errors = append(errors, ValidationError{
			Path:    "targets",
			Message: "at least one target is required",
		})
	}

	seen := make(map[string]bool)
	for i, target := range t.Targets {
		path := fmt.Sprintf("targets[%d]", i)

		if target.Name == "" {
			errors = append(errors, ValidationError{
				Path:    path + ".name",
				Message: "name is required",
			})
		} else if seen[target.Name] {
			errors = append(errors, ValidationError{
				Path:    path + ".name",
				Message: fmt.Sprintf("duplicate target name: %s", target.Name),
			})
		}
		seen[target.Name] = true

		if !IsKnownKind(target.Kind) {
			errors = append(errors, ValidationError{
				Path:    path + ".kind",
				Message: fmt.Sprintf("unknown kind %q (expected one of %s)", target.Kind, strings.Join(Kinds, ", ")),
			})
		}

		if target.URL == "" {
			errors = append(errors, ValidationError{
				Path:    path + ".url",
				Message: "url is required",
			})
		} else if u, err := url.Parse(target.URL); err != nil || u.Scheme == "" || u.Host == "" {
			errors = append(errors, ValidationError{
				Path:    path + ".url",
				Message: fmt.Sprintf("invalid url: %s", target.URL),
			})
		}

		if target.Count < 0 {
			errors = append(errors, ValidationError{
				Path:    path + ".count",
				Message: "count cannot be negative",
			})
		}
	}

	return errors
}
