package errors

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationBuilder accumulates field-level validation errors and builds an
// InvalidArgument error, or nil when every field passed
type ValidationBuilder struct {
	fields map[string][]string
}

// NewValidationBuilder creates a new validation builder
func NewValidationBuilder() *ValidationBuilder {
	return &ValidationBuilder{
		fields: make(map[string][]string),
	}
}

// Field adds a validation error for a field
func (vb *ValidationBuilder) Field(field, message string) *ValidationBuilder {
	vb.fields[field] = append(vb.fields[field], message)
	return vb
}

// RequiredField adds a required field error
func (vb *ValidationBuilder) RequiredField(field string) *ValidationBuilder {
	return vb.Field(field, "is required")
}

// InvalidField adds an invalid field error
func (vb *ValidationBuilder) InvalidField(field, reason string) *ValidationBuilder {
	return vb.Field(field, fmt.Sprintf("is invalid: %s", reason))
}

// HasErrors returns true if any field failed
func (vb *ValidationBuilder) HasErrors() bool {
	return len(vb.fields) > 0
}

// Build returns the error if there are validation errors, nil otherwise
func (vb *ValidationBuilder) Build() error {
	if !vb.HasErrors() {
		return nil
	}

	names := make([]string, 0, len(vb.fields))
	for field := range vb.fields {
		names = append(names, field)
	}
	sort.Strings(names)

	parts := make([]string, len(names))
	for i, field := range names {
		parts[i] = fmt.Sprintf("%s: %s", field, strings.Join(vb.fields[field], ", "))
	}

	return InvalidArgumentf("validation failed: %s", strings.Join(parts, "; ")).
		WithMeta("validation_errors", vb.fields)
}

// ValidateRequired checks if a string field is set
func ValidateRequired(field, value string, vb *ValidationBuilder) {
	if strings.TrimSpace(value) == "" {
		vb.RequiredField(field)
	}
}
