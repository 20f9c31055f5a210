// Package validator provides a Validator type that accumulates field-level
// validation failures and renders them as one combined message.
package validator

import "strings"

// Validator records validation failures keyed by field name, remembering the
// order in which fields first failed. A Validator with no recorded failures
// is considered valid.
type Validator struct {
	Errors map[string]string
	order  []string
}

// New creates and returns a fresh, empty Validator.
func New() *Validator {
	return &Validator{Errors: make(map[string]string)}
}

// Valid returns true if no failures have been recorded.
func (v *Validator) Valid() bool {
	return len(v.Errors) == 0
}

// AddError records key as failing with the given message.
// If key already has an error it is not overwritten, so the first
// failure for a field is always the one that is reported.
func (v *Validator) AddError(key, message string) {
	if _, exists := v.Errors[key]; !exists {
		v.Errors[key] = message
		v.order = append(v.order, key)
	}
}

// Check adds an error for key with message only when ok is false.
// Use this as a single-line guard:
//
//	v.Check(title != "", "title", "Title is required")
func (v *Validator) Check(ok bool, key, message string) {
	if !ok {
		v.AddError(key, message)
	}
}

// Message joins every recorded failure with ", " in the order the fields
// first failed, producing the combined message returned to clients.
func (v *Validator) Message() string {
	messages := make([]string, 0, len(v.order))
	for _, key := range v.order {
		messages = append(messages, v.Errors[key])
	}
	return strings.Join(messages, ", ")
}
