// Package validator defines the contract decoded inputs satisfy before any
// engine sees them.
package validator

import "github.com/marek-a-m/vigor/internal/xerrors"

// Validator is implemented by decoded input types. Validate returns a map of
// field name to problem, or nil when the value is usable.
type Validator interface {
	Validate() map[string]string
}

// Check runs v's validation and wraps any findings as a validation error.
func Check(v Validator) error {
	if fields := v.Validate(); fields != nil {
		return xerrors.Validation(fields)
	}
	return nil
}
