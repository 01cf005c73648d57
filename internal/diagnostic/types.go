package diagnostic

import (
	"errors"
	"fmt"
	"strings"
)

// Stable diagnostic codes. Codes are part of the tool's contract: tests
// match on them, messages are free to change.
const (
	// Extraction codes: a marked member's shape cannot be classified.
	CodeUnclassifiedMember    = "unclassified_member"
	CodeUnsupportedColumnType = "unsupported_column_type"
	CodeBadFactoryShape       = "bad_factory_shape"
	CodeEmptyTarget           = "empty_target"

	// Validation codes: structural defects in an extracted model.
	CodeNoColumns                = "no_columns"
	CodeNoKey                    = "no_key"
	CodeDuplicateColumnName      = "duplicate_column_name"
	CodeFactoryParameterMismatch = "factory_parameter_mismatch"
	CodeUnsupportedKeyType       = "unsupported_key_type"

	// Synthesis codes: a validated model could not be turned into a plan.
	CodeSynthesisFailed = "synthesis_failed"

	// Emission codes: rendering failures.
	CodeRenderFailed = "render_failed"
)

// Severity is the severity level of a diagnostic.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityWarning
	SeverityError
)

// String returns a human-readable severity name.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// Diagnostic is a single message attributed to one annotated type.
type Diagnostic struct {
	// Severity of the diagnostic.
	Severity Severity
	// Code is the stable identifier for this kind of diagnostic.
	Code string
	// Message is the human-readable description.
	Message string
	// TypeName identifies the annotated type this relates to.
	TypeName string
	// Column identifies the offending column, if any.
	Column string
}

// String returns a formatted diagnostic string.
func (d Diagnostic) String() string {
	var prefix []string
	if d.TypeName != "" {
		prefix = append(prefix, "["+d.TypeName+"]")
	}

	if d.Column != "" {
		prefix = append(prefix, d.Column)
	}

	msg := d.Message
	if d.Code != "" {
		msg = fmt.Sprintf("[%s] %s", d.Code, msg)
	}

	if len(prefix) > 0 {
		return strings.Join(prefix, " ") + ": " + msg
	}

	return msg
}

// Diagnostics collects all diagnostics from one pipeline run.
type Diagnostics struct {
	Errors   []Diagnostic
	Warnings []Diagnostic
	Infos    []Diagnostic
}

// AddError adds an error diagnostic.
func (d *Diagnostics) AddError(code, message, typeName, column string) {
	d.Errors = append(d.Errors, Diagnostic{
		Severity: SeverityError,
		Code:     code,
		Message:  message,
		TypeName: typeName,
		Column:   column,
	})
}

// AddWarning adds a warning diagnostic.
func (d *Diagnostics) AddWarning(code, message, typeName, column string) {
	d.Warnings = append(d.Warnings, Diagnostic{
		Severity: SeverityWarning,
		Code:     code,
		Message:  message,
		TypeName: typeName,
		Column:   column,
	})
}

// AddInfo adds an info diagnostic.
func (d *Diagnostics) AddInfo(code, message, typeName, column string) {
	d.Infos = append(d.Infos, Diagnostic{
		Severity: SeverityInfo,
		Code:     code,
		Message:  message,
		TypeName: typeName,
		Column:   column,
	})
}

// HasErrors returns true if there are any error diagnostics.
func (d *Diagnostics) HasErrors() bool {
	return len(d.Errors) > 0
}

// IsValid returns true if there are no errors.
func (d *Diagnostics) IsValid() bool {
	return len(d.Errors) == 0
}

// ErrorsFor returns the error diagnostics attributed to the given type.
func (d *Diagnostics) ErrorsFor(typeName string) []Diagnostic {
	var out []Diagnostic
	for _, e := range d.Errors {
		if e.TypeName == typeName {
			out = append(out, e)
		}
	}

	return out
}

// HasErrorCode returns true if any error diagnostic carries the given code.
func (d *Diagnostics) HasErrorCode(code string) bool {
	for _, e := range d.Errors {
		if e.Code == code {
			return true
		}
	}

	return false
}

// Merge merges another Diagnostics instance into this one.
func (d *Diagnostics) Merge(other Diagnostics) {
	d.Errors = append(d.Errors, other.Errors...)
	d.Warnings = append(d.Warnings, other.Warnings...)
	d.Infos = append(d.Infos, other.Infos...)
}

// Error returns a combined error from all error diagnostics, or nil if valid.
func (d *Diagnostics) Error() error {
	if d.IsValid() {
		return nil
	}

	var parts []string
	for _, e := range d.Errors {
		parts = append(parts, e.String())
	}

	return errors.New(strings.Join(parts, "; "))
}
