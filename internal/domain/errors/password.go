package errors

import (
	"net/http"
	"strings"
)

// Password policy rule sentinels. Each violated rule in a
// PasswordPolicyError is reachable through errors.Is against one of these.
var (
	ErrPasswordTooShort = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_TOO_SHORT",
		"password is too short",
		"",
	)

	ErrPasswordMissingUppercase = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_MISSING_UPPERCASE",
		"password must contain at least one uppercase letter",
		"",
	)

	ErrPasswordMissingLowercase = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_MISSING_LOWERCASE",
		"password must contain at least one lowercase letter",
		"",
	)

	ErrPasswordMissingDigit = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_MISSING_DIGIT",
		"password must contain at least one digit",
		"",
	)
)

// PasswordPolicyError reports every complexity rule a candidate password
// violated, so callers can surface all of them to the user in one pass
// instead of only the first.
type PasswordPolicyError struct {
	Violations []*BaseError
}

// NewPasswordPolicyError creates a policy error from the violated rules.
func NewPasswordPolicyError(violations ...*BaseError) *PasswordPolicyError {
	return &PasswordPolicyError{Violations: violations}
}

// Error implements the error interface, joining all violation messages.
func (e *PasswordPolicyError) Error() string {
	msgs := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		msgs = append(msgs, v.Message())
	}

	return "password does not meet policy: " + strings.Join(msgs, "; ")
}

// Unwrap exposes the individual rule sentinels to errors.Is.
func (e *PasswordPolicyError) Unwrap() []error {
	errs := make([]error, 0, len(e.Violations))
	for _, v := range e.Violations {
		errs = append(errs, v)
	}

	return errs
}

// HTTPCode returns the HTTP status code
func (e *PasswordPolicyError) HTTPCode() int {
	return http.StatusBadRequest
}

// ErrorCode returns the business error code
func (e *PasswordPolicyError) ErrorCode() string {
	return "PASSWORD_POLICY"
}

// Message returns the user-friendly error message
func (e *PasswordPolicyError) Message() string {
	return "password does not meet the complexity policy"
}

// Details returns the joined violation messages for display.
func (e *PasswordPolicyError) Details() string {
	msgs := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		msgs = append(msgs, v.Message())
	}

	return strings.Join(msgs, "; ")
}
