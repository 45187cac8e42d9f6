package auth

import (
	"unicode"

	"abacus/config"
	domainerrors "abacus/internal/domain/errors"
	"abacus/internal/domain/service"
)

const defaultMinPasswordLength = 6

// policyValidator enforces the configured password complexity rules.
// Validation is pure: it reads only its argument and the immutable rule set.
type policyValidator struct {
	minLength        int
	requireUppercase bool
	requireLowercase bool
	requireDigit     bool
}

// NewPolicyValidator is the constructor for policyValidator.
// Missing configuration falls back to the default policy: length >= 6 with
// at least one uppercase letter, one lowercase letter, and one digit.
func NewPolicyValidator(cfg *config.Config) service.PasswordValidator {
	if cfg == nil || cfg.PasswordPolicy == nil {
		return &policyValidator{
			minLength:        defaultMinPasswordLength,
			requireUppercase: true,
			requireLowercase: true,
			requireDigit:     true,
		}
	}

	minLength := cfg.PasswordPolicy.MinLength
	if minLength <= 0 {
		minLength = defaultMinPasswordLength
	}

	return &policyValidator{
		minLength:        minLength,
		requireUppercase: cfg.PasswordPolicy.RequireUppercase,
		requireLowercase: cfg.PasswordPolicy.RequireLowercase,
		requireDigit:     cfg.PasswordPolicy.RequireDigit,
	}
}

// Validate checks the candidate against every rule and reports all failures
// at once through a single PasswordPolicyError.
func (v *policyValidator) Validate(candidate string) error {
	var violations []*domainerrors.BaseError

	if len([]rune(candidate)) < v.minLength {
		violations = append(violations, domainerrors.ErrPasswordTooShort)
	}
	if v.requireUppercase && !containsClass(candidate, unicode.IsUpper) {
		violations = append(violations, domainerrors.ErrPasswordMissingUppercase)
	}
	if v.requireLowercase && !containsClass(candidate, unicode.IsLower) {
		violations = append(violations, domainerrors.ErrPasswordMissingLowercase)
	}
	if v.requireDigit && !containsClass(candidate, unicode.IsDigit) {
		violations = append(violations, domainerrors.ErrPasswordMissingDigit)
	}

	if len(violations) > 0 {
		return domainerrors.NewPasswordPolicyError(violations...)
	}

	return nil
}

func containsClass(s string, class func(rune) bool) bool {
	for _, r := range s {
		if class(r) {
			return true
		}
	}

	return false
}
