package auth

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"abacus/config"
	domainerrors "abacus/internal/domain/errors"
)

func TestPolicyValidator_Defaults(t *testing.T) {
	validator := NewPolicyValidator(nil)

	tests := []struct {
		name      string
		candidate string
		want      []*domainerrors.BaseError
	}{
		{
			name:      "too short",
			candidate: "abc12",
			want:      []*domainerrors.BaseError{domainerrors.ErrPasswordTooShort, domainerrors.ErrPasswordMissingUppercase},
		},
		{
			name:      "missing uppercase",
			candidate: "abcdef1",
			want:      []*domainerrors.BaseError{domainerrors.ErrPasswordMissingUppercase},
		},
		{
			name:      "missing lowercase",
			candidate: "ABCDEF1",
			want:      []*domainerrors.BaseError{domainerrors.ErrPasswordMissingLowercase},
		},
		{
			name:      "missing digit",
			candidate: "Abcdefg",
			want:      []*domainerrors.BaseError{domainerrors.ErrPasswordMissingDigit},
		},
		{
			name:      "multiple missing categories reported together",
			candidate: "abcdefg",
			want: []*domainerrors.BaseError{
				domainerrors.ErrPasswordMissingUppercase,
				domainerrors.ErrPasswordMissingDigit,
			},
		},
		{
			name:      "empty reports every rule",
			candidate: "",
			want: []*domainerrors.BaseError{
				domainerrors.ErrPasswordTooShort,
				domainerrors.ErrPasswordMissingUppercase,
				domainerrors.ErrPasswordMissingLowercase,
				domainerrors.ErrPasswordMissingDigit,
			},
		},
		{
			name:      "valid",
			candidate: "Abcdef1",
			want:      nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.Validate(tt.candidate)
			if len(tt.want) == 0 {
				assert.NoError(t, err)

				return
			}

			require.Error(t, err)

			var policyErr *domainerrors.PasswordPolicyError
			require.True(t, errors.As(err, &policyErr))
			assert.Len(t, policyErr.Violations, len(tt.want))

			for _, sentinel := range tt.want {
				assert.True(t, errors.Is(err, sentinel), "expected violation %s", sentinel.ErrorCode())
			}
		})
	}
}

func TestPolicyValidator_ValidPasswordHasNoFalseViolations(t *testing.T) {
	validator := NewPolicyValidator(nil)

	err := validator.Validate("abcdef1")
	require.Error(t, err)

	// Only the uppercase rule fails; the others must not be reported.
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordMissingUppercase))
	assert.False(t, errors.Is(err, domainerrors.ErrPasswordTooShort))
	assert.False(t, errors.Is(err, domainerrors.ErrPasswordMissingLowercase))
	assert.False(t, errors.Is(err, domainerrors.ErrPasswordMissingDigit))
}

func TestPolicyValidator_ConfiguredRules(t *testing.T) {
	cfg := &config.Config{
		PasswordPolicy: &config.PasswordPolicyConfig{
			MinLength:        10,
			RequireUppercase: false,
			RequireLowercase: true,
			RequireDigit:     true,
		},
	}
	validator := NewPolicyValidator(cfg)

	// Uppercase no longer required.
	assert.NoError(t, validator.Validate("abcdefgh12"))

	// Length rule uses the configured minimum.
	err := validator.Validate("abcdef1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordTooShort))
}

func TestPolicyValidator_UnicodeCharacterClasses(t *testing.T) {
	validator := NewPolicyValidator(nil)

	// Non-ASCII letters count toward their character class.
	assert.NoError(t, validator.Validate("Pässwörd1"))
}
