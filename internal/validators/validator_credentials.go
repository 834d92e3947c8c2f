package validators

import (
	"context"
	"strings"

	"github.com/dmatveev/swarm-console/models"
)

const (
	FieldNickname = "nickname"
	FieldEmail    = "email"
	FieldPassword = "password"
)

const (
	nicknameMinLen = 3
	nicknameMaxLen = 32
	passwordMinLen = 8
)

type CredentialsValidator struct {
}

func NewCredentialsValidator() Validator {
	return &CredentialsValidator{}
}

func (v *CredentialsValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RegisterForm:
		return v.validateRegisterForm(ctx, value, fields...)
	case *models.RegisterForm:
		return v.validateRegisterForm(ctx, *value, fields...)

	case models.LoginForm:
		return v.validateLoginForm(ctx, value, fields...)
	case *models.LoginForm:
		return v.validateLoginForm(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *CredentialsValidator) validateRegisterForm(_ context.Context, form models.RegisterForm, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldNickname, FieldEmail, FieldPassword}
	}

	for _, field := range fields {
		switch field {
		case FieldNickname:
			if err := validateNickname(form.Nickname); err != nil {
				return err
			}
		case FieldEmail:
			if err := validateEmail(form.Email); err != nil {
				return err
			}
		case FieldPassword:
			if err := validatePassword(form.Password); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CredentialsValidator) validateLoginForm(_ context.Context, form models.LoginForm, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldPassword}
	}

	for _, field := range fields {
		switch field {
		case FieldEmail:
			if err := validateEmail(form.Email); err != nil {
				return err
			}
		case FieldPassword:
			if err := validatePassword(form.Password); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateNickname(value string) error {
	trimmed := strings.TrimSpace(value)
	if len(trimmed) < nicknameMinLen || len(trimmed) > nicknameMaxLen {
		return ErrNicknameLength
	}

	return nil
}

// validateEmail applies the same shape check the server uses: one or
// more characters around an '@' and no spaces. Full RFC parsing is
// deliberately out of scope on both sides.
func validateEmail(value string) error {
	trimmed := strings.ToLower(strings.TrimSpace(value))

	valid := strings.Contains(trimmed, "@") &&
		!strings.HasPrefix(trimmed, "@") &&
		!strings.HasSuffix(trimmed, "@") &&
		!strings.Contains(trimmed, " ")
	if !valid {
		return ErrInvalidEmail
	}

	return nil
}

// The password is checked as-is: surrounding whitespace is significant
// and counts toward the length.
func validatePassword(value string) error {
	if len(value) < passwordMinLen {
		return ErrPasswordTooShort
	}

	return nil
}
