package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrNicknameLength   = errors.New("nickname length must be between 3 and 32 characters")
	ErrInvalidEmail     = errors.New("email must be a valid address")
	ErrPasswordTooShort = errors.New("password must contain at least 8 characters")
)
