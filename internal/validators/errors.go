package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	// Messages below are shown to the user verbatim.
	ErrRequiredFieldsMissing   = errors.New("please fill in Title, Country, and Location.")
	ErrLegacyTitleRequired     = errors.New("job title or search keyword required.")
	ErrCredentialsRequired     = errors.New("email and password are required")
	ErrEmailRequired           = errors.New("email is required")
	ErrCurrentPasswordRequired = errors.New("current password is required to change password")
	ErrPasswordMismatch        = errors.New("new password and confirm do not match")

	ErrInvalidID        = errors.New("invalid notification id")
	ErrInvalidSeniority = errors.New("invalid seniority")
	ErrInvalidJobScope  = errors.New("invalid job scope")
	ErrInvalidFrequency = errors.New("invalid frequency")
	ErrInvalidDist      = errors.New("dist must not be negative")
)
