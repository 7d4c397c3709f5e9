package taiwanid

import "errors"

var (
	// ErrPrefixTooLong reports a generation prefix of 10 or more
	// characters, which leaves no room for a check digit.
	ErrPrefixTooLong = errors.New("prefix too long")

	// ErrInvalidPrefix reports a generation prefix whose first
	// character is not an uppercase letter or whose remaining
	// characters are not decimal digits.
	ErrInvalidPrefix = errors.New("invalid prefix")
)
