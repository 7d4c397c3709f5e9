package taiwanid

import (
	"fmt"
	"unicode/utf8"
)

// IsValid reports whether id is a syntactically and arithmetically
// valid ID number. It never panics, whatever the input.
func IsValid(id string) bool {
	valid, _ := Validate(id)
	return valid
}

// Validate checks id and returns (valid, reason). The reason is empty
// for a valid ID and describes the first failed rule otherwise.
func Validate(id string) (bool, string) {
	if n := utf8.RuneCountInString(id); n != idLength {
		return false, fmt.Sprintf("expected length %d, got %d", idLength, n)
	}
	// Ten runes in more than ten bytes means a multi-byte character is
	// present somewhere; only strict ASCII letters and digits are legal.
	if len(id) != idLength {
		return false, "non-ASCII character in ID"
	}

	letter := id[0]
	if letter < 'A' || letter > 'Z' {
		return false, fmt.Sprintf("first character %q is not an uppercase letter", letter)
	}

	var a [11]int
	pair := codePairs[letter-'A']
	a[0], a[1] = pair[0], pair[1]
	for i := 1; i < idLength; i++ {
		c := id[i]
		if c < '0' || c > '9' {
			return false, fmt.Sprintf("character %q at position %d is not a digit", c, i)
		}
		a[i+1] = int(c - '0')
	}

	if !passesChecksum(a) {
		return false, "checksum mismatch"
	}
	return true, ""
}
