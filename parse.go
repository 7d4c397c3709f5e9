package taiwanid

import "fmt"

// ParseResult holds the decomposed fields of a valid ID number.
type ParseResult struct {
	Region     string // leading region letter
	RegionCode int    // numeric code of the letter, 10..35
	RegionName string // administrative area the letter was issued for
	Category   int    // digit after the letter
	Gender     string // "male" or "female" when the category encodes one
	Serial     string // the seven serial digits
	CheckDigit int
}

// Parse validates id and decomposes it into its fields.
func Parse(id string) (*ParseResult, error) {
	valid, reason := Validate(id)
	if !valid {
		return nil, fmt.Errorf("invalid ID: %s", reason)
	}

	letter := id[0]
	pair := codePairs[letter-'A']
	category := int(id[1] - '0')

	// 8 and 9 are the legacy resident-certificate category digits; the
	// generator never emits them but validation accepts them.
	var gender string
	switch category {
	case 1, 8:
		gender = "male"
	case 2, 9:
		gender = "female"
	}

	return &ParseResult{
		Region:     string(letter),
		RegionCode: pair[0]*10 + pair[1],
		RegionName: regionNames[letter-'A'],
		Category:   category,
		Gender:     gender,
		Serial:     id[2 : idLength-1],
		CheckDigit: int(id[idLength-1] - '0'),
	}, nil
}
