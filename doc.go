// Package taiwanid validates, generates and parses Taiwan National ID
// numbers.
//
// An ID number is one uppercase region letter followed by nine decimal
// digits. The letter maps to a two-digit region code; the final digit
// is a check digit chosen so that the weighted sum of the resulting
// 11-digit expansion is divisible by 10.
//
//	taiwanid.IsValid("A123456789") // true
//
//	// Random female ID registered in Taipei City:
//	id, err := taiwanid.GeneratePrefix("A2")
//
// Generated IDs are sample data for testing, not real identities; the
// randomness source is deliberately non-cryptographic.
package taiwanid
