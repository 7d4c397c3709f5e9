package taiwanid

// weights pairs positionally with the 11-element numeric expansion of
// an ID: the two digits of the region code followed by the nine ID
// digits.
var weights = [11]int{1, 9, 8, 7, 6, 5, 4, 3, 2, 1, 1}

func weightedSum(a [11]int) int {
	sum := 0
	for i, v := range a {
		sum += v * weights[i]
	}
	return sum
}

// passesChecksum reports whether the expansion belongs to a valid ID.
func passesChecksum(a [11]int) bool {
	return weightedSum(a)%10 == 0
}

// solveCheckDigit returns the digit for the final position that makes
// the checksum divisible by 10. Position 10 of a must still be zero;
// its weight is 1, so the answer is a direct modular subtraction.
func solveCheckDigit(a [11]int) int {
	return (10 - weightedSum(a)%10) % 10
}
