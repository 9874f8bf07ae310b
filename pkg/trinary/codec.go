package trinary

import "fmt"

// pow3 holds the powers of three consumed by the codec, 3^0 through 3^8.
var pow3 = [NumNeighborhoods]int{1, 3, 9, 27, 81, 243, 729, 2187, 6561}

// ToTrinary converts a rule number into its nine-digit base-3
// representation, most-significant digit first and zero-padded. Rule
// numbers outside [0, MaxRuleNumber] fail with ErrInvalidRuleNumber.
func ToTrinary(rule int) (string, error) {
	if rule < 0 || rule > MaxRuleNumber {
		return "", fmt.Errorf("%w: got %d", ErrInvalidRuleNumber, rule)
	}
	var digits [NumNeighborhoods]byte
	rem := rule
	for i := NumNeighborhoods - 1; i >= 0; i-- {
		d := rem / pow3[i]
		rem -= d * pow3[i]
		digits[NumNeighborhoods-1-i] = '0' + byte(d)
	}
	return string(digits[:]), nil
}
