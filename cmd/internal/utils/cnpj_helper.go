package utils

import "strings"

// CNPJLength is the digit count of an unformatted CNPJ.
const CNPJLength = 14

// cnpjWeights is the weight run for the second check digit. The first check
// digit uses the same run without its leading weight.
var cnpjWeights = [...]int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}

// IsCNPJValid takes digits only, as they appear in emit/CNPJ and dest/CNPJ.
func IsCNPJValid(cnpj string) bool {
	if len(cnpj) != CNPJLength || !IsOnlyNumbers(cnpj) {
		return false
	}
	// repeated-digit ids pass the checksum but are never issued
	if strings.Count(cnpj, cnpj[:1]) == CNPJLength {
		return false
	}

	for n := CNPJLength - 2; n < CNPJLength; n++ {
		if cnpjCheckDigit(cnpj[:n]) != int(cnpj[n]-'0') {
			return false
		}
	}
	return true
}

func IsOnlyNumbers(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range []byte(s) {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// cnpjCheckDigit is the mod 11 digit that follows base (12 or 13 digits).
func cnpjCheckDigit(base string) int {
	weights := cnpjWeights[len(cnpjWeights)-len(base):]

	sum := 0
	for i, w := range weights {
		sum += int(base[i]-'0') * w
	}
	if r := sum % 11; r >= 2 {
		return 11 - r
	}
	return 0
}
