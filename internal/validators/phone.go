package validators

import (
	"strings"
	"unicode"
)

const (
	minPhoneDigits = 10
	maxPhoneDigits = 15
)

// NormalizePhone mantém só os dígitos; o telefone é a chave de busca
// do cliente, então "(11) 99999-0000" e "11999990000" precisam bater.
func NormalizePhone(phone string) (string, bool) {
	var b strings.Builder
	for _, r := range phone {
		switch {
		case unicode.IsDigit(r):
			b.WriteRune(r)
		case r == ' ' || r == '-' || r == '(' || r == ')' || r == '+' || r == '.':
		default:
			return "", false
		}
	}

	digits := b.String()
	if len(digits) < minPhoneDigits || len(digits) > maxPhoneDigits {
		return "", false
	}
	return digits, true
}
