package validators

import (
	"net"
	"strings"
)

// IsContactValid aceita o contato do cliente como telefone ou e-mail:
// o formulário tem um campo só.
func IsContactValid(contact string) bool {
	contact = strings.TrimSpace(contact)
	if contact == "" {
		return false
	}

	if strings.Contains(contact, "@") {
		return IsEmailDomainValid(contact)
	}
	return IsPhoneValid(contact)
}

// IsPhoneValid exige de 8 a 15 dígitos, ignorando máscara.
func IsPhoneValid(phone string) bool {
	digits := 0
	for _, r := range phone {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == ' ' || r == '-' || r == '(' || r == ')' || r == '+':
			// máscara
		default:
			return false
		}
	}
	return digits >= 8 && digits <= 15
}

func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}

	domain := email[at+1:]

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
