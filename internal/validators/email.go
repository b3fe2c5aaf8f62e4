package validators

import (
	"net"
	"strings"
)

// IsEmailDomainValid faz uma checagem leve de DNS no domínio do e-mail:
// qualquer registro MX ou A/AAAA é suficiente. Domínios sem ponto (localhost,
// TLD puro) são rejeitados antes de consultar o DNS.
func IsEmailDomainValid(email string) bool {
	at := strings.LastIndex(email, "@")
	if at < 0 || at == len(email)-1 {
		return false
	}

	domain := strings.ToLower(strings.TrimSpace(email[at+1:]))
	if domain == "" || !strings.Contains(domain, ".") {
		return false
	}

	if mx, err := net.LookupMX(domain); err == nil && len(mx) > 0 {
		return true
	}

	if ips, err := net.LookupIP(domain); err == nil && len(ips) > 0 {
		return true
	}

	return false
}
