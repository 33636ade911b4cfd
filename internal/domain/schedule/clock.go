package schedule

import (
	"fmt"

	"github.com/classiccuts/booking-api/internal/httperr"
)

// ParseClock converte "HH:MM" (24h) em minutos desde 00:00.
// Formato estrito: entrada fora do padrão é erro de negócio, nunca coagida.
func ParseClock(s string) (int, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, httperr.ErrBusiness("malformed_time")
	}

	for _, i := range []int{0, 1, 3, 4} {
		if s[i] < '0' || s[i] > '9' {
			return 0, httperr.ErrBusiness("malformed_time")
		}
	}

	h := int(s[0]-'0')*10 + int(s[1]-'0')
	m := int(s[3]-'0')*10 + int(s[4]-'0')

	if h > 23 || m > 59 {
		return 0, httperr.ErrBusiness("malformed_time")
	}

	return h*60 + m, nil
}

// FormatClock é o inverso de ParseClock: minutos → "HH:MM" com zero à esquerda.
func FormatClock(minutes int) string {
	return fmt.Sprintf("%02d:%02d", minutes/60, minutes%60)
}
