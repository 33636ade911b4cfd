package timezone

import "time"

// Timezone de referência fixo do produto: datas de calendário e "agora" são
// sempre avaliados aqui, nunca no relógio local do host.
const Reference = "America/Sao_Paulo"

func Location() *time.Location {
	loc, err := time.LoadLocation(Reference)
	if err != nil {
		return time.UTC
	}
	return loc
}

func Now() time.Time {
	return time.Now().In(Location())
}

// Today devolve a data de hoje no timezone de referência, como "2006-01-02".
func Today() string {
	return Now().Format("2006-01-02")
}

// MinuteOfDay devolve quantos minutos já passaram de hoje no timezone de
// referência (comparável com horários "HH:MM" já parseados).
func MinuteOfDay() int {
	now := Now()
	return now.Hour()*60 + now.Minute()
}
