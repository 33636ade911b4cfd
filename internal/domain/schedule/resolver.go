package schedule

// DaySchedule é a configuração recorrente de um dia da semana, como salva
// pelo barbeiro: expediente e pausa opcional (os dois campos juntos ou nenhum).
type DaySchedule struct {
	Active     bool   `json:"active"`
	Start      string `json:"start"`
	End        string `json:"end"`
	BreakStart string `json:"break_start"`
	BreakEnd   string `json:"break_end"`
}

func (d DaySchedule) HasBreak() bool {
	return d.BreakStart != "" && d.BreakEnd != ""
}

// WorkSchedule é a grade semanal completa de um barbeiro.
type WorkSchedule map[Weekday]DaySchedule

// Window é o expediente já resolvido para uma data concreta, em minutos do dia.
type Window struct {
	Start int
	End   int

	HasBreak   bool
	BreakStart int
	BreakEnd   int
}

// ResolveDay resolve a grade semanal para a data alvo. ok=false significa
// "fechado": domingo, dia não configurado, inativo ou configuração inválida.
// Grade quebrada nunca vira erro para o cliente, vira indisponibilidade.
// Só a própria data malformada é erro (violação de pré-condição do chamador).
func ResolveDay(ws WorkSchedule, date string) (Window, bool, error) {
	weekday, err := WeekdayOf(date)
	if err != nil {
		return Window{}, false, err
	}

	if weekday == Sunday {
		return Window{}, false, nil
	}

	day, found := ws[weekday]
	if !found || !day.Active {
		return Window{}, false, nil
	}

	start, err := ParseClock(day.Start)
	if err != nil {
		return Window{}, false, nil
	}
	end, err := ParseClock(day.End)
	if err != nil {
		return Window{}, false, nil
	}
	if start >= end {
		return Window{}, false, nil
	}

	win := Window{Start: start, End: end}

	// pausa: ou os dois lados, ou nada
	if day.BreakStart != "" || day.BreakEnd != "" {
		if !day.HasBreak() {
			return Window{}, false, nil
		}

		bs, err := ParseClock(day.BreakStart)
		if err != nil {
			return Window{}, false, nil
		}
		be, err := ParseClock(day.BreakEnd)
		if err != nil {
			return Window{}, false, nil
		}
		if bs >= be || bs < start || be > end {
			return Window{}, false, nil
		}

		win.HasBreak = true
		win.BreakStart = bs
		win.BreakEnd = be
	}

	return win, true, nil
}
