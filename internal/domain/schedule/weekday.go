package schedule

import (
	"time"

	"github.com/classiccuts/booking-api/internal/httperr"
)

type Weekday string

const (
	Monday    Weekday = "monday"
	Tuesday   Weekday = "tuesday"
	Wednesday Weekday = "wednesday"
	Thursday  Weekday = "thursday"
	Friday    Weekday = "friday"
	Saturday  Weekday = "saturday"
	Sunday    Weekday = "sunday"
)

var weekdayNames = map[time.Weekday]Weekday{
	time.Monday:    Monday,
	time.Tuesday:   Tuesday,
	time.Wednesday: Wednesday,
	time.Thursday:  Thursday,
	time.Friday:    Friday,
	time.Saturday:  Saturday,
	time.Sunday:    Sunday,
}

// IsValid aceita apenas os seis dias configuráveis (domingo é sempre fechado).
func (w Weekday) IsValid() bool {
	switch w {
	case Monday, Tuesday, Wednesday, Thursday, Friday, Saturday:
		return true
	}
	return false
}

// WeekdayOf deriva o dia da semana de uma data "2006-01-02" ancorando em
// meio-dia UTC. A mesma string de data sempre produz o mesmo dia,
// independente do relógio local do processo.
func WeekdayOf(date string) (Weekday, error) {
	d, err := time.Parse("2006-01-02", date)
	if err != nil {
		return "", httperr.ErrBusiness("invalid_date")
	}

	anchor := time.Date(d.Year(), d.Month(), d.Day(), 12, 0, 0, 0, time.UTC)
	return weekdayNames[anchor.Weekday()], nil
}
