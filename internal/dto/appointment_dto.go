package dto

import "github.com/classiccuts/booking-api/internal/models"

// AppointmentListDTO é o formato enxuto que o painel do barbeiro consome
// nas listagens por dia e por mês.
type AppointmentListDTO struct {
	ID            uint   `json:"id"`
	Date          string `json:"date"`
	Time          string `json:"time"`
	DurationMin   int    `json:"duration_min"`
	Status        string `json:"status"`
	ClientName    string `json:"client_name"`
	ClientContact string `json:"client_contact"`
	ServiceName   string `json:"service_name"`
}

func NewAppointmentListDTO(ap models.Appointment) AppointmentListDTO {
	return AppointmentListDTO{
		ID:            ap.ID,
		Date:          ap.Date,
		Time:          ap.Time,
		DurationMin:   ap.DurationMin,
		Status:        ap.Status,
		ClientName:    ap.ClientName,
		ClientContact: ap.ClientContact,
		ServiceName:   ap.ServiceName,
	}
}

func AppointmentList(aps []models.Appointment) []AppointmentListDTO {
	out := make([]AppointmentListDTO, 0, len(aps))
	for _, ap := range aps {
		out = append(out, NewAppointmentListDTO(ap))
	}
	return out
}
