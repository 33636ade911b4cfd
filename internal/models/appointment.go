package models

import "time"

// Mantém nome e contato do cliente desnormalizados no próprio registro,
// como o documento de agendamento original.
type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BarberID uint   `gorm:"index:idx_appointment_barber_date" json:"barber_id"`
	Barber   Barber `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"barber"`

	Date string `gorm:"size:10;index:idx_appointment_barber_date" json:"date"`
	Time string `gorm:"size:5" json:"time"`

	ServiceID   uint   `json:"service_id"`
	ServiceName string `gorm:"size:100" json:"service_name"`
	DurationMin int    `json:"duration_min"`

	ClientName    string `gorm:"size:100;not null" json:"client_name"`
	ClientContact string `gorm:"size:100;not null" json:"client_contact"`

	Status string `gorm:"size:20;default:'scheduled'" json:"status"`

	CancelledAt *time.Time `json:"cancelled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
