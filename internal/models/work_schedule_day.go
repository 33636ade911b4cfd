package models

import "time"

// Um registro por dia da semana configurado (monday..saturday).
// Domingo nunca é persistido: a barbearia não abre.
type WorkScheduleDay struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	BarberID uint `gorm:"index:idx_schedule_barber_weekday,unique" json:"barber_id"`

	Weekday string `gorm:"size:10;index:idx_schedule_barber_weekday,unique" json:"weekday"`

	Active     bool   `json:"active"`
	StartTime  string `gorm:"size:5" json:"start_time"`
	EndTime    string `gorm:"size:5" json:"end_time"`
	BreakStart string `gorm:"size:5" json:"break_start"`
	BreakEnd   string `gorm:"size:5" json:"break_end"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
