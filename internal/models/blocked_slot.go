package models

import "time"

// Bloqueio manual de 30 minutos criado pelo barbeiro na própria agenda.
type BlockedSlot struct {
	ID string `gorm:"primaryKey;size:36" json:"id"`

	BarberID uint   `gorm:"index:idx_block_barber_date" json:"barber_id"`
	Date     string `gorm:"size:10;index:idx_block_barber_date" json:"date"`
	Time     string `gorm:"size:5" json:"time"`

	CreatedAt time.Time `json:"created_at"`
}
