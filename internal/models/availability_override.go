package models

import "time"

// AvailabilityOverride substitui o horário padrão da loja para um
// profissional em uma data. Available=false é folga no dia inteiro.
type AvailabilityOverride struct {
	ID             uint   `gorm:"primaryKey" json:"id"`
	ProfessionalID uint   `gorm:"uniqueIndex:ux_override_professional_date;not null" json:"professional_id"`
	Date           string `gorm:"size:10;uniqueIndex:ux_override_professional_date;not null" json:"date"`

	Available bool    `json:"available"`
	StartTime *string `gorm:"size:5" json:"start_time"`
	EndTime   *string `gorm:"size:5" json:"end_time"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
