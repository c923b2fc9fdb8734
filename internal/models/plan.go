package models

import "time"

// Plan de assinatura. MaxProfessionals nil = ilimitado.
type Plan struct {
	ID               uint   `gorm:"primaryKey" json:"id"`
	Name             string `gorm:"size:50;uniqueIndex;not null" json:"name"`
	MaxProfessionals *int   `json:"max_professionals"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
