package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Professional struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	TenantID uint `gorm:"index;not null" json:"tenant_id"`

	// credencial de acesso (colaborador externo de identidade)
	UserID *uint `gorm:"index" json:"user_id"`

	Name   string `gorm:"size:100;not null" json:"name"`
	Active bool   `gorm:"default:true;index" json:"active"`

	ProfessionalTypeID *uint `json:"professional_type_id"`

	DeactivatedAt *time.Time `json:"deactivated_at"`
	CreatedAt     time.Time  `gorm:"index" json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// ProfessionalType classifica o profissional para fins de comissão.
type ProfessionalType struct {
	ID       uint `gorm:"primaryKey" json:"id"`
	TenantID uint `gorm:"index;not null" json:"tenant_id"`

	Name          string          `gorm:"size:100;not null" json:"name"`
	CommissionPct decimal.Decimal `gorm:"type:numeric(5,2);not null" json:"commission_pct"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
