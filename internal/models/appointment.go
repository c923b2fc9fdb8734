package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	TenantID uint `gorm:"index;not null" json:"tenant_id"`

	ProfessionalID uint         `gorm:"not null;index:ix_appointments_professional_date,priority:1" json:"professional_id"`
	Professional   Professional `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"professional"`

	ClientID uint   `gorm:"not null" json:"client_id"`
	Client   Client `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"client"`

	ServiceID uint    `gorm:"not null" json:"service_id"`
	Service   Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"service"`

	// valores copiados do serviço no momento do agendamento
	Price       decimal.Decimal `gorm:"type:numeric(10,2);not null" json:"price"`
	DurationMin int             `gorm:"not null" json:"duration_min"`

	// data/hora locais da loja: "2006-01-02" e "15:04"
	Date      string `gorm:"size:10;not null;index:ix_appointments_professional_date,priority:2" json:"date"`
	StartTime string `gorm:"size:5;not null" json:"start_time"`

	Status string `gorm:"size:20;default:'pending';index" json:"status"`

	Notes       string     `gorm:"size:255" json:"notes"`
	ConfirmedAt *time.Time `json:"confirmed_at"`
	CompletedAt *time.Time `json:"completed_at"`
	CanceledAt  *time.Time `json:"canceled_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
