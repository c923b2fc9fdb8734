package dto

import (
	"github.com/shopspring/decimal"

	"github.com/BruksfildServices01/agenda-pro/internal/models"
	"github.com/BruksfildServices01/agenda-pro/internal/timeofday"
)

type AppointmentListDTO struct {
	ID               uint            `json:"id"`
	Date             string          `json:"date"`
	StartTime        string          `json:"start_time"`
	EndTime          string          `json:"end_time"`
	Status           string          `json:"status"`
	Price            decimal.Decimal `json:"price"`
	ClientName       string          `json:"client_name"`
	ServiceName      string          `json:"service_name"`
	ProfessionalID   uint            `json:"professional_id"`
	ProfessionalName string          `json:"professional_name"`
}

func FromAppointment(ap models.Appointment) AppointmentListDTO {
	end := ap.StartTime
	if start, err := timeofday.Parse(ap.StartTime); err == nil {
		end = start.Add(ap.DurationMin).String()
	}

	return AppointmentListDTO{
		ID:               ap.ID,
		Date:             ap.Date,
		StartTime:        ap.StartTime,
		EndTime:          end,
		Status:           ap.Status,
		Price:            ap.Price,
		ClientName:       ap.Client.Name,
		ServiceName:      ap.Service.Name,
		ProfessionalID:   ap.ProfessionalID,
		ProfessionalName: ap.Professional.Name,
	}
}

func FromAppointments(aps []models.Appointment) []AppointmentListDTO {
	out := make([]AppointmentListDTO, 0, len(aps))
	for _, ap := range aps {
		out = append(out, FromAppointment(ap))
	}
	return out
}
