package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/agenda-pro/internal/dto"
	"github.com/BruksfildServices01/agenda-pro/internal/httperr"
	"github.com/BruksfildServices01/agenda-pro/internal/httpresp"
	"github.com/BruksfildServices01/agenda-pro/internal/middleware"
	"github.com/BruksfildServices01/agenda-pro/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

type AppointmentHandler struct {
	availability *appointment.GetAvailability
	create       *appointment.CreateAppointment
	transition   *appointment.TransitionAppointment
	listByDate   *appointment.ListAppointmentsByDate
	listByMonth  *appointment.ListAppointmentsByMonth
}

func NewAppointmentHandler(
	availability *appointment.GetAvailability,
	create *appointment.CreateAppointment,
	transition *appointment.TransitionAppointment,
	listByDate *appointment.ListAppointmentsByDate,
	listByMonth *appointment.ListAppointmentsByMonth,
) *AppointmentHandler {
	return &AppointmentHandler{
		availability: availability,
		create:       create,
		transition:   transition,
		listByDate:   listByDate,
		listByMonth:  listByMonth,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type CreateAppointmentRequest struct {
	ClientName     string `json:"client_name" binding:"required"`
	ClientPhone    string `json:"client_phone" binding:"required"`
	ProfessionalID uint   `json:"professional_id"`
	ServiceID      uint   `json:"service_id" binding:"required"`
	Date           string `json:"date" binding:"required"`
	Time           string `json:"time" binding:"required"`
	Notes          string `json:"notes"`
}

type TransitionRequest struct {
	Status string `json:"status" binding:"required"`
}

// availabilityInput lê ?professional_id&service_id&date.
func availabilityInput(c *gin.Context, tenantID uint) (appointment.AvailabilityInput, bool) {
	proID, ok := uintQuery(c, "professional_id")
	if !ok {
		return appointment.AvailabilityInput{}, false
	}
	serviceID, ok := uintQuery(c, "service_id")
	if !ok {
		return appointment.AvailabilityInput{}, false
	}

	return appointment.AvailabilityInput{
		TenantID:       tenantID,
		ProfessionalID: proID,
		ServiceID:      serviceID,
		Date:           c.Query("date"),
	}, true
}

// ======================================================
// AVAILABILITY
// ======================================================

func (h *AppointmentHandler) Availability(c *gin.Context) {
	actor := middleware.ActorFrom(c)

	in, ok := availabilityInput(c, actor.TenantID)
	if !ok {
		return
	}
	// profissional sem professional_id: a própria agenda
	if in.ProfessionalID == 0 {
		in.ProfessionalID = actor.ProfessionalID
	}

	res, err := h.availability.Execute(c.Request.Context(), in)
	if err != nil {
		httperr.FromError(c, err, "availability_failed")
		return
	}

	c.JSON(http.StatusOK, res)
}

// ======================================================
// CREATE
// ======================================================

func (h *AppointmentHandler) Create(c *gin.Context) {
	actor := middleware.ActorFrom(c)

	var req CreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	proID := req.ProfessionalID
	if proID == 0 {
		proID = actor.ProfessionalID
	}

	ap, err := h.create.Execute(c.Request.Context(), actor, appointment.CreateAppointmentInput{
		TenantID:       actor.TenantID,
		ProfessionalID: proID,
		ServiceID:      req.ServiceID,
		ClientName:     req.ClientName,
		ClientPhone:    req.ClientPhone,
		Date:           req.Date,
		Time:           req.Time,
		Notes:          req.Notes,
	})
	if err != nil {
		httperr.FromError(c, err, "failed_to_create_appointment")
		return
	}

	httpresp.Created(c, dto.FromAppointment(*ap))
}

// ======================================================
// STATUS
// ======================================================

func (h *AppointmentHandler) UpdateStatus(c *gin.Context) {
	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var req TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.transition.Execute(c.Request.Context(), middleware.ActorFrom(c), id, req.Status)
	if err != nil {
		httperr.FromError(c, err, "failed_to_update_status")
		return
	}

	c.JSON(http.StatusOK, dto.FromAppointment(*ap))
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) ListByDate(c *gin.Context) {
	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Data obrigatória.")
		return
	}

	proID, ok := uintQuery(c, "professional_id")
	if !ok {
		return
	}

	list, err := h.listByDate.Execute(c.Request.Context(), middleware.ActorFrom(c), proID, date)
	if err != nil {
		httperr.FromError(c, err, "failed_to_list_appointments")
		return
	}

	httpresp.List(c, list)
}

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	yearStr := c.Query("year")
	monthStr := c.Query("month")

	if yearStr == "" || monthStr == "" {
		httperr.BadRequest(c, "missing_year_or_month", "Ano e mês são obrigatórios.")
		return
	}

	year, err := strconv.Atoi(yearStr)
	if err != nil || year < 2000 || year > 2100 {
		httperr.BadRequest(c, "invalid_year", "Ano inválido.")
		return
	}

	month, err := strconv.Atoi(monthStr)
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Mês inválido.")
		return
	}

	proID, ok := uintQuery(c, "professional_id")
	if !ok {
		return
	}

	list, err := h.listByMonth.Execute(c.Request.Context(), middleware.ActorFrom(c), proID, year, month)
	if err != nil {
		httperr.FromError(c, err, "failed_to_list_appointments")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"year":         year,
		"month":        month,
		"appointments": list,
	})
}
