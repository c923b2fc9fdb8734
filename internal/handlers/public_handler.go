package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/agenda-pro/internal/access"
	"github.com/BruksfildServices01/agenda-pro/internal/dto"
	"github.com/BruksfildServices01/agenda-pro/internal/httperr"
	"github.com/BruksfildServices01/agenda-pro/internal/httpresp"
	"github.com/BruksfildServices01/agenda-pro/internal/models"
	"github.com/BruksfildServices01/agenda-pro/internal/usecase/appointment"
)

// PublicCatalog é o que a página pública precisa ler da loja.
type PublicCatalog interface {
	GetTenantBySlug(ctx context.Context, slug string) (*models.Tenant, error)
	ListActiveServices(ctx context.Context, tenantID uint) ([]models.Service, error)
	ListActiveProfessionals(ctx context.Context, tenantID uint) ([]models.Professional, error)
}

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

type PublicHandler struct {
	catalog      PublicCatalog
	availability *appointment.GetAvailability
	create       *appointment.CreateAppointment
	cancel       *appointment.CancelByClient
	lookup       *appointment.ListClientAppointments
}

func NewPublicHandler(
	catalog PublicCatalog,
	availability *appointment.GetAvailability,
	create *appointment.CreateAppointment,
	cancel *appointment.CancelByClient,
	lookup *appointment.ListClientAppointments,
) *PublicHandler {
	return &PublicHandler{
		catalog:      catalog,
		availability: availability,
		create:       create,
		cancel:       cancel,
		lookup:       lookup,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type PublicCreateAppointmentRequest struct {
	ClientName     string `json:"client_name" binding:"required"`
	ClientPhone    string `json:"client_phone" binding:"required"`
	ProfessionalID uint   `json:"professional_id" binding:"required"`
	ServiceID      uint   `json:"service_id" binding:"required"`
	Date           string `json:"date" binding:"required"` // YYYY-MM-DD
	Time           string `json:"time" binding:"required"` // HH:mm
	Notes          string `json:"notes"`
}

type PhoneRequest struct {
	Phone string `json:"phone" binding:"required"`
}

func (h *PublicHandler) tenant(c *gin.Context) (*models.Tenant, bool) {
	tenant, err := h.catalog.GetTenantBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		httperr.FromError(c, err, "tenant_lookup_failed")
		return nil, false
	}
	return tenant, true
}

////////////////////////////////////////////////////////
// CATALOG
////////////////////////////////////////////////////////

func (h *PublicHandler) Catalog(c *gin.Context) {
	tenant, ok := h.tenant(c)
	if !ok {
		return
	}

	services, err := h.catalog.ListActiveServices(c.Request.Context(), tenant.ID)
	if err != nil {
		httperr.FromError(c, err, "failed_to_list_services")
		return
	}

	pros, err := h.catalog.ListActiveProfessionals(c.Request.Context(), tenant.ID)
	if err != nil {
		httperr.FromError(c, err, "failed_to_list_professionals")
		return
	}

	professionals := make([]gin.H, 0, len(pros))
	for _, p := range pros {
		professionals = append(professionals, gin.H{"id": p.ID, "name": p.Name})
	}

	c.JSON(http.StatusOK, gin.H{
		"tenant": gin.H{
			"name":     tenant.Name,
			"slug":     tenant.Slug,
			"phone":    tenant.Phone,
			"timezone": tenant.Timezone,
		},
		"services":      services,
		"professionals": professionals,
	})
}

////////////////////////////////////////////////////////
// AVAILABILITY
////////////////////////////////////////////////////////

func (h *PublicHandler) Availability(c *gin.Context) {
	tenant, ok := h.tenant(c)
	if !ok {
		return
	}

	in, ok := availabilityInput(c, tenant.ID)
	if !ok {
		return
	}

	res, err := h.availability.Execute(c.Request.Context(), in)
	if err != nil {
		httperr.FromError(c, err, "availability_failed")
		return
	}

	c.JSON(http.StatusOK, res)
}

////////////////////////////////////////////////////////
// CREATE APPOINTMENT
////////////////////////////////////////////////////////

func (h *PublicHandler) CreateAppointment(c *gin.Context) {
	tenant, ok := h.tenant(c)
	if !ok {
		return
	}

	var req PublicCreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	// página pública: o cliente agenda para o próprio telefone
	actor := access.Client(tenant.ID, req.ClientPhone)

	ap, err := h.create.Execute(c.Request.Context(), actor, appointment.CreateAppointmentInput{
		TenantID:       tenant.ID,
		ProfessionalID: req.ProfessionalID,
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

////////////////////////////////////////////////////////
// CLIENT SELF-SERVICE
////////////////////////////////////////////////////////

func (h *PublicHandler) Lookup(c *gin.Context) {
	tenant, ok := h.tenant(c)
	if !ok {
		return
	}

	var req PhoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	list, err := h.lookup.Execute(c.Request.Context(), tenant.ID, req.Phone)
	if err != nil {
		httperr.FromError(c, err, "lookup_failed")
		return
	}

	c.JSON(http.StatusOK, gin.H{"appointments": list})
}

func (h *PublicHandler) Cancel(c *gin.Context) {
	tenant, ok := h.tenant(c)
	if !ok {
		return
	}

	id, ok := uintParam(c, "id")
	if !ok {
		return
	}

	var req PhoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Dados inválidos.")
		return
	}

	ap, err := h.cancel.Execute(c.Request.Context(), tenant.ID, id, req.Phone)
	if err != nil {
		httperr.FromError(c, err, "failed_to_cancel_appointment")
		return
	}

	c.JSON(http.StatusOK, dto.FromAppointment(*ap))
}
