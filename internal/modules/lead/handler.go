package lead

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"nexyatra/internal/domain"
	"nexyatra/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/journey-requests", h.Submit)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/leads", h.List)
	rg.PATCH("/leads/:id/status", h.UpdateStatus)
	rg.DELETE("/leads/:id", h.Delete)
}

// Submit godoc
// @Summary  Submit a journey request
// @Tags     Leads
// @Accept   json
// @Produce  json
// @Param    body body SubmitLeadRequest true "journey request"
// @Success  201 {object} map[string]interface{}
// @Failure  400 {object} map[string]interface{}
// @Router   /journey-requests [post]
func (h *Handler) Submit(c *gin.Context) {
	var req SubmitLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	lead, err := h.service.Submit(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidPhone) {
			response.Error(c, http.StatusBadRequest, "INVALID_PHONE", "Invalid contact number")
			return
		}
		response.Error(c, http.StatusBadRequest, "SUBMIT_FAILED", "Unable to save your journey details")
		return
	}
	response.Success(c, http.StatusCreated, lead)
}

func (h *Handler) List(c *gin.Context) {
	var status *domain.LeadStatus
	if raw := c.Query("status"); raw != "" {
		st := domain.LeadStatus(raw)
		if !st.Valid() {
			response.Error(c, http.StatusBadRequest, "INVALID_STATUS", "Unknown lead status")
			return
		}
		status = &st
	}

	from, ok := parseDateQuery(c, "from")
	if !ok {
		return
	}
	to, ok := parseDateQuery(c, "to")
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	leads, total, err := h.service.List(c.Request.Context(), status, from, to, limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to load leads")
		return
	}
	response.Success(c, http.StatusOK, ListResponse{Leads: leads, Total: total})
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid lead ID")
		return
	}
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	lead, err := h.service.UpdateStatus(c.Request.Context(), id, domain.LeadStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound):
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Lead not found")
		case errors.Is(err, ErrInvalidStatus):
			response.Error(c, http.StatusBadRequest, "INVALID_STATUS", "Unknown lead status")
		case errors.Is(err, ErrInvalidTransition):
			response.Error(c, http.StatusConflict, "INVALID_TRANSITION", "Status transition not allowed")
		default:
			response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to update lead status")
		}
		return
	}
	response.Success(c, http.StatusOK, lead)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid lead ID")
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Lead not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "DELETE_FAILED", "Failed to delete lead")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}

func parseDateQuery(c *gin.Context, name string) (*time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		return nil, true
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_DATE", "Dates must be YYYY-MM-DD")
		return nil, false
	}
	if name == "to" {
		// inclusive end of day
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, true
}
