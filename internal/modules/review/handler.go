package review

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"nexyatra/internal/pkg/response"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/reviews", h.Submit)
	rg.GET("/reviews", h.ListApproved)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/reviews", h.ListAll)
	rg.PATCH("/reviews/:id/approval", h.SetApproved)
	rg.DELETE("/reviews/:id", h.Delete)
}

// Submit godoc
// @Summary  Submit a review
// @Description  Stored unapproved; visible publicly only after moderation
// @Tags     Reviews
// @Accept   json
// @Produce  json
// @Param    body body SubmitReviewRequest true "review"
// @Success  201 {object} map[string]interface{}
// @Failure  400 {object} map[string]interface{}
// @Router   /reviews [post]
func (h *Handler) Submit(c *gin.Context) {
	var req SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	review, err := h.service.Submit(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, ErrInvalidRating) {
			response.Error(c, http.StatusBadRequest, "INVALID_RATING", "Rating must be between 1 and 5")
			return
		}
		response.Error(c, http.StatusInternalServerError, "SUBMIT_FAILED", "Failed to submit review")
		return
	}
	response.Success(c, http.StatusCreated, review)
}

func (h *Handler) ListApproved(c *gin.Context) {
	reviews, err := h.service.ListApproved(c.Request.Context(), c.Query("destination"))
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to load reviews")
		return
	}
	response.Success(c, http.StatusOK, reviews)
}

func (h *Handler) ListAll(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	reviews, total, err := h.service.ListAll(c.Request.Context(), limit, offset)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "LIST_FAILED", "Failed to load reviews")
		return
	}
	response.Success(c, http.StatusOK, ListResponse{Reviews: reviews, Total: total})
}

func (h *Handler) SetApproved(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid review ID")
		return
	}
	var req ApproveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}
	review, err := h.service.SetApproved(c.Request.Context(), id, req.Approved)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Review not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "UPDATE_FAILED", "Failed to update review")
		return
	}
	response.Success(c, http.StatusOK, review)
}

func (h *Handler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid review ID")
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", "Review not found")
			return
		}
		response.Error(c, http.StatusInternalServerError, "DELETE_FAILED", "Failed to delete review")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"deleted": true})
}
