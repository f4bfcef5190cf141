package payment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"nexyatra/internal/domain"
	"nexyatra/internal/gateway/phonepe"
)

type Handler struct {
	service *Service
	loggerf func(format string, args ...interface{})
}

func NewHandler(service *Service, loggerf func(format string, args ...interface{})) *Handler {
	if loggerf == nil {
		loggerf = func(string, ...interface{}) {}
	}
	return &Handler{service: service, loggerf: loggerf}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/payments/order", h.HandleOrder)
}

func (h *Handler) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/payments", h.ListOrders)
}

// HandleOrder godoc
// @Summary      Payment order operations
// @Description  Dispatches on the action query parameter: create-order or check-status
// @Tags         Payments
// @Accept       json
// @Produce      json
// @Param        action query string true "create-order or check-status"
// @Success      200 {object} CreateOrderResponse
// @Failure      400 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Failure      502 {object} ErrorResponse
// @Router       /payments/order [post]
func (h *Handler) HandleOrder(c *gin.Context) {
	switch c.Query("action") {
	case "create-order":
		h.createOrder(c)
	case "check-status":
		h.checkStatus(c)
	default:
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid action"})
	}
}

func (h *Handler) createOrder(c *gin.Context) {
	var req CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	handle, err := h.service.CreateOrder(c.Request.Context(), req)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, CreateOrderResponse{
		Success:       true,
		RedirectURL:   handle.RedirectURL,
		TransactionID: handle.TransactionID,
	})
}

func (h *Handler) checkStatus(c *gin.Context) {
	var req CheckStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body"})
		return
	}

	view, err := h.service.CheckStatus(c.Request.Context(), req.TransactionID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, CheckStatusResponse{
		Success: view.Status == "SUCCESS",
		Status:  string(view.Status),
		Message: view.Message,
	})
}

func (h *Handler) ListOrders(c *gin.Context) {
	var status *domain.OrderStatus
	if raw := c.Query("status"); raw != "" {
		st := domain.OrderStatus(raw)
		if st != domain.OrderPending && !st.Terminal() {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Unknown order status"})
			return
		}
		status = &st
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	orders, total, err := h.service.ListOrders(c.Request.Context(), status, limit, offset)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to load payment orders"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "orders": orders, "total": total})
}

// writeError maps the service taxonomy onto HTTP. Processor declines keep
// their upstream code and message; a misconfigured gateway is reported
// generically so credentials never leak into responses.
func (h *Handler) writeError(c *gin.Context, err error) {
	var gwErr *phonepe.GatewayError
	switch {
	case errors.Is(err, ErrMissingFields):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing required fields"})
	case errors.Is(err, ErrInvalidPhone):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid phone number"})
	case errors.Is(err, ErrInvalidAmount):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid amount"})
	case errors.Is(err, ErrMissingOrderID):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Missing order ID"})
	case errors.Is(err, ErrNotConfigured):
		h.loggerf("level=error msg=payment gateway not configured")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Payment gateway not configured properly"})
	case errors.As(err, &gwErr):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: gwErr.Message, Code: gwErr.Code})
	case errors.Is(err, phonepe.ErrUnreachable):
		c.JSON(http.StatusBadGateway, ErrorResponse{Error: "Payment gateway unavailable, please try again"})
	default:
		h.loggerf("level=error msg=unexpected payment error err=%v", err)
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Internal server error"})
	}
}
