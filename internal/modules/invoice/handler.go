package invoice

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"salondesk/internal/pkg/response"
	"salondesk/internal/pkg/validator"
	"salondesk/internal/repository"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/invoices", h.List)
	rg.POST("/invoices", h.Create)
	rg.GET("/invoices/:id", h.Get)
	rg.PUT("/invoices/:id", h.Update)
	rg.DELETE("/invoices/:id", h.Delete)
	rg.POST("/invoices/:id/pay", h.MarkAsPaid)
	rg.POST("/appointments/:id/convert", h.ConvertAppointment)
}

func (h *Handler) List(c *gin.Context) {
	f := repository.InvoiceFilters{
		Search: c.Query("search"),
		Status: c.Query("status"),
	}
	limit, offset, page := pagination(c, 10)
	f.Limit, f.Offset = limit, offset

	invoices, total, err := h.service.List(c.Request.Context(), f)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list invoices")
		return
	}
	response.Paginated(c, http.StatusOK, "invoices", invoices, page, f.Limit, total)
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	inv, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"invoice": inv})
}

func (h *Handler) Create(c *gin.Context) {
	var req InvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid fields", fields)
		return
	}

	inv, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"invoice": inv})
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req InvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid fields", fields)
		return
	}

	inv, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"invoice": inv})
}

func (h *Handler) MarkAsPaid(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	inv, err := h.service.MarkAsPaid(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"invoice": inv,
		"message": "Invoice marked as paid. Staff commissions are pending approval.",
	})
}

func (h *Handler) ConvertAppointment(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	inv, err := h.service.ConvertAppointment(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"invoice": inv})
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"message": "Invoice deleted"})
}

func handleError(c *gin.Context, err error) {
	switch err {
	case ErrValidation:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid invoice data")
	case ErrServiceNotFound:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Service not found")
	case ErrStaffNotFound:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Staff not found")
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Record not found")
	case ErrNotEligible:
		response.Error(c, http.StatusConflict, "NOT_ELIGIBLE",
			"This appointment cannot be converted to an invoice")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Database error")
	}
}

func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid id")
		return 0, false
	}
	return id, true
}

func pagination(c *gin.Context, defaultLimit int) (limit, offset, page int) {
	limit = defaultLimit
	if v, err := strconv.Atoi(c.Query("per_page")); err == nil && v > 0 && v <= 100 {
		limit = v
	}
	page = 1
	if v, err := strconv.Atoi(c.Query("page")); err == nil && v > 0 {
		page = v
	}
	offset = (page - 1) * limit
	return limit, offset, page
}
