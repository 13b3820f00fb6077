package commission

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"salondesk/internal/domain"
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
	rg.GET("/commissions", h.List)
	rg.POST("/commissions", h.RecordManual)
	rg.GET("/commissions/statistics", h.Statistics)
	rg.GET("/commissions/staff/:id/summary", h.StaffSummary)
	rg.PATCH("/commissions/:id/status", h.UpdateStatus)
	rg.POST("/commissions/batch", h.BatchUpdateStatus)
}

func (h *Handler) List(c *gin.Context) {
	limit, offset, page := pagination(c, 15)
	f := repository.CommissionFilters{
		Status: c.Query("status"),
		Limit:  limit,
		Offset: offset,
	}
	if v, err := strconv.ParseInt(c.Query("staff_id"), 10, 64); err == nil {
		f.StaffID = v
	}
	if v, err := parseDate(c.Query("date_from")); err == nil {
		f.DateFrom = v
	}
	if v, err := parseDate(c.Query("date_to")); err == nil {
		f.DateTo = v
	}

	commissions, total, err := h.service.List(c.Request.Context(), f)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list commissions")
		return
	}
	response.Paginated(c, http.StatusOK, "commissions", commissions, page, limit, total)
}

func (h *Handler) RecordManual(c *gin.Context) {
	var req ManualCommissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid fields", fields)
		return
	}

	view, err := h.service.RecordManual(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"commission": view})
}

func (h *Handler) StaffSummary(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	from, to := dateRange(c)

	summary, err := h.service.StaffSummary(c.Request.Context(), id, from, to)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"summary": summary})
}

func (h *Handler) Statistics(c *gin.Context) {
	from, to := dateRange(c)

	stats, err := h.service.Statistics(c.Request.Context(), from, to)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to build statistics")
		return
	}
	response.Success(c, http.StatusOK, gin.H{"statistics": stats})
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid fields", fields)
		return
	}

	view, err := h.service.UpdateStatus(c.Request.Context(), id, domain.CommissionStatus(req.Status))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"commission": view})
}

func (h *Handler) BatchUpdateStatus(c *gin.Context) {
	var req BatchUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid fields", fields)
		return
	}

	updated, err := h.service.BatchUpdateStatus(c.Request.Context(), req.CommissionIDs, domain.CommissionStatus(req.Status))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"updated": updated})
}

func handleError(c *gin.Context, err error) {
	switch err {
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Commission not found")
	case ErrValidation:
		response.Error(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid commission data")
	case ErrStaffNotFound:
		response.Error(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Staff member does not exist")
	case ErrServiceNotFound:
		response.Error(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Service does not exist")
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

// dateRange reads date_from/date_to, defaulting to the current month so far.
func dateRange(c *gin.Context) (from, to time.Time) {
	now := time.Now()
	from = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	to = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	if v, err := parseDate(c.Query("date_from")); err == nil {
		from = v
	}
	if v, err := parseDate(c.Query("date_to")); err == nil {
		to = v
	}
	return from, to
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
