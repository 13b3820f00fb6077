package appointment

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

// RegisterPublicRoutes exposes the customer-facing booking endpoint.
func (h *Handler) RegisterPublicRoutes(rg *gin.RouterGroup) {
	rg.POST("/booking", h.CreatePublic)
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/appointments", h.List)
	rg.POST("/appointments", h.CreateAdmin)
	rg.GET("/appointments/:id", h.Get)
	rg.PUT("/appointments/:id", h.Update)
	rg.DELETE("/appointments/:id", h.Delete)
	rg.PATCH("/appointments/:id/status", h.UpdateStatus)
	rg.PATCH("/appointments/:id/staff", h.AssignStaff)
}

func (h *Handler) CreatePublic(c *gin.Context) {
	var req PublicBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid fields", fields)
		return
	}

	a, err := h.service.CreatePublic(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{
		"reference": a.Reference,
		"message":   "Your appointment has been submitted! We will contact you to confirm.",
	})
}

func (h *Handler) List(c *gin.Context) {
	f := repository.AppointmentFilters{
		Status: c.Query("status"),
		Search: c.Query("search"),
	}
	if d := c.Query("date"); d != "" {
		if parsed, err := time.Parse("2006-01-02", d); err == nil {
			f.Date = parsed
		}
	}
	limit, offset, page := pagination(c, 10)
	f.Limit, f.Offset = limit, offset

	appointments, total, err := h.service.List(c.Request.Context(), f)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Failed to list appointments")
		return
	}

	views := make([]AppointmentView, 0, len(appointments))
	for i := range appointments {
		views = append(views, NewAppointmentView(&appointments[i]))
	}
	response.Paginated(c, http.StatusOK, "appointments", views, page, f.Limit, total)
}

func (h *Handler) CreateAdmin(c *gin.Context) {
	var req AdminAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid fields", fields)
		return
	}

	a, err := h.service.CreateAdmin(c.Request.Context(), req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"appointment": NewAppointmentView(a)})
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	a, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"appointment": NewAppointmentView(a)})
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req AdminAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusUnprocessableEntity, "VALIDATION_ERROR", "Invalid fields", fields)
		return
	}

	a, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"appointment": NewAppointmentView(a)})
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

	a, err := h.service.UpdateStatus(c.Request.Context(), id, domain.AppointmentStatus(req.Status))
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"appointment": NewAppointmentView(a)})
}

func (h *Handler) AssignStaff(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req AssignStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}

	a, err := h.service.AssignStaff(c.Request.Context(), id, req.ServiceID, req.StaffID)
	if err != nil {
		handleError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"appointment": NewAppointmentView(a)})
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
	response.Success(c, http.StatusOK, gin.H{"message": "Appointment deleted"})
}

func handleError(c *gin.Context, err error) {
	switch err {
	case ErrValidation:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid appointment data")
	case ErrPastDate:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Booking date must not be in the past")
	case ErrServiceNotFound:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Service not found")
	case ErrStaffNotFound:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Staff not found")
	case ErrSlotNotFound:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Service is not attached to this appointment")
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Appointment not found")
	case ErrAlreadyInvoiced:
		response.Error(c, http.StatusConflict, "ALREADY_INVOICED",
			"Cannot delete an appointment that has been invoiced")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Database error")
	}
}

func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "INVALID_ID", "Invalid appointment id")
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
