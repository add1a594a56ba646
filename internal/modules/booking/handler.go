package booking

import (
	"net/http"
	"strconv"

	"hoteldesk/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings", h.Create)
	rg.GET("/bookings", h.List)
	rg.GET("/bookings/availability", h.CheckAvailability)
	rg.GET("/bookings/pending-checkins", h.PendingCheckIns)
	rg.GET("/bookings/checked-in", h.CheckedInGuests)
	rg.GET("/bookings/reports/daily-revenue", h.DailyRevenue)
	rg.GET("/bookings/reports/revenue-summary", h.RevenueSummary)
	rg.GET("/bookings/:id", h.Get)
	rg.PUT("/bookings/:id", h.Update)
	rg.DELETE("/bookings/:id", h.Delete)
	rg.POST("/bookings/:id/check-in", h.CheckIn)
	rg.POST("/bookings/:id/check-out", h.CheckOut)
	rg.POST("/bookings/:id/cancel", h.Cancel)
	rg.POST("/bookings/:id/payment", h.CollectPayment)
	rg.POST("/bookings/:id/services", h.AddService)
	rg.DELETE("/bookings/:id/services/:serviceID", h.RemoveService)
}

func idParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid id")
		return 0, false
	}
	return id, true
}

func respondErr(c *gin.Context, err error, fallback string) {
	switch err {
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Booking not found")
	case ErrRoomNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Room not found")
	case ErrValidation:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking data")
	case ErrConflict:
		response.Error(c, http.StatusConflict, "CONFLICT", "Booking conflict")
	case ErrInvalidState:
		response.Error(c, http.StatusUnprocessableEntity, "INVALID_STATE", "Operation not permitted in current booking state")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	b, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		respondErr(c, err, "Failed to create booking")
		return
	}
	response.Success(c, http.StatusCreated, b)
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	b, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err, "Failed to load booking")
		return
	}
	response.Success(c, http.StatusOK, b)
}

func (h *Handler) List(c *gin.Context) {
	var q ListBookingsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters")
		return
	}
	items, err := h.service.List(c.Request.Context(), q)
	if err != nil {
		respondErr(c, err, "Failed to list bookings")
		return
	}
	response.Success(c, http.StatusOK, items)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req UpdateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	b, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		respondErr(c, err, "Failed to update booking")
		return
	}
	response.Success(c, http.StatusOK, b)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondErr(c, err, "Failed to delete booking")
		return
	}
	response.Message(c, http.StatusOK, "Booking deleted")
}

func (h *Handler) CheckIn(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	b, err := h.service.CheckIn(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err, "Failed to check in")
		return
	}
	response.Success(c, http.StatusOK, b)
}

func (h *Handler) CheckOut(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	b, err := h.service.CheckOut(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err, "Failed to check out")
		return
	}
	response.Success(c, http.StatusOK, b)
}

func (h *Handler) Cancel(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req struct {
		RefundAdvance bool `json:"refund_advance"`
	}
	// Body is optional: cancelling without one keeps the advance.
	_ = c.ShouldBindJSON(&req)

	b, err := h.service.Cancel(c.Request.Context(), id, req.RefundAdvance)
	if err != nil {
		respondErr(c, err, "Failed to cancel booking")
		return
	}
	response.Success(c, http.StatusOK, b)
}

func (h *Handler) CollectPayment(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req CollectPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	b, err := h.service.CollectPayment(c.Request.Context(), id, req)
	if err != nil {
		respondErr(c, err, "Failed to collect payment")
		return
	}
	response.Success(c, http.StatusOK, b)
}

func (h *Handler) AddService(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req AddServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	b, err := h.service.AddService(c.Request.Context(), id, req)
	if err != nil {
		respondErr(c, err, "Failed to add service")
		return
	}
	response.Success(c, http.StatusCreated, b)
}

func (h *Handler) RemoveService(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	serviceID, ok := idParam(c, "serviceID")
	if !ok {
		return
	}
	b, err := h.service.RemoveService(c.Request.Context(), id, serviceID)
	if err != nil {
		respondErr(c, err, "Failed to remove service")
		return
	}
	response.Success(c, http.StatusOK, b)
}

func (h *Handler) CheckAvailability(c *gin.Context) {
	roomID, err := strconv.ParseInt(c.Query("room_id"), 10, 64)
	if err != nil || roomID <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid room_id")
		return
	}
	var excludeID int64
	if raw := c.Query("exclude_booking_id"); raw != "" {
		excludeID, err = strconv.ParseInt(raw, 10, 64)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid exclude_booking_id")
			return
		}
	}
	res, err := h.service.CheckAvailability(c.Request.Context(), roomID, c.Query("check_in_date"), c.Query("check_out_date"), excludeID)
	if err != nil {
		respondErr(c, err, "Failed to check availability")
		return
	}
	response.Success(c, http.StatusOK, res)
}

func (h *Handler) PendingCheckIns(c *gin.Context) {
	items, err := h.service.PendingCheckIns(c.Request.Context())
	if err != nil {
		respondErr(c, err, "Failed to list pending check-ins")
		return
	}
	response.Success(c, http.StatusOK, items)
}

func (h *Handler) CheckedInGuests(c *gin.Context) {
	items, err := h.service.CheckedInGuests(c.Request.Context())
	if err != nil {
		respondErr(c, err, "Failed to list checked-in guests")
		return
	}
	response.Success(c, http.StatusOK, items)
}

func (h *Handler) DailyRevenue(c *gin.Context) {
	report, err := h.service.DailyRevenue(c.Request.Context(), c.Query("date_from"), c.Query("date_to"))
	if err != nil {
		respondErr(c, err, "Failed to build revenue report")
		return
	}
	response.Success(c, http.StatusOK, report)
}

func (h *Handler) RevenueSummary(c *gin.Context) {
	sum, err := h.service.RevenueSummary(c.Request.Context(), c.Query("date_from"), c.Query("date_to"))
	if err != nil {
		respondErr(c, err, "Failed to build revenue summary")
		return
	}
	response.Success(c, http.StatusOK, sum)
}
