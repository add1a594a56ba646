package event

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
	rg.POST("/events", h.Create)
	rg.GET("/events", h.List)
	rg.GET("/events/summary", h.Summary)
	rg.GET("/events/:id", h.Get)
	rg.PUT("/events/:id", h.Update)
	rg.DELETE("/events/:id", h.Delete)

	rg.POST("/events/:id/services", h.AddService)
	rg.PUT("/events/:id/services/:serviceID", h.UpdateService)
	rg.DELETE("/events/:id/services/:serviceID", h.DeleteService)

	rg.POST("/events/:id/payments", h.AddCustomerPayment)
	rg.DELETE("/events/:id/payments/:paymentID", h.DeleteCustomerPayment)

	rg.POST("/events/:id/services/:serviceID/vendor-payments", h.AddVendorPayment)
	rg.DELETE("/events/:id/services/:serviceID/vendor-payments/:paymentID", h.DeleteVendorPayment)
}

func respondErr(c *gin.Context, err error, fallback string) {
	switch err {
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Event booking not found")
	case ErrValidation:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid event data")
	case ErrInvalidState:
		response.Error(c, http.StatusUnprocessableEntity, "INVALID_STATE", "Operation not permitted in current event state")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}

func idParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid id")
		return 0, false
	}
	return id, true
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	ev, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		respondErr(c, err, "Failed to create event booking")
		return
	}
	response.Success(c, http.StatusCreated, ev)
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	ev, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err, "Failed to load event booking")
		return
	}
	response.Success(c, http.StatusOK, ev)
}

func (h *Handler) List(c *gin.Context) {
	var q ListEventsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters")
		return
	}
	events, err := h.service.List(c.Request.Context(), q)
	if err != nil {
		respondErr(c, err, "Failed to list event bookings")
		return
	}
	response.Success(c, http.StatusOK, events)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req UpdateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	ev, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		respondErr(c, err, "Failed to update event booking")
		return
	}
	response.Success(c, http.StatusOK, ev)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondErr(c, err, "Failed to delete event booking")
		return
	}
	response.Message(c, http.StatusOK, "Event booking deleted")
}

func (h *Handler) AddService(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req ServiceInput
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	ev, err := h.service.AddService(c.Request.Context(), id, req)
	if err != nil {
		respondErr(c, err, "Failed to add event service")
		return
	}
	response.Success(c, http.StatusCreated, ev)
}

func (h *Handler) UpdateService(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	serviceID, ok := idParam(c, "serviceID")
	if !ok {
		return
	}
	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	ev, err := h.service.UpdateService(c.Request.Context(), id, serviceID, req)
	if err != nil {
		respondErr(c, err, "Failed to update event service")
		return
	}
	response.Success(c, http.StatusOK, ev)
}

func (h *Handler) DeleteService(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	serviceID, ok := idParam(c, "serviceID")
	if !ok {
		return
	}
	ev, err := h.service.DeleteService(c.Request.Context(), id, serviceID)
	if err != nil {
		respondErr(c, err, "Failed to delete event service")
		return
	}
	response.Success(c, http.StatusOK, ev)
}

func (h *Handler) AddCustomerPayment(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	var req PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	ev, err := h.service.AddCustomerPayment(c.Request.Context(), id, req)
	if err != nil {
		respondErr(c, err, "Failed to record customer payment")
		return
	}
	response.Success(c, http.StatusCreated, ev)
}

func (h *Handler) DeleteCustomerPayment(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	paymentID, ok := idParam(c, "paymentID")
	if !ok {
		return
	}
	ev, err := h.service.DeleteCustomerPayment(c.Request.Context(), id, paymentID)
	if err != nil {
		respondErr(c, err, "Failed to delete customer payment")
		return
	}
	response.Success(c, http.StatusOK, ev)
}

func (h *Handler) AddVendorPayment(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	serviceID, ok := idParam(c, "serviceID")
	if !ok {
		return
	}
	var req PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	ev, err := h.service.AddVendorPayment(c.Request.Context(), id, serviceID, req)
	if err != nil {
		respondErr(c, err, "Failed to record vendor payment")
		return
	}
	response.Success(c, http.StatusCreated, ev)
}

func (h *Handler) DeleteVendorPayment(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	serviceID, ok := idParam(c, "serviceID")
	if !ok {
		return
	}
	paymentID, ok := idParam(c, "paymentID")
	if !ok {
		return
	}
	ev, err := h.service.DeleteVendorPayment(c.Request.Context(), id, serviceID, paymentID)
	if err != nil {
		respondErr(c, err, "Failed to delete vendor payment")
		return
	}
	response.Success(c, http.StatusOK, ev)
}

func (h *Handler) Summary(c *gin.Context) {
	report, err := h.service.Summary(c.Request.Context(), c.Query("date_from"), c.Query("date_to"))
	if err != nil {
		respondErr(c, err, "Failed to build event summary")
		return
	}
	response.Success(c, http.StatusOK, report)
}
