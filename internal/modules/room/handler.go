package room

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
	rg.POST("/rooms", h.Create)
	rg.GET("/rooms", h.List)
	rg.GET("/rooms/summary", h.Summary)
	rg.GET("/rooms/available", h.Available)
	rg.GET("/rooms/by-number/:number", h.GetByNumber)
	rg.GET("/rooms/:id", h.Get)
	rg.PUT("/rooms/:id", h.Update)
	rg.PATCH("/rooms/:id/status", h.UpdateStatus)
	rg.DELETE("/rooms/:id", h.Delete)
}

func respondErr(c *gin.Context, err error, fallback string) {
	switch err {
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Room not found")
	case ErrValidation:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid room data")
	case ErrConflict:
		response.Error(c, http.StatusConflict, "CONFLICT", "Room number already exists")
	case ErrInvalidState:
		response.Error(c, http.StatusUnprocessableEntity, "INVALID_STATE", "Room attributes are frozen while bookings reference it")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", fallback)
	}
}

func idParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid id")
		return 0, false
	}
	return id, true
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	room, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		respondErr(c, err, "Failed to create room")
		return
	}
	response.Success(c, http.StatusCreated, room)
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	room, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err, "Failed to load room")
		return
	}
	response.Success(c, http.StatusOK, room)
}

func (h *Handler) GetByNumber(c *gin.Context) {
	room, err := h.service.GetByNumber(c.Request.Context(), c.Param("number"))
	if err != nil {
		respondErr(c, err, "Failed to load room")
		return
	}
	response.Success(c, http.StatusOK, room)
}

func (h *Handler) List(c *gin.Context) {
	var q ListRoomsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters")
		return
	}
	rooms, err := h.service.List(c.Request.Context(), q)
	if err != nil {
		respondErr(c, err, "Failed to list rooms")
		return
	}
	response.Success(c, http.StatusOK, rooms)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req UpdateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	room, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		respondErr(c, err, "Failed to update room")
		return
	}
	response.Success(c, http.StatusOK, room)
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
	room, err := h.service.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		respondErr(c, err, "Failed to update room status")
		return
	}
	response.Success(c, http.StatusOK, room)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondErr(c, err, "Failed to delete room")
		return
	}
	response.Message(c, http.StatusOK, "Room deleted")
}

func (h *Handler) Available(c *gin.Context) {
	var q AvailableRoomsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "check_in and check_out are required")
		return
	}
	rooms, err := h.service.AvailableForDates(c.Request.Context(), q.CheckIn, q.CheckOut)
	if err != nil {
		respondErr(c, err, "Failed to list available rooms")
		return
	}
	response.Success(c, http.StatusOK, rooms)
}

func (h *Handler) Summary(c *gin.Context) {
	sum, err := h.service.Summary(c.Request.Context())
	if err != nil {
		respondErr(c, err, "Failed to build room summary")
		return
	}
	response.Success(c, http.StatusOK, sum)
}
