package guest

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
	rg.POST("/guests", h.Create)
	rg.GET("/guests", h.List)
	rg.GET("/guests/search", h.Search)
	rg.GET("/guests/top", h.Top)
	rg.GET("/guests/by-phone/:phone", h.GetByPhone)
	rg.GET("/guests/:id", h.Get)
	rg.GET("/guests/:id/bookings", h.Stays)
	rg.PUT("/guests/:id", h.Update)
	rg.DELETE("/guests/:id", h.Delete)
	rg.POST("/guests/:id/stays", h.RecordStay)
}

func respondErr(c *gin.Context, err error, fallback string) {
	switch err {
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Guest not found")
	case ErrValidation:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid guest data")
	case ErrConflict:
		response.Error(c, http.StatusConflict, "CONFLICT", "Guest with this phone already exists")
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
	var req CreateGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	g, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		respondErr(c, err, "Failed to create guest")
		return
	}
	response.Success(c, http.StatusCreated, g)
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	g, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err, "Failed to load guest")
		return
	}
	response.Success(c, http.StatusOK, g)
}

func (h *Handler) GetByPhone(c *gin.Context) {
	g, err := h.service.GetByPhone(c.Request.Context(), c.Param("phone"))
	if err != nil {
		respondErr(c, err, "Failed to load guest")
		return
	}
	response.Success(c, http.StatusOK, g)
}

func (h *Handler) List(c *gin.Context) {
	var q ListGuestsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters")
		return
	}
	guests, err := h.service.List(c.Request.Context(), q)
	if err != nil {
		respondErr(c, err, "Failed to list guests")
		return
	}
	response.Success(c, http.StatusOK, guests)
}

func (h *Handler) Search(c *gin.Context) {
	guests, err := h.service.Search(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondErr(c, err, "Failed to search guests")
		return
	}
	response.Success(c, http.StatusOK, guests)
}

func (h *Handler) Top(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	guests, err := h.service.Top(c.Request.Context(), c.Query("by"), limit)
	if err != nil {
		respondErr(c, err, "Failed to rank guests")
		return
	}
	response.Success(c, http.StatusOK, guests)
}

func (h *Handler) Stays(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	bookings, err := h.service.Stays(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err, "Failed to load booking history")
		return
	}
	response.Success(c, http.StatusOK, bookings)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req UpdateGuestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	g, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		respondErr(c, err, "Failed to update guest")
		return
	}
	response.Success(c, http.StatusOK, g)
}

func (h *Handler) RecordStay(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req RecordStayRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	g, err := h.service.RecordStay(c.Request.Context(), id, req)
	if err != nil {
		respondErr(c, err, "Failed to record stay")
		return
	}
	response.Success(c, http.StatusOK, g)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondErr(c, err, "Failed to delete guest")
		return
	}
	response.Message(c, http.StatusOK, "Guest deleted")
}
