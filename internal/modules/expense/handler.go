package expense

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
	rg.POST("/expenses", h.Create)
	rg.GET("/expenses", h.List)
	rg.GET("/expenses/overdue", h.Overdue)
	rg.GET("/expenses/summary", h.Summary)
	rg.POST("/expenses/mark-paid", h.MarkPaid)
	rg.GET("/expenses/:id", h.Get)
	rg.PUT("/expenses/:id", h.Update)
	rg.DELETE("/expenses/:id", h.Delete)
	rg.POST("/expenses/:id/payment", h.RecordPayment)
}

func respondErr(c *gin.Context, err error, fallback string) {
	switch err {
	case ErrNotFound:
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Expense not found")
	case ErrValidation:
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid expense data")
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
	var req CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	e, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		respondErr(c, err, "Failed to create expense")
		return
	}
	response.Success(c, http.StatusCreated, e)
}

func (h *Handler) Get(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	e, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		respondErr(c, err, "Failed to load expense")
		return
	}
	response.Success(c, http.StatusOK, e)
}

func (h *Handler) List(c *gin.Context) {
	var q ListExpensesQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid query parameters")
		return
	}
	expenses, err := h.service.List(c.Request.Context(), q)
	if err != nil {
		respondErr(c, err, "Failed to list expenses")
		return
	}
	response.Success(c, http.StatusOK, expenses)
}

func (h *Handler) Update(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	e, err := h.service.Update(c.Request.Context(), id, req)
	if err != nil {
		respondErr(c, err, "Failed to update expense")
		return
	}
	response.Success(c, http.StatusOK, e)
}

func (h *Handler) Delete(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondErr(c, err, "Failed to delete expense")
		return
	}
	response.Message(c, http.StatusOK, "Expense deleted")
}

func (h *Handler) RecordPayment(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	e, err := h.service.RecordPayment(c.Request.Context(), id, req)
	if err != nil {
		respondErr(c, err, "Failed to record payment")
		return
	}
	response.Success(c, http.StatusOK, e)
}

func (h *Handler) MarkPaid(c *gin.Context) {
	var req MarkPaidRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	expenses, err := h.service.MarkPaid(c.Request.Context(), req.IDs)
	if err != nil {
		respondErr(c, err, "Failed to mark expenses paid")
		return
	}
	response.Success(c, http.StatusOK, expenses)
}

func (h *Handler) Overdue(c *gin.Context) {
	expenses, err := h.service.Overdue(c.Request.Context())
	if err != nil {
		respondErr(c, err, "Failed to list overdue expenses")
		return
	}
	response.Success(c, http.StatusOK, expenses)
}

func (h *Handler) Summary(c *gin.Context) {
	report, err := h.service.Summary(c.Request.Context(), c.Query("date_from"), c.Query("date_to"))
	if err != nil {
		respondErr(c, err, "Failed to build expense summary")
		return
	}
	response.Success(c, http.StatusOK, report)
}
