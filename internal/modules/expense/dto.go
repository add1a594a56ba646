package expense

import (
	"time"

	"hoteldesk/internal/domain"
	"hoteldesk/internal/repository"
)

const dateLayout = "2006-01-02"

type CreateExpenseRequest struct {
	Category    string  `json:"category" binding:"required"`
	Subcategory string  `json:"subcategory"`
	Description string  `json:"description" binding:"required"`
	Amount      float64 `json:"amount" binding:"required"`
	AmountPaid  float64 `json:"amount_paid"`

	ExpenseDate string `json:"expense_date"`
	DueDate     string `json:"due_date"`

	PaymentMode string `json:"payment_mode"`
	PaymentDate string `json:"payment_date"`

	VendorName    string `json:"vendor_name"`
	EmployeeName  string `json:"employee_name"`
	VendorContact string `json:"vendor_contact"`

	InvoiceNumber string `json:"invoice_number"`
	RoomNumber    string `json:"room_number"`

	RecurrenceType    string `json:"recurrence_type"`
	RecurrenceEndDate string `json:"recurrence_end_date"`

	Notes       string `json:"notes"`
	ReceiptPath string `json:"receipt_path"`
}

// UpdateExpenseRequest is an explicit patch: nil means "leave unchanged".
// The debt derivation reruns only when Amount or AmountPaid is present.
type UpdateExpenseRequest struct {
	Category    *string  `json:"category"`
	Subcategory *string  `json:"subcategory"`
	Description *string  `json:"description"`
	Amount      *float64 `json:"amount"`
	AmountPaid  *float64 `json:"amount_paid"`

	ExpenseDate *string `json:"expense_date"`
	DueDate     *string `json:"due_date"`

	PaymentMode *string `json:"payment_mode"`
	PaymentDate *string `json:"payment_date"`

	VendorName    *string `json:"vendor_name"`
	EmployeeName  *string `json:"employee_name"`
	VendorContact *string `json:"vendor_contact"`

	InvoiceNumber *string `json:"invoice_number"`
	RoomNumber    *string `json:"room_number"`

	RecurrenceType    *string `json:"recurrence_type"`
	RecurrenceEndDate *string `json:"recurrence_end_date"`

	Notes       *string `json:"notes"`
	ReceiptPath *string `json:"receipt_path"`
}

type RecordPaymentRequest struct {
	Amount      float64 `json:"amount" binding:"required"`
	PaymentMode string  `json:"payment_mode"`
	PaymentDate string  `json:"payment_date"`
}

type MarkPaidRequest struct {
	IDs []int64 `json:"expense_ids" binding:"required"`
}

type ListExpensesQuery struct {
	Category     string   `form:"category"`
	Status       string   `form:"status"`
	VendorName   string   `form:"vendor_name"`
	EmployeeName string   `form:"employee_name"`
	DateFrom     string   `form:"date_from"`
	DateTo       string   `form:"date_to"`
	AmountMin    *float64 `form:"amount_min"`
	AmountMax    *float64 `form:"amount_max"`
	Skip         int      `form:"skip"`
	Limit        int      `form:"limit"`
}

type SummaryReport struct {
	TotalAmount    float64                    `json:"total_amount"`
	TotalPaid      float64                    `json:"total_paid"`
	PendingDue     float64                    `json:"pending_due"`
	CategoryTotals []repository.CategoryTotal `json:"category_totals"`
	CurrentMonth   float64                    `json:"current_month_total"`
	MonthlyTrend   []MonthTotal               `json:"monthly_trend"`
}

// MonthTotal is one point of the trailing-year spend trend.
type MonthTotal struct {
	Month string  `json:"month"`
	Total float64 `json:"total"`
}

type ExpenseResponse struct {
	ID          int64   `json:"id"`
	Category    string  `json:"category"`
	Subcategory string  `json:"subcategory,omitempty"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount"`
	AmountPaid  float64 `json:"amount_paid"`
	AmountDue   float64 `json:"amount_due"`

	ExpenseDate string `json:"expense_date"`
	DueDate     string `json:"due_date,omitempty"`

	Status      string `json:"status"`
	PaymentMode string `json:"payment_mode,omitempty"`
	PaymentDate string `json:"payment_date,omitempty"`

	VendorName    string `json:"vendor_name,omitempty"`
	EmployeeName  string `json:"employee_name,omitempty"`
	VendorContact string `json:"vendor_contact,omitempty"`

	InvoiceNumber string `json:"invoice_number,omitempty"`
	RoomNumber    string `json:"room_number,omitempty"`

	RecurrenceType    string `json:"recurrence_type"`
	RecurrenceEndDate string `json:"recurrence_end_date,omitempty"`

	Notes       string `json:"notes,omitempty"`
	ReceiptPath string `json:"receipt_path,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toExpenseResponse(e *domain.Expense) ExpenseResponse {
	resp := ExpenseResponse{
		ID:             e.ID,
		Category:       string(e.Category),
		Subcategory:    e.Subcategory,
		Description:    e.Description,
		Amount:         e.Amount,
		AmountPaid:     e.AmountPaid,
		AmountDue:      e.AmountDue,
		ExpenseDate:    e.ExpenseDate.Format(dateLayout),
		Status:         string(e.Status),
		PaymentMode:    string(e.PaymentMode),
		VendorName:     e.VendorName,
		EmployeeName:   e.EmployeeName,
		VendorContact:  e.VendorContact,
		InvoiceNumber:  e.InvoiceNumber,
		RoomNumber:     e.RoomNumber,
		RecurrenceType: string(e.RecurrenceType),
		Notes:          e.Notes,
		ReceiptPath:    e.ReceiptPath,
		CreatedAt:      e.CreatedAt,
		UpdatedAt:      e.UpdatedAt,
	}
	if e.DueDate != nil {
		resp.DueDate = e.DueDate.Format(dateLayout)
	}
	if e.PaymentDate != nil {
		resp.PaymentDate = e.PaymentDate.Format(dateLayout)
	}
	if e.RecurrenceEndDate != nil {
		resp.RecurrenceEndDate = e.RecurrenceEndDate.Format(dateLayout)
	}
	return resp
}
