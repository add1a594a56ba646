package domain

import "time"

type ExpenseCategory string

const (
	ExpStaffSalaries  ExpenseCategory = "Staff Salaries"
	ExpUtilities      ExpenseCategory = "Utilities"
	ExpHousekeeping   ExpenseCategory = "Housekeeping Supplies"
	ExpMaintenance    ExpenseCategory = "Maintenance & Repairs"
	ExpKitchen        ExpenseCategory = "Kitchen/Restaurant"
	ExpMarketing      ExpenseCategory = "Marketing & Commissions"
	ExpOtherOperating ExpenseCategory = "Other Operating Expenses"
)

type ExpenseStatus string

const (
	ExpensePaid    ExpenseStatus = "Paid"
	ExpensePending ExpenseStatus = "Pending"
)

type RecurrenceType string

const (
	RecurOneTime RecurrenceType = "One Time"
	RecurMonthly RecurrenceType = "Monthly"
	RecurYearly  RecurrenceType = "Yearly"
)

// Expense tracks an operating cost with partial-payment debt management.
// AmountDue and Status are derived from Amount and AmountPaid. AmountDue is
// not clamped at zero on update; an overpayment surfaces as a negative due.
type Expense struct {
	ID int64 `json:"id" gorm:"column:id;primaryKey"`

	Category    ExpenseCategory `json:"category" gorm:"column:category;size:50;index"`
	Subcategory string          `json:"subcategory,omitempty" gorm:"column:subcategory;size:200"`
	Description string          `json:"description" gorm:"column:description;size:500"`
	Amount      float64         `json:"amount" gorm:"column:amount"`

	AmountPaid float64 `json:"amount_paid" gorm:"column:amount_paid;default:0"`
	AmountDue  float64 `json:"amount_due" gorm:"column:amount_due;default:0"`

	ExpenseDate time.Time  `json:"expense_date" gorm:"column:expense_date;index"`
	DueDate     *time.Time `json:"due_date,omitempty" gorm:"column:due_date"`

	Status      ExpenseStatus `json:"status" gorm:"column:status;size:20;index"`
	PaymentMode PaymentMode   `json:"payment_mode,omitempty" gorm:"column:payment_mode;size:20"`
	PaymentDate *time.Time    `json:"payment_date,omitempty" gorm:"column:payment_date"`

	VendorName    string `json:"vendor_name,omitempty" gorm:"column:vendor_name;size:200"`
	EmployeeName  string `json:"employee_name,omitempty" gorm:"column:employee_name;size:200"`
	VendorContact string `json:"vendor_contact,omitempty" gorm:"column:vendor_contact;size:100"`

	InvoiceNumber string `json:"invoice_number,omitempty" gorm:"column:invoice_number;size:100"`
	RoomNumber    string `json:"room_number,omitempty" gorm:"column:room_number;size:20"`

	RecurrenceType    RecurrenceType `json:"recurrence_type" gorm:"column:recurrence_type;size:20;default:One Time"`
	RecurrenceEndDate *time.Time     `json:"recurrence_end_date,omitempty" gorm:"column:recurrence_end_date"`

	Notes       string `json:"notes,omitempty" gorm:"column:notes;type:text"`
	ReceiptPath string `json:"receipt_path,omitempty" gorm:"column:receipt_path;size:500"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (Expense) TableName() string { return "expenses" }

// RecalculateDebt re-derives AmountDue and Status from Amount and AmountPaid.
// Runs on creation and on updates that touch either amount field; a patch
// touching neither leaves the stored derivation alone.
func (e *Expense) RecalculateDebt() {
	e.AmountDue = e.Amount - e.AmountPaid
	if e.AmountPaid >= e.Amount {
		e.Status = ExpensePaid
	} else {
		e.Status = ExpensePending
	}
}
