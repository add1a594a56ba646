package expense

import (
	"context"
	"errors"
	"time"

	"hoteldesk/internal/domain"
	"hoteldesk/internal/repository"

	"gorm.io/gorm"
)

type Service struct {
	expenses ExpenseRepository

	// now is swappable so tests can pin the clock.
	now func() time.Time
}

func NewService(expenses ExpenseRepository) *Service {
	return &Service{expenses: expenses, now: time.Now}
}

var validCategories = map[domain.ExpenseCategory]bool{
	domain.ExpStaffSalaries:  true,
	domain.ExpUtilities:      true,
	domain.ExpHousekeeping:   true,
	domain.ExpMaintenance:    true,
	domain.ExpKitchen:        true,
	domain.ExpMarketing:      true,
	domain.ExpOtherOperating: true,
}

var validRecurrences = map[domain.RecurrenceType]bool{
	domain.RecurOneTime: true,
	domain.RecurMonthly: true,
	domain.RecurYearly:  true,
}

func mapRepoErr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

func parseOptionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := parseDate(s)
	if err != nil {
		return nil, ErrValidation
	}
	return &t, nil
}

func (s *Service) today() time.Time {
	t := s.now()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func (s *Service) Create(ctx context.Context, req CreateExpenseRequest) (*ExpenseResponse, error) {
	cat := domain.ExpenseCategory(req.Category)
	if !validCategories[cat] {
		return nil, ErrValidation
	}
	// amount_paid may not exceed amount at creation; updates may overshoot
	// (overpayment shows as a negative due).
	if req.Amount <= 0 || req.AmountPaid < 0 || req.AmountPaid > req.Amount {
		return nil, ErrValidation
	}

	recurrence := domain.RecurOneTime
	if req.RecurrenceType != "" {
		recurrence = domain.RecurrenceType(req.RecurrenceType)
		if !validRecurrences[recurrence] {
			return nil, ErrValidation
		}
	}

	expenseDate := s.today()
	if req.ExpenseDate != "" {
		t, err := parseDate(req.ExpenseDate)
		if err != nil {
			return nil, ErrValidation
		}
		expenseDate = t
	}
	dueDate, err := parseOptionalDate(req.DueDate)
	if err != nil {
		return nil, err
	}
	paymentDate, err := parseOptionalDate(req.PaymentDate)
	if err != nil {
		return nil, err
	}
	recurrenceEnd, err := parseOptionalDate(req.RecurrenceEndDate)
	if err != nil {
		return nil, err
	}

	e := &domain.Expense{
		Category:          cat,
		Subcategory:       req.Subcategory,
		Description:       req.Description,
		Amount:            req.Amount,
		AmountPaid:        req.AmountPaid,
		ExpenseDate:       expenseDate,
		DueDate:           dueDate,
		PaymentDate:       paymentDate,
		VendorName:        req.VendorName,
		EmployeeName:      req.EmployeeName,
		VendorContact:     req.VendorContact,
		InvoiceNumber:     req.InvoiceNumber,
		RoomNumber:        req.RoomNumber,
		RecurrenceType:    recurrence,
		RecurrenceEndDate: recurrenceEnd,
		Notes:             req.Notes,
		ReceiptPath:       req.ReceiptPath,
	}
	if mode, ok := domain.ParsePaymentMode(req.PaymentMode); ok {
		e.PaymentMode = mode
	}
	e.RecalculateDebt()

	if err := s.expenses.Create(ctx, e); err != nil {
		return nil, err
	}
	resp := toExpenseResponse(e)
	return &resp, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*ExpenseResponse, error) {
	e, err := s.expenses.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}
	resp := toExpenseResponse(e)
	return &resp, nil
}

func (s *Service) List(ctx context.Context, q ListExpensesQuery) ([]ExpenseResponse, error) {
	f := repository.ExpenseFilter{
		Category:     domain.ExpenseCategory(q.Category),
		Status:       domain.ExpenseStatus(q.Status),
		VendorName:   q.VendorName,
		EmployeeName: q.EmployeeName,
		AmountMin:    q.AmountMin,
		AmountMax:    q.AmountMax,
	}
	var err error
	if f.DateFrom, err = parseOptionalDate(q.DateFrom); err != nil {
		return nil, err
	}
	if f.DateTo, err = parseOptionalDate(q.DateTo); err != nil {
		return nil, err
	}
	limit := q.Limit
	if limit <= 0 || limit > 200 {
		limit = 100
	}

	expenses, err := s.expenses.List(ctx, f, q.Skip, limit)
	if err != nil {
		return nil, err
	}
	out := make([]ExpenseResponse, 0, len(expenses))
	for i := range expenses {
		out = append(out, toExpenseResponse(&expenses[i]))
	}
	return out, nil
}

func (s *Service) Update(ctx context.Context, id int64, req UpdateExpenseRequest) (*ExpenseResponse, error) {
	e, err := s.expenses.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}

	if req.Category != nil {
		cat := domain.ExpenseCategory(*req.Category)
		if !validCategories[cat] {
			return nil, ErrValidation
		}
		e.Category = cat
	}
	if req.Subcategory != nil {
		e.Subcategory = *req.Subcategory
	}
	if req.Description != nil {
		e.Description = *req.Description
	}
	if req.VendorName != nil {
		e.VendorName = *req.VendorName
	}
	if req.EmployeeName != nil {
		e.EmployeeName = *req.EmployeeName
	}
	if req.VendorContact != nil {
		e.VendorContact = *req.VendorContact
	}
	if req.InvoiceNumber != nil {
		e.InvoiceNumber = *req.InvoiceNumber
	}
	if req.RoomNumber != nil {
		e.RoomNumber = *req.RoomNumber
	}
	if req.Notes != nil {
		e.Notes = *req.Notes
	}
	if req.ReceiptPath != nil {
		e.ReceiptPath = *req.ReceiptPath
	}
	if req.PaymentMode != nil {
		// Unknown modes are tolerated and leave the stored mode unchanged.
		if mode, ok := domain.ParsePaymentMode(*req.PaymentMode); ok {
			e.PaymentMode = mode
		}
	}
	if req.RecurrenceType != nil {
		rec := domain.RecurrenceType(*req.RecurrenceType)
		if !validRecurrences[rec] {
			return nil, ErrValidation
		}
		e.RecurrenceType = rec
	}

	if req.ExpenseDate != nil {
		t, err := parseDate(*req.ExpenseDate)
		if err != nil {
			return nil, ErrValidation
		}
		e.ExpenseDate = t
	}
	if req.DueDate != nil {
		if e.DueDate, err = parseOptionalDate(*req.DueDate); err != nil {
			return nil, err
		}
	}
	if req.PaymentDate != nil {
		if e.PaymentDate, err = parseOptionalDate(*req.PaymentDate); err != nil {
			return nil, err
		}
	}
	if req.RecurrenceEndDate != nil {
		if e.RecurrenceEndDate, err = parseOptionalDate(*req.RecurrenceEndDate); err != nil {
			return nil, err
		}
	}

	// The derivation reruns only when an amount field is part of the patch;
	// a patch touching neither leaves the stored figures untouched.
	amountsTouched := false
	if req.Amount != nil {
		if *req.Amount <= 0 {
			return nil, ErrValidation
		}
		e.Amount = *req.Amount
		amountsTouched = true
	}
	if req.AmountPaid != nil {
		if *req.AmountPaid < 0 {
			return nil, ErrValidation
		}
		e.AmountPaid = *req.AmountPaid
		amountsTouched = true
	}
	if amountsTouched {
		e.RecalculateDebt()
	}

	if err := s.expenses.Save(ctx, e); err != nil {
		return nil, mapRepoErr(err)
	}
	resp := toExpenseResponse(e)
	return &resp, nil
}

// RecordPayment adds a payment toward the expense and re-derives the debt.
func (s *Service) RecordPayment(ctx context.Context, id int64, req RecordPaymentRequest) (*ExpenseResponse, error) {
	if req.Amount <= 0 {
		return nil, ErrValidation
	}
	e, err := s.expenses.GetByID(ctx, id)
	if err != nil {
		return nil, mapRepoErr(err)
	}

	paymentDate := s.today()
	if req.PaymentDate != "" {
		t, err := parseDate(req.PaymentDate)
		if err != nil {
			return nil, ErrValidation
		}
		paymentDate = t
	}

	e.AmountPaid += req.Amount
	e.PaymentDate = &paymentDate
	if mode, ok := domain.ParsePaymentMode(req.PaymentMode); ok {
		e.PaymentMode = mode
	}
	e.RecalculateDebt()

	if err := s.expenses.Save(ctx, e); err != nil {
		return nil, mapRepoErr(err)
	}
	resp := toExpenseResponse(e)
	return &resp, nil
}

// MarkPaid settles a batch of expenses in full in one transaction.
func (s *Service) MarkPaid(ctx context.Context, ids []int64) ([]ExpenseResponse, error) {
	if len(ids) == 0 {
		return nil, ErrValidation
	}
	expenses, err := s.expenses.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	if len(expenses) != len(ids) {
		return nil, ErrNotFound
	}

	today := s.today()
	for i := range expenses {
		expenses[i].AmountPaid = expenses[i].Amount
		expenses[i].PaymentDate = &today
		expenses[i].RecalculateDebt()
	}
	if err := s.expenses.SaveAll(ctx, expenses); err != nil {
		return nil, err
	}

	out := make([]ExpenseResponse, 0, len(expenses))
	for i := range expenses {
		out = append(out, toExpenseResponse(&expenses[i]))
	}
	return out, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	return mapRepoErr(s.expenses.Delete(ctx, id))
}

func (s *Service) Overdue(ctx context.Context) ([]ExpenseResponse, error) {
	expenses, err := s.expenses.Overdue(ctx, s.today())
	if err != nil {
		return nil, err
	}
	out := make([]ExpenseResponse, 0, len(expenses))
	for i := range expenses {
		out = append(out, toExpenseResponse(&expenses[i]))
	}
	return out, nil
}

func (s *Service) Summary(ctx context.Context, dateFromStr, dateToStr string) (*SummaryReport, error) {
	from, err := parseOptionalDate(dateFromStr)
	if err != nil {
		return nil, err
	}
	to, err := parseOptionalDate(dateToStr)
	if err != nil {
		return nil, err
	}

	report := &SummaryReport{}
	if report.TotalAmount, err = s.expenses.TotalAmount(ctx, from, to); err != nil {
		return nil, err
	}
	if report.TotalPaid, err = s.expenses.TotalPaid(ctx, from, to); err != nil {
		return nil, err
	}
	if report.PendingDue, err = s.expenses.PendingDue(ctx, from, to); err != nil {
		return nil, err
	}
	if report.CategoryTotals, err = s.expenses.CategoryTotals(ctx, from, to); err != nil {
		return nil, err
	}
	today := s.today()
	if report.CurrentMonth, err = s.expenses.MonthTotal(ctx, today.Year(), today.Month()); err != nil {
		return nil, err
	}

	// Trailing twelve months, oldest first, ending with the current month.
	for i := 11; i >= 0; i-- {
		m := time.Date(today.Year(), today.Month(), 1, 0, 0, 0, 0, time.UTC).AddDate(0, -i, 0)
		total, err := s.expenses.MonthTotal(ctx, m.Year(), m.Month())
		if err != nil {
			return nil, err
		}
		report.MonthlyTrend = append(report.MonthlyTrend, MonthTotal{
			Month: m.Format("2006-01"),
			Total: total,
		})
	}
	return report, nil
}
