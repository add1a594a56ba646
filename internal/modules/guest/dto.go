package guest

type CreateGuestRequest struct {
	FullName      string `json:"full_name" binding:"required"`
	Phone         string `json:"phone" binding:"required"`
	Email         string `json:"email"`
	IDProofType   string `json:"id_proof_type"`
	IDProofNumber string `json:"id_proof_number"`

	Address string `json:"address"`
	City    string `json:"city"`
	State   string `json:"state"`
	Country string `json:"country"`
	Pincode string `json:"pincode"`

	Preferences  string `json:"preferences"`
	SpecialNotes string `json:"special_notes"`
}

// UpdateGuestRequest is an explicit patch: nil means "leave unchanged".
type UpdateGuestRequest struct {
	FullName      *string `json:"full_name"`
	Phone         *string `json:"phone"`
	Email         *string `json:"email"`
	IDProofType   *string `json:"id_proof_type"`
	IDProofNumber *string `json:"id_proof_number"`

	Address *string `json:"address"`
	City    *string `json:"city"`
	State   *string `json:"state"`
	Country *string `json:"country"`
	Pincode *string `json:"pincode"`

	Preferences  *string `json:"preferences"`
	SpecialNotes *string `json:"special_notes"`
}

// RecordStayRequest rolls a completed stay into the guest's visit stats.
type RecordStayRequest struct {
	AmountSpent float64 `json:"amount_spent"`
	VisitDate   string  `json:"visit_date"`
}

type ListGuestsQuery struct {
	FullName    string   `form:"full_name"`
	Phone       string   `form:"phone"`
	Email       string   `form:"email"`
	City        string   `form:"city"`
	MinBookings *int     `form:"min_bookings"`
	MinSpent    *float64 `form:"min_spent"`
	Skip        int      `form:"skip"`
	Limit       int      `form:"limit"`
}
