package domain

import "time"

// Guest is a returning-customer profile, kept separate from bookings. Phone
// number is the natural key; duplicates are rejected.
type Guest struct {
	ID int64 `json:"id" gorm:"column:id;primaryKey"`

	FullName      string `json:"full_name" gorm:"column:full_name;size:200"`
	Phone         string `json:"phone" gorm:"column:phone;size:20;index"`
	Email         string `json:"email,omitempty" gorm:"column:email;size:200;index"`
	IDProofType   string `json:"id_proof_type,omitempty" gorm:"column:id_proof_type;size:50"`
	IDProofNumber string `json:"id_proof_number,omitempty" gorm:"column:id_proof_number;size:50"`

	Address string `json:"address,omitempty" gorm:"column:address;type:text"`
	City    string `json:"city,omitempty" gorm:"column:city;size:100"`
	State   string `json:"state,omitempty" gorm:"column:state;size:100"`
	Country string `json:"country,omitempty" gorm:"column:country;size:100"`
	Pincode string `json:"pincode,omitempty" gorm:"column:pincode;size:20"`

	Preferences  string `json:"preferences,omitempty" gorm:"column:preferences;type:text"`
	SpecialNotes string `json:"special_notes,omitempty" gorm:"column:special_notes;type:text"`

	TotalBookings int        `json:"total_bookings" gorm:"column:total_bookings;default:0"`
	TotalSpent    float64    `json:"total_spent" gorm:"column:total_spent;default:0"`
	FirstVisit    *time.Time `json:"first_visit,omitempty" gorm:"column:first_visit"`
	LastVisit     *time.Time `json:"last_visit,omitempty" gorm:"column:last_visit"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (Guest) TableName() string { return "guests" }
