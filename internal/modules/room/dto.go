package room

type CreateRoomRequest struct {
	RoomNumber   string  `json:"room_number" binding:"required"`
	RoomType     string  `json:"room_type" binding:"required"`
	BedConfig    string  `json:"bed_configuration"`
	Floor        int     `json:"floor_number"`
	BasePrice    float64 `json:"base_price" binding:"required"`
	MaxOccupancy int     `json:"max_occupancy"`

	HasAC           bool `json:"has_ac"`
	HasTV           bool `json:"has_tv"`
	HasWifi         bool `json:"has_wifi"`
	HasBalcony      bool `json:"has_balcony"`
	HasRefrigerator bool `json:"has_refrigerator"`
	HasMiniBar      bool `json:"has_mini_bar"`
	HasSafe         bool `json:"has_safe"`
	HasBathtub      bool `json:"has_bathtub"`

	Notes          string `json:"notes"`
	CustomRoomType string `json:"custom_room_type"`
}

// UpdateRoomRequest is an explicit patch: nil means "leave unchanged".
// RoomNumber is immutable after creation.
type UpdateRoomRequest struct {
	RoomType     *string  `json:"room_type"`
	BedConfig    *string  `json:"bed_configuration"`
	Floor        *int     `json:"floor_number"`
	BasePrice    *float64 `json:"base_price"`
	MaxOccupancy *int     `json:"max_occupancy"`
	Status       *string  `json:"status"`

	HasAC           *bool `json:"has_ac"`
	HasTV           *bool `json:"has_tv"`
	HasWifi         *bool `json:"has_wifi"`
	HasBalcony      *bool `json:"has_balcony"`
	HasRefrigerator *bool `json:"has_refrigerator"`
	HasMiniBar      *bool `json:"has_mini_bar"`
	HasSafe         *bool `json:"has_safe"`
	HasBathtub      *bool `json:"has_bathtub"`

	Notes          *string `json:"notes"`
	CustomRoomType *string `json:"custom_room_type"`
}

// touchesStructure reports whether the patch changes any physical attribute
// of the room, as opposed to its status or free-text notes.
func (r UpdateRoomRequest) touchesStructure() bool {
	return r.RoomType != nil || r.BedConfig != nil || r.Floor != nil ||
		r.BasePrice != nil || r.MaxOccupancy != nil || r.CustomRoomType != nil ||
		r.HasAC != nil || r.HasTV != nil || r.HasWifi != nil || r.HasBalcony != nil ||
		r.HasRefrigerator != nil || r.HasMiniBar != nil || r.HasSafe != nil || r.HasBathtub != nil
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type AvailableRoomsQuery struct {
	CheckIn  string `form:"check_in" binding:"required"`
	CheckOut string `form:"check_out" binding:"required"`
}

type ListRoomsQuery struct {
	Status   string   `form:"status"`
	RoomType string   `form:"room_type"`
	Floor    *int     `form:"floor_number"`
	MinPrice *float64 `form:"min_price"`
	MaxPrice *float64 `form:"max_price"`
	Skip     int      `form:"skip"`
	Limit    int      `form:"limit"`
}
