package domain

import "time"

type RoomType string

const (
	RoomSingle     RoomType = "Single"
	RoomDouble     RoomType = "Double"
	RoomDeluxe     RoomType = "Deluxe"
	RoomSuite      RoomType = "Suite"
	RoomFamilyRoom RoomType = "Family Room"
	RoomCustom     RoomType = "Custom"
)

type BedConfig string

const (
	BedSingle BedConfig = "Single Bed"
	BedDouble BedConfig = "Double Bed"
	BedTwin   BedConfig = "Twin Beds"
	BedKing   BedConfig = "King Bed"
)

type RoomStatus string

const (
	RoomActive           RoomStatus = "Active"
	RoomUnderMaintenance RoomStatus = "Under Maintenance"
	RoomInactive         RoomStatus = "Inactive"
)

// Room is the hotel's inventory unit. Rooms are referenced by bookings and
// are never physically deleted once referenced; deactivation is a status flip.
type Room struct {
	ID           int64      `json:"id" gorm:"column:id;primaryKey"`
	RoomNumber   string     `json:"room_number" gorm:"column:room_number;uniqueIndex;size:20"`
	RoomType     RoomType   `json:"room_type" gorm:"column:room_type;size:30"`
	BedConfig    BedConfig  `json:"bed_configuration" gorm:"column:bed_configuration;size:30"`
	Floor        int        `json:"floor_number" gorm:"column:floor_number"`
	BasePrice    float64    `json:"base_price" gorm:"column:base_price"`
	MaxOccupancy int        `json:"max_occupancy" gorm:"column:max_occupancy;default:2"`
	Status       RoomStatus `json:"status" gorm:"column:status;size:30;default:Active"`

	HasAC           bool `json:"has_ac" gorm:"column:has_ac"`
	HasTV           bool `json:"has_tv" gorm:"column:has_tv"`
	HasWifi         bool `json:"has_wifi" gorm:"column:has_wifi"`
	HasBalcony      bool `json:"has_balcony" gorm:"column:has_balcony"`
	HasRefrigerator bool `json:"has_refrigerator" gorm:"column:has_refrigerator"`
	HasMiniBar      bool `json:"has_mini_bar" gorm:"column:has_mini_bar"`
	HasSafe         bool `json:"has_safe" gorm:"column:has_safe"`
	HasBathtub      bool `json:"has_bathtub" gorm:"column:has_bathtub"`

	Notes          string `json:"notes,omitempty" gorm:"column:notes;type:text"`
	CustomRoomType string `json:"custom_room_type,omitempty" gorm:"column:custom_room_type;size:100"`

	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (Room) TableName() string { return "rooms" }

// RoomSummary aggregates inventory counts for dashboards.
type RoomSummary struct {
	TotalRooms       int64            `json:"total_rooms"`
	ActiveRooms      int64            `json:"active_rooms"`
	InactiveRooms    int64            `json:"inactive_rooms"`
	UnderMaintenance int64            `json:"under_maintenance"`
	RoomTypes        map[string]int64 `json:"room_types"`
}
