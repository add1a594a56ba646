package main

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"

	"hoteldesk/internal/config"
	"hoteldesk/internal/database"
	"hoteldesk/internal/domain"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM booking_services")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM event_vendor_payments")
	db.Exec("DELETE FROM event_services")
	db.Exec("DELETE FROM event_customer_payments")
	db.Exec("DELETE FROM event_bookings")
	db.Exec("DELETE FROM expenses")
	db.Exec("DELETE FROM guests")
	db.Exec("DELETE FROM rooms")
	db.Exec("DELETE FROM users")

	log.Println("Creating users...")
	managerHash, _ := bcrypt.GenerateFromPassword([]byte("manager123"), bcrypt.DefaultCost)
	db.Create(&domain.User{
		Email:        "manager@hoteldesk.local",
		PasswordHash: string(managerHash),
		Role:         "manager",
	})

	log.Println("Creating rooms...")
	rooms := []domain.Room{
		{RoomNumber: "101", RoomType: domain.RoomSingle, BedConfig: domain.BedSingle, Floor: 1, BasePrice: 900, MaxOccupancy: 1, Status: domain.RoomActive, HasWifi: true, HasTV: true},
		{RoomNumber: "102", RoomType: domain.RoomDouble, BedConfig: domain.BedDouble, Floor: 1, BasePrice: 1500, MaxOccupancy: 2, Status: domain.RoomActive, HasAC: true, HasWifi: true, HasTV: true},
		{RoomNumber: "103", RoomType: domain.RoomDouble, BedConfig: domain.BedTwin, Floor: 1, BasePrice: 1500, MaxOccupancy: 2, Status: domain.RoomUnderMaintenance, HasWifi: true},
		{RoomNumber: "201", RoomType: domain.RoomDeluxe, BedConfig: domain.BedKing, Floor: 2, BasePrice: 2500, MaxOccupancy: 3, Status: domain.RoomActive, HasAC: true, HasWifi: true, HasTV: true, HasRefrigerator: true, HasBalcony: true},
		{RoomNumber: "202", RoomType: domain.RoomSuite, BedConfig: domain.BedKing, Floor: 2, BasePrice: 4000, MaxOccupancy: 4, Status: domain.RoomActive, HasAC: true, HasWifi: true, HasTV: true, HasRefrigerator: true, HasMiniBar: true, HasSafe: true, HasBathtub: true},
		{RoomNumber: "203", RoomType: domain.RoomFamilyRoom, BedConfig: domain.BedDouble, Floor: 2, BasePrice: 3000, MaxOccupancy: 5, Status: domain.RoomActive, HasAC: true, HasWifi: true, HasTV: true},
	}
	for i := range rooms {
		if err := db.Create(&rooms[i]).Error; err != nil {
			log.Fatal("seeding rooms failed:", err)
		}
	}

	today := time.Now().Truncate(24 * time.Hour)

	log.Println("Creating bookings...")
	b := domain.Booking{
		GuestName:        "Asha Rao",
		GuestPhone:       "9876543210",
		RoomID:           rooms[1].ID,
		CheckInDate:      today,
		CheckOutDate:     today.AddDate(0, 0, 3),
		Adults:           2,
		Source:           string(domain.SourceWalkIn),
		RoomRatePerNight: 1500,
		AdvancePayment:   2000,
		Status:           domain.BookingConfirmed,
		PaymentMode:      domain.PayUPI,
	}
	b.RecalculateStay()
	if err := db.Create(&b).Error; err != nil {
		log.Fatal("seeding bookings failed:", err)
	}

	log.Println("Creating event bookings...")
	ev := domain.EventBooking{
		BookingName:  "Verma Wedding",
		BookingDate:  today.AddDate(0, 1, 0),
		ContactName:  "Rohit Verma",
		ContactPhone: "9811122233",
		Status:       domain.EventConfirmed,
		Services: []domain.EventService{
			{ServiceType: domain.EventSvcMarriageGarden, CustomerPrice: 100000},
			{ServiceType: domain.EventSvcTenting, CustomerPrice: 50000, VendorCost: 30000, VendorName: "Sharma Tent House"},
		},
		CustomerPayments: []domain.EventCustomerPayment{
			{PaymentDate: today, Amount: 60000, PaymentMode: "Bank Transfer"},
		},
	}
	if err := db.Create(&ev).Error; err != nil {
		log.Fatal("seeding events failed:", err)
	}

	log.Println("Creating expenses...")
	due := today.AddDate(0, 0, 10)
	expenses := []domain.Expense{
		{Category: domain.ExpUtilities, Description: "Monthly electricity bill", Amount: 12000, AmountPaid: 12000, ExpenseDate: today.AddDate(0, 0, -5), PaymentMode: domain.PayBankTransfer, RecurrenceType: domain.RecurMonthly},
		{Category: domain.ExpStaffSalaries, Description: "Housekeeping salary", EmployeeName: "Sunita Devi", Amount: 15000, AmountPaid: 7500, ExpenseDate: today.AddDate(0, 0, -2), DueDate: &due, RecurrenceType: domain.RecurMonthly},
	}
	for i := range expenses {
		expenses[i].RecalculateDebt()
		if err := db.Create(&expenses[i]).Error; err != nil {
			log.Fatal("seeding expenses failed:", err)
		}
	}

	log.Println("Creating guests...")
	firstVisit := today.AddDate(-1, 0, 0)
	guest := domain.Guest{
		FullName:      "Asha Rao",
		Phone:         "9876543210",
		City:          "Jaipur",
		TotalBookings: 3,
		TotalSpent:    14500,
		FirstVisit:    &firstVisit,
		LastVisit:     &today,
	}
	if err := db.Create(&guest).Error; err != nil {
		log.Fatal("seeding guests failed:", err)
	}

	log.Println("Seed complete.")
}
