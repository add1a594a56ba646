package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"hoteldesk/internal/config"
	"hoteldesk/internal/database"
	"hoteldesk/internal/middleware"
	"hoteldesk/internal/modules/auth"
	"hoteldesk/internal/modules/booking"
	"hoteldesk/internal/modules/event"
	"hoteldesk/internal/modules/expense"
	"hoteldesk/internal/modules/guest"
	"hoteldesk/internal/modules/room"
	jwtsvc "hoteldesk/internal/pkg/jwt"
	"hoteldesk/internal/repository"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	userRepo := repository.NewUserRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	eventRepo := repository.NewEventRepository(db)
	expenseRepo := repository.NewExpenseRepository(db)
	guestRepo := repository.NewGuestRepository(db)

	tokens := jwtsvc.New(cfg.JWTSecret)

	authHandler := auth.NewHandler(auth.NewService(userRepo, tokens, cfg.HotelPassword, cfg.SessionTTL, cfg.RememberTTL))
	roomHandler := room.NewHandler(room.NewService(roomRepo))
	bookingHandler := booking.NewHandler(booking.NewService(bookingRepo, roomRepo))
	eventHandler := event.NewHandler(event.NewService(eventRepo))
	expenseHandler := expense.NewHandler(expense.NewService(expenseRepo))
	guestHandler := guest.NewHandler(guest.NewService(guestRepo))

	r := gin.Default()
	r.Use(middleware.ErrorLogger())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	v1 := r.Group("/api/v1")
	{
		authHandler.RegisterPublicRoutes(v1)

		protected := v1.Group("/")
		protected.Use(middleware.Auth(tokens))
		{
			authHandler.RegisterProtectedRoutes(protected)
			roomHandler.RegisterRoutes(protected)
			bookingHandler.RegisterRoutes(protected)
			eventHandler.RegisterRoutes(protected)
			expenseHandler.RegisterRoutes(protected)
			guestHandler.RegisterRoutes(protected)
		}
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
