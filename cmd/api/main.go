package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"hotelbooking/internal/config"
	"hotelbooking/internal/database"
	"hotelbooking/internal/middleware"
	"hotelbooking/internal/modules/auth"
	"hotelbooking/internal/modules/booking"
	"hotelbooking/internal/modules/hotel"
	"hotelbooking/internal/modules/payment"
	"hotelbooking/internal/modules/room"
	"hotelbooking/internal/modules/ticket"
	"hotelbooking/internal/modules/usermgmt"
	jwtsvc "hotelbooking/internal/pkg/jwt"
	"hotelbooking/internal/repository"
	"hotelbooking/pkg/daraja"
)

func main() {
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
	hotelRepo := repository.NewHotelRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	ticketRepo := repository.NewTicketRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	authHandler := auth.NewHandler(auth.NewService(userRepo, j))
	hotelHandler := hotel.NewHandler(hotel.NewService(hotelRepo))
	roomHandler := room.NewHandler(room.NewService(roomRepo, hotelRepo))
	bookingHandler := booking.NewHandler(booking.NewService(bookingRepo, roomRepo, hotelRepo))

	// The M-Pesa path stays disabled unless credentials are configured;
	// card payments still work through the simulated gateway.
	var mpesa payment.MpesaGateway
	if cfg.DarajaConsumerKey != "" && cfg.DarajaConsumerSecret != "" {
		mpesa = daraja.NewClient(daraja.Config{
			ConsumerKey:    cfg.DarajaConsumerKey,
			ConsumerSecret: cfg.DarajaConsumerSecret,
			ShortCode:      cfg.DarajaShortCode,
			Passkey:        cfg.DarajaPasskey,
			Sandbox:        cfg.DarajaSandbox,
		})
	}
	paymentHandler := payment.NewHandler(payment.NewService(paymentRepo, bookingRepo, mpesa))

	hub := ticket.NewHub()
	defer hub.Close()
	ticketHandler := ticket.NewHandler(ticket.NewService(ticketRepo, hub), hub)

	usermgmtHandler := usermgmt.NewHandler(usermgmt.NewService(userRepo))

	r := gin.Default()
	r.Use(middleware.CORS())

	api := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(api)
		hotelHandler.RegisterRoutes(api)
		roomHandler.RegisterRoutes(api)

		protected := api.Group("/")
		protected.Use(middleware.Auth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			bookingHandler.RegisterRoutes(protected)
			paymentHandler.RegisterRoutes(protected)
			ticketHandler.RegisterRoutes(protected)

			admin := protected.Group("/")
			admin.Use(middleware.AdminOnly())
			{
				hotelHandler.RegisterAdminRoutes(admin)
				roomHandler.RegisterAdminRoutes(admin)
				usermgmtHandler.RegisterRoutes(admin)
			}
		}
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
