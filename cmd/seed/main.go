package main

import (
	"fmt"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"

	"hotelbooking/internal/database"
	"hotelbooking/internal/domain"
)

func main() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		dsn = "hotel.db"
	}

	db, err := database.Connect(dsn)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := database.Migrate(db); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	// Cleanup old data (in safe order to avoid foreign key errors)
	log.Println("Cleaning old data...")
	db.Exec("DELETE FROM support_tickets")
	db.Exec("DELETE FROM payments")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM rooms")
	db.Exec("DELETE FROM hotels")
	db.Exec("DELETE FROM users")

	// ================== USERS ==================
	log.Println("Creating users...")

	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	admin := domain.User{
		Firstname:    "Amina",
		Lastname:     "Otieno",
		Email:        "admin@hotelbooking.co.ke",
		PasswordHash: string(adminHash),
		ContactPhone: "0712345678",
		IsAdmin:      true,
		IsVerified:   true,
	}
	db.Create(&admin)
	log.Println("Admin created: admin@hotelbooking.co.ke / admin123")

	clientNames := [][2]string{{"Brian", "Mwangi"}, {"Cynthia", "Wanjiru"}, {"David", "Kiprotich"}}
	for i, name := range clientNames {
		hash, _ := bcrypt.GenerateFromPassword([]byte("client123"), bcrypt.DefaultCost)
		client := domain.User{
			Firstname:    name[0],
			Lastname:     name[1],
			Email:        fmt.Sprintf("%s@example.com", name[0]),
			PasswordHash: string(hash),
			ContactPhone: fmt.Sprintf("07123456%02d", i+10),
			IsVerified:   true,
		}
		db.Create(&client)
	}

	// ================== HOTELS ==================
	log.Println("Creating hotels...")

	hotels := []domain.Hotel{
		{
			Name:         "Savannah Serena",
			Location:     "Nairobi",
			Address:      "Kenyatta Avenue 12",
			ContactPhone: "0711000001",
			Category:     domain.CategoryLuxury,
			Rating:       "4.8",
		},
		{
			Name:         "Coral Breeze Resort",
			Location:     "Mombasa",
			Address:      "Nyali Road 44",
			ContactPhone: "0711000002",
			Category:     domain.CategoryPremium,
			Rating:       "4.2",
		},
		{
			Name:         "Lakeside Lodge",
			Location:     "Kisumu",
			Address:      "Oginga Odinga Street 7",
			ContactPhone: "0711000003",
			Category:     domain.CategoryStandard,
			Rating:       "3.6",
		},
	}
	for i := range hotels {
		db.Create(&hotels[i])
	}

	// ================== ROOMS ==================
	log.Println("Creating rooms...")

	roomTypes := []struct {
		kind     string
		price    string
		capacity int
	}{
		{"Single", "100.00", 1},
		{"Double", "150.00", 2},
		{"Suite", "250.00", 4},
	}
	for _, h := range hotels {
		for _, rt := range roomTypes {
			db.Create(&domain.Room{
				HotelID:       h.ID,
				RoomType:      rt.kind,
				PricePerNight: rt.price,
				Capacity:      rt.capacity,
				Amenities:     "WiFi, TV, Breakfast",
				IsAvailable:   true,
			})
		}
	}

	log.Println("Seed complete.")
}
