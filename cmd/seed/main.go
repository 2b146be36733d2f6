package main

import (
	"time"

	"github.com/sirupsen/logrus"

	"staysync/internal/config"
	"staysync/internal/database"
	"staysync/internal/domain"
	jwtsvc "staysync/internal/pkg/jwt"
)

// Loads a small local fixture set and prints a demo bearer token.
func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logrus.Fatal("DB connection failed: ", err)
	}

	logrus.Info("running migrations...")
	if err := database.Migrate(db); err != nil {
		logrus.Fatal("migrate failed: ", err)
	}

	logrus.Info("cleaning old data...")
	db.Exec("DELETE FROM payment_sessions")
	db.Exec("DELETE FROM bookings")
	db.Exec("DELETE FROM rooms")
	db.Exec("DELETE FROM hotels")

	logrus.Info("creating hotels and rooms...")

	blocked := time.Date(2025, time.September, 5, 0, 0, 0, 0, time.UTC)

	hotels := []domain.Hotel{
		{ID: 1, Name: "Grand Meridian", Town: "Jaipur", State: "Rajasthan", StarRating: 5, PropertyType: "Hotel", DistanceFromCenter: 1.2},
		{ID: 2, Name: "Lakeside Residency", Town: "Udaipur", State: "Rajasthan", StarRating: 4, PropertyType: "Resort", DistanceFromCenter: 3.8},
	}
	for i := range hotels {
		if err := db.Create(&hotels[i]).Error; err != nil {
			logrus.Fatal(err)
		}
	}

	rooms := []domain.Room{
		{ID: 1, HotelID: 1, RoomType: "Deluxe", PricePerNight: 450000},
		{ID: 2, HotelID: 1, RoomType: "Suite", PricePerNight: 820000},
		{ID: 3, HotelID: 2, RoomType: "Standard", PricePerNight: 310000, BlockedUntil: &blocked},
	}
	for i := range rooms {
		if err := db.Create(&rooms[i]).Error; err != nil {
			logrus.Fatal(err)
		}
	}

	checkIn := time.Date(2025, time.September, 10, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2025, time.September, 15, 0, 0, 0, 0, time.UTC)
	demo := domain.Booking{
		RoomID:     2,
		UserID:     "demo-user",
		StartDate:  checkIn,
		EndDate:    checkOut,
		Nights:     domain.Nights(checkIn, checkOut),
		TotalPrice: int64(domain.Nights(checkIn, checkOut)) * rooms[1].PricePerNight,
	}
	if err := db.Create(&demo).Error; err != nil {
		logrus.Fatal(err)
	}

	token, err := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL).GenerateToken("demo-user")
	if err != nil {
		logrus.Fatal(err)
	}

	logrus.WithField("token", token).Info("seed complete, demo bearer token issued")
}
