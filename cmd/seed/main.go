package main

import (
	"log"

	"gorm.io/gorm"

	"venuebooking/internal/config"
	"venuebooking/internal/database"
	"venuebooking/internal/domain"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL, database.Options{LogLevel: cfg.DBLogLevel})
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}
	defer func() { _ = database.Close(db) }()

	log.Println("Running migrations...")
	if err := database.Migrate(db, database.MigrateOptions{}); err != nil {
		log.Fatal("Migrate failed:", err)
	}

	venues := sampleVenues()
	err = db.Transaction(func(tx *gorm.DB) error {
		// Cleanup old data (inquiries first because of the foreign key)
		log.Println("Cleaning old data...")
		if err := tx.Exec("DELETE FROM booking_inquiries").Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM venues").Error; err != nil {
			return err
		}
		return tx.Create(&venues).Error
	})
	if err != nil {
		log.Fatal("Seeding failed:", err)
	}

	log.Printf("Created %d venues", len(venues))
	log.Println("Seed completed successfully!")
}

func sampleVenues() []domain.Venue {
	return []domain.Venue{
		{
			Name:          "Mountain View Resort",
			Description:   "Stunning mountain resort perfect for team retreats with breathtaking views and modern amenities.",
			Location:      "Denver",
			Address:       "123 Mountain Rd, Denver, CO 80202",
			Capacity:      50,
			PricePerNight: 2500,
			Amenities:     []string{"WiFi", "Conference Room", "Catering", "Outdoor Activities", "Spa"},
			ImageURL:      "https://images.unsplash.com/photo-1542314831-068cd1dbfeeb",
		},
		{
			Name:          "Downtown Conference Center",
			Description:   "Modern downtown venue with state-of-the-art facilities and easy access to restaurants.",
			Location:      "San Francisco",
			Address:       "456 Market St, San Francisco, CA 94102",
			Capacity:      100,
			PricePerNight: 4000,
			Amenities:     []string{"WiFi", "Conference Room", "Catering", "AV Equipment", "Parking"},
			ImageURL:      "https://images.unsplash.com/photo-1540575467063-178a50c2df87",
		},
		{
			Name:          "Beachside Villa",
			Description:   "Relaxing beachfront property ideal for creative workshops and team bonding.",
			Location:      "Miami",
			Address:       "789 Ocean Dr, Miami, FL 33139",
			Capacity:      30,
			PricePerNight: 3200,
			Amenities:     []string{"WiFi", "Beach Access", "Catering", "Pool", "BBQ Area"},
			ImageURL:      "https://images.unsplash.com/photo-1582610116397-edb318620f90",
		},
		{
			Name:          "Tech Hub Loft",
			Description:   "Industrial-style loft in the heart of tech district with high-speed internet.",
			Location:      "Austin",
			Address:       "321 Innovation Way, Austin, TX 78701",
			Capacity:      40,
			PricePerNight: 1800,
			Amenities:     []string{"WiFi", "Conference Room", "Catering", "Whiteboards", "Gaming Area"},
			ImageURL:      "https://images.unsplash.com/photo-1497366216548-37526070297c",
		},
		{
			Name:          "Lakeside Retreat",
			Description:   "Peaceful lakeside venue offering tranquility and team building activities.",
			Location:      "Seattle",
			Address:       "555 Lake Shore Dr, Seattle, WA 98101",
			Capacity:      60,
			PricePerNight: 2800,
			Amenities:     []string{"WiFi", "Conference Room", "Catering", "Kayaking", "Hiking Trails"},
			ImageURL:      "https://images.unsplash.com/photo-1566073771259-6a8506099945",
		},
		{
			Name:          "Urban Garden Hotel",
			Description:   "Boutique hotel with rooftop garden, perfect for small to medium teams.",
			Location:      "New York",
			Address:       "888 Park Ave, New York, NY 10022",
			Capacity:      35,
			PricePerNight: 3500,
			Amenities:     []string{"WiFi", "Conference Room", "Catering", "Rooftop Garden", "Gym"},
			ImageURL:      "https://images.unsplash.com/photo-1551882547-ff40c63fe5fa",
		},
		{
			Name:          "Wine Country Estate",
			Description:   "Elegant estate surrounded by vineyards, ideal for executive retreats.",
			Location:      "Napa",
			Address:       "999 Vineyard Ln, Napa, CA 94559",
			Capacity:      45,
			PricePerNight: 4500,
			Amenities:     []string{"WiFi", "Conference Room", "Catering", "Wine Tasting", "Spa"},
			ImageURL:      "https://images.unsplash.com/photo-1506905925346-21bda4d32df4",
		},
		{
			Name:          "Historic Mansion",
			Description:   "Restored Victorian mansion with modern amenities and classic charm.",
			Location:      "Boston",
			Address:       "111 Heritage St, Boston, MA 02108",
			Capacity:      25,
			PricePerNight: 2200,
			Amenities:     []string{"WiFi", "Conference Room", "Catering", "Library", "Garden"},
			ImageURL:      "https://images.unsplash.com/photo-1564013799919-ab600027ffc6",
		},
		{
			Name:          "Desert Oasis Resort",
			Description:   "Luxurious desert resort with stunning architecture and premium facilities.",
			Location:      "Phoenix",
			Address:       "222 Desert Vista Rd, Phoenix, AZ 85004",
			Capacity:      80,
			PricePerNight: 3800,
			Amenities:     []string{"WiFi", "Conference Room", "Catering", "Pool", "Golf Course"},
			ImageURL:      "https://images.unsplash.com/photo-1520250497591-112f2f40a3f4",
		},
		{
			Name:          "Riverside Lodge",
			Description:   "Cozy riverside lodge perfect for intimate team gatherings and workshops.",
			Location:      "Portland",
			Address:       "333 River Bend Dr, Portland, OR 97201",
			Capacity:      20,
			PricePerNight: 1500,
			Amenities:     []string{"WiFi", "Conference Room", "Catering", "Fishing", "Fire Pit"},
			ImageURL:      "https://images.unsplash.com/photo-1571896349842-33c89424de2d",
		},
	}
}
