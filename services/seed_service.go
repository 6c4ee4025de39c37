package services

import (
	"context"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/pratapadwait/pratapliving/models"
	"github.com/pratapadwait/pratapliving/services/logger"
)

func slugOf(s string) *string { return &s }

func sampleProperties() []models.Property {
	return []models.Property{
		{
			Slug:        slugOf("royal-heritage-homestay"),
			Name:        "Royal Heritage Homestay",
			Type:        pq.StringArray{"homestay"},
			Location:    "Hazratganj, Lucknow",
			Description: "Experience authentic Lucknowi hospitality in this beautifully restored heritage home. Enjoy traditional architecture, home-cooked Awadhi cuisine, and warm family welcome.",
			Price:       2500, Bedrooms: 2, Bathrooms: 2, Guests: 4,
			Amenities: pq.StringArray{"WiFi", "AC", "Home-cooked Meals", "Heritage Tour", "Parking"},
			ImageURL:  "/images/homestay.jpg",
			Featured:  true,
		},
		{
			Slug:        slugOf("nawabi-suite-lucknow-grand"),
			Name:        "Nawabi Suite at Lucknow Grand",
			Type:        pq.StringArray{"suite"},
			Location:    "Gomti Nagar, Lucknow",
			Description: "Luxurious suite with elegant interiors inspired by Nawabi culture. Features a private balcony with city views, premium amenities, and 24-hour room service.",
			Price:       5500, Bedrooms: 1, Bathrooms: 1, Guests: 2,
			Amenities: pq.StringArray{"WiFi", "AC", "Mini Bar", "Room Service", "Gym Access", "Pool Access"},
			ImageURL:  "/images/suite.jpg",
			Featured:  true,
		},
		{
			Slug:        slugOf("modern-city-apartment"),
			Name:        "Modern City Apartment",
			Type:        pq.StringArray{"apartment"},
			Location:    "Aliganj, Lucknow",
			Description: "Fully furnished modern apartment perfect for extended stays. Equipped kitchen, spacious living area, high-speed internet, and all essential amenities.",
			Price:       3500, Bedrooms: 2, Bathrooms: 2, Guests: 4,
			Amenities: pq.StringArray{"WiFi", "AC", "Full Kitchen", "Washer", "Smart TV", "Parking"},
			ImageURL:  "/images/apartment.jpg",
			Featured:  true,
		},
		{
			Slug:        slugOf("lucknow-grand-villa"),
			Name:        "Lucknow Grand Villa",
			Type:        pq.StringArray{"villa"},
			Location:    "Vikas Nagar, Lucknow",
			Description: "Exclusive private villa with lush gardens, private pool, and staff. Perfect for celebrations, family gatherings, or a luxurious retreat.",
			Price:       15000, Bedrooms: 4, Bathrooms: 4, Guests: 10,
			Amenities: pq.StringArray{"Private Pool", "Garden", "BBQ", "Staff", "WiFi", "AC", "Parking"},
			ImageURL:  "/images/villa.jpg",
			Featured:  true,
		},
		{
			Slug:        slugOf("cozy-corner-homestay"),
			Name:        "Cozy Corner Homestay",
			Type:        pq.StringArray{"homestay"},
			Location:    "Aminabad, Lucknow",
			Description: "Charming homestay in the heart of old Lucknow. Walking distance to famous street food, markets, and historical sites.",
			Price:       1800, Bedrooms: 1, Bathrooms: 1, Guests: 2,
			Amenities: pq.StringArray{"WiFi", "AC", "Breakfast", "Local Guide", "Parking"},
			ImageURL:  "/images/homestay.jpg",
		},
		{
			Slug:        slugOf("executive-business-suite"),
			Name:        "Executive Business Suite",
			Type:        pq.StringArray{"suite"},
			Location:    "Indira Nagar, Lucknow",
			Description: "Premium suite designed for business travelers. High-speed WiFi, dedicated workspace, meeting room access, and airport transfers.",
			Price:       4500, Bedrooms: 1, Bathrooms: 1, Guests: 2,
			Amenities: pq.StringArray{"WiFi", "AC", "Workspace", "Meeting Room", "Airport Transfer", "Gym"},
			ImageURL:  "/images/suite.jpg",
		},
		{
			Slug:        slugOf("family-garden-apartment"),
			Name:        "Family Garden Apartment",
			Type:        pq.StringArray{"apartment"},
			Location:    "Mahanagar, Lucknow",
			Description: "Spacious family-friendly apartment with garden views. Kid-safe environment, play area access, and all modern conveniences.",
			Price:       4000, Bedrooms: 3, Bathrooms: 2, Guests: 6,
			Amenities: pq.StringArray{"WiFi", "AC", "Kitchen", "Play Area", "Garden View", "Parking"},
			ImageURL:  "/images/apartment.jpg",
		},
		{
			Slug:        slugOf("riverside-retreat-villa"),
			Name:        "Riverside Retreat Villa",
			Type:        pq.StringArray{"villa"},
			Location:    "Chinhat, Lucknow",
			Description: "Serene villa by the river with breathtaking views. Features outdoor deck, jacuzzi, and complete privacy for an unforgettable getaway.",
			Price:       12000, Bedrooms: 3, Bathrooms: 3, Guests: 8,
			Amenities: pq.StringArray{"River View", "Jacuzzi", "Deck", "WiFi", "AC", "BBQ", "Chef on Request"},
			ImageURL:  "/images/villa.jpg",
		},
	}
}

// SeedProperties inserts the sample listing when the table is empty.
// Idempotent; an already-populated table is left alone.
func SeedProperties(ctx context.Context, db *gorm.DB, l logger.Logger) error {
	var count int64
	if err := db.WithContext(ctx).Model(&models.Property{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		l.Info("database already has %d properties, skipping seed", count)
		return nil
	}

	samples := sampleProperties()
	if err := db.WithContext(ctx).Create(&samples).Error; err != nil {
		return err
	}
	l.Info("seeded %d sample properties", len(samples))
	return nil
}
