package main

import (
	"context"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"

	"nexyatra/internal/config"
	"nexyatra/internal/database"
	"nexyatra/internal/domain"
	"nexyatra/internal/modules/destination"
	"nexyatra/internal/repository"
)

var launchDestinations = []domain.Destination{
	{
		Name:        "Dubai",
		Country:     "United Arab Emirates",
		Description: "Experience the blend of modern luxury and Arabian heritage.",
		Price:       36500,
		Rating:      4.8,
		Category:    "Luxury",
		ImageURL:    "https://images.unsplash.com/photo-1512453979798-5ea266f8880c",
		Featured:    true,
	},
	{
		Name:        "Kerala",
		Country:     "India",
		Description: "Discover serene backwaters and lush landscapes in God's Own Country.",
		Price:       17999,
		Rating:      4.7,
		Category:    "Nature",
		ImageURL:    "https://images.unsplash.com/photo-1593693397690-362cb9666fc2",
		Featured:    true,
	},
	{
		Name:        "Bali",
		Country:     "Indonesia",
		Description: "Immerse yourself in tropical paradise with stunning beaches and vibrant culture.",
		Price:       33700,
		Rating:      4.9,
		Category:    "Beach",
		ImageURL:    "https://images.unsplash.com/photo-1537996194471-e657df975ab4",
		Featured:    true,
	},
	{
		Name:        "Manali",
		Country:     "India",
		Description: "Enjoy breathtaking Himalayan views and adventure activities.",
		Price:       8999,
		Rating:      4.6,
		Category:    "Adventure",
		ImageURL:    "https://images.unsplash.com/photo-1593181629936-11c609b8db9b",
		Featured:    true,
	},
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}

	log.Println("Running AutoMigrate...")
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Destination{},
		&domain.Lead{},
		&domain.Review{},
		&domain.ContactMessage{},
		&domain.PaymentOrder{},
	); err != nil {
		log.Fatal("AutoMigrate failed:", err)
	}

	ctx := context.Background()
	destinationRepo := repository.NewDestinationRepository(db)

	for _, d := range launchDestinations {
		d.Slug = destination.Slugify(d.Name)
		existing, err := destinationRepo.GetBySlug(ctx, d.Slug)
		if err != nil {
			log.Fatal(err)
		}
		if existing != nil {
			log.Printf("destination %s already seeded, skipping", d.Slug)
			continue
		}
		if err := destinationRepo.Create(ctx, &d); err != nil {
			log.Fatal(err)
		}
		log.Printf("seeded destination %s", d.Slug)
	}

	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")
	if adminEmail == "" || adminPassword == "" {
		log.Println("ADMIN_EMAIL/ADMIN_PASSWORD not set, skipping admin seed")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatal(err)
	}
	userRepo := repository.NewUserRepository(db)
	if err := userRepo.Upsert(ctx, &domain.User{
		Email:        adminEmail,
		PasswordHash: string(hash),
		Role:         domain.RoleAdmin,
		Name:         "Admin",
	}); err != nil {
		log.Fatal(err)
	}
	log.Printf("seeded admin %s", adminEmail)
}
