package database

import (
	"log"

	"bioskop_tiket/constants"
	"bioskop_tiket/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedData inserts the starter movie catalog and the default admin account.
// Safe to run on every boot.
func SeedData(db *gorm.DB) {
	movies := []model.Movie{
		{ID: 1, Title: "The Batman", Description: "Batman melawan penjahat di Gotham City", Duration: 176, Genre: "Action", Rating: 8.1},
		{ID: 2, Title: "Avatar: The Way of Water", Description: "Petualangan di planet Pandora", Duration: 192, Genre: "Adventure", Rating: 7.6},
	}
	for _, m := range movies {
		if err := db.Where(model.Movie{ID: m.ID}).FirstOrCreate(&m).Error; err != nil {
			log.Printf("seed: movie %q: %v", m.Title, err)
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), 10)
	if err != nil {
		log.Printf("seed: hash admin password: %v", err)
		return
	}
	admin := model.User{
		Username: "admin",
		Email:    "admin@bioskop.com",
		Password: string(hash),
		Role:     constants.ROLE_ADMIN,
	}
	if err := db.Where(model.User{Username: admin.Username}).FirstOrCreate(&admin).Error; err != nil {
		log.Printf("seed: admin user: %v", err)
	}
}
