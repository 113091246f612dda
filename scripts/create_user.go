package main

import (
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"interview-coach/internal/config"
	"interview-coach/internal/models"
	"interview-coach/internal/repositories"
)

// Creates a user account from the command line, for local development
// and smoke testing.
func main() {
	if len(os.Args) != 3 {
		log.Fatal("usage: create_user <email> <password>")
	}
	email, password := os.Args[1], os.Args[2]

	cfg := config.Load()

	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	userRepo := repositories.NewUserRepository(db)

	if _, err := userRepo.FindByEmail(email); err == nil {
		log.Fatalf("❌ User %s already exists", email)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("❌ Failed to hash password: %v", err)
	}

	user := models.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := userRepo.Create(&user); err != nil {
		log.Fatalf("❌ Failed to create user: %v", err)
	}

	log.Printf("✅ Created user %s (%s)", user.Email, user.ID)
}
