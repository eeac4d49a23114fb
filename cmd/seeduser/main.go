// Command seeduser creates an account out-of-band. The API has no
// registration endpoint; this is the only way users come into existence.
//
//	seeduser -email pilot@example.com -password s3cret -first Ada -last Doe
package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/Antonybyrt/ready-to-fly/internal/config"
	"github.com/Antonybyrt/ready-to-fly/internal/domain"
	"github.com/Antonybyrt/ready-to-fly/internal/repository/postgres"
	"github.com/Antonybyrt/ready-to-fly/pkg/hash"
)

func main() {
	email := flag.String("email", "", "email address (required)")
	password := flag.String("password", "", "password (required)")
	firstName := flag.String("first", "", "first name")
	lastName := flag.String("last", "", "last name")
	flag.Parse()

	if *email == "" || *password == "" {
		flag.Usage()
		log.Fatal("email and password are required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := sqlx.Connect("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	user := &domain.User{
		Email:        *email,
		PasswordHash: hash.HashPassword(*password),
		FirstName:    *firstName,
		LastName:     *lastName,
	}

	if err := postgres.NewUserRepository(db).Create(ctx, user); err != nil {
		log.Fatalf("Failed to create user: %v", err)
	}

	log.Printf("✓ Created user %d (%s)", user.ID, user.Email)
}
