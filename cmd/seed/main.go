package main

import (
	"database/sql"
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/oksasatya/go-user-lookup/config"
	"github.com/oksasatya/go-user-lookup/internal/domain/entity"
	"github.com/oksasatya/go-user-lookup/internal/infrastructure/mock"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	db, err := sql.Open("pgx", cfg.PostgresDSN())
	if err != nil {
		log.Fatalf("failed to open db: %v", err)
	}
	defer func() { _ = db.Close() }()

	// Seed the same user the mock source answers with, so both sources render identically for id 1.
	u, err := entity.NewUser(1, mock.PlaceholderName, mock.PlaceholderEmail, true)
	if err != nil {
		log.Fatalf("invalid seed user: %v", err)
	}

	var id int64
	err = db.QueryRow(`
		INSERT INTO users (id, name, email, active)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET name = EXCLUDED.name, email = EXCLUDED.email, active = EXCLUDED.active
		RETURNING id
	`, u.ID(), u.Name(), u.Email(), u.IsActive()).Scan(&id)
	if err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	if _, err := db.Exec(`SELECT setval(pg_get_serial_sequence('users', 'id'), GREATEST((SELECT MAX(id) FROM users), 1))`); err != nil {
		log.Fatalf("failed to reset id sequence: %v", err)
	}
	fmt.Printf("seeded user: id=%d name=%s email=%s status=%s\n", id, u.Name(), u.Email(), u.Status())
}
